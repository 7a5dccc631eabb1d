// File: homogeneous.go - implementation of HomogeneousStar(n), i.e. S(n,3).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewBranches).
//   - Vertex 0 is the center; branches occupy ids 1..n; each branch owns
//     exactly 2 leaves with sequential ids from n+1, branch-by-branch.
//   - order = 1 + n + 2n = 3n+1.
//   - Edge emission order: per branch i, center→i, then leaf pair.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(n) vertices + O(3n) edges. Space: O(1) extra.
//
// Determinism:
//   - Positional ids and a fixed emission order: same n ⇒ same graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/starlabel/core"
)

const (
	methodHomogeneous      = "HomogeneousStar"
	minHomogeneousBranches = 1
)

// HomogeneousStar builds the homogeneous amalgamated star S(n,3): every
// branch subtree has 3 vertices (the branch plus 2 leaves). This is the
// family labeled by the closed-form residue-case strategy.
func HomogeneousStar(n int) (*core.Graph, error) {
	if n < minHomogeneousBranches {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodHomogeneous, n, minHomogeneousBranches, ErrTooFewBranches)
	}

	order := 3*n + 1
	g, err := core.NewGraph(order)
	if err != nil {
		return nil, fmt.Errorf("%s: NewGraph(%d): %w", methodHomogeneous, order, err)
	}

	leaf := n
	for i := 1; i <= n; i++ {
		if err = g.AddEdge(core.Center, i); err != nil {
			return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", methodHomogeneous, core.Center, i, err)
		}
		for j := 0; j < leavesPerHomogeneous; j++ {
			leaf++
			if err = g.AddEdge(i, leaf); err != nil {
				return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", methodHomogeneous, i, leaf, err)
			}
		}
	}

	return g, nil
}
