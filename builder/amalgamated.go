// File: amalgamated.go - implementation of AmalgamatedStar(n, m).
//
// Contract:
//   - n ≥ 2 (else ErrTooFewBranches); m ≥ 1 (else ErrTooFewLeaves).
//   - Vertex 0 is the center; branches occupy ids 1..n; leaf ids are
//     assigned sequentially from n+1, branch-by-branch.
//   - Each branch carries m-1 leaves, so order = 1 + n + n·(m-1) = n·m+1.
//   - Edge emission order: per branch i, first center→i, then the branch's
//     leaves in ascending id order.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(n·m) vertices + edges. Space: O(1) extra.
//
// Determinism:
//   - Positional ids and a fixed emission order: same (n,m) ⇒ same graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/starlabel/core"
)

const (
	methodAmalgamated    = "AmalgamatedStar"
	minAmalgamBranches   = 2
	minLeavesPerBranch   = 1
	leavesPerHomogeneous = 2 // shared by HomogeneousStar and Snowflake
)

// AmalgamatedStar builds the amalgamated star with n branches and m-1
// leaves per branch (order = n·m+1), the family labeled by the greedy
// minimal-weight strategy.
func AmalgamatedStar(n, m int) (*core.Graph, error) {
	if n < minAmalgamBranches {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodAmalgamated, n, minAmalgamBranches, ErrTooFewBranches)
	}
	if m < minLeavesPerBranch {
		return nil, fmt.Errorf("%s: m=%d < min=%d: %w", methodAmalgamated, m, minLeavesPerBranch, ErrTooFewLeaves)
	}

	order := n*m + 1
	g, err := core.NewGraph(order)
	if err != nil {
		return nil, fmt.Errorf("%s: NewGraph(%d): %w", methodAmalgamated, order, err)
	}

	// Leaf ids continue sequentially after the branch ids.
	leaf := n
	for i := 1; i <= n; i++ {
		if err = g.AddEdge(core.Center, i); err != nil {
			return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", methodAmalgamated, core.Center, i, err)
		}
		for j := 1; j < m; j++ {
			leaf++
			if err = g.AddEdge(i, leaf); err != nil {
				return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", methodAmalgamated, i, leaf, err)
			}
		}
	}

	return g, nil
}
