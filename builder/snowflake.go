// File: snowflake.go - implementation of Snowflake(n).
//
// Contract:
//   - n ≥ 3 (else ErrTooFewBranches): the branch ring degenerates to a
//     self-loop for n=1 and a double edge for n=2, both of which would
//     break the simple-graph invariant.
//   - Vertex 0 is the center; branches occupy ids 1..n; branch i owns the
//     leaf pair n+2(i-1)+1 and n+2(i-1)+2.
//   - Ring edge: branch i → (i mod n)+1, emitted once per i, so each
//     undirected ring edge appears exactly once.
//   - order = 3n+1.
//   - Edge emission order: per branch i, center→i, leaf pair, ring edge.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(n) vertices + O(4n) edges. Space: O(1) extra.
//
// Determinism:
//   - Positional ids and a fixed emission order: same n ⇒ same graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/starlabel/core"
)

const (
	methodSnowflake      = "Snowflake"
	minSnowflakeBranches = 3
)

// Snowflake builds the snowflake-shaped star: a homogeneous star whose
// branch vertices additionally form a cycle. This is the family labeled
// by the legacy clamped-linear strategy.
func Snowflake(n int) (*core.Graph, error) {
	if n < minSnowflakeBranches {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodSnowflake, n, minSnowflakeBranches, ErrTooFewBranches)
	}

	order := 3*n + 1
	g, err := core.NewGraph(order)
	if err != nil {
		return nil, fmt.Errorf("%s: NewGraph(%d): %w", methodSnowflake, order, err)
	}

	for i := 1; i <= n; i++ {
		if err = g.AddEdge(core.Center, i); err != nil {
			return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", methodSnowflake, core.Center, i, err)
		}
		for j := 1; j <= leavesPerHomogeneous; j++ {
			leaf := n + leavesPerHomogeneous*(i-1) + j
			if err = g.AddEdge(i, leaf); err != nil {
				return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", methodSnowflake, i, leaf, err)
			}
		}
		// Cyclic successor: i → (i mod n)+1; every pair occurs once.
		next := i%n + 1
		if err = g.AddEdge(i, next); err != nil {
			return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", methodSnowflake, i, next, err)
		}
	}

	return g, nil
}
