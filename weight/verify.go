// File: verify.go - uniqueness verification and the complexity figure.
//
// Contract:
//   - Verify counts each undirected edge once (the u<v direction), never
//     mutates the mapping, and always returns a Result — a failed
//     property is a finding carried in the value.
//   - Complexity renders the descriptive per-run figure "T(n·m·k)".
//
// Complexity:
//   - Verify: O(E) time, O(E) space for the tally.

package weight

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/starlabel/core"
)

// Verify checks that the derived weights are pairwise distinct across
// undirected edges and reports the findings.
func Verify(weights core.EdgeWeights) Result {
	// Tally weights over the canonical direction only; (v,u) mirrors (u,v).
	tally := make(map[int]int, len(weights)/2)
	for key, w := range weights {
		if key.U < key.V {
			tally[w]++
		}
	}

	res := Result{
		Edges:     weights.UndirectedCount(),
		Distinct:  len(tally),
		MaxWeight: weights.Max(),
	}
	res.Irregular = res.Distinct == res.Edges

	if !res.Irregular {
		for w, count := range tally {
			if count > 1 {
				res.Duplicates = append(res.Duplicates, w)
			}
		}
		sort.Ints(res.Duplicates)
	}

	return res
}

// Complexity returns the greedy family's descriptive complexity figure
// for a run with parameters n, m and label bound k.
func Complexity(n, m, k int) string {
	return fmt.Sprintf("T(%d)", n*m*k)
}
