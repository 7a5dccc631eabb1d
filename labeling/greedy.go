// File: greedy.go - greedy minimal-weight strategy for the amalgamated star.
//
// Contract:
//   - Parameters: n ≥ 2 branches (the step d = k/(n-1) divides by n-1),
//     m ≥ 1; the graph must be builder.AmalgamatedStar(n, m) (order n·m+1).
//   - k = ⌈(n·m+1)/2⌉; the pool is seeded {2..2k}.
//   - Branch phase: center and branch 1 are labeled 1; each later branch
//     label is the floor of an accumulator stepped by d. After a branch
//     label is fixed, its center-edge weight leaves the pool when present.
//   - Leaf phase: branch-by-branch, leaf-by-leaf in id order, the pool
//     minimum becomes the leaf's edge weight and the leaf label is that
//     weight minus the branch label. An empty pool is fatal
//     (ErrPoolExhausted — the labeling is infeasible for n, m).
//   - Single pass, no backtracking; the graph is never mutated.
//
// Complexity:
//   - Time: O(n·m·log k). Space: O(k) for the pool.
//
// Determinism:
//   - Same (n, m) ⇒ same labels, same final pool.

package labeling

import (
	"fmt"
	"math"

	"github.com/katalvlaran/starlabel/core"
)

const methodGreedy = "Greedy"

// Greedy labels the amalgamated star S_{n,m} by consuming an ordered
// available-weight pool, which guarantees each consumed edge weight is
// used exactly once.
type Greedy struct {
	// N is the branch count (≥ 2).
	N int
	// M is the leaves-per-branch parameter; each branch carries M-1 leaves.
	M int
}

// K returns the declared label bound ⌈(n·m+1)/2⌉.
func (s Greedy) K() int {
	return (s.N*s.M + 2) / 2
}

// D returns the branch-label step k/(n-1).
func (s Greedy) D() float64 {
	return float64(s.K()) / float64(s.N-1)
}

// Label runs the greedy pass and discards the final pool.
func (s Greedy) Label(g *core.Graph) (core.VertexLabels, error) {
	labels, _, err := s.LabelWithPool(g)

	return labels, err
}

// LabelWithPool runs the greedy pass and returns the final pool alongside
// the labels so callers can assert on the weights left unconsumed.
func (s Greedy) LabelWithPool(g *core.Graph) (core.VertexLabels, *WeightPool, error) {
	if g == nil {
		return nil, nil, fmt.Errorf("%s: %w", methodGreedy, ErrNilGraph)
	}
	if s.N < 2 {
		return nil, nil, fmt.Errorf("%s: n=%d: %w", methodGreedy, s.N, ErrTooFewBranches)
	}
	if s.M < 1 {
		return nil, nil, fmt.Errorf("%s: m=%d: %w", methodGreedy, s.M, ErrTooFewLeaves)
	}
	if g.Order() != s.N*s.M+1 {
		return nil, nil, fmt.Errorf("%s: order=%d, want %d: %w", methodGreedy, g.Order(), s.N*s.M+1, ErrOrderMismatch)
	}

	k := s.K()
	pool, err := NewWeightPool(k)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", methodGreedy, err)
	}

	labels := make(core.VertexLabels, g.Order())
	labels[core.Center] = centerLabel

	// Branch phase. Branch 1 is pinned to label 1; later branches step an
	// accumulator by d and take its floor.
	labels[1] = 1
	pool.Remove(labels[core.Center] + labels[1])

	d := s.D()
	current := 0.0
	for i := 2; i <= s.N; i++ {
		current += d
		labels[i] = int(math.Floor(current))
		pool.Remove(labels[core.Center] + labels[i])
	}

	// Leaf phase. The pool minimum is the next edge weight; consuming it
	// here is what makes the weight unique across the whole labeling.
	leaf := s.N
	for i := 1; i <= s.N; i++ {
		for j := 1; j < s.M; j++ {
			w, perr := pool.PopMin()
			if perr != nil {
				return nil, nil, fmt.Errorf("%s: branch %d leaf %d: %w", methodGreedy, i, j, perr)
			}
			leaf++
			labels[leaf] = w - labels[i]
		}
	}

	return labels, pool, nil
}
