// File: linear.go - legacy clamped-linear strategy for the snowflake family.
//
// Contract:
//   - Parameters: n ≥ 3 (the snowflake ring minimum); the graph must be
//     builder.Snowflake(n) (order 3n+1). Unsafe must be set explicitly.
//   - k = ⌊(3n+1)/2⌋; center labeled 1, vertex i labeled min(i, k).
//   - The clamp silently reuses label k for every vertex past k, so
//     duplicate labels — and duplicate edge weights — are expected.
//     weight.Verify is the honest judge; this strategy never claims
//     irregularity.
//   - Single pass; the graph is never mutated.
//
// Complexity:
//   - Time: O(order). Space: O(1) beyond the result.
//
// Determinism:
//   - Same n ⇒ same labels.

package labeling

import (
	"fmt"

	"github.com/katalvlaran/starlabel/core"
)

const (
	methodLinear      = "Linear"
	minLinearBranches = 3
)

// Linear is the legacy bounded rule: vertex i takes label i clamped at K.
// It is collision-prone and kept only for comparison runs; constructing
// labels without Unsafe fails with ErrUnsafeStrategy.
type Linear struct {
	// N is the branch count (≥ 3).
	N int
	// Unsafe acknowledges that this strategy does not deliver distinct
	// edge weights. It must be set to true for Label to run.
	Unsafe bool
}

// K returns the declared label bound ⌊(3n+1)/2⌋.
func (s Linear) K() int {
	return (3*s.N + 1) / 2
}

// Label runs the clamped-linear pass.
func (s Linear) Label(g *core.Graph) (core.VertexLabels, error) {
	if !s.Unsafe {
		return nil, fmt.Errorf("%s: %w", methodLinear, ErrUnsafeStrategy)
	}
	if g == nil {
		return nil, fmt.Errorf("%s: %w", methodLinear, ErrNilGraph)
	}
	if s.N < minLinearBranches {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodLinear, s.N, minLinearBranches, ErrTooFewBranches)
	}
	if g.Order() != 3*s.N+1 {
		return nil, fmt.Errorf("%s: order=%d, want %d: %w", methodLinear, g.Order(), 3*s.N+1, ErrOrderMismatch)
	}

	k := s.K()
	labels := make(core.VertexLabels, g.Order())
	labels[core.Center] = centerLabel
	for i := 1; i < g.Order(); i++ {
		if i < k {
			labels[i] = i
		} else {
			labels[i] = k
		}
	}

	return labels, nil
}
