// File: closedform.go - closed-form residue-case strategy for S(n,3).
//
// Contract:
//   - Parameter: n ≥ 1; the graph must be builder.HomogeneousStar(n)
//     (order 3n+1).
//   - The branch index range splits at c = ⌈n/4⌉ into a low range labeled
//     3i-2 and a high range labeled by an offset linear formula. The
//     four residue classes of n mod 4 collapse to two effective cases:
//     classes {0,2,3} (low range 1..c+1, high label 2c+i) and class {1}
//     (low range 1..c, high label 2c+i-1, plus a special leaf pair on
//     branch c).
//   - Leaf phase assigns small fixed offsets (j+1 in the low range, a
//     shifted n+i+j form in the high range) keyed to the same split.
//   - No uniqueness bookkeeping during assignment: distinctness of the
//     induced weights is a property of the formulas, verified afterwards
//     by weight.Verify.
//   - Single pass, no backtracking; the graph is never mutated.
//
// Complexity:
//   - Time: O(n). Space: O(1) beyond the result.
//
// Determinism:
//   - Same n ⇒ same labels.

package labeling

import (
	"fmt"

	"github.com/katalvlaran/starlabel/core"
)

const methodClosedForm = "ClosedForm"

// ClosedForm labels the homogeneous amalgamated star S(n,3) with the
// closed-form arithmetic rule, case-split on n mod 4.
type ClosedForm struct {
	// N is the branch count (≥ 1).
	N int
}

// K returns the declared label bound ⌈(3n+1)/2⌉.
func (s ClosedForm) K() int {
	return (3*s.N + 2) / 2
}

// Label runs the closed-form pass.
func (s ClosedForm) Label(g *core.Graph) (core.VertexLabels, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: %w", methodClosedForm, ErrNilGraph)
	}
	if s.N < 1 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodClosedForm, s.N, ErrTooFewBranches)
	}
	if g.Order() != 3*s.N+1 {
		return nil, fmt.Errorf("%s: order=%d, want %d: %w", methodClosedForm, g.Order(), 3*s.N+1, ErrOrderMismatch)
	}

	labels := make(core.VertexLabels, g.Order())
	labels[core.Center] = centerLabel

	if s.N%4 == 1 {
		s.labelShiftedSplit(labels)
	} else {
		s.labelPlainSplit(labels)
	}

	return labels, nil
}

// labelPlainSplit handles residue classes n mod 4 ∈ {0,2,3}:
// low range 1..c+1 labeled 3i-2, high range c+2..n labeled 2c+i;
// low-range leaves take {2,3}, high-range leaves take n+i+j-1-2c.
func (s ClosedForm) labelPlainSplit(labels core.VertexLabels) {
	c := ceilDiv(s.N, 4)

	for i := 1; i <= s.N; i++ {
		if i <= c+1 {
			labels[i] = 3*i - 2
		} else {
			labels[i] = 2*c + i
		}
	}

	v := s.N + 1
	for i := 1; i <= c; i++ {
		for j := 1; j <= 2; j++ {
			labels[v] = j + 1
			v++
		}
	}
	for i := c + 1; i <= s.N; i++ {
		for j := 1; j <= 2; j++ {
			labels[v] = s.N + i + j - 1 - 2*c
			v++
		}
	}
}

// labelShiftedSplit handles residue class n mod 4 = 1:
// low range 1..c labeled 3i-2, high range c+1..n labeled 2c+i-1;
// branches 1..c-1 take leaf pair {2,3}, branch c takes the special pair
// {2, n-c+3}, high-range leaves take n+i+j-2c.
func (s ClosedForm) labelShiftedSplit(labels core.VertexLabels) {
	c := ceilDiv(s.N, 4)

	for i := 1; i <= s.N; i++ {
		if i <= c {
			labels[i] = 3*i - 2
		} else {
			labels[i] = 2*c + i - 1
		}
	}

	v := s.N + 1
	for i := 1; i < c; i++ {
		for j := 1; j <= 2; j++ {
			labels[v] = j + 1
			v++
		}
	}

	// The split branch c carries the two special leaves.
	labels[v] = 2
	v++
	labels[v] = s.N - c + 3
	v++

	for i := c + 1; i <= s.N; i++ {
		for j := 1; j <= 2; j++ {
			labels[v] = s.N + i + j - 2*c
			v++
		}
	}
}

// ceilDiv returns ⌈a/b⌉ for positive a, b.
func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
