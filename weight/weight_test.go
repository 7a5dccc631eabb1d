package weight_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/starlabel/builder"
	"github.com/katalvlaran/starlabel/core"
	"github.com/katalvlaran/starlabel/labeling"
	"github.com/katalvlaran/starlabel/weight"
)

//----------------------------------------------------------------------------//
// Derive
//----------------------------------------------------------------------------//

// TestDerive_SymmetricSums: every direction is present and equals the
// endpoint-label sum.
func TestDerive_SymmetricSums(t *testing.T) {
	g, err := builder.AmalgamatedStar(3, 2)
	require.NoError(t, err)
	labels, err := labeling.Greedy{N: 3, M: 2}.Label(g)
	require.NoError(t, err)

	weights, err := weight.Derive(g, labels)
	require.NoError(t, err)
	require.Equal(t, g.EdgeCount(), weights.UndirectedCount())

	for u := 0; u < g.Order(); u++ {
		for _, v := range g.Neighbors(u) {
			fwd, ok := weights.At(u, v)
			require.Truef(t, ok, "missing weight (%d,%d)", u, v)
			rev, ok := weights.At(v, u)
			require.Truef(t, ok, "missing weight (%d,%d)", v, u)
			require.Equal(t, fwd, rev, "directions disagree on {%d,%d}", u, v)
			require.Equal(t, labels[u]+labels[v], fwd, "weight of {%d,%d}", u, v)
		}
	}
}

// TestDerive_Idempotent: deriving twice from the same labels yields
// identical mappings.
func TestDerive_Idempotent(t *testing.T) {
	g, err := builder.HomogeneousStar(5)
	require.NoError(t, err)
	labels, err := labeling.ClosedForm{N: 5}.Label(g)
	require.NoError(t, err)

	first, err := weight.Derive(g, labels)
	require.NoError(t, err)
	second, err := weight.Derive(g, labels)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

// TestDerive_Errors: nil graph and incomplete labelings fail fast.
func TestDerive_Errors(t *testing.T) {
	_, err := weight.Derive(nil, core.VertexLabels{})
	require.True(t, errors.Is(err, weight.ErrNilGraph))

	g, err := builder.AmalgamatedStar(2, 2)
	require.NoError(t, err)

	partial := core.VertexLabels{0: 1, 1: 1} // vertices 2..4 unlabeled
	_, err = weight.Derive(g, partial)
	require.True(t, errors.Is(err, core.ErrUnlabeledVertex))
}

//----------------------------------------------------------------------------//
// Verify
//----------------------------------------------------------------------------//

// TestVerify_GreedyIsIrregular: the greedy labeling produces pairwise
// distinct weights across a spread of parameters.
func TestVerify_GreedyIsIrregular(t *testing.T) {
	for _, tc := range []struct{ n, m int }{{3, 2}, {3, 3}, {2, 5}, {4, 3}} {
		g, err := builder.AmalgamatedStar(tc.n, tc.m)
		require.NoError(t, err)
		labels, err := labeling.Greedy{N: tc.n, M: tc.m}.Label(g)
		require.NoError(t, err)
		weights, err := weight.Derive(g, labels)
		require.NoError(t, err)

		res := weight.Verify(weights)
		require.Truef(t, res.Irregular, "n=%d m=%d duplicates=%v", tc.n, tc.m, res.Duplicates)
		require.Equal(t, tc.n*tc.m, res.Edges, "n=%d m=%d", tc.n, tc.m)
		require.Empty(t, res.Duplicates)
	}
}

// TestVerify_ClosedFormIsIrregular: the arithmetic rule holds for every
// residue class, with max weight 3n+1.
func TestVerify_ClosedFormIsIrregular(t *testing.T) {
	for n := 2; n <= 12; n++ {
		g, err := builder.HomogeneousStar(n)
		require.NoError(t, err)
		labels, err := labeling.ClosedForm{N: n}.Label(g)
		require.NoError(t, err)
		weights, err := weight.Derive(g, labels)
		require.NoError(t, err)

		res := weight.Verify(weights)
		require.Truef(t, res.Irregular, "n=%d duplicates=%v", n, res.Duplicates)
		require.Equalf(t, 3*n, res.Edges, "n=%d", n)
		require.Equalf(t, 3*n+1, res.MaxWeight, "n=%d", n)
	}
}

// TestVerify_LinearCollides: the legacy clamped rule is expected to fail
// verification — that failure is the documented finding.
func TestVerify_LinearCollides(t *testing.T) {
	for _, n := range []int{3, 5, 8} {
		g, err := builder.Snowflake(n)
		require.NoError(t, err)
		labels, err := labeling.Linear{N: n, Unsafe: true}.Label(g)
		require.NoError(t, err)
		weights, err := weight.Derive(g, labels)
		require.NoError(t, err)

		res := weight.Verify(weights)
		require.Falsef(t, res.Irregular, "n=%d: clamped labels should collide", n)
		require.NotEmptyf(t, res.Duplicates, "n=%d", n)
		require.Less(t, res.Distinct, res.Edges, "n=%d", n)
	}
}

// TestVerify_EmptyMapping: zero edges is vacuously irregular.
func TestVerify_EmptyMapping(t *testing.T) {
	res := weight.Verify(core.EdgeWeights{})
	require.True(t, res.Irregular)
	require.Zero(t, res.Edges)
	require.Zero(t, res.MaxWeight)
	require.Empty(t, res.Duplicates)
}

// TestComplexity renders the descriptive figure.
func TestComplexity(t *testing.T) {
	require.Equal(t, "T(24)", weight.Complexity(3, 2, 4))
}
