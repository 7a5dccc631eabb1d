package report_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/starlabel/builder"
	"github.com/katalvlaran/starlabel/labeling"
	"github.com/katalvlaran/starlabel/report"
	"github.com/katalvlaran/starlabel/weight"
)

// runData assembles a full n=3, m=2 greedy run for rendering.
func runData(t *testing.T) report.Data {
	t.Helper()

	g, err := builder.AmalgamatedStar(3, 2)
	require.NoError(t, err)
	strat := labeling.Greedy{N: 3, M: 2}
	labels, err := strat.Label(g)
	require.NoError(t, err)
	weights, err := weight.Derive(g, labels)
	require.NoError(t, err)

	return report.Data{
		Family:     "amalgamated",
		N:          3,
		M:          2,
		K:          strat.K(),
		Graph:      g,
		Labels:     labels,
		Weights:    weights,
		Result:     weight.Verify(weights),
		Complexity: weight.Complexity(3, 2, strat.K()),
	}
}

// TestWrite_Sections: every record section appears with its data.
func TestWrite_Sections(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, report.Write(&sb, runData(t)))
	out := sb.String()

	for _, want := range []string{
		"Run Parameters",
		"family: amalgamated",
		"n: 3",
		"m: 2",
		"k: 4",
		"order: 7",
		"Vertex Labels",
		"vertex 0: label 1",
		"vertex 3: label 4",
		"Adjacency List",
		"vertex 0: neighbors [1 2 3]",
		"Edge Weights",
		"edge (0,1): weight 2",
		"edge (3,6): weight 7",
		"Verification",
		"all edge weights unique: true",
		"maximum edge weight: 7",
		"theoretical time complexity: T(24)",
	} {
		require.Containsf(t, out, want, "missing %q in report", want)
	}
}

// TestWrite_DuplicatesListed: a failed verification surfaces the
// duplicated weights in the verdict section.
func TestWrite_DuplicatesListed(t *testing.T) {
	g, err := builder.Snowflake(3)
	require.NoError(t, err)
	strat := labeling.Linear{N: 3, Unsafe: true}
	labels, err := strat.Label(g)
	require.NoError(t, err)
	weights, err := weight.Derive(g, labels)
	require.NoError(t, err)

	var sb strings.Builder
	err = report.Write(&sb, report.Data{
		Family:  "snowflake",
		N:       3,
		K:       strat.K(),
		Graph:   g,
		Labels:  labels,
		Weights: weights,
		Result:  weight.Verify(weights),
	})
	require.NoError(t, err)

	out := sb.String()
	require.Contains(t, out, "all edge weights unique: false")
	require.Contains(t, out, "duplicated weights:")
	require.NotContains(t, out, "m:", "family without m omits the parameter")
}
