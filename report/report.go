// File: report.go - text rendering of a completed run.
//
// Contract:
//   - Write never mutates Data; listings follow vertex id order and, for
//     weights, the canonical u<v direction sorted by (u,v).
//   - Free-text output: human consumption only, no format stability.

package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/starlabel/core"
	"github.com/katalvlaran/starlabel/weight"
)

// headerStyle frames section titles; rendering degrades to plain text
// when the destination has no color profile.
var headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))

// Data bundles one run's inputs and outputs for rendering.
type Data struct {
	// Family names the graph family, e.g. "amalgamated".
	Family string
	// N and M echo the run parameters; M is 0 for families without it.
	N, M int
	// K is the strategy's declared label bound.
	K int
	// Graph, Labels, Weights are the pipeline outputs.
	Graph   *core.Graph
	Labels  core.VertexLabels
	Weights core.EdgeWeights
	// Result is the verification verdict.
	Result weight.Result
	// Complexity is the descriptive figure, empty when not applicable.
	Complexity string
}

// Write renders the full text record of a run.
func Write(out io.Writer, d Data) error {
	if err := writeHeader(out, d); err != nil {
		return err
	}
	if err := writeLabels(out, d); err != nil {
		return err
	}
	if err := writeAdjacency(out, d); err != nil {
		return err
	}
	if err := writeWeights(out, d); err != nil {
		return err
	}

	return writeVerdict(out, d)
}

func section(title string) string {
	return headerStyle.Render("===== "+title+" =====") + "\n"
}

func writeHeader(out io.Writer, d Data) error {
	if _, err := io.WriteString(out, section("Run Parameters")); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(out, "family: %s\nn: %d\n", d.Family, d.N); err != nil {
		return err
	}
	if d.M > 0 {
		if _, err := fmt.Fprintf(out, "m: %d\n", d.M); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(out, "k: %d\norder: %d\n", d.K, d.Graph.Order())

	return err
}

func writeLabels(out io.Writer, d Data) error {
	if _, err := io.WriteString(out, section("Vertex Labels")); err != nil {
		return err
	}
	for v := 0; v < d.Graph.Order(); v++ {
		if _, err := fmt.Fprintf(out, "vertex %d: label %d\n", v, d.Labels[v]); err != nil {
			return err
		}
	}

	return nil
}

func writeAdjacency(out io.Writer, d Data) error {
	if _, err := io.WriteString(out, section("Adjacency List")); err != nil {
		return err
	}
	for v := 0; v < d.Graph.Order(); v++ {
		if _, err := fmt.Fprintf(out, "vertex %d: neighbors %v\n", v, d.Graph.Neighbors(v)); err != nil {
			return err
		}
	}

	return nil
}

func writeWeights(out io.Writer, d Data) error {
	if _, err := io.WriteString(out, section("Edge Weights")); err != nil {
		return err
	}

	// Canonical direction only, sorted for a stable listing.
	keys := make([]core.EdgeKey, 0, len(d.Weights)/2)
	for key := range d.Weights {
		if key.U < key.V {
			keys = append(keys, key)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].U != keys[j].U {
			return keys[i].U < keys[j].U
		}

		return keys[i].V < keys[j].V
	})

	for _, key := range keys {
		if _, err := fmt.Fprintf(out, "edge (%d,%d): weight %d\n", key.U, key.V, d.Weights[key]); err != nil {
			return err
		}
	}

	return nil
}

func writeVerdict(out io.Writer, d Data) error {
	if _, err := io.WriteString(out, section("Verification")); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(out, "all edge weights unique: %v\n", d.Result.Irregular); err != nil {
		return err
	}
	if len(d.Result.Duplicates) > 0 {
		if _, err := fmt.Fprintf(out, "duplicated weights: %v\n", d.Result.Duplicates); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(out, "maximum edge weight: %d\n", d.Result.MaxWeight); err != nil {
		return err
	}
	if d.Complexity != "" {
		if _, err := fmt.Fprintf(out, "theoretical time complexity: %s\n", d.Complexity); err != nil {
			return err
		}
	}

	return nil
}
