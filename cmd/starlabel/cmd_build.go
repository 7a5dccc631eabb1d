package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/starlabel/builder"
	"github.com/katalvlaran/starlabel/core"
	"github.com/katalvlaran/starlabel/labeling"
	"github.com/katalvlaran/starlabel/report"
	"github.com/katalvlaran/starlabel/weight"
)

// newBuildCmd wires the build subcommand: one full
// build → label → derive → verify pass with a rendered report.
func newBuildCmd() *cobra.Command {
	var (
		family string
		n      int
		m      int
		out    string
		unsafe bool
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build, label, and verify one graph",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBuild(family, n, m, out, unsafe)
		},
	}

	cmd.Flags().StringVar(&family, "family", "amalgamated", "graph family: amalgamated | homogeneous | snowflake")
	cmd.Flags().IntVar(&n, "n", 3, "branch count")
	cmd.Flags().IntVar(&m, "m", 2, "leaves-per-branch parameter (amalgamated family only)")
	cmd.Flags().StringVar(&out, "out", "", "append the report to this file instead of stdout")
	cmd.Flags().BoolVar(&unsafe, "unsafe", false, "allow the legacy clamped-linear strategy (snowflake family)")

	return cmd
}

func runBuild(family string, n, m int, out string, unsafe bool) error {
	g, strat, err := assemble(family, n, m, unsafe)
	if err != nil {
		return err
	}

	labels, err := strat.Label(g)
	if err != nil {
		return err
	}
	weights, err := weight.Derive(g, labels)
	if err != nil {
		return err
	}
	res := weight.Verify(weights)

	data := report.Data{
		Family:  family,
		N:       n,
		K:       strat.K(),
		Graph:   g,
		Labels:  labels,
		Weights: weights,
		Result:  res,
	}
	if family == "amalgamated" {
		data.M = m
		data.Complexity = weight.Complexity(n, m, strat.K())
	}

	if !res.Irregular {
		slog.Warn("labeling is not edge-irregular", "family", family, "n", n, "duplicates", res.Duplicates)
	}

	dst, closeFn, err := openOutput(out)
	if err != nil {
		return err
	}
	defer closeFn()

	return report.Write(dst, data)
}

// assemble pairs a family's topology with its labeling strategy.
func assemble(family string, n, m int, unsafe bool) (*core.Graph, labeling.Labeler, error) {
	switch family {
	case "amalgamated":
		g, err := builder.AmalgamatedStar(n, m)
		if err != nil {
			return nil, nil, err
		}

		return g, labeling.Greedy{N: n, M: m}, nil
	case "homogeneous":
		g, err := builder.HomogeneousStar(n)
		if err != nil {
			return nil, nil, err
		}

		return g, labeling.ClosedForm{N: n}, nil
	case "snowflake":
		g, err := builder.Snowflake(n)
		if err != nil {
			return nil, nil, err
		}

		return g, labeling.Linear{N: n, Unsafe: unsafe}, nil
	default:
		return nil, nil, fmt.Errorf("unknown family %q", family)
	}
}

// openOutput returns stdout, or the report file opened append-only.
func openOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open report file: %w", err)
	}

	return f, func() {
		if cerr := f.Close(); cerr != nil {
			slog.Error("closing report file", "path", path, "error", cerr)
		}
	}, nil
}
