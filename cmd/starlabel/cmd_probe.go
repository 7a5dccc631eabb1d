package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/starlabel/probe"
)

// newProbeCmd wires the probe subcommand: grow n until an attempt
// overruns its wall-clock budget.
func newProbeCmd() *cobra.Command {
	opts := probe.DefaultOptions()

	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Find the largest feasible n within a per-attempt time budget",
		RunE: func(cmd *cobra.Command, _ []string) error {
			slog.Info("probing feasible problem sizes", "start", opts.Start, "m", opts.M, "budget", opts.Budget)

			maxN, err := probe.Probe(cmd.Context(), opts)
			if err != nil {
				return err
			}
			slog.Info("probe finished", "max_n", maxN, "m", opts.M)

			return nil
		},
	}

	cmd.Flags().IntVar(&opts.Start, "start", opts.Start, "first branch count to attempt")
	cmd.Flags().IntVar(&opts.M, "m", opts.M, "constant leaves-per-branch parameter")
	cmd.Flags().IntVar(&opts.Increment, "increment", opts.Increment, "step between attempts")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "inclusive upper bound on n (0 = unbounded)")
	cmd.Flags().DurationVar(&opts.Budget, "budget", opts.Budget, "wall-clock allowance per attempt")

	return cmd
}
