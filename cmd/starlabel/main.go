// Command starlabel builds star-family graphs, labels them, and reports
// whether the induced edge weights are pairwise distinct.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	rootCmd := &cobra.Command{
		Use:   "starlabel",
		Short: "Edge-irregular k-labelings for star-like graph families",
		Long: `starlabel constructs amalgamated stars, homogeneous stars S(n,3), and
snowflake graphs, applies the family's labeling strategy, and verifies
that every edge weight (sum of endpoint labels) is unique.`,
	}

	rootCmd.AddCommand(newBuildCmd())
	rootCmd.AddCommand(newProbeCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
