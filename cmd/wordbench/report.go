package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"wordbench/internal/benchmark"
	"wordbench/internal/report"
	"wordbench/internal/ui"
)

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Build the cross-platform comparison report and charts",
		Long: `Loads every platform report found in the results directory, pivots the
records into a test-by-platform comparison, and writes the Markdown report
plus the chart images. Platforms whose report is missing are left out of
the comparison; a malformed report skips only that platform.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			resultsDir := viper.GetString("results_dir")

			reports, loadErrs := benchmark.LoadReports(resultsDir)
			for _, le := range loadErrs {
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", le)
			}

			gen := &report.Generator{
				ResultsDir: resultsDir,
				Baseline:   viper.GetString("baseline"),
			}
			out, err := gen.Generate(reports)
			if errors.Is(err, report.ErrNoData) {
				fmt.Fprintln(cmd.OutOrStdout(),
					"No benchmark results found; run the platform benchmarks first.")
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.RenderSummary(out.Comparison))
			fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", out.MarkdownPath)
			for _, p := range out.ChartPaths {
				fmt.Fprintf(cmd.OutOrStdout(), "Chart written to %s\n", p)
			}
			return nil
		},
	}
	return cmd
}

func init() {
	rootCmd.AddCommand(newReportCmd())
}
