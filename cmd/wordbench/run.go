package main

import (
	"context"
	"fmt"
	"runtime"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"wordbench/internal/benchmark"
	"wordbench/internal/db"
	"wordbench/internal/ui"
)

// Factory variables allow mocking in tests.
var (
	newRunnerFunc = func() benchmark.Runner { return benchmark.NewGoRunner() }
	newStoreFunc  = func(path string) (db.Store, error) { return db.NewSQLiteStore(path) }
)

func newRunCmd() *cobra.Command {
	var (
		save      bool
		compare   bool
		threshold float64
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the Golang document benchmarks and record a platform report",
		Long: `Executes 'go test -bench' for the document-creation workloads, parses
the output into normalized records, and writes the Golang platform report
(performance_report.json plus the raw benchmark output) into the results
directory. Results can be saved to history and compared against the
previous saved run to detect performance regressions.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			resultsDir := viper.GetString("results_dir")
			pkg := viper.GetString("bench_package")
			if len(args) > 0 {
				pkg = args[0]
			}
			if !cmd.Flags().Changed("threshold") {
				threshold = viper.GetFloat64("threshold")
			}

			ctx, cancel := contextWithTimeout(cmd, viper.GetDuration("bench_timeout"))
			defer cancel()

			fmt.Fprintf(cmd.OutOrStdout(), "Running benchmarks for %s\n", pkg)
			output, err := newRunnerFunc().Run(ctx, pkg)
			if err != nil {
				return err
			}

			records := benchmark.ParseGoBenchOutput(output)
			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No benchmark results found.")
				return nil
			}

			if _, err := benchmark.WriteRawOutput(resultsDir, benchmark.PlatformGolang, output); err != nil {
				return fmt.Errorf("failed to write raw benchmark output: %w", err)
			}
			rep := benchmark.Report{
				Timestamp: time.Now().Format(time.RFC3339),
				Platform:  benchmark.PlatformGolang,
				GoVersion: runtime.Version(),
				Results:   records,
			}
			path, err := benchmark.WriteReport(resultsDir, rep)
			if err != nil {
				return fmt.Errorf("failed to write platform report: %w", err)
			}

			printRecords(cmd, records)
			fmt.Fprintf(cmd.OutOrStdout(), "\nReport written to %s\n", path)

			if !save && !compare {
				return nil
			}

			store, err := newStoreFunc(viper.GetString("history_db"))
			if err != nil {
				return fmt.Errorf("failed to open history store: %w", err)
			}
			defer store.Close()

			if compare {
				if err := compareWithHistory(cmd, store, records, threshold); err != nil {
					return err
				}
			}
			if save {
				if _, err := store.SaveRun(db.Run{
					Platform: benchmark.PlatformGolang,
					Version:  runtime.Version(),
					Records:  records,
				}); err != nil {
					return fmt.Errorf("failed to save run to history: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Results saved to history")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "Save results to history")
	cmd.Flags().BoolVar(&compare, "compare", false, "Compare with the previous saved run")
	cmd.Flags().Float64Var(&threshold, "threshold", 10.0, "Percentage threshold for regression failure")
	return cmd
}

func compareWithHistory(cmd *cobra.Command, store db.Store, records []benchmark.Record, threshold float64) error {
	prev, err := store.LatestRun(benchmark.PlatformGolang)
	if err != nil {
		return fmt.Errorf("failed to load previous run: %w", err)
	}
	if prev == nil {
		fmt.Fprintln(cmd.OutOrStdout(), "No previous run to compare against.")
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\nComparison with previous run (%s):\n",
		prev.CreatedAt.Format("2006-01-02 15:04:05"))

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "TEST\tAVG MS\tDIFF %")
	var worst *benchmark.Comparison
	for _, c := range benchmark.Compare(prev.Records, records) {
		fmt.Fprintf(w, "%s\t%.2f\t%+.2f%%\n", c.Name, float64(c.Curr.AvgTimeMs), c.AvgDiff)
		if c.AvgDiff > threshold && (worst == nil || c.AvgDiff > worst.AvgDiff) {
			cc := c
			worst = &cc
		}
	}
	w.Flush()

	if worst != nil {
		fmt.Fprintln(cmd.OutOrStdout(), ui.RenderRegression(worst.Name, worst.AvgDiff))
		return fmt.Errorf("performance regression detected: %s is %.2f%% slower", worst.Name, worst.AvgDiff)
	}
	return nil
}

func contextWithTimeout(cmd *cobra.Command, d time.Duration) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}

func printRecords(cmd *cobra.Command, records []benchmark.Record) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "TEST\tAVG MS\tMIN MS\tMAX MS\tITER\tB/OP\tALLOCS/OP")
	for _, r := range records {
		fmt.Fprintf(w, "%s\t%.2f\t%.2f\t%.2f\t%d\t%d\t%d\n",
			r.Name, float64(r.AvgTimeMs), float64(r.MinTimeMs), float64(r.MaxTimeMs),
			r.Iterations, r.BytesPerOp, r.AllocsPerOp)
	}
	w.Flush()
}

func init() {
	rootCmd.AddCommand(newRunCmd())
}
