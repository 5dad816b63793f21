package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List stored benchmark runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := newStoreFunc(viper.GetString("history_db"))
			if err != nil {
				return fmt.Errorf("failed to open history store: %w", err)
			}
			defer store.Close()

			runs, err := store.ListRuns(limit)
			if err != nil {
				return fmt.Errorf("failed to list runs: %w", err)
			}
			if len(runs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No stored runs.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "ID\tPLATFORM\tVERSION\tRESULTS\tDATE")
			for _, run := range runs {
				fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\n",
					run.ID, run.Platform, run.Version, run.RecordCount,
					run.CreatedAt.Format("2006-01-02 15:04:05"))
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of runs to list")
	return cmd
}

func init() {
	rootCmd.AddCommand(newHistoryCmd())
}
