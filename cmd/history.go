package cmd

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"lynx-bridge/core/history"

	"github.com/spf13/cobra"
)

var historyLimit int

// historyCmd lists journaled updates.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent updates from the journal",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Number of updates to show (0 for all)")

	RootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, _, err := loadRuntime()
	if err != nil {
		return err
	}
	if !cfg.History.Enabled {
		return fmt.Errorf("update history is disabled (history.enabled=false)")
	}

	j, err := history.Open(ctx, cfg.History)
	if err != nil {
		return err
	}
	defer func() { _ = j.Close() }()

	records, err := j.List(ctx, historyLimit)
	if err != nil {
		return err
	}

	printHistory(cmd.OutOrStdout(), records)
	return nil
}

func printHistory(w io.Writer, records []history.UpdateRecord) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "WHEN\tEVT\tADDED\tUPDATED\tUNCHANGED\tTOTAL\tNOTE")
	for _, r := range records {
		note := ""
		switch {
		case r.DryRun:
			note = "dry run"
		case r.BackupPath != "":
			note = "backup " + r.BackupPath
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%d\t%s\n",
			r.RunAt.Local().Format("2006-01-02 15:04:05"), r.EVTPath, r.Added, r.Updated, r.Unchanged, r.Total, note)
	}
	_ = tw.Flush()
}
