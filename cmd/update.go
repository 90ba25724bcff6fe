package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"lynx-bridge/core/history"
	"lynx-bridge/core/metrics"
	"lynx-bridge/core/textenc"
	"lynx-bridge/feature/update"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var errNegativeLaps = errors.New("--laps must not be negative")

var (
	updateEVT      string
	updateCSV      []string
	updateLaps     float64
	updateBackup   bool
	updateDryRun   bool
	updateEncoding string
)

// updateCmd merges GCPV exports into an EVT file.
var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Merge GCPV race exports into a FinishLynx EVT file",
	Long: `Reads one or more GCPV CSV exports and adds or updates the matching races
in the EVT file. Races already in the EVT file that the exports do not mention
are kept. The EVT file is rewritten atomically and backed up first when
backups are enabled.

Examples:
  # Update lynx.evt from a single export
  lynx-bridge update --evt lynx.evt --csv day1.csv

  # Several exports, every race forced to 9 laps, UTF-8 output
  lynx-bridge update --evt lynx.evt --csv a.csv --csv b.csv --laps 9 --encoding utf-8

  # Show what would change without writing anything
  lynx-bridge update --evt lynx.evt --csv day1.csv --dry-run`,
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().StringVar(&updateEVT, "evt", "", "EVT file to update (created when missing)")
	updateCmd.Flags().StringArrayVar(&updateCSV, "csv", nil, "GCPV CSV export (repeatable)")
	updateCmd.Flags().Float64Var(&updateLaps, "laps", 0, "Override the lap count of every imported race")
	updateCmd.Flags().BoolVar(&updateBackup, "backup", false, "Back up the EVT file even when automatic backups are off")
	updateCmd.Flags().BoolVar(&updateDryRun, "dry-run", false, "Report planned changes without writing")
	updateCmd.Flags().StringVar(&updateEncoding, "encoding", "", "Output encoding (ascii, utf-8, utf-16); defaults to output.encoding")
	_ = updateCmd.MarkFlagRequired("evt")
	_ = updateCmd.MarkFlagRequired("csv")

	RootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, l, err := loadRuntime()
	if err != nil {
		return err
	}
	defer func() { _ = l.Sync() }()

	// Settle every argument before the journal database is opened or created.
	encName := updateEncoding
	if strings.TrimSpace(encName) == "" {
		encName = cfg.Output.Encoding
	}
	if _, err := textenc.Parse(encName); err != nil {
		return err
	}
	if cmd.Flags().Changed("laps") && updateLaps < 0 {
		return errNegativeLaps
	}

	var store history.Store
	if cfg.History.Enabled {
		if j, err := history.Open(ctx, cfg.History); err != nil {
			l.Warn("Update history unavailable", zap.Error(err))
		} else {
			defer func() { _ = j.Close() }()
			store = j
		}
	}

	var recorder *metrics.Recorder
	if cfg.Metrics.Textfile != "" {
		recorder = metrics.New()
	}

	svc := update.NewService(update.Options{
		Encoding:        cfg.Output.Encoding,
		Backup:          cfg.Backup,
		Races:           cfg.Races,
		MetricsTextfile: cfg.Metrics.Textfile,
	}, l, store, recorder)

	req := update.Request{
		EVTPath:  updateEVT,
		CSVPaths: updateCSV,
		Backup:   updateBackup,
		DryRun:   updateDryRun,
		Encoding: updateEncoding,
	}
	if cmd.Flags().Changed("laps") {
		laps := updateLaps
		req.LapOverride = &laps
	}

	result, err := svc.Update(ctx, req)
	if err != nil {
		return err
	}

	printUpdateReport(cmd.OutOrStdout(), result)
	return nil
}

func printUpdateReport(w io.Writer, result *update.Result) {
	for _, a := range result.Actions {
		line := fmt.Sprintf("%-6s race %-5s %s", a.Type, a.Key, a.EventName)
		if len(a.Reasons) > 0 {
			line += " [" + strings.Join(a.Reasons, "; ") + "]"
		}
		fmt.Fprintln(w, line)
	}

	if result.DryRun {
		fmt.Fprintln(w, "Dry run: EVT file not written")
	}
	fmt.Fprintln(w, result.Summary())
}
