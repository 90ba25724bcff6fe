package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"lynx-bridge/core/laps"
	"lynx-bridge/core/race"
	"lynx-bridge/feature/gcpv"

	"github.com/spf13/cobra"
)

var (
	parseCSV     []string
	parseSkaters bool
)

// parseCmd previews the races found in GCPV exports.
var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Preview the races found in GCPV exports",
	Long: `Parses GCPV CSV exports and prints every race with the event name and lap
count it would get in the EVT file. Nothing is written.`,
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringArrayVar(&parseCSV, "csv", nil, "GCPV CSV export (repeatable)")
	parseCmd.Flags().BoolVar(&parseSkaters, "skaters", false, "List the skaters of each race")
	_ = parseCmd.MarkFlagRequired("csv")

	RootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadRuntime()
	if err != nil {
		return err
	}

	table, err := laps.Parse(cfg.Races.DistanceLaps)
	if err != nil {
		return err
	}
	override, err := cfg.Races.Override()
	if err != nil {
		return err
	}

	sources, err := gcpv.ParseFiles(parseCSV...)
	if err != nil {
		return err
	}
	table.Apply(sources)

	printSources(cmd.OutOrStdout(), sources, cfg.Races.TrimSuffixes, override, parseSkaters)
	return nil
}

func printSources(w io.Writer, sources []race.Source, trim []string, override *float64, skaters bool) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RACE\tEVENT\tLAPS\tSKATERS")

	for _, src := range sources {
		l := src.Laps
		if override != nil {
			l = override
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", src.Number, src.EventName(trim), race.FormatLaps(l), len(src.Skaters))

		if !skaters {
			continue
		}
		for _, s := range src.Skaters {
			fmt.Fprintf(tw, "\t  lane %d: %s\t%s\t\n", s.Lane, s.FullName(), s.Club)
		}
	}
	_ = tw.Flush()

	fmt.Fprintf(w, "%d races\n", len(sources))
}
