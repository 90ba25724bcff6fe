package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"lynx-bridge/core/race"
	"lynx-bridge/feature/evt"

	"github.com/spf13/cobra"
)

var showEVT string

// showCmd prints the races stored in an EVT file.
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the races stored in an EVT file",
	RunE:  runShow,
}

func init() {
	showCmd.Flags().StringVar(&showEVT, "evt", "", "EVT file to read")
	_ = showCmd.MarkFlagRequired("evt")

	RootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	races, err := evt.ReadFile(showEVT)
	if err != nil {
		return err
	}
	race.SortTargets(races)

	printTargets(cmd.OutOrStdout(), races)
	return nil
}

func printTargets(w io.Writer, races []race.Target) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RACE\tEVENT\tLAPS\tSKATERS")
	for _, r := range races {
		ids := ""
		for i, s := range r.SortedSkaters() {
			if i > 0 {
				ids += " "
			}
			ids += fmt.Sprintf("%d:%s", s.Lane, s.ID)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Number, r.EventName, race.FormatLaps(r.Laps), ids)
	}
	_ = tw.Flush()

	fmt.Fprintf(w, "%d races\n", len(races))
}
