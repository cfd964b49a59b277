package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/lumoplay/usagedash/dataset"
	"github.com/lumoplay/usagedash/engine"
)

var (
	summaryFile   string
	summaryFormat string
	summaryStart  string
	summaryEnd    string
	summaryGames  []string
	summaryDevs   []string
	summaryAreas  []string
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print usage KPIs for a spreadsheet",
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := dataset.LoadFile(summaryFile)
		if err != nil {
			return err
		}

		c, err := flagConstraints(cmd, table)
		if err != nil {
			return err
		}
		summary := engine.Summarize(engine.Filter(table, c))

		switch summaryFormat {
		case "text":
			for _, kpi := range engine.BuildKPIs(summary) {
				fmt.Printf("%-22s %s\n", kpi.Label+":", kpi.Value)
			}
			fmt.Printf("%-22s %d\n", "Total Sessions:", summary.TotalSessions)
		case "pretty":
			return writeJSON(os.Stdout, summary, true)
		default:
			return writeJSON(os.Stdout, summary, false)
		}
		return nil
	},
}

func init() {
	summaryCmd.Flags().StringVar(&summaryFile, "file", "usage_metrics.xlsx", "spreadsheet to summarize")
	summaryCmd.Flags().StringVar(&summaryFormat, "format", "text", "output format: text, json, pretty")
	summaryCmd.Flags().StringVar(&summaryStart, "start", "", "start date (YYYY-MM-DD, inclusive)")
	summaryCmd.Flags().StringVar(&summaryEnd, "end", "", "end date (YYYY-MM-DD, inclusive)")
	summaryCmd.Flags().StringArrayVar(&summaryGames, "game", nil, "restrict to game (repeatable)")
	summaryCmd.Flags().StringArrayVar(&summaryDevs, "device", nil, "restrict to device (repeatable)")
	summaryCmd.Flags().StringArrayVar(&summaryAreas, "area", nil, "restrict to area (repeatable)")
}

// flagConstraints starts from the table's defaults and narrows by whichever
// filter flags were given.
func flagConstraints(cmd *cobra.Command, table *dataset.Table) (engine.Constraints, error) {
	c := engine.DefaultConstraints(table)

	if summaryStart != "" {
		d, err := time.Parse("2006-01-02", summaryStart)
		if err != nil {
			return c, fmt.Errorf("--start: %w", err)
		}
		c.Start = d
	}
	if summaryEnd != "" {
		d, err := time.Parse("2006-01-02", summaryEnd)
		if err != nil {
			return c, fmt.Errorf("--end: %w", err)
		}
		c.End = d
	}
	if cmd.Flags().Changed("game") {
		c.Games = summaryGames
	}
	if cmd.Flags().Changed("device") {
		c.Devices = summaryDevs
	}
	if cmd.Flags().Changed("area") {
		c.Areas = summaryAreas
	}
	return c, nil
}

func writeJSON(w *os.File, v interface{}, pretty bool) error {
	var out []byte
	var err error
	if pretty {
		out, err = json.MarshalIndent(v, "", "  ")
	} else {
		out, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(w, string(out))
	return nil
}
