package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lumoplay/usagedash/dataset"
	"github.com/lumoplay/usagedash/engine"
	"github.com/lumoplay/usagedash/render"
)

var (
	exportFile string
	exportOut  string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write chart PNGs and an aggregate CSV for a spreadsheet",
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := dataset.LoadFile(exportFile)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(exportOut, 0o755); err != nil {
			return err
		}

		summary := engine.Summarize(engine.Filter(table, engine.DefaultConstraints(table)))

		charts := []struct {
			name string
			cfg  *engine.ChartConfig
		}{
			{"monthly.png", engine.MonthlyTrendChart(summary)},
			{"games.png", engine.GameShareChart(summary)},
			{"devices.png", engine.DeviceUsageChart(summary)},
		}
		for _, c := range charts {
			if c.cfg == nil {
				continue
			}
			if err := writeChartPNG(filepath.Join(exportOut, c.name), c.cfg); err != nil {
				return err
			}
			fmt.Println("wrote", filepath.Join(exportOut, c.name))
		}

		csvPath := filepath.Join(exportOut, "summary.csv")
		if err := writeSummaryCSV(csvPath, summary); err != nil {
			return err
		}
		fmt.Println("wrote", csvPath)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFile, "file", "usage_metrics.xlsx", "spreadsheet to export")
	exportCmd.Flags().StringVar(&exportOut, "out", "report", "output directory")
}

func writeChartPNG(path string, cfg *engine.ChartConfig) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return render.PNG(cfg, render.DefaultWidth, render.DefaultHeight, f)
}

// writeSummaryCSV emits the aggregates as one sheet-ready CSV: the KPI block
// first, then each grouped summary.
func writeSummaryCSV(path string, s engine.Summary) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	cw.Write([]string{"Metric", "Value"})
	for _, kpi := range engine.BuildKPIs(s) {
		cw.Write([]string{kpi.Label, kpi.Value})
	}
	cw.Write([]string{"Total Sessions", engine.FormatInt(s.TotalSessions)})
	cw.Write(nil)

	cw.Write([]string{"Month", "Avg Duration (Mins)"})
	for _, m := range s.MonthlyAvgDuration {
		cw.Write([]string{m.Month, fmt.Sprintf("%.2f", m.AvgDurationMinutes)})
	}
	cw.Write(nil)

	cw.Write([]string{"Game", "Sessions"})
	for _, g := range s.GameShare {
		cw.Write([]string{g.Label, fmt.Sprintf("%d", g.Count)})
	}
	cw.Write(nil)

	cw.Write([]string{"Device", "Sessions"})
	for _, d := range s.DeviceCounts {
		cw.Write([]string{d.Label, fmt.Sprintf("%d", d.Count)})
	}

	return cw.Error()
}
