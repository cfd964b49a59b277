package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// ============================================================================
// USAGEDASH CLI — dashboard server and offline summaries
// ============================================================================

const version = "0.1.0"

var configPath string

var rootCmd = &cobra.Command{
	Use:     "usagedash",
	Short:   "LUMOPlay usage & metrics dashboard",
	Version: version,
	Long: `usagedash loads a gaming-session spreadsheet (xlsx, xls or csv),
normalizes it, and serves an interactive dashboard of usage KPIs and charts.

Examples:
  usagedash serve
  usagedash summary --file usage_metrics.xlsx --format text
  usagedash summary --file usage_metrics.xlsx --game Tetris --game "Beat Saber"
  usagedash export --file usage_metrics.xlsx --out ./report`,
}

func main() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to usagedash.toml")
	rootCmd.AddCommand(serveCmd, summaryCmd, exportCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
