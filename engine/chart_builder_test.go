package engine

import (
	"testing"
	"time"

	"github.com/lumoplay/usagedash/dataset"
)

func TestMonthlyTrendChart(t *testing.T) {
	table := &dataset.Table{Sessions: []dataset.Session{
		session(day(2025, time.December, 5), "A", "D", "X", 40),
		session(day(2025, time.January, 9), "A", "D", "X", 20),
	}}

	cfg := MonthlyTrendChart(Summarize(table))
	if cfg == nil {
		t.Fatal("expected a chart config")
	}
	if cfg.ChartType != "line" {
		t.Errorf("ChartType = %q, want line", cfg.ChartType)
	}
	if len(cfg.Series) != 1 {
		t.Fatalf("got %d series, want 1", len(cfg.Series))
	}

	points := cfg.Series[0].Data
	if len(points) != 2 || points[0].Label != "January" || points[1].Label != "December" {
		t.Errorf("points = %v, want January then December", points)
	}
}

func TestCategoryCharts(t *testing.T) {
	s := Summarize(sampleTable())

	pie := GameShareChart(s)
	if pie == nil || pie.ChartType != "pie" {
		t.Fatalf("GameShareChart = %+v, want pie chart", pie)
	}
	if len(pie.Series[0].Data) != 2 {
		t.Errorf("got %d slices, want 2", len(pie.Series[0].Data))
	}

	bar := DeviceUsageChart(s)
	if bar == nil || bar.ChartType != "bar" {
		t.Fatalf("DeviceUsageChart = %+v, want bar chart", bar)
	}
	if len(bar.Colors) != len(bar.Series[0].Data) {
		t.Errorf("got %d colors for %d bars", len(bar.Colors), len(bar.Series[0].Data))
	}
}

func TestChartsNilOnEmptyInput(t *testing.T) {
	s := Summarize(&dataset.Table{})

	if cfg := MonthlyTrendChart(s); cfg != nil {
		t.Errorf("MonthlyTrendChart = %+v, want nil", cfg)
	}
	if cfg := GameShareChart(s); cfg != nil {
		t.Errorf("GameShareChart = %+v, want nil", cfg)
	}
	if cfg := DeviceUsageChart(s); cfg != nil {
		t.Errorf("DeviceUsageChart = %+v, want nil", cfg)
	}
}

func TestSessionTable(t *testing.T) {
	table := sampleTable()
	td := SessionTable(table)

	if len(td.Rows) != table.Len() {
		t.Fatalf("got %d rows, want %d", len(td.Rows), table.Len())
	}
	if td.Rows[0][0] != "2025-01-05" {
		t.Errorf("first date cell = %q, want 2025-01-05", td.Rows[0][0])
	}
	if td.Totals == nil || td.Totals.Values["duration_minutes"] != "225.0" {
		t.Errorf("Totals = %+v, want duration total 225.0", td.Totals)
	}
}
