package engine

import (
	"testing"
	"time"

	"github.com/lumoplay/usagedash/dataset"
)

// ============================================================================
// AGGREGATOR TESTS
// ============================================================================

func TestSummarizeEmptyTable(t *testing.T) {
	s := Summarize(&dataset.Table{})

	if s.TotalSessions != 0 {
		t.Errorf("TotalSessions = %d, want 0", s.TotalSessions)
	}
	if s.TotalDurationHours != 0 {
		t.Errorf("TotalDurationHours = %v, want 0", s.TotalDurationHours)
	}
	if s.TopGame != "N/A" || s.TopDevice != "N/A" {
		t.Errorf("TopGame/TopDevice = %q/%q, want N/A/N/A", s.TopGame, s.TopDevice)
	}
	if len(s.MonthlyAvgDuration) != 0 || len(s.GameShare) != 0 || len(s.DeviceCounts) != 0 {
		t.Error("grouped summaries should be empty for an empty table")
	}

	kpis := BuildKPIs(s)
	if kpis[1].Value != "N/A" {
		t.Errorf("avg KPI = %q, want N/A", kpis[1].Value)
	}
}

func TestSummarizeTotalsAndAverage(t *testing.T) {
	table := &dataset.Table{Sessions: []dataset.Session{
		session(day(2025, time.May, 1), "A", "D1", "X", 30),
		session(day(2025, time.May, 2), "A", "D1", "X", 60),
		session(day(2025, time.May, 3), "B", "D2", "X", 90),
	}}

	s := Summarize(table)
	if s.TotalSessions != 3 {
		t.Errorf("TotalSessions = %d, want 3", s.TotalSessions)
	}
	if s.TotalDurationHours != 3.0 {
		t.Errorf("TotalDurationHours = %v, want 3.0", s.TotalDurationHours)
	}
	if s.AvgDurationMinutes != 60.0 {
		t.Errorf("AvgDurationMinutes = %v, want 60.0", s.AvgDurationMinutes)
	}
}

func TestSummarizeMonthlyCalendarOrder(t *testing.T) {
	table := &dataset.Table{Sessions: []dataset.Session{
		session(day(2025, time.December, 5), "A", "D", "X", 40),
		session(day(2025, time.January, 9), "A", "D", "X", 20),
		session(day(2025, time.March, 2), "A", "D", "X", 60),
		session(day(2025, time.March, 3), "A", "D", "X", 30),
	}}

	s := Summarize(table)
	months := s.MonthlyAvgDuration
	if len(months) != 3 {
		t.Fatalf("got %d months, want 3", len(months))
	}

	wantOrder := []string{"January", "March", "December"}
	wantNums := []int{1, 3, 12}
	wantAvgs := []float64{20, 45, 40}
	for i := range months {
		if months[i].Month != wantOrder[i] || months[i].MonthNum != wantNums[i] {
			t.Errorf("months[%d] = %s/%d, want %s/%d",
				i, months[i].Month, months[i].MonthNum, wantOrder[i], wantNums[i])
		}
		if months[i].AvgDurationMinutes != wantAvgs[i] {
			t.Errorf("months[%d] avg = %v, want %v", i, months[i].AvgDurationMinutes, wantAvgs[i])
		}
	}
}

func TestTopGameTieBreaksOnFirstSeen(t *testing.T) {
	table := &dataset.Table{Sessions: []dataset.Session{
		session(day(2025, time.May, 1), "A", "D", "X", 10),
		session(day(2025, time.May, 2), "B", "D", "X", 10),
		session(day(2025, time.May, 3), "A", "D", "X", 10),
		session(day(2025, time.May, 4), "B", "D", "X", 10),
	}}

	if s := Summarize(table); s.TopGame != "A" {
		t.Errorf("TopGame = %q, want %q (first-seen among tied maxima)", s.TopGame, "A")
	}
}

func TestCategoryCounts(t *testing.T) {
	table := sampleTable()
	s := Summarize(table)

	wantGames := []CategoryCount{{"Tetris", 2}, {"Beat Saber", 2}}
	if len(s.GameShare) != len(wantGames) {
		t.Fatalf("GameShare = %v, want %v", s.GameShare, wantGames)
	}
	for i, want := range wantGames {
		if s.GameShare[i] != want {
			t.Errorf("GameShare[%d] = %v, want %v", i, s.GameShare[i], want)
		}
	}

	total := 0
	for _, d := range s.DeviceCounts {
		total += d.Count
	}
	if total != table.Len() {
		t.Errorf("device counts sum to %d, want %d", total, table.Len())
	}
}

func TestFormatInt(t *testing.T) {
	tests := []struct {
		input    int
		expected string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-4200, "-4,200"},
	}
	for _, tt := range tests {
		if got := FormatInt(tt.input); got != tt.expected {
			t.Errorf("FormatInt(%d) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestFormatFloat1(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{0, "0.0"},
		{3, "3.0"},
		{59.96, "60.0"},
		{1234.56, "1,234.6"},
		{-7.25, "-7.3"},
	}
	for _, tt := range tests {
		if got := FormatFloat1(tt.input); got != tt.expected {
			t.Errorf("FormatFloat1(%v) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
