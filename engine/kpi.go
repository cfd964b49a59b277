package engine

// ============================================================================
// KPI BUILDER — Summary → display-ready metric cards
// ============================================================================

// BuildKPIs converts a Summary into the four metric cards the dashboard
// shows. The averages and modes read "N/A" when no sessions matched.
func BuildKPIs(s Summary) []KPI {
	avg := "N/A"
	if s.TotalSessions > 0 {
		avg = FormatFloat1(s.AvgDurationMinutes)
	}

	return []KPI{
		{Label: "Total Play Time (Hrs)", Value: FormatFloat1(s.TotalDurationHours)},
		{Label: "Avg Session (Mins)", Value: avg},
		{Label: "Top Game", Value: s.TopGame},
		{Label: "Top Device", Value: s.TopDevice},
	}
}
