package engine

// ============================================================================
// CHART BUILDER — Produces ChartConfig from a Summary
// ============================================================================
// One builder per dashboard chart. Builders return nil when there is no
// data to plot; consumers render an empty placeholder instead.
// ============================================================================

// Default color palette for chart series.
var defaultColors = []string{
	"#4F46E5", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6",
	"#06B6D4", "#EC4899", "#84CC16", "#F97316", "#6366F1",
}

// MonthlyTrendChart builds the average-session-duration-per-month line chart.
// Points arrive in calendar order from the Summary and stay that way.
func MonthlyTrendChart(s Summary) *ChartConfig {
	if len(s.MonthlyAvgDuration) == 0 {
		return nil
	}

	points := make([]ChartPoint, 0, len(s.MonthlyAvgDuration))
	for _, m := range s.MonthlyAvgDuration {
		points = append(points, ChartPoint{
			Label: m.Month,
			Value: RoundTo2(m.AvgDurationMinutes),
		})
	}

	return &ChartConfig{
		ChartType: "line",
		Title:     "Average Session Duration per Month (Minutes)",
		XAxis:     "Month",
		YAxis:     "Minutes",
		Series: []ChartSeries{{
			Name:  "Avg Duration",
			Data:  points,
			Color: defaultColors[0],
		}},
		Colors:   assignColors(1),
		ShowGrid: true,
	}
}

// GameShareChart builds the share-of-sessions-by-game pie chart.
func GameShareChart(s Summary) *ChartConfig {
	return categoryChart("pie", "Share of Sessions by Game", "Game", s.GameShare)
}

// DeviceUsageChart builds the sessions-by-device bar chart.
func DeviceUsageChart(s Summary) *ChartConfig {
	return categoryChart("bar", "Sessions by Device Type", "Device", s.DeviceCounts)
}

func categoryChart(chartType, title, axis string, counts []CategoryCount) *ChartConfig {
	if len(counts) == 0 {
		return nil
	}

	points := make([]ChartPoint, 0, len(counts))
	for _, c := range counts {
		points = append(points, ChartPoint{Label: c.Label, Value: float64(c.Count)})
	}

	return &ChartConfig{
		ChartType: chartType,
		Title:     title,
		XAxis:     axis,
		YAxis:     "Sessions",
		Series: []ChartSeries{{
			Name: "Sessions",
			Data: points,
		}},
		Colors:     assignColors(len(points)),
		ShowLegend: true,
		ShowGrid:   chartType != "pie",
	}
}

func assignColors(count int) []string {
	colors := make([]string, count)
	for i := 0; i < count; i++ {
		colors[i] = defaultColors[i%len(defaultColors)]
	}
	return colors
}
