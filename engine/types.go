package engine

// ============================================================================
// ENGINE TYPES — Session Analytics
// ============================================================================

// Summary holds every aggregate the dashboard displays, computed from a
// (usually filtered) table. Raw numerics only — display formatting,
// including the "N/A" markers for the numeric KPIs on an empty table,
// happens in the KPI builder.
type Summary struct {
	TotalSessions      int     `json:"totalSessions"`
	TotalDurationHours float64 `json:"totalDurationHours"`
	AvgDurationMinutes float64 `json:"avgDurationMinutes"`

	// Most frequent values; "N/A" when the table is empty.
	TopGame   string `json:"topGame"`
	TopDevice string `json:"topDevice"`

	// Mean session length per month, ascending calendar order.
	MonthlyAvgDuration []MonthlyDuration `json:"monthlyAvgDuration"`

	// Session counts per category, first-seen row order.
	GameShare    []CategoryCount `json:"gameShare"`
	DeviceCounts []CategoryCount `json:"deviceCounts"`
}

// MonthlyDuration is the mean session length for one calendar month.
type MonthlyDuration struct {
	MonthNum           int     `json:"monthNum"`
	Month              string  `json:"month"`
	AvgDurationMinutes float64 `json:"avgDurationMinutes"`
}

// CategoryCount is a (label, session count) pair for one categorical value.
type CategoryCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// KPI is a single scalar metric card.
type KPI struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ============================================================================
// CHART TYPES — render-ready chart description
// ============================================================================

// ChartConfig defines how to render a chart. The web frontend and the PNG
// renderer both consume this shape.
type ChartConfig struct {
	ChartType  string        `json:"chartType"` // "line", "pie", "bar"
	Title      string        `json:"title"`
	XAxis      string        `json:"xAxis,omitempty"`
	YAxis      string        `json:"yAxis,omitempty"`
	Series     []ChartSeries `json:"series"`
	Colors     []string      `json:"colors,omitempty"`
	ShowLegend bool          `json:"showLegend"`
	ShowGrid   bool          `json:"showGrid"`
}

// ChartSeries represents a data series in a chart.
type ChartSeries struct {
	Name  string       `json:"name"`
	Data  []ChartPoint `json:"data"`
	Color string       `json:"color,omitempty"`
}

// ChartPoint represents a single data point.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// ============================================================================
// TABLE TYPES — render-ready raw-data table
// ============================================================================

// TableData defines how to render a table.
type TableData struct {
	Title   string     `json:"title"`
	Columns []Column   `json:"columns"`
	Rows    [][]string `json:"rows"`
	Totals  *Totals    `json:"totals,omitempty"`
}

// Column defines a table column.
type Column struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Type  string `json:"type"`  // "text", "date", "number"
	Align string `json:"align"` // "left", "center", "right"
}

// Totals is the footer row of a table.
type Totals struct {
	Label  string            `json:"label"`
	Values map[string]string `json:"values"`
}
