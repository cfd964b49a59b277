package engine

import (
	"fmt"

	"github.com/lumoplay/usagedash/dataset"
)

// ============================================================================
// TABLE BUILDER — Produces TableData from a (filtered) session table
// ============================================================================

// knownColumns in display order, with the pass-through columns appended in
// their source order afterwards.
var knownColumns = []Column{
	{Key: "date", Label: "Date", Type: "date", Align: "left"},
	{Key: "month", Label: "Month", Type: "text", Align: "left"},
	{Key: "game", Label: "Game", Type: "text", Align: "left"},
	{Key: "device", Label: "Device", Type: "text", Align: "left"},
	{Key: "area", Label: "Area", Type: "text", Align: "left"},
	{Key: "duration_minutes", Label: "Duration (Mins)", Type: "number", Align: "right"},
}

// SessionTable produces the raw-data view of a table, one row per session.
func SessionTable(t *dataset.Table) *TableData {
	columns := make([]Column, 0, len(knownColumns))
	columns = append(columns, knownColumns...)

	interpreted := make(map[string]bool, len(knownColumns))
	for _, c := range knownColumns {
		interpreted[c.Key] = true
	}
	var extraKeys []string
	for _, col := range t.Columns {
		if !interpreted[col] {
			extraKeys = append(extraKeys, col)
			columns = append(columns, Column{
				Key:   col,
				Label: labelFor(col),
				Type:  "text",
				Align: "left",
			})
		}
	}

	rows := make([][]string, 0, t.Len())
	var total float64
	for _, s := range t.Sessions {
		row := []string{
			s.Date.Format("2006-01-02"),
			s.Month,
			s.Game,
			s.Device,
			s.Area,
			fmt.Sprintf("%.1f", s.DurationMinutes),
		}
		for _, key := range extraKeys {
			row = append(row, s.Extra[key])
		}
		rows = append(rows, row)
		total += s.DurationMinutes
	}

	return &TableData{
		Title:   "Raw Data Source",
		Columns: columns,
		Rows:    rows,
		Totals: &Totals{
			Label: fmt.Sprintf("Total (%d sessions)", t.Len()),
			Values: map[string]string{
				"duration_minutes": FormatFloat1(total),
			},
		},
	}
}

// labelFor turns a normalized column key into a display label.
// "start_time" → "Start Time".
func labelFor(key string) string {
	label := make([]byte, 0, len(key))
	upper := true
	for i := 0; i < len(key); i++ {
		c := key[i]
		if c == '_' {
			label = append(label, ' ')
			upper = true
			continue
		}
		if upper && c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		upper = false
		label = append(label, c)
	}
	return string(label)
}
