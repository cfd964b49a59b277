package engine

import (
	"time"

	"github.com/lumoplay/usagedash/dataset"
)

// ============================================================================
// FILTERS — date range + categorical allow-lists
// ============================================================================
// Single-pass filter: checks all constraints per session in one loop.
// Pure function over the input table; original row order is preserved.
// ============================================================================

// Constraints is the user-selected subset criteria: an inclusive date range
// (compared at day granularity) and one allow-list per categorical field.
//
// An empty allow-list admits nothing. Widgets always submit the full set of
// values they show, so "nothing selected" genuinely means no rows — use
// DefaultConstraints for the everything-selected state.
type Constraints struct {
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
	Games   []string  `json:"games"`
	Devices []string  `json:"devices"`
	Areas   []string  `json:"areas"`
}

// DefaultConstraints returns the widest constraints for a table: its full
// observed date range and every distinct categorical value.
func DefaultConstraints(t *dataset.Table) Constraints {
	return Constraints{
		Start:   t.MinDate(),
		End:     t.MaxDate(),
		Games:   t.Games(),
		Devices: t.Devices(),
		Areas:   t.Areas(),
	}
}

// Filter returns the sessions matching all constraints, in original order.
// The input table is never mutated; filtering an already-filtered table with
// the same constraints is a fixed point.
func Filter(t *dataset.Table, c Constraints) *dataset.Table {
	games := toSet(c.Games)
	devices := toSet(c.Devices)
	areas := toSet(c.Areas)
	start := dayOf(c.Start)
	end := dayOf(c.End)

	out := &dataset.Table{Columns: t.Columns}
	for _, s := range t.Sessions {
		day := dayOf(s.Date)
		if day.Before(start) || day.After(end) {
			continue
		}
		// Sessions with no value for a field (the source had no such
		// column) are not subject to that field's allow-list.
		if s.Game != "" && !games[s.Game] {
			continue
		}
		if s.Device != "" && !devices[s.Device] {
			continue
		}
		if s.Area != "" && !areas[s.Area] {
			continue
		}
		out.Sessions = append(out.Sessions, s)
	}
	return out
}

// dayOf truncates a timestamp to its calendar day.
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[item] = true
	}
	return set
}
