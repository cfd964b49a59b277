package dataset

import "time"

// ============================================================================
// DATASET — Normalized session table
// ============================================================================
// One Session per spreadsheet row. Column names are normalized at load time,
// dates are real time.Time values, and device names are canonicalized — the
// rest of the repo never touches raw cells.
// ============================================================================

// Session is a single device/game usage observation.
//
// Month and MonthNum are derived from Date at load time; MonthNum exists only
// to order Month labels chronologically. Columns the loader does not interpret
// (start_time, end_time, ...) are carried in Extra untouched.
type Session struct {
	Date            time.Time         `json:"date"`
	Month           string            `json:"month"`
	MonthNum        int               `json:"monthNum"`
	Game            string            `json:"game"`
	Device          string            `json:"device"`
	Area            string            `json:"area"`
	DurationMinutes float64           `json:"durationMinutes"`
	Extra           map[string]string `json:"extra,omitempty"`
}

// Table is an ordered, immutable-by-convention sequence of Sessions sharing
// one schema. Columns holds the normalized source column names in file order.
type Table struct {
	Sessions []Session `json:"sessions"`
	Columns  []string  `json:"columns"`
}

// Len returns the number of sessions.
func (t *Table) Len() int { return len(t.Sessions) }

// Games returns the distinct game labels in first-seen row order.
func (t *Table) Games() []string {
	return t.distinct(func(s Session) string { return s.Game })
}

// Devices returns the distinct device labels in first-seen row order.
func (t *Table) Devices() []string {
	return t.distinct(func(s Session) string { return s.Device })
}

// Areas returns the distinct area labels in first-seen row order.
func (t *Table) Areas() []string {
	return t.distinct(func(s Session) string { return s.Area })
}

// MinDate returns the earliest session date, or the zero time for an empty table.
func (t *Table) MinDate() time.Time {
	var min time.Time
	for _, s := range t.Sessions {
		if min.IsZero() || s.Date.Before(min) {
			min = s.Date
		}
	}
	return min
}

// MaxDate returns the latest session date, or the zero time for an empty table.
func (t *Table) MaxDate() time.Time {
	var max time.Time
	for _, s := range t.Sessions {
		if s.Date.After(max) {
			max = s.Date
		}
	}
	return max
}

func (t *Table) distinct(key func(Session) string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, s := range t.Sessions {
		v := key(s)
		if v != "" && !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
