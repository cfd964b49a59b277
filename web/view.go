package web

import (
	"net/url"
	"time"

	"github.com/lumoplay/usagedash/dataset"
	"github.com/lumoplay/usagedash/engine"
)

// ============================================================================
// VIEW DATA — template inputs for the dashboard page
// ============================================================================

const dayFormat = "2006-01-02"

type option struct {
	Value    string
	Selected bool
}

type viewData struct {
	SourceName string
	Src        string
	Err        string
	NoSource   bool

	KPIs          []engine.KPI
	FilteredCount int
	TotalCount    int

	StartVal, EndVal string
	MinDate, MaxDate string
	Games            []option
	Devices          []option
	Areas            []option

	// Query propagates the active filters to the chart image endpoints.
	Query string

	Table *engine.TableData
}

// parseConstraints reads filter form values against a table's defaults.
//
// An unsubmitted form (no "filtered" marker) means every widget is at its
// default: full date range, all values selected. A submitted form carries
// exactly the selected values — none selected is an empty allow-list and
// matches nothing.
func parseConstraints(form url.Values, t *dataset.Table) engine.Constraints {
	c := engine.DefaultConstraints(t)
	if form.Get("filtered") == "" {
		return c
	}

	if v := form.Get("start"); v != "" {
		if d, err := time.Parse(dayFormat, v); err == nil {
			c.Start = d
		}
	}
	if v := form.Get("end"); v != "" {
		if d, err := time.Parse(dayFormat, v); err == nil {
			c.End = d
		}
	}
	c.Games = form["game"]
	c.Devices = form["device"]
	c.Areas = form["area"]
	return c
}

// constraintQuery encodes constraints back into the query string the chart
// endpoints expect, preserving the source identity.
func constraintQuery(src string, c engine.Constraints) string {
	q := url.Values{}
	q.Set("filtered", "1")
	if src != "" {
		q.Set("src", src)
	}
	if !c.Start.IsZero() {
		q.Set("start", c.Start.Format(dayFormat))
	}
	if !c.End.IsZero() {
		q.Set("end", c.End.Format(dayFormat))
	}
	q["game"] = c.Games
	q["device"] = c.Devices
	q["area"] = c.Areas
	return q.Encode()
}

// buildView assembles the full dashboard view for a table and its filters.
func buildView(src, sourceName string, t *dataset.Table, c engine.Constraints) viewData {
	filtered := engine.Filter(t, c)
	summary := engine.Summarize(filtered)

	v := viewData{
		SourceName:    sourceName,
		Src:           src,
		KPIs:          engine.BuildKPIs(summary),
		FilteredCount: filtered.Len(),
		TotalCount:    t.Len(),
		StartVal:      c.Start.Format(dayFormat),
		EndVal:        c.End.Format(dayFormat),
		Games:         options(t.Games(), c.Games),
		Devices:       options(t.Devices(), c.Devices),
		Areas:         options(t.Areas(), c.Areas),
		Query:         constraintQuery(src, c),
		Table:         engine.SessionTable(filtered),
	}
	if min := t.MinDate(); !min.IsZero() {
		v.MinDate = min.Format(dayFormat)
	}
	if max := t.MaxDate(); !max.IsZero() {
		v.MaxDate = max.Format(dayFormat)
	}
	return v
}

func options(all, selected []string) []option {
	sel := make(map[string]bool, len(selected))
	for _, s := range selected {
		sel[s] = true
	}
	opts := make([]option, 0, len(all))
	for _, v := range all {
		opts = append(opts, option{Value: v, Selected: sel[v]})
	}
	return opts
}
