// Package usagedash provides the core of the LUMOPlay usage dashboard.
//
// Usage:
//
//	import "github.com/lumoplay/usagedash/dataset"
//	import "github.com/lumoplay/usagedash/engine"
//
//	table, err := dataset.LoadFile("usage_metrics.xlsx")
//	filtered := engine.Filter(table, engine.DefaultConstraints(table))
//	summary := engine.Summarize(filtered)
//
// The dataset package loads and normalizes a session spreadsheet into a
// typed table. The engine filters it and computes display-ready summaries
// (KPIs, chart configs, table data). The web package renders those outputs
// as a single-page dashboard; cmd/usagedash wraps everything in a CLI.
//
// All computation is local and in-memory — the engine never calls any
// external service.
package usagedash
