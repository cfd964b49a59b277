package engine

import (
	"fmt"
	"math"
	"sort"

	"github.com/lumoplay/usagedash/dataset"
)

// ============================================================================
// AGGREGATOR — scalar KPIs and grouped summaries
// ============================================================================
// Read-only functions of the input table. Cheap to recompute, so nothing
// here is cached — the loader cache upstream is the only memoization.
// ============================================================================

// Summarize computes every aggregate the dashboard needs from a table.
func Summarize(t *dataset.Table) Summary {
	s := Summary{
		TotalSessions: t.Len(),
		TopGame:       "N/A",
		TopDevice:     "N/A",
	}

	var total float64
	for _, rec := range t.Sessions {
		total += rec.DurationMinutes
	}
	s.TotalDurationHours = total / 60

	if t.Len() > 0 {
		s.AvgDurationMinutes = total / float64(t.Len())
		s.TopGame = modeValue(t, func(r dataset.Session) string { return r.Game })
		s.TopDevice = modeValue(t, func(r dataset.Session) string { return r.Device })
	}

	s.MonthlyAvgDuration = monthlyAverages(t)
	s.GameShare = countByCategory(t, func(r dataset.Session) string { return r.Game })
	s.DeviceCounts = countByCategory(t, func(r dataset.Session) string { return r.Device })
	return s
}

// ============================================================================
// MODE
// ============================================================================

// modeValue returns the most frequent value of a field. Ties break toward
// the value encountered first in row order.
func modeValue(t *dataset.Table, key func(dataset.Session) string) string {
	counts := make(map[string]int)
	var order []string
	for _, rec := range t.Sessions {
		v := key(rec)
		if _, seen := counts[v]; !seen {
			order = append(order, v)
		}
		counts[v]++
	}

	best := ""
	bestCount := 0
	for _, v := range order {
		if counts[v] > bestCount {
			best = v
			bestCount = counts[v]
		}
	}
	return best
}

// ============================================================================
// GROUPED SUMMARIES
// ============================================================================

// monthlyAverages groups sessions by (month_num, month) and returns the mean
// duration per group in ascending calendar order.
func monthlyAverages(t *dataset.Table) []MonthlyDuration {
	type bucket struct {
		month string
		sum   float64
		n     int
	}
	buckets := make(map[int]*bucket)
	for _, rec := range t.Sessions {
		b, ok := buckets[rec.MonthNum]
		if !ok {
			b = &bucket{month: rec.Month}
			buckets[rec.MonthNum] = b
		}
		b.sum += rec.DurationMinutes
		b.n++
	}

	out := make([]MonthlyDuration, 0, len(buckets))
	for num, b := range buckets {
		out = append(out, MonthlyDuration{
			MonthNum:           num,
			Month:              b.month,
			AvgDurationMinutes: b.sum / float64(b.n),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MonthNum < out[j].MonthNum })
	return out
}

// countByCategory counts sessions per distinct field value, first-seen order.
func countByCategory(t *dataset.Table, key func(dataset.Session) string) []CategoryCount {
	counts := make(map[string]int)
	var order []string
	for _, rec := range t.Sessions {
		v := key(rec)
		if _, seen := counts[v]; !seen {
			order = append(order, v)
		}
		counts[v]++
	}

	out := make([]CategoryCount, 0, len(order))
	for _, v := range order {
		out = append(out, CategoryCount{Label: v, Count: counts[v]})
	}
	return out
}

// ============================================================================
// FORMATTING UTILITIES
// ============================================================================

// FormatFloat1 formats a value with one decimal and comma separators.
func FormatFloat1(v float64) string {
	negative := v < 0
	if negative {
		v = -v
	}
	rounded := math.Round(v*10) / 10
	intPart := int(rounded)
	decPart := int(math.Round((rounded - float64(intPart)) * 10))
	result := fmt.Sprintf("%s.%d", FormatInt(intPart), decPart)
	if negative {
		result = "-" + result
	}
	return result
}

// FormatInt formats an integer with comma separators.
func FormatInt(n int) string {
	if n < 0 {
		return "-" + FormatInt(-n)
	}
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	return fmt.Sprintf("%s,%03d", FormatInt(n/1000), n%1000)
}

// RoundTo2 rounds to 2 decimal places.
func RoundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
