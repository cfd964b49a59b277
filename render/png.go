// Package render rasterizes engine chart configs into PNG images.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"strconv"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/lumoplay/usagedash/engine"
)

// Default raster size for dashboard charts.
const (
	DefaultWidth  = 640
	DefaultHeight = 360
)

// PNG renders a ChartConfig as a PNG image.
// Returns an error for a nil config or an unknown chart type — callers that
// want a blank chart should use Placeholder instead.
func PNG(cfg *engine.ChartConfig, width, height int, w io.Writer) error {
	if cfg == nil || len(cfg.Series) == 0 || len(cfg.Series[0].Data) == 0 {
		return fmt.Errorf("render: no chart data")
	}
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}

	switch cfg.ChartType {
	case "line":
		return renderLine(cfg, width, height, w)
	case "pie":
		return renderPie(cfg, width, height, w)
	case "bar":
		return renderBar(cfg, width, height, w)
	default:
		return fmt.Errorf("render: unknown chart type %q", cfg.ChartType)
	}
}

// Placeholder writes a blank PNG for the no-data state.
func Placeholder(width, height int, w io.Writer) error {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	bg := color.RGBA{R: 0xF8, G: 0xF9, B: 0xFA, A: 0xFF}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, bg)
		}
	}
	return png.Encode(w, img)
}

// ============================================================================
// LINE
// ============================================================================

func renderLine(cfg *engine.ChartConfig, width, height int, w io.Writer) error {
	points := cfg.Series[0].Data
	col := seriesColor(cfg, 0)

	xs := make([]float64, 0, len(points))
	ys := make([]float64, 0, len(points))
	ticks := make([]chart.Tick, 0, len(points))
	for i, p := range points {
		xs = append(xs, float64(i))
		ys = append(ys, p.Value)
		ticks = append(ticks, chart.Tick{Value: float64(i), Label: p.Label})
	}
	// go-chart refuses to plot fewer than two X values; pad with a twin.
	if len(xs) == 1 {
		xs = append(xs, xs[0]+1)
		ys = append(ys, ys[0])
		ticks = append(ticks, chart.Tick{Value: xs[1], Label: points[0].Label})
	}

	graph := chart.Chart{
		Title:  cfg.Title,
		Width:  width,
		Height: height,
		XAxis: chart.XAxis{
			Name:  cfg.XAxis,
			Ticks: ticks,
		},
		YAxis: chart.YAxis{Name: cfg.YAxis},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    cfg.Series[0].Name,
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeColor: col,
					StrokeWidth: 2,
					DotColor:    col,
					DotWidth:    4,
				},
			},
		},
	}
	return graph.Render(chart.PNG, w)
}

// ============================================================================
// PIE
// ============================================================================

func renderPie(cfg *engine.ChartConfig, width, height int, w io.Writer) error {
	pie := chart.PieChart{
		Title:  cfg.Title,
		Width:  width,
		Height: height,
		Values: chartValues(cfg),
	}
	return pie.Render(chart.PNG, w)
}

// ============================================================================
// BAR
// ============================================================================

func renderBar(cfg *engine.ChartConfig, width, height int, w io.Writer) error {
	bars := chartValues(cfg)

	// go-chart derives the Y range from the data and rejects a zero delta,
	// which is exactly what equal-valued bars produce; pin the range.
	maxValue := 0.0
	for _, b := range bars {
		if b.Value > maxValue {
			maxValue = b.Value
		}
	}
	if maxValue == 0 {
		maxValue = 1
	}

	bar := chart.BarChart{
		Title:    cfg.Title,
		Width:    width,
		Height:   height,
		BarWidth: 40,
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: maxValue},
		},
		Bars: bars,
	}
	return bar.Render(chart.PNG, w)
}

// ============================================================================
// HELPERS
// ============================================================================

func chartValues(cfg *engine.ChartConfig) []chart.Value {
	points := cfg.Series[0].Data
	values := make([]chart.Value, 0, len(points))
	for i, p := range points {
		values = append(values, chart.Value{
			Label: p.Label,
			Value: p.Value,
			Style: chart.Style{FillColor: pointColor(cfg, i)},
		})
	}
	return values
}

func seriesColor(cfg *engine.ChartConfig, i int) drawing.Color {
	if i < len(cfg.Series) && cfg.Series[i].Color != "" {
		return parseHexColor(cfg.Series[i].Color)
	}
	if i < len(cfg.Colors) {
		return parseHexColor(cfg.Colors[i])
	}
	return chart.ColorBlue
}

func pointColor(cfg *engine.ChartConfig, i int) drawing.Color {
	if i < len(cfg.Colors) {
		return parseHexColor(cfg.Colors[i])
	}
	return chart.ColorBlue
}

// parseHexColor converts "#RRGGBB" to a drawing color.
func parseHexColor(s string) drawing.Color {
	if len(s) != 7 || s[0] != '#' {
		return chart.ColorBlue
	}
	r, err1 := strconv.ParseUint(s[1:3], 16, 8)
	g, err2 := strconv.ParseUint(s[3:5], 16, 8)
	b, err3 := strconv.ParseUint(s[5:7], 16, 8)
	if err1 != nil || err2 != nil || err3 != nil {
		return chart.ColorBlue
	}
	return drawing.Color{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}
}
