// Package gochartrender is the default raster backend: it draws chart
// layouts with go-chart and encodes them as PNG.
package gochartrender

import (
	"bytes"
	"fmt"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/Wing0515/bptreeviz/src/chartspec"
)

// Renderer draws chart layouts with go-chart.
type Renderer struct {
	Width  int
	Height int
}

// New returns a PNG renderer with the given pixel dimensions; non-positive
// values fall back to 1000x600.
func New(width, height int) *Renderer {
	if width <= 0 {
		width = 1000
	}
	if height <= 0 {
		height = 600
	}
	return &Renderer{Width: width, Height: height}
}

func (r *Renderer) Ext() string { return "png" }

func roleColor(role chartspec.Role) drawing.Color {
	c := role.Color()
	return drawing.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Render assembles a chart.Chart around the fixed ranges and ticks computed
// by the layout. go-chart has no grouped-bar series, so bars, value labels,
// and the legend are drawn by custom renderables sharing the chart's range
// objects.
func (r *Renderer) Render(ch *chartspec.Chart) ([]byte, error) {
	xrange := &chart.ContinuousRange{Min: ch.XMin, Max: ch.XMax}
	yrange := &chart.ContinuousRange{Min: 0, Max: ch.YMax}

	xticks := make([]chart.Tick, 0, len(ch.XTicks))
	for _, t := range ch.XTicks {
		xticks = append(xticks, chart.Tick{Value: t.Value, Label: t.Label})
	}

	graph := chart.Chart{
		Title:  ch.Title,
		Width:  r.Width,
		Height: r.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 24, Left: 16, Right: 16, Bottom: 28},
		},
		XAxis: chart.XAxis{Ticks: xticks, Range: xrange},
		YAxis: chart.YAxis{Name: ch.YAxisLabel, Range: yrange, Ticks: yTicks(ch.YMax, 6)},
		// go-chart refuses to render without a visible series; the bars are
		// elements, so anchor the frame with an imperceptible one.
		Series: []chart.Series{
			chart.ContinuousSeries{
				XValues: []float64{ch.XMin, ch.XMax},
				YValues: []float64{0, 0},
				Style:   chart.Style{StrokeColor: drawing.ColorTransparent, StrokeWidth: 1},
			},
		},
	}
	graph.Elements = []chart.Renderable{
		drawBars(ch, xrange, yrange),
		drawLegend(ch),
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render %s: %w", ch.Title, err)
	}
	return buf.Bytes(), nil
}

// drawBars renders the bars and their value labels. Elements run after the
// axes have set pixel domains on the shared range objects, so Translate maps
// data units exactly.
func drawBars(ch *chartspec.Chart, xr, yr *chart.ContinuousRange) chart.Renderable {
	return func(r chart.Renderer, canvasBox chart.Box, defaults chart.Style) {
		for _, b := range ch.Bars {
			col := roleColor(b.Role)
			box := chart.Box{
				Left:   canvasBox.Left + xr.Translate(b.Left),
				Right:  canvasBox.Left + xr.Translate(b.Left+b.Width),
				Top:    canvasBox.Bottom - yr.Translate(b.Height),
				Bottom: canvasBox.Bottom - yr.Translate(0),
			}
			chart.Draw.Box(r, box, chart.Style{FillColor: col, StrokeColor: col, StrokeWidth: 1})
		}
		st := chart.Style{FontSize: 11, FontColor: chart.ColorBlack}.InheritFrom(defaults)
		st.WriteTextOptionsToRenderer(r)
		for _, lb := range ch.Labels {
			tb := r.MeasureText(lb.Text)
			x := canvasBox.Left + xr.Translate(lb.X) - tb.Width()/2
			y := canvasBox.Bottom - yr.Translate(lb.Y) + tb.Height()/2
			r.Text(lb.Text, x, y)
		}
	}
}

// drawLegend draws the legend box in the upper-right corner inside the plot
// area. The chart carries no named series, so go-chart's own legend element
// would come up empty; the layout's registration list drives this one.
func drawLegend(ch *chartspec.Chart) chart.Renderable {
	return func(r chart.Renderer, canvasBox chart.Box, defaults chart.Style) {
		if len(ch.LegendEntries) == 0 {
			return
		}
		st := chart.Style{FontSize: 10, FontColor: chart.ColorBlack}.InheritFrom(defaults)
		st.WriteTextOptionsToRenderer(r)
		const (
			swatch  = 10
			pad     = 8
			spacing = 6
			margin  = 10
		)
		maxTextW, textH := 0, 0
		for _, entry := range ch.LegendEntries {
			tb := r.MeasureText(entry)
			if tb.Width() > maxTextW {
				maxTextW = tb.Width()
			}
			if tb.Height() > textH {
				textH = tb.Height()
			}
		}
		rowH := textH
		if swatch > rowH {
			rowH = swatch
		}
		boxW := pad*2 + swatch + 5 + maxTextW
		boxH := pad*2 + len(ch.LegendEntries)*rowH + (len(ch.LegendEntries)-1)*spacing
		box := chart.Box{
			Right:  canvasBox.Right - margin,
			Left:   canvasBox.Right - margin - boxW,
			Top:    canvasBox.Top + margin,
			Bottom: canvasBox.Top + margin + boxH,
		}
		chart.Draw.Box(r, box, chart.Style{
			FillColor:   chart.ColorWhite,
			StrokeColor: chart.ColorBlack,
			StrokeWidth: 1,
		})
		y := box.Top + pad
		for i, entry := range ch.LegendEntries {
			// registration order matches role order
			col := roleColor(chartspec.Role(i))
			sw := chart.Box{
				Left:   box.Left + pad,
				Right:  box.Left + pad + swatch,
				Top:    y + (rowH-swatch)/2,
				Bottom: y + (rowH-swatch)/2 + swatch,
			}
			chart.Draw.Box(r, sw, chart.Style{FillColor: col, StrokeColor: col, StrokeWidth: 1})
			st.WriteTextOptionsToRenderer(r)
			r.Text(entry, sw.Right+5, y+(rowH+textH)/2)
			y += rowH + spacing
		}
	}
}

// yTicks generates up to n tick marks between 0 and max using nice
// increments, never exceeding the fixed axis bound.
func yTicks(max float64, n int) []chart.Tick {
	if n < 2 || max <= 0 || math.IsNaN(max) {
		return nil
	}
	mag := math.Pow(10, math.Floor(math.Log10(max/float64(n-1))))
	candidates := []float64{1, 2, 2.5, 5, 10}
	bestStep := mag
	bestScore := math.MaxFloat64
	for _, c := range candidates {
		step := c * mag
		count := math.Ceil(max / step)
		if count < 2 {
			count = 2
		}
		score := math.Abs(count - float64(n))
		if score < bestScore {
			bestScore = score
			bestStep = step
		}
	}
	var ticks []chart.Tick
	for v := 0.0; v <= max+bestStep/100; v += bestStep {
		if v > max {
			break
		}
		ticks = append(ticks, chart.Tick{Value: v, Label: formatTick(v)})
	}
	return ticks
}

func formatTick(v float64) string {
	if v == 0 {
		return "0"
	}
	switch av := math.Abs(v); {
	case av >= 100:
		return fmt.Sprintf("%.0f", v)
	case av >= 10:
		return fmt.Sprintf("%.1f", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}
