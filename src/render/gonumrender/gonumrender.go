// Package gonumrender renders chart layouts with gonum/plot. It is the
// vector-capable backend: the output format is chosen at construction and
// may be png, svg, or pdf.
package gonumrender

import (
	"bytes"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/Wing0515/bptreeviz/src/chartspec"
)

// Renderer draws chart layouts with gonum/plot.
type Renderer struct {
	Format string
	Width  vg.Length
	Height vg.Length
}

// New returns a renderer for the given format (png, svg, or pdf) on a
// 10x6 inch canvas.
func New(format string) (*Renderer, error) {
	switch format {
	case "png", "svg", "pdf":
	default:
		return nil, fmt.Errorf("unsupported format %q (want png, svg, or pdf)", format)
	}
	return &Renderer{Format: format, Width: 10 * vg.Inch, Height: 6 * vg.Inch}, nil
}

func (r *Renderer) Ext() string { return r.Format }

// Render draws bars as polygons at exact data coordinates, which keeps the
// pair-offset contract intact (plotter.BarChart offsets are in points, not
// category units, and cannot express it).
func (r *Renderer) Render(ch *chartspec.Chart) ([]byte, error) {
	p := plot.New()
	p.Title.Text = ch.Title
	p.Title.Padding = vg.Points(10)
	p.Y.Label.Text = ch.YAxisLabel
	p.X.Min, p.X.Max = ch.XMin, ch.XMax
	p.Y.Min, p.Y.Max = 0, ch.YMax

	ticks := make([]plot.Tick, len(ch.XTicks))
	for i, t := range ch.XTicks {
		ticks[i] = plot.Tick{Value: t.Value, Label: t.Label}
	}
	p.X.Tick.Marker = plot.ConstantTicks(ticks)

	for _, b := range ch.Bars {
		poly, err := plotter.NewPolygon(barOutline(b))
		if err != nil {
			return nil, fmt.Errorf("bar polygon: %w", err)
		}
		c := b.Role.Color()
		poly.Color = c
		poly.LineStyle.Color = c
		poly.LineStyle.Width = vg.Length(0)
		p.Add(poly)
		if b.Legend {
			p.Legend.Add(b.Role.String(), swatch{c})
		}
	}

	var xyl plotter.XYLabels
	for _, lb := range ch.Labels {
		xyl.XYs = append(xyl.XYs, plotter.XY{X: lb.X, Y: lb.Y})
		xyl.Labels = append(xyl.Labels, lb.Text)
	}
	labels, err := plotter.NewLabels(xyl)
	if err != nil {
		return nil, fmt.Errorf("value labels: %w", err)
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = text.XCenter
		labels.TextStyle[i].YAlign = text.YCenter
	}
	p.Add(labels)

	// upper right, inside the plot area
	p.Legend.Top = true
	p.Legend.Padding = vg.Points(4)

	wt, err := p.WriterTo(r.Width, r.Height, r.Format)
	if err != nil {
		return nil, fmt.Errorf("writer for %s: %w", r.Format, err)
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("render %s: %w", ch.Title, err)
	}
	return buf.Bytes(), nil
}

// swatch fills a legend entry's thumbnail box with a role color.
type swatch struct {
	c color.Color
}

func (s swatch) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	}
	poly := c.ClipPolygonY(pts)
	c.FillPolygon(s.c, poly)
}

// barOutline is the outline of one bar, base at y=0.
func barOutline(b chartspec.Bar) plotter.XYs {
	return plotter.XYs{
		{X: b.Left, Y: 0},
		{X: b.Left, Y: b.Height},
		{X: b.Left + b.Width, Y: b.Height},
		{X: b.Left + b.Width, Y: 0},
	}
}
