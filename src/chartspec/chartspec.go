// Package chartspec computes the backend-neutral layout of one grouped bar
// chart: bar positions for the three thread-count groups, value label
// placement, the fixed-headroom axis bound, category ticks, and legend
// registration. No drawing happens here; render backends consume the result.
package chartspec

import (
	"fmt"
	"image/color"

	"github.com/Wing0515/bptreeviz/src/benchdata"
)

// Role identifies which configuration a bar belongs to. Color and legend
// entries key off the role; position keys off the thread-count group.
type Role int

const (
	RoleBaseline Role = iota
	RolePrefetch
)

var roleNames = [...]string{"No Prefetching", "With Prefetching"}

// rolePalette is the fixed, ordered color assignment shared by every chart,
// indexed by Role.
var rolePalette = [...]color.RGBA{
	{R: 0x48, G: 0x78, B: 0xD0, A: 0xFF},
	{R: 0xEE, G: 0x85, B: 0x4A, A: 0xFF},
}

// String returns the legend label for the role.
func (r Role) String() string { return roleNames[r] }

// Color returns the role's bar color.
func (r Role) Color() color.RGBA { return rolePalette[r] }

// Hex returns the role's bar color as a #rrggbb string.
func (r Role) Hex() string {
	c := rolePalette[r]
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Layout constants used when the corresponding Options field is unset.
const (
	DefaultBarWidth            = 0.25
	DefaultHeadroomMultiplier  = 1.5
	DefaultLabelOffsetFraction = 0.02
	DefaultValueDecimals       = 2
)

// Options holds the layout constants. The zero value yields the defaults
// above.
type Options struct {
	// BarWidth is the width of each bar in category-axis units.
	BarWidth float64
	// HeadroomMultiplier scales max(values) into the Y-axis upper bound. The
	// fixed 50% default leaves room for the tallest bar's label and the
	// legend box without per-chart tuning; it is never auto-fit.
	HeadroomMultiplier float64
	// LabelOffsetFraction scales max(values) into the vertical gap between a
	// bar top and its value label. The offset is global to the chart, so
	// labels on short bars sit closer to their bar than labels on tall ones.
	LabelOffsetFraction float64
	// ValueDecimals is the number of decimal places in value labels.
	ValueDecimals int
}

// WithDefaults returns a copy with unset fields filled in.
func (o Options) WithDefaults() Options {
	if o.BarWidth <= 0 {
		o.BarWidth = DefaultBarWidth
	}
	if o.HeadroomMultiplier <= 0 {
		o.HeadroomMultiplier = DefaultHeadroomMultiplier
	}
	if o.LabelOffsetFraction <= 0 {
		o.LabelOffsetFraction = DefaultLabelOffsetFraction
	}
	if o.ValueDecimals <= 0 {
		o.ValueDecimals = DefaultValueDecimals
	}
	return o
}

// Bar is one bar of the chart. Left is the bar's left edge in category-axis
// units; its base is always y=0.
type Bar struct {
	Left   float64
	Width  float64
	Height float64
	Role   Role
	// Legend marks the bars that register a legend entry. Only the first
	// group sets it, so each role appears in the legend exactly once.
	Legend bool
}

// Label is one value label, horizontally and vertically centered at (X, Y).
type Label struct {
	X, Y float64
	Text string
}

// Tick is one category-axis tick.
type Tick struct {
	Value float64
	Label string
}

// Chart is the fully computed layout for one operation chart.
type Chart struct {
	Title      string
	YAxisLabel string
	Bars       []Bar
	Labels     []Label
	XTicks     []Tick
	// LegendEntries lists legend labels in registration order, exactly one
	// per configuration role.
	LegendEntries []string
	XMin, XMax    float64
	// YMax is the axis upper bound; the lower bound is always 0.
	YMax float64
}

// groupTickLabels index the three anchors at x = 0, 1, 2.
var groupTickLabels = [...]string{"1 Thread", "4 Threads", "8 Threads"}

// Build computes the layout for one operation chart.
//
// The positional contract per group g (anchor at x=g): the baseline bar's
// left edge is anchor-BarWidth and the prefetch bar's left edge is the anchor
// itself. The pair is adjacent but deliberately not centered on the anchor;
// the asymmetry matches the original benchmark figures.
func Build(operationName string, s benchdata.Series, opts Options) (*Chart, error) {
	opts = opts.WithDefaults()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	values := s.Values()
	maxVal := s.Max()
	offset := opts.LabelOffsetFraction * maxVal
	format := fmt.Sprintf("%%.%df", opts.ValueDecimals)

	ch := &Chart{
		Title:      operationName + " Operation",
		YAxisLabel: "Average Time (ms)",
		XMin:       -2 * opts.BarWidth,
		XMax:       2 + 2*opts.BarWidth,
		YMax:       opts.HeadroomMultiplier * maxVal,
	}
	for g, label := range groupTickLabels {
		ch.XTicks = append(ch.XTicks, Tick{Value: float64(g), Label: label})
	}
	for g := range groupTickLabels {
		anchor := float64(g)
		for _, role := range []Role{RoleBaseline, RolePrefetch} {
			left := anchor
			if role == RoleBaseline {
				left = anchor - opts.BarWidth
			}
			v := values[2*g+int(role)]
			bar := Bar{Left: left, Width: opts.BarWidth, Height: v, Role: role, Legend: g == 0}
			ch.Bars = append(ch.Bars, bar)
			if bar.Legend {
				ch.LegendEntries = append(ch.LegendEntries, role.String())
			}
			ch.Labels = append(ch.Labels, Label{
				X:    left + opts.BarWidth/2,
				Y:    v + offset,
				Text: fmt.Sprintf(format, v),
			})
		}
	}
	return ch, nil
}

// BuildFromValues is Build for callers holding the flat six-value encoding.
// It fails with benchdata.InputShapeError when len(values) != 6, before any
// layout is computed.
func BuildFromValues(operationName string, values []float64, opts Options) (*Chart, error) {
	s, err := benchdata.SeriesFromValues(values)
	if err != nil {
		return nil, err
	}
	return Build(operationName, s, opts)
}
