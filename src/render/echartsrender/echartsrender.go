// Package echartsrender emits one standalone HTML page per chart using
// go-echarts. ECharts computes intra-group bar placement itself, so this
// backend honors the values, labels, axis bound, and legend of the layout
// while the exact left-edge contract stays with the raster backends.
package echartsrender

import (
	"bytes"
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/Wing0515/bptreeviz/src/chartspec"
)

// Renderer emits standalone HTML bar charts.
type Renderer struct{}

func New() *Renderer { return &Renderer{} }

func (r *Renderer) Ext() string { return "html" }

func (r *Renderer) Render(ch *chartspec.Chart) ([]byte, error) {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: ch.Title}),
		charts.WithYAxisOpts(opts.YAxis{Name: ch.YAxisLabel, Max: ch.YMax}),
		charts.WithLegendOpts(opts.Legend{Orient: "vertical", Right: "5%", Top: "8%"}),
		// for static output
		charts.WithAnimation(false),
	)

	axisLabels := make([]string, len(ch.XTicks))
	for i, t := range ch.XTicks {
		axisLabels[i] = t.Label
	}
	bar.SetXAxis(axisLabels)

	// Bars arrive group-major (baseline, prefetch per group); regroup them
	// into one ECharts series per configuration role.
	byRole := map[chartspec.Role][]opts.BarData{}
	for _, b := range ch.Bars {
		byRole[b.Role] = append(byRole[b.Role], opts.BarData{Value: b.Height})
	}
	for _, role := range []chartspec.Role{chartspec.RoleBaseline, chartspec.RolePrefetch} {
		data, ok := byRole[role]
		if !ok || len(data) != len(ch.XTicks) {
			return nil, fmt.Errorf("%s: expected %d bars for role %s, got %d", ch.Title, len(ch.XTicks), role, len(data))
		}
		bar.AddSeries(role.String(), data,
			charts.WithItemStyleOpts(opts.ItemStyle{Color: role.Hex()}),
			charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"}),
		)
	}

	var buf bytes.Buffer
	if err := bar.Render(&buf); err != nil {
		return nil, fmt.Errorf("render %s: %w", ch.Title, err)
	}
	return buf.Bytes(), nil
}
