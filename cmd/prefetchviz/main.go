// prefetchviz renders the bptree prefetching benchmark comparison charts.
//
// One grouped bar chart is produced per database operation (Insert, Point
// Query, Range Query, Random Query), comparing "No Prefetching" vs "With
// Prefetching" average latencies at 1, 4, and 8 worker threads. The built-in
// dataset holds the averages from the reference benchmark run; -data points
// at a JSONC file to chart a different run.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/Wing0515/bptreeviz/src/benchdata"
	"github.com/Wing0515/bptreeviz/src/chartspec"
	"github.com/Wing0515/bptreeviz/src/render/echartsrender"
	"github.com/Wing0515/bptreeviz/src/render/gochartrender"
	"github.com/Wing0515/bptreeviz/src/render/gonumrender"
	"github.com/Wing0515/bptreeviz/src/viz"
)

func main() {
	outDir := flag.String("out", "charts", "Directory for rendered chart files")
	backendName := flag.String("backend", "gochart", "Render backend (gochart|gonum|echarts)")
	dataPath := flag.String("data", "", "Optional JSONC dataset file overriding the built-in measurements")
	format := flag.String("format", "png", "Output format for the gonum backend (png|svg|pdf)")
	barWidth := flag.Float64("bar-width", chartspec.DefaultBarWidth, "Bar width in category-axis units")
	headroom := flag.Float64("headroom", chartspec.DefaultHeadroomMultiplier, "Y-axis upper bound as a multiple of the tallest bar")
	labelOffset := flag.Float64("label-offset", chartspec.DefaultLabelOffsetFraction, "Value label offset as a fraction of the tallest bar")
	decimals := flag.Int("decimals", chartspec.DefaultValueDecimals, "Decimal places in value labels")
	width := flag.Int("width", 1000, "Chart width in pixels (gochart backend)")
	height := flag.Int("height", 600, "Chart height in pixels (gochart backend)")
	hint := flag.String("hint", "", "Optional caption drawn onto PNG output (e.g. \"Lower is better\")")
	logLevel := flag.String("log-level", "info", "Log level (debug|info|warn|error)")
	flag.Parse()

	viz.SetLogLevel(*logLevel)

	ds := benchdata.Default()
	if *dataPath != "" {
		var err error
		ds, err = benchdata.Load(*dataPath)
		if err != nil {
			viz.Errorf("load dataset: %v", err)
			os.Exit(1)
		}
	}

	opts := chartspec.Options{
		BarWidth:            *barWidth,
		HeadroomMultiplier:  *headroom,
		LabelOffsetFraction: *labelOffset,
		ValueDecimals:       *decimals,
	}

	var backend viz.Backend
	switch *backendName {
	case "gochart":
		backend = gochartrender.New(*width, *height)
	case "gonum":
		b, err := gonumrender.New(*format)
		if err != nil {
			viz.Errorf("gonum backend: %v", err)
			os.Exit(1)
		}
		backend = b
	case "echarts":
		backend = echartsrender.New()
	default:
		fmt.Fprintf(os.Stderr, "unknown backend %q (want gochart, gonum, or echarts)\n", *backendName)
		os.Exit(2)
	}

	start := time.Now()
	if err := viz.ExportCharts(ds, opts, backend, *outDir, *hint); err != nil {
		viz.Errorf("export charts: %v", err)
		os.Exit(1)
	}
	viz.TimeTrack(start, "export")
	viz.Infof("rendered %d operation charts to %s", len(ds), *outDir)
}
