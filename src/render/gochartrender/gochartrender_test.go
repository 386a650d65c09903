package gochartrender

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/Wing0515/bptreeviz/src/chartspec"
)

func buildChart(t *testing.T) *chartspec.Chart {
	t.Helper()
	ch, err := chartspec.BuildFromValues("Insert", []float64{1747.17, 1761.01, 2527.52, 2473.08, 6722.87, 6508.76}, chartspec.Options{})
	if err != nil {
		t.Fatalf("build layout: %v", err)
	}
	return ch
}

func TestRender_ProducesPNGWithRequestedSize(t *testing.T) {
	r := New(800, 480)
	art, err := r.Render(buildChart(t))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(art))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 800 || img.Bounds().Dy() != 480 {
		t.Fatalf("dimensions: %v", img.Bounds())
	}
}

func TestNew_DefaultsSize(t *testing.T) {
	r := New(0, -5)
	if r.Width != 1000 || r.Height != 600 {
		t.Fatalf("defaults: %dx%d", r.Width, r.Height)
	}
	if r.Ext() != "png" {
		t.Fatalf("ext: %q", r.Ext())
	}
}

func TestRender_TightClusterStillRenders(t *testing.T) {
	ch, err := chartspec.BuildFromValues("Range Query", []float64{21.0505, 21.208, 22.3419, 22.3686, 23.5758, 23.5613}, chartspec.Options{})
	if err != nil {
		t.Fatalf("build layout: %v", err)
	}
	art, err := New(0, 0).Render(ch)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if _, err := png.Decode(bytes.NewReader(art)); err != nil {
		t.Fatalf("decode: %v", err)
	}
}

func TestYTicks_StayWithinAxisBound(t *testing.T) {
	for _, max := range []float64{35.3637, 10084.305, 1.0} {
		ticks := yTicks(max, 6)
		if len(ticks) < 2 {
			t.Fatalf("max=%v: too few ticks (%d)", max, len(ticks))
		}
		if ticks[0].Value != 0 {
			t.Fatalf("max=%v: first tick %v, want 0", max, ticks[0].Value)
		}
		for _, tk := range ticks {
			if tk.Value > max {
				t.Fatalf("max=%v: tick %v beyond axis bound", max, tk.Value)
			}
		}
	}
}
