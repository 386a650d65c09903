package gonumrender

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/Wing0515/bptreeviz/src/chartspec"
)

func buildChart(t *testing.T) *chartspec.Chart {
	t.Helper()
	ch, err := chartspec.BuildFromValues("Random Query", []float64{170.815, 174.453, 74.6284, 72.5661, 129.887, 128.808}, chartspec.Options{})
	if err != nil {
		t.Fatalf("build layout: %v", err)
	}
	return ch
}

func TestNew_RejectsUnknownFormat(t *testing.T) {
	if _, err := New("gif"); err == nil {
		t.Fatalf("expected error for gif")
	}
	r, err := New("svg")
	if err != nil {
		t.Fatalf("New(svg): %v", err)
	}
	if r.Ext() != "svg" {
		t.Fatalf("ext: %q", r.Ext())
	}
}

func TestRender_PNG(t *testing.T) {
	r, err := New("png")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	art, err := r.Render(buildChart(t))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(art))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 || b.Dx() <= b.Dy() {
		t.Fatalf("unexpected canvas shape: %v", b)
	}
}

func TestRender_SVGCarriesTextContent(t *testing.T) {
	r, err := New("svg")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	art, err := r.Render(buildChart(t))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	out := string(art)
	if !strings.Contains(out, "<svg") {
		t.Fatalf("not an SVG document")
	}
	for _, want := range []string{"Random Query Operation", "No Prefetching", "With Prefetching", "1 Thread", "170.81"} {
		if !strings.Contains(out, want) {
			t.Fatalf("svg missing %q", want)
		}
	}
}
