// Package viz drives chart generation: it walks a benchmark dataset in order,
// builds the layout for each operation, and hands it to a render backend that
// produces the file bytes.
package viz

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Wing0515/bptreeviz/src/benchdata"
	"github.com/Wing0515/bptreeviz/src/chartspec"
)

// Backend renders a computed chart layout into an encoded artifact.
type Backend interface {
	// Render draws the chart and returns the encoded file contents.
	Render(ch *chartspec.Chart) ([]byte, error)
	// Ext is the artifact file extension, without the dot.
	Ext() string
}

// slug converts an operation name into a file name stem: lowercase, with
// anything outside [a-z0-9] collapsed to underscores.
func slug(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

// ExportCharts renders one chart per dataset entry, in dataset order, writing
// <outDir>/<operation>.<ext>. Each chart is independent; the first layout or
// render error aborts the run before anything is written for the failing
// operation. When hint is non-empty it is drawn as a caption onto PNG output.
func ExportCharts(ds benchdata.Dataset, opts chartspec.Options, b Backend, outDir, hint string) error {
	if len(ds) == 0 {
		return fmt.Errorf("empty dataset")
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create out dir: %w", err)
	}
	for _, op := range ds {
		start := time.Now()
		ch, err := chartspec.Build(op.Name, op.Series, opts)
		if err != nil {
			return fmt.Errorf("layout %q: %w", op.Name, err)
		}
		art, err := b.Render(ch)
		if err != nil {
			return fmt.Errorf("render %q: %w", op.Name, err)
		}
		if hint != "" && b.Ext() == "png" {
			art, err = Caption(art, hint)
			if err != nil {
				return fmt.Errorf("caption %q: %w", op.Name, err)
			}
		}
		outPath := filepath.Join(outDir, slug(op.Name)+"."+b.Ext())
		if err := os.WriteFile(outPath, art, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", outPath, err)
		}
		TimeTrack(start, op.Name)
		Infof("wrote %s", outPath)
	}
	return nil
}
