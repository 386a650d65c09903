package benchdata

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bench.jsonc")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write dataset: %v", err)
	}
	return path
}

func TestLoad_JSONCWithComments(t *testing.T) {
	path := writeDataset(t, `
// averages in ms: (baseline, prefetch) x (1, 4, 8 threads)
[
  {"name": "Insert", "values": [1747.17, 1761.01, 2527.52, 2473.08, 6722.87, 6508.76]},
  // second operation
  {"name": "Range Query", "values": [21.0505, 21.208, 22.3419, 22.3686, 23.5758, 23.5613]}
]
`)
	ds, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(ds) != 2 {
		t.Fatalf("operations: got %d want 2", len(ds))
	}
	if ds[0].Name != "Insert" || ds[1].Name != "Range Query" {
		t.Fatalf("file order not preserved: %q, %q", ds[0].Name, ds[1].Name)
	}
	if got := ds[0].Series.Threads8.Baseline; got != 6722.87 {
		t.Fatalf("threads8 baseline: got %v want 6722.87", got)
	}
}

func TestLoad_BadShapeSurfacesInputShapeError(t *testing.T) {
	path := writeDataset(t, `[{"name": "Insert", "values": [1, 2, 3, 4, 5]}]`)
	_, err := Load(path)
	var shapeErr *InputShapeError
	if !errors.As(err, &shapeErr) {
		t.Fatalf("expected wrapped InputShapeError, got %v", err)
	}
	if !strings.Contains(err.Error(), "Insert") {
		t.Fatalf("error does not name the operation: %v", err)
	}
}

func TestLoad_EmptyAndMissing(t *testing.T) {
	path := writeDataset(t, `[]`)
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for empty dataset")
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.jsonc")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
