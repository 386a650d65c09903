package benchdata

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// stripJSONC loads a JSONC file (full-line // comments only) and returns raw
// JSON bytes suitable for unmarshalling. Inline // is left alone because of
// URLs and the like; comments must occupy their own line.
func stripJSONC(filename string) ([]byte, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []byte
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "//") {
			continue
		}
		out = append(out, []byte(line+"\n")...)
	}
	return out, scanner.Err()
}

// datasetEntry is the on-disk shape of one operation: the name plus the flat
// six-value ordering produced by the benchmark harness.
type datasetEntry struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

// Load reads a dataset override from a JSONC file:
//
//	[
//	  // averages in ms: (baseline, prefetch) x (1, 4, 8 threads)
//	  {"name": "Insert", "values": [1747.17, 1761.01, 2527.52, 2473.08, 6722.87, 6508.76]},
//	  ...
//	]
//
// File order becomes chart order.
func Load(path string) (Dataset, error) {
	b, err := stripJSONC(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}
	var entries []datasetEntry
	if err := json.Unmarshal(b, &entries); err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w", path, err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("dataset %s: no operations", path)
	}
	ds := make(Dataset, 0, len(entries))
	for _, e := range entries {
		if e.Name == "" {
			return nil, fmt.Errorf("dataset %s: operation with empty name", path)
		}
		s, err := SeriesFromValues(e.Values)
		if err != nil {
			return nil, fmt.Errorf("dataset %s, operation %q: %w", path, e.Name, err)
		}
		ds = append(ds, Operation{Name: e.Name, Series: s})
	}
	return ds, nil
}
