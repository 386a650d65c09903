// Package benchdata models the prefetching benchmark results consumed by the
// chart renderer: per-operation average latencies (ms) for two configurations
// ("No Prefetching" vs "With Prefetching") at 1, 4, and 8 worker threads.
package benchdata

import "fmt"

// SeriesLen is the number of measurements per operation: two configuration
// roles at each of the three thread counts.
const SeriesLen = 6

// PairMS holds one thread-count group's averaged latencies in milliseconds,
// baseline first.
type PairMS struct {
	Baseline float64 `json:"baseline"`
	Prefetch float64 `json:"prefetch"`
}

// Series is the full measurement record for one operation: one pair per
// thread-count group. The structured form exists so nothing outside
// SeriesFromValues/Values ever indexes into the flat six-slot encoding.
type Series struct {
	Threads1 PairMS `json:"threads_1"`
	Threads4 PairMS `json:"threads_4"`
	Threads8 PairMS `json:"threads_8"`
}

// Operation couples an operation name with its measurements.
type Operation struct {
	Name   string `json:"name"`
	Series Series `json:"series"`
}

// Dataset is the ordered list of operations to chart. Slice order is chart
// generation order.
type Dataset []Operation

// InputShapeError reports a measurement slice whose length is not SeriesLen.
// Any other length makes bar pairing ambiguous.
type InputShapeError struct {
	Got int
}

func (e *InputShapeError) Error() string {
	return fmt.Sprintf("measurement series must have exactly %d values, got %d", SeriesLen, e.Got)
}

// SeriesValueError reports measurement values the layout cannot scale.
type SeriesValueError struct {
	Reason string
}

func (e *SeriesValueError) Error() string {
	return "invalid measurement series: " + e.Reason
}

// SeriesFromValues builds a Series from the flat ordering the benchmark
// emits: (baseline, prefetch) for 1 thread, then 4 threads, then 8.
func SeriesFromValues(values []float64) (Series, error) {
	if len(values) != SeriesLen {
		return Series{}, &InputShapeError{Got: len(values)}
	}
	s := Series{
		Threads1: PairMS{Baseline: values[0], Prefetch: values[1]},
		Threads4: PairMS{Baseline: values[2], Prefetch: values[3]},
		Threads8: PairMS{Baseline: values[4], Prefetch: values[5]},
	}
	if err := s.Validate(); err != nil {
		return Series{}, err
	}
	return s, nil
}

// Values returns the flat ordering accepted by SeriesFromValues.
func (s Series) Values() [SeriesLen]float64 {
	return [SeriesLen]float64{
		s.Threads1.Baseline, s.Threads1.Prefetch,
		s.Threads4.Baseline, s.Threads4.Prefetch,
		s.Threads8.Baseline, s.Threads8.Prefetch,
	}
}

// Max returns the largest measurement in the series.
func (s Series) Max() float64 {
	var m float64
	for _, v := range s.Values() {
		if v > m {
			m = v
		}
	}
	return m
}

// Validate rejects series the layout cannot scale: negative latencies, and
// all-zero series (max(values)=0 collapses both the axis upper bound and the
// label offset to zero).
func (s Series) Validate() error {
	anyPositive := false
	for _, v := range s.Values() {
		if v < 0 {
			return &SeriesValueError{Reason: fmt.Sprintf("negative value %g", v)}
		}
		if v > 0 {
			anyPositive = true
		}
	}
	if !anyPositive {
		return &SeriesValueError{Reason: "all values are zero"}
	}
	return nil
}

// Default returns the built-in dataset: the averaged latencies from the
// reference bptree benchmark run, in chart order.
func Default() Dataset {
	return Dataset{
		{Name: "Insert", Series: Series{
			Threads1: PairMS{Baseline: 1747.17, Prefetch: 1761.01},
			Threads4: PairMS{Baseline: 2527.52, Prefetch: 2473.08},
			Threads8: PairMS{Baseline: 6722.87, Prefetch: 6508.76},
		}},
		{Name: "Point Query", Series: Series{
			Threads1: PairMS{Baseline: 143.418, Prefetch: 144.324},
			Threads4: PairMS{Baseline: 66.6302, Prefetch: 67.0874},
			Threads8: PairMS{Baseline: 122.803, Prefetch: 121.944},
		}},
		{Name: "Range Query", Series: Series{
			Threads1: PairMS{Baseline: 21.0505, Prefetch: 21.208},
			Threads4: PairMS{Baseline: 22.3419, Prefetch: 22.3686},
			Threads8: PairMS{Baseline: 23.5758, Prefetch: 23.5613},
		}},
		{Name: "Random Query", Series: Series{
			Threads1: PairMS{Baseline: 170.815, Prefetch: 174.453},
			Threads4: PairMS{Baseline: 74.6284, Prefetch: 72.5661},
			Threads8: PairMS{Baseline: 129.887, Prefetch: 128.808},
		}},
	}
}
