// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Bin is one histogram bar covering [Min, Max).
// The last bin of a histogram also includes its Max.
type Bin struct {
	Min, Max float64
	Count    int
}

// binning is the result of laying out dividers for a sample set.
type binning struct {
	bins []Bin
	logX bool // dividers are log-spaced and all positive
}

// Bin counts samples into the configured number of bins.
//
// Errors:
//   - ErrNoSamples: len(samples) == 0.
//   - ErrNonFinite: a sample is NaN or ±Inf.
func (r *Renderer) Bin(samples []float64) ([]Bin, error) {
	b, err := binSamples(samples, r.cfg.Bins, r.cfg.Spacing)
	if err != nil {
		return nil, err
	}

	return b.bins, nil
}

// binSamples sorts a copy of samples, builds n+1 dividers and counts with
// stat.Histogram.
//
// Range policy:
//   - LogBins with all samples ≥ 1: [1, max+1], log-spaced.
//   - LogBins with all samples > 0 and some below 1: [min, max+1], log-spaced.
//   - LogBins with any sample ≤ 0 falls back to LinearBins.
//   - LinearBins: [min, max]; all-equal samples widen to [v-0.5, v+0.5].
//
// The last divider is nudged up by one ulp so max lands in the final bin.
//
// Complexity: O(S log S + n).
func binSamples(samples []float64, n int, spacing Spacing) (binning, error) {
	if len(samples) == 0 {
		return binning{}, ErrNoSamples
	}
	x := make([]float64, len(samples))
	for i, v := range samples {
		// stat.Histogram panics on values outside the dividers.
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return binning{}, fmt.Errorf("%w: samples[%d]=%v", ErrNonFinite, i, v)
		}
		x[i] = v
	}
	sort.Float64s(x)
	lo, hi := x[0], x[len(x)-1]

	dividers := make([]float64, n+1)
	logX := spacing == LogBins && lo > 0
	if logX {
		lo = math.Min(lo, 1)
		hi++
		floats.LogSpan(dividers, lo, hi)
	} else {
		if lo == hi {
			lo, hi = lo-0.5, hi+0.5
		}
		floats.Span(dividers, lo, hi)
	}
	// Pin the ends: LogSpan round-trips through exp/log and may drift.
	dividers[0] = lo
	dividers[n] = math.Nextafter(hi, math.Inf(1))

	counts := stat.Histogram(nil, dividers, x, nil)

	bins := make([]Bin, n)
	for i := range bins {
		bins[i] = Bin{Min: dividers[i], Max: dividers[i+1], Count: int(counts[i])}
	}

	return binning{bins: bins, logX: logX}, nil
}

// maxCount returns the largest bin count.
func maxCount(bins []Bin) int {
	m := 0
	for _, b := range bins {
		if b.Count > m {
			m = b.Count
		}
	}

	return m
}
