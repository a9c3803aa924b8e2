// SPDX-License-Identifier: MIT
// Package: tensor
//
// Purpose:
//   - Per-feature statistics over OBSERVED values only (missing cells skipped),
//     used by value-dependent missingness to standardize and threshold values.
//   - Deterministic traversal (samples → steps) per feature.

package tensor

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// IsMissing reports whether v denotes a missing cell under sentinel.
// NaN is always missing; a non-NaN sentinel additionally matches by equality.
func IsMissing(v, sentinel float64) bool {
	if math.IsNaN(v) {
		return true
	}
	return !math.IsNaN(sentinel) && v == sentinel
}

// FeatureStats summarizes the observed values of one feature.
type FeatureStats struct {
	Count int     // observed cells
	Mean  float64 // NaN when Count == 0
	Std   float64 // sample standard deviation; 1 when degenerate (Count<2 or zero spread)
}

// ObservedColumn gathers the observed values of feature f, in traversal
// order (sample asc, step asc).
// Complexity: O(N*T).
func (d *Dense) ObservedColumn(f int, sentinel float64) []float64 {
	l := d.Layout()
	out := make([]float64, 0, l.Samples*l.Steps)
	var n, t int
	var v float64
	for n = 0; n < l.Samples; n++ {
		for t = 0; t < l.Steps; t++ {
			v = d.data[l.Offset(n, t, f)]
			if IsMissing(v, sentinel) {
				continue
			}
			out = append(out, v)
		}
	}
	return out
}

// ObservedStats computes FeatureStats for every feature.
//
// Behavior highlights:
//   - Missing cells (per IsMissing) never contribute.
//   - A degenerate spread is reported as Std=1 so callers can divide safely.
//
// Complexity: O(size).
func (d *Dense) ObservedStats(sentinel float64) []FeatureStats {
	l := d.Layout()
	out := make([]FeatureStats, l.Features)
	var f int
	for f = 0; f < l.Features; f++ {
		col := d.ObservedColumn(f, sentinel)
		fs := FeatureStats{Count: len(col), Mean: math.NaN(), Std: 1}
		if len(col) > 0 {
			mean, std := stat.MeanStdDev(col, nil)
			fs.Mean = mean
			if len(col) > 1 && std > 0 && !math.IsNaN(std) && !math.IsInf(std, 0) {
				fs.Std = std
			}
		}
		out[f] = fs
	}
	return out
}

// ObservedQuantiles returns the empirical q-quantile of each feature's
// observed values (NaN for a feature with no observed values).
// q must lie in [0,1]; callers validate it.
//
// Complexity: O(size · log size).
func (d *Dense) ObservedQuantiles(q, sentinel float64) []float64 {
	l := d.Layout()
	out := make([]float64, l.Features)
	var f int
	for f = 0; f < l.Features; f++ {
		col := d.ObservedColumn(f, sentinel)
		if len(col) == 0 {
			out[f] = math.NaN()
			continue
		}
		sort.Float64s(col)
		out[f] = stat.Quantile(q, stat.Empirical, col, nil)
	}
	return out
}
