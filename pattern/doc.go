// SPDX-License-Identifier: MIT

// Package pattern implements the missingness mechanisms used to corrupt
// time-series arrays: which cells disappear, never what they are replaced
// with.
//
// Mechanisms:
//
//	PointUniform         – independent cells chosen uniformly at random.
//	Block                – contiguous runs along time, per (sample, feature) series.
//	SpatialBlock         – rectangles spanning time and features, per sample.
//	NotAtRandom          – removal probability rises with the cell's own value.
//	TemporalNotAtRandom  – removal probability follows a periodic intensity in time.
//
// Every generator returns a mask of NEW missing positions only. Budgets are
// computed as round(ratio·cells) minus cells already missing, so the total
// missing fraction approaches the requested ratio rather than exceeding it.
// When the budget cannot be met the generator places what it can and
// reports the shortfall; WithStrict turns that into ErrBudgetExceeded.
//
// Determinism: all randomness flows through an rng.Stream. The same data,
// options and seed always yield the same mask.
package pattern
