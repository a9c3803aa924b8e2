// SPDX-License-Identifier: MIT

// Package synth generates deterministic numeric series to feed the
// corruption pipeline in demos, fixtures and benchmarks.
//
// Three shapes are available:
//
//   - Pulse: rectangular or triangular periodic wave.
//   - Chirp: sine whose frequency sweeps linearly across the series.
//   - OHLC: open/high/low/close candles from a geometric Brownian walk.
//
// Every generator returns a [samples, steps, features] tensor.Dense and is
// a pure function of its arguments: the same seed and options always yield
// the same values.
//
// Example:
//
//	x, header, err := synth.Generate(synth.Chirp, 4, 128, 42, synth.WithFeatures(3))
//	if err != nil {
//		return err
//	}
//	res, err := corrupt.Block(x, 0.2, corrupt.WithSeed(42))
package synth
