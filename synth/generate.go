// SPDX-License-Identifier: MIT
// Package: grinder/synth
//
// generate.go - deterministic series generators.
//
// Contract:
//   - Generate(kind, samples, steps, seed, opts...) returns a tensor of shape
//     [samples, steps, features] and one column name per feature.
//   - Sample s draws from rng.Derive(rng.New(seed), s), so samples are
//     independent and adding samples never changes the earlier ones.
//
// Complexity: O(samples·steps·features) time and memory; OHLC costs an
// extra factor of the intraday tick count.

package synth

import (
	"fmt"
	"math"

	"github.com/katalvlaran/grinder/rng"
	"github.com/katalvlaran/grinder/tensor"
)

const tau = 2 * math.Pi

// ohlcColumns are the fixed OHLC column names, in storage order.
var ohlcColumns = []string{"open", "high", "low", "close"}

// Generate fills a [samples, steps, features] tensor with the selected series.
func Generate(kind Kind, samples, steps int, seed int64, opts ...Option) (*tensor.Dense, []string, error) {
	const method = "Generate"
	if samples < 1 || steps < 1 {
		return nil, nil, fmt.Errorf("%s: samples=%d steps=%d: %w", method, samples, steps, ErrInvalidSize)
	}
	cfg := newConfig(opts...)

	var fill func(dst []float64, l tensor.Layout, n int, src *rng.Source)
	var header []string
	switch kind {
	case Pulse:
		fill, header = cfg.pulse, featureNames(Pulse.String(), cfg.features)
	case Chirp:
		fill, header = cfg.chirp, featureNames(Chirp.String(), cfg.features)
	case OHLC:
		fill, header = cfg.ohlc, append([]string(nil), ohlcColumns...)
	default:
		return nil, nil, fmt.Errorf("%s: %v: %w", method, kind, ErrUnknownKind)
	}

	out, err := tensor.New(samples, steps, len(header))
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", method, err)
	}
	l := out.Layout()
	root := rng.New(seed)
	for n := 0; n < samples; n++ {
		fill(out.Raw(), l, n, rng.Derive(root, uint64(n)))
	}
	return out, header, nil
}

func featureNames(prefix string, n int) []string {
	names := make([]string, n)
	for f := range names {
		names[f] = fmt.Sprintf("%s_%d", prefix, f)
	}
	return names
}

// finish adds trend and noise to a base value.
func (c *config) finish(base float64, t int, src *rng.Source) float64 {
	base += c.trend * float64(t)
	if c.sigma > 0 {
		base += c.sigma * src.NormFloat64()
	}
	return base
}

// pulse writes a rectangular wave in {0, amp} (on while the phase fraction
// is below duty) or a triangular wave in [0, amp].
func (c *config) pulse(dst []float64, l tensor.Layout, n int, src *rng.Source) {
	var frac, base float64
	for t := 0; t < l.Steps; t++ {
		for f := 0; f < l.Features; f++ {
			frac = math.Mod(float64(t)*c.freq+float64(f)/float64(l.Features), 1)
			switch {
			case c.triangular:
				base = c.amp * (1 - math.Abs(2*frac-1))
			case frac < c.duty:
				base = c.amp
			default:
				base = 0
			}
			dst[l.Offset(n, t, f)] = c.finish(base, t, src)
		}
	}
}

// chirp writes amp·sin(θ) where θ integrates a frequency sweeping linearly
// from f0 to f1 over the series.
func (c *config) chirp(dst []float64, l tensor.Layout, n int, src *rng.Source) {
	theta := make([]float64, l.Features)
	for f := range theta {
		theta[f] = tau * float64(f) / float64(l.Features)
	}
	var pos, fi float64
	for t := 0; t < l.Steps; t++ {
		pos = 0
		if l.Steps > 1 {
			pos = float64(t) / float64(l.Steps-1)
		}
		fi = c.f0 + (c.f1-c.f0)*pos
		for f := 0; f < l.Features; f++ {
			theta[f] += tau * fi
			dst[l.Offset(n, t, f)] = c.finish(c.amp*math.Sin(theta[f]), t, src)
		}
	}
}

// ohlc writes one candle per step from a geometric Brownian walk sampled
// ticks times per candle:
//
//	S ← S·exp((μ − σ²/2)Δt + σ√Δt·Z),  Δt = 1/ticks.
//
// Every candle satisfies low ≤ min(open, close) ≤ max(open, close) ≤ high.
func (c *config) ohlc(dst []float64, l tensor.Layout, n int, src *rng.Source) {
	dt := 1 / float64(c.ticks)
	drift := (c.mu - 0.5*c.vol*c.vol) * dt
	scale := c.vol * math.Sqrt(dt)

	var open, hi, lo float64
	s := c.start
	for t := 0; t < l.Steps; t++ {
		open, hi, lo = s, s, s
		for k := 0; k < c.ticks; k++ {
			s *= math.Exp(drift + scale*src.NormFloat64())
			hi = max(hi, s)
			lo = min(lo, s)
		}
		dst[l.Offset(n, t, 0)] = open
		dst[l.Offset(n, t, 1)] = hi
		dst[l.Offset(n, t, 2)] = lo
		dst[l.Offset(n, t, 3)] = s
	}
}
