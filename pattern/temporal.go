// SPDX-License-Identifier: MIT
// Package: grinder/pattern
//
// temporal.go - time-dependent not-at-random missingness.
//
// The removal weight of a cell depends only on its (normalized) time step:
//
//	t    = step / (T-1)               (0 for T = 1)
//	f(t) = exp(3·sin(cycle·t + pos))
//	w(t) = max(0, 1 - f(t)/scale)
//
// By default the weights are calibrated to the ratio budget exactly like
// NotAtRandom. WithRawIntensity skips calibration: a cell is removed when
// u·scale ≥ f(t) for a fresh uniform u, and the ratio is ignored.

package pattern

import "math"

// intensity returns f(t) for every step of a series of length steps.
func intensity(steps int, cycle, pos float64) []float64 {
	out := make([]float64, steps)
	var t float64
	for s := range out {
		t = 0
		if steps > 1 {
			t = float64(s) / float64(steps-1)
		}
		out[s] = math.Exp(intensityAmplitude * math.Sin(cycle*t+pos))
	}
	return out
}

// generateTemporalNotAtRandom implements TemporalNotAtRandom.
func generateTemporalNotAtRandom(j *job) (*Outcome, error) {
	f := intensity(j.layout.Steps, j.cfg.cycle, j.cfg.pos)
	w := make([]float64, len(f))
	for s, v := range f {
		w[s] = math.Max(0, 1-v/j.cfg.scale)
	}
	stepOf := func(off int) int {
		return (off / j.layout.Features) % j.layout.Steps
	}

	if !j.cfg.rawIntensity {
		return j.calibratedGroups(func(off int) float64 { return w[stepOf(off)] })
	}

	var expected float64
	for off := range j.blocked {
		if !j.free(off) {
			continue
		}
		expected += w[stepOf(off)]
		if j.stream.Float64()*j.cfg.scale >= f[stepOf(off)] {
			j.mark(off)
		}
	}
	return j.finish(int(math.Round(expected)), nil), nil
}
