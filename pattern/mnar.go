// SPDX-License-Identifier: MIT
// Package: grinder/pattern
//
// mnar.go - value-dependent ("not at random") missingness.
//
// For a free cell with value x in feature f:
//
//	z   = (x - θ_f) / σ_f        (negated with WithBelow)
//	w   = 1 / (1 + exp(-k·z))    (k = steepness)
//	p   = min(1, c·w)
//
// θ_f is WithThreshold when set, otherwise the empirical quantile of the
// observed values of f (default: median). σ_f is the observed standard
// deviation (1 when degenerate). The single factor c is calibrated per
// budget group so that Σp equals the budget; each cell is then removed by
// an independent Bernoulli trial. WithExact replaces the trials by weighted
// sampling without replacement so that exactly the budget is removed.

package pattern

import (
	"fmt"
	"math"

	"github.com/katalvlaran/grinder/tensor"
)

// generateNotAtRandom implements NotAtRandom.
func generateNotAtRandom(j *job) (*Outcome, error) {
	stats := j.data.ObservedStats(j.cfg.sentinel)
	var thresholds []float64
	if j.cfg.thresholdSet {
		thresholds = make([]float64, j.layout.Features)
		for f := range thresholds {
			thresholds[f] = j.cfg.threshold
		}
	} else {
		thresholds = j.data.ObservedQuantiles(j.cfg.quantile, j.cfg.sentinel)
	}

	raw := j.data.Raw()
	weight := func(off int) float64 {
		x := raw[off]
		if tensor.IsMissing(x, j.cfg.sentinel) {
			return 0
		}
		f := off % j.layout.Features
		z := (x - thresholds[f]) / stats[f].Std
		if j.cfg.below {
			z = -z
		}
		return 1 / (1 + math.Exp(-j.cfg.steepness*z))
	}
	return j.calibratedGroups(weight)
}

// calibratedGroups runs the shared calibrate-then-sample loop over all
// budget groups. weight maps an offset to its raw, unscaled weight.
func (j *job) calibratedGroups(weight func(off int) float64) (*Outcome, error) {
	var requested int
	for gi, g := range j.groups() {
		budget, free := j.groupBudget(g)
		requested += budget
		if budget == 0 || len(free) == 0 {
			if budget > 0 && j.cfg.strict {
				return nil, j.shortfallErr(fmt.Sprintf("group %d", gi), budget, 0)
			}
			continue
		}
		w := make([]float64, len(free))
		for i, off := range free {
			w[i] = weight(off)
		}
		if pos := positives(w); budget > pos && j.cfg.strict {
			return nil, j.shortfallErr(fmt.Sprintf("group %d", gi), budget, pos)
		}

		if j.cfg.exact {
			for _, i := range weightedSampleExact(w, budget, j.stream.Float64) {
				j.mark(free[i])
			}
			continue
		}
		c := calibrate(w, budget)
		for i, off := range free {
			if j.stream.Float64() < scaledProb(w[i], c) {
				j.mark(off)
			}
		}
	}
	return j.finish(requested, nil), nil
}
