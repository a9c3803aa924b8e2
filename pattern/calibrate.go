// SPDX-License-Identifier: MIT

package pattern

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// expectedCount returns Σ min(1, c·w_i) over non-negative weights.
// Zero weights contribute nothing even for c = +Inf.
func expectedCount(w []float64, c float64) float64 {
	var s float64
	for _, wi := range w {
		s += scaledProb(wi, c)
	}
	return s
}

// scaledProb returns min(1, c·w), defined as 0 for w ≤ 0.
func scaledProb(w, c float64) float64 {
	if w <= 0 {
		return 0
	}
	p := c * w
	if p > 1 {
		return 1
	}
	return p
}

// positives counts strictly positive weights.
func positives(w []float64) int {
	n := 0
	for _, wi := range w {
		if wi > 0 {
			n++
		}
	}
	return n
}

// calibrate solves Σ min(1, c·w_i) = budget for the scale factor c.
//
// Behavior:
//   - budget ≤ 0 or no positive weight ⇒ c = 0.
//   - budget ≥ positives ⇒ c = +Inf (every positive weight becomes certain).
//   - otherwise: start at c₀ = budget/Σw (exact when nothing saturates),
//     double the upper bound until it covers the budget, then bisect for a
//     fixed number of iterations or until the bracket is narrower than
//     calibrationTolerance (relative).
//
// The search is bounded: at most calibrationMaxDoubles doublings plus
// calibrationIterations bisection steps.
//
// Complexity: O(len(w) · (doubles + iterations)).
func calibrate(w []float64, budget int) float64 {
	if budget <= 0 {
		return 0
	}
	pos := positives(w)
	if pos == 0 {
		return 0
	}
	if budget >= pos {
		return math.Inf(1)
	}
	target := float64(budget)
	total := floats.Sum(w)

	lo, hi := 0.0, target/total
	var i int
	for i = 0; i < calibrationMaxDoubles && expectedCount(w, hi) < target; i++ {
		lo = hi
		hi *= 2
	}
	var mid float64
	for i = 0; i < calibrationIterations; i++ {
		if hi-lo <= calibrationTolerance*hi {
			break
		}
		mid = lo + (hi-lo)/2
		if expectedCount(w, mid) < target {
			lo = mid
		} else {
			hi = mid
		}
	}
	return hi
}

// weightedSampleExact picks exactly k distinct indices with probability
// proportional to w (Efraimidis–Spirakis keys u^(1/w), compared in log
// space). Indices with w ≤ 0 are never chosen; k is clamped to their count.
// The result is sorted ascending.
//
// Complexity: O(n log n).
func weightedSampleExact(w []float64, k int, uniform func() float64) []int {
	type keyed struct {
		idx int
		key float64
	}
	cands := make([]keyed, 0, len(w))
	var u float64
	for i, wi := range w {
		// always draw so the stream advances identically whatever the weights
		u = uniform()
		if wi <= 0 {
			continue
		}
		if u == 0 {
			u = math.SmallestNonzeroFloat64
		}
		cands = append(cands, keyed{idx: i, key: math.Log(u) / wi})
	}
	if k > len(cands) {
		k = len(cands)
	}
	sort.Slice(cands, func(a, b int) bool {
		if cands[a].key != cands[b].key {
			return cands[a].key > cands[b].key
		}
		return cands[a].idx < cands[b].idx
	})
	out := make([]int, k)
	for i := 0; i < k; i++ {
		out[i] = cands[i].idx
	}
	sort.Ints(out)
	return out
}
