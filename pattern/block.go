// SPDX-License-Identifier: MIT
// Package: grinder/pattern
//
// block.go - contiguous missing runs along the time axis.
//
// Each (sample, feature) series is handled independently with its own
// budget b = EffectiveBudget(missing in series, T, ratio). Series of
// features outside WithFeatures are skipped and carry no budget. Blocks are drawn
// until b cells are placed:
//
//	L     ~ U{minLen..maxLen}, truncated to the remaining budget
//	start ~ U{0..T-L}
//
// A draw overlapping an existing, reserved or already placed cell is
// rejected. After maxAttempts rejections in a row the generator enumerates
// every feasible start for the longest length that still fits and picks one
// uniformly; only when no run of even the shortest length fits is the series
// given up on (shortfall).
//
// Complexity: O(N·F·(T + b·attempts·maxLen)) time, O(T) extra memory.

package pattern

import (
	"fmt"

	"github.com/katalvlaran/grinder/mask"
)

// generateBlock implements Block for every series of the array.
func generateBlock(j *job) (*Outcome, error) {
	l := j.layout
	minLen, maxLen, err := resolveBounds(j.method, "block length",
		j.cfg.minLen, j.cfg.maxLen, j.cfg.minLenSet, j.cfg.maxLenSet, l.Steps)
	if err != nil {
		return nil, err
	}

	var (
		requested int
		blocks    []Region
		n, f, t   int
	)
	series := make([]int, l.Steps)
	ex := j.existing.Raw()
	allowed := j.allowedFeatures()
	for n = 0; n < l.Samples; n++ {
		for f = 0; f < l.Features; f++ {
			// excluded series carry no budget
			if allowed != nil && !allowed[f] {
				continue
			}
			missing := 0
			for t = 0; t < l.Steps; t++ {
				series[t] = l.Offset(n, t, f)
				if ex[series[t]] {
					missing++
				}
			}
			budget := mask.EffectiveBudget(missing, l.Steps, j.ratio)
			requested += budget

			placed, got := j.placeRuns(series, budget, minLen, maxLen)
			for _, b := range got {
				blocks = append(blocks, Region{Sample: n, Step: b[0], Feature: f, Length: b[1], Width: 1})
			}
			if placed < budget && j.cfg.strict {
				return nil, j.shortfallErr(fmt.Sprintf("series (%d,%d)", n, f), budget, placed)
			}
		}
	}
	return j.finish(requested, blocks), nil
}

// placeRuns places runs over the 1D offset view `series` until budget cells
// are marked or nothing fits. It returns the placed count and [start,len]
// pairs.
func (j *job) placeRuns(series []int, budget, minLen, maxLen int) (int, [][2]int) {
	var (
		placed int
		runs   [][2]int
	)
	steps := len(series)
	for placed < budget {
		rem := budget - placed
		length := minLen + j.stream.Intn(maxLen-minLen+1)
		if length > rem {
			length = rem
		}

		start := -1
		for attempt := 0; attempt < j.cfg.maxAttempts; attempt++ {
			s := j.stream.Intn(steps - length + 1)
			if j.runFree(series, s, length) {
				start = s
				break
			}
		}
		if start < 0 {
			start, length = j.fallbackRun(series, rem, minLen, maxLen)
			if start < 0 {
				break
			}
		}
		for t := start; t < start+length; t++ {
			j.mark(series[t])
		}
		placed += length
		runs = append(runs, [2]int{start, length})
	}
	return placed, runs
}

// runFree reports whether series[start:start+length] is entirely free.
func (j *job) runFree(series []int, start, length int) bool {
	for t := start; t < start+length; t++ {
		if !j.free(series[t]) {
			return false
		}
	}
	return true
}

// fallbackRun enumerates feasible starts, longest length first, and picks
// one uniformly. Lengths never drop below min(minLen, rem). Returns -1 when
// nothing fits.
func (j *job) fallbackRun(series []int, rem, minLen, maxLen int) (int, int) {
	hi := maxLen
	if hi > rem {
		hi = rem
	}
	lo := minLen
	if lo > rem {
		lo = rem
	}
	// free-run lengths ending at each step, so feasibility is O(1) per start
	runEnd := make([]int, len(series))
	var t int
	for t = range series {
		if !j.free(series[t]) {
			continue
		}
		runEnd[t] = 1
		if t > 0 {
			runEnd[t] += runEnd[t-1]
		}
	}
	var starts []int
	for length := hi; length >= lo; length-- {
		starts = starts[:0]
		for t = length - 1; t < len(series); t++ {
			if runEnd[t] >= length {
				starts = append(starts, t-length+1)
			}
		}
		if len(starts) > 0 {
			return starts[j.stream.Intn(len(starts))], length
		}
	}
	return -1, 0
}
