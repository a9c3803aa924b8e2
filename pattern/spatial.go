// SPDX-License-Identifier: MIT
// Package: grinder/pattern
//
// spatial.go - rectangular missing regions spanning time and features.
//
// Each sample plane (T×F) has its own budget b = EffectiveBudget(missing in
// plane, T·F, ratio). A rectangle of height h ∈ [minLen,maxLen] (steps) and
// width w ∈ [minWidth,maxWidth] (features) is drawn; when h·w exceeds the
// remaining budget r it shrinks to w' = min(w, r), h' = r / w'. Placement
// retries up to maxAttempts and then falls back to exhaustive enumeration,
// shrinking the rectangle down to the minimum extents before giving up.
//
// Complexity: O(N·(T·F + blocks·attempts·h·w)) time.

package pattern

import (
	"fmt"

	"github.com/katalvlaran/grinder/mask"
)

// generateSpatialBlock implements SpatialBlock for every sample plane.
func generateSpatialBlock(j *job) (*Outcome, error) {
	l := j.layout
	minLen, maxLen, err := resolveBounds(j.method, "block length",
		j.cfg.minLen, j.cfg.maxLen, j.cfg.minLenSet, j.cfg.maxLenSet, l.Steps)
	if err != nil {
		return nil, err
	}
	minW, maxW, err := resolveBounds(j.method, "block width",
		j.cfg.minWidth, j.cfg.maxWidth, j.cfg.minWidthSet, j.cfg.maxWidthSet, l.Features)
	if err != nil {
		return nil, err
	}

	var (
		requested int
		blocks    []Region
		n         int
	)
	ex := j.existing.Raw()
	plane := l.Steps * l.Features
	for n = 0; n < l.Samples; n++ {
		missing := 0
		for off := n * plane; off < (n+1)*plane; off++ {
			if ex[off] {
				missing++
			}
		}
		budget := mask.EffectiveBudget(missing, plane, j.ratio)
		requested += budget

		placed := 0
		for placed < budget {
			rem := budget - placed
			h := minLen + j.stream.Intn(maxLen-minLen+1)
			w := minW + j.stream.Intn(maxW-minW+1)
			if h*w > rem {
				if w > rem {
					w = rem
				}
				h = rem / w
			}

			t0, f0 := -1, -1
			for attempt := 0; attempt < j.cfg.maxAttempts; attempt++ {
				t := j.stream.Intn(l.Steps - h + 1)
				f := j.stream.Intn(l.Features - w + 1)
				if j.rectFree(n, t, f, h, w) {
					t0, f0 = t, f
					break
				}
			}
			if t0 < 0 {
				t0, f0, h, w = j.fallbackRect(n, h, w, minLen, minW)
				if t0 < 0 {
					break
				}
			}
			j.markRect(n, t0, f0, h, w)
			placed += h * w
			blocks = append(blocks, Region{Sample: n, Step: t0, Feature: f0, Length: h, Width: w})
		}
		if placed < budget && j.cfg.strict {
			return nil, j.shortfallErr(fmt.Sprintf("sample %d", n), budget, placed)
		}
	}
	return j.finish(requested, blocks), nil
}

// rectFree reports whether every cell of the rectangle is free.
func (j *job) rectFree(n, t0, f0, h, w int) bool {
	var t, f int
	for t = t0; t < t0+h; t++ {
		for f = f0; f < f0+w; f++ {
			if !j.free(j.layout.Offset(n, t, f)) {
				return false
			}
		}
	}
	return true
}

func (j *job) markRect(n, t0, f0, h, w int) {
	var t, f int
	for t = t0; t < t0+h; t++ {
		for f = f0; f < f0+w; f++ {
			j.mark(j.layout.Offset(n, t, f))
		}
	}
}

// fallbackRect scans all positions for rectangles of decreasing area,
// starting at (h,w) and never below (min(minLen,h), min(minW,w)). Among the
// feasible positions of the first size that fits, one is chosen uniformly.
// Returns t0 = -1 when nothing fits.
func (j *job) fallbackRect(n, h, w, minLen, minW int) (int, int, int, int) {
	loH, loW := minLen, minW
	if loH > h {
		loH = h
	}
	if loW > w {
		loW = w
	}
	type pos struct{ t, f int }
	var (
		cands  []pos
		hh, ww int
		t, f   int
	)
	for hh = h; hh >= loH; hh-- {
		for ww = w; ww >= loW; ww-- {
			cands = cands[:0]
			for t = 0; t+hh <= j.layout.Steps; t++ {
				for f = 0; f+ww <= j.layout.Features; f++ {
					if j.rectFree(n, t, f, hh, ww) {
						cands = append(cands, pos{t, f})
					}
				}
			}
			if len(cands) > 0 {
				p := cands[j.stream.Intn(len(cands))]
				return p.t, p.f, hh, ww
			}
		}
	}
	return -1, -1, 0, 0
}
