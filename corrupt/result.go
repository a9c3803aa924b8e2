// SPDX-License-Identifier: MIT

package corrupt

import (
	"github.com/katalvlaran/grinder/mask"
	"github.com/katalvlaran/grinder/pattern"
	"github.com/katalvlaran/grinder/tensor"
)

// Result is the outcome of a successful Corrupt call.
type Result struct {
	// Data is the corrupted copy: every position of Mask holds the sentinel.
	Data *tensor.Dense
	// Mask marks every missing position (pre-existing and new).
	Mask *mask.Mask
	// Indicating marks only the positions emptied by this call.
	Indicating *mask.Mask
	// Existing marks the positions missing before the call.
	Existing *mask.Mask

	Mechanism pattern.Mechanism
	Sentinel  float64

	// Requested is the budget of new positions; Achieved how many were placed.
	Requested int
	Achieved  int

	// Regions lists the placed blocks (Block and SpatialBlock only).
	Regions []pattern.Region

	source *tensor.Dense
}

// Shortfall returns how many requested positions could not be placed.
func (r *Result) Shortfall() int {
	if r.Achieved >= r.Requested {
		return 0
	}
	return r.Requested - r.Achieved
}

// Rate returns the overall missing fraction after corruption.
func (r *Result) Rate() float64 { return r.Mask.Rate() }

// Observed returns the complement of Mask.
func (r *Result) Observed() *mask.Mask { return r.Mask.Observed() }

// Intact returns the original values with pre-existing gaps replaced by
// fill. It is the ground truth imputation is scored against on Indicating.
// A Result not produced by Corrupt yields nil.
func (r *Result) Intact(fill float64) *tensor.Dense {
	// Corrupt derives Existing from source, so shapes always agree and
	// Apply can only fail on a hand-built Result.
	out, err := mask.Apply(r.source, r.Existing, fill)
	if err != nil {
		return nil
	}
	return out
}
