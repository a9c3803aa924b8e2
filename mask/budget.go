// SPDX-License-Identifier: MIT

package mask

import (
	"fmt"
	"math"

	"github.com/katalvlaran/grinder/tensor"
)

// EffectiveBudget returns how many additional positions must become missing
// so that round(ratio*total) positions are missing overall, given that
// alreadyMissing are missing now:
//
//	max(0, round(ratio*total) - alreadyMissing)
//
// Rounding is half away from zero (math.Round). Callers validate ratio.
//
// Complexity: O(1).
func EffectiveBudget(alreadyMissing, total int, ratio float64) int {
	target := int(math.Round(ratio * float64(total)))
	b := target - alreadyMissing
	if b < 0 {
		return 0
	}
	return b
}

// Budget applies EffectiveBudget to a whole mask.
func Budget(existing *Mask, ratio float64) (int, error) {
	if existing == nil {
		return 0, maskErrorf(opBudgetForMask, ErrNilMask)
	}
	return EffectiveBudget(existing.Count(), existing.Len(), ratio), nil
}

// CountAxis returns, for every index i along axis, how many true positions
// the hyperplane at i contains. For a 2D [T,F] mask, axis 1 yields per-feature
// counts and axis 0 per-step counts.
//
// Errors:
//   - ErrNilMask, ErrBadAxis.
//
// Complexity: O(n).
func CountAxis(m *Mask, axis int) ([]int, error) {
	if m == nil {
		return nil, maskErrorf(opCountAxis, ErrNilMask)
	}
	if axis < 0 || axis >= len(m.shape) {
		return nil, maskErrorf(opCountAxis, fmt.Errorf("axis %d of %d dims: %w", axis, len(m.shape), ErrBadAxis))
	}
	// stride of axis = product of trailing extents
	stride := 1
	for k := axis + 1; k < len(m.shape); k++ {
		stride *= m.shape[k]
	}
	extent := m.shape[axis]
	out := make([]int, extent)
	for off, b := range m.bits {
		if b {
			out[(off/stride)%extent]++
		}
	}
	return out, nil
}

// MissingRate returns the fraction of positions of d missing under sentinel.
//
// Complexity: O(n).
func MissingRate(d *tensor.Dense, sentinel float64) (float64, error) {
	m, err := FromSentinel(d, sentinel)
	if err != nil {
		return 0, err
	}
	return m.Rate(), nil
}
