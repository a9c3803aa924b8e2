// SPDX-License-Identifier: MIT
// Package pattern provides validation helpers enforcing the parameter
// contracts of every generator. Each returns a wrapped sentinel.

package pattern

import (
	"fmt"
	"math"
)

// validateRatio enforces r ∈ [MinRatio, MaxRatio) and rejects NaN.
// Complexity: O(1).
func validateRatio(method string, r float64) error {
	if math.IsNaN(r) || r < MinRatio || r >= MaxRatio {
		return fmt.Errorf("%s: ratio=%v not in [%.1f,%.1f): %w", method, r, MinRatio, MaxRatio, ErrInvalidParameter)
	}
	return nil
}

// validateDims enforces the mechanism's minimum dimensionality. The error
// matches both ErrShapeMismatch and ErrInvalidParameter.
func validateDims(method string, m Mechanism, dims int) error {
	if dims < m.MinDims() {
		return fmt.Errorf("%s: %s needs ≥%d dims, got %d: %w: %w",
			method, m, m.MinDims(), dims, ErrShapeMismatch, ErrInvalidParameter)
	}
	return nil
}

// resolveBounds returns the effective [lo,hi] for a block extent along an
// axis of length n. Explicit bounds must fit the axis; defaults are clipped.
//
// Errors:
//   - ErrInvalidParameter when lo > hi or an explicit bound exceeds n.
func resolveBounds(method, what string, lo, hi int, loSet, hiSet bool, n int) (int, int, error) {
	if loSet && lo > n {
		return 0, 0, fmt.Errorf("%s: min %s=%d exceeds axis length %d: %w", method, what, lo, n, ErrInvalidParameter)
	}
	if hiSet && hi > n {
		return 0, 0, fmt.Errorf("%s: max %s=%d exceeds axis length %d: %w", method, what, hi, n, ErrInvalidParameter)
	}
	if !loSet && lo > n {
		lo = n
	}
	if !hiSet && hi > n {
		hi = n
	}
	if !hiSet && hi < lo {
		hi = lo
	}
	if lo > hi {
		return 0, 0, fmt.Errorf("%s: min %s=%d > max %s=%d: %w", method, what, lo, what, hi, ErrInvalidParameter)
	}
	return lo, hi, nil
}

// validateFeatures checks the feature subset against the feature count.
func validateFeatures(method string, idx []int, features int) error {
	for _, i := range idx {
		if i >= features {
			return fmt.Errorf("%s: feature %d out of range [0,%d): %w", method, i, features, ErrInvalidParameter)
		}
	}
	return nil
}

// validateFeatureRatios checks length and range of a per-feature ratio vector.
func validateFeatureRatios(method string, r []float64, features int) error {
	if r == nil {
		return nil
	}
	if len(r) != features {
		return fmt.Errorf("%s: %d feature ratios for %d features: %w", method, len(r), features, ErrInvalidParameter)
	}
	for _, v := range r {
		if err := validateRatio(method, v); err != nil {
			return err
		}
	}
	return nil
}
