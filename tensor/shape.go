// SPDX-License-Identifier: MIT

package tensor

import (
	"fmt"
	"strings"
)

// MaxDims is the highest supported dimensionality (samples, steps, features).
const MaxDims = 3

// Shape lists the extent of every dimension, outermost first.
type Shape []int

// Layout is the (samples, steps, features) view of a Shape. Missing leading
// dimensions are reported as 1 so that every shape maps onto the same
// three-level loop nest.
type Layout struct {
	Samples  int
	Steps    int
	Features int
}

// Validate reports ErrBadShape when s is empty, too deep or has a
// non-positive extent.
// Complexity: O(len(s)).
func (s Shape) Validate() error {
	if len(s) == 0 || len(s) > MaxDims {
		return fmt.Errorf("shape %v: need 1..%d dims: %w", []int(s), MaxDims, ErrBadShape)
	}
	for i, d := range s {
		if d <= 0 {
			return fmt.Errorf("shape %v: dim %d = %d: %w", []int(s), i, d, ErrBadShape)
		}
	}
	return nil
}

// Dims returns the number of dimensions.
func (s Shape) Dims() int { return len(s) }

// Size returns the number of cells (product of extents); 0 for an empty shape.
func (s Shape) Size() int {
	if len(s) == 0 {
		return 0
	}
	n := 1
	for _, d := range s {
		n *= d
	}
	return n
}

// Equal reports whether s and o have identical extents.
func (s Shape) Equal(o Shape) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of s.
func (s Shape) Clone() Shape {
	return append(Shape(nil), s...)
}

// Layout maps s onto (samples, steps, features).
//
//	1D [T]       → {1, T, 1}
//	2D [T, F]    → {1, T, F}
//	3D [N, T, F] → {N, T, F}
func (s Shape) Layout() Layout {
	switch len(s) {
	case 1:
		return Layout{Samples: 1, Steps: s[0], Features: 1}
	case 2:
		return Layout{Samples: 1, Steps: s[0], Features: s[1]}
	case 3:
		return Layout{Samples: s[0], Steps: s[1], Features: s[2]}
	default:
		return Layout{}
	}
}

// String renders s as "N×T×F".
func (s Shape) String() string {
	parts := make([]string, len(s))
	for i, d := range s {
		parts[i] = fmt.Sprintf("%d", d)
	}
	return strings.Join(parts, "×")
}

// Offset returns the flat row-major offset of (sample, step, feature).
// No bounds checks: callers iterate within Layout extents.
func (l Layout) Offset(sample, step, feature int) int {
	return (sample*l.Steps+step)*l.Features + feature
}

// Size returns Samples*Steps*Features.
func (l Layout) Size() int { return l.Samples * l.Steps * l.Features }
