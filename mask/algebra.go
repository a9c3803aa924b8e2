// SPDX-License-Identifier: MIT
// Package: mask
//
// Purpose:
//   - Elementwise kernels joining masks to masks and masks to data.
//   - Flat 0..n-1 loops over the shared row-major layout; no hidden
//     allocations beyond the output.

package mask

import (
	"fmt"

	"github.com/katalvlaran/grinder/tensor"
)

// Operation name constants for unified error wrapping.
const (
	opCombine       = "Combine"
	opAndNot        = "AndNot"
	opApply         = "Apply"
	opFillAndGet    = "FillAndGetMask"
	opCountAxis     = "CountAxis"
	opBudgetForMask = "Budget"
	opGaps          = "Gaps"
)

// maskErrorf wraps err with the operation name.
func maskErrorf(op string, err error) error {
	return fmt.Errorf("mask.%s: %w", op, err)
}

// sameShape validates that both masks exist and agree on shape.
func sameShape(a, b *Mask) error {
	if a == nil || b == nil {
		return ErrNilMask
	}
	if !a.shape.Equal(b.shape) {
		return fmt.Errorf("%v vs %v: %w", a.shape, b.shape, ErrShapeMismatch)
	}
	return nil
}

// Combine returns a OR b.
//
// Behavior highlights:
//   - Commutative and idempotent; the all-false mask is the identity.
//
// Errors:
//   - ErrNilMask, ErrShapeMismatch.
//
// Complexity: O(n).
func Combine(a, b *Mask) (*Mask, error) {
	if err := sameShape(a, b); err != nil {
		return nil, maskErrorf(opCombine, err)
	}
	out := Zeros(a.shape)
	for i := range a.bits {
		out.bits[i] = a.bits[i] || b.bits[i]
	}
	return out, nil
}

// AndNot returns a AND NOT b. With a = final mask and b = pre-existing mask
// this is the indicating mask: positions that were artificially emptied.
//
// Complexity: O(n).
func AndNot(a, b *Mask) (*Mask, error) {
	if err := sameShape(a, b); err != nil {
		return nil, maskErrorf(opAndNot, err)
	}
	out := Zeros(a.shape)
	for i := range a.bits {
		out.bits[i] = a.bits[i] && !b.bits[i]
	}
	return out, nil
}

// Indicating returns the artificially emptied positions: final AND NOT existing.
func Indicating(final, existing *Mask) (*Mask, error) { return AndNot(final, existing) }

// Observed returns the complement of m: true where the value is observed.
func (m *Mask) Observed() *Mask { return Not(m) }

// Not returns the complement: true where m is observed.
//
// Complexity: O(n).
func Not(m *Mask) *Mask {
	out := Zeros(m.shape)
	for i, b := range m.bits {
		out.bits[i] = !b
	}
	return out
}

// Apply returns a copy of data where every position marked in m holds
// sentinel. Unmarked positions keep their exact bit pattern.
//
// Errors:
//   - tensor.ErrNilTensor, ErrNilMask, ErrShapeMismatch.
//
// Complexity: O(n) time, O(n) space for the copy.
func Apply(data *tensor.Dense, m *Mask, sentinel float64) (*tensor.Dense, error) {
	if data == nil {
		return nil, maskErrorf(opApply, tensor.ErrNilTensor)
	}
	if m == nil {
		return nil, maskErrorf(opApply, ErrNilMask)
	}
	if !data.Shape().Equal(m.shape) {
		return nil, maskErrorf(opApply, fmt.Errorf("data %v vs mask %v: %w", data.Shape(), m.shape, ErrShapeMismatch))
	}
	out := data.Clone()
	raw := out.Raw()
	for i, b := range m.bits {
		if b {
			raw[i] = sentinel
		}
	}
	return out, nil
}

// FillAndGetMask returns a copy of data with every missing value (under
// sentinel) replaced by fill, together with the missing mask.
//
// Complexity: O(n).
func FillAndGetMask(data *tensor.Dense, sentinel, fill float64) (*tensor.Dense, *Mask, error) {
	m, err := FromSentinel(data, sentinel)
	if err != nil {
		return nil, nil, maskErrorf(opFillAndGet, err)
	}
	out, err := Apply(data, m, fill)
	if err != nil {
		return nil, nil, maskErrorf(opFillAndGet, err)
	}
	return out, m, nil
}
