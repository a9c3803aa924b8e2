// SPDX-License-Identifier: MIT
// Package tensor: sentinel error set.
// All functions return these sentinels (optionally wrapped with %w context);
// callers match them via errors.Is.

package tensor

import "errors"

var (
	// ErrBadShape is returned when a shape has no dimensions, more than
	// MaxDims dimensions, or a non-positive extent.
	ErrBadShape = errors.New("tensor: invalid shape")

	// ErrShapeMismatch indicates that two shapes (or a buffer length and a
	// shape) disagree.
	ErrShapeMismatch = errors.New("tensor: shape mismatch")

	// ErrOutOfRange indicates that an index is outside valid bounds.
	ErrOutOfRange = errors.New("tensor: index out of range")

	// ErrNilTensor indicates that a nil *Dense was passed.
	ErrNilTensor = errors.New("tensor: nil tensor")

	// ErrRagged indicates that nested input slices have unequal lengths.
	ErrRagged = errors.New("tensor: ragged input")
)
