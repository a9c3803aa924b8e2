// SPDX-License-Identifier: MIT

package mask

import (
	"errors"

	"github.com/katalvlaran/grinder/tensor"
)

var (
	// ErrNilMask indicates that a nil *Mask was passed.
	ErrNilMask = errors.New("mask: nil mask")

	// ErrBadAxis indicates an axis outside 0..dims-1.
	ErrBadAxis = errors.New("mask: axis out of range")
)

// ErrShapeMismatch aliases tensor.ErrShapeMismatch so that a single
// errors.Is check covers mask/data and mask/mask disagreements.
var ErrShapeMismatch = tensor.ErrShapeMismatch
