// SPDX-License-Identifier: MIT
// Package: grinder/pattern
//
// errors.go - sentinel errors for the pattern package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with "%s: ...: %w" (method first).
//   • Generators never panic at runtime; panics are confined to WithX
//     option constructors receiving meaningless values.

package pattern

import (
	"errors"

	"github.com/katalvlaran/grinder/tensor"
)

// ErrInvalidParameter indicates a ratio outside [0,1), malformed block
// bounds (min > max, a bound larger than its axis), a feature index out of
// range, or a per-feature ratio vector of the wrong length.
var ErrInvalidParameter = errors.New("pattern: invalid parameter")

// ErrUnknownPattern indicates an unrecognized mechanism name or value.
var ErrUnknownPattern = errors.New("pattern: unknown pattern")

// ErrBudgetExceeded is returned only in strict mode, when the requested
// number of new missing positions cannot be placed (not enough eligible
// cells, or no feasible block placement remained).
var ErrBudgetExceeded = errors.New("pattern: missing budget cannot be satisfied")

// ErrShapeMismatch indicates data, masks and mechanism disagree on shape or
// dimensionality. It aliases tensor.ErrShapeMismatch.
var ErrShapeMismatch = tensor.ErrShapeMismatch
