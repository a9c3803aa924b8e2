// SPDX-License-Identifier: MIT

package corrupt

import "github.com/katalvlaran/grinder/pattern"

// Sentinel errors, shared with package pattern so errors.Is works on either.
var (
	// ErrInvalidParameter reports a ratio or option value outside its domain.
	ErrInvalidParameter = pattern.ErrInvalidParameter
	// ErrShapeMismatch reports data whose shape the mechanism cannot handle.
	ErrShapeMismatch = pattern.ErrShapeMismatch
	// ErrUnknownPattern reports an unrecognized mechanism.
	ErrUnknownPattern = pattern.ErrUnknownPattern
	// ErrBudgetExceeded reports a strict-mode shortfall.
	ErrBudgetExceeded = pattern.ErrBudgetExceeded
)
