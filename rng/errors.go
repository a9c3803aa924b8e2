// SPDX-License-Identifier: MIT

package rng

import "errors"

// ErrInvalidArgument is returned when a size argument is negative or when a
// sample without replacement asks for more items than the population holds.
var ErrInvalidArgument = errors.New("rng: invalid argument")
