// SPDX-License-Identifier: MIT

package synth

import "errors"

var (
	// ErrUnknownKind is returned for a Kind outside Pulse, Chirp and OHLC.
	ErrUnknownKind = errors.New("synth: unknown kind")

	// ErrInvalidSize indicates samples, steps or features below one.
	ErrInvalidSize = errors.New("synth: invalid size")
)
