// SPDX-License-Identifier: MIT

package synth

import (
	"fmt"
	"strings"
)

// Kind selects a series generator.
type Kind int

const (
	// Pulse is a periodic rectangular (or triangular) wave.
	Pulse Kind = iota
	// Chirp is a linear frequency sweep.
	Chirp
	// OHLC is a candle series with four fixed columns.
	OHLC
)

var kindNames = [...]string{
	Pulse: "pulse",
	Chirp: "chirp",
	OHLC:  "ohlc",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind maps a case-insensitive name onto a Kind.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("ParseKind: %q: %w", s, ErrUnknownKind)
}
