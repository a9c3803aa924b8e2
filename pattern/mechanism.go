// SPDX-License-Identifier: MIT

package pattern

import (
	"fmt"
	"strings"
)

// Mechanism enumerates the supported corruption mechanisms. The set is
// closed: every value maps to exactly one generator in the dispatch table.
type Mechanism int

const (
	// PointUniform removes uniformly chosen individual positions.
	PointUniform Mechanism = iota
	// Block removes contiguous runs along the time axis of every series.
	Block
	// SpatialBlock removes contiguous time × feature rectangles.
	SpatialBlock
	// NotAtRandom removes positions with a probability driven by their value.
	NotAtRandom
	// TemporalNotAtRandom removes positions with a probability driven by
	// their time step through a periodic intensity function.
	TemporalNotAtRandom

	numMechanisms
)

// mechanismNames holds the canonical names, indexed by Mechanism.
var mechanismNames = [numMechanisms]string{
	PointUniform:        "point_uniform",
	Block:               "block",
	SpatialBlock:        "spatial_block",
	NotAtRandom:         "not_at_random",
	TemporalNotAtRandom: "temporal_not_at_random",
}

// mechanismAliases lists accepted alternative spellings.
var mechanismAliases = map[string]Mechanism{
	"mcar":     PointUniform,
	"point":    PointUniform,
	"sequence": Block,
	"seq":      Block,
	"spatial":  SpatialBlock,
	"mnar":     NotAtRandom,
	"mnar_x":   NotAtRandom,
	"mnar_t":   TemporalNotAtRandom,
}

// minDims is the least dimensionality each mechanism accepts.
var minDims = [numMechanisms]int{
	PointUniform:        1,
	Block:               1,
	SpatialBlock:        2,
	NotAtRandom:         1,
	TemporalNotAtRandom: 1,
}

// Valid reports whether m is one of the declared mechanisms.
func (m Mechanism) Valid() bool { return m >= 0 && m < numMechanisms }

// String returns the canonical name, or "mechanism(N)" for invalid values.
func (m Mechanism) String() string {
	if !m.Valid() {
		return fmt.Sprintf("mechanism(%d)", int(m))
	}
	return mechanismNames[m]
}

// MinDims returns the least number of dimensions m needs (0 if invalid).
func (m Mechanism) MinDims() int {
	if !m.Valid() {
		return 0
	}
	return minDims[m]
}

// Mechanisms returns all mechanisms in declaration order.
func Mechanisms() []Mechanism {
	out := make([]Mechanism, numMechanisms)
	for i := range out {
		out[i] = Mechanism(i)
	}
	return out
}

// ParseMechanism resolves a canonical name or alias (case-insensitive,
// '-' and ' ' treated as '_').
//
// Errors:
//   - ErrUnknownPattern for anything else.
func ParseMechanism(name string) (Mechanism, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("-", "_", " ", "_").Replace(key)
	for i, n := range mechanismNames {
		if n == key {
			return Mechanism(i), nil
		}
	}
	if m, ok := mechanismAliases[key]; ok {
		return m, nil
	}
	return 0, fmt.Errorf("ParseMechanism(%q): %w", name, ErrUnknownPattern)
}

// MarshalText implements encoding.TextMarshaler.
func (m Mechanism) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%s: %w", m, ErrUnknownPattern)
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via ParseMechanism.
func (m *Mechanism) UnmarshalText(b []byte) error {
	v, err := ParseMechanism(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}
