// SPDX-License-Identifier: MIT
// Package: grinder/pattern
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • stream      = rng.New(seed), seed = 0 ⇒ rng.DefaultSeed
//   • sentinel    = NaN
//   • block len   = [1, 5], width = [1, 3] (clipped to the axis unless set)
//   • attempts    = 100 per block
//   • scope       = global
//   • threshold   = per-feature median, steepness 4, above
//   • intensity   = cycle 20, pos 10, scale 3

package pattern

import (
	"math"

	"github.com/katalvlaran/grinder/mask"
	"github.com/katalvlaran/grinder/rng"
)

// config aggregates all knobs used by generators. Built per call.
type config struct {
	seed     int64
	stream   rng.Stream
	sentinel float64

	minLen, maxLen       int
	minLenSet, maxLenSet bool

	minWidth, maxWidth       int
	minWidthSet, maxWidthSet bool

	maxAttempts int

	scope         Scope
	featureRatios []float64
	features      []int
	reserved      *mask.Mask
	strict        bool

	threshold    float64
	thresholdSet bool
	quantile     float64
	steepness    float64
	below        bool
	exact        bool

	cycle, pos, scale float64
	rawIntensity      bool
}

// newConfig applies options in order (last wins) over the defaults.
// Complexity: O(len(opts)).
func newConfig(opts ...Option) config {
	cfg := config{
		sentinel:    math.NaN(),
		minLen:      DefaultMinBlockLen,
		maxLen:      DefaultMaxBlockLen,
		minWidth:    DefaultMinBlockWidth,
		maxWidth:    DefaultMaxBlockWidth,
		maxAttempts: DefaultMaxAttempts,
		scope:       ScopeGlobal,
		quantile:    DefaultQuantile,
		steepness:   DefaultSteepness,
		cycle:       DefaultCycle,
		pos:         DefaultPos,
		scale:       DefaultScale,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// resolveStream returns the configured stream or a seeded default.
func (c *config) resolveStream() rng.Stream {
	if c.stream != nil {
		return c.stream
	}
	return rng.New(c.seed)
}

// Sentinel reports the effective sentinel after applying opts. The facade
// uses it to extract pre-existing missingness with the same policy.
func Sentinel(opts ...Option) float64 {
	cfg := newConfig(opts...)
	return cfg.sentinel
}
