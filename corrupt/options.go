// SPDX-License-Identifier: MIT

package corrupt

import (
	"github.com/katalvlaran/grinder/mask"
	"github.com/katalvlaran/grinder/pattern"
	"github.com/katalvlaran/grinder/rng"
)

// Option configures a Corrupt call. It is the pattern option type, so both
// packages' constructors can be mixed freely.
type Option = pattern.Option

// WithSeed makes the call reproducible (0 selects rng.DefaultSeed).
func WithSeed(seed int64) Option { return pattern.WithSeed(seed) }

// WithStream draws from a caller-managed stream. Use rng.NewLocked when the
// stream is shared between goroutines.
func WithStream(s rng.Stream) Option { return pattern.WithStream(s) }

// WithSentinel sets the missing marker written into the corrupted copy.
func WithSentinel(v float64) Option { return pattern.WithSentinel(v) }

func WithMinBlockLen(n int) Option   { return pattern.WithMinBlockLen(n) }
func WithMaxBlockLen(n int) Option   { return pattern.WithMaxBlockLen(n) }
func WithBlockLen(n int) Option      { return pattern.WithBlockLen(n) }
func WithMinBlockWidth(n int) Option { return pattern.WithMinBlockWidth(n) }
func WithMaxBlockWidth(n int) Option { return pattern.WithMaxBlockWidth(n) }
func WithMaxAttempts(n int) Option   { return pattern.WithMaxAttempts(n) }

// WithScope selects how the budget is grouped.
func WithScope(s pattern.Scope) Option { return pattern.WithScope(s) }

// WithFeatureRatios sets one target ratio per feature.
func WithFeatureRatios(r []float64) Option { return pattern.WithFeatureRatios(r) }

// WithFeatures limits corruption to the given feature indices.
func WithFeatures(idx ...int) Option { return pattern.WithFeatures(idx...) }

// WithReserved protects the marked positions from new corruption.
func WithReserved(m *mask.Mask) Option { return pattern.WithReserved(m) }

// WithStrict fails with ErrBudgetExceeded instead of returning a shortfall.
func WithStrict() Option { return pattern.WithStrict() }

func WithThreshold(v float64) Option { return pattern.WithThreshold(v) }
func WithQuantile(q float64) Option  { return pattern.WithQuantile(q) }
func WithSteepness(k float64) Option { return pattern.WithSteepness(k) }
func WithBelow() Option              { return pattern.WithBelow() }
func WithExact() Option              { return pattern.WithExact() }

// WithIntensity parameterizes TemporalNotAtRandom.
func WithIntensity(cycle, pos, scale float64) Option {
	return pattern.WithIntensity(cycle, pos, scale)
}

// WithRawIntensity applies the uncalibrated temporal rule.
func WithRawIntensity() Option { return pattern.WithRawIntensity() }
