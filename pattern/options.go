// SPDX-License-Identifier: MIT
// Package: grinder/pattern
//
// options.go - functional options for every generator.
//
// Contract (strict):
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs; values
//     that depend on the data (bounds vs axis length, feature indices vs
//     feature count, ratio vectors) are checked at Generate time and
//     reported as ErrInvalidParameter.
//   • Determinism is explicit: WithSeed or WithStream; otherwise the
//     stream is rng.New(0), i.e. rng.DefaultSeed.
//   • Options irrelevant to a mechanism are ignored by it.

package pattern

import (
	"math"

	"github.com/katalvlaran/grinder/mask"
	"github.com/katalvlaran/grinder/rng"
)

// Option customizes a generator by mutating its config before generation.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*config)

// Scope selects how budgets are grouped for PointUniform, NotAtRandom and
// TemporalNotAtRandom.
type Scope int

const (
	// ScopeGlobal computes one budget over the whole array.
	ScopeGlobal Scope = iota
	// ScopePerFeature computes one budget per feature (all samples and steps).
	ScopePerFeature
	// ScopePerSample computes one budget per sample (all steps and features).
	ScopePerSample
)

// String returns the scope name.
func (s Scope) String() string {
	switch s {
	case ScopeGlobal:
		return "global"
	case ScopePerFeature:
		return "feature"
	case ScopePerSample:
		return "sample"
	default:
		return "unknown"
	}
}

// WithSeed seeds a fresh rng.Source for this call (0 ⇒ rng.DefaultSeed).
// Complexity: O(1).
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
		c.stream = nil
	}
}

// WithStream supplies a caller-managed stream; its state advances across
// calls. Panics on nil.
func WithStream(s rng.Stream) Option {
	if s == nil {
		panic("pattern: WithStream(nil)")
	}
	return func(c *config) { c.stream = s }
}

// WithSentinel sets the value that marks missing cells in the data (NaN is
// always treated as missing as well).
func WithSentinel(v float64) Option {
	return func(c *config) { c.sentinel = v }
}

// WithMinBlockLen sets the shortest block along time. Panics if n < 1.
func WithMinBlockLen(n int) Option {
	if n < 1 {
		panic("pattern: WithMinBlockLen(n<1)")
	}
	return func(c *config) {
		c.minLen = n
		c.minLenSet = true
	}
}

// WithMaxBlockLen sets the longest block along time. Panics if n < 1.
func WithMaxBlockLen(n int) Option {
	if n < 1 {
		panic("pattern: WithMaxBlockLen(n<1)")
	}
	return func(c *config) {
		c.maxLen = n
		c.maxLenSet = true
	}
}

// WithBlockLen fixes the block length: min = max = n. Panics if n < 1.
func WithBlockLen(n int) Option {
	minOpt, maxOpt := WithMinBlockLen(n), WithMaxBlockLen(n)
	return func(c *config) {
		minOpt(c)
		maxOpt(c)
	}
}

// WithMinBlockWidth sets the narrowest spatial block (features). Panics if n < 1.
func WithMinBlockWidth(n int) Option {
	if n < 1 {
		panic("pattern: WithMinBlockWidth(n<1)")
	}
	return func(c *config) {
		c.minWidth = n
		c.minWidthSet = true
	}
}

// WithMaxBlockWidth sets the widest spatial block (features). Panics if n < 1.
func WithMaxBlockWidth(n int) Option {
	if n < 1 {
		panic("pattern: WithMaxBlockWidth(n<1)")
	}
	return func(c *config) {
		c.maxWidth = n
		c.maxWidthSet = true
	}
}

// WithMaxAttempts caps rejected random placements per block. Panics if n < 1.
func WithMaxAttempts(n int) Option {
	if n < 1 {
		panic("pattern: WithMaxAttempts(n<1)")
	}
	return func(c *config) { c.maxAttempts = n }
}

// WithScope selects budget grouping. Panics on an unknown scope.
func WithScope(s Scope) Option {
	if s < ScopeGlobal || s > ScopePerSample {
		panic("pattern: WithScope(unknown)")
	}
	return func(c *config) { c.scope = s }
}

// WithFeatureRatios sets one ratio per feature and implies ScopePerFeature.
// Length and range are validated at generation time.
func WithFeatureRatios(r []float64) Option {
	cp := append([]float64(nil), r...)
	return func(c *config) {
		c.featureRatios = cp
		c.scope = ScopePerFeature
	}
}

// WithFeatures restricts corruption to the listed feature indices.
// Panics on a negative index; indices beyond the feature count are
// reported at generation time.
func WithFeatures(idx ...int) Option {
	for _, i := range idx {
		if i < 0 {
			panic("pattern: WithFeatures(negative index)")
		}
	}
	cp := append([]int(nil), idx...)
	return func(c *config) { c.features = cp }
}

// WithReserved protects positions from new corruption (e.g. an evaluation
// hold-out). Panics on nil.
func WithReserved(m *mask.Mask) Option {
	if m == nil {
		panic("pattern: WithReserved(nil)")
	}
	return func(c *config) { c.reserved = m }
}

// WithStrict turns a shortfall against the budget into ErrBudgetExceeded
// instead of a best-effort result.
func WithStrict() Option {
	return func(c *config) { c.strict = true }
}

// WithThreshold sets an explicit value threshold for NotAtRandom, replacing
// the per-feature quantile. Panics on a non-finite value.
func WithThreshold(v float64) Option {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		panic("pattern: WithThreshold(non-finite)")
	}
	return func(c *config) {
		c.threshold = v
		c.thresholdSet = true
	}
}

// WithQuantile sets the per-feature quantile used as NotAtRandom threshold.
// Panics if q is outside [0,1].
func WithQuantile(q float64) Option {
	if !(q >= 0 && q <= 1) {
		panic("pattern: WithQuantile(q not in [0,1])")
	}
	return func(c *config) {
		c.quantile = q
		c.thresholdSet = false
	}
}

// WithSteepness sets the logistic slope. Panics unless finite and > 0.
func WithSteepness(k float64) Option {
	if !(k > 0) || math.IsInf(k, 0) {
		panic("pattern: WithSteepness(k<=0 or non-finite)")
	}
	return func(c *config) { c.steepness = k }
}

// WithBelow makes NotAtRandom favour values BELOW the threshold.
func WithBelow() Option {
	return func(c *config) { c.below = true }
}

// WithExact replaces independent Bernoulli trials with weighted sampling
// without replacement, so exactly the budget is removed.
func WithExact() Option {
	return func(c *config) { c.exact = true }
}

// WithIntensity sets the temporal intensity parameters. Panics unless all
// are finite and scale > 0.
func WithIntensity(cycle, pos, scale float64) Option {
	for _, v := range []float64{cycle, pos, scale} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			panic("pattern: WithIntensity(non-finite)")
		}
	}
	if scale <= 0 {
		panic("pattern: WithIntensity(scale<=0)")
	}
	return func(c *config) {
		c.cycle, c.pos, c.scale = cycle, pos, scale
	}
}

// WithRawIntensity applies the temporal rule verbatim (keep a value when
// u·scale < f(t)) and ignores the ratio.
func WithRawIntensity() Option {
	return func(c *config) { c.rawIntensity = true }
}
