// SPDX-License-Identifier: MIT

package pattern

//-----------------------------------------------------------------------------
// Method names used to prefix errors.
//-----------------------------------------------------------------------------

const (
	methodGenerate            = "Generate"
	methodPointUniform        = "PointUniform"
	methodBlock               = "Block"
	methodSpatialBlock        = "SpatialBlock"
	methodNotAtRandom         = "NotAtRandom"
	methodTemporalNotAtRandom = "TemporalNotAtRandom"
)

//-----------------------------------------------------------------------------
// Ratio domain
//-----------------------------------------------------------------------------

// MinRatio is the inclusive lower bound of a corruption ratio.
const MinRatio = 0.0

// MaxRatio is the exclusive upper bound of a corruption ratio.
const MaxRatio = 1.0

//-----------------------------------------------------------------------------
// Defaults
//-----------------------------------------------------------------------------

const (
	// DefaultMinBlockLen is the shortest block drawn along the time axis.
	DefaultMinBlockLen = 1
	// DefaultMaxBlockLen is the longest block drawn along the time axis,
	// clipped to the series length when not set explicitly.
	DefaultMaxBlockLen = 5
	// DefaultMinBlockWidth is the narrowest spatial block (features).
	DefaultMinBlockWidth = 1
	// DefaultMaxBlockWidth is the widest spatial block, clipped to the
	// feature count when not set explicitly.
	DefaultMaxBlockWidth = 3
	// DefaultMaxAttempts caps rejected placement draws per block before the
	// exhaustive fallback runs.
	DefaultMaxAttempts = 100

	// DefaultQuantile selects the per-feature median as the not-at-random threshold.
	DefaultQuantile = 0.5
	// DefaultSteepness is the logistic slope applied to standardized values.
	DefaultSteepness = 4.0

	// DefaultCycle, DefaultPos and DefaultScale parameterize the temporal
	// intensity f(t) = exp(3·sin(cycle·t + pos)) and its scale.
	DefaultCycle = 20.0
	DefaultPos   = 10.0
	DefaultScale = 3.0

	// intensityAmplitude is the constant 3 in exp(3·sin(...)).
	intensityAmplitude = 3.0
)

// Calibration (bisection over the probability scale factor).
const (
	calibrationIterations = 100
	calibrationTolerance  = 1e-9
	calibrationMaxDoubles = 2048
)
