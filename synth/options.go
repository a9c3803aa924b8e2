// SPDX-License-Identifier: MIT

package synth

import "math"

// Option customizes a generator. Constructors panic on values no series
// could honour, so misuse surfaces at the call site.
type Option func(*config)

// Defaults shared by every kind.
const (
	defAmp      = 1.0
	defSigma    = 0.0
	defTrend    = 0.0
	defFeatures = 1

	defPulseFreq = 0.125 // cycles per step, period 8
	defDuty      = 0.5

	defChirpF0 = 0.02
	defChirpF1 = 0.25

	defOHLCStart = 100.0
	defOHLCMu    = 0.0005
	defOHLCVol   = 0.02
	defOHLCTicks = 8 // intraday ticks per candle
)

type config struct {
	amp        float64
	sigma      float64
	trend      float64
	features   int
	freq       float64
	duty       float64
	triangular bool
	f0, f1     float64
	start      float64
	mu         float64
	vol        float64
	ticks      int
}

func newConfig(opts ...Option) config {
	cfg := config{
		amp:      defAmp,
		sigma:    defSigma,
		trend:    defTrend,
		features: defFeatures,
		freq:     defPulseFreq,
		duty:     defDuty,
		f0:       defChirpF0,
		f1:       defChirpF1,
		start:    defOHLCStart,
		mu:       defOHLCMu,
		vol:      defOHLCVol,
		ticks:    defOHLCTicks,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

// WithAmplitude scales Pulse and Chirp. Panics unless a > 0 and finite.
func WithAmplitude(a float64) Option {
	if !finite(a) || a <= 0 {
		panic("synth: WithAmplitude(a<=0)")
	}
	return func(c *config) { c.amp = a }
}

// WithNoise adds Gaussian noise with the given standard deviation to Pulse
// and Chirp. Panics if sigma is negative or not finite.
func WithNoise(sigma float64) Option {
	if !finite(sigma) || sigma < 0 {
		panic("synth: WithNoise(sigma<0)")
	}
	return func(c *config) { c.sigma = sigma }
}

// WithTrend adds slope*step to Pulse and Chirp values.
func WithTrend(slope float64) Option {
	if !finite(slope) {
		panic("synth: WithTrend(non-finite)")
	}
	return func(c *config) { c.trend = slope }
}

// WithFeatures sets the number of columns for Pulse and Chirp; column f is
// phase shifted by f/features of a period. OHLC always has four columns.
func WithFeatures(n int) Option {
	if n < 1 {
		panic("synth: WithFeatures(n<1)")
	}
	return func(c *config) { c.features = n }
}

// WithPulse sets the pulse frequency in cycles per step and the duty cycle.
func WithPulse(freq, duty float64) Option {
	if !finite(freq) || freq <= 0 {
		panic("synth: WithPulse(freq<=0)")
	}
	if !finite(duty) || duty < 0 || duty > 1 {
		panic("synth: WithPulse(duty outside [0,1])")
	}
	return func(c *config) {
		c.freq = freq
		c.duty = duty
	}
}

// WithTriangular switches Pulse to a triangular wave; duty is ignored.
func WithTriangular() Option {
	return func(c *config) { c.triangular = true }
}

// WithSweep sets the Chirp start and end frequency in cycles per step.
func WithSweep(f0, f1 float64) Option {
	if !finite(f0) || !finite(f1) || f0 <= 0 || f1 <= 0 {
		panic("synth: WithSweep(f<=0)")
	}
	return func(c *config) {
		c.f0 = f0
		c.f1 = f1
	}
}

// WithMarket sets the OHLC opening price, per-candle drift and volatility.
func WithMarket(start, mu, vol float64) Option {
	if !finite(start) || start <= 0 {
		panic("synth: WithMarket(start<=0)")
	}
	if !finite(mu) || !finite(vol) || vol < 0 {
		panic("synth: WithMarket(vol<0)")
	}
	return func(c *config) {
		c.start = start
		c.mu = mu
		c.vol = vol
	}
}
