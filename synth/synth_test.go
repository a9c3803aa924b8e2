package synth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grinder/corrupt"
	"github.com/katalvlaran/grinder/synth"
)

// TestGenerate_Shapes checks dimensions and headers for every kind.
func TestGenerate_Shapes(t *testing.T) {
	cases := []struct {
		kind   synth.Kind
		opts   []synth.Option
		header []string
	}{
		{synth.Pulse, []synth.Option{synth.WithFeatures(2)}, []string{"pulse_0", "pulse_1"}},
		{synth.Chirp, nil, []string{"chirp_0"}},
		{synth.OHLC, []synth.Option{synth.WithFeatures(9)}, []string{"open", "high", "low", "close"}},
	}
	for _, tc := range cases {
		t.Run(tc.kind.String(), func(t *testing.T) {
			x, header, err := synth.Generate(tc.kind, 3, 16, 5, tc.opts...)
			require.NoError(t, err)
			assert.Equal(t, []int{3, 16, len(tc.header)}, []int(x.Shape()))
			assert.Equal(t, tc.header, header)
		})
	}
}

// TestGenerate_Deterministic verifies seed reproducibility and sample
// independence from the total sample count.
func TestGenerate_Deterministic(t *testing.T) {
	opts := []synth.Option{synth.WithNoise(0.3), synth.WithFeatures(2)}
	a, _, err := synth.Generate(synth.Chirp, 2, 32, 11, opts...)
	require.NoError(t, err)
	b, _, err := synth.Generate(synth.Chirp, 3, 32, 11, opts...)
	require.NoError(t, err)

	assert.Equal(t, a.Raw(), b.Raw()[:a.Len()], "earlier samples must not depend on later ones")

	c, _, err := synth.Generate(synth.Chirp, 2, 32, 12, opts...)
	require.NoError(t, err)
	assert.NotEqual(t, a.Raw(), c.Raw())
}

// TestGenerate_PulseRectangular pins the noiseless default wave: period 8,
// half duty, and the second column shifted by half a period.
func TestGenerate_PulseRectangular(t *testing.T) {
	x, _, err := synth.Generate(synth.Pulse, 1, 8, 1, synth.WithFeatures(2), synth.WithAmplitude(2))
	require.NoError(t, err)

	for step, want := range []float64{2, 2, 2, 2, 0, 0, 0, 0} {
		v, err := x.At(0, step, 0)
		require.NoError(t, err)
		assert.Equal(t, want, v, "column 0 step %d", step)

		v, err = x.At(0, step, 1)
		require.NoError(t, err)
		assert.Equal(t, 2-want, v, "column 1 step %d", step)
	}
}

// TestGenerate_PulseTriangularTrend checks the triangular envelope bounds
// once the linear trend is removed.
func TestGenerate_PulseTriangularTrend(t *testing.T) {
	const slope = 0.5
	x, _, err := synth.Generate(synth.Pulse, 1, 24, 1, synth.WithTriangular(), synth.WithTrend(slope))
	require.NoError(t, err)
	for step := 0; step < 24; step++ {
		v, err := x.At(0, step, 0)
		require.NoError(t, err)
		base := v - slope*float64(step)
		assert.GreaterOrEqual(t, base, -1e-12)
		assert.LessOrEqual(t, base, 1+1e-12)
	}
}

// TestGenerate_ChirpBounded verifies |y| <= amp without noise.
func TestGenerate_ChirpBounded(t *testing.T) {
	x, _, err := synth.Generate(synth.Chirp, 2, 64, 3, synth.WithAmplitude(3), synth.WithSweep(0.01, 0.4))
	require.NoError(t, err)
	for _, v := range x.Raw() {
		assert.LessOrEqual(t, v, 3.0+1e-12)
		assert.GreaterOrEqual(t, v, -3.0-1e-12)
	}
}

// TestGenerate_OHLCInvariant checks candle ordering and price positivity.
func TestGenerate_OHLCInvariant(t *testing.T) {
	x, _, err := synth.Generate(synth.OHLC, 2, 50, 9, synth.WithMarket(50, 0.001, 0.05))
	require.NoError(t, err)
	l := x.Layout()
	raw := x.Raw()
	for n := 0; n < l.Samples; n++ {
		for s := 0; s < l.Steps; s++ {
			o, h := raw[l.Offset(n, s, 0)], raw[l.Offset(n, s, 1)]
			lo, c := raw[l.Offset(n, s, 2)], raw[l.Offset(n, s, 3)]
			assert.Greater(t, lo, 0.0)
			assert.LessOrEqual(t, lo, min(o, c))
			assert.GreaterOrEqual(t, h, max(o, c))
			if s > 0 {
				assert.Equal(t, raw[l.Offset(n, s-1, 3)], o, "open continues the previous close")
			}
		}
	}
}

// TestGenerate_Errors covers the sentinel errors.
func TestGenerate_Errors(t *testing.T) {
	_, _, err := synth.Generate(synth.Pulse, 0, 4, 1)
	assert.ErrorIs(t, err, synth.ErrInvalidSize)
	_, _, err = synth.Generate(synth.Pulse, 1, 0, 1)
	assert.ErrorIs(t, err, synth.ErrInvalidSize)
	_, _, err = synth.Generate(synth.Kind(7), 1, 4, 1)
	assert.ErrorIs(t, err, synth.ErrUnknownKind)
}

// TestParseKind covers names, case folding and unknown input.
func TestParseKind(t *testing.T) {
	for _, k := range []synth.Kind{synth.Pulse, synth.Chirp, synth.OHLC} {
		got, err := synth.ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	got, err := synth.ParseKind(" OHLC ")
	require.NoError(t, err)
	assert.Equal(t, synth.OHLC, got)

	_, err = synth.ParseKind("sawtooth")
	assert.ErrorIs(t, err, synth.ErrUnknownKind)
	assert.Equal(t, "Kind(9)", synth.Kind(9).String())
}

// TestOptions_Panics lists option values no generator could honour.
func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { synth.WithAmplitude(0) })
	assert.Panics(t, func() { synth.WithNoise(-1) })
	assert.Panics(t, func() { synth.WithFeatures(0) })
	assert.Panics(t, func() { synth.WithPulse(0.1, 1.5) })
	assert.Panics(t, func() { synth.WithPulse(0, 0.5) })
	assert.Panics(t, func() { synth.WithSweep(0, 0.2) })
	assert.Panics(t, func() { synth.WithMarket(-1, 0, 0.1) })
	assert.Panics(t, func() { synth.WithMarket(1, 0, -0.1) })
}

// TestGenerate_FeedsCorrupt runs a generated series through block removal.
func TestGenerate_FeedsCorrupt(t *testing.T) {
	x, _, err := synth.Generate(synth.Pulse, 2, 40, 4, synth.WithFeatures(3), synth.WithNoise(0.1))
	require.NoError(t, err)

	res, err := corrupt.Block(x, 0.25, corrupt.WithSeed(4))
	require.NoError(t, err)
	assert.Equal(t, 60, res.Requested)
	assert.Positive(t, res.Achieved)
	assert.Equal(t, res.Achieved, res.Mask.Count())
}
