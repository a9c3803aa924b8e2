// SPDX-License-Identifier: MIT

package pattern_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grinder/mask"
	"github.com/katalvlaran/grinder/pattern"
)

// TestBlock_FixedLength: T=20, length 3, ratio 0.5 ⇒ runs of 3,3,3 and a
// final run truncated to 1, ten cells total.
func TestBlock_FixedLength(t *testing.T) {
	d := seqData(t, 20)
	out, err := pattern.Generate(pattern.Block, d, nil, 0.5, pattern.WithBlockLen(3), pattern.WithSeed(5))
	require.NoError(t, err)
	assert.Equal(t, 10, out.Placed)
	require.Len(t, out.Regions, 4)

	var lengths []int
	covered := make([]bool, 20)
	for _, r := range out.Regions {
		lengths = append(lengths, r.Length)
		assert.Equal(t, 1, r.Width)
		for s := r.Step; s < r.Step+r.Length; s++ {
			require.False(t, covered[s], "regions overlap at %d", s)
			covered[s] = true
		}
	}
	assert.Equal(t, []int{3, 3, 3, 1}, lengths)
	assert.Equal(t, covered, out.Mask.Bits())
}

// TestBlock_PerSeriesBudget: every (sample, feature) series gets its own budget.
func TestBlock_PerSeriesBudget(t *testing.T) {
	d := seqData(t, 2, 10, 3)
	out, err := pattern.Generate(pattern.Block, d, nil, 0.3,
		pattern.WithMinBlockLen(1), pattern.WithMaxBlockLen(3), pattern.WithSeed(8))
	require.NoError(t, err)
	assert.Equal(t, 18, out.Requested)
	assert.Equal(t, 18, out.Placed)

	l := d.Layout()
	raw := out.Mask.Raw()
	for n := 0; n < l.Samples; n++ {
		for f := 0; f < l.Features; f++ {
			c := 0
			for s := 0; s < l.Steps; s++ {
				if raw[l.Offset(n, s, f)] {
					c++
				}
			}
			assert.Equal(t, 3, c, "series (%d,%d)", n, f)
		}
	}
	for _, r := range out.Regions {
		assert.LessOrEqual(t, r.Length, 3)
		assert.GreaterOrEqual(t, r.Length, 1)
	}
}

// TestBlock_AvoidsExisting never re-marks missing cells.
func TestBlock_AvoidsExisting(t *testing.T) {
	d := withNaN(t, seqData(t, 30), 4, 5, 17, 29)
	existing, err := mask.FromSentinel(d, pattern.Sentinel())
	require.NoError(t, err)
	out, err := pattern.Generate(pattern.Block, d, nil, 0.4, pattern.WithSeed(2))
	require.NoError(t, err)
	assert.Equal(t, 8, out.Placed)
	assertDisjoint(t, out.Mask, existing)
}

// TestBlock_Shortfall: free runs of at most 2 cannot host a fixed length of 3.
func TestBlock_Shortfall(t *testing.T) {
	d := withNaN(t, seqData(t, 10), 2, 5, 8)

	out, err := pattern.Generate(pattern.Block, d, nil, 0.6, pattern.WithBlockLen(3))
	require.NoError(t, err)
	assert.Equal(t, 3, out.Requested)
	assert.Zero(t, out.Placed)
	assert.Equal(t, 3, out.Shortfall())

	_, err = pattern.Generate(pattern.Block, d, nil, 0.6, pattern.WithBlockLen(3), pattern.WithStrict())
	assert.ErrorIs(t, err, pattern.ErrBudgetExceeded)
}

// TestBlock_Bounds validates explicit bounds and clips defaults.
func TestBlock_Bounds(t *testing.T) {
	d := seqData(t, 20)
	_, err := pattern.Generate(pattern.Block, d, nil, 0.2, pattern.WithMaxBlockLen(30))
	assert.ErrorIs(t, err, pattern.ErrInvalidParameter)

	_, err = pattern.Generate(pattern.Block, d, nil, 0.2, pattern.WithMinBlockLen(5), pattern.WithMaxBlockLen(2))
	assert.ErrorIs(t, err, pattern.ErrInvalidParameter)

	short := seqData(t, 3)
	out, err := pattern.Generate(pattern.Block, short, nil, 0.5)
	require.NoError(t, err)
	assert.Equal(t, 2, out.Placed)

	lo, hi, err := pattern.ExportedResolveBounds("Block", "length", 4, 5, true, false, 3)
	assert.ErrorIs(t, err, pattern.ErrInvalidParameter)
	assert.Zero(t, lo+hi)
	lo, hi, err = pattern.ExportedResolveBounds("Block", "length", 2, 5, true, false, 3)
	require.NoError(t, err)
	assert.Equal(t, [2]int{2, 3}, [2]int{lo, hi})
}

// TestBlock_Deterministic: identical seeds place identical runs.
func TestBlock_Deterministic(t *testing.T) {
	d := seqData(t, 50, 2)
	a, err := pattern.Generate(pattern.Block, d, nil, 0.3, pattern.WithSeed(77))
	require.NoError(t, err)
	b, err := pattern.Generate(pattern.Block, d, nil, 0.3, pattern.WithSeed(77))
	require.NoError(t, err)
	assert.Equal(t, a.Regions, b.Regions)
	assert.True(t, a.Mask.Equal(b.Mask))
}

// TestBlock_FeatureSubset: series outside WithFeatures carry no budget, so
// neither the best-effort nor the strict path reports a shortfall.
func TestBlock_FeatureSubset(t *testing.T) {
	d := seqData(t, 20, 3)
	out, err := pattern.Generate(pattern.Block, d, nil, 0.3,
		pattern.WithBlockLen(2), pattern.WithFeatures(1), pattern.WithSeed(3))
	require.NoError(t, err)
	assert.Equal(t, 6, out.Requested)
	assert.Equal(t, 6, out.Placed)
	assert.Zero(t, out.Shortfall())
	for _, r := range out.Regions {
		assert.Equal(t, 1, r.Feature)
	}

	perFeature, err := mask.CountAxis(out.Mask, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 6, 0}, perFeature)

	strict, err := pattern.Generate(pattern.Block, d, nil, 0.3,
		pattern.WithBlockLen(2), pattern.WithFeatures(1), pattern.WithSeed(3), pattern.WithStrict())
	require.NoError(t, err)
	assert.True(t, out.Mask.Equal(strict.Mask))
}
