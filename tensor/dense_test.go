package tensor_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/grinder/tensor"
)

// TestShape_Validate covers the shape contract table.
func TestShape_Validate(t *testing.T) {
	tests := []struct {
		name  string
		shape tensor.Shape
		ok    bool
	}{
		{"1D", tensor.Shape{5}, true},
		{"2D", tensor.Shape{5, 3}, true},
		{"3D", tensor.Shape{2, 5, 3}, true},
		{"empty", tensor.Shape{}, false},
		{"4D", tensor.Shape{1, 2, 3, 4}, false},
		{"zero dim", tensor.Shape{3, 0}, false},
		{"negative dim", tensor.Shape{-1}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.shape.Validate()
			if tc.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tensor.ErrBadShape)
		})
	}
}

// TestShape_Layout checks the (samples, steps, features) mapping.
func TestShape_Layout(t *testing.T) {
	assert.Equal(t, tensor.Layout{Samples: 1, Steps: 7, Features: 1}, tensor.Shape{7}.Layout())
	assert.Equal(t, tensor.Layout{Samples: 1, Steps: 7, Features: 3}, tensor.Shape{7, 3}.Layout())
	assert.Equal(t, tensor.Layout{Samples: 2, Steps: 7, Features: 3}, tensor.Shape{2, 7, 3}.Layout())
	assert.Equal(t, "2×7×3", tensor.Shape{2, 7, 3}.String())
	assert.Equal(t, 42, tensor.Shape{2, 7, 3}.Size())
}

// TestFromSlice_CopiesAndValidates ensures caller data is not aliased.
func TestFromSlice_CopiesAndValidates(t *testing.T) {
	src := []float64{1, 2, 3, 4, 5, 6}
	d, err := tensor.FromSlice(src, 2, 3)
	require.NoError(t, err)
	src[0] = 99
	v, err := d.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v, "FromSlice must copy")

	_, err = tensor.FromSlice(src, 4, 2)
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)
	_, err = tensor.FromSlice(src)
	assert.ErrorIs(t, err, tensor.ErrBadShape)
}

// TestDense_AtSetBounds covers accessor bounds.
func TestDense_AtSetBounds(t *testing.T) {
	d, err := tensor.New(2, 3, 4)
	require.NoError(t, err)
	require.NoError(t, d.Set(7.5, 1, 2, 3))
	v, err := d.At(1, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, 7.5, v)
	assert.Equal(t, 7.5, d.Raw()[d.Layout().Offset(1, 2, 3)], "row-major offset")

	_, err = d.At(2, 0, 0)
	assert.ErrorIs(t, err, tensor.ErrOutOfRange)
	_, err = d.At(0, 0)
	assert.ErrorIs(t, err, tensor.ErrOutOfRange)
	assert.ErrorIs(t, d.Set(1, 0, -1, 0), tensor.ErrOutOfRange)
}

// TestFrom2D_From3D checks nested constructors and ragged detection.
func TestFrom2D_From3D(t *testing.T) {
	d, err := tensor.From2D([][]float64{{1, 2}, {3, 4}, {5, 6}})
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{3, 2}, d.Shape())

	_, err = tensor.From2D([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, tensor.ErrRagged)
	_, err = tensor.From2D(nil)
	assert.ErrorIs(t, err, tensor.ErrBadShape)

	d3, err := tensor.From3D([][][]float64{{{1}, {2}}, {{3}, {4}}})
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 2, 1}, d3.Shape())
	assert.Equal(t, []float64{1, 2, 3, 4}, d3.Values())

	_, err = tensor.From3D([][][]float64{{{1}, {2}}, {{3}}})
	assert.ErrorIs(t, err, tensor.ErrRagged)
}

// TestClone_IndependentAndIdentical checks deep copy and bitwise equality.
func TestClone_IndependentAndIdentical(t *testing.T) {
	d, err := tensor.FromSlice([]float64{1, math.NaN(), 3}, 3)
	require.NoError(t, err)
	c := d.Clone()
	assert.True(t, tensor.Identical(d, c), "NaN payloads compare bitwise")

	require.NoError(t, c.Set(5, 0))
	assert.False(t, tensor.Identical(d, c))
	v, _ := d.At(0)
	assert.Equal(t, 1.0, v, "original untouched")
}

// TestObservedStats skips missing values and guards degenerate spread.
func TestObservedStats(t *testing.T) {
	nan := math.NaN()
	d, err := tensor.From2D([][]float64{
		{1, 5},
		{nan, 5},
		{3, nan},
	})
	require.NoError(t, err)

	st := d.ObservedStats(nan)
	require.Len(t, st, 2)
	assert.Equal(t, 2, st[0].Count)
	assert.InDelta(t, 2.0, st[0].Mean, 1e-12)
	assert.InDelta(t, math.Sqrt2, st[0].Std, 1e-12)
	assert.Equal(t, 2, st[1].Count)
	assert.Equal(t, 1.0, st[1].Std, "zero spread reported as 1")

	// A numeric sentinel is treated as missing too.
	st = d.ObservedStats(5)
	assert.Equal(t, 0, st[1].Count)
	assert.True(t, math.IsNaN(st[1].Mean))
}

// TestObservedQuantiles checks the empirical quantile per feature.
func TestObservedQuantiles(t *testing.T) {
	d, err := tensor.From2D([][]float64{{4}, {1}, {3}, {2}, {math.NaN()}})
	require.NoError(t, err)
	q := d.ObservedQuantiles(0.5, math.NaN())
	assert.Equal(t, []float64{2}, q)
	q = d.ObservedQuantiles(1, math.NaN())
	assert.Equal(t, []float64{4}, q)
}

// TestGonumAdapters round-trips through mat.Dense.
func TestGonumAdapters(t *testing.T) {
	m := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	d, err := tensor.FromMat(m)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 3}, d.Shape())

	back, err := d.ToMat()
	require.NoError(t, err)
	assert.True(t, mat.Equal(m, back))

	d3, _ := tensor.New(1, 2, 2)
	_, err = d3.ToMat()
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)

	_, err = tensor.FromMat(nil)
	assert.ErrorIs(t, err, tensor.ErrNilTensor)
}
