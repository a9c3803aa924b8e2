// SPDX-License-Identifier: MIT

package dataset_test

import (
	"bytes"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grinder/dataset"
	"github.com/katalvlaran/grinder/mask"
	"github.com/katalvlaran/grinder/tensor"
)

const sample = `a,b,c
1,2,3
4,,6
NA,8.5,nan
-1e3,0,N/A
`

func TestRead_HeaderAndMissing(t *testing.T) {
	tb, err := dataset.Read(strings.NewReader(sample), dataset.WithHeader())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, tb.Header)
	assert.Equal(t, tensor.Shape{4, 3}, tb.Data.Shape())

	raw := tb.Data.Raw()
	assert.Equal(t, 1.0, raw[0])
	assert.True(t, math.IsNaN(raw[4]))
	assert.True(t, math.IsNaN(raw[6]))
	assert.Equal(t, 8.5, raw[7])
	assert.True(t, math.IsNaN(raw[8]))
	assert.Equal(t, -1000.0, raw[9])
	assert.True(t, math.IsNaN(raw[11]))
}

func TestRead_Steps(t *testing.T) {
	in := "1,2\n3,4\n5,6\n7,8\n9,10\n11,12\n"
	tb, err := dataset.Read(strings.NewReader(in), dataset.WithSteps(3))
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 3, 2}, tb.Data.Shape())
	v, err := tb.Data.At(1, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 8.0, v)

	_, err = dataset.Read(strings.NewReader(in), dataset.WithSteps(4))
	assert.ErrorIs(t, err, dataset.ErrBadSteps)
}

func TestRead_Errors(t *testing.T) {
	_, err := dataset.Read(strings.NewReader("1,2\n3\n"))
	assert.ErrorIs(t, err, dataset.ErrRaggedRow)

	_, err = dataset.Read(strings.NewReader("1,x\n"))
	assert.ErrorIs(t, err, dataset.ErrBadCell)
	assert.Contains(t, err.Error(), "line 1 column 2")

	_, err = dataset.Read(strings.NewReader(""))
	assert.ErrorIs(t, err, dataset.ErrEmptyTable)

	_, err = dataset.Read(strings.NewReader("x,y\n"), dataset.WithHeader())
	assert.ErrorIs(t, err, dataset.ErrEmptyTable)

	assert.Panics(t, func() { dataset.WithSteps(0) })
}

func TestWrite_RoundTrip(t *testing.T) {
	d, err := tensor.FromSlice([]float64{0.1, math.NaN(), 3, 1e-9, -2.5, 42}, 3, 2)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, dataset.Write(&buf, d, []string{"x", "y"}))
	assert.Equal(t, "x,y\n0.1,NaN\n3,1e-09\n-2.5,42\n", buf.String())

	back, err := dataset.Read(&buf, dataset.WithHeader())
	require.NoError(t, err)
	assert.True(t, tensor.Identical(d, back.Data))

	err = dataset.Write(&buf, d, []string{"only"})
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)
}

func TestWrite_MissingTokenAndComma(t *testing.T) {
	d, err := tensor.FromSlice([]float64{1, math.NaN()}, 1, 2)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, dataset.Write(&buf, d, nil, dataset.WithMissingToken("?"), dataset.WithComma(';')))
	assert.Equal(t, "1;?\n", buf.String())

	back, err := dataset.Read(&buf, dataset.WithMissingToken("?"), dataset.WithComma(';'))
	require.NoError(t, err)
	assert.True(t, math.IsNaN(back.Data.Raw()[1]))
}

func TestWriteMask(t *testing.T) {
	m, err := mask.FromBools([]bool{true, false, false, true, true, false}, 3, 2)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, dataset.WriteMask(&buf, m, nil))
	assert.Equal(t, "1,0\n0,1\n1,0\n", buf.String())
}

func TestFiles_Compressed(t *testing.T) {
	d, err := tensor.FromSlice([]float64{1, 2, 3, math.NaN(), 5, 6, 7, 8}, 2, 2, 2)
	require.NoError(t, err)
	dir := t.TempDir()
	for _, name := range []string{"plain.csv", "packed.csv.xz", "packed.csv.gz"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, dataset.WriteFile(path, d, []string{"p", "q"}))
			tb, err := dataset.ReadFile(path, dataset.WithHeader(), dataset.WithSteps(2))
			require.NoError(t, err)
			assert.True(t, tensor.Identical(d, tb.Data))
			assert.Equal(t, []string{"p", "q"}, tb.Header)
		})
	}

	m, err := mask.FromSentinel(d, math.NaN())
	require.NoError(t, err)
	require.NoError(t, dataset.WriteMaskFile(filepath.Join(dir, "mask.csv.xz"), m, nil))
	tb, err := dataset.ReadFile(filepath.Join(dir, "mask.csv.xz"))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0, 1, 0, 0, 0, 0}, tb.Data.Raw())

	_, err = dataset.ReadFile(filepath.Join(dir, "missing.csv"))
	assert.Error(t, err)
}
