// SPDX-License-Identifier: MIT

package pattern_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grinder/mask"
	"github.com/katalvlaran/grinder/tensor"
)

// seqData returns a tensor holding 0,1,2,... in row-major order.
func seqData(t testing.TB, shape ...int) *tensor.Dense {
	t.Helper()
	d, err := tensor.New(shape...)
	require.NoError(t, err)
	for i := range d.Raw() {
		d.Raw()[i] = float64(i)
	}
	return d
}

// withNaN sets the listed flat offsets to NaN on a copy of d.
func withNaN(t testing.TB, d *tensor.Dense, offs ...int) *tensor.Dense {
	t.Helper()
	c := d.Clone()
	for _, o := range offs {
		c.Raw()[o] = math.NaN()
	}
	return c
}

// assertDisjoint fails when a and b share a true position.
func assertDisjoint(t *testing.T, a, b *mask.Mask) {
	t.Helper()
	for i := range a.Raw() {
		require.False(t, a.Raw()[i] && b.Raw()[i], "offset %d marked in both", i)
	}
}
