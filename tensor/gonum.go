// SPDX-License-Identifier: MIT

package tensor

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// FromMat copies a gonum matrix into a 2D array (rows = steps, cols = features).
//
// Errors:
//   - ErrNilTensor for a nil matrix; ErrBadShape for an empty one.
//
// Complexity: O(r*c).
func FromMat(m mat.Matrix) (*Dense, error) {
	if m == nil {
		return nil, fmt.Errorf("FromMat: %w", ErrNilTensor)
	}
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return nil, fmt.Errorf("FromMat: %dx%d: %w", r, c, ErrBadShape)
	}
	buf := make([]float64, r*c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			buf[i*c+j] = m.At(i, j)
		}
	}
	return &Dense{shape: Shape{r, c}, data: buf}, nil
}

// ToMat copies a 1D or 2D array into a new *mat.Dense. A 1D array becomes a
// single column.
//
// Errors:
//   - ErrShapeMismatch for 3D arrays.
//
// Complexity: O(size).
func (d *Dense) ToMat() (*mat.Dense, error) {
	l := d.Layout()
	if d.Dims() > 2 {
		return nil, fmt.Errorf("ToMat: shape %v: %w", d.shape, ErrShapeMismatch)
	}
	return mat.NewDense(l.Steps, l.Features, d.Values()), nil
}
