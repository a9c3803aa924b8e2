// SPDX-License-Identifier: MIT

// Package tensor - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a flat row-major buffer for 1D–3D arrays with the offset
//     formula ((n*T)+t)*F + f.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Copy on construction and Clone so callers' data is never aliased.
//
// Complexity quicksheet:
//   - New/FromSlice: O(size); At/Set: O(dims); Clone: O(size).

package tensor

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt        = "At"
	ctxSet       = "Set"
	ctxNew       = "New"
	ctxFromSlice = "FromSlice"
	ctxFrom2D    = "From2D"
	ctxFrom3D    = "From3D"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, idx []int, err error) error {
	return fmt.Errorf("Dense.%s(%v): %w", method, idx, err)
}

// Dense is a concrete row-major N-d array (1 ≤ N ≤ MaxDims).
//   - shape holds the extents, outermost first.
//   - data is a flat buffer of length shape.Size().
type Dense struct {
	shape Shape
	data  []float64
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// New creates a zero-filled array of the given shape.
//
// Errors:
//   - ErrBadShape (shape contract violation).
//
// Complexity: O(size) time and memory.
func New(shape ...int) (*Dense, error) {
	s := Shape(shape).Clone()
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxNew, err)
	}

	return &Dense{shape: s, data: make([]float64, s.Size())}, nil
}

// FromSlice copies data into a new array of the given shape.
//
// Errors:
//   - ErrBadShape for an invalid shape.
//   - ErrShapeMismatch when len(data) != product(shape).
//
// Complexity: O(size).
func FromSlice(data []float64, shape ...int) (*Dense, error) {
	s := Shape(shape).Clone()
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxFromSlice, err)
	}
	if len(data) != s.Size() {
		return nil, fmt.Errorf("%s: len=%d, shape %v needs %d: %w",
			ctxFromSlice, len(data), s, s.Size(), ErrShapeMismatch)
	}
	buf := make([]float64, len(data))
	copy(buf, data)

	return &Dense{shape: s, data: buf}, nil
}

// From2D copies a rectangular [][]float64 (rows = steps, cols = features).
//
// Errors:
//   - ErrBadShape for zero rows or columns; ErrRagged for unequal rows.
//
// Complexity: O(r*c).
func From2D(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%s: empty input: %w", ctxFrom2D, ErrBadShape)
	}
	r, c := len(rows), len(rows[0])
	buf := make([]float64, 0, r*c)
	var i int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("%s: row %d has %d cols, want %d: %w",
				ctxFrom2D, i, len(rows[i]), c, ErrRagged)
		}
		buf = append(buf, rows[i]...)
	}

	return &Dense{shape: Shape{r, c}, data: buf}, nil
}

// From3D copies a [samples][steps][features] nested slice.
//
// Errors:
//   - ErrBadShape for empty input; ErrRagged for unequal inner lengths.
//
// Complexity: O(n*t*f).
func From3D(x [][][]float64) (*Dense, error) {
	if len(x) == 0 || len(x[0]) == 0 || len(x[0][0]) == 0 {
		return nil, fmt.Errorf("%s: empty input: %w", ctxFrom3D, ErrBadShape)
	}
	n, t, f := len(x), len(x[0]), len(x[0][0])
	buf := make([]float64, 0, n*t*f)
	var i, j int
	for i = 0; i < n; i++ {
		if len(x[i]) != t {
			return nil, fmt.Errorf("%s: sample %d has %d steps, want %d: %w",
				ctxFrom3D, i, len(x[i]), t, ErrRagged)
		}
		for j = 0; j < t; j++ {
			if len(x[i][j]) != f {
				return nil, fmt.Errorf("%s: sample %d step %d has %d features, want %d: %w",
					ctxFrom3D, i, j, len(x[i][j]), f, ErrRagged)
			}
			buf = append(buf, x[i][j]...)
		}
	}

	return &Dense{shape: Shape{n, t, f}, data: buf}, nil
}

// Shape returns a copy of the array's shape.
func (d *Dense) Shape() Shape { return d.shape.Clone() }

// Layout returns the (samples, steps, features) interpretation of the shape.
func (d *Dense) Layout() Layout { return d.shape.Layout() }

// Dims returns the number of dimensions.
func (d *Dense) Dims() int { return len(d.shape) }

// Len returns the number of cells.
func (d *Dense) Len() int { return len(d.data) }

// Raw returns the backing buffer in row-major order. The slice is shared:
// writes through it modify d. grinder only writes into arrays it allocated.
func (d *Dense) Raw() []float64 { return d.data }

// Values returns a copy of the backing buffer.
func (d *Dense) Values() []float64 {
	out := make([]float64, len(d.data))
	copy(out, d.data)
	return out
}

// offset validates idx against the shape and returns the flat offset.
func (d *Dense) offset(idx []int) (int, error) {
	if len(idx) != len(d.shape) {
		return 0, ErrOutOfRange
	}
	off := 0
	for k, i := range idx {
		if i < 0 || i >= d.shape[k] {
			return 0, ErrOutOfRange
		}
		off = off*d.shape[k] + i
	}
	return off, nil
}

// At returns the value at idx (one index per dimension) or ErrOutOfRange.
// Complexity: O(dims).
func (d *Dense) At(idx ...int) (float64, error) {
	off, err := d.offset(idx)
	if err != nil {
		return 0, denseErrorf(ctxAt, idx, err)
	}
	return d.data[off], nil
}

// Set stores v at idx or returns ErrOutOfRange.
// Complexity: O(dims).
func (d *Dense) Set(v float64, idx ...int) error {
	off, err := d.offset(idx)
	if err != nil {
		return denseErrorf(ctxSet, idx, err)
	}
	d.data[off] = v
	return nil
}

// Clone returns a deep copy (new buffer, same shape).
// Complexity: O(size).
func (d *Dense) Clone() *Dense {
	cp := make([]float64, len(d.data))
	copy(cp, d.data)
	return &Dense{shape: d.shape.Clone(), data: cp}
}

// Identical reports whether a and b have the same shape and bit-identical
// values (NaN payloads included).
// Complexity: O(size).
func Identical(a, b *Dense) bool {
	if a == nil || b == nil {
		return a == b
	}
	if !a.shape.Equal(b.shape) {
		return false
	}
	for i := range a.data {
		if math.Float64bits(a.data[i]) != math.Float64bits(b.data[i]) {
			return false
		}
	}
	return true
}

// String renders the array one step row per line, samples separated by a
// blank line.
func (d *Dense) String() string {
	l := d.Layout()
	var sb strings.Builder
	var n, t, f int
	for n = 0; n < l.Samples; n++ {
		if n > 0 {
			sb.WriteString("\n")
		}
		for t = 0; t < l.Steps; t++ {
			sb.WriteString("[")
			for f = 0; f < l.Features; f++ {
				if f > 0 {
					sb.WriteString(", ")
				}
				fmt.Fprintf(&sb, "%g", d.data[l.Offset(n, t, f)])
			}
			sb.WriteString("]\n")
		}
	}
	return sb.String()
}
