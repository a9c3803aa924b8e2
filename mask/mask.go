// SPDX-License-Identifier: MIT

package mask

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/grinder/tensor"
)

// Mask is a row-major boolean grid; true marks an unobserved position.
type Mask struct {
	shape tensor.Shape
	bits  []bool
}

// New returns an all-false mask of the given shape.
//
// Errors:
//   - tensor.ErrBadShape for an invalid shape.
func New(shape ...int) (*Mask, error) {
	s := tensor.Shape(shape).Clone()
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("mask.New: %w", err)
	}
	return &Mask{shape: s, bits: make([]bool, s.Size())}, nil
}

// Zeros returns an all-false mask shaped like s. s must be valid.
func Zeros(s tensor.Shape) *Mask {
	return &Mask{shape: s.Clone(), bits: make([]bool, s.Size())}
}

// FromBools copies bits into a mask of the given shape.
//
// Errors:
//   - tensor.ErrBadShape, ErrShapeMismatch.
func FromBools(bits []bool, shape ...int) (*Mask, error) {
	s := tensor.Shape(shape).Clone()
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("mask.FromBools: %w", err)
	}
	if len(bits) != s.Size() {
		return nil, fmt.Errorf("mask.FromBools: len=%d, shape %v: %w", len(bits), s, ErrShapeMismatch)
	}
	cp := make([]bool, len(bits))
	copy(cp, bits)
	return &Mask{shape: s, bits: cp}, nil
}

// FromSentinel marks every position of d that is missing under sentinel
// (NaN always counts, see tensor.IsMissing).
//
// Complexity: O(size).
func FromSentinel(d *tensor.Dense, sentinel float64) (*Mask, error) {
	if d == nil {
		return nil, fmt.Errorf("mask.FromSentinel: %w", tensor.ErrNilTensor)
	}
	raw := d.Raw()
	m := Zeros(d.Shape())
	for i, v := range raw {
		m.bits[i] = tensor.IsMissing(v, sentinel)
	}
	return m, nil
}

// Shape returns a copy of the mask's shape.
func (m *Mask) Shape() tensor.Shape { return m.shape.Clone() }

// Layout returns the (samples, steps, features) view of the shape.
func (m *Mask) Layout() tensor.Layout { return m.shape.Layout() }

// Len returns the number of positions.
func (m *Mask) Len() int { return len(m.bits) }

// Raw returns the shared backing slice in row-major order.
func (m *Mask) Raw() []bool { return m.bits }

// Bits returns a copy of the backing slice.
func (m *Mask) Bits() []bool {
	out := make([]bool, len(m.bits))
	copy(out, m.bits)
	return out
}

// Get returns the flag at idx (one index per dimension).
func (m *Mask) Get(idx ...int) (bool, error) {
	off, err := m.offset(idx)
	if err != nil {
		return false, err
	}
	return m.bits[off], nil
}

// Set writes v at idx.
func (m *Mask) Set(v bool, idx ...int) error {
	off, err := m.offset(idx)
	if err != nil {
		return err
	}
	m.bits[off] = v
	return nil
}

func (m *Mask) offset(idx []int) (int, error) {
	if len(idx) != len(m.shape) {
		return 0, fmt.Errorf("Mask(%v): %w", idx, tensor.ErrOutOfRange)
	}
	off := 0
	for k, i := range idx {
		if i < 0 || i >= m.shape[k] {
			return 0, fmt.Errorf("Mask(%v): %w", idx, tensor.ErrOutOfRange)
		}
		off = off*m.shape[k] + i
	}
	return off, nil
}

// Clone returns a deep copy.
func (m *Mask) Clone() *Mask {
	return &Mask{shape: m.shape.Clone(), bits: m.Bits()}
}

// Equal reports identical shape and flags.
func (m *Mask) Equal(o *Mask) bool {
	if m == nil || o == nil {
		return m == o
	}
	if !m.shape.Equal(o.shape) {
		return false
	}
	for i := range m.bits {
		if m.bits[i] != o.bits[i] {
			return false
		}
	}
	return true
}

// Count returns the number of true positions.
func (m *Mask) Count() int {
	n := 0
	for _, b := range m.bits {
		if b {
			n++
		}
	}
	return n
}

// Rate returns Count()/Len(); 0 for an empty mask.
func (m *Mask) Rate() float64 {
	if len(m.bits) == 0 {
		return 0
	}
	return float64(m.Count()) / float64(len(m.bits))
}

// String renders the mask with '1' for missing and '.' for observed, one
// step row per line.
func (m *Mask) String() string {
	l := m.Layout()
	var sb strings.Builder
	var n, t, f int
	for n = 0; n < l.Samples; n++ {
		if n > 0 {
			sb.WriteString("\n")
		}
		for t = 0; t < l.Steps; t++ {
			for f = 0; f < l.Features; f++ {
				if m.bits[l.Offset(n, t, f)] {
					sb.WriteByte('1')
				} else {
					sb.WriteByte('.')
				}
			}
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
