// SPDX-License-Identifier: MIT
// Package: grinder/dataset
//
// csv.go - CSV ⇄ tensor.Dense.
//
// Layout: rows are the flattened leading axes, columns the feature axis.
//   - 1D [T]     ⇒ T rows × 1 column
//   - 2D [T,F]   ⇒ T rows × F columns
//   - 3D [N,T,F] ⇒ N·T rows × F columns (sample-major)

package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/grinder/mask"
	"github.com/katalvlaran/grinder/tensor"
)

// Table is a decoded CSV: optional column names and the numeric array.
type Table struct {
	Header []string
	Data   *tensor.Dense
}

// Read decodes a numeric CSV table from r.
//
// Errors:
//   - ErrEmptyTable, ErrRaggedRow, ErrBadCell (with row and column), ErrBadSteps.
func Read(r io.Reader, opts ...Option) (*Table, error) {
	cfg := newConfig(opts...)
	cr := csv.NewReader(r)
	cr.Comma = cfg.comma
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var (
		header []string
		values []float64
		width  int
		rows   int
	)
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("Read: line %d: %w", line, err)
		}
		if cfg.header && header == nil {
			header = append([]string(nil), rec...)
			width = len(rec)
			continue
		}
		if width == 0 {
			width = len(rec)
		}
		if len(rec) != width {
			return nil, fmt.Errorf("Read: line %d has %d cells, want %d: %w", line, len(rec), width, ErrRaggedRow)
		}
		for col, cell := range rec {
			v, err := cfg.parseCell(cell)
			if err != nil {
				return nil, fmt.Errorf("Read: line %d column %d: %q: %w", line, col+1, cell, ErrBadCell)
			}
			values = append(values, v)
		}
		rows++
	}
	if rows == 0 || width == 0 {
		return nil, fmt.Errorf("Read: %w", ErrEmptyTable)
	}

	shape := []int{rows, width}
	if cfg.steps > 0 {
		if rows%cfg.steps != 0 {
			return nil, fmt.Errorf("Read: %d rows, %d steps: %w", rows, cfg.steps, ErrBadSteps)
		}
		shape = []int{rows / cfg.steps, cfg.steps, width}
	}
	d, err := tensor.FromSlice(values, shape...)
	if err != nil {
		return nil, fmt.Errorf("Read: %w", err)
	}
	return &Table{Header: header, Data: d}, nil
}

func (c *config) parseCell(cell string) (float64, error) {
	s := strings.TrimSpace(cell)
	if _, ok := c.na[s]; ok {
		return math.NaN(), nil
	}
	return strconv.ParseFloat(s, 64)
}

// Write encodes d as CSV. Missing cells (NaN) are written with the missing
// token; header is written first when non-empty.
//
// Errors:
//   - tensor.ErrNilTensor, tensor.ErrShapeMismatch when len(header) differs
//     from the feature count.
func Write(w io.Writer, d *tensor.Dense, header []string, opts ...Option) error {
	if d == nil {
		return fmt.Errorf("Write: %w", tensor.ErrNilTensor)
	}
	cfg := newConfig(opts...)
	l := d.Layout()
	return writeRows(w, cfg, header, l, func(off int) string {
		v := d.Raw()[off]
		if math.IsNaN(v) {
			return cfg.naOut
		}
		return strconv.FormatFloat(v, 'g', -1, 64)
	})
}

// WriteMask encodes m as a 0/1 CSV in the same row layout as Write.
func WriteMask(w io.Writer, m *mask.Mask, header []string, opts ...Option) error {
	if m == nil {
		return fmt.Errorf("WriteMask: %w", mask.ErrNilMask)
	}
	cfg := newConfig(opts...)
	return writeRows(w, cfg, header, m.Layout(), func(off int) string {
		if m.Raw()[off] {
			return "1"
		}
		return "0"
	})
}

func writeRows(w io.Writer, cfg config, header []string, l tensor.Layout, cell func(off int) string) error {
	if len(header) > 0 && len(header) != l.Features {
		return fmt.Errorf("write: %d header names for %d columns: %w", len(header), l.Features, tensor.ErrShapeMismatch)
	}
	cw := csv.NewWriter(w)
	cw.Comma = cfg.comma
	if len(header) > 0 {
		if err := cw.Write(header); err != nil {
			return fmt.Errorf("write: header: %w", err)
		}
	}
	rec := make([]string, l.Features)
	rows := l.Samples * l.Steps
	var r, f int
	for r = 0; r < rows; r++ {
		for f = 0; f < l.Features; f++ {
			rec[f] = cell(r*l.Features + f)
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write: row %d: %w", r, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
