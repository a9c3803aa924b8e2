// SPDX-License-Identifier: MIT

package dataset

import "errors"

var (
	// ErrEmptyTable is returned when a table has no data rows or no columns.
	ErrEmptyTable = errors.New("dataset: empty table")
	// ErrRaggedRow is returned when a row's width differs from the first row.
	ErrRaggedRow = errors.New("dataset: ragged row")
	// ErrBadCell is returned when a cell is neither numeric nor a missing token.
	ErrBadCell = errors.New("dataset: bad cell")
	// ErrBadSteps is returned when the row count is not a multiple of the step count.
	ErrBadSteps = errors.New("dataset: rows not divisible by steps")
)
