// SPDX-License-Identifier: MIT
// Package: grinder/corrupt
//
// api.go - public entry points.
//
// Design contract:
//   - One orchestrator: Corrupt. Every other entry point delegates to it.
//   - Validation happens before any allocation visible to the caller.
//   - Determinism: same data, options and seed ⇒ identical Result.

package corrupt

import (
	"fmt"

	"github.com/katalvlaran/grinder/mask"
	"github.com/katalvlaran/grinder/pattern"
	"github.com/katalvlaran/grinder/tensor"
)

const methodCorrupt = "Corrupt"

// Corrupt introduces missing values into a copy of data with mechanism m.
//
// Inputs:
//   - data: 1D [T], 2D [T,F] or 3D [N,T,F] array; may already hold gaps.
//   - ratio: target overall missing fraction in [0,1). Pre-existing gaps
//     count toward it.
//
// Errors:
//   - ErrUnknownPattern, ErrShapeMismatch, ErrInvalidParameter,
//     ErrBudgetExceeded (strict), tensor.ErrNilTensor.
//
// Complexity: O(size) plus the mechanism's own cost.
func Corrupt(data *tensor.Dense, m pattern.Mechanism, ratio float64, opts ...Option) (*Result, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%s: %s: %w", methodCorrupt, m, ErrUnknownPattern)
	}
	if data == nil {
		return nil, fmt.Errorf("%s: %w", methodCorrupt, tensor.ErrNilTensor)
	}

	sentinel := pattern.Sentinel(opts...)
	existing, err := mask.FromSentinel(data, sentinel)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodCorrupt, err)
	}
	out, err := pattern.Generate(m, data, existing, ratio, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodCorrupt, err)
	}

	final, err := mask.Combine(existing, out.Mask)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodCorrupt, err)
	}
	corrupted, err := mask.Apply(data, final, sentinel)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodCorrupt, err)
	}

	return &Result{
		Data:       corrupted,
		Mask:       final,
		Indicating: out.Mask,
		Existing:   existing,
		Mechanism:  m,
		Sentinel:   sentinel,
		Requested:  out.Requested,
		Achieved:   out.Placed,
		Regions:    out.Regions,
		source:     data.Clone(),
	}, nil
}

// CorruptByName resolves name with pattern.ParseMechanism and calls Corrupt.
func CorruptByName(data *tensor.Dense, name string, ratio float64, opts ...Option) (*Result, error) {
	m, err := pattern.ParseMechanism(name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodCorrupt, err)
	}
	return Corrupt(data, m, ratio, opts...)
}

// PointUniform removes uniformly chosen positions.
func PointUniform(data *tensor.Dense, ratio float64, opts ...Option) (*Result, error) {
	return Corrupt(data, pattern.PointUniform, ratio, opts...)
}

// Block removes contiguous runs along the time axis of every series.
// See WithMinBlockLen, WithMaxBlockLen and WithBlockLen.
func Block(data *tensor.Dense, ratio float64, opts ...Option) (*Result, error) {
	return Corrupt(data, pattern.Block, ratio, opts...)
}

// SpatialBlock removes time × feature rectangles; data needs ≥2 dims.
func SpatialBlock(data *tensor.Dense, ratio float64, opts ...Option) (*Result, error) {
	return Corrupt(data, pattern.SpatialBlock, ratio, opts...)
}

// NotAtRandom removes values with a probability rising with the value.
// See WithThreshold, WithQuantile, WithSteepness, WithBelow and WithExact.
func NotAtRandom(data *tensor.Dense, ratio float64, opts ...Option) (*Result, error) {
	return Corrupt(data, pattern.NotAtRandom, ratio, opts...)
}

// TemporalNotAtRandom removes values following a periodic intensity in time.
func TemporalNotAtRandom(data *tensor.Dense, ratio float64, opts ...Option) (*Result, error) {
	return Corrupt(data, pattern.TemporalNotAtRandom, ratio, opts...)
}
