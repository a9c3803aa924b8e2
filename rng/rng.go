// SPDX-License-Identifier: MIT
// Package: grinder/rng
//
// rng.go - deterministic stream factory and sampling helpers.
//
// Goals:
//   - Determinism: same seed ⇒ identical draws across platforms.
//   - Encapsulation: one factory; generators never build their own sources.
//   - Safety: no panics on user input; sentinel errors only.

package rng

import (
	"fmt"
	"math/rand"
)

// DefaultSeed is the fixed seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const DefaultSeed int64 = 1

// Stream is the random interface every generator consumes.
// Implementations advance internal state monotonically and have no other
// side effects.
type Stream interface {
	// Float64 returns a uniform draw in [0,1).
	Float64() float64

	// Intn returns a uniform integer in [0,n). n must be > 0.
	Intn(n int) int

	// Uniform returns n uniform draws in [0,1).
	Uniform(n int) []float64

	// Permutation returns a random ordering of 0..n-1.
	Permutation(n int) []int

	// Choice draws k indices from 0..population-1, with or without replacement.
	Choice(population, k int, replace bool) ([]int, error)
}

// Source is the default Stream backed by math/rand.
type Source struct {
	r *rand.Rand
}

// Compile-time assertion.
var _ Stream = (*Source)(nil)

// New returns a deterministic Source.
// Policy: seed==0 ⇒ DefaultSeed; otherwise the seed is used verbatim.
//
// Complexity: O(1).
func New(seed int64) *Source {
	var s int64
	s = seed
	if s == 0 {
		s = DefaultSeed
	}
	return &Source{r: rand.New(rand.NewSource(s))}
}

// deriveSeed mixes a parent seed and a stream identifier into a new seed
// with the SplitMix64 finalizer, so neighbouring ids give unrelated streams.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// Derive creates an independent deterministic substream from parent and a
// stream identifier. If parent is nil, DefaultSeed is the parent seed;
// otherwise one draw of parent is consumed so that reusing an id twice
// still yields distinct children.
//
// Complexity: O(1).
func Derive(parent Stream, stream uint64) *Source {
	var p int64
	if parent == nil {
		p = DefaultSeed
	} else {
		p = int64(parent.Float64() * (1 << 53))
	}
	return &Source{r: rand.New(rand.NewSource(deriveSeed(p, stream)))}
}

// Float64 returns a uniform draw in [0,1).
func (s *Source) Float64() float64 { return s.r.Float64() }

// Intn returns a uniform integer in [0,n). It panics if n <= 0, like math/rand;
// generators only call it with validated bounds.
func (s *Source) Intn(n int) int { return s.r.Intn(n) }

// NormFloat64 returns a standard normal draw. It is not part of Stream:
// only the series generators need it.
func (s *Source) NormFloat64() float64 { return s.r.NormFloat64() }

// Uniform returns n draws in [0,1). n<=0 yields an empty slice.
//
// Complexity: O(n).
func (s *Source) Uniform(n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	out := make([]float64, n)
	var i int
	for i = 0; i < n; i++ {
		out[i] = s.r.Float64()
	}
	return out
}

// Permutation returns a permutation of 0..n-1 (Fisher–Yates, descending i).
// n<=0 yields an empty slice.
//
// Complexity: O(n) time, O(n) space.
func (s *Source) Permutation(n int) []int {
	if n <= 0 {
		return []int{}
	}
	p := make([]int, n)
	var i int
	for i = 0; i < n; i++ {
		p[i] = i
	}
	shuffleInts(p, s)
	return p
}

// Choice draws k indices from 0..population-1.
//
// Without replacement a partial Fisher–Yates pass over an index buffer is
// used: the first k slots of the buffer are the sample, in draw order.
// With replacement every index is an independent Intn draw.
//
// Errors:
//   - ErrInvalidArgument if population<0, k<0, k>population without
//     replacement, or k>0 with an empty population.
//
// Complexity: O(population) without replacement, O(k) with.
func (s *Source) Choice(population, k int, replace bool) ([]int, error) {
	return choice(s, population, k, replace)
}

// choice is shared by Source and the locked wrapper so both draw identically.
func choice(s Stream, population, k int, replace bool) ([]int, error) {
	if population < 0 || k < 0 {
		return nil, fmt.Errorf("Choice(population=%d, k=%d): %w", population, k, ErrInvalidArgument)
	}
	if k == 0 {
		return []int{}, nil
	}
	if population == 0 {
		return nil, fmt.Errorf("Choice: empty population: %w", ErrInvalidArgument)
	}

	out := make([]int, k)
	var i int
	if replace {
		for i = 0; i < k; i++ {
			out[i] = s.Intn(population)
		}
		return out, nil
	}
	if k > population {
		return nil, fmt.Errorf("Choice: k=%d > population=%d without replacement: %w",
			k, population, ErrInvalidArgument)
	}

	buf := make([]int, population)
	for i = 0; i < population; i++ {
		buf[i] = i
	}
	var j int
	for i = 0; i < k; i++ {
		// swap a uniform pick from the unsampled tail into slot i
		j = i + s.Intn(population-i)
		buf[i], buf[j] = buf[j], buf[i]
	}
	copy(out, buf[:k])
	return out, nil
}

// shuffleInts performs an in-place Fisher–Yates shuffle of a.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleInts(a []int, s Stream) {
	var (
		i int
		j int
	)
	for i = len(a) - 1; i > 0; i-- {
		j = s.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
