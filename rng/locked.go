// SPDX-License-Identifier: MIT

package rng

import "sync"

// Locked serializes access to an underlying Stream so that one stream can be
// shared across goroutines. Output order still depends on call order.
type Locked struct {
	mu sync.Mutex
	s  Stream
}

var _ Stream = (*Locked)(nil)

// NewLocked wraps s. A nil s is replaced by New(0).
func NewLocked(s Stream) *Locked {
	if s == nil {
		s = New(0)
	}
	return &Locked{s: s}
}

// Float64 returns a uniform draw in [0,1).
func (l *Locked) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.s.Float64()
}

// Intn returns a uniform integer in [0,n).
func (l *Locked) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.s.Intn(n)
}

// Uniform returns n draws in [0,1) as one atomic batch.
func (l *Locked) Uniform(n int) []float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.s.Uniform(n)
}

// Permutation returns a permutation of 0..n-1 as one atomic batch.
func (l *Locked) Permutation(n int) []int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.s.Permutation(n)
}

// Choice draws k indices as one atomic batch.
func (l *Locked) Choice(population, k int, replace bool) ([]int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.s.Choice(population, k, replace)
}
