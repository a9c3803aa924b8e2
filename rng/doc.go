// Package rng provides the seeded random streams consumed by every
// missingness generator in grinder.
//
// What & Why:
//
//	Reproducibility is a correctness property of artificial missingness:
//	an imputation benchmark is only comparable across runs when the same
//	positions are removed. All generators therefore draw through a single
//	Stream interface, and the default implementation (Source) wraps a
//	math/rand generator seeded explicitly by the caller.
//
// Seeding policy:
//   - New(seed) with seed != 0 uses the seed verbatim.
//   - New(0) uses DefaultSeed. No time-based source exists anywhere.
//   - Derive(parent, id) produces an independent substream (SplitMix64 mix).
//
// Concurrency:
//   - Source is NOT goroutine-safe. Wrap it with NewLocked when one stream
//     is shared by several goroutines; draw order then decides the output.
//
// Complexity:
//   - Float64/Intn O(1); Uniform/Permutation O(n); Choice O(population)
//     without replacement, O(k) with replacement.
package rng
