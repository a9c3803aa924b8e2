// SPDX-License-Identifier: MIT

// Package corrupt is the orchestration facade of grinder.
//
// One call takes a dense array, a mechanism and a target ratio and returns
// the corrupted copy together with its missingness masks:
//
//	res, err := corrupt.Corrupt(data, pattern.Block, 0.3,
//		corrupt.WithBlockLen(3), corrupt.WithSeed(42))
//
// Steps performed by Corrupt:
//  1. validate mechanism, data, dimensionality and ratio;
//  2. extract pre-existing missingness (NaN or the configured sentinel);
//  3. generate the new mask with the selected mechanism;
//  4. combine both masks (logical OR) and apply the result with the sentinel.
//
// The input is never mutated. On error nothing is returned but the error.
package corrupt
