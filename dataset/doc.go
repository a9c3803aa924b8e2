// SPDX-License-Identifier: MIT

// Package dataset moves arrays between CSV files and tensor.Dense.
//
// A table of R rows and F numeric columns becomes a 2D [R,F] array, or a
// 3D [R/T, T, F] array when WithSteps(T) is given (consecutive blocks of T
// rows form one sample). Empty cells and the tokens NaN, nan, NA, N/A and
// null read as NaN. Files ending in .xz or .gz are transparently
// (de)compressed.
package dataset
