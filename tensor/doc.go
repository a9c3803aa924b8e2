// Package tensor provides the dense numeric arrays that grinder corrupts.
//
// The package provides:
//
//   - Shape and Layout: 1D–3D shapes and their (samples, steps, features)
//     interpretation used by every missingness mechanism.
//   - Dense: a row-major float64 array with a flat backing buffer, safe
//     accessors and deep Clone.
//   - Observed statistics per feature (mean, standard deviation, quantile)
//     computed over non-missing values only.
//   - Adapters to and from gonum's mat.Dense for 2D data.
//
// Axis layout:
//
//	1D [T]        one series of T steps, one feature.
//	2D [T, F]     T steps by F features, one sample.
//	3D [N, T, F]  N samples, T steps, F features.
//
// All constructors copy caller data; nothing in grinder mutates an input array.
package tensor
