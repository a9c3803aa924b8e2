// SPDX-License-Identifier: MIT

package pattern

// White-box bridge: exposes unexported kernels to package pattern_test.
// Compiled only with tests, so nothing here widens the production API.

var (
	ExportedCalibrate           = calibrate
	ExportedExpectedCount       = expectedCount
	ExportedWeightedSampleExact = weightedSampleExact
	ExportedIntensity           = intensity
	ExportedResolveBounds       = resolveBounds
)
