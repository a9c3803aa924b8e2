// SPDX-License-Identifier: MIT

// Package plan decodes YAML corruption plans: one input table and a list of
// named steps, each selecting a mechanism, a ratio and its parameters.
//
//	input: sensors.csv.xz
//	header: true
//	series_len: 48
//	seed: 42
//	output_dir: out
//	steps:
//	  - name: mcar30
//	    pattern: point_uniform
//	    ratio: 0.3
//	  - name: gaps
//	    pattern: block
//	    ratio: 0.2
//	    min_block: 3
//	    max_block: 8
//
// Plans are validated with struct tags before use; every failure matches
// ErrInvalidPlan.
package plan
