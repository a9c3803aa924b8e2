// Package grinder introduces controlled missingness into numeric arrays and
// tables, so imputation and robustness methods can be tested against a
// known ground truth.
//
// What is grinder?
//
//	A deterministic toolkit that removes values according to a named
//	missing-data mechanism and tells you exactly what it removed:
//		• Point-uniform removal (MCAR)
//		• Contiguous blocks along time
//		• Rectangular blocks across time and features
//		• Value-dependent removal (MNAR), optionally time-modulated
//		• Exact budgets, reserved cells and per-feature ratios
//
// Why grinder?
//
//   - Reproducible: every run is a pure function of data, options and seed
//   - Honest: the result always carries the full and the indicating masks
//   - Non-destructive: inputs are never mutated
//
// Packages:
//
//	rng/      seeded streams and sampling helpers
//	tensor/   dense 1-D/2-D/3-D arrays with a fixed [N,T,F] layout
//	mask/     boolean masks, mask algebra, budgets and gap regions
//	pattern/  the mechanisms and their options
//	corrupt/  the public entry point: data in, corrupted copy and masks out
//	synth/    pulse, chirp and OHLC series to corrupt
//	dataset/  CSV codec with gzip and xz transparency
//	plan/     YAML corruption plans
//	report/   run reports with digests and gap statistics
//	cmd/grind	command-line front end
//
// Quick example:
//
//	res, err := corrupt.Block(x, 0.2, corrupt.WithBlockLen(5), corrupt.WithSeed(7))
//	if err != nil {
//		return err
//	}
//	fmt.Println(res.Achieved, res.Mask.Rate())
//
//	go install github.com/katalvlaran/grinder/cmd/grind@latest
package grinder
