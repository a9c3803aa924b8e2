// SPDX-License-Identifier: MIT

// Command grind corrupts CSV datasets with artificial missingness.
//
//	grind corrupt -i data.csv -o corrupted.csv --mask mask.csv --pattern block --ratio 0.2 --seed 42
//	grind run plan.yaml
//	grind rate corrupted.csv
//	grind synth -k chirp -n 4 -t 128 -f 3 -o chirp.csv
package main

import (
	"log/slog"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		newLogger(os.Stderr, false).Error("grind failed", slog.Any("err", err))
		os.Exit(1)
	}
}
