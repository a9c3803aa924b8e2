// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/grinder/dataset"
	"github.com/katalvlaran/grinder/mask"
)

func newRateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rate file.csv",
		Short: "Print the missing rate of a CSV table, overall and per column",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tbl, err := dataset.ReadFile(args[0], a.readOptions()...)
			if err != nil {
				return err
			}
			m, err := mask.FromSentinel(tbl.Data, math.NaN())
			if err != nil {
				return err
			}
			perFeature, err := mask.CountAxis(m, len(m.Shape())-1)
			if err != nil {
				return err
			}
			gaps, err := mask.Gaps(m, mask.Conn4)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			a.logger.Debug("table loaded", slog.String("shape", m.Shape().String()))

			fmt.Fprintf(out, "missing %d/%d (%.4f) in %d gaps\n", m.Count(), m.Len(), m.Rate(), len(gaps))
			rows := m.Len() / len(perFeature)
			for f, c := range perFeature {
				name := ""
				if f < len(tbl.Header) {
					name = " " + tbl.Header[f]
				}
				fmt.Fprintf(out, "  [%d]%s %d/%d (%.4f)\n", f, name, c, rows, float64(c)/float64(rows))
			}
			return nil
		},
	}
}
