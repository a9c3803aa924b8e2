// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/grinder/dataset"
	"github.com/katalvlaran/grinder/plan"
	"github.com/katalvlaran/grinder/report"
)

func newRunCmd(a *app) *cobra.Command {
	var reportName string
	cmd := &cobra.Command{
		Use:   "run plan.yaml",
		Short: "Execute every step of a YAML corruption plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPlan(args[0], reportName)
		},
	}
	cmd.Flags().StringVar(&reportName, "report-name", "report.yaml", "report file inside the output directory (.yaml or .json)")
	return cmd
}

// runPlan writes <name>.csv, <name>.mask.csv and <name>.indicating.csv per
// step into the plan's output directory, then the combined report.
func (a *app) runPlan(path, reportName string) error {
	p, err := plan.Load(path)
	if err != nil {
		return err
	}
	opts := a.readOptions()
	if p.Header {
		opts = append(opts, dataset.WithHeader())
	}
	if p.SeriesLen > 0 {
		opts = append(opts, dataset.WithSteps(p.SeriesLen))
	}
	tbl, err := dataset.ReadFile(p.Input, opts...)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(p.OutputDir, 0o755); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	a.logger.Info("plan loaded",
		slog.String("plan", path),
		slog.String("input", p.Input),
		slog.String("shape", tbl.Data.Shape().String()),
		slog.Int("steps", len(p.Steps)),
	)

	rep := report.New(p.Input)
	for _, s := range p.Steps {
		base := filepath.Join(p.OutputDir, s.Name)
		entry, err := a.applyStep(tbl, s, p.Seed, outputs{
			data:       base + ".csv",
			mask:       base + ".mask.csv",
			indicating: base + ".indicating.csv",
		})
		if err != nil {
			return err
		}
		rep.Add(entry)
	}
	return writeReport(filepath.Join(p.OutputDir, reportName), rep)
}
