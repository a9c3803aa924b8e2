// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/grinder/corrupt"
	"github.com/katalvlaran/grinder/dataset"
	"github.com/katalvlaran/grinder/plan"
	"github.com/katalvlaran/grinder/report"
)

type corruptFlags struct {
	input, output     string
	maskPath, indPath string
	reportPath        string
	step              plan.Step
	seed              int64
	threshold         float64
	quantile          float64
	steepness         float64
	cycle, pos, scale float64
}

func newCorruptCmd(a *app) *cobra.Command {
	f := &corruptFlags{}
	cmd := &cobra.Command{
		Use:   "corrupt",
		Short: "Corrupt one CSV table with a single mechanism",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f.bindOptional(cmd)
			return a.runCorrupt(cmd, f)
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&f.input, "input", "i", "", "input CSV (.csv, .csv.xz, .csv.gz)")
	fl.StringVarP(&f.output, "output", "o", "", "corrupted CSV to write")
	fl.StringVar(&f.maskPath, "mask", "", "write the full missingness mask (0/1 CSV)")
	fl.StringVar(&f.indPath, "indicating", "", "write the mask of newly removed cells only")
	fl.StringVar(&f.reportPath, "report", "", "write a run report (.yaml or .json)")
	fl.StringVarP(&f.step.Pattern, "pattern", "p", "point_uniform", "mechanism name or alias")
	fl.Float64VarP(&f.step.Ratio, "ratio", "r", 0.1, "target missing fraction in [0,1)")
	fl.Int64Var(&f.seed, "seed", 0, "random seed (0 selects the default seed)")
	fl.BoolVar(&f.step.Strict, "strict", false, "fail when the budget cannot be met")
	fl.IntVar(&f.step.MinBlock, "min-block", 0, "shortest block along time")
	fl.IntVar(&f.step.MaxBlock, "max-block", 0, "longest block along time")
	fl.IntVar(&f.step.MinWidth, "min-width", 0, "narrowest spatial block")
	fl.IntVar(&f.step.MaxWidth, "max-width", 0, "widest spatial block")
	fl.IntVar(&f.step.MaxAttempts, "max-attempts", 0, "random placement attempts per block")
	fl.StringVar(&f.step.Scope, "scope", "", "budget grouping: global, feature or sample")
	fl.Float64SliceVar(&f.step.FeatureRatios, "feature-ratios", nil, "one ratio per feature")
	fl.IntSliceVar(&f.step.Features, "features", nil, "feature indices eligible for corruption")
	fl.Float64Var(&f.threshold, "threshold", 0, "not-at-random value threshold")
	fl.Float64Var(&f.quantile, "quantile", 0.5, "not-at-random threshold quantile")
	fl.Float64Var(&f.steepness, "steepness", 4, "not-at-random logistic slope")
	fl.BoolVar(&f.step.Below, "below", false, "favour values below the threshold")
	fl.BoolVar(&f.step.Exact, "exact", false, "remove exactly the budget")
	fl.Float64Var(&f.cycle, "cycle", 20, "temporal intensity cycle")
	fl.Float64Var(&f.pos, "pos", 10, "temporal intensity phase")
	fl.Float64Var(&f.scale, "scale", 3, "temporal intensity scale")
	fl.BoolVar(&f.step.RawIntens, "raw-intensity", false, "apply the uncalibrated temporal rule")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

// bindOptional copies flags that are only meaningful when given explicitly.
func (f *corruptFlags) bindOptional(cmd *cobra.Command) {
	fl := cmd.Flags()
	if fl.Changed("seed") {
		f.step.Seed = &f.seed
	}
	if fl.Changed("threshold") {
		f.step.Threshold = &f.threshold
	}
	if fl.Changed("quantile") {
		f.step.Quantile = &f.quantile
	}
	if fl.Changed("steepness") {
		f.step.Steepness = &f.steepness
	}
	if fl.Changed("cycle") || fl.Changed("pos") || fl.Changed("scale") {
		f.step.Intensity = &plan.Intensity{Cycle: f.cycle, Pos: f.pos, Scale: f.scale}
	}
}

func (a *app) runCorrupt(cmd *cobra.Command, f *corruptFlags) error {
	f.step.Name = strings.TrimSuffix(filepath.Base(f.output), filepath.Ext(f.output))
	single := plan.Plan{Input: f.input, Steps: []plan.Step{f.step}}
	if err := single.Validate(); err != nil {
		return err
	}

	tbl, err := dataset.ReadFile(f.input, a.readOptions()...)
	if err != nil {
		return err
	}
	a.logger.Debug("input loaded", slog.String("path", f.input), slog.String("shape", tbl.Data.Shape().String()))

	entry, err := a.applyStep(tbl, f.step, 0, outputs{data: f.output, mask: f.maskPath, indicating: f.indPath})
	if err != nil {
		return err
	}

	if f.reportPath == "" {
		return nil
	}
	rep := report.New(f.input)
	rep.Add(entry)
	return writeReport(f.reportPath, rep)
}

// outputs names the files one step writes; empty paths are skipped.
type outputs struct {
	data, mask, indicating string
}

// applyStep corrupts tbl with s, writes the outputs and returns the report entry.
func (a *app) applyStep(tbl *dataset.Table, s plan.Step, planSeed int64, out outputs) (report.Entry, error) {
	m, err := s.Mechanism()
	if err != nil {
		return report.Entry{}, err
	}
	seed := s.EffectiveSeed(planSeed)
	res, err := corrupt.Corrupt(tbl.Data, m, s.Ratio, s.Options(planSeed)...)
	if err != nil {
		return report.Entry{}, fmt.Errorf("step %q: %w", s.Name, err)
	}
	log := a.logger.With(slog.String("step", s.Name), slog.String("pattern", m.String()))
	log.Info("corrupted",
		slog.Float64("ratio", s.Ratio),
		slog.Int64("seed", seed),
		slog.String("shape", res.Data.Shape().String()),
		slog.Int("requested", res.Requested),
		slog.Int("achieved", res.Achieved),
		slog.Float64("missing_rate", res.Rate()),
	)
	if res.Shortfall() > 0 {
		log.Warn("budget not met", slog.Int("shortfall", res.Shortfall()))
	}

	entry, err := report.Summarize(s.Name, res, s.Ratio, seed)
	if err != nil {
		return report.Entry{}, err
	}
	entry.Outputs = map[string]string{}
	if out.data != "" {
		if err := dataset.WriteFile(out.data, res.Data, tbl.Header); err != nil {
			return report.Entry{}, err
		}
		entry.Outputs["data"] = out.data
	}
	if out.mask != "" {
		if err := dataset.WriteMaskFile(out.mask, res.Mask, tbl.Header); err != nil {
			return report.Entry{}, err
		}
		entry.Outputs["mask"] = out.mask
	}
	if out.indicating != "" {
		if err := dataset.WriteMaskFile(out.indicating, res.Indicating, tbl.Header); err != nil {
			return report.Entry{}, err
		}
		entry.Outputs["indicating"] = out.indicating
	}
	log.Debug("outputs written", slog.Any("files", entry.Outputs))
	return entry, nil
}

// writeReport picks JSON for a .json path and YAML otherwise.
func writeReport(path string, rep *report.Report) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return rep.WriteJSON(f)
	}
	return rep.WriteYAML(f)
}
