// SPDX-License-Identifier: MIT

package plan

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/grinder/corrupt"
	"github.com/katalvlaran/grinder/pattern"
)

// ErrInvalidPlan is returned for undecodable or invalid plans.
var ErrInvalidPlan = errors.New("plan: invalid plan")

// Plan is a complete corruption run.
type Plan struct {
	Input     string `yaml:"input" validate:"required"`
	Header    bool   `yaml:"header"`
	SeriesLen int    `yaml:"series_len" validate:"gte=0"`
	Seed      int64  `yaml:"seed"`
	OutputDir string `yaml:"output_dir"`
	Steps     []Step `yaml:"steps" validate:"required,min=1,unique=Name,dive"`
}

// Step is one corruption applied to the input.
type Step struct {
	Name    string  `yaml:"name" validate:"required,excludesall=/\\"`
	Pattern string  `yaml:"pattern" validate:"required,mechanism"`
	Ratio   float64 `yaml:"ratio" validate:"gte=0,lt=1"`
	Seed    *int64  `yaml:"seed"`
	Strict  bool    `yaml:"strict"`

	MinBlock    int `yaml:"min_block" validate:"gte=0"`
	MaxBlock    int `yaml:"max_block" validate:"gte=0"`
	MinWidth    int `yaml:"min_width" validate:"gte=0"`
	MaxWidth    int `yaml:"max_width" validate:"gte=0"`
	MaxAttempts int `yaml:"max_attempts" validate:"gte=0"`

	Scope         string    `yaml:"scope" validate:"omitempty,oneof=global feature sample"`
	FeatureRatios []float64 `yaml:"feature_ratios" validate:"omitempty,dive,gte=0,lt=1"`
	Features      []int     `yaml:"features" validate:"omitempty,dive,gte=0"`

	Threshold *float64   `yaml:"threshold" validate:"omitnil,finite"`
	Quantile  *float64   `yaml:"quantile" validate:"omitnil,gte=0,lte=1"`
	Steepness *float64   `yaml:"steepness" validate:"omitnil,gt=0,finite"`
	Below     bool       `yaml:"below"`
	Exact     bool       `yaml:"exact"`
	Intensity *Intensity `yaml:"intensity"`
	RawIntens bool       `yaml:"raw_intensity"`
}

// Intensity parameterizes the temporal mechanism.
type Intensity struct {
	Cycle float64 `yaml:"cycle" validate:"finite"`
	Pos   float64 `yaml:"pos" validate:"finite"`
	Scale float64 `yaml:"scale" validate:"gt=0,finite"`
}

// planValidate is shared by all plans; custom tags are registered once.
var planValidate *validator.Validate

func init() {
	planValidate = validator.New()
	_ = planValidate.RegisterValidation("mechanism", validateMechanism)
	_ = planValidate.RegisterValidation("finite", validateFinite)
}

func validateMechanism(fl validator.FieldLevel) bool {
	_, err := pattern.ParseMechanism(fl.Field().String())
	return err == nil
}

func validateFinite(fl validator.FieldLevel) bool {
	v := fl.Field().Float()
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Decode reads a YAML plan from r. Unknown keys are rejected.
func Decode(r io.Reader) (*Plan, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var p Plan
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("Decode: %v: %w", err, ErrInvalidPlan)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Load decodes the plan at path. A relative Input or OutputDir is resolved
// against the plan's directory.
func Load(path string) (*Plan, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	defer f.Close()

	p, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("Load: %s: %w", path, err)
	}
	base := filepath.Dir(path)
	if !filepath.IsAbs(p.Input) {
		p.Input = filepath.Join(base, p.Input)
	}
	if !filepath.IsAbs(p.OutputDir) {
		p.OutputDir = filepath.Join(base, p.OutputDir)
	}
	return p, nil
}

// Validate checks struct tags and cross-field bounds.
func (p *Plan) Validate() error {
	if err := planValidate.Struct(p); err != nil {
		return fmt.Errorf("Validate: %v: %w", err, ErrInvalidPlan)
	}
	for _, s := range p.Steps {
		if s.MinBlock > 0 && s.MaxBlock > 0 && s.MinBlock > s.MaxBlock {
			return fmt.Errorf("Validate: step %q: min_block %d > max_block %d: %w", s.Name, s.MinBlock, s.MaxBlock, ErrInvalidPlan)
		}
		if s.MinWidth > 0 && s.MaxWidth > 0 && s.MinWidth > s.MaxWidth {
			return fmt.Errorf("Validate: step %q: min_width %d > max_width %d: %w", s.Name, s.MinWidth, s.MaxWidth, ErrInvalidPlan)
		}
	}
	return nil
}

// Mechanism returns the parsed mechanism of s.
func (s Step) Mechanism() (pattern.Mechanism, error) {
	return pattern.ParseMechanism(s.Pattern)
}

// EffectiveSeed returns the step seed, or the plan seed when unset.
func (s Step) EffectiveSeed(planSeed int64) int64 {
	if s.Seed != nil {
		return *s.Seed
	}
	return planSeed
}

var scopes = map[string]pattern.Scope{
	"global":  pattern.ScopeGlobal,
	"feature": pattern.ScopePerFeature,
	"sample":  pattern.ScopePerSample,
}

// Options converts s into facade options. Zero-valued fields keep the
// library defaults. s must have passed Validate.
func (s Step) Options(planSeed int64) []corrupt.Option {
	opts := []corrupt.Option{corrupt.WithSeed(s.EffectiveSeed(planSeed))}
	add := func(cond bool, o func() corrupt.Option) {
		if cond {
			opts = append(opts, o())
		}
	}
	add(s.MinBlock > 0, func() corrupt.Option { return corrupt.WithMinBlockLen(s.MinBlock) })
	add(s.MaxBlock > 0, func() corrupt.Option { return corrupt.WithMaxBlockLen(s.MaxBlock) })
	add(s.MinWidth > 0, func() corrupt.Option { return corrupt.WithMinBlockWidth(s.MinWidth) })
	add(s.MaxWidth > 0, func() corrupt.Option { return corrupt.WithMaxBlockWidth(s.MaxWidth) })
	add(s.MaxAttempts > 0, func() corrupt.Option { return corrupt.WithMaxAttempts(s.MaxAttempts) })
	add(s.Scope != "", func() corrupt.Option { return corrupt.WithScope(scopes[s.Scope]) })
	add(s.FeatureRatios != nil, func() corrupt.Option { return corrupt.WithFeatureRatios(s.FeatureRatios) })
	add(len(s.Features) > 0, func() corrupt.Option { return corrupt.WithFeatures(s.Features...) })
	add(s.Strict, corrupt.WithStrict)
	add(s.Quantile != nil, func() corrupt.Option { return corrupt.WithQuantile(*s.Quantile) })
	add(s.Threshold != nil, func() corrupt.Option { return corrupt.WithThreshold(*s.Threshold) })
	add(s.Steepness != nil, func() corrupt.Option { return corrupt.WithSteepness(*s.Steepness) })
	add(s.Below, corrupt.WithBelow)
	add(s.Exact, corrupt.WithExact)
	add(s.Intensity != nil, func() corrupt.Option {
		return corrupt.WithIntensity(s.Intensity.Cycle, s.Intensity.Pos, s.Intensity.Scale)
	})
	add(s.RawIntens, corrupt.WithRawIntensity)
	return opts
}
