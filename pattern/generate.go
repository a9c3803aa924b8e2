// SPDX-License-Identifier: MIT
// Package: grinder/pattern
//
// generate.go - dispatch table, shared job state and eligibility rules.
//
// Contract (all mechanisms):
//   - The returned mask marks ONLY new positions; it never marks a position
//     that is missing in `existing` or protected by WithReserved.
//   - Budgets follow mask.EffectiveBudget: round(ratio·cells) minus cells
//     already missing in the group, floored at 0.
//   - A shortfall is best-effort unless WithStrict is set.
//   - Same inputs + same stream state ⇒ identical output.

package pattern

import (
	"fmt"

	"github.com/katalvlaran/grinder/mask"
	"github.com/katalvlaran/grinder/rng"
	"github.com/katalvlaran/grinder/tensor"
)

// Region describes one placed contiguous block. Width is 1 for time-only blocks.
type Region struct {
	Sample  int // sample index (0 for 1D/2D)
	Step    int // first time step
	Feature int // first feature
	Length  int // extent along time
	Width   int // extent along features
}

// Outcome is the result of one generation.
type Outcome struct {
	// Mask marks newly removed positions only.
	Mask *mask.Mask
	// Requested is the total budget over all groups (for raw temporal mode:
	// the expected count).
	Requested int
	// Placed is the number of positions actually marked.
	Placed int
	// Regions lists placed blocks for Block and SpatialBlock.
	Regions []Region
}

// Shortfall returns max(0, Requested-Placed).
func (o *Outcome) Shortfall() int {
	if o.Placed >= o.Requested {
		return 0
	}
	return o.Requested - o.Placed
}

// job is the per-call state shared by generator implementations.
type job struct {
	method   string
	data     *tensor.Dense
	existing *mask.Mask
	layout   tensor.Layout
	ratio    float64
	cfg      config
	stream   rng.Stream

	// blocked[off] is true when off may not be newly marked
	// (existing, reserved, or excluded feature).
	blocked []bool
	out     *mask.Mask
}

// generatorFn is the signature every mechanism implements.
type generatorFn func(j *job) (*Outcome, error)

// generators is the closed dispatch table, indexed by Mechanism.
var generators = [numMechanisms]generatorFn{
	PointUniform:        generatePointUniform,
	Block:               generateBlock,
	SpatialBlock:        generateSpatialBlock,
	NotAtRandom:         generateNotAtRandom,
	TemporalNotAtRandom: generateTemporalNotAtRandom,
}

var methodNames = [numMechanisms]string{
	PointUniform:        methodPointUniform,
	Block:               methodBlock,
	SpatialBlock:        methodSpatialBlock,
	NotAtRandom:         methodNotAtRandom,
	TemporalNotAtRandom: methodTemporalNotAtRandom,
}

// Generate produces the new-missingness mask for mechanism m.
//
// Implementation:
//   - Stage 1: validate mechanism, data, dims, ratio and data-dependent options.
//   - Stage 2: derive existing missingness (when nil) and the blocked set.
//   - Stage 3: dispatch through the mechanism table.
//
// Inputs:
//   - data: the (possibly partially missing) array; read-only.
//   - existing: pre-existing missingness; nil ⇒ derived from the sentinel.
//   - ratio: target overall missing fraction in [0,1).
//
// Errors:
//   - ErrUnknownPattern, ErrShapeMismatch, ErrInvalidParameter, ErrBudgetExceeded (strict),
//     tensor.ErrNilTensor.
func Generate(m Mechanism, data *tensor.Dense, existing *mask.Mask, ratio float64, opts ...Option) (*Outcome, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%s: %s: %w", methodGenerate, m, ErrUnknownPattern)
	}
	method := methodNames[m]
	if data == nil {
		return nil, fmt.Errorf("%s: %w", method, tensor.ErrNilTensor)
	}
	if err := validateDims(method, m, data.Dims()); err != nil {
		return nil, err
	}
	if err := validateRatio(method, ratio); err != nil {
		return nil, err
	}

	cfg := newConfig(opts...)
	layout := data.Layout()
	if err := validateFeatures(method, cfg.features, layout.Features); err != nil {
		return nil, err
	}
	if err := validateFeatureRatios(method, cfg.featureRatios, layout.Features); err != nil {
		return nil, err
	}

	if existing == nil {
		var err error
		existing, err = mask.FromSentinel(data, cfg.sentinel)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", method, err)
		}
	} else if !existing.Shape().Equal(data.Shape()) {
		return nil, fmt.Errorf("%s: existing mask %v vs data %v: %w",
			method, existing.Shape(), data.Shape(), ErrShapeMismatch)
	}
	if cfg.reserved != nil && !cfg.reserved.Shape().Equal(data.Shape()) {
		return nil, fmt.Errorf("%s: reserved mask %v vs data %v: %w",
			method, cfg.reserved.Shape(), data.Shape(), ErrShapeMismatch)
	}

	j := &job{
		method:   method,
		data:     data,
		existing: existing,
		layout:   layout,
		ratio:    ratio,
		cfg:      cfg,
		stream:   cfg.resolveStream(),
		out:      mask.Zeros(data.Shape()),
	}
	j.blocked = j.buildBlocked()

	return generators[m](j)
}

// buildBlocked marks every offset that must stay untouched.
// Complexity: O(size).
func (j *job) buildBlocked() []bool {
	ex := j.existing.Raw()
	blocked := make([]bool, len(ex))
	copy(blocked, ex)
	if j.cfg.reserved != nil {
		for i, r := range j.cfg.reserved.Raw() {
			if r {
				blocked[i] = true
			}
		}
	}
	if allowed := j.allowedFeatures(); allowed != nil {
		for i := range blocked {
			if !allowed[i%j.layout.Features] {
				blocked[i] = true
			}
		}
	}
	return blocked
}

// allowedFeatures returns the WithFeatures subset as a lookup table, or nil
// when every feature may be corrupted.
func (j *job) allowedFeatures() []bool {
	if j.cfg.features == nil {
		return nil
	}
	allowed := make([]bool, j.layout.Features)
	for _, f := range j.cfg.features {
		allowed[f] = true
	}
	return allowed
}

// free reports whether off can be newly marked right now.
func (j *job) free(off int) bool {
	return !j.blocked[off] && !j.out.Raw()[off]
}

// mark records a new missing position.
func (j *job) mark(off int) {
	j.out.Raw()[off] = true
}

// group is a set of offsets sharing one budget.
type group struct {
	offsets []int
	ratio   float64
}

// groups partitions the array according to the configured scope. Offsets
// are listed in ascending order inside every group.
func (j *job) groups() []group {
	l := j.layout
	var n, t, f int
	switch j.cfg.scope {
	case ScopePerFeature:
		out := make([]group, l.Features)
		for f = 0; f < l.Features; f++ {
			offs := make([]int, 0, l.Samples*l.Steps)
			for n = 0; n < l.Samples; n++ {
				for t = 0; t < l.Steps; t++ {
					offs = append(offs, l.Offset(n, t, f))
				}
			}
			r := j.ratio
			if j.cfg.featureRatios != nil {
				r = j.cfg.featureRatios[f]
			}
			out[f] = group{offsets: offs, ratio: r}
		}
		return out
	case ScopePerSample:
		per := l.Steps * l.Features
		out := make([]group, l.Samples)
		for n = 0; n < l.Samples; n++ {
			offs := make([]int, per)
			for t = 0; t < per; t++ {
				offs[t] = n*per + t
			}
			out[n] = group{offsets: offs, ratio: j.ratio}
		}
		return out
	default:
		offs := make([]int, l.Size())
		for t = range offs {
			offs[t] = t
		}
		return []group{{offsets: offs, ratio: j.ratio}}
	}
}

// groupBudget returns the budget of g and its currently free offsets.
func (j *job) groupBudget(g group) (budget int, free []int) {
	ex := j.existing.Raw()
	missing := 0
	free = make([]int, 0, len(g.offsets))
	for _, off := range g.offsets {
		if ex[off] {
			missing++
		}
		if j.free(off) {
			free = append(free, off)
		}
	}
	return mask.EffectiveBudget(missing, len(g.offsets), g.ratio), free
}

// shortfallErr builds the strict-mode error.
func (j *job) shortfallErr(where string, requested, placed int) error {
	return fmt.Errorf("%s: %s: placed %d of %d: %w", j.method, where, placed, requested, ErrBudgetExceeded)
}

// finish wraps the output mask into an Outcome.
func (j *job) finish(requested int, blocks []Region) *Outcome {
	return &Outcome{
		Mask:      j.out,
		Requested: requested,
		Placed:    j.out.Count(),
		Regions:   blocks,
	}
}
