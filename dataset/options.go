// SPDX-License-Identifier: MIT

package dataset

// Option customizes reading and writing.
type Option func(*config)

type config struct {
	header bool
	steps  int
	comma  rune
	naOut  string
	na     map[string]struct{}
}

// defaultNA lists the cell spellings read as NaN (compared after trimming).
var defaultNA = []string{"", "NaN", "nan", "NA", "N/A", "null"}

func newConfig(opts ...Option) config {
	cfg := config{comma: ',', naOut: "NaN", na: make(map[string]struct{}, len(defaultNA))}
	for _, s := range defaultNA {
		cfg.na[s] = struct{}{}
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithHeader treats the first row as column names.
func WithHeader() Option {
	return func(c *config) { c.header = true }
}

// WithSteps reshapes the table into [rows/steps, steps, columns].
// Panics if steps < 1.
func WithSteps(steps int) Option {
	if steps < 1 {
		panic("dataset: WithSteps(steps<1)")
	}
	return func(c *config) { c.steps = steps }
}

// WithComma sets the field delimiter (default ',').
func WithComma(r rune) Option {
	return func(c *config) { c.comma = r }
}

// WithMissingToken sets the text written for missing cells (default "NaN")
// and accepts it on read.
func WithMissingToken(s string) Option {
	return func(c *config) {
		c.naOut = s
		c.na[s] = struct{}{}
	}
}
