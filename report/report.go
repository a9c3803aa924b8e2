// SPDX-License-Identifier: MIT

// Package report summarizes corruption runs: counts, achieved rates and
// BLAKE3 fingerprints of the produced mask and data, so two runs can be
// compared without shipping the arrays.
package report

import (
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/google/uuid"
	"github.com/zeebo/blake3"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/grinder/corrupt"
	"github.com/katalvlaran/grinder/mask"
	"github.com/katalvlaran/grinder/tensor"
)

// Entry describes one corruption step.
type Entry struct {
	Step      string  `yaml:"step,omitempty" json:"step,omitempty"`
	Mechanism string  `yaml:"mechanism" json:"mechanism"`
	Ratio     float64 `yaml:"ratio" json:"ratio"`
	Seed      int64   `yaml:"seed" json:"seed"`
	Shape     []int   `yaml:"shape,flow" json:"shape"`
	Cells     int     `yaml:"cells" json:"cells"`

	Existing  int `yaml:"existing" json:"existing"`
	Requested int `yaml:"requested" json:"requested"`
	Achieved  int `yaml:"achieved" json:"achieved"`
	Shortfall int `yaml:"shortfall" json:"shortfall"`
	Regions   int `yaml:"regions,omitempty" json:"regions,omitempty"`

	// Gaps counts connected missing regions (edge-connected, per sample);
	// LongestGap is the largest time extent among them.
	Gaps       int `yaml:"gaps" json:"gaps"`
	LongestGap int `yaml:"longest_gap" json:"longest_gap"`

	ExistingRate float64 `yaml:"existing_rate" json:"existing_rate"`
	MissingRate  float64 `yaml:"missing_rate" json:"missing_rate"`
	// FeatureMissing counts missing cells per feature after corruption.
	FeatureMissing []int `yaml:"feature_missing,flow" json:"feature_missing"`

	MaskDigest string `yaml:"mask_blake3" json:"mask_blake3"`
	DataDigest string `yaml:"data_blake3" json:"data_blake3"`

	Outputs map[string]string `yaml:"outputs,omitempty" json:"outputs,omitempty"`
}

// Report groups the entries of one run under a random run id.
type Report struct {
	RunID   string  `yaml:"run_id" json:"run_id"`
	Input   string  `yaml:"input,omitempty" json:"input,omitempty"`
	Entries []Entry `yaml:"entries" json:"entries"`
}

// New starts an empty report with a fresh run id.
func New(input string) *Report {
	return &Report{RunID: uuid.New().String(), Input: input}
}

// Add appends e.
func (r *Report) Add(e Entry) { r.Entries = append(r.Entries, e) }

// Summarize builds the entry for res. Identical results yield identical
// entries (digests included).
func Summarize(step string, res *corrupt.Result, ratio float64, seed int64) (Entry, error) {
	if res == nil || res.Mask == nil || res.Data == nil {
		return Entry{}, fmt.Errorf("Summarize: %w", tensor.ErrNilTensor)
	}
	l := res.Mask.Layout()
	perFeature := make([]int, l.Features)
	raw := res.Mask.Raw()
	for off, m := range raw {
		if m {
			perFeature[off%l.Features]++
		}
	}
	gaps, err := mask.Gaps(res.Mask, mask.Conn4)
	if err != nil {
		return Entry{}, fmt.Errorf("Summarize: %w", err)
	}
	longest := 0
	for _, g := range gaps {
		longest = max(longest, g.Steps())
	}
	cells := res.Mask.Len()
	return Entry{
		Step:           step,
		Mechanism:      res.Mechanism.String(),
		Ratio:          ratio,
		Seed:           seed,
		Shape:          res.Mask.Shape(),
		Cells:          cells,
		Existing:       res.Existing.Count(),
		Requested:      res.Requested,
		Achieved:       res.Achieved,
		Shortfall:      res.Shortfall(),
		Regions:        len(res.Regions),
		Gaps:           len(gaps),
		LongestGap:     longest,
		ExistingRate:   res.Existing.Rate(),
		MissingRate:    res.Rate(),
		FeatureMissing: perFeature,
		MaskDigest:     MaskDigest(res.Mask),
		DataDigest:     DataDigest(res.Data),
	}, nil
}

// MaskDigest returns the hex BLAKE3-256 of m's shape and bits.
func MaskDigest(m *mask.Mask) string {
	h := blake3.New()
	writeShape(h, m.Shape())
	buf := make([]byte, m.Len())
	for i, b := range m.Raw() {
		if b {
			buf[i] = 1
		}
	}
	_, _ = h.Write(buf)
	return hex.EncodeToString(h.Sum(nil))
}

// DataDigest returns the hex BLAKE3-256 of d's shape and IEEE-754 bits
// (little endian), so NaN payloads and signed zeros are distinguished.
func DataDigest(d *tensor.Dense) string {
	h := blake3.New()
	writeShape(h, d.Shape())
	buf := make([]byte, 8*d.Len())
	for i, v := range d.Raw() {
		binary.LittleEndian.PutUint64(buf[8*i:], math.Float64bits(v))
	}
	_, _ = h.Write(buf)
	return hex.EncodeToString(h.Sum(nil))
}

func writeShape(w io.Writer, s tensor.Shape) {
	var b [8]byte
	for _, n := range s {
		binary.LittleEndian.PutUint64(b[:], uint64(n))
		_, _ = w.Write(b[:])
	}
}

// WriteYAML encodes r as YAML.
func (r *Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("WriteYAML: %w", err)
	}
	return enc.Close()
}

// WriteJSON encodes r as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("WriteJSON: %w", err)
	}
	return nil
}
