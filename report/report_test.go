// SPDX-License-Identifier: MIT

package report_test

import (
	"bytes"
	"encoding/json"
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/grinder/corrupt"
	"github.com/katalvlaran/grinder/report"
	"github.com/katalvlaran/grinder/tensor"
)

func run(t *testing.T, seed int64) *corrupt.Result {
	t.Helper()
	d, err := tensor.New(12, 3)
	require.NoError(t, err)
	for i := range d.Raw() {
		d.Raw()[i] = float64(i)
	}
	d.Raw()[5] = math.NaN()
	res, err := corrupt.Block(d, 0.25, corrupt.WithSeed(seed))
	require.NoError(t, err)
	return res
}

func TestSummarize(t *testing.T) {
	e, err := report.Summarize("gaps", run(t, 1), 0.25, 1)
	require.NoError(t, err)
	assert.Equal(t, "block", e.Mechanism)
	assert.Equal(t, []int{12, 3}, e.Shape)
	assert.Equal(t, 36, e.Cells)
	assert.Equal(t, 1, e.Existing)
	assert.Equal(t, 8, e.Requested)
	assert.Equal(t, e.Requested, e.Achieved)
	assert.Equal(t, []int{3, 3, 3}, e.FeatureMissing)
	assert.InDelta(t, 9.0/36, e.MissingRate, 1e-12)
	assert.Len(t, e.MaskDigest, 64)
	assert.Positive(t, e.Gaps)
	assert.LessOrEqual(t, e.Gaps, 9)
	assert.GreaterOrEqual(t, e.LongestGap, 1)

	_, err = report.Summarize("x", nil, 0, 0)
	assert.ErrorIs(t, err, tensor.ErrNilTensor)
}

// TestDigests_Deterministic: equal seeds ⇒ equal fingerprints.
func TestDigests_Deterministic(t *testing.T) {
	a, err := report.Summarize("", run(t, 7), 0.25, 7)
	require.NoError(t, err)
	b, err := report.Summarize("", run(t, 7), 0.25, 7)
	require.NoError(t, err)
	c, err := report.Summarize("", run(t, 8), 0.25, 8)
	require.NoError(t, err)

	assert.Equal(t, a.MaskDigest, b.MaskDigest)
	assert.Equal(t, a.DataDigest, b.DataDigest)
	assert.NotEqual(t, a.MaskDigest, c.MaskDigest)
	assert.NotEqual(t, a.MaskDigest, a.DataDigest)
}

func TestReport_Encode(t *testing.T) {
	r := report.New("in.csv")
	_, err := uuid.Parse(r.RunID)
	require.NoError(t, err)
	assert.NotEqual(t, r.RunID, report.New("in.csv").RunID)

	e, err := report.Summarize("gaps", run(t, 1), 0.25, 1)
	require.NoError(t, err)
	e.Outputs = map[string]string{"data": "gaps.csv"}
	r.Add(e)

	var y bytes.Buffer
	require.NoError(t, r.WriteYAML(&y))
	var back report.Report
	require.NoError(t, yaml.Unmarshal(y.Bytes(), &back))
	assert.Equal(t, *r, back)

	var j bytes.Buffer
	require.NoError(t, r.WriteJSON(&j))
	var jb report.Report
	require.NoError(t, json.Unmarshal(j.Bytes(), &jb))
	assert.Equal(t, r.Entries[0].DataDigest, jb.Entries[0].DataDigest)
}
