package rng_test

import (
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grinder/rng"
)

// TestNew_SeedDeterminism checks that two sources built from the same seed
// produce identical sequences across every draw kind.
func TestNew_SeedDeterminism(t *testing.T) {
	a, b := rng.New(42), rng.New(42)

	assert.Equal(t, a.Uniform(16), b.Uniform(16), "uniform draws must match")
	assert.Equal(t, a.Permutation(20), b.Permutation(20), "permutations must match")

	ca, err := a.Choice(50, 10, false)
	require.NoError(t, err)
	cb, err := b.Choice(50, 10, false)
	require.NoError(t, err)
	assert.Equal(t, ca, cb, "choices must match")
}

// TestNew_ZeroSeedUsesDefault verifies the seed==0 policy.
func TestNew_ZeroSeedUsesDefault(t *testing.T) {
	assert.Equal(t, rng.New(rng.DefaultSeed).Uniform(8), rng.New(0).Uniform(8))
}

// TestUniform_Range ensures all draws fall into [0,1).
func TestUniform_Range(t *testing.T) {
	u := rng.New(7).Uniform(1000)
	require.Len(t, u, 1000)
	for _, v := range u {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
	assert.Empty(t, rng.New(7).Uniform(0))
	assert.Empty(t, rng.New(7).Uniform(-3))
}

// TestPermutation_IsPermutation checks that every index appears exactly once.
func TestPermutation_IsPermutation(t *testing.T) {
	p := rng.New(3).Permutation(100)
	require.Len(t, p, 100)
	sorted := append([]int(nil), p...)
	sort.Ints(sorted)
	for i, v := range sorted {
		assert.Equal(t, i, v)
	}
}

// TestChoice_WithoutReplacementDistinct checks distinctness and bounds.
func TestChoice_WithoutReplacementDistinct(t *testing.T) {
	c, err := rng.New(11).Choice(30, 30, false)
	require.NoError(t, err)
	seen := make(map[int]bool, len(c))
	for _, v := range c {
		assert.False(t, seen[v], "duplicate index %d", v)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 30)
		seen[v] = true
	}
	assert.Len(t, seen, 30)
}

// TestChoice_WithReplacementBounds checks bounds when duplicates are allowed.
func TestChoice_WithReplacementBounds(t *testing.T) {
	c, err := rng.New(5).Choice(3, 50, true)
	require.NoError(t, err)
	require.Len(t, c, 50)
	for _, v := range c {
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 3)
	}
}

// TestChoice_Errors covers the invalid-argument table.
func TestChoice_Errors(t *testing.T) {
	tests := []struct {
		name       string
		population int
		k          int
		replace    bool
	}{
		{"negative population", -1, 1, false},
		{"negative k", 5, -1, false},
		{"k above population", 3, 4, false},
		{"empty population", 0, 2, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := rng.New(1).Choice(tc.population, tc.k, tc.replace)
			assert.ErrorIs(t, err, rng.ErrInvalidArgument)
		})
	}

	c, err := rng.New(1).Choice(0, 0, false)
	require.NoError(t, err)
	assert.Empty(t, c)
}

// TestDerive_IndependentStreams checks that substreams differ from each other
// and are reproducible from the same parent seed.
func TestDerive_IndependentStreams(t *testing.T) {
	s1 := rng.Derive(rng.New(9), 1).Uniform(4)
	s2 := rng.Derive(rng.New(9), 2).Uniform(4)
	s1again := rng.Derive(rng.New(9), 1).Uniform(4)

	assert.NotEqual(t, s1, s2)
	assert.Equal(t, s1, s1again)
	assert.Equal(t, rng.Derive(nil, 3).Uniform(4), rng.Derive(nil, 3).Uniform(4))
}

// TestLocked_ConcurrentUse exercises the locked wrapper from several goroutines;
// run with -race to validate the synchronization.
func TestLocked_ConcurrentUse(t *testing.T) {
	l := rng.NewLocked(rng.New(2))
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				_ = l.Float64()
				_ = l.Intn(10)
				_, _ = l.Choice(10, 3, false)
			}
		}()
	}
	wg.Wait()

	// Sequential use of a locked stream matches the wrapped source exactly.
	assert.Equal(t, rng.New(4).Permutation(10), rng.NewLocked(rng.New(4)).Permutation(10))
}

// TestNormFloat64_Deterministic checks the normal draws used by series
// generators follow the seed like every other draw.
func TestNormFloat64_Deterministic(t *testing.T) {
	a, b := rng.New(3), rng.New(3)
	for i := 0; i < 32; i++ {
		assert.Equal(t, a.NormFloat64(), b.NormFloat64())
	}
}

// TestNew_GoldenSequence pins concrete draws for seed 42, so a change of
// generator or draw order shows up as a failure rather than silently
// producing different masks.
func TestNew_GoldenSequence(t *testing.T) {
	assert.Equal(t, []int{4, 5, 7, 3, 0, 6, 2, 1}, rng.New(42).Permutation(8))

	c, err := rng.New(42).Choice(10, 4, false)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 9, 6, 4}, c)

	assert.Equal(t, []float64{0.3730283610466326, 0.06600049679351791, 0.604093851558642}, rng.New(42).Uniform(3))
}
