// SPDX-License-Identifier: MIT

package density_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/uncertain/density"
	"github.com/katalvlaran/uncertain/weights"
)

// TestUncertainify_BlurDisabledIdentity: without blur the component mean
// is the input vector bit for bit.
func TestUncertainify_BlurDisabledIdentity(t *testing.T) {
	t.Parallel()

	gen, err := density.NewGaussianGenerator(
		density.WithStdDevRange(0.1, 5),
		density.WithLowerBoundRange(0, 10),
		density.WithUpperBoundRange(0, 10),
		density.WithSeed(3),
	)
	require.NoError(t, err)

	in := []float64{1.5, -2.25, 0, 1e9}
	for i := 0; i < 20; i++ {
		mix, err := gen.UncertainifyMixture(density.Float64s(in), false)
		require.NoError(t, err)
		require.Equal(t, 1, mix.Len())
		assert.Equal(t, in, mix.Component(0).Mean)
		assert.InDeltaSlice(t, in, mix.Mean(nil), 1e-6)
		assert.Equal(t, []int{density.DefaultWeightTotal}, mix.Weights())
	}
}

// TestUncertainify_DoesNotMutateInput guards the read-only contract.
func TestUncertainify_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	gen, err := density.NewGaussianGenerator(density.WithSeed(1), density.WithMultiplicity(2, 4))
	require.NoError(t, err)

	in := density.Float64s{3, 4, 5}
	_, err = gen.Uncertainify(in, true)
	require.NoError(t, err)
	assert.Equal(t, density.Float64s{3, 4, 5}, in)
}

// TestUncertainify_Shape checks multiplicity range, stddev range, weight
// sum and the blur window for every generated component.
func TestUncertainify_Shape(t *testing.T) {
	t.Parallel()

	const (
		sdMin, sdMax = 0.5, 1.5
		loMax, upMax = 2.0, 3.0
	)
	gen, err := density.NewGaussianGenerator(
		density.WithStdDevRange(sdMin, sdMax),
		density.WithLowerBoundRange(1, loMax),
		density.WithUpperBoundRange(1, upMax),
		density.WithMultiplicity(2, 5),
		density.WithWeightTotal(1000),
		density.WithSeed(2024),
	)
	require.NoError(t, err)

	in := []float64{10, -10, 0}
	seen := map[int]bool{}
	for i := 0; i < 200; i++ {
		mix, err := gen.UncertainifyMixture(density.Float64s(in), true)
		require.NoError(t, err)

		k := mix.Len()
		require.True(t, k >= 2 && k <= 5, "multiplicity %d", k)
		seen[k] = true
		require.Equal(t, 1000, weights.Sum(mix.Weights()))
		require.Equal(t, 1000, mix.WeightTotal())

		for h := 0; h < k; h++ {
			c := mix.Component(h)
			for d, v := range in {
				require.True(t, c.StdDev[d] >= sdMin && c.StdDev[d] <= sdMax)
				// Either inside the drawn window (subset of the widest one)
				// or clamped at v - lower·sd / v + upper·sd.
				require.True(t, c.Mean[d] >= v-loMax*sdMax && c.Mean[d] <= v+upMax*sdMax,
					"mean %g too far from %g", c.Mean[d], v)
			}
		}
	}
	assert.Len(t, seen, 4, "every multiplicity in [2,5] should occur")
}

// TestUncertainify_BlurFallbackClamp: windows too narrow to ever hit force
// the coin-flip clamp, including for a zero input.
func TestUncertainify_BlurFallbackClamp(t *testing.T) {
	t.Parallel()

	const eps = 1e-12
	gen, err := density.NewGaussianGenerator(
		density.WithStdDevRange(1, 1),
		density.WithLowerBoundRange(eps, eps),
		density.WithUpperBoundRange(eps, eps),
		density.WithSeed(8),
	)
	require.NoError(t, err)

	lowSide, highSide := 0, 0
	for i := 0; i < 50; i++ {
		mix, err := gen.UncertainifyMixture(density.Float64s{0, 5}, true)
		require.NoError(t, err)
		m := mix.Component(0).Mean
		switch m[0] {
		case -eps:
			lowSide++
		case eps:
			highSide++
		default:
			t.Fatalf("mean[0]=%g is not a clamp value", m[0])
		}
		require.Contains(t, []float64{5 - eps, 5 + eps}, m[1])
	}
	assert.Greater(t, lowSide, 0)
	assert.Greater(t, highSide, 0)
}

// TestUncertainify_Deterministic: equal seeds give equal mixtures.
func TestUncertainify_Deterministic(t *testing.T) {
	t.Parallel()

	mk := func() *density.GaussianGenerator {
		g, err := density.NewGaussianGenerator(density.WithSeed(11), density.WithMultiplicity(1, 3))
		require.NoError(t, err)
		return g
	}
	a, b := mk(), mk()
	for i := 0; i < 10; i++ {
		ma, err := a.UncertainifyMixture(density.Ints{1, 2}, true)
		require.NoError(t, err)
		mb, err := b.UncertainifyMixture(density.Ints{1, 2}, true)
		require.NoError(t, err)
		require.Equal(t, ma, mb)
	}
}

// TestUncertainify_Errors covers empty input and invalid configs.
func TestUncertainify_Errors(t *testing.T) {
	t.Parallel()

	gen, err := density.NewGaussianGenerator()
	require.NoError(t, err)
	_, err = gen.Uncertainify(density.Float64s{}, true)
	assert.ErrorIs(t, err, density.ErrEmptySequence)
	_, err = gen.Uncertainify(nil, false)
	assert.ErrorIs(t, err, density.ErrEmptySequence)

	bad := density.DefaultConfig()
	bad.MinStdDev, bad.MaxStdDev = 2, 1
	_, err = density.NewGaussianGenerator(density.WithConfig(bad))
	assert.ErrorIs(t, err, density.ErrInvalidConfig)
}

// TestConfig_Validate exercises each range check.
func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, density.DefaultConfig().Validate())

	tests := []struct {
		name   string
		mutate func(*density.Config)
	}{
		{"stddev inverted", func(c *density.Config) { c.MinStdDev = 5 }},
		{"stddev negative", func(c *density.Config) { c.MinStdDev = -1 }},
		{"lower inverted", func(c *density.Config) { c.MaxLowerBound = 0 }},
		{"upper inverted", func(c *density.Config) { c.MinUpperBound = 9 }},
		{"multiplicity zero", func(c *density.Config) { c.MultiplicityMin = 0 }},
		{"multiplicity inverted", func(c *density.Config) { c.MultiplicityMax = 0 }},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			c := density.DefaultConfig()
			tc.mutate(&c)
			assert.ErrorIs(t, c.Validate(), density.ErrInvalidConfig)
		})
	}
}

// TestOptions_Panics verifies option constructors reject nonsense early.
func TestOptions_Panics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { density.WithStdDevRange(2, 1) })
	assert.Panics(t, func() { density.WithLowerBoundRange(-1, 1) })
	assert.Panics(t, func() { density.WithUpperBoundRange(0, -1) })
	assert.Panics(t, func() { density.WithMultiplicity(0, 1) })
	assert.Panics(t, func() { density.WithMultiplicity(3, 2) })
	assert.Panics(t, func() { density.WithSource(nil) })
	assert.Panics(t, func() { density.WithWeightTotal(0) })
}

// TestOptions_SeedAndConfigOrder: the last seed-bearing option wins.
func TestOptions_SeedAndConfigOrder(t *testing.T) {
	t.Parallel()

	c := density.DefaultConfig()
	c.Seed = 99
	a, err := density.NewGaussianGenerator(density.WithSeed(1), density.WithConfig(c))
	require.NoError(t, err)
	b, err := density.NewGaussianGenerator(density.WithSeed(99))
	require.NoError(t, err)
	assert.Equal(t, uint64(99), a.Config().Seed)

	ma, err := a.UncertainifyMixture(density.Float64s{1}, true)
	require.NoError(t, err)
	mb, err := b.UncertainifyMixture(density.Float64s{1}, true)
	require.NoError(t, err)
	assert.Equal(t, ma, mb)
}
