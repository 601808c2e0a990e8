// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/uncertain/config"
	"github.com/katalvlaran/uncertain/density"
)

func TestParse_EmptyKeepsDefaults(t *testing.T) {
	t.Parallel()

	f, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), f)
	assert.Equal(t, density.DefaultConfig(), f.DensityConfig())
	assert.True(t, f.Blur)
}

func TestParse_Overrides(t *testing.T) {
	t.Parallel()

	doc := []byte(`
density: Uniform
blur: false
seed: 42
weight_total: 500
stddev: {min: 0.5, max: 2}
lower_bound: {min: 1, max: 4}
multiplicity: {min: 2, max: 3}
`)
	f, err := config.Parse(doc)
	require.NoError(t, err)

	assert.Equal(t, config.KindUniform, f.Density)
	assert.False(t, f.Blur)
	assert.Equal(t, 500, f.WeightTotal)

	c := f.DensityConfig()
	assert.Equal(t, uint64(42), c.Seed)
	assert.Equal(t, 0.5, c.MinStdDev)
	assert.Equal(t, 4.0, c.MaxLowerBound)
	assert.Equal(t, 3.0, c.MinUpperBound, "untouched keys keep defaults")
	assert.Equal(t, 2, c.MultiplicityMin)
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"unknown key", "sigma: 3\n", config.ErrDecode},
		{"bad syntax", "stddev: [\n", config.ErrDecode},
		{"unknown density", "density: cauchy\n", config.ErrUnknownDensity},
		{"zero weight total", "weight_total: 0\n", config.ErrInvalidWeightTotal},
		{"inverted range", "stddev: {min: 3, max: 1}\n", density.ErrInvalidConfig},
		{"zero multiplicity", "multiplicity: {min: 0, max: 2}\n", density.ErrInvalidConfig},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := config.Parse([]byte(tc.doc))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: 7\n"), 0o600))

	f, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), f.Seed)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestGenerator_Kinds(t *testing.T) {
	t.Parallel()

	f := config.Default()
	g, err := f.Generator()
	require.NoError(t, err)
	assert.IsType(t, &density.GaussianGenerator{}, g)

	f.Density = config.KindUniform
	g, err = f.Generator()
	require.NoError(t, err)
	assert.IsType(t, &density.UniformGenerator{}, g)

	f.Density = "laplace"
	_, err = f.Generator()
	assert.ErrorIs(t, err, config.ErrUnknownDensity)
}

func TestGenerator_WeightTotalApplies(t *testing.T) {
	t.Parallel()

	f, err := config.Parse([]byte("weight_total: 77\nmultiplicity: {min: 3, max: 3}\n"))
	require.NoError(t, err)
	g, err := f.Generator()
	require.NoError(t, err)

	d, err := g.Uncertainify(density.Float64s{1, 2}, true)
	require.NoError(t, err)
	mix := d.(*density.GaussianMixture)
	assert.Equal(t, 3, mix.Len())
	assert.Equal(t, 77, mix.WeightTotal())
}
