// SPDX-License-Identifier: MIT
// Package: uncertain/config
//
// config.go - YAML settings → density.Config → density.Uncertainifier.

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/uncertain/density"
)

const (
	methodParse     = "Parse"
	methodLoad      = "Load"
	methodValidate  = "File.Validate"
	methodGenerator = "File.Generator"
)

// Density kinds understood by Generator.
const (
	KindGaussian = "gaussian"
	KindUniform  = "uniform"
)

// Range is an inclusive [Min, Max] pair.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// IntRange is an inclusive integer [Min, Max] pair.
type IntRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// File is the on-disk settings document.
type File struct {
	Density      string   `yaml:"density"`
	Blur         bool     `yaml:"blur"`
	Seed         uint64   `yaml:"seed"`
	WeightTotal  int      `yaml:"weight_total"`
	StdDev       Range    `yaml:"stddev"`
	LowerBound   Range    `yaml:"lower_bound"`
	UpperBound   Range    `yaml:"upper_bound"`
	Multiplicity IntRange `yaml:"multiplicity"`
}

// Default returns the settings used when no file is given.
func Default() File {
	c := density.DefaultConfig()

	return File{
		Density:      KindGaussian,
		Blur:         true,
		Seed:         c.Seed,
		WeightTotal:  density.DefaultWeightTotal,
		StdDev:       Range{Min: c.MinStdDev, Max: c.MaxStdDev},
		LowerBound:   Range{Min: c.MinLowerBound, Max: c.MaxLowerBound},
		UpperBound:   Range{Min: c.MinUpperBound, Max: c.MaxUpperBound},
		Multiplicity: IntRange{Min: c.MultiplicityMin, Max: c.MultiplicityMax},
	}
}

// Parse decodes data over Default() and validates the result.
// An empty document yields the defaults.
func Parse(data []byte) (File, error) {
	f := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return File{}, fmt.Errorf("%s: %w: %v", methodParse, ErrDecode, err)
	}
	f.Density = strings.ToLower(strings.TrimSpace(f.Density))
	if err := f.Validate(); err != nil {
		return File{}, fmt.Errorf("%s: %w", methodParse, err)
	}

	return f, nil
}

// Load reads and parses the file at path.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("%s: %w", methodLoad, err)
	}

	return Parse(data)
}

// Validate checks the density kind, the weight total and every range.
func (f File) Validate() error {
	switch f.Density {
	case KindGaussian, KindUniform:
	default:
		return fmt.Errorf("%s: %q: %w", methodValidate, f.Density, ErrUnknownDensity)
	}
	if f.WeightTotal < 1 {
		return fmt.Errorf("%s: weight_total=%d: %w", methodValidate, f.WeightTotal, ErrInvalidWeightTotal)
	}
	if err := f.DensityConfig().Validate(); err != nil {
		return fmt.Errorf("%s: %w", methodValidate, err)
	}

	return nil
}

// DensityConfig projects the settings onto density.Config.
func (f File) DensityConfig() density.Config {
	return density.Config{
		MinStdDev:       f.StdDev.Min,
		MaxStdDev:       f.StdDev.Max,
		MinLowerBound:   f.LowerBound.Min,
		MaxLowerBound:   f.LowerBound.Max,
		MinUpperBound:   f.UpperBound.Min,
		MaxUpperBound:   f.UpperBound.Max,
		MultiplicityMin: f.Multiplicity.Min,
		MultiplicityMax: f.Multiplicity.Max,
		Seed:            f.Seed,
	}
}

// Generator builds the density generator the settings describe.
func (f File) Generator() (density.Uncertainifier, error) {
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodGenerator, err)
	}
	opts := []density.Option{
		density.WithConfig(f.DensityConfig()),
		density.WithWeightTotal(f.WeightTotal),
	}
	if f.Density == KindUniform {
		return density.NewUniformGenerator(opts...)
	}

	return density.NewGaussianGenerator(opts...)
}
