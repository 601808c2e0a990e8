// SPDX-License-Identifier: MIT
// Package: uncertain/density
//
// config.go - the uncertainification parameter record.
//
// Defaults mirror the classic setup: stddev 1, deviation windows of 3,
// a single component per object, seed 5.

package density

import (
	"fmt"
	"math"
)

const methodValidate = "Config.Validate"

// Config bundles the uncertainification parameters.
//
// Fields:
//   - MinStdDev/MaxStdDev: per-dimension stddev range.
//   - MinLowerBound/MaxLowerBound: magnitude range of the negative-direction window.
//   - MinUpperBound/MaxUpperBound: magnitude range of the positive-direction window.
//   - MultiplicityMin/MultiplicityMax: inclusive component-count range.
//   - Seed: seed for the generator's own source.
type Config struct {
	MinStdDev       float64
	MaxStdDev       float64
	MinLowerBound   float64
	MaxLowerBound   float64
	MinUpperBound   float64
	MaxUpperBound   float64
	MultiplicityMin int
	MultiplicityMax int
	Seed            uint64
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		MinStdDev:       DefaultStdDev,
		MaxStdDev:       DefaultStdDev,
		MinLowerBound:   DefaultBoundMagnitude,
		MaxLowerBound:   DefaultBoundMagnitude,
		MinUpperBound:   DefaultBoundMagnitude,
		MaxUpperBound:   DefaultBoundMagnitude,
		MultiplicityMin: DefaultMultiplicity,
		MultiplicityMax: DefaultMultiplicity,
		Seed:            DefaultSeed,
	}
}

// Validate checks every range: finite, non-negative, min ≤ max, and
// MultiplicityMin ≥ 1.
func (c Config) Validate() error {
	if err := validateRange("stddev", c.MinStdDev, c.MaxStdDev); err != nil {
		return err
	}
	if err := validateRange("lower bound", c.MinLowerBound, c.MaxLowerBound); err != nil {
		return err
	}
	if err := validateRange("upper bound", c.MinUpperBound, c.MaxUpperBound); err != nil {
		return err
	}
	if c.MultiplicityMin < 1 || c.MultiplicityMax < c.MultiplicityMin {
		return fmt.Errorf("%s: multiplicity [%d,%d]: %w",
			methodValidate, c.MultiplicityMin, c.MultiplicityMax, ErrInvalidConfig)
	}

	return nil
}

func validateRange(name string, lo, hi float64) error {
	if !isFiniteNonNeg(lo) || !isFiniteNonNeg(hi) || lo > hi {
		return fmt.Errorf("%s: %s range [%g,%g]: %w", methodValidate, name, lo, hi, ErrInvalidConfig)
	}

	return nil
}

func isFiniteNonNeg(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
