// SPDX-License-Identifier: MIT
// Package: uncertain/density
//
// options.go - functional options for generators.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs
//     (min > max, negative magnitudes, nil source). Generators never panic.
//   • Later options override earlier ones.
//   • A generator without WithSource draws from random.New(cfg.Seed).

package density

import (
	"fmt"

	"github.com/katalvlaran/uncertain/random"
)

// Option customizes a generator before construction.
type Option func(*generatorConfig)

// generatorConfig is the resolved generator state.
type generatorConfig struct {
	cfg         Config
	src         random.Source
	weightTotal int
}

// newGeneratorConfig applies opts over the defaults and resolves the source.
func newGeneratorConfig(opts ...Option) generatorConfig {
	gc := generatorConfig{
		cfg:         DefaultConfig(),
		weightTotal: DefaultWeightTotal,
	}
	for _, opt := range opts {
		opt(&gc)
	}
	if gc.src == nil {
		gc.src = random.New(gc.cfg.Seed)
	}

	return gc
}

// WithConfig replaces the whole parameter record. It is validated when
// the generator is built, so records loaded from files surface errors
// instead of panics.
func WithConfig(c Config) Option {
	return func(gc *generatorConfig) {
		gc.cfg = c
	}
}

// WithStdDevRange sets the per-dimension stddev range. Panics on invalid range.
func WithStdDevRange(min, max float64) Option {
	mustRange("WithStdDevRange", min, max)
	return func(gc *generatorConfig) {
		gc.cfg.MinStdDev, gc.cfg.MaxStdDev = min, max
	}
}

// WithLowerBoundRange sets the magnitude range of the negative-direction
// window. Panics on invalid range.
func WithLowerBoundRange(min, max float64) Option {
	mustRange("WithLowerBoundRange", min, max)
	return func(gc *generatorConfig) {
		gc.cfg.MinLowerBound, gc.cfg.MaxLowerBound = min, max
	}
}

// WithUpperBoundRange sets the magnitude range of the positive-direction
// window. Panics on invalid range.
func WithUpperBoundRange(min, max float64) Option {
	mustRange("WithUpperBoundRange", min, max)
	return func(gc *generatorConfig) {
		gc.cfg.MinUpperBound, gc.cfg.MaxUpperBound = min, max
	}
}

// WithMultiplicity sets the inclusive component-count range.
// Panics unless 1 ≤ min ≤ max.
func WithMultiplicity(min, max int) Option {
	if min < 1 || max < min {
		panic(fmt.Sprintf("density: WithMultiplicity: require 1 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}
	return func(gc *generatorConfig) {
		gc.cfg.MultiplicityMin, gc.cfg.MultiplicityMax = min, max
	}
}

// WithSeed seeds the generator's own source (deterministic). It drops a
// source attached by an earlier WithSource.
func WithSeed(seed uint64) Option {
	return func(gc *generatorConfig) {
		gc.cfg.Seed = seed
		gc.src = nil
	}
}

// WithSource attaches an explicit source. Panics on nil.
func WithSource(src random.Source) Option {
	if src == nil {
		panic("density: WithSource(nil)")
	}
	return func(gc *generatorConfig) {
		gc.src = src
	}
}

// WithWeightTotal sets the integer budget split across components.
// Panics if total < 1.
func WithWeightTotal(total int) Option {
	if total < 1 {
		panic(fmt.Sprintf("density: WithWeightTotal: total must be ≥ 1, got %d", total))
	}
	return func(gc *generatorConfig) {
		gc.weightTotal = total
	}
}

func mustRange(method string, min, max float64) {
	if !isFiniteNonNeg(min) || !isFiniteNonNeg(max) || max < min {
		panic(fmt.Sprintf("density: %s: require 0 ≤ min ≤ max, got min=%g, max=%g", method, min, max))
	}
}
