// SPDX-License-Identifier: MIT
// Package: uncertain/density
//
// impl_gaussian_uncertainify.go - GaussianGenerator: vector → mixture.
//
// Algorithm (draw order is part of the determinism contract):
//  1. M ~ U{MultiplicityMin..MultiplicityMax}.
//  2. weights.Random(M, weightTotal).
//  3. Per component: lower ~ U[MinLowerBound,MaxLowerBound],
//     upper ~ U[MinUpperBound,MaxUpperBound]; then per dimension
//     stddev ~ U[MinStdDev,MaxStdDev] and, when blurring, the blurred mean.
//  4. Assemble a GaussianMixture from the components and weights.
//
// Blur (per coordinate v):
//   - Up to TryLimit candidates v + stddev·N(0,1); the first inside
//     [v-lower, v+upper] wins.
//   - If none does, a fair coin picks v - lower·stddev or v + upper·stddev.
//     Exhaustion is tracked explicitly, so a legitimately blurred 0.0 is
//     never mistaken for a failure.

package density

import (
	"fmt"

	"github.com/katalvlaran/uncertain/random"
	"github.com/katalvlaran/uncertain/weights"
)

const (
	methodNewGaussianGenerator = "NewGaussianGenerator"
	methodGaussianUncertainify = "GaussianGenerator.Uncertainify"
)

// GaussianGenerator uncertainifies vectors into Gaussian mixtures.
// It owns its random source and is not safe for concurrent use.
type GaussianGenerator struct {
	cfg         Config
	src         random.Source
	weightTotal int
}

var _ Uncertainifier = (*GaussianGenerator)(nil)

// NewGaussianGenerator resolves opts and validates the resulting Config.
func NewGaussianGenerator(opts ...Option) (*GaussianGenerator, error) {
	gc := newGeneratorConfig(opts...)
	if err := gc.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodNewGaussianGenerator, err)
	}

	return &GaussianGenerator{cfg: gc.cfg, src: gc.src, weightTotal: gc.weightTotal}, nil
}

// Config returns the generator's parameter record.
func (g *GaussianGenerator) Config() Config { return g.cfg }

// Uncertainify implements Uncertainifier.
func (g *GaussianGenerator) Uncertainify(seq Sequence, blur bool) (Density, error) {
	return g.UncertainifyMixture(seq, blur)
}

// UncertainifyMixture builds a new mixture around seq. seq is only read.
func (g *GaussianGenerator) UncertainifyMixture(seq Sequence, blur bool) (*GaussianMixture, error) {
	if seq == nil || seq.Len() == 0 {
		return nil, fmt.Errorf("%s: %w", methodGaussianUncertainify, ErrEmptySequence)
	}
	dim := seq.Len()
	cfg := g.cfg

	multiplicity := g.src.IntN(cfg.MultiplicityMax-cfg.MultiplicityMin+1) + cfg.MultiplicityMin
	w, err := weights.Random(multiplicity, g.weightTotal, g.src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodGaussianUncertainify, err)
	}

	comps := make([]Component, multiplicity)
	var lower, upper, v float64
	for h := range comps {
		lower = random.Uniform(g.src, cfg.MinLowerBound, cfg.MaxLowerBound)
		upper = random.Uniform(g.src, cfg.MinUpperBound, cfg.MaxUpperBound)

		mean := make([]float64, dim)
		stddev := make([]float64, dim)
		for i := 0; i < dim; i++ {
			stddev[i] = random.Uniform(g.src, cfg.MinStdDev, cfg.MaxStdDev)
			v = seq.At(i)
			if blur {
				mean[i] = blurValue(g.src, v, stddev[i], lower, upper)
			} else {
				mean[i] = v
			}
		}
		comps[h] = Component{Mean: mean, StdDev: stddev}
	}

	mix, err := NewGaussianMixture(comps, w)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodGaussianUncertainify, err)
	}

	return mix, nil
}

// blurValue perturbs v inside [v-lower, v+upper], falling back to a
// coin-flip clamp at v-lower·stddev or v+upper·stddev.
func blurValue(src random.Source, v, stddev, lower, upper float64) float64 {
	var candidate float64
	for attempt := 0; attempt < TryLimit; attempt++ {
		candidate = src.NormFloat64()*stddev + v
		if candidate >= v-lower && candidate <= v+upper {
			return candidate
		}
	}
	if src.IntN(2) == 1 {
		return v - lower*stddev
	}

	return v + upper*stddev
}
