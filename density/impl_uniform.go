// SPDX-License-Identifier: MIT
// Package: uncertain/density
//
// impl_uniform.go - uniform density over a single box, and its generator.
//
// Canonical model:
//   - The support is an axis-aligned box [lo, hi].
//   - Draw samples every coordinate from U[lo_i, hi_i) and keeps the point
//     only if it lies inside the caller's bounds (TryLimit attempts).
//   - Mean is the box center; DefaultBounds is the box itself.
//
// Uncertainify (per dimension, value v):
//   - lower ~ U[MinLowerBound,MaxLowerBound], upper ~ U[MinUpperBound,MaxUpperBound].
//   - blur: center = v + U[-lower, upper); otherwise center = v.
//   - support = [center-lower, center+upper].
//   Stddev and multiplicity settings do not apply to this density.

package density

import (
	"fmt"

	"github.com/katalvlaran/uncertain/bounds"
	"github.com/katalvlaran/uncertain/random"
)

const (
	methodNewUniformBox       = "NewUniformBox"
	methodNewUniformGenerator = "NewUniformGenerator"
	methodUniformUncertainify = "UniformGenerator.Uncertainify"
)

// UniformBox is the uniform density over an immutable box.
type UniformBox struct {
	support *bounds.Box
}

var _ Density = (*UniformBox)(nil)

// NewUniformBox returns a uniform density over [lo, hi].
func NewUniformBox(lo, hi []float64) (*UniformBox, error) {
	b, err := bounds.NewBox(lo, hi)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodNewUniformBox, err)
	}

	return &UniformBox{support: b}, nil
}

// Support returns the density's box.
func (u *UniformBox) Support() *bounds.Box { return u.support }

// Dimensionality returns the box dimensionality.
func (u *UniformBox) Dimensionality() int { return u.support.Dimensionality() }

// Draw samples uniformly inside the support and rejects points outside b.
func (u *UniformBox) Draw(b bounds.Bounds, src random.Source) ([]float64, bool) {
	dim := u.support.Dimensionality()
	if b == nil || src == nil || b.Dimensionality() != dim {
		return nil, false
	}

	values := make([]float64, dim)
	var inBounds bool
	for attempt := 0; attempt < TryLimit; attempt++ {
		inBounds = true
		for i := range values {
			values[i] = random.Uniform(src, u.support.Min(i), u.support.Max(i))
			inBounds = inBounds && values[i] <= b.Max(i) && values[i] >= b.Min(i)
		}
		if inBounds {
			return values, true
		}
	}

	return nil, false
}

// Mean returns the support's center, sized to b (or the support if nil).
func (u *UniformBox) Mean(b bounds.Bounds) []float64 {
	dims := u.support.Dimensionality()
	if b != nil {
		dims = b.Dimensionality()
	}
	out := make([]float64, dims)
	for i := 0; i < min(dims, u.support.Dimensionality()); i++ {
		out[i] = u.support.Center(i)
	}

	return out
}

// DefaultBounds returns the support itself.
func (u *UniformBox) DefaultBounds(dims int) (*bounds.Box, error) {
	if dims != u.support.Dimensionality() {
		return nil, fmt.Errorf("%s: dims=%d, box=%d: %w",
			methodDefaultBounds, dims, u.support.Dimensionality(), ErrDimensionMismatch)
	}

	return u.support, nil
}

// UniformGenerator uncertainifies vectors into UniformBox densities.
// It owns its random source and is not safe for concurrent use.
type UniformGenerator struct {
	cfg Config
	src random.Source
}

var _ Uncertainifier = (*UniformGenerator)(nil)

// NewUniformGenerator resolves opts and validates the resulting Config.
func NewUniformGenerator(opts ...Option) (*UniformGenerator, error) {
	gc := newGeneratorConfig(opts...)
	if err := gc.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodNewUniformGenerator, err)
	}

	return &UniformGenerator{cfg: gc.cfg, src: gc.src}, nil
}

// Config returns the generator's parameter record.
func (g *UniformGenerator) Config() Config { return g.cfg }

// Uncertainify implements Uncertainifier.
func (g *UniformGenerator) Uncertainify(seq Sequence, blur bool) (Density, error) {
	return g.UncertainifyBox(seq, blur)
}

// UncertainifyBox builds a new UniformBox around seq.
func (g *UniformGenerator) UncertainifyBox(seq Sequence, blur bool) (*UniformBox, error) {
	if seq == nil || seq.Len() == 0 {
		return nil, fmt.Errorf("%s: %w", methodUniformUncertainify, ErrEmptySequence)
	}

	dim := seq.Len()
	lo := make([]float64, dim)
	hi := make([]float64, dim)
	var lower, upper, center float64
	for i := 0; i < dim; i++ {
		lower = random.Uniform(g.src, g.cfg.MinLowerBound, g.cfg.MaxLowerBound)
		upper = random.Uniform(g.src, g.cfg.MinUpperBound, g.cfg.MaxUpperBound)
		center = seq.At(i)
		if blur {
			center += random.Uniform(g.src, -lower, upper)
		}
		lo[i], hi[i] = center-lower, center+upper
	}

	box, err := NewUniformBox(lo, hi)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodUniformUncertainify, err)
	}

	return box, nil
}
