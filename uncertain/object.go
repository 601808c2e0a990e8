// SPDX-License-Identifier: MIT
// Package: uncertain
//
// object.go - Object: bounds + density + owned random source.
//
// Invariant:
//   - bounds.Dimensionality() == dims == density.Dimensionality().
//   - All three are fixed at construction; only the source advances.

package uncertain

import (
	"fmt"

	"github.com/katalvlaran/uncertain/bounds"
	"github.com/katalvlaran/uncertain/density"
	"github.com/katalvlaran/uncertain/random"
)

const (
	methodNew            = "New"
	methodNewFromDensity = "NewFromDensity"
	methodValue          = "Value"
)

// Object is an uncertain point.
type Object struct {
	bounds  bounds.Bounds
	density density.Density
	src     random.Source
	dims    int
}

// New builds an object from explicit bounds and density.
// Returns ErrNilBounds, ErrNilDensity or ErrDimensionMismatch.
func New(b bounds.Bounds, d density.Density, opts ...Option) (*Object, error) {
	if b == nil {
		return nil, fmt.Errorf("%s: %w", methodNew, ErrNilBounds)
	}
	if d == nil {
		return nil, fmt.Errorf("%s: %w", methodNew, ErrNilDensity)
	}
	if b.Dimensionality() != d.Dimensionality() {
		return nil, fmt.Errorf("%s: bounds=%d, density=%d: %w",
			methodNew, b.Dimensionality(), d.Dimensionality(), ErrDimensionMismatch)
	}
	oc := newObjectConfig(opts...)

	return &Object{bounds: b, density: d, src: oc.src, dims: b.Dimensionality()}, nil
}

// NewFromDensity builds an object whose bounds come from the density's
// default-bounds policy for dims.
func NewFromDensity(d density.Density, dims int, opts ...Option) (*Object, error) {
	if d == nil {
		return nil, fmt.Errorf("%s: %w", methodNewFromDensity, ErrNilDensity)
	}
	if dims != d.Dimensionality() {
		return nil, fmt.Errorf("%s: dims=%d, density=%d: %w",
			methodNewFromDensity, dims, d.Dimensionality(), ErrDimensionMismatch)
	}
	b, err := d.DefaultBounds(dims)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodNewFromDensity, err)
	}

	return New(b, d, opts...)
}

// DrawSample returns a point inside the object's bounds, or (nil, false)
// when the density's attempt budget ran out.
func (o *Object) DrawSample() ([]float64, bool) {
	return o.density.Draw(o.bounds, o.src)
}

// Samples draws n points and reports how many draws came back empty.
// Missed draws are not retried.
func (o *Object) Samples(n int) (points [][]float64, misses int) {
	points = make([][]float64, 0, max(n, 0))
	for i := 0; i < n; i++ {
		p, ok := o.DrawSample()
		if !ok {
			misses++
			continue
		}
		points = append(points, p)
	}

	return points, misses
}

// Mean returns the density's expected value. The bounds only fix its length.
func (o *Object) Mean() []float64 { return o.density.Mean(o.bounds) }

// Value returns the center of the bounds along dimension d.
func (o *Object) Value(d int) (float64, error) {
	if d < 0 || d >= o.dims {
		return 0, fmt.Errorf("%s: d=%d, dims=%d: %w", methodValue, d, o.dims, ErrDimensionOutOfRange)
	}

	return (o.bounds.Min(d) + o.bounds.Max(d)) * .5, nil
}

// Bounds returns the object's bounds.
func (o *Object) Bounds() bounds.Bounds { return o.bounds }

// Density returns the object's density.
func (o *Object) Density() density.Density { return o.density }

// Dimensionality returns the number of coordinates.
func (o *Object) Dimensionality() int { return o.dims }
