// SPDX-License-Identifier: MIT
// Package: uncertain
//
// factory.go - uncertainification entry point.
//
// Flow for each input vector:
//  1. gen.Uncertainify(seq, blur) builds a fresh density.
//  2. density.DefaultBounds(seq.Len()) supplies the bounds.
//  3. The object gets random.Split(factory source) as its own source.
//
// Inputs are only read; no existing object is touched.

package uncertain

import (
	"fmt"

	"github.com/katalvlaran/uncertain/density"
	"github.com/katalvlaran/uncertain/random"
)

const (
	methodNewFactory      = "NewFactory"
	methodUncertainify    = "Factory.Uncertainify"
	methodUncertainifyAll = "Factory.UncertainifyAll"
)

// Factory turns deterministic vectors into uncertain objects.
type Factory struct {
	gen  density.Uncertainifier
	blur bool
	src  random.Source
}

// NewFactory wraps gen. blur selects whether input coordinates are
// perturbed. Options set the parent source of created objects.
func NewFactory(gen density.Uncertainifier, blur bool, opts ...Option) (*Factory, error) {
	if gen == nil {
		return nil, fmt.Errorf("%s: %w", methodNewFactory, ErrNilUncertainifier)
	}
	oc := newObjectConfig(opts...)

	return &Factory{gen: gen, blur: blur, src: oc.src}, nil
}

// Blur reports whether the factory perturbs its inputs.
func (f *Factory) Blur() bool { return f.blur }

// Uncertainify builds a new object around seq.
func (f *Factory) Uncertainify(seq density.Sequence) (*Object, error) {
	d, err := f.gen.Uncertainify(seq, f.blur)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodUncertainify, err)
	}
	obj, err := NewFromDensity(d, seq.Len(), WithSource(random.Split(f.src)))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodUncertainify, err)
	}

	return obj, nil
}

// UncertainifyAll uncertainifies every row in order. It stops at the
// first failing row and reports its index.
func (f *Factory) UncertainifyAll(rows [][]float64) ([]*Object, error) {
	out := make([]*Object, len(rows))
	for i, row := range rows {
		obj, err := f.Uncertainify(density.Float64s(row))
		if err != nil {
			return nil, fmt.Errorf("%s: row %d: %w", methodUncertainifyAll, i, err)
		}
		out[i] = obj
	}

	return out, nil
}

// Uncertainify is a one-shot helper: a factory seeded with seed applied
// to a single vector.
func Uncertainify(gen density.Uncertainifier, seq density.Sequence, blur bool, seed uint64) (*Object, error) {
	f, err := NewFactory(gen, blur, WithSeed(seed))
	if err != nil {
		return nil, err
	}

	return f.Uncertainify(seq)
}
