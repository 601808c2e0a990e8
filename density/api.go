// SPDX-License-Identifier: MIT
// Package: uncertain/density
//
// api.go - the density contracts.
//
// Design contract:
//   - Densities are immutable after construction.
//   - Draw never errors: exhaustion yields (nil, false).
//   - Randomness is always passed in; no density holds a global source.

package density

import (
	"github.com/katalvlaran/uncertain/bounds"
	"github.com/katalvlaran/uncertain/random"
)

// Density is the shared draw/mean contract of all density kinds.
type Density interface {
	// Dimensionality returns the length of every vector the density produces.
	Dimensionality() int

	// Draw returns a sample inside b, or (nil, false) once TryLimit attempts
	// failed. b must have the density's dimensionality; otherwise no
	// sample is produced.
	Draw(b bounds.Bounds, src random.Source) ([]float64, bool)

	// Mean returns the expected value as a vector of b.Dimensionality()
	// entries. Bounds are not enforced on the mean.
	Mean(b bounds.Bounds) []float64

	// DefaultBounds returns the box the density proposes for itself.
	DefaultBounds(dims int) (*bounds.Box, error)
}

// Uncertainifier builds a new Density from a deterministic vector.
// It consumes its own random source and never mutates seq.
type Uncertainifier interface {
	Uncertainify(seq Sequence, blur bool) (Density, error)
}
