// SPDX-License-Identifier: MIT
// Package uncertain: sentinel error set.

package uncertain

import "errors"

var (
	// ErrNilBounds indicates a nil bounds argument.
	ErrNilBounds = errors.New("uncertain: bounds is nil")

	// ErrNilDensity indicates a nil density argument.
	ErrNilDensity = errors.New("uncertain: density is nil")

	// ErrNilUncertainifier indicates a Factory without a generator.
	ErrNilUncertainifier = errors.New("uncertain: uncertainifier is nil")

	// ErrDimensionMismatch indicates bounds, density and declared
	// dimensionality disagree.
	ErrDimensionMismatch = errors.New("uncertain: dimensionality mismatch")

	// ErrDimensionOutOfRange indicates a coordinate index outside [0, dims).
	ErrDimensionOutOfRange = errors.New("uncertain: dimension out of range")
)
