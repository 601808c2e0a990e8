// SPDX-License-Identifier: MIT
// Package: uncertain/density
//
// errors.go - sentinel errors for the density package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Constructors attach context as "<Method>: <context>: %w".
//   • Sampling never returns an error: an exhausted attempt budget is the
//     comma-ok (nil, false) result of Draw.
//   • Option constructors (WithX) panic on meaningless values; generators and
//     mixtures never panic.
//
// AI-Hints:
//   • Validation order in NewGaussianMixture is fixed (see its doc comment);
//     tests rely on the first failing check winning.
//   • Configs loaded from files go through WithConfig and surface as
//     ErrInvalidConfig instead of a panic.
//   • Do not stringify parameters into sentinel definitions.

package density

import "errors"

// ErrNoComponents indicates a mixture with zero components.
// Classification: Validation error (construction).
// Typical origins: NewGaussianMixture(nil, ...), NewGaussianMixtureFromVectors with empty lists.
// Usage: if errors.Is(err, ErrNoComponents) { /* supply at least one component */ }.
var ErrNoComponents = errors.New("density: at least one component is required")

// ErrLengthMismatch indicates means, stddevs and weights lists of different
// lengths. A nil weight list is allowed and means a uniform split.
// Classification: Validation error (construction).
// Usage: if errors.Is(err, ErrLengthMismatch) { /* align the parallel lists */ }.
var ErrLengthMismatch = errors.New("density: means, stddevs and weights length mismatch")

// ErrDimensionMismatch indicates a vector whose length differs from the
// mixture's dimensionality, or a DefaultBounds request for another
// dimensionality.
// Typical origins: NewGaussianMixture, GaussianMixture.DefaultBounds, UniformBox.DefaultBounds.
// Usage: if errors.Is(err, ErrDimensionMismatch) { /* check vector lengths */ }.
var ErrDimensionMismatch = errors.New("density: dimensionality mismatch")

// ErrZeroDimension indicates component vectors with no coordinates.
// Usage: if errors.Is(err, ErrZeroDimension) { /* reject empty feature vectors */ }.
var ErrZeroDimension = errors.New("density: dimensionality must be > 0")

// ErrInvalidStdDev indicates a negative, NaN or infinite standard deviation.
// Classification: Validation error (values).
// Usage: if errors.Is(err, ErrInvalidStdDev) { /* sanitize the scale vector */ }.
var ErrInvalidStdDev = errors.New("density: stddev must be finite and ≥ 0")

// ErrNegativeWeight indicates a negative component weight.
// Usage: if errors.Is(err, ErrNegativeWeight) { /* weights are non-negative integers */ }.
var ErrNegativeWeight = errors.New("density: weight must be ≥ 0")

// ErrWeightOverflow indicates explicit weights whose sum does not fit in an int.
// Classification: Validation error (values).
// Typical origins: NewGaussianMixture with weights near math.MaxInt.
// Usage: if errors.Is(err, ErrWeightOverflow) { /* rescale the weights */ }.
var ErrWeightOverflow = errors.New("density: weight total overflows int")

// ErrEmptySequence indicates an uncertainify input with no values.
// Typical origins: GaussianGenerator.Uncertainify, UniformGenerator.Uncertainify.
// Usage: if errors.Is(err, ErrEmptySequence) { /* skip empty rows */ }.
var ErrEmptySequence = errors.New("density: input sequence is empty")

// ErrInvalidConfig indicates an uncertainification Config that fails
// Validate: a non-finite or negative range end, min > max, or a
// multiplicity range outside 1 ≤ min ≤ max.
// Typical origins: NewGaussianGenerator/NewUniformGenerator with WithConfig.
// Usage: if errors.Is(err, ErrInvalidConfig) { /* fix the settings file */ }.
var ErrInvalidConfig = errors.New("density: invalid uncertainification config")
