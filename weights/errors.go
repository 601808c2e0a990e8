// SPDX-License-Identifier: MIT
// Package: uncertain/weights
//
// errors.go - sentinel errors for the weights package.
//
// Error policy:
//   • Uniform and Random validate k, total and the source in that order and
//     wrap the first failure as "<Method>: <context>: %w".
//   • DrawIndex never fails; an unusable total yields the out-of-range
//     index len(w), which callers treat as a discarded attempt.
//
// AI-Hints:
//   • Branch with errors.Is; never match error strings.
//   • Table tests should cover k=0, total<0 and a nil source.

package weights

import "errors"

// ErrTooFewComponents indicates k < 1.
// Classification: Validation error (parameters).
// Typical origins: Uniform(0, ...), Random(0, ...).
// Usage: if errors.Is(err, ErrTooFewComponents) { /* request at least one weight */ }.
var ErrTooFewComponents = errors.New("weights: component count must be ≥ 1")

// ErrNegativeTotal indicates a negative weight budget.
// Classification: Validation error (parameters).
// Usage: if errors.Is(err, ErrNegativeTotal) { /* budgets start at 0 */ }.
var ErrNegativeTotal = errors.New("weights: total must be ≥ 0")

// ErrNeedRandSource indicates that a randomized partition was requested
// without a source.
// Typical origins: Random(k, total, nil).
// Usage: if errors.Is(err, ErrNeedRandSource) { /* pass a seeded random.Source */ }.
var ErrNeedRandSource = errors.New("weights: rng is required")
