// SPDX-License-Identifier: MIT
// Package: uncertain/bounds
//
// errors.go - sentinel errors for the bounds package.
//
// Callers branch with errors.Is; constructors attach context with
// fmt.Errorf("<Method>: ...: %w", ErrX). Accessors never return errors.

package bounds

import "errors"

// ErrEmpty is returned when a box with zero dimensions is requested.
// Typical origins: NewBox(nil, nil), FromIntervals(nil), Unbounded(0).
var ErrEmpty = errors.New("bounds: dimensionality must be > 0")

// ErrLengthMismatch indicates that min and max have different lengths.
var ErrLengthMismatch = errors.New("bounds: min/max length mismatch")

// ErrInverted indicates min(i) > max(i) for some dimension i.
// Usage: if errors.Is(err, ErrInverted) { /* swap or reject the interval */ }.
var ErrInverted = errors.New("bounds: min greater than max")

// ErrNaN indicates a NaN coordinate; ±Inf is allowed for open sides.
var ErrNaN = errors.New("bounds: NaN coordinate")
