// SPDX-License-Identifier: MIT
// Package: uncertain/bounds
//
// box.go - immutable hyper-rectangle.
//
// Contract:
//   - len(min) == len(max) > 0, no NaN, min[i] <= max[i].
//   - Inputs are copied; a Box never aliases caller memory.
//   - Accessors take an index in [0, Dimensionality()); out-of-range
//     indices are programmer error and panic like a slice index.

package bounds

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/spatial/r1"
)

// Method names used as error prefixes.
const (
	methodNewBox        = "NewBox"
	methodFromIntervals = "FromIntervals"
	methodUnbounded     = "Unbounded"
)

// Bounds is the read contract shared by densities and samplers.
type Bounds interface {
	// Dimensionality returns the number of dimensions.
	Dimensionality() int
	// Min returns the inclusive lower bound of dimension i.
	Min(i int) float64
	// Max returns the inclusive upper bound of dimension i.
	Max(i int) float64
}

// Box is an axis-aligned hyper-rectangle. The zero value is not usable;
// construct with NewBox, FromIntervals or Unbounded.
type Box struct {
	min []float64
	max []float64
}

var _ Bounds = (*Box)(nil)

// NewBox validates and copies min/max into a new Box.
// Complexity: O(d).
func NewBox(min, max []float64) (*Box, error) {
	if len(min) != len(max) {
		return nil, fmt.Errorf("%s: len(min)=%d, len(max)=%d: %w",
			methodNewBox, len(min), len(max), ErrLengthMismatch)
	}
	if len(min) == 0 {
		return nil, fmt.Errorf("%s: %w", methodNewBox, ErrEmpty)
	}

	b := &Box{
		min: make([]float64, len(min)),
		max: make([]float64, len(max)),
	}
	for i := range min {
		if math.IsNaN(min[i]) || math.IsNaN(max[i]) {
			return nil, fmt.Errorf("%s: dimension %d: %w", methodNewBox, i, ErrNaN)
		}
		if min[i] > max[i] {
			return nil, fmt.Errorf("%s: dimension %d: %g > %g: %w",
				methodNewBox, i, min[i], max[i], ErrInverted)
		}
		b.min[i], b.max[i] = min[i], max[i]
	}

	return b, nil
}

// FromIntervals builds a Box from gonum intervals, one per dimension.
func FromIntervals(iv []r1.Interval) (*Box, error) {
	if len(iv) == 0 {
		return nil, fmt.Errorf("%s: %w", methodFromIntervals, ErrEmpty)
	}
	min := make([]float64, len(iv))
	max := make([]float64, len(iv))
	for i, v := range iv {
		min[i], max[i] = v.Min, v.Max
	}

	return NewBox(min, max)
}

// Unbounded returns the box (-Inf, +Inf)^dims.
func Unbounded(dims int) (*Box, error) {
	if dims < 1 {
		return nil, fmt.Errorf("%s: dims=%d: %w", methodUnbounded, dims, ErrEmpty)
	}
	b := &Box{
		min: make([]float64, dims),
		max: make([]float64, dims),
	}
	for i := 0; i < dims; i++ {
		b.min[i] = math.Inf(-1)
		b.max[i] = math.Inf(1)
	}

	return b, nil
}

// Dimensionality returns the number of dimensions.
func (b *Box) Dimensionality() int { return len(b.min) }

// Min returns the lower bound of dimension i.
func (b *Box) Min(i int) float64 { return b.min[i] }

// Max returns the upper bound of dimension i.
func (b *Box) Max(i int) float64 { return b.max[i] }

// Center returns the midpoint of dimension i. For half-open or fully
// unbounded sides the result is ±Inf or NaN respectively.
func (b *Box) Center(i int) float64 {
	return (b.max[i] + b.min[i]) * .5
}

// Contains reports whether p lies inside the closed box.
// A point of the wrong length is never contained.
func (b *Box) Contains(p []float64) bool {
	return Contains(b, p)
}

// Intervals exports the box as gonum intervals (fresh slice).
func (b *Box) Intervals() []r1.Interval {
	out := make([]r1.Interval, len(b.min))
	for i := range b.min {
		out[i] = r1.Interval{Min: b.min[i], Max: b.max[i]}
	}

	return out
}

// String renders the box as "[min0,max0]x[min1,max1]...".
func (b *Box) String() string {
	var sb strings.Builder
	for i := range b.min {
		if i > 0 {
			sb.WriteByte('x')
		}
		fmt.Fprintf(&sb, "[%g,%g]", b.min[i], b.max[i])
	}

	return sb.String()
}

// Contains reports whether p lies inside any Bounds implementation.
// Complexity: O(d).
func Contains(b Bounds, p []float64) bool {
	if b == nil || len(p) != b.Dimensionality() {
		return false
	}
	for i, v := range p {
		if v < b.Min(i) || v > b.Max(i) {
			return false
		}
	}

	return true
}
