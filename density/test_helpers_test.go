// SPDX-License-Identifier: MIT

package density_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/uncertain/bounds"
	"github.com/katalvlaran/uncertain/random"
)

// countingSource records how often each kind of draw happens.
type countingSource struct {
	random.Source
	floats, ints, normals int
}

func (c *countingSource) Float64() float64     { c.floats++; return c.Source.Float64() }
func (c *countingSource) IntN(n int) int       { c.ints++; return c.Source.IntN(n) }
func (c *countingSource) NormFloat64() float64 { c.normals++; return c.Source.NormFloat64() }

// mustBox builds a box or fails the test.
func mustBox(t testing.TB, lo, hi []float64) *bounds.Box {
	t.Helper()
	b, err := bounds.NewBox(lo, hi)
	require.NoError(t, err)

	return b
}

// cube returns [lo,hi]^dims.
func cube(t testing.TB, dims int, lo, hi float64) *bounds.Box {
	t.Helper()
	l := make([]float64, dims)
	h := make([]float64, dims)
	for i := range l {
		l[i], h[i] = lo, hi
	}

	return mustBox(t, l, h)
}

// unbounded returns (-Inf,+Inf)^dims.
func unbounded(t testing.TB, dims int) *bounds.Box {
	t.Helper()
	b, err := bounds.Unbounded(dims)
	require.NoError(t, err)

	return b
}
