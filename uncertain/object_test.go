// SPDX-License-Identifier: MIT

package uncertain_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/uncertain/bounds"
	"github.com/katalvlaran/uncertain/density"
	"github.com/katalvlaran/uncertain/uncertain"
)

// ObjectSuite groups tests for Object construction and sampling.
type ObjectSuite struct {
	suite.Suite
	mix *density.GaussianMixture
	box *bounds.Box
}

func (s *ObjectSuite) SetupTest() {
	var err error
	s.mix, err = density.NewGaussianMixtureFromVectors(
		[][]float64{{0, 0}, {10, 10}},
		[][]float64{{1, 1}, {1, 1}},
		[]int{1, 1},
	)
	require.NoError(s.T(), err)
	s.box, err = bounds.NewBox([]float64{-100, -100}, []float64{100, 100})
	require.NoError(s.T(), err)
}

// TestTwoClusterScenario: equal weights split samples evenly and every
// sample stays in the box.
func (s *ObjectSuite) TestTwoClusterScenario() {
	obj, err := uncertain.New(s.box, s.mix, uncertain.WithSeed(20240101))
	require.NoError(s.T(), err)

	const n = 10000
	points, misses := obj.Samples(n)
	require.Zero(s.T(), misses)
	require.Len(s.T(), points, n)

	nearOrigin := 0
	for _, p := range points {
		for _, v := range p {
			require.True(s.T(), v >= -100 && v <= 100)
		}
		d0 := math.Hypot(p[0], p[1])
		d1 := math.Hypot(p[0]-10, p[1]-10)
		if d0 < d1 {
			nearOrigin++
		}
	}
	require.InDelta(s.T(), 0.5, float64(nearOrigin)/n, 0.03)
	require.Equal(s.T(), []float64{5, 5}, obj.Mean())
}

// TestDeterminism: equal parameters and seeds give equal sample streams.
func (s *ObjectSuite) TestDeterminism() {
	a, err := uncertain.New(s.box, s.mix, uncertain.WithSeed(9))
	require.NoError(s.T(), err)
	b, err := uncertain.New(s.box, s.mix, uncertain.WithSeed(9))
	require.NoError(s.T(), err)

	for i := 0; i < 100; i++ {
		pa, oka := a.DrawSample()
		pb, okb := b.DrawSample()
		require.Equal(s.T(), oka, okb)
		require.Equal(s.T(), pa, pb)
	}
}

// TestExhaustion: unreachable bounds yield misses, not errors.
func (s *ObjectSuite) TestExhaustion() {
	far, err := bounds.NewBox([]float64{500, 500}, []float64{501, 501})
	require.NoError(s.T(), err)
	obj, err := uncertain.New(far, s.mix, uncertain.WithSeed(1))
	require.NoError(s.T(), err)

	p, ok := obj.DrawSample()
	require.False(s.T(), ok)
	require.Nil(s.T(), p)

	points, misses := obj.Samples(3)
	require.Empty(s.T(), points)
	require.Equal(s.T(), 3, misses)
}

// TestConstructionErrors covers nil arguments and dimension mismatches.
func (s *ObjectSuite) TestConstructionErrors() {
	cube3, err := bounds.NewBox([]float64{0, 0, 0}, []float64{1, 1, 1})
	require.NoError(s.T(), err)

	_, err = uncertain.New(cube3, s.mix)
	require.ErrorIs(s.T(), err, uncertain.ErrDimensionMismatch)
	_, err = uncertain.New(nil, s.mix)
	require.ErrorIs(s.T(), err, uncertain.ErrNilBounds)
	_, err = uncertain.New(s.box, nil)
	require.ErrorIs(s.T(), err, uncertain.ErrNilDensity)

	_, err = uncertain.NewFromDensity(s.mix, 3)
	require.ErrorIs(s.T(), err, uncertain.ErrDimensionMismatch)
	_, err = uncertain.NewFromDensity(nil, 2)
	require.ErrorIs(s.T(), err, uncertain.ErrNilDensity)

	require.Panics(s.T(), func() { uncertain.WithSource(nil) })
}

// TestDefaultBoundsAndAccessors checks NewFromDensity and the read API.
func (s *ObjectSuite) TestDefaultBoundsAndAccessors() {
	obj, err := uncertain.NewFromDensity(s.mix, 2, uncertain.WithSeed(2))
	require.NoError(s.T(), err)

	require.Equal(s.T(), 2, obj.Dimensionality())
	require.Same(s.T(), s.mix, obj.Density())
	b := obj.Bounds()
	require.Equal(s.T(), -3.0, b.Min(0))
	require.Equal(s.T(), 13.0, b.Max(1))

	v, err := obj.Value(0)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 5.0, v)
	_, err = obj.Value(2)
	require.ErrorIs(s.T(), err, uncertain.ErrDimensionOutOfRange)
	_, err = obj.Value(-1)
	require.ErrorIs(s.T(), err, uncertain.ErrDimensionOutOfRange)

	for i := 0; i < 200; i++ {
		p, ok := obj.DrawSample()
		if ok {
			require.True(s.T(), bounds.Contains(b, p))
		}
	}
}

func TestObjectSuite(t *testing.T) {
	suite.Run(t, new(ObjectSuite))
}
