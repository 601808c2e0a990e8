// SPDX-License-Identifier: MIT
// Package: uncertain/density
//
// impl_gaussian.go - weighted mixture of independent Gaussians.
//
// Canonical model:
//   - k components, component h = (mean[h], stddev[h]), both length d.
//   - Integer weights w[h] ≥ 0, weightTotal = Σ w[h].
//   - Sampling picks h with probability w[h]/weightTotal, then draws every
//     coordinate as mean[h][i] + N(0,1)*stddev[h][i].
//
// Contract:
//   - Construction validates lengths, dimensionality and values and copies
//     its inputs; the mixture never changes afterwards.
//   - Without explicit weights, weights.Uniform(k, DefaultWeightTotal) is
//     used and the stored total is the truncated (total/k)*k.
//
// Complexity:
//   - Draw: O(TryLimit·(k+d)) worst case, O(k+d) per attempt.
//   - Mean: O(k·d).

package density

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/uncertain/bounds"
	"github.com/katalvlaran/uncertain/random"
	"github.com/katalvlaran/uncertain/weights"
)

const (
	methodNewGaussianMixture = "NewGaussianMixture"
	methodFromVectors        = "NewGaussianMixtureFromVectors"
	methodDefaultBounds      = "DefaultBounds"
)

// Component is one (mean, stddev) pair of a Gaussian mixture. StdDev is
// the per-dimension standard deviation used as the Gaussian scale.
type Component struct {
	Mean   []float64
	StdDev []float64
}

// GaussianMixture is an immutable weighted mixture of per-dimension
// independent Gaussians.
type GaussianMixture struct {
	means       [][]float64
	stddevs     [][]float64
	weights     []int
	weightTotal int
	dim         int
}

var _ Density = (*GaussianMixture)(nil)

// NewGaussian returns a single-component mixture.
func NewGaussian(mean, stddev []float64) (*GaussianMixture, error) {
	return NewGaussianMixture([]Component{{Mean: mean, StdDev: stddev}}, nil)
}

// NewGaussianMixtureFromVectors builds a mixture from parallel lists of
// means and stddevs. weights may be nil (uniform split).
func NewGaussianMixtureFromVectors(means, stddevs [][]float64, w []int) (*GaussianMixture, error) {
	if len(means) != len(stddevs) {
		return nil, fmt.Errorf("%s: %d means, %d stddevs: %w",
			methodFromVectors, len(means), len(stddevs), ErrLengthMismatch)
	}
	comps := make([]Component, len(means))
	for i := range means {
		comps[i] = Component{Mean: means[i], StdDev: stddevs[i]}
	}

	return NewGaussianMixture(comps, w)
}

// NewGaussianMixture validates and copies components and weights.
//
// Errors (first failing check wins):
//   - ErrNoComponents: len(components) == 0.
//   - ErrLengthMismatch: w != nil && len(w) != len(components).
//   - ErrZeroDimension: the first mean is empty.
//   - ErrDimensionMismatch: any mean/stddev length differs from the first mean.
//   - ErrInvalidStdDev: a stddev entry is negative, NaN or Inf.
//   - ErrNegativeWeight: any weight < 0.
//   - ErrWeightOverflow: the weights do not sum within an int.
func NewGaussianMixture(components []Component, w []int) (*GaussianMixture, error) {
	k := len(components)
	if k == 0 {
		return nil, fmt.Errorf("%s: %w", methodNewGaussianMixture, ErrNoComponents)
	}
	if w != nil && len(w) != k {
		return nil, fmt.Errorf("%s: %d components, %d weights: %w",
			methodNewGaussianMixture, k, len(w), ErrLengthMismatch)
	}
	dim := len(components[0].Mean)
	if dim == 0 {
		return nil, fmt.Errorf("%s: %w", methodNewGaussianMixture, ErrZeroDimension)
	}

	g := &GaussianMixture{
		means:   make([][]float64, k),
		stddevs: make([][]float64, k),
		dim:     dim,
	}
	for h, c := range components {
		if len(c.Mean) != dim || len(c.StdDev) != dim {
			return nil, fmt.Errorf("%s: component %d: mean=%d stddev=%d, want %d: %w",
				methodNewGaussianMixture, h, len(c.Mean), len(c.StdDev), dim, ErrDimensionMismatch)
		}
		for i, s := range c.StdDev {
			if math.IsNaN(s) || math.IsInf(s, 0) || s < 0 {
				return nil, fmt.Errorf("%s: component %d, dimension %d: stddev=%g: %w",
					methodNewGaussianMixture, h, i, s, ErrInvalidStdDev)
			}
		}
		g.means[h] = append([]float64(nil), c.Mean...)
		g.stddevs[h] = append([]float64(nil), c.StdDev...)
	}

	if w == nil {
		uw, total, err := weights.Uniform(k, DefaultWeightTotal)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodNewGaussianMixture, err)
		}
		g.weights, g.weightTotal = uw, total
		return g, nil
	}

	g.weights = make([]int, k)
	for h, v := range w {
		if v < 0 {
			return nil, fmt.Errorf("%s: weight %d = %d: %w", methodNewGaussianMixture, h, v, ErrNegativeWeight)
		}
		if g.weightTotal > math.MaxInt-v {
			return nil, fmt.Errorf("%s: weight %d = %d: %w", methodNewGaussianMixture, h, v, ErrWeightOverflow)
		}
		g.weights[h] = v
		g.weightTotal += v
	}

	return g, nil
}

// Dimensionality returns d.
func (g *GaussianMixture) Dimensionality() int { return g.dim }

// Len returns the number of components.
func (g *GaussianMixture) Len() int { return len(g.means) }

// Component returns a copy of component h.
func (g *GaussianMixture) Component(h int) Component {
	return Component{
		Mean:   append([]float64(nil), g.means[h]...),
		StdDev: append([]float64(nil), g.stddevs[h]...),
	}
}

// Weights returns a copy of the integer weights.
func (g *GaussianMixture) Weights() []int {
	return append([]int(nil), g.weights...)
}

// WeightTotal returns the stored weight total.
func (g *GaussianMixture) WeightTotal() int { return g.weightTotal }

// Draw samples the mixture by rejection against b.
//
// Algorithm (per attempt, at most TryLimit attempts):
//  1. If more than one weight exists, pick an index via weights.DrawIndex;
//     a single component always uses index 0 and draws nothing for it.
//  2. An index outside the weight slice discards the attempt.
//  3. Every coordinate is drawn; the attempt succeeds only if all of them
//     lie in [b.Min(i), b.Max(i)].
//
// Returns (nil, false) after TryLimit failures, when b's dimensionality
// differs from the mixture's, or when b or src is nil.
func (g *GaussianMixture) Draw(b bounds.Bounds, src random.Source) ([]float64, bool) {
	if b == nil || src == nil || b.Dimensionality() != g.dim {
		return nil, false
	}

	values := make([]float64, g.dim)
	index := 0
	var (
		inBounds     bool
		mean, stddev []float64
	)
	for attempt := 0; attempt < TryLimit; attempt++ {
		if len(g.weights) > 1 {
			index = weights.DrawIndex(src, g.weights, g.weightTotal)
		}
		if index >= len(g.weights) {
			continue
		}

		mean, stddev = g.means[index], g.stddevs[index]
		inBounds = true
		for i := range values {
			values[i] = mean[i] + src.NormFloat64()*stddev[i]
			inBounds = inBounds && values[i] <= b.Max(i) && values[i] >= b.Min(i)
		}
		if inBounds {
			return values, true
		}
	}

	return nil, false
}

// Mean returns Σ w[h]·mean[h] / weightTotal with b.Dimensionality()
// entries (the mixture's own dimensionality when b is nil). A zero weight
// total yields the zero vector.
func (g *GaussianMixture) Mean(b bounds.Bounds) []float64 {
	dims := g.dim
	if b != nil {
		dims = b.Dimensionality()
	}
	out := make([]float64, dims)
	if g.weightTotal == 0 {
		return out
	}

	n := min(dims, g.dim)
	for h, m := range g.means {
		floats.AddScaled(out[:n], float64(g.weights[h]), m[:n])
	}
	floats.Scale(1/float64(g.weightTotal), out[:n])

	return out
}

// DefaultBounds returns, per dimension, the envelope of
// mean ± DefaultSpread·stddev over all components.
func (g *GaussianMixture) DefaultBounds(dims int) (*bounds.Box, error) {
	if dims != g.dim {
		return nil, fmt.Errorf("%s: dims=%d, mixture=%d: %w", methodDefaultBounds, dims, g.dim, ErrDimensionMismatch)
	}

	lo := make([]float64, dims)
	hi := make([]float64, dims)
	for i := 0; i < dims; i++ {
		lo[i], hi[i] = math.Inf(1), math.Inf(-1)
		for h := range g.means {
			spread := DefaultSpread * g.stddevs[h][i]
			lo[i] = math.Min(lo[i], g.means[h][i]-spread)
			hi[i] = math.Max(hi[i], g.means[h][i]+spread)
		}
	}

	return bounds.NewBox(lo, hi)
}
