// SPDX-License-Identifier: MIT
// Package: uncertain/random
//
// source.go - Source capability and its PCG-backed implementation.
//
// Contract:
//   - Float64 is uniform in [0,1), IntN uniform in [0,n), NormFloat64 ~ N(0,1).
//   - IntN panics for n <= 0 (same contract as math/rand/v2).
//   - *Rand is NOT safe for concurrent use; give each goroutine its own.

package random

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// streamSelector is the second PCG word used by New; any constant works,
// it only has to be fixed so New(seed) is reproducible.
const streamSelector uint64 = 0x9e3779b97f4a7c15

// Source is the randomness capability consumed by densities.
// *math/rand/v2.Rand satisfies it as well.
type Source interface {
	// Float64 returns a uniform value in [0,1).
	Float64() float64
	// IntN returns a uniform value in [0,n); n must be > 0.
	IntN(n int) int
	// NormFloat64 returns a standard-normal value.
	NormFloat64() float64
}

// Rand is the default Source: a PCG stream shared by a math/rand/v2
// generator and the gonum distributions built on top of it.
type Rand struct {
	pcg  *rand.PCG
	rng  *rand.Rand
	unit distuv.Normal
}

var _ Source = (*Rand)(nil)

// New returns a deterministic source for seed.
func New(seed uint64) *Rand {
	return NewPCG(seed, streamSelector)
}

// NewStream returns a deterministic source for seed on the given stream.
// Distinct streams give unrelated sequences for one seed, so a single
// user seed can feed several consumers. NewStream(seed, 0) equals New(seed).
func NewStream(seed, stream uint64) *Rand {
	return NewPCG(seed, streamSelector^stream)
}

// NewPCG returns a source over the two-word PCG state (hi, lo).
func NewPCG(hi, lo uint64) *Rand {
	pcg := rand.NewPCG(hi, lo)

	return &Rand{
		pcg:  pcg,
		rng:  rand.New(pcg),
		unit: distuv.Normal{Mu: 0, Sigma: 1, Src: pcg},
	}
}

// NewEntropy returns a source seeded from the runtime's random state.
// Use New for reproducible runs.
func NewEntropy() *Rand {
	return NewPCG(rand.Uint64(), rand.Uint64())
}

// Float64 returns a uniform value in [0,1).
func (r *Rand) Float64() float64 { return r.rng.Float64() }

// IntN returns a uniform value in [0,n).
func (r *Rand) IntN(n int) int { return r.rng.IntN(n) }

// NormFloat64 returns a standard-normal draw.
func (r *Rand) NormFloat64() float64 { return r.unit.Rand() }

// Uint64 returns 64 uniformly random bits.
func (r *Rand) Uint64() uint64 { return r.rng.Uint64() }

// Uniform returns a draw from U[lo,hi) via distuv.Uniform.
// For lo == hi the result is lo.
func (r *Rand) Uniform(lo, hi float64) float64 {
	return distuv.Uniform{Min: lo, Max: hi, Src: r.pcg}.Rand()
}

// Split derives a child source from r. The child's stream is independent
// of r's future output, and deriving it advances r by two words.
func (r *Rand) Split() *Rand {
	return NewPCG(r.rng.Uint64(), r.rng.Uint64())
}

// Uniform draws from U[lo,hi) using src: lo + u*(hi-lo).
// Sources that provide their own Uniform method are delegated to.
func Uniform(src Source, lo, hi float64) float64 {
	if u, ok := src.(interface{ Uniform(lo, hi float64) float64 }); ok {
		return u.Uniform(lo, hi)
	}

	return src.Float64()*(hi-lo) + lo
}

// Split derives an independent *Rand from any Source.
func Split(src Source) *Rand {
	if r, ok := src.(*Rand); ok {
		return r.Split()
	}

	return NewPCG(uint64(src.IntN(math.MaxInt)), uint64(src.IntN(math.MaxInt)))
}
