// SPDX-License-Identifier: MIT

package density

// Sequence is an indexable numeric sequence; it lets uncertainification
// accept any vector representation without depending on a concrete type.
type Sequence interface {
	// Len returns the number of values.
	Len() int
	// At returns value i as float64, 0 <= i < Len().
	At(i int) float64
}

// Float64s adapts a []float64 to Sequence.
type Float64s []float64

// Len returns len(s).
func (s Float64s) Len() int { return len(s) }

// At returns s[i].
func (s Float64s) At(i int) float64 { return s[i] }

// Float32s adapts a []float32 to Sequence.
type Float32s []float32

// Len returns len(s).
func (s Float32s) Len() int { return len(s) }

// At returns s[i] widened to float64.
func (s Float32s) At(i int) float64 { return float64(s[i]) }

// Ints adapts a []int to Sequence.
type Ints []int

// Len returns len(s).
func (s Ints) Len() int { return len(s) }

// At returns s[i] as float64.
func (s Ints) At(i int) float64 { return float64(s[i]) }

// Values copies a Sequence into a new []float64.
func Values(s Sequence) []float64 {
	out := make([]float64, s.Len())
	for i := range out {
		out[i] = s.At(i)
	}

	return out
}
