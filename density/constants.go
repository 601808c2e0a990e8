// SPDX-License-Identifier: MIT

package density

// TryLimit bounds every rejection loop (sampling and blur).
const TryLimit = 1000

// DefaultWeightTotal is the integer weight budget of a mixture when no
// explicit weights are supplied, and the budget uncertainification splits.
const DefaultWeightTotal = 10000

// DefaultSpread is the number of standard deviations around each component
// mean covered by GaussianMixture.DefaultBounds.
const DefaultSpread = 3.0

// Uncertainification defaults.
const (
	// DefaultStdDev is the default for both ends of the stddev range.
	DefaultStdDev = 1.0
	// DefaultBoundMagnitude is the default for the lower/upper deviation windows.
	DefaultBoundMagnitude = 3.0
	// DefaultMultiplicity is the default component count range (min = max).
	DefaultMultiplicity = 1
	// DefaultSeed seeds a generator that was given no source.
	DefaultSeed uint64 = 5
)
