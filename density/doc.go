// Package density implements the probability densities behind uncertain
// objects and the uncertainification transform that builds them.
//
// 🚀 What is a density here?
//
//	A Density describes where an object with an unknown location may be.
//	It can draw a concrete sample that respects a bounding box (rejection
//	sampling with a fixed attempt budget), report its expected value, and
//	expose a default box for itself.
//
// ✨ Variants:
//   - GaussianMixture: weighted mixture of per-dimension independent
//     Gaussians; each component is a (mean, stddev) vector pair.
//   - UniformBox: uniform over a single axis-aligned box.
//
// ⚙️ Uncertainification:
//
//	An Uncertainifier turns a deterministic feature vector (any Sequence)
//	into a fresh Density with randomly generated parameters, optionally
//	blurring the original coordinates:
//
//	gen, err := density.NewGaussianGenerator(
//	    density.WithStdDevRange(0.5, 1.5),
//	    density.WithMultiplicity(1, 3),
//	    density.WithSeed(42),
//	)
//	d, err := gen.Uncertainify(density.Float64s{1, 2, 3}, true)
//
// Sampling exhaustion:
//
//	Draw returns (nil, false) when TryLimit attempts all land outside the
//	bounds. That is an expected outcome for tight boxes, not an error.
//
// Concurrency:
//
//	Densities are immutable after construction and may be shared for
//	reading. The random.Source passed to Draw is mutated and must not be
//	shared across goroutines; generators own a source and are therefore
//	not safe for concurrent use.
package density
