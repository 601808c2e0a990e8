// Package uncertain is the root of a library for uncertain objects: points
// whose true location is unknown, bounded by a box and described by a
// probability density.
//
// 🚀 What does it cover?
//
//	• Bounds: immutable axis-aligned boxes (bounds/)
//	• Random sources: seeded PCG streams with normal and uniform draws (random/)
//	• Integer weight partitioning and weighted index selection (weights/)
//	• Densities: Gaussian mixtures and uniform boxes, rejection sampling
//	  against bounds, expected values, uncertainification (density/)
//	• Uncertain objects and the factory that builds them from vectors (uncertain/)
//	• YAML settings for generators (config/)
//	• A CLI that uncertainifies CSV rows (cmd/uncertainify)
//
// ✨ Guarantees:
//
//   - Every object owns its random source; nothing global is consumed.
//   - Equal seeds reproduce equal densities and equal sample streams.
//   - Sampling never fails loudly: an exhausted attempt budget yields
//     the comma-ok "no sample" result.
//
// Quick start:
//
//	gen, _ := density.NewGaussianGenerator(density.WithMultiplicity(1, 3), density.WithSeed(7))
//	f, _ := uncertain.NewFactory(gen, true, uncertain.WithSeed(7))
//	obj, _ := f.Uncertainify(density.Float64s{0.4, 1.7})
//	p, ok := obj.DrawSample()
//
//	go get github.com/katalvlaran/uncertain
package uncertain
