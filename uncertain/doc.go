// Package uncertain provides uncertain objects: points whose true location
// is unknown but constrained to a bounding box and described by a
// probability density.
//
// An Object pairs a bounds.Bounds with a density.Density and owns its own
// random.Source. DrawSample delegates to the density's rejection sampler
// against the object's bounds; Mean delegates to the density's expected
// value.
//
// Objects are built directly (New, NewFromDensity) or through a Factory,
// which turns deterministic feature vectors into fresh objects via a
// density.Uncertainifier:
//
//	gen, _ := density.NewGaussianGenerator(density.WithSeed(5))
//	f, _ := uncertain.NewFactory(gen, true, uncertain.WithSeed(5))
//	obj, err := f.Uncertainify(density.Float64s{1.5, 2.0})
//	if p, ok := obj.DrawSample(); ok {
//	    // use p
//	}
//
// Concurrency: an Object is not safe for concurrent DrawSample calls,
// since sampling advances its source. Distinct objects never share a
// source and can be sampled in parallel without locking. The same holds
// for a Factory.
package uncertain
