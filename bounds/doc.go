// Package bounds defines the axis-aligned hyper-rectangle that constrains
// where an uncertain object may be sampled.
//
// What is a bound here?
//
//	Every uncertain object lives inside a box: one closed interval
//	[min(i), max(i)] per dimension. Densities only READ this contract;
//	they never mutate it.
//
// Key pieces:
//   - Bounds: the read-only capability (Dimensionality, Min, Max).
//   - Box: the immutable value type implementing Bounds.
//   - Unbounded(d): a ±Inf box, useful when no constraint applies.
//
// Interop:
//
//	Box converts to and from gonum spatial/r1 intervals, so callers already
//	working with gonum (distmv.Uniform, optimizers) can pass boxes through.
//
// Example:
//
//	b, err := bounds.NewBox([]float64{-1, -1}, []float64{1, 1})
//	if err != nil { ... }
//	inside := b.Contains([]float64{0.5, 0})
package bounds
