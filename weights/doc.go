// Package weights partitions an integer weight budget over mixture
// components and draws component indices proportionally to those weights.
//
// Modes:
//   - Uniform(k, total): every component gets total/k (integer division).
//     The remainder is dropped, so the effective total is (total/k)*k.
//   - Random(k, total, src): random shares of the remaining budget, the
//     last component takes what is left; the sum is always exact.
//
// Index draw:
//
//	DrawIndex walks the cumulative sum of the weights until it exceeds a
//	uniform draw in [0,total). A single-entry weight slice short-circuits
//	to index 0 and consumes no randomness.
package weights
