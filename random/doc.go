// Package random provides the per-object random source used by densities
// and uncertainification.
//
// Ownership rule:
//
//	A Source is consumed by every draw, so it MUST NOT be shared between
//	concurrently running samplers. Each uncertain object owns its own
//	Source; Split derives an independent child stream from a parent so a
//	factory can hand out sources without sharing state.
//
// Determinism:
//
//	New(seed) always yields the same stream for the same seed. Gaussian
//	and bounded-uniform draws go through gonum stat/distuv with the PCG
//	generator as Src, so the numbers are reproducible across runs.
package random
