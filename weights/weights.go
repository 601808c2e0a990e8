// SPDX-License-Identifier: MIT
// Package: uncertain/weights
//
// weights.go - integer weight partitioning and weighted index selection.
//
// Determinism:
//   - Random and DrawIndex consume src in a fixed order; equal seeds give
//     equal partitions and equal index sequences.

package weights

import (
	"fmt"

	"github.com/katalvlaran/uncertain/random"
)

const (
	methodUniform = "Uniform"
	methodRandom  = "Random"
)

// Uniform splits total evenly over k components using integer division.
// It returns the weights and the effective total (total/k)*k; the
// remainder is intentionally not redistributed.
// Complexity: O(k).
func Uniform(k, total int) ([]int, int, error) {
	if k < 1 {
		return nil, 0, fmt.Errorf("%s: k=%d: %w", methodUniform, k, ErrTooFewComponents)
	}
	if total < 0 {
		return nil, 0, fmt.Errorf("%s: total=%d: %w", methodUniform, total, ErrNegativeTotal)
	}

	share := total / k
	w := make([]int, k)
	for i := range w {
		w[i] = share
	}

	return w, share * k, nil
}

// Random returns k non-negative weights summing exactly to total.
// Component i < k-1 receives a uniform share in [0, remaining]; the last
// component receives the remainder.
// Complexity: O(k) time, k draws from src.
func Random(k, total int, src random.Source) ([]int, error) {
	if k < 1 {
		return nil, fmt.Errorf("%s: k=%d: %w", methodRandom, k, ErrTooFewComponents)
	}
	if total < 0 {
		return nil, fmt.Errorf("%s: total=%d: %w", methodRandom, total, ErrNegativeTotal)
	}
	if src == nil {
		return nil, fmt.Errorf("%s: %w", methodRandom, ErrNeedRandSource)
	}

	w := make([]int, k)
	remaining := total
	for i := 0; i < k-1; i++ {
		w[i] = src.IntN(remaining + 1)
		remaining -= w[i]
	}
	w[k-1] = remaining

	return w, nil
}

// DrawIndex selects an index with probability w[i]/total.
//
// Behavior:
//   - len(w) <= 1: returns 0 without touching src.
//   - total <= 0: returns len(w), i.e. "no valid index".
//   - If total exceeds Sum(w) the walk may fall off the end and return
//     len(w); callers treat that as a discarded attempt.
//
// Complexity: O(len(w)).
func DrawIndex(src random.Source, w []int, total int) int {
	if len(w) <= 1 {
		return 0
	}
	if total <= 0 {
		return len(w)
	}

	draw := src.IntN(total)
	index, sum := 0, 0
	for ; index < len(w); index++ {
		sum += w[index]
		if sum > draw {
			break
		}
	}

	return index
}

// Sum returns the sum of w.
func Sum(w []int) int {
	s := 0
	for _, v := range w {
		s += v
	}

	return s
}
