// SPDX-License-Identifier: MIT
// Package config: sentinel error set.

package config

import "errors"

var (
	// ErrUnknownDensity indicates a density kind other than gaussian or uniform.
	ErrUnknownDensity = errors.New("config: unknown density kind")

	// ErrInvalidWeightTotal indicates weight_total < 1.
	ErrInvalidWeightTotal = errors.New("config: weight_total must be ≥ 1")

	// ErrDecode wraps YAML syntax and schema errors.
	ErrDecode = errors.New("config: cannot decode")
)
