// SPDX-License-Identifier: MIT
// Package: uncertain
//
// options.go - functional options for objects and factories.
//
// Contract:
//   • WithSource panics on nil; constructors never panic.
//   • Without options an object draws from random.NewEntropy(); use
//     WithSeed for reproducible sampling.

package uncertain

import "github.com/katalvlaran/uncertain/random"

// Option customizes an Object or Factory before construction.
type Option func(*objectConfig)

type objectConfig struct {
	src random.Source
}

func newObjectConfig(opts ...Option) objectConfig {
	var oc objectConfig
	for _, opt := range opts {
		opt(&oc)
	}
	if oc.src == nil {
		oc.src = random.NewEntropy()
	}

	return oc
}

// WithSeed gives the object a deterministic source random.New(seed).
func WithSeed(seed uint64) Option {
	return func(oc *objectConfig) {
		oc.src = random.New(seed)
	}
}

// WithSource hands src to the object. The object takes ownership: src
// must not be used elsewhere while the object samples.
func WithSource(src random.Source) Option {
	if src == nil {
		panic("uncertain: WithSource(nil)")
	}
	return func(oc *objectConfig) {
		oc.src = src
	}
}
