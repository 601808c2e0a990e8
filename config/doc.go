// Package config loads uncertainification settings from YAML and turns
// them into a ready density generator.
//
// File layout (every key optional, missing keys keep their defaults):
//
//	density: gaussian        # gaussian | uniform
//	blur: true
//	seed: 5
//	weight_total: 10000
//	stddev:       {min: 1, max: 1}
//	lower_bound:  {min: 3, max: 3}
//	upper_bound:  {min: 3, max: 3}
//	multiplicity: {min: 1, max: 1}
//
// Unknown keys are rejected so that typos surface as errors.
package config
