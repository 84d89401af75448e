// SPDX-License-Identifier: MIT
// Package: pargraph/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng           = nil   (Random* constructors require WithSeed/WithRand)
//   • bidirectional = false

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means no randomness.
	rng *rand.Rand
	// Emit the reverse of every arc as well.
	bidirectional bool
}

// newBuilderConfig applies opts in order; later options override earlier ones.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
