// SPDX-License-Identifier: MIT
// Package: pargraph/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options mutate builderConfig before any constructor runs.
//   • Option constructors panic on meaningless inputs (nil RNG).
//   • Seeding is explicit via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes constructors by mutating a builderConfig.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithBidirectional makes every constructor emit v→u alongside each u→v.
// Unlike core.WithUndirected it applies to the builder's arcs only, before
// loop and multi-arc filtering.
func WithBidirectional() BuilderOption {
	return func(c *builderConfig) {
		c.bidirectional = true
	}
}
