// SPDX-License-Identifier: MIT
// Package: pargraph/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Model:
//   - Erdős–Rényi over ordered pairs: each arc i→j, i≠j, is included
//     independently with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng required when 0 < p < 1 (else ErrNeedRandSource).
//
// Complexity: O(n²) Bernoulli trials.
//
// Determinism:
//   - Trial order is i asc, then j asc; fixed seed ⇒ fixed arc set.

package builder

import "fmt"

const minRandomSparseVertices = 1

// RandomSparse returns a Constructor that samples a directed G(n, p).
func RandomSparse(n int, p float64) Constructor {
	return func(d *draft, cfg builderConfig) error {
		// 1) Validate in priority order: size, probability, RNG.
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				MethodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < MinProbability || p > MaxProbability {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				MethodRandomSparse, p, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		rng := cfg.rng
		if rng == nil && p > MinProbability && p < MaxProbability {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomSparse, ErrNeedRandSource)
		}

		// 2) Sample arcs. p ∈ {0,1} needs no draws.
		base := d.addVertices(n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				var keep bool
				switch {
				case p == MaxProbability:
					keep = true
				case p == MinProbability:
					keep = false
				default:
					keep = rng.Float64() < p
				}
				if keep {
					d.addArc(cfg, base+vtx(i), base+vtx(j))
				}
			}
		}
		return nil
	}
}
