// SPDX-License-Identifier: MIT
// Package: pargraph/builder
//
// impl_random_edges.go - implementation of RandomEdges(n, m) constructor.
//
// Model:
//   - m arcs, each with endpoints drawn uniformly from the n vertices; a
//     draw with equal endpoints is repeated. Parallel arcs may occur; pass
//     core.WithoutMultiEdges to drop them.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - m ≥ 0 (else ErrConstructFailed).
//   - cfg.rng required when m > 0 (else ErrNeedRandSource).
//
// Complexity: O(n + m) expected.

package builder

import (
	"fmt"
	"slices"
)

const minRandomEdgesVertices = 2

// RandomEdges returns a Constructor that samples m loop-free arcs over n
// vertices. With m ≈ k·n it produces the sparse, low-diameter graphs on
// which hybrid search shines.
func RandomEdges(n, m int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < minRandomEdgesVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				MethodRandomEdges, n, minRandomEdgesVertices, ErrTooFewVertices)
		}
		if m < 0 {
			return fmt.Errorf("%s: m=%d is negative: %w", MethodRandomEdges, m, ErrConstructFailed)
		}
		if cfg.rng == nil && m > 0 {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomEdges, ErrNeedRandSource)
		}

		base := d.addVertices(n)
		d.edges = slices.Grow(d.edges, m)
		for k := 0; k < m; k++ {
			u := cfg.rng.Intn(n)
			v := cfg.rng.Intn(n)
			for u == v {
				v = cfg.rng.Intn(n)
			}
			d.addArc(cfg, base+vtx(u), base+vtx(v))
		}
		return nil
	}
}
