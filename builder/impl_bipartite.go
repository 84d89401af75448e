// SPDX-License-Identifier: MIT
// Package: pargraph/builder
//
// impl_bipartite.go - implementation of CompleteBipartite(n1, n2).
//
// Contract:
//   - n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   - Local vertices 0..n1-1 form the left side, n1..n1+n2-1 the right side.
//   - Emits left→right arcs, left asc then right asc.
//
// Complexity: O(n1·n2).

package builder

import "fmt"

const minPartition = 1

// CompleteBipartite returns a Constructor that links every left vertex to
// every right vertex.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n1 < minPartition || n2 < minPartition {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				MethodCompleteBipartite, n1, n2, minPartition, ErrTooFewVertices)
		}
		left := d.addVertices(n1 + n2)
		right := left + vtx(n1)
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				d.addArc(cfg, left+vtx(i), right+vtx(j))
			}
		}
		return nil
	}
}
