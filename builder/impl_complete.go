// SPDX-License-Identifier: MIT
// Package: pargraph/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Emits i→j for every i<j (i asc, then j asc): the transitive
//     tournament. Combine with WithBidirectional or core.WithUndirected for
//     the symmetric K_n.
//
// Complexity: O(n²).

package builder

import "fmt"

const minCompleteNodes = 1

// Complete returns a Constructor that builds the transitive tournament on n
// vertices.
func Complete(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		base := d.addVertices(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				d.addArc(cfg, base+vtx(i), base+vtx(j))
			}
		}
		return nil
	}
}
