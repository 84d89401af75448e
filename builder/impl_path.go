// SPDX-License-Identifier: MIT
// Package: pargraph/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ MinPathNodes (else ErrTooFewVertices).
//   - Emits arcs (i-1)→i for i=1..n-1 in increasing order.
//
// Complexity: O(n).

package builder

import "fmt"

// Path returns a Constructor that builds the directed path 0→1→…→n-1.
func Path(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < MinPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodPath, n, MinPathNodes, ErrTooFewVertices)
		}
		base := d.addVertices(n)
		for i := 1; i < n; i++ {
			d.addArc(cfg, base+vtx(i-1), base+vtx(i))
		}
		return nil
	}
}
