// SPDX-License-Identifier: MIT
// Package: pargraph/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ MinCycleNodes (else ErrTooFewVertices).
//   - Emits arcs i→i+1 for i=0..n-2, then the closing arc (n-1)→0.
//
// Complexity: O(n).

package builder

import "fmt"

// Cycle returns a Constructor that builds the directed ring C_n.
func Cycle(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}
		base := d.addVertices(n)
		for i := 0; i < n; i++ {
			d.addArc(cfg, base+vtx(i), base+vtx((i+1)%n))
		}
		return nil
	}
}
