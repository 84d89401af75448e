// SPDX-License-Identifier: MIT
// Package: pargraph/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Contract:
//   - n ≥ MinWheelNodes (else ErrTooFewVertices).
//   - Local vertex 0 is the hub, 1..n-1 the rim.
//   - Emission order: rim cycle arcs first, then spokes hub→rim in rim order.
//
// Complexity: O(n).

package builder

import "fmt"

// Wheel returns a Constructor that builds W_n: a rim cycle of n-1 vertices
// plus a hub with a spoke to every rim vertex.
func Wheel(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < MinWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodWheel, n, MinWheelNodes, ErrTooFewVertices)
		}
		hub := d.addVertices(n)
		rim := n - 1
		for i := 0; i < rim; i++ {
			d.addArc(cfg, hub+1+vtx(i), hub+1+vtx((i+1)%rim))
		}
		for i := 1; i < n; i++ {
			d.addArc(cfg, hub, hub+vtx(i))
		}
		return nil
	}
}
