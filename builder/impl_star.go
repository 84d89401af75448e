// SPDX-License-Identifier: MIT
// Package: pargraph/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ MinStarNodes (else ErrTooFewVertices).
//   - Local vertex 0 is the hub; arcs hub→leaf for leaves 1..n-1.
//
// Complexity: O(n).

package builder

import "fmt"

// Star returns a Constructor that builds a hub with n-1 leaves.
// From the hub a BFS reaches every leaf in a single round, which makes the
// star the canonical fixture for the bottom-up switch.
func Star(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < MinStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodStar, n, MinStarNodes, ErrTooFewVertices)
		}
		hub := d.addVertices(n)
		for i := 1; i < n; i++ {
			d.addArc(cfg, hub, hub+vtx(i))
		}
		return nil
	}
}
