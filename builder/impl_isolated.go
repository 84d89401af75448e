// SPDX-License-Identifier: MIT
// Package: pargraph/builder
//
// impl_isolated.go - implementation of Isolated(n) constructor.

package builder

import "fmt"

// Isolated returns a Constructor that adds n vertices without arcs, the
// usual way to give a fixture unreachable vertices.
func Isolated(n int) Constructor {
	return func(d *draft, _ builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", MethodIsolated, n, ErrTooFewVertices)
		}
		d.addVertices(n)
		return nil
	}
}
