// SPDX-License-Identifier: MIT
// Package: pargraph/builder
//
// impl_tree.go - implementation of BinaryTree(depth) constructor.
//
// Contract:
//   - depth ≥ MinTreeDepth (else ErrTooFewVertices).
//   - 2^depth - 1 vertices in heap order; arcs i→2i+1 and i→2i+2.
//
// Complexity: O(2^depth).

package builder

import "fmt"

// maxTreeDepth keeps the vertex count inside core.Vertex.
const maxTreeDepth = 30

// BinaryTree returns a Constructor that builds the complete binary tree with
// the given number of levels. Vertices at level k have distance k from the
// root.
func BinaryTree(depth int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if depth < MinTreeDepth {
			return fmt.Errorf("%s: depth=%d < min=%d: %w", MethodBinaryTree, depth, MinTreeDepth, ErrTooFewVertices)
		}
		if depth > maxTreeDepth {
			return fmt.Errorf("%s: depth=%d > max=%d: %w", MethodBinaryTree, depth, maxTreeDepth, ErrConstructFailed)
		}
		n := 1<<depth - 1
		base := d.addVertices(n)
		for i := 0; 2*i+1 < n; i++ {
			d.addArc(cfg, base+vtx(i), base+vtx(2*i+1))
			d.addArc(cfg, base+vtx(i), base+vtx(2*i+2))
		}
		return nil
	}
}
