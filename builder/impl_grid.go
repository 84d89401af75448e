// SPDX-License-Identifier: MIT
// Package: pargraph/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Contract:
//   - rows ≥ MinGridDim and cols ≥ MinGridDim (else ErrTooFewVertices).
//   - Cell (r,c) is local vertex r*cols+c (row-major).
//   - For each cell in row-major order emit Right then Down, when present.
//
// Complexity: O(rows·cols).
//
// From cell (0,0) the BFS distance of (r,c) is r+c, so frontiers grow and
// shrink along anti-diagonals.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pargraph/core"
)

// Grid returns a Constructor that builds a rows×cols lattice with arcs
// pointing right and down.
func Grid(rows, cols int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				MethodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}
		base := d.addVertices(rows * cols)
		cell := func(r, c int) core.Vertex { return base + vtx(r*cols+c) }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					d.addArc(cfg, cell(r, c), cell(r, c+1))
				}
				if r+1 < rows {
					d.addArc(cfg, cell(r, c), cell(r+1, c))
				}
			}
		}
		return nil
	}
}
