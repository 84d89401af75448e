// SPDX-License-Identifier: MIT
// Package: pargraph/builder
//
// api.go - public entry-point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Resolves cfg, runs
//     cons in order on a draft, freezes the draft into a core.CSR.
//   - Factories are implemented in impl_*.go.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pargraph/core"
)

// Constructor appends vertices and arcs to a draft using the resolved
// builderConfig. Constructors validate parameters before emitting anything
// and return sentinel errors; they never panic.
type Constructor func(d *draft, cfg builderConfig) error

// draft accumulates the vertex count and arc list of a graph under
// construction. Vertex ids are dense and assigned in emission order.
type draft struct {
	n     int
	edges []core.Edge
}

// addVertices reserves k new vertices and returns the id of the first.
func (d *draft) addVertices(k int) core.Vertex {
	base := core.Vertex(d.n)
	d.n += k
	return base
}

// addArc appends u→v, and v→u when the configuration asks for it.
func (d *draft) addArc(cfg builderConfig, u, v core.Vertex) {
	d.edges = append(d.edges, core.Edge{From: u, To: v})
	if cfg.bidirectional {
		d.edges = append(d.edges, core.Edge{From: v, To: u})
	}
}

// vtx converts a local index into a vertex id offset.
func vtx(i int) core.Vertex { return core.Vertex(i) }

// BuildGraph resolves the builder configuration from bopts, applies all
// constructors in order and freezes the result with core.NewCSR(gopts...).
// Any constructor error is wrapped with the context "BuildGraph: %w".
//
// Complexity: Σ cost of each constructor + O(V + E log E) for NewCSR.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.CSR, error) {
	cfg := newBuilderConfig(bopts...)

	d := &draft{}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(d, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	g, err := core.NewCSR(d.n, d.edges, gopts...)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}
	return g, nil
}
