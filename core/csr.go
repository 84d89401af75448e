// SPDX-License-Identifier: MIT
//
// File: csr.go
// Role: immutable compressed sparse row graph with outgoing and incoming views.
// Determinism:
//   - Neighbor ranges are sorted ascending; equal inputs give equal layouts.
// Concurrency:
//   - No mutation after NewCSR returns; concurrent reads need no locking.

package core

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/pargraph/internal/debug"
)

// CSR is an immutable directed graph in compressed sparse row form, storing
// both the outgoing and the incoming (transposed) adjacency.
type CSR struct {
	n         int
	outStarts []int // len n+1
	outEdges  []Vertex
	inStarts  []int // len n+1
	inEdges   []Vertex
}

var _ Graph = (*CSR)(nil)

// NewCSR builds a CSR graph over n vertices from an arc list.
//
// Steps:
//  1. Validate n and every endpoint.
//  2. Expand undirected edges, drop loops/multi-arcs as configured.
//  3. Sort arcs by (From, To) and lay out the outgoing arrays.
//  4. Counting-sort the same arcs by To for the incoming arrays; tails come
//     out ascending because the input is already ordered by From.
//
// Complexity: O(N + E log E) time, O(N + E) space.
func NewCSR(n int, edges []Edge, opts ...GraphOption) (*CSR, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrNegativeVertexCount, n)
	}
	var cfg graphConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	arcs := make([]Edge, 0, len(edges))
	for i, e := range edges {
		if int(e.From) < 0 || int(e.From) >= n || int(e.To) < 0 || int(e.To) >= n {
			return nil, fmt.Errorf("%w: edge %d (%d→%d) with n=%d", ErrVertexOutOfRange, i, e.From, e.To, n)
		}
		if e.From == e.To && cfg.noLoops {
			continue
		}
		arcs = append(arcs, e)
		if cfg.undirected && e.From != e.To {
			arcs = append(arcs, Edge{From: e.To, To: e.From})
		}
	}

	slices.SortFunc(arcs, func(a, b Edge) int {
		if c := cmp.Compare(a.From, b.From); c != 0 {
			return c
		}
		return cmp.Compare(a.To, b.To)
	})
	if cfg.noMulti {
		arcs = slices.Compact(arcs)
	}

	g := &CSR{
		n:         n,
		outStarts: make([]int, n+1),
		outEdges:  make([]Vertex, len(arcs)),
		inStarts:  make([]int, n+1),
		inEdges:   make([]Vertex, len(arcs)),
	}

	for i, a := range arcs {
		g.outStarts[a.From+1]++
		g.inStarts[a.To+1]++
		g.outEdges[i] = a.To
	}
	for v := 0; v < n; v++ {
		g.outStarts[v+1] += g.outStarts[v]
		g.inStarts[v+1] += g.inStarts[v]
	}

	// cursor[v] is the next free slot in v's incoming range.
	cursor := make([]int, n)
	copy(cursor, g.inStarts[:n])
	for _, a := range arcs {
		g.inEdges[cursor[a.To]] = a.From
		cursor[a.To]++
	}

	return g, nil
}

// NumVertices returns the number of vertices.
func (g *CSR) NumVertices() int { return g.n }

// NumEdges returns the number of stored arcs.
func (g *CSR) NumEdges() int { return len(g.outEdges) }

// Outgoing returns the heads of v's outgoing arcs, ascending.
func (g *CSR) Outgoing(v Vertex) []Vertex {
	debug.Assertf(int(v) >= 0 && int(v) < g.n, "core: Outgoing(%d) with n=%d", v, g.n)
	return g.outEdges[g.outStarts[v]:g.outStarts[v+1]]
}

// Incoming returns the tails of v's incoming arcs, ascending.
func (g *CSR) Incoming(v Vertex) []Vertex {
	debug.Assertf(int(v) >= 0 && int(v) < g.n, "core: Incoming(%d) with n=%d", v, g.n)
	return g.inEdges[g.inStarts[v]:g.inStarts[v+1]]
}

// OutgoingRange returns the half-open range [start,end) of v's arcs in OutgoingEdges.
func (g *CSR) OutgoingRange(v Vertex) (start, end int) {
	return g.outStarts[v], g.outStarts[v+1]
}

// IncomingRange returns the half-open range [start,end) of v's arcs in IncomingEdges.
func (g *CSR) IncomingRange(v Vertex) (start, end int) {
	return g.inStarts[v], g.inStarts[v+1]
}

// OutgoingEdges exposes the shared outgoing edge array. Read only.
func (g *CSR) OutgoingEdges() []Vertex { return g.outEdges }

// IncomingEdges exposes the shared incoming edge array. Read only.
func (g *CSR) IncomingEdges() []Vertex { return g.inEdges }

// OutDegree returns the number of arcs leaving v.
func (g *CSR) OutDegree(v Vertex) int { return g.outStarts[v+1] - g.outStarts[v] }

// InDegree returns the number of arcs entering v.
func (g *CSR) InDegree(v Vertex) int { return g.inStarts[v+1] - g.inStarts[v] }

// Edges returns a fresh copy of all arcs ordered by (From, To).
//
// Complexity: O(E) time and space.
func (g *CSR) Edges() []Edge {
	out := make([]Edge, 0, len(g.outEdges))
	for u := 0; u < g.n; u++ {
		for _, v := range g.outEdges[g.outStarts[u]:g.outStarts[u+1]] {
			out = append(out, Edge{From: Vertex(u), To: v})
		}
	}
	return out
}
