// SPDX-License-Identifier: MIT
//
// File: gonum.go
// Role: conversion between CSR and gonum's graph types.

package core

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
)

// FromGonum converts a gonum directed graph into a CSR. Gonum node ids are
// sorted ascending and mapped onto dense vertex ids; the returned slice maps
// each vertex back to its gonum id.
//
// Complexity: O(N log N + E log E).
func FromGonum(g graph.Directed, opts ...GraphOption) (*CSR, []int64, error) {
	if g == nil {
		return nil, nil, ErrGraphNil
	}

	nodes := graph.NodesOf(g.Nodes())
	ids := make([]int64, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID()
	}
	slices.Sort(ids)

	index := make(map[int64]Vertex, len(ids))
	for i, id := range ids {
		index[id] = Vertex(i)
	}

	var edges []Edge
	for _, id := range ids {
		to := g.From(id)
		for to.Next() {
			edges = append(edges, Edge{From: index[id], To: index[to.Node().ID()]})
		}
	}

	csr, err := NewCSR(len(ids), edges, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("core: FromGonum: %w", err)
	}
	return csr, ids, nil
}

// Gonum returns a gonum simple.DirectedGraph with node ids 0..N-1 and one
// edge per distinct arc. Self-loops are dropped because simple graphs reject
// them.
//
// Complexity: O(N + E).
func (g *CSR) Gonum() *simple.DirectedGraph {
	dg := simple.NewDirectedGraph()
	for v := 0; v < g.n; v++ {
		dg.AddNode(simple.Node(v))
	}
	for u := 0; u < g.n; u++ {
		for _, v := range g.Outgoing(Vertex(u)) {
			if int(v) == u {
				continue
			}
			dg.SetEdge(dg.NewEdge(simple.Node(u), simple.Node(v)))
		}
	}
	return dg
}
