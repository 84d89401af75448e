// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: vertex/edge value types, the Graph accessor contract, options and sentinels.

package core

import "errors"

// Sentinel errors for graph construction.
var (
	// ErrNegativeVertexCount indicates NewCSR was asked for fewer than zero vertices.
	ErrNegativeVertexCount = errors.New("core: negative vertex count")

	// ErrVertexOutOfRange indicates an edge endpoint outside [0, n).
	ErrVertexOutOfRange = errors.New("core: vertex out of range")

	// ErrGraphNil indicates a nil source graph.
	ErrGraphNil = errors.New("core: graph is nil")
)

// Vertex is a dense vertex id in [0, NumVertices).
type Vertex int32

// Edge is a directed arc From→To.
type Edge struct {
	From Vertex
	To   Vertex
}

// Graph is the read-only accessor consumed by traversal and ranking.
//
// Implementations must be immutable for the lifetime of any run that uses
// them and safe for concurrent reads. Outgoing and Incoming return views into
// shared storage; callers must not modify them.
type Graph interface {
	// NumVertices returns N; vertex ids are 0..N-1.
	NumVertices() int
	// NumEdges returns the number of stored arcs.
	NumEdges() int
	// Outgoing returns the heads of all arcs leaving v.
	Outgoing(v Vertex) []Vertex
	// Incoming returns the tails of all arcs entering v.
	Incoming(v Vertex) []Vertex
}

// GraphOption configures CSR construction.
type GraphOption func(*graphConfig)

type graphConfig struct {
	undirected bool
	noLoops    bool
	noMulti    bool
}

// WithUndirected stores every input edge in both directions.
func WithUndirected() GraphOption {
	return func(c *graphConfig) { c.undirected = true }
}

// WithoutLoops drops self-loops.
func WithoutLoops() GraphOption {
	return func(c *graphConfig) { c.noLoops = true }
}

// WithoutMultiEdges collapses parallel arcs into a single arc.
func WithoutMultiEdges() GraphOption {
	return func(c *graphConfig) { c.noMulti = true }
}
