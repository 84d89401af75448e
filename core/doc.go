// Package core provides the read-only graph accessor consumed by the parallel
// traversal and ranking packages, and an immutable compressed sparse row (CSR)
// implementation of it.
//
// The Graph G = (V,E) is described by dense vertex ids 0..N-1 and two edge
// arrays sharing the same arcs:
//
//   - outgoing: outEdges[outStarts[v]:outStarts[v+1]] are the heads of v's arcs
//   - incoming: inEdges[inStarts[v]:inStarts[v+1]] are the tails of arcs into v
//
// Both ranges are sorted ascending, so iteration order is deterministic.
//
// Why CSR?
//
//   - Two flat arrays per direction, no pointers: cache friendly under
//     concurrent read-only access from many workers.
//   - Neighbor lookups are O(1) sub-slicing with no allocation.
//   - Immutable after construction: safe to share across goroutines and runs
//     without locks.
//
// Configuration Options (GraphOption):
//
//	– WithUndirected()
//	    Every edge u–v is stored as the two arcs u→v and v→u.
//
//	– WithoutLoops()
//	    Self-loops v→v are dropped during construction.
//
//	– WithoutMultiEdges()
//	    Parallel arcs collapse into one.
//
// Core Methods:
//
//	NewCSR(n, edges, opts...) (*CSR, error)   // O(N + E)
//	NumVertices(), NumEdges()                  // O(1)
//	Outgoing(v), Incoming(v)                   // O(1), sub-slices
//	OutgoingRange(v), IncomingRange(v)         // O(1), [start,end) into the edge arrays
//	OutDegree(v), InDegree(v)                  // O(1)
//	Edges()                                    // O(E), fresh slice
//
// Gonum interop:
//
//	FromGonum(g graph.Directed) (*CSR, []int64, error)
//	(*CSR).Gonum() *simple.DirectedGraph
//
// Out-of-range vertex ids passed to the accessors are undefined behavior: the
// hot path performs no bounds validation beyond Go's own slice checks. Build
// with -tags pargraph_debug to enable assertions.
//
// Errors:
//
//	ErrNegativeVertexCount - NewCSR called with n < 0.
//	ErrVertexOutOfRange    - an edge endpoint is outside [0, n).
//	ErrGraphNil            - nil gonum graph handed to FromGonum.
package core
