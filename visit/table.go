package visit

import (
	"sync/atomic"

	"github.com/katalvlaran/pargraph/core"
)

// Unvisited marks a vertex that has not been reached.
const Unvisited int32 = -1

// Table maps each vertex to its BFS distance from the root.
type Table struct {
	dist []int32
}

// NewTable returns a table of n entries, all Unvisited.
func NewTable(n int) *Table {
	dist := make([]int32, n)
	for i := range dist {
		dist[i] = Unvisited
	}
	return &Table{dist: dist}
}

// TryClaim atomically sets v's distance to d if v is still Unvisited and
// reports whether this call won.
func (t *Table) TryClaim(v core.Vertex, d int32) bool {
	return atomic.CompareAndSwapInt32(&t.dist[v], Unvisited, d)
}

// Set stores d for v. Only for vertices owned by a single writer in the
// current round.
func (t *Table) Set(v core.Vertex, d int32) { atomic.StoreInt32(&t.dist[v], d) }

// Get returns v's distance, or Unvisited.
func (t *Table) Get(v core.Vertex) int32 { return atomic.LoadInt32(&t.dist[v]) }

// Visited reports whether v has been claimed.
func (t *Table) Visited(v core.Vertex) bool { return t.Get(v) != Unvisited }

// Len returns the number of entries.
func (t *Table) Len() int { return len(t.dist) }

// Distances exposes the backing array. Read it only after the run has joined
// all workers.
func (t *Table) Distances() []int32 { return t.dist }

// Reached counts visited entries.
func (t *Table) Reached() int {
	n := 0
	for _, d := range t.dist {
		if d != Unvisited {
			n++
		}
	}
	return n
}
