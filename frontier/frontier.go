package frontier

import (
	"sync/atomic"

	"github.com/katalvlaran/pargraph/core"
	"github.com/katalvlaran/pargraph/internal/debug"
)

// Frontier is a fixed-capacity list of active vertices for one round.
// Appends from concurrent workers go through ClaimSlot/ClaimSlots or Publish;
// reads (Len, Vertices) are only valid once all writers have joined.
type Frontier struct {
	vertices []core.Vertex
	count    atomic.Int64
}

// New allocates a frontier able to hold capacity vertices, normally the
// graph's vertex count.
func New(capacity int) *Frontier {
	return &Frontier{vertices: make([]core.Vertex, capacity)}
}

// Clear empties the frontier in O(1). Storage is kept.
func (f *Frontier) Clear() { f.count.Store(0) }

// Len returns the number of vertices in the frontier.
func (f *Frontier) Len() int { return int(f.count.Load()) }

// Cap returns the fixed capacity.
func (f *Frontier) Cap() int { return len(f.vertices) }

// Add appends v. Not safe for concurrent use; intended for seeding the root.
func (f *Frontier) Add(v core.Vertex) {
	i := f.count.Load()
	debug.Assertf(int(i) < len(f.vertices), "frontier: Add beyond capacity %d", len(f.vertices))
	f.vertices[i] = v
	f.count.Store(i + 1)
}

// ClaimSlot reserves one slot and returns its index. Concurrent callers never
// receive the same index.
func (f *Frontier) ClaimSlot() int { return f.ClaimSlots(1) }

// ClaimSlots reserves k consecutive slots and returns the first index of the
// range [start, start+k), disjoint from every other reservation of the round.
func (f *Frontier) ClaimSlots(k int) int {
	end := f.count.Add(int64(k))
	debug.Assertf(int(end) <= len(f.vertices), "frontier: reservation end %d beyond capacity %d", end, len(f.vertices))
	return int(end) - k
}

// Set stores v in a slot previously returned by ClaimSlot/ClaimSlots.
func (f *Frontier) Set(slot int, v core.Vertex) { f.vertices[slot] = v }

// Publish appends vs with one reservation followed by a bulk copy into the
// reserved range. Safe for concurrent use.
func (f *Frontier) Publish(vs []core.Vertex) {
	if len(vs) == 0 {
		return
	}
	start := f.ClaimSlots(len(vs))
	copy(f.vertices[start:start+len(vs)], vs)
}

// Vertices returns the current contents. The slice aliases the frontier's
// storage and must be treated as read only.
func (f *Frontier) Vertices() []core.Vertex { return f.vertices[:f.Len()] }
