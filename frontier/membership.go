package frontier

import "github.com/katalvlaran/pargraph/core"

// Membership is a dense set over all vertices answering "is v in the current
// frontier?" in O(1).
type Membership struct {
	in    []bool
	count int
}

// NewMembership allocates a set over n vertices.
func NewMembership(n int) *Membership {
	return &Membership{in: make([]bool, n)}
}

// Rebuild clears the whole set and marks every vertex of f.
func (m *Membership) Rebuild(f *Frontier) {
	clear(m.in)
	vs := f.Vertices()
	for _, v := range vs {
		m.in[v] = true
	}
	m.count = len(vs)
}

// Contains reports whether v was in the frontier at the last Rebuild.
func (m *Membership) Contains(v core.Vertex) bool { return m.in[v] }

// Len returns the number of members after the last Rebuild.
func (m *Membership) Len() int { return m.count }
