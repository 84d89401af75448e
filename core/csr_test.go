package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pargraph/core"
)

// TestNewCSR_Errors verifies construction-time validation.
func TestNewCSR_Errors(t *testing.T) {
	_, err := core.NewCSR(-1, nil)
	require.ErrorIs(t, err, core.ErrNegativeVertexCount)

	_, err = core.NewCSR(2, []core.Edge{{From: 0, To: 2}})
	require.ErrorIs(t, err, core.ErrVertexOutOfRange)

	_, err = core.NewCSR(2, []core.Edge{{From: -1, To: 0}})
	require.ErrorIs(t, err, core.ErrVertexOutOfRange)
}

// TestNewCSR_Empty covers the zero-vertex graph.
func TestNewCSR_Empty(t *testing.T) {
	g, err := core.NewCSR(0, nil)
	require.NoError(t, err)
	require.Equal(t, 0, g.NumVertices())
	require.Equal(t, 0, g.NumEdges())
	require.Empty(t, g.Edges())
}

// TestNewCSR_Layout checks both adjacency directions and their ranges.
func TestNewCSR_Layout(t *testing.T) {
	// 0→2, 0→1, 1→2, 3→0 (unsorted on purpose)
	g, err := core.NewCSR(4, []core.Edge{{0, 2}, {0, 1}, {1, 2}, {3, 0}})
	require.NoError(t, err)

	require.Equal(t, 4, g.NumVertices())
	require.Equal(t, 4, g.NumEdges())

	require.Equal(t, []core.Vertex{1, 2}, g.Outgoing(0))
	require.Equal(t, []core.Vertex{2}, g.Outgoing(1))
	require.Empty(t, g.Outgoing(2))
	require.Equal(t, []core.Vertex{0}, g.Outgoing(3))

	require.Equal(t, []core.Vertex{3}, g.Incoming(0))
	require.Equal(t, []core.Vertex{0}, g.Incoming(1))
	require.Equal(t, []core.Vertex{0, 1}, g.Incoming(2))
	require.Empty(t, g.Incoming(3))

	start, end := g.OutgoingRange(0)
	require.Equal(t, []core.Vertex{1, 2}, g.OutgoingEdges()[start:end])
	start, end = g.IncomingRange(2)
	require.Equal(t, []core.Vertex{0, 1}, g.IncomingEdges()[start:end])

	require.Equal(t, 2, g.OutDegree(0))
	require.Equal(t, 0, g.OutDegree(2))
	require.Equal(t, 2, g.InDegree(2))

	require.Equal(t, []core.Edge{{0, 1}, {0, 2}, {1, 2}, {3, 0}}, g.Edges())
}

// TestNewCSR_Options covers undirected mirroring, loop and multi-arc removal.
func TestNewCSR_Options(t *testing.T) {
	edges := []core.Edge{{0, 1}, {0, 1}, {1, 1}, {1, 2}}

	g, err := core.NewCSR(3, edges)
	require.NoError(t, err)
	require.Equal(t, 4, g.NumEdges(), "default keeps loops and parallel arcs")
	require.Equal(t, []core.Vertex{1, 1}, g.Outgoing(0))

	g, err = core.NewCSR(3, edges, core.WithoutLoops(), core.WithoutMultiEdges())
	require.NoError(t, err)
	require.Equal(t, []core.Edge{{0, 1}, {1, 2}}, g.Edges())

	g, err = core.NewCSR(3, edges, core.WithUndirected(), core.WithoutMultiEdges())
	require.NoError(t, err)
	require.Equal(t, []core.Vertex{1}, g.Outgoing(0))
	require.Equal(t, []core.Vertex{0, 1, 2}, g.Outgoing(1))
	require.Equal(t, []core.Vertex{1}, g.Outgoing(2))
	require.Equal(t, []core.Vertex{0, 1, 2}, g.Incoming(1))
}

// TestCSR_DegreeSums checks Σ out-degree == Σ in-degree == E on a denser graph.
func TestCSR_DegreeSums(t *testing.T) {
	var edges []core.Edge
	const n = 50
	for u := 0; u < n; u++ {
		for v := 0; v < n; v += u%7 + 1 {
			edges = append(edges, core.Edge{From: core.Vertex(u), To: core.Vertex(v)})
		}
	}
	g, err := core.NewCSR(n, edges)
	require.NoError(t, err)

	var out, in int
	for v := 0; v < n; v++ {
		out += g.OutDegree(core.Vertex(v))
		in += g.InDegree(core.Vertex(v))
		for _, u := range g.Incoming(core.Vertex(v)) {
			require.Contains(t, g.Outgoing(u), core.Vertex(v))
		}
	}
	require.Equal(t, len(edges), out)
	require.Equal(t, len(edges), in)
	require.Equal(t, len(edges), g.NumEdges())
}
