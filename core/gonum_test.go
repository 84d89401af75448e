package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/pargraph/core"
)

func TestFromGonum(t *testing.T) {
	_, _, err := core.FromGonum(nil)
	require.ErrorIs(t, err, core.ErrGraphNil)

	dg := simple.NewDirectedGraph()
	for _, id := range []int64{10, 20, 30, 40} {
		dg.AddNode(simple.Node(id))
	}
	dg.SetEdge(simple.Edge{F: simple.Node(10), T: simple.Node(30)})
	dg.SetEdge(simple.Edge{F: simple.Node(30), T: simple.Node(20)})
	dg.SetEdge(simple.Edge{F: simple.Node(40), T: simple.Node(10)})

	g, ids, err := core.FromGonum(dg)
	require.NoError(t, err)
	require.Equal(t, []int64{10, 20, 30, 40}, ids)
	require.Equal(t, 4, g.NumVertices())
	require.Equal(t, []core.Edge{{0, 2}, {2, 1}, {3, 0}}, g.Edges())
}

func TestCSR_GonumRoundTrip(t *testing.T) {
	g, err := core.NewCSR(5, []core.Edge{{0, 1}, {1, 2}, {2, 2}, {2, 0}, {3, 4}})
	require.NoError(t, err)

	dg := g.Gonum()
	require.Equal(t, 5, dg.Nodes().Len())
	require.True(t, dg.HasEdgeFromTo(0, 1))
	require.True(t, dg.HasEdgeFromTo(2, 0))
	require.False(t, dg.HasEdgeFromTo(2, 2), "self-loops are dropped")

	back, ids, err := core.FromGonum(dg)
	require.NoError(t, err)
	require.Equal(t, []int64{0, 1, 2, 3, 4}, ids)
	require.Equal(t, []core.Edge{{0, 1}, {1, 2}, {2, 0}, {3, 4}}, back.Edges())
}
