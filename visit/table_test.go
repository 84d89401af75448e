package visit_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pargraph/core"
	"github.com/katalvlaran/pargraph/visit"
)

func TestNewTable(t *testing.T) {
	tbl := visit.NewTable(5)
	require.Equal(t, 5, tbl.Len())
	require.Zero(t, tbl.Reached())
	for _, d := range tbl.Distances() {
		require.Equal(t, visit.Unvisited, d)
	}
	require.Zero(t, visit.NewTable(0).Len())
}

func TestTable_TryClaimOnce(t *testing.T) {
	tbl := visit.NewTable(3)
	require.True(t, tbl.TryClaim(1, 4))
	require.False(t, tbl.TryClaim(1, 2))
	require.Equal(t, int32(4), tbl.Get(1))
	require.True(t, tbl.Visited(1))
	require.False(t, tbl.Visited(0))

	tbl.Set(0, 0)
	require.False(t, tbl.TryClaim(0, 9))
	require.Equal(t, 2, tbl.Reached())
}

func TestTable_TryClaimConcurrent(t *testing.T) {
	const (
		vertices   = 256
		goroutines = 16
	)
	tbl := visit.NewTable(vertices)
	var wins [vertices]atomic.Int32

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for v := 0; v < vertices; v++ {
				if tbl.TryClaim(core.Vertex(v), int32(g)) {
					wins[v].Add(1)
				}
			}
		}(g)
	}
	wg.Wait()

	for v := 0; v < vertices; v++ {
		require.Equal(t, int32(1), wins[v].Load(), "vertex %d", v)
		d := tbl.Get(core.Vertex(v))
		require.GreaterOrEqual(t, d, int32(0))
		require.Less(t, d, int32(goroutines))
	}
	require.Equal(t, vertices, tbl.Reached())
}
