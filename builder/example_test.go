package builder_test

import (
	"fmt"

	"github.com/katalvlaran/pargraph/builder"
	"github.com/katalvlaran/pargraph/core"
)

// ExampleBuildGraph composes a grid with two unreachable vertices.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithoutLoops()},
		nil,
		builder.Grid(2, 3),
		builder.Isolated(2),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("vertices:", g.NumVertices(), "arcs:", g.NumEdges())
	fmt.Println("out(0):", g.Outgoing(0), "in(4):", g.Incoming(4))
	// Output:
	// vertices: 8 arcs: 7
	// out(0): [1 3] in(4): [1 3]
}
