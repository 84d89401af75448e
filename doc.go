// Package pargraph is a toolkit for level-synchronous parallel graph
// traversal and ranking on immutable CSR graphs.
//
// What is pargraph?
//
//	A small set of packages that split a parallel BFS into its moving parts
//	and reuse them for PageRank:
//
//	core/      - Graph accessor, immutable CSR with incoming and outgoing arcs, gonum interop
//	frontier/  - shared frontier with atomic slot claiming, per-worker buffers, membership set
//	visit/     - distance table with compare-and-swap claiming
//	parallel/  - chunked fork-join worker pool
//	bfs/       - top-down, bottom-up and hybrid (direction-optimizing) BFS
//	pagerank/  - parallel PageRank with dangling-mass redistribution
//	builder/   - deterministic and seeded synthetic graph constructors
//	metrics/   - Prometheus collector fed by the BFS and PageRank hooks
//	config/    - viper/pflag configuration and zerolog logger factory
//
// The pargraph command (cmd/pargraph) wires these together: it builds a graph,
// runs every BFS strategy from one root, checks that they agree on all
// distances, ranks the vertices and optionally writes the run's metrics to a
// Prometheus text file.
//
// Quick start:
//
//	g, _ := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(1)},
//		builder.RandomEdges(1_000_000, 8_000_000))
//	res, _ := bfs.RunHybrid(g, bfs.WithRoot(0), bfs.WithWorkers(8))
//	pr, _ := pagerank.Run(g, 0.85, 1e-7)
//	fmt.Println(res.Reached, pr.Top(10))
package pargraph
