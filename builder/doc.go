// Package builder provides deterministic, composable constructors of synthetic
// graphs for tests, benchmarks and the pargraph driver. Every constructor
// appends its vertices after those already emitted, so a BuildGraph call with
// several constructors yields their disjoint union, frozen into one
// immutable core.CSR.
//
// The package offers the following key components:
//
//   - Orchestrator:
//     – BuildGraph(gopts, bopts, cons...): resolves options, runs constructors
//     in order, then calls core.NewCSR with gopts.
//   - Topologies (local vertex 0 is the first vertex a constructor emits):
//     – Path(n):              0→1→…→n-1.
//     – Cycle(n):             Path plus n-1→0.
//     – Star(n):              hub 0 → leaves 1..n-1.
//     – Wheel(n):             hub 0 → rim 1..n-1, rim is a cycle.
//     – Complete(n):          i→j for every i<j.
//     – CompleteBipartite(a,b): every left vertex → every right vertex.
//     – Grid(rows, cols):     row-major cells, arcs right and down.
//     – BinaryTree(depth):    heap layout, i → 2i+1, 2i+2.
//     – Isolated(n):          n vertices, no arcs.
//     – RandomSparse(n, p):   each ordered pair i≠j with probability p.
//     – RandomEdges(n, m):    m arcs with uniform endpoints, no loops.
//   - Configuration (BuilderOption):
//     – WithSeed / WithRand:  RNG for the Random* constructors.
//     – WithBidirectional():  emit v→u next to every u→v.
//
// Guarantees:
//
//   - Determinism: equal constructors, options and seed give equal graphs.
//   - Constructors never panic; they return sentinel errors wrapped with the
//     constructor name. Option constructors panic on nil arguments.
//   - Graph-level policies (undirected, loops, multi-arcs) belong to core and
//     are applied by NewCSR through gopts.
package builder
