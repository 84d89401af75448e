// Package bfs provides a parallel, level-synchronous breadth-first search over
// a core.Graph, returning the unweighted shortest-path distance of every
// vertex from a root.
//
// What
//
//   - Three strategies over the same shared state:
//   - TopDown: every frontier vertex scans its outgoing arcs and claims
//     unvisited heads with a compare-and-swap.
//   - BottomUp: every unvisited vertex scans its incoming arcs and stops at
//     the first tail found in the current frontier.
//   - Hybrid: picks one of the two steps per round from frontier and
//     visited counts (DefaultSwitch, or a caller-supplied SwitchFunc).
//   - Returns a Result holding one int32 distance per vertex, with
//     visit.Unvisited (-1) for vertices not reachable from the root.
//   - Hooks: WithOnRound (driver side, once per round) and WithOnClaim
//     (concurrent, once per claimed vertex, including the root).
//
// Why
//
//   - Top-down is cheap while the frontier is small; bottom-up wins once the
//     frontier covers a large share of the remaining vertices, because each
//     unvisited vertex can stop scanning at its first frontier predecessor.
//   - Distances are identical for every strategy, switching predicate,
//     worker count and chunk size; only the order of vertices inside a
//     frontier depends on scheduling.
//
// Concurrency
//
//	Each round is one parallel-for over a parallel.Pool with dynamic chunks.
//	Workers collect discoveries in private frontier.Buffers and publish them
//	with a single atomic reservation when they run out of chunks. The pool
//	joins all workers before the round ends, so the next round sees every
//	write of the previous one. No locks are taken.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - TopDown:  O(V + E) work overall.
//   - BottomUp: O(V) per round plus the scanned incoming arcs.
//   - Memory:   O(V) (distances, two frontiers, membership set, buffers).
//
// Usage
//
//	res, err := bfs.RunHybrid(g,
//	    bfs.WithRoot(0),
//	    bfs.WithWorkers(8),
//	    bfs.WithOnRound(func(s bfs.RoundStats) { /* ... */ }),
//	)
//	if err != nil {
//	    // ErrGraphNil, ErrRootOutOfRange, ErrOptionViolation or a context error
//	}
//	d := res.Distance(42)
//
// Options
//
//   - DefaultOptions(): background context, root 0, GOMAXPROCS workers,
//     chunk size 1024, hybrid threshold 10 000 000, DefaultSwitch, no hooks,
//     disabled logger.
//   - WithContext(ctx), WithRoot(v), WithWorkers(n), WithChunkSize(c),
//     WithHybridThreshold(n), WithSwitch(fn), WithOnRound(fn),
//     WithOnClaim(fn), WithLogger(l), WithTracerProvider(tp).
//
// Errors
//
//   - ErrGraphNil         if the graph is nil.
//   - ErrRootOutOfRange   if the root is not in [0, NumVertices).
//   - ErrOptionViolation  for negative workers, chunk size or threshold.
//   - ErrUnknownStrategy  for a Strategy value outside the defined set.
//   - context.Canceled / DeadlineExceeded, checked between rounds.
package bfs
