// Package pagerank computes PageRank scores of a core.Graph by parallel power
// iteration.
//
// Every iteration pulls score along incoming arcs:
//
//	next[v] = (1-d)/N + d * Σ_{u→v} score[u]/outdeg(u) + d * dangling/N
//
// where dangling is the total score of vertices without outgoing arcs, spread
// uniformly over all vertices. Scores start at 1/N and keep summing to 1.
// Iteration stops when the L1 change Σ|next[v]-score[v]| drops below the
// convergence threshold, or after WithMaxIterations iterations.
//
// Vertices are partitioned over a parallel.Pool; each worker writes only its
// own slice of next and reads the previous generation, so no synchronization
// beyond the end-of-iteration join is needed. The L1 change is reduced from
// per-chunk partial sums added in chunk order, which makes every result
// bit-identical for any worker count at a fixed chunk size.
//
// Errors:
//
//	ErrGraphNil           - nil graph.
//	ErrInvalidDamping     - damping outside [0, 1).
//	ErrInvalidConvergence - convergence threshold not > 0.
//	ErrOptionViolation    - negative workers, chunk size or iteration cap.
package pagerank
