// Package visit holds the per-run visitation table of a parallel BFS: one
// int32 distance per vertex, Unvisited (-1) until the vertex is claimed.
//
// A claim is a single compare-and-swap from Unvisited to the new depth. Among
// any number of workers racing on the same vertex exactly one TryClaim
// succeeds, and it is the only place top-down discovery serializes. Once set,
// an entry never changes for the rest of the run.
package visit
