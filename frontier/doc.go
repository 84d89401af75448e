// Package frontier provides the per-round vertex containers of a parallel
// breadth-first search.
//
// What
//
//   - Frontier: a pre-sized, write-once-per-round list of vertex ids. Workers
//     reserve disjoint index ranges with an atomic fetch-and-add and then copy
//     into them without further synchronization.
//   - Buffer: a worker-local scratch list that is published into a Frontier
//     with a single reservation (Flush). This is the low-contention
//     aggregation used by both traversal directions.
//   - Membership: a dense boolean view of a Frontier, rebuilt in full from the
//     frontier each time it is needed.
//
// Lifecycle
//
//	Two frontiers alternate as current/next; the caller Clears next, workers
//	Flush their buffers into it, the round ends, and the pointers swap.
//	Elements are never removed; order within a frontier depends on scheduling.
//
// Complexity
//
//   - Clear, ClaimSlot, ClaimSlots: O(1)
//   - Publish / Flush: O(k) for k published vertices
//   - Membership.Rebuild: O(N) (full clear) + O(|frontier|)
package frontier
