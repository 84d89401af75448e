// Package parallel provides the fork-join parallel-for used by the traversal
// and ranking packages.
//
// A Pool has a fixed worker count and a fixed chunk size. For(n, body, finish)
// splits [0,n) into chunks of ChunkSize() consecutive indices and hands them
// out dynamically: each worker repeatedly claims the next chunk with an atomic
// fetch-and-add until the range is exhausted, which balances irregular work
// such as variable vertex degrees. When a worker runs out of chunks, finish is
// called once on its goroutine; For returns only after every worker has
// finished (an implicit barrier).
//
// Chunk boundaries depend on the chunk size alone, never on the worker count,
// so per-chunk partial results indexed by lo/ChunkSize() can be combined in a
// fixed order to obtain results independent of scheduling.
//
// There is no cancellation inside For: once started, a round runs to completion.
package parallel
