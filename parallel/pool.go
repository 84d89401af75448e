package parallel

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
)

// DefaultChunkSize is the number of indices handed to a worker per claim.
const DefaultChunkSize = 1024

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("parallel: invalid option supplied")

// Option configures a Pool.
type Option func(*Pool)

// Pool is a fixed-size fork-join worker pool. It holds no goroutines between
// calls and is safe for concurrent use by independent callers.
type Pool struct {
	workers int
	chunk   int
	err     error
}

// WithWorkers sets the worker count. Zero selects runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(p *Pool) {
		switch {
		case n < 0:
			p.err = fmt.Errorf("%w: workers cannot be negative (%d)", ErrOptionViolation, n)
		case n > 0:
			p.workers = n
		}
	}
}

// WithChunkSize sets the chunk size. Zero selects DefaultChunkSize.
func WithChunkSize(c int) Option {
	return func(p *Pool) {
		switch {
		case c < 0:
			p.err = fmt.Errorf("%w: chunk size cannot be negative (%d)", ErrOptionViolation, c)
		case c > 0:
			p.chunk = c
		}
	}
}

// New returns a Pool sized to the available hardware parallelism unless
// overridden by options.
func New(opts ...Option) (*Pool, error) {
	p := &Pool{
		workers: runtime.GOMAXPROCS(0),
		chunk:   DefaultChunkSize,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.err != nil {
		return nil, p.err
	}
	return p, nil
}

// Workers returns the maximum number of concurrent workers.
func (p *Pool) Workers() int { return p.workers }

// ChunkSize returns the number of indices per chunk.
func (p *Pool) ChunkSize() int { return p.chunk }

// Chunks returns how many chunks For(n, ...) will produce.
func (p *Pool) Chunks(n int) int {
	if n <= 0 {
		return 0
	}
	return (n + p.chunk - 1) / p.chunk
}

// For runs body over [0,n) in chunks [lo,hi) claimed dynamically by up to
// Workers() goroutines. w is the worker index in [0, Workers()), stable for
// the lifetime of one goroutine, so callers may keep per-worker scratch state
// indexed by it. finish, when non-nil, is called once per participating
// worker after its last chunk. For returns after all workers are done.
//
// A workload of a single chunk runs inline on the calling goroutine as worker 0.
func (p *Pool) For(n int, body func(w, lo, hi int), finish func(w int)) {
	chunks := p.Chunks(n)
	if chunks == 0 {
		return
	}
	workers := min(p.workers, chunks)

	if workers == 1 {
		for lo := 0; lo < n; lo += p.chunk {
			body(0, lo, min(lo+p.chunk, n))
		}
		if finish != nil {
			finish(0)
		}
		return
	}

	var (
		next atomic.Int64
		wg   sync.WaitGroup
	)
	chunk := int64(p.chunk)
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			for {
				lo := next.Add(chunk) - chunk
				if lo >= int64(n) {
					break
				}
				body(w, int(lo), min(int(lo+chunk), n))
			}
			if finish != nil {
				finish(w)
			}
		}(w)
	}
	wg.Wait()
}
