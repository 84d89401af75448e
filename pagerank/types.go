package pagerank

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/pargraph/core"
	"github.com/katalvlaran/pargraph/parallel"
)

// Sentinel errors for PageRank.
var (
	ErrGraphNil           = errors.New("pagerank: graph is nil")
	ErrInvalidDamping     = errors.New("pagerank: damping must be in [0, 1)")
	ErrInvalidConvergence = errors.New("pagerank: convergence threshold must be positive")
	ErrOptionViolation    = errors.New("pagerank: invalid option supplied")
)

// IterationStats describes one completed iteration.
type IterationStats struct {
	Iteration    int     // 1-based
	Delta        float64 // L1 change against the previous generation
	DanglingMass float64 // score held by dangling vertices before the update
	Sum          float64 // total score of the new generation
	Duration     time.Duration
}

// Options configures a PageRank run.
type Options struct {
	Ctx context.Context

	// MaxIterations caps the number of iterations; 0 means until converged.
	MaxIterations int

	Workers   int
	ChunkSize int

	OnIteration func(IterationStats)

	Logger         zerolog.Logger
	TracerProvider trace.TracerProvider

	err error
}

// Option is a functional option for Run.
type Option func(*Options)

// DefaultOptions returns background context, no iteration cap, GOMAXPROCS
// workers, parallel.DefaultChunkSize, no hook and a disabled logger.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		Workers:        runtime.GOMAXPROCS(0),
		ChunkSize:      parallel.DefaultChunkSize,
		Logger:         zerolog.Nop(),
		TracerProvider: otel.GetTracerProvider(),
	}
}

// WithContext sets a context checked between iterations.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxIterations stops after n iterations even if not converged.
// Zero removes the cap; negative values are rejected.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: max iterations cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxIterations = n
	}
}

// WithWorkers sets the worker count; 0 keeps the default.
func WithWorkers(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: workers cannot be negative (%d)", ErrOptionViolation, n)
		case n > 0:
			o.Workers = n
		}
	}
}

// WithChunkSize sets the vertices per scheduling chunk; 0 keeps the default.
func WithChunkSize(c int) Option {
	return func(o *Options) {
		switch {
		case c < 0:
			o.err = fmt.Errorf("%w: chunk size cannot be negative (%d)", ErrOptionViolation, c)
		case c > 0:
			o.ChunkSize = c
		}
	}
}

// WithOnIteration registers a callback run after every iteration on the
// calling goroutine.
func WithOnIteration(fn func(IterationStats)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnIteration = fn
		}
	}
}

// WithLogger sets the logger for per-iteration debug records.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithTracerProvider sets the provider the run's span is created from.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *Options) {
		if tp != nil {
			o.TracerProvider = tp
		}
	}
}

// Result holds the final scores.
type Result struct {
	Scores     []float64
	Iterations int
	Delta      float64 // L1 change of the last iteration
	Converged  bool
}

// Sum returns the total score, 1 up to rounding for a non-empty graph.
func (r *Result) Sum() float64 { return floats.Sum(r.Scores) }

// Top returns up to k vertices ordered by descending score. Ties keep
// ascending vertex order.
func (r *Result) Top(k int) []core.Vertex {
	n := len(r.Scores)
	k = min(max(k, 0), n)
	neg := make([]float64, n)
	for i, s := range r.Scores {
		neg[i] = -s
	}
	idx := make([]int, n)
	floats.ArgsortStable(neg, idx)

	top := make([]core.Vertex, k)
	for i := range top {
		top[i] = core.Vertex(idx[i])
	}
	return top
}
