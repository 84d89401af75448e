package pagerank

import (
	"fmt"
	"math"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/pargraph/core"
	"github.com/katalvlaran/pargraph/parallel"
)

const tracerName = "github.com/katalvlaran/pargraph/pagerank"

// solver owns the per-run state: two score generations, out-degrees, the
// dangling vertex list and per-chunk reduction slots.
type solver struct {
	g       core.Graph
	n       int
	damping float64
	pool    *parallel.Pool

	score, next []float64
	outdeg      []float64
	dangling    []core.Vertex

	diffs, sums []float64 // one slot per chunk
}

// Run computes PageRank scores of g with the given damping factor, iterating
// until the L1 change between generations is below convergence.
//
// Steps per iteration:
//  1. Sum the score of dangling vertices (list built once up front).
//  2. Parallel pull over incoming arcs into the next generation.
//  3. Reduce the per-chunk L1 changes in chunk order.
//  4. Swap generations.
//
// An empty graph yields an empty, converged Result.
func Run(g core.Graph, damping, convergence float64, opts ...Option) (res *Result, err error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if math.IsNaN(damping) || damping < 0 || damping >= 1 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDamping, damping)
	}
	if math.IsNaN(convergence) || convergence <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConvergence, convergence)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	ctx, span := o.TracerProvider.Tracer(tracerName).Start(o.Ctx, "pagerank.Run",
		trace.WithAttributes(
			attribute.Int("vertices", g.NumVertices()),
			attribute.Int("edges", g.NumEdges()),
			attribute.Float64("damping", damping),
			attribute.Float64("convergence", convergence),
		),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetAttributes(
				attribute.Int("iterations", res.Iterations),
				attribute.Float64("delta", res.Delta),
				attribute.Bool("converged", res.Converged),
			)
			span.SetStatus(codes.Ok, "pagerank completed")
		}
		span.End()
	}()

	n := g.NumVertices()
	if n == 0 {
		return &Result{Scores: []float64{}, Converged: true}, nil
	}

	pool, err := parallel.New(parallel.WithWorkers(o.Workers), parallel.WithChunkSize(o.ChunkSize))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOptionViolation, err)
	}
	s := newSolver(g, damping, pool)

	res = &Result{}
	for !res.Converged {
		if o.MaxIterations > 0 && res.Iterations >= o.MaxIterations {
			break
		}
		if err = ctx.Err(); err != nil {
			return nil, err
		}

		start := time.Now()
		stats := s.iterate()
		res.Iterations++
		res.Delta = stats.Delta
		res.Converged = stats.Delta < convergence

		stats.Iteration = res.Iterations
		stats.Duration = time.Since(start)
		o.Logger.Debug().
			Int("iteration", stats.Iteration).
			Float64("delta", stats.Delta).
			Float64("dangling", stats.DanglingMass).
			Dur("elapsed", stats.Duration).
			Msg("pagerank iteration")
		span.AddEvent("iteration", trace.WithAttributes(
			attribute.Int("iteration", stats.Iteration),
			attribute.Float64("delta", stats.Delta),
		))
		if o.OnIteration != nil {
			o.OnIteration(stats)
		}
	}

	res.Scores = s.score
	o.Logger.Debug().
		Int("iterations", res.Iterations).
		Float64("delta", res.Delta).
		Bool("converged", res.Converged).
		Msg("pagerank finished")

	return res, nil
}

func newSolver(g core.Graph, damping float64, pool *parallel.Pool) *solver {
	n := g.NumVertices()
	s := &solver{
		g:       g,
		n:       n,
		damping: damping,
		pool:    pool,
		score:   make([]float64, n),
		next:    make([]float64, n),
		outdeg:  make([]float64, n),
		diffs:   make([]float64, pool.Chunks(n)),
		sums:    make([]float64, pool.Chunks(n)),
	}
	uniform := 1.0 / float64(n)
	for v := 0; v < n; v++ {
		s.score[v] = uniform
		deg := len(g.Outgoing(core.Vertex(v)))
		s.outdeg[v] = float64(deg)
		if deg == 0 {
			s.dangling = append(s.dangling, core.Vertex(v))
		}
	}
	return s
}

// iterate computes one generation and swaps it in. Iteration and Duration of
// the returned stats are left to the caller.
func (s *solver) iterate() IterationStats {
	var dangling float64
	for _, v := range s.dangling {
		dangling += s.score[v]
	}

	nf := float64(s.n)
	base := (1-s.damping)/nf + s.damping*dangling/nf
	chunk := s.pool.ChunkSize()

	s.pool.For(s.n, func(_, lo, hi int) {
		var diff, sum float64
		for v := lo; v < hi; v++ {
			var in float64
			for _, u := range s.g.Incoming(core.Vertex(v)) {
				in += s.score[u] / s.outdeg[u]
			}
			x := base + s.damping*in
			s.next[v] = x
			diff += math.Abs(x - s.score[v])
			sum += x
		}
		s.diffs[lo/chunk] = diff
		s.sums[lo/chunk] = sum
	}, nil)

	stats := IterationStats{DanglingMass: dangling}
	for i := range s.diffs {
		stats.Delta += s.diffs[i]
		stats.Sum += s.sums[i]
	}
	s.score, s.next = s.next, s.score
	return stats
}
