package bfs

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/pargraph/core"
	"github.com/katalvlaran/pargraph/frontier"
	"github.com/katalvlaran/pargraph/parallel"
	"github.com/katalvlaran/pargraph/visit"
)

const tracerName = "github.com/katalvlaran/pargraph/bfs"

// walker encapsulates the mutable state of one run.
type walker struct {
	g        core.Graph
	n        int
	strategy Strategy
	opts     BFSOptions
	pool     *parallel.Pool

	dist      *visit.Table
	cur, next *frontier.Frontier
	member    *frontier.Membership // allocated on the first bottom-up round
	bufs      []frontier.Buffer    // one per worker

	visited int
	res     *Result
}

// RunTopDown runs Run with the TopDown strategy.
func RunTopDown(g core.Graph, opts ...Option) (*Result, error) { return Run(g, TopDown, opts...) }

// RunBottomUp runs Run with the BottomUp strategy.
func RunBottomUp(g core.Graph, opts ...Option) (*Result, error) { return Run(g, BottomUp, opts...) }

// RunHybrid runs Run with the Hybrid strategy.
func RunHybrid(g core.Graph, opts ...Option) (*Result, error) { return Run(g, Hybrid, opts...) }

// Run computes the distance of every vertex of g from the root using
// strategy s. Each call owns a fresh distance array of length NumVertices.
// An empty graph yields an empty Result.
func Run(g core.Graph, s Strategy, opts ...Option) (res *Result, err error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if s < TopDown || s > Hybrid {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(s))
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	ctx, span := o.TracerProvider.Tracer(tracerName).Start(o.Ctx, "bfs.Run",
		trace.WithAttributes(
			attribute.String("strategy", s.String()),
			attribute.Int("vertices", g.NumVertices()),
			attribute.Int("edges", g.NumEdges()),
			attribute.Int("root", int(o.Root)),
			attribute.Int("workers", o.Workers),
		),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetAttributes(
				attribute.Int("rounds", res.Rounds),
				attribute.Int("reached", res.Reached),
			)
			span.SetStatus(codes.Ok, "bfs completed")
		}
		span.End()
	}()

	n := g.NumVertices()
	if n == 0 {
		return &Result{Distances: []int32{}}, nil
	}
	if o.Root < 0 || int(o.Root) >= n {
		return nil, fmt.Errorf("%w: root %d with %d vertices", ErrRootOutOfRange, o.Root, n)
	}

	pool, err := parallel.New(parallel.WithWorkers(o.Workers), parallel.WithChunkSize(o.ChunkSize))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOptionViolation, err)
	}

	w := &walker{
		g:        g,
		n:        n,
		strategy: s,
		opts:     o,
		pool:     pool,
		dist:     visit.NewTable(n),
		cur:      frontier.New(n),
		next:     frontier.New(n),
		bufs:     make([]frontier.Buffer, pool.Workers()),
		res:      &Result{},
	}
	if err = w.loop(ctx, span); err != nil {
		return nil, err
	}

	w.res.Distances = w.dist.Distances()
	w.res.Reached = w.visited
	o.Logger.Debug().
		Str("strategy", s.String()).
		Int("rounds", w.res.Rounds).
		Int("top_down_rounds", w.res.TopDownRounds).
		Int("bottom_up_rounds", w.res.BottomUpRounds).
		Int("reached", w.res.Reached).
		Msg("bfs finished")

	return w.res, nil
}

// loop seeds the root and runs rounds until the frontier is empty or the
// context is done.
func (w *walker) loop(ctx context.Context, span trace.Span) error {
	root := w.opts.Root
	w.dist.Set(root, 0)
	w.claimed(root, 0)
	w.cur.Add(root)

	for depth := int32(0); w.cur.Len() > 0; depth++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		size := w.cur.Len()
		w.visited += size
		step := w.chooseStep(size)

		start := time.Now()
		w.next.Clear()
		if step == StepBottomUp {
			w.bottomUpStep(depth)
			w.res.BottomUpRounds++
		} else {
			w.topDownStep(depth)
			w.res.TopDownRounds++
		}

		stats := RoundStats{
			Strategy: w.strategy,
			Step:     step,
			Round:    w.res.Rounds,
			Depth:    depth,
			Frontier: size,
			Next:     w.next.Len(),
			Visited:  w.visited + w.next.Len(),
			Duration: time.Since(start),
		}
		w.res.Rounds++
		w.report(stats, span)

		w.cur, w.next = w.next, w.cur
	}
	return nil
}

// chooseStep applies the strategy to a frontier of the given size.
func (w *walker) chooseStep(size int) Step {
	switch w.strategy {
	case TopDown:
		return StepTopDown
	case BottomUp:
		return StepBottomUp
	}
	bottomUp := w.opts.Switch(SwitchState{
		Round:     w.res.Rounds,
		Frontier:  size,
		Visited:   w.visited,
		Remaining: w.n - w.visited,
		Vertices:  w.n,
		Threshold: w.opts.HybridThreshold,
	})
	if bottomUp {
		return StepBottomUp
	}
	return StepTopDown
}

func (w *walker) report(s RoundStats, span trace.Span) {
	w.opts.Logger.Debug().
		Int("round", s.Round).
		Int32("depth", s.Depth).
		Stringer("step", s.Step).
		Int("frontier", s.Frontier).
		Int("next", s.Next).
		Dur("elapsed", s.Duration).
		Msg("bfs round")
	span.AddEvent("round", trace.WithAttributes(
		attribute.Int("round", s.Round),
		attribute.String("step", s.Step.String()),
		attribute.Int("frontier", s.Frontier),
		attribute.Int("next", s.Next),
	))
	if w.opts.OnRound != nil {
		w.opts.OnRound(s)
	}
}

func (w *walker) claimed(v core.Vertex, d int32) {
	if w.opts.OnClaim != nil {
		w.opts.OnClaim(v, d)
	}
}

// flush publishes worker wk's buffer into the next frontier.
func (w *walker) flush(wk int) { w.bufs[wk].Flush(w.next) }
