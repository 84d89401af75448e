package bfs

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/pargraph/core"
	"github.com/katalvlaran/pargraph/parallel"
	"github.com/katalvlaran/pargraph/visit"
)

// DefaultHybridThreshold is the frontier size above which Hybrid always
// takes a bottom-up step.
const DefaultHybridThreshold = 10_000_000

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrRootOutOfRange is returned when the root is not a vertex of the graph.
	ErrRootOutOfRange = errors.New("bfs: root vertex out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrUnknownStrategy is returned for an undefined Strategy.
	ErrUnknownStrategy = errors.New("bfs: unknown strategy")
)

// Strategy selects how rounds are executed.
type Strategy int

const (
	TopDown Strategy = iota
	BottomUp
	Hybrid
)

// String returns the strategy's flag name.
func (s Strategy) String() string {
	switch s {
	case TopDown:
		return "top-down"
	case BottomUp:
		return "bottom-up"
	case Hybrid:
		return "hybrid"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy accepts "top-down", "bottom-up" and "hybrid" (case and
// separator insensitive: "topdown", "top_down" work too).
func ParseStrategy(s string) (Strategy, error) {
	key := strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(s))
	switch key {
	case "topdown":
		return TopDown, nil
	case "bottomup":
		return BottomUp, nil
	case "hybrid":
		return Hybrid, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
}

// Step is the direction actually executed in one round.
type Step int

const (
	StepTopDown Step = iota
	StepBottomUp
)

func (s Step) String() string {
	if s == StepBottomUp {
		return "bottom-up"
	}
	return "top-down"
}

// RoundStats describes one completed round. Delivered to OnRound on the
// calling goroutine.
type RoundStats struct {
	Strategy Strategy
	Step     Step
	Round    int   // 0-based
	Depth    int32 // distance of the frontier that was expanded
	Frontier int   // size of the expanded frontier
	Next     int   // vertices claimed this round
	Visited  int   // vertices claimed so far, root included
	Duration time.Duration
}

// SwitchState is the input of a SwitchFunc, evaluated at the start of every
// Hybrid round. Visited already counts the current frontier.
type SwitchState struct {
	Round     int
	Frontier  int
	Visited   int
	Remaining int // Vertices - Visited
	Vertices  int
	Threshold int
}

// SwitchFunc reports whether the next Hybrid round should run bottom-up.
// Any predicate yields the same distances; only the work done changes.
type SwitchFunc func(SwitchState) bool

// DefaultSwitch goes bottom-up when the frontier exceeds the threshold or
// outnumbers the vertices not yet visited.
func DefaultSwitch(s SwitchState) bool {
	return s.Frontier > s.Threshold || s.Frontier > s.Remaining
}

// Option configures BFS behavior via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when the
// search is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks of one run.
type BFSOptions struct {
	// Ctx is checked between rounds; a started round always completes.
	Ctx context.Context

	// Root is the source vertex.
	Root core.Vertex

	// Workers and ChunkSize configure the parallel.Pool of the run.
	Workers   int
	ChunkSize int

	// HybridThreshold and Switch drive the Hybrid strategy.
	HybridThreshold int
	Switch          SwitchFunc

	// OnRound is called after every round on the calling goroutine.
	OnRound func(RoundStats)

	// OnClaim is called concurrently from workers once per claimed vertex.
	OnClaim func(v core.Vertex, depth int32)

	Logger         zerolog.Logger
	TracerProvider trace.TracerProvider

	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - context.Background()
//   - root 0
//   - runtime.GOMAXPROCS(0) workers, chunks of parallel.DefaultChunkSize
//   - DefaultHybridThreshold and DefaultSwitch
//   - no hooks, disabled logger, global tracer provider.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:             context.Background(),
		Workers:         runtime.GOMAXPROCS(0),
		ChunkSize:       parallel.DefaultChunkSize,
		HybridThreshold: DefaultHybridThreshold,
		Switch:          DefaultSwitch,
		Logger:          zerolog.Nop(),
		TracerProvider:  otel.GetTracerProvider(),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithRoot sets the source vertex.
func WithRoot(v core.Vertex) Option {
	return func(o *BFSOptions) { o.Root = v }
}

// WithWorkers sets the number of workers.
//
//	n > 0: exactly n workers
//	n == 0: keep runtime.GOMAXPROCS(0)
//	n < 0: invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *BFSOptions) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: workers cannot be negative (%d)", ErrOptionViolation, n)
		case n > 0:
			o.Workers = n
		}
	}
}

// WithChunkSize sets the number of consecutive items a worker claims at once.
// Zero keeps the default; negative values are rejected.
func WithChunkSize(c int) Option {
	return func(o *BFSOptions) {
		switch {
		case c < 0:
			o.err = fmt.Errorf("%w: chunk size cannot be negative (%d)", ErrOptionViolation, c)
		case c > 0:
			o.ChunkSize = c
		}
	}
}

// WithHybridThreshold sets the frontier size above which DefaultSwitch goes
// bottom-up. Zero is allowed and makes every non-empty round bottom-up.
func WithHybridThreshold(n int) Option {
	return func(o *BFSOptions) {
		if n < 0 {
			o.err = fmt.Errorf("%w: hybrid threshold cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.HybridThreshold = n
	}
}

// WithSwitch replaces the Hybrid step predicate.
func WithSwitch(fn SwitchFunc) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.Switch = fn
		}
	}
}

// WithOnRound registers a callback run after every round.
func WithOnRound(fn func(RoundStats)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnRound = fn
		}
	}
}

// WithOnClaim registers a callback run for every claimed vertex. It is
// called from worker goroutines and must be safe for concurrent use.
func WithOnClaim(fn func(v core.Vertex, depth int32)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnClaim = fn
		}
	}
}

// WithLogger sets the logger for per-round debug records.
func WithLogger(l zerolog.Logger) Option {
	return func(o *BFSOptions) { o.Logger = l }
}

// WithTracerProvider sets the provider the run's span is created from.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *BFSOptions) {
		if tp != nil {
			o.TracerProvider = tp
		}
	}
}

// Result is the outcome of one search.
type Result struct {
	// Distances[v] is the distance of v from the root, or visit.Unvisited.
	Distances []int32

	Rounds         int
	TopDownRounds  int
	BottomUpRounds int

	// Reached counts vertices with a finite distance, root included.
	Reached int
}

// Distance returns v's distance, or visit.Unvisited.
func (r *Result) Distance(v core.Vertex) int32 { return r.Distances[v] }

// Reachable reports whether v was reached from the root.
func (r *Result) Reachable(v core.Vertex) bool { return r.Distances[v] != visit.Unvisited }

// Levels groups reached vertices by distance; Levels()[d] lists the vertices
// at distance d in ascending order.
func (r *Result) Levels() [][]core.Vertex {
	var levels [][]core.Vertex
	for v, d := range r.Distances {
		if d == visit.Unvisited {
			continue
		}
		for int(d) >= len(levels) {
			levels = append(levels, nil)
		}
		levels[d] = append(levels[d], core.Vertex(v))
	}
	return levels
}
