// Command pargraph builds a synthetic graph, runs the parallel BFS strategies
// from a root, checks that they agree, ranks the vertices with PageRank and
// optionally exports the run's Prometheus metrics to a text file.
//
//	pargraph --graph=random --vertices=1000000 --edges=8000000 --strategy=all
//	pargraph --config=run.yaml --metrics-file=pargraph.prom
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"slices"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/pargraph/bfs"
	"github.com/katalvlaran/pargraph/config"
	"github.com/katalvlaran/pargraph/core"
	"github.com/katalvlaran/pargraph/metrics"
	"github.com/katalvlaran/pargraph/pagerank"
)

// errMismatch is returned when two strategies disagree on any distance.
var errMismatch = errors.New("pargraph: strategies disagree")

const topK = 5

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "pargraph:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	cfg := config.New()
	fs := pflag.NewFlagSet("pargraph", pflag.ContinueOnError)
	fs.SetOutput(out)
	cfgFile := fs.String("config", "", "configuration file (yaml, toml or json)")
	if err := cfg.BindFlags(fs); err != nil {
		return err
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *cfgFile != "" {
		if err := cfg.LoadFromFile(*cfgFile); err != nil {
			return err
		}
	}

	logger := cfg.CreateLoggerTo(out)
	reg := prometheus.NewRegistry()
	collector, err := metrics.NewCollector(reg)
	if err != nil {
		return err
	}

	start := time.Now()
	g, err := cfg.BuildGraph()
	if err != nil {
		return err
	}
	logger.Info().
		Str("kind", cfg.GraphKind()).
		Int("vertices", g.NumVertices()).
		Int("edges", g.NumEdges()).
		Dur("elapsed", time.Since(start)).
		Msg("graph built")

	if err := runBFS(ctx, cfg, g, collector, logger); err != nil {
		return err
	}
	if cfg.PageRankEnabled() {
		if err := runPageRank(ctx, cfg, g, collector, logger); err != nil {
			return err
		}
	}

	if path := cfg.MetricsFile(); path != "" {
		if err := prometheus.WriteToTextfile(path, reg); err != nil {
			return fmt.Errorf("pargraph: write metrics: %w", err)
		}
		logger.Info().Str("path", path).Msg("metrics written")
	}
	return nil
}

func runBFS(ctx context.Context, cfg *config.Config, g *core.CSR, c *metrics.Collector, logger zerolog.Logger) error {
	strategies, err := cfg.Strategies()
	if err != nil {
		return err
	}

	opts := append(cfg.BFSOptions(logger), bfs.WithContext(ctx), bfs.WithOnRound(c.ObserveRound))
	var ref *bfs.Result
	var refStrategy bfs.Strategy
	for _, s := range strategies {
		start := time.Now()
		res, err := bfs.Run(g, s, opts...)
		if err != nil {
			return fmt.Errorf("pargraph: %s: %w", s, err)
		}
		logger.Info().
			Stringer("strategy", s).
			Int("rounds", res.Rounds).
			Int("top_down_rounds", res.TopDownRounds).
			Int("bottom_up_rounds", res.BottomUpRounds).
			Int("reached", res.Reached).
			Int("levels", len(res.Levels())).
			Dur("elapsed", time.Since(start)).
			Msg("bfs done")

		if ref == nil {
			ref, refStrategy = res, s
			continue
		}
		if !slices.Equal(ref.Distances, res.Distances) {
			return fmt.Errorf("%w: %s vs %s", errMismatch, refStrategy, s)
		}
	}
	return nil
}

func runPageRank(ctx context.Context, cfg *config.Config, g *core.CSR, c *metrics.Collector, logger zerolog.Logger) error {
	opts := append(cfg.PageRankOptions(logger), pagerank.WithContext(ctx), pagerank.WithOnIteration(c.ObserveIteration))

	start := time.Now()
	res, err := pagerank.Run(g, cfg.Damping(), cfg.Convergence(), opts...)
	if err != nil {
		return fmt.Errorf("pargraph: pagerank: %w", err)
	}

	top := res.Top(topK)
	scores := make([]float64, len(top))
	for i, v := range top {
		scores[i] = res.Scores[v]
	}
	logger.Info().
		Int("iterations", res.Iterations).
		Bool("converged", res.Converged).
		Float64("delta", res.Delta).
		Float64("sum", res.Sum()).
		Interface("top", top).
		Floats64("top_scores", scores).
		Dur("elapsed", time.Since(start)).
		Msg("pagerank done")
	return nil
}
