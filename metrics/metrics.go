package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/pargraph/bfs"
	"github.com/katalvlaran/pargraph/pagerank"
)

const namespace = "pargraph"

// ErrRegister is returned when a metric cannot be registered, typically
// because a Collector was already registered with the same registry.
var ErrRegister = errors.New("metrics: register collector")

// Collector holds the pargraph metric families.
type Collector struct {
	bfsRounds        *prometheus.CounterVec
	bfsFrontier      *prometheus.HistogramVec
	bfsRoundDuration *prometheus.HistogramVec
	bfsClaimed       prometheus.Counter

	prIterations        prometheus.Counter
	prDelta             prometheus.Gauge
	prIterationDuration prometheus.Histogram
}

// NewCollector creates the metric families and registers them with reg.
// A nil reg means prometheus.DefaultRegisterer.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(nil)

	c := &Collector{
		bfsRounds: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bfs_rounds_total",
			Help:      "BFS rounds executed, by step direction",
		}, []string{"step"}),
		bfsFrontier: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "bfs_frontier_size",
			Help:      "Size of the frontier expanded in a BFS round",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 12),
		}, []string{"step"}),
		bfsRoundDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "bfs_round_duration_seconds",
			Help:      "Wall time of a BFS round",
			Buckets:   []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1, 10},
		}, []string{"step"}),
		bfsClaimed: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bfs_claimed_vertices_total",
			Help:      "Vertices claimed by BFS rounds",
		}),
		prIterations: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pagerank_iterations_total",
			Help:      "PageRank power iterations executed",
		}),
		prDelta: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "pagerank_delta",
			Help:      "L1 change of the last PageRank iteration",
		}),
		prIterationDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "pagerank_iteration_duration_seconds",
			Help:      "Wall time of a PageRank iteration",
			Buckets:   []float64{0.0001, 0.001, 0.01, 0.1, 1, 10},
		}),
	}

	for _, m := range c.collectors() {
		if err := reg.Register(m); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrRegister, err)
		}
	}
	return c, nil
}

func (c *Collector) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		c.bfsRounds, c.bfsFrontier, c.bfsRoundDuration, c.bfsClaimed,
		c.prIterations, c.prDelta, c.prIterationDuration,
	}
}

// ObserveRound records one BFS round. Its signature matches bfs.WithOnRound.
func (c *Collector) ObserveRound(s bfs.RoundStats) {
	step := s.Step.String()
	c.bfsRounds.WithLabelValues(step).Inc()
	c.bfsFrontier.WithLabelValues(step).Observe(float64(s.Frontier))
	c.bfsRoundDuration.WithLabelValues(step).Observe(s.Duration.Seconds())
	c.bfsClaimed.Add(float64(s.Next))
}

// ObserveIteration records one PageRank iteration. Its signature matches
// pagerank.WithOnIteration.
func (c *Collector) ObserveIteration(s pagerank.IterationStats) {
	c.prIterations.Inc()
	c.prDelta.Set(s.Delta)
	c.prIterationDuration.Observe(s.Duration.Seconds())
}
