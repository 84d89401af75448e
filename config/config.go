// Package config manages pargraph run configuration with viper: defaults,
// optional config file, command-line flags, and translation into bfs,
// pagerank and builder options.
package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/pargraph/bfs"
	"github.com/katalvlaran/pargraph/builder"
	"github.com/katalvlaran/pargraph/core"
	"github.com/katalvlaran/pargraph/pagerank"
	"github.com/katalvlaran/pargraph/parallel"
)

// Configuration keys.
const (
	KeyStrategy        = "bfs.strategy"
	KeyRoot            = "bfs.root"
	KeyHybridThreshold = "bfs.hybrid_threshold"

	KeyWorkers   = "parallel.workers"
	KeyChunkSize = "parallel.chunk_size"

	KeyPageRank      = "pagerank.enabled"
	KeyDamping       = "pagerank.damping"
	KeyConvergence   = "pagerank.convergence"
	KeyMaxIterations = "pagerank.max_iterations"

	KeyGraphKind   = "graph.kind"
	KeyVertices    = "graph.vertices"
	KeyEdges       = "graph.edges"
	KeyProbability = "graph.probability"
	KeySeed        = "graph.seed"
	KeyUndirected  = "graph.undirected"

	KeyLogLevel    = "logging.level"
	KeyMetricsFile = "metrics.file"
)

// StrategyAll selects every BFS strategy in turn.
const StrategyAll = "all"

// ErrUnknownGraphKind is returned for a graph.kind without a constructor.
var ErrUnknownGraphKind = errors.New("config: unknown graph kind")

// Config wraps a viper instance holding pargraph settings.
type Config struct {
	v *viper.Viper
}

// New creates a configuration with defaults.
func New() *Config {
	v := viper.New()

	v.SetDefault(KeyStrategy, StrategyAll)
	v.SetDefault(KeyRoot, 0)
	v.SetDefault(KeyHybridThreshold, bfs.DefaultHybridThreshold)

	v.SetDefault(KeyWorkers, runtime.GOMAXPROCS(0))
	v.SetDefault(KeyChunkSize, parallel.DefaultChunkSize)

	v.SetDefault(KeyPageRank, true)
	v.SetDefault(KeyDamping, 0.85)
	v.SetDefault(KeyConvergence, 1e-7)
	v.SetDefault(KeyMaxIterations, 0)

	v.SetDefault(KeyGraphKind, "random")
	v.SetDefault(KeyVertices, 100_000)
	v.SetDefault(KeyEdges, 800_000)
	v.SetDefault(KeyProbability, 0.001)
	v.SetDefault(KeySeed, 1)
	v.SetDefault(KeyUndirected, false)

	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyMetricsFile, "")

	v.SetEnvPrefix("PARGRAPH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Config{v: v}
}

// LoadFromFile merges settings from a YAML, TOML or JSON file.
func (c *Config) LoadFromFile(path string) error {
	c.v.SetConfigFile(path)
	if err := c.v.ReadInConfig(); err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	return nil
}

// BindFlags defines the command-line flags on fs and binds them to their
// keys, so explicitly set flags override file and default values.
func (c *Config) BindFlags(fs *pflag.FlagSet) error {
	fs.String("strategy", c.Strategy(), "bfs strategy: top-down, bottom-up, hybrid or all")
	fs.Int32("root", int32(c.Root()), "bfs root vertex")
	fs.Int("hybrid-threshold", c.HybridThreshold(), "frontier size above which hybrid goes bottom-up")
	fs.Int("workers", c.Workers(), "worker goroutines")
	fs.Int("chunk-size", c.ChunkSize(), "items claimed per scheduling step")
	fs.Bool("pagerank", c.PageRankEnabled(), "run pagerank after bfs")
	fs.Float64("damping", c.Damping(), "pagerank damping factor")
	fs.Float64("convergence", c.Convergence(), "pagerank L1 convergence threshold")
	fs.Int("max-iterations", c.MaxIterations(), "pagerank iteration cap, 0 for none")
	fs.String("graph", c.GraphKind(), "graph kind: path, cycle, star, complete, grid, tree, random or sparse")
	fs.Int("vertices", c.Vertices(), "vertex count of the synthetic graph")
	fs.Int("edges", c.Edges(), "arc count for graph=random")
	fs.Float64("probability", c.Probability(), "arc probability for graph=sparse")
	fs.Int64("seed", c.Seed(), "rng seed of the synthetic graph")
	fs.Bool("undirected", c.Undirected(), "store every arc in both directions")
	fs.String("log-level", c.LogLevel(), "zerolog level")
	fs.String("metrics-file", c.MetricsFile(), "write prometheus metrics to this file")

	bindings := map[string]string{
		"strategy":         KeyStrategy,
		"root":             KeyRoot,
		"hybrid-threshold": KeyHybridThreshold,
		"workers":          KeyWorkers,
		"chunk-size":       KeyChunkSize,
		"pagerank":         KeyPageRank,
		"damping":          KeyDamping,
		"convergence":      KeyConvergence,
		"max-iterations":   KeyMaxIterations,
		"graph":            KeyGraphKind,
		"vertices":         KeyVertices,
		"edges":            KeyEdges,
		"probability":      KeyProbability,
		"seed":             KeySeed,
		"undirected":       KeyUndirected,
		"log-level":        KeyLogLevel,
		"metrics-file":     KeyMetricsFile,
	}
	for flag, key := range bindings {
		if err := c.v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return fmt.Errorf("config: bind --%s: %w", flag, err)
		}
	}
	return nil
}

// Getters
func (c *Config) Strategy() string { return c.v.GetString(KeyStrategy) }
func (c *Config) Root() core.Vertex { return core.Vertex(c.v.GetInt32(KeyRoot)) }
func (c *Config) HybridThreshold() int { return c.v.GetInt(KeyHybridThreshold) }
func (c *Config) Workers() int { return c.v.GetInt(KeyWorkers) }
func (c *Config) ChunkSize() int { return c.v.GetInt(KeyChunkSize) }
func (c *Config) PageRankEnabled() bool { return c.v.GetBool(KeyPageRank) }
func (c *Config) Damping() float64 { return c.v.GetFloat64(KeyDamping) }
func (c *Config) Convergence() float64 { return c.v.GetFloat64(KeyConvergence) }
func (c *Config) MaxIterations() int { return c.v.GetInt(KeyMaxIterations) }
func (c *Config) GraphKind() string { return c.v.GetString(KeyGraphKind) }
func (c *Config) Vertices() int { return c.v.GetInt(KeyVertices) }
func (c *Config) Edges() int { return c.v.GetInt(KeyEdges) }
func (c *Config) Probability() float64 { return c.v.GetFloat64(KeyProbability) }
func (c *Config) Seed() int64 { return c.v.GetInt64(KeySeed) }
func (c *Config) Undirected() bool { return c.v.GetBool(KeyUndirected) }
func (c *Config) LogLevel() string { return c.v.GetString(KeyLogLevel) }
func (c *Config) MetricsFile() string { return c.v.GetString(KeyMetricsFile) }

// Set allows dynamic configuration changes.
func (c *Config) Set(key string, value interface{}) {
	c.v.Set(key, value)
}

// Strategies resolves bfs.strategy into the strategies to run.
func (c *Config) Strategies() ([]bfs.Strategy, error) {
	if strings.EqualFold(c.Strategy(), StrategyAll) {
		return []bfs.Strategy{bfs.TopDown, bfs.BottomUp, bfs.Hybrid}, nil
	}
	s, err := bfs.ParseStrategy(c.Strategy())
	if err != nil {
		return nil, err
	}
	return []bfs.Strategy{s}, nil
}

// BFSOptions translates the configuration into bfs options.
func (c *Config) BFSOptions(logger zerolog.Logger) []bfs.Option {
	return []bfs.Option{
		bfs.WithRoot(c.Root()),
		bfs.WithWorkers(c.Workers()),
		bfs.WithChunkSize(c.ChunkSize()),
		bfs.WithHybridThreshold(c.HybridThreshold()),
		bfs.WithLogger(logger),
	}
}

// PageRankOptions translates the configuration into pagerank options.
func (c *Config) PageRankOptions(logger zerolog.Logger) []pagerank.Option {
	return []pagerank.Option{
		pagerank.WithMaxIterations(c.MaxIterations()),
		pagerank.WithWorkers(c.Workers()),
		pagerank.WithChunkSize(c.ChunkSize()),
		pagerank.WithLogger(logger),
	}
}

// GraphConstructor maps graph.kind and graph.vertices onto a builder
// constructor. Grid uses the largest square that fits, tree the smallest
// depth holding the requested vertices.
func (c *Config) GraphConstructor() (builder.Constructor, error) {
	n := c.Vertices()
	switch strings.ToLower(c.GraphKind()) {
	case "path":
		return builder.Path(n), nil
	case "cycle":
		return builder.Cycle(n), nil
	case "star":
		return builder.Star(n), nil
	case "complete":
		return builder.Complete(n), nil
	case "grid":
		side := int(math.Sqrt(float64(n)))
		return builder.Grid(side, side), nil
	case "tree":
		return builder.BinaryTree(bitsFor(n)), nil
	case "random":
		return builder.RandomEdges(n, c.Edges()), nil
	case "sparse":
		return builder.RandomSparse(n, c.Probability()), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownGraphKind, c.GraphKind())
}

// GraphOptions returns the core options of the synthetic graph.
func (c *Config) GraphOptions() []core.GraphOption {
	if c.Undirected() {
		return []core.GraphOption{core.WithUndirected()}
	}
	return nil
}

// BuildGraph builds the configured synthetic graph.
func (c *Config) BuildGraph() (*core.CSR, error) {
	con, err := c.GraphConstructor()
	if err != nil {
		return nil, err
	}
	return builder.BuildGraph(c.GraphOptions(), []builder.BuilderOption{builder.WithSeed(c.Seed())}, con)
}

// CreateLogger creates a console logger on stdout.
func (c *Config) CreateLogger() zerolog.Logger {
	return c.CreateLoggerTo(os.Stdout)
}

// CreateLoggerTo creates a console logger on w at the configured level;
// an unknown level falls back to info.
func (c *Config) CreateLoggerTo(w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(c.LogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
	}).Level(level).With().Timestamp().Str("service", "pargraph").Logger()
}

// bitsFor returns the smallest depth d with 2^d - 1 ≥ n, at least 1.
func bitsFor(n int) int {
	d := 1
	for (1<<d)-1 < n && d < 62 {
		d++
	}
	return d
}
