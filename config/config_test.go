package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pargraph/bfs"
	"github.com/katalvlaran/pargraph/config"
	"github.com/katalvlaran/pargraph/pagerank"
)

func TestNew_Defaults(t *testing.T) {
	c := config.New()
	assert.Equal(t, "all", c.Strategy())
	assert.EqualValues(t, 0, c.Root())
	assert.Equal(t, bfs.DefaultHybridThreshold, c.HybridThreshold())
	assert.Equal(t, 1024, c.ChunkSize())
	assert.Positive(t, c.Workers())
	assert.True(t, c.PageRankEnabled())
	assert.Equal(t, 0.85, c.Damping())
	assert.Equal(t, 1e-7, c.Convergence())
	assert.Zero(t, c.MaxIterations())
	assert.Equal(t, "random", c.GraphKind())
	assert.Equal(t, "info", c.LogLevel())
	assert.Empty(t, c.MetricsFile())

	ss, err := c.Strategies()
	require.NoError(t, err)
	assert.Equal(t, []bfs.Strategy{bfs.TopDown, bfs.BottomUp, bfs.Hybrid}, ss)
}

func TestConfig_LoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pargraph.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
bfs:
  strategy: bottom-up
  root: 3
graph:
  kind: grid
  vertices: 16
pagerank:
  damping: 0.9
`), 0o600))

	c := config.New()
	require.NoError(t, c.LoadFromFile(path))
	assert.Equal(t, "bottom-up", c.Strategy())
	assert.EqualValues(t, 3, c.Root())
	assert.Equal(t, 0.9, c.Damping())

	ss, err := c.Strategies()
	require.NoError(t, err)
	assert.Equal(t, []bfs.Strategy{bfs.BottomUp}, ss)

	g, err := c.BuildGraph()
	require.NoError(t, err)
	assert.Equal(t, 16, g.NumVertices())
	assert.Equal(t, 24, g.NumEdges())

	require.Error(t, c.LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml")))
}

func TestConfig_BindFlags(t *testing.T) {
	c := config.New()
	fs := pflag.NewFlagSet("pargraph", pflag.ContinueOnError)
	require.NoError(t, c.BindFlags(fs))
	require.NoError(t, fs.Parse([]string{
		"--strategy=hybrid", "--workers=3", "--graph=path", "--vertices=5", "--max-iterations=7", "--undirected",
	}))

	assert.Equal(t, "hybrid", c.Strategy())
	assert.Equal(t, 3, c.Workers())
	assert.Equal(t, 7, c.MaxIterations())
	assert.True(t, c.Undirected())
	// unset flags keep their defaults
	assert.Equal(t, 0.85, c.Damping())

	g, err := c.BuildGraph()
	require.NoError(t, err)
	assert.Equal(t, 5, g.NumVertices())
	assert.Equal(t, 8, g.NumEdges())

	res, err := bfs.RunHybrid(g, c.BFSOptions(c.CreateLoggerTo(&bytes.Buffer{}))...)
	require.NoError(t, err)
	assert.Equal(t, []int32{0, 1, 2, 3, 4}, res.Distances)

	pr, err := pagerank.Run(g, c.Damping(), c.Convergence(), c.PageRankOptions(c.CreateLoggerTo(&bytes.Buffer{}))...)
	require.NoError(t, err)
	assert.LessOrEqual(t, pr.Iterations, 7)
}

func TestConfig_GraphConstructor(t *testing.T) {
	tests := []struct {
		kind     string
		vertices int
		want     int
	}{
		{"path", 10, 10},
		{"cycle", 10, 10},
		{"star", 10, 10},
		{"complete", 10, 10},
		{"grid", 10, 9},
		{"tree", 10, 15},
		{"random", 10, 10},
		{"sparse", 10, 10},
	}
	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			c := config.New()
			c.Set(config.KeyGraphKind, tt.kind)
			c.Set(config.KeyVertices, tt.vertices)
			c.Set(config.KeyEdges, 30)
			c.Set(config.KeyProbability, 0.2)
			g, err := c.BuildGraph()
			require.NoError(t, err)
			assert.Equal(t, tt.want, g.NumVertices())
		})
	}

	c := config.New()
	c.Set(config.KeyGraphKind, "hypercube")
	_, err := c.GraphConstructor()
	require.ErrorIs(t, err, config.ErrUnknownGraphKind)

	c.Set(config.KeyStrategy, "diagonal")
	_, err = c.Strategies()
	require.ErrorIs(t, err, bfs.ErrUnknownStrategy)
}

func TestConfig_CreateLogger(t *testing.T) {
	c := config.New()
	c.Set(config.KeyLogLevel, "warn")

	var buf bytes.Buffer
	logger := c.CreateLoggerTo(&buf)
	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "pargraph")

	c.Set(config.KeyLogLevel, "nonsense")
	buf.Reset()
	logger = c.CreateLoggerTo(&buf)
	logger.Debug().Msg("hidden")
	logger.Info().Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
