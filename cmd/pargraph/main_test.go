package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_AllStrategies(t *testing.T) {
	metricsFile := filepath.Join(t.TempDir(), "pargraph.prom")
	var out bytes.Buffer
	err := run(context.Background(), []string{
		"--graph=random", "--vertices=2000", "--edges=10000", "--seed=3",
		"--workers=4", "--chunk-size=64", "--max-iterations=50",
		"--metrics-file=" + metricsFile,
	}, &out)
	require.NoError(t, err)

	logs := out.String()
	assert.Contains(t, logs, "graph built")
	assert.Contains(t, logs, "bfs done")
	assert.Contains(t, logs, "pagerank done")

	data, err := os.ReadFile(metricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "pargraph_bfs_rounds_total")
	assert.Contains(t, string(data), "pargraph_pagerank_iterations_total")
}

func TestRun_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
graph:
  kind: grid
  vertices: 100
bfs:
  strategy: hybrid
pagerank:
  enabled: false
`), 0o600))

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"--config=" + path}, &out))
	assert.Contains(t, out.String(), "bfs done")
	assert.NotContains(t, out.String(), "pagerank done")
}

func TestRun_Errors(t *testing.T) {
	var out bytes.Buffer
	require.Error(t, run(context.Background(), []string{"--graph=hypercube"}, &out))
	require.Error(t, run(context.Background(), []string{"--strategy=sideways", "--graph=path", "--vertices=4"}, &out))
	require.Error(t, run(context.Background(), []string{"--no-such-flag"}, &out))
	require.Error(t, run(context.Background(), []string{"--config=" + filepath.Join(t.TempDir(), "nope.yaml")}, &out))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, run(ctx, []string{"--graph=path", "--vertices=4"}, &out), context.Canceled)
}
