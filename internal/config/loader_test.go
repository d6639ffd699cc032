package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noFiles keeps tests independent of files in the working directory.
var noFiles = WithConfigPaths()

func TestLoader_LoadDefaults(t *testing.T) {
	cfg, err := NewLoader(noFiles).Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, 40, cfg.Graph.Vertices)
	assert.InDelta(t, 0.1, cfg.Graph.EdgeProbability, 1e-12)
	assert.Equal(t, int64(20), cfg.Graph.MaxWeight)
	assert.Equal(t, 1, cfg.Johnson.Parallelism)
	assert.Equal(t, 20, cfg.Output.Limit)
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "shortpath.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestLoader_LoadFromFile(t *testing.T) {
	path := writeConfig(t, `
log:
  level: debug
graph:
  vertices: 12
  edge_probability: 0.5
  max_potential: 3
johnson:
  parallelism: 4
`)

	l := NewLoader(WithConfigPaths(path))
	cfg, err := l.Load()
	require.NoError(t, err)

	assert.Equal(t, path, l.File())
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 12, cfg.Graph.Vertices)
	assert.InDelta(t, 0.5, cfg.Graph.EdgeProbability, 1e-12)
	assert.Equal(t, int64(3), cfg.Graph.MaxPotential)
	assert.Equal(t, 4, cfg.Johnson.Parallelism)
	assert.Equal(t, int64(20), cfg.Graph.MaxWeight, "untouched keys keep defaults")
}

func TestLoader_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "graph:\n  vertices: 12\n  max_weight: 7\n")
	t.Setenv("SHORTPATH_GRAPH_VERTICES", "99")
	t.Setenv("SHORTPATH_GRAPH_EDGE_PROBABILITY", "0.25")
	t.Setenv("SHORTPATH_LOG_LEVEL", "WARN")

	cfg, err := NewLoader(WithConfigFile(path)).Load()
	require.NoError(t, err)

	assert.Equal(t, 99, cfg.Graph.Vertices)
	assert.InDelta(t, 0.25, cfg.Graph.EdgeProbability, 1e-12)
	assert.Equal(t, int64(7), cfg.Graph.MaxWeight)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoader_CustomEnvPrefix(t *testing.T) {
	t.Setenv("SP_TEST_OUTPUT_LIMIT", "3")

	cfg, err := NewLoader(noFiles, WithEnvPrefix("SP_TEST_")).Load()
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Output.Limit)
}

func TestLoader_ExplicitFileMissing(t *testing.T) {
	_, err := NewLoader(WithConfigFile(filepath.Join(t.TempDir(), "absent.yaml"))).Load()
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestLoader_InvalidValues(t *testing.T) {
	path := writeConfig(t, `
log:
  level: loud
graph:
  edge_probability: 1.5
  min_weight: 5
  max_weight: 2
johnson:
  parallelism: 0
`)

	_, err := NewLoader(WithConfigFile(path)).Load()
	require.Error(t, err)
	for _, want := range []string{"log.level", "graph.edge_probability", "graph.max_weight", "johnson.parallelism"} {
		assert.Contains(t, err.Error(), want)
	}
}
