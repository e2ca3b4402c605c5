package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := New()

	assert.Equal(t, "lemma-graph.json", cfg.GraphPath())
	assert.Equal(t, "clusters.json", cfg.ClustersOutput())
	assert.Equal(t, 1000, cfg.DistanceSamples())
	assert.Equal(t, 4000, cfg.BetweennessSample())
	assert.Equal(t, int64(123), cfg.Seed())
	assert.Equal(t, 20, cfg.HubCount())
	assert.Equal(t, 0, cfg.MaxNodes())
	assert.Equal(t, 200, cfg.LayoutIterations())
	assert.Equal(t, 1000.0, cfg.LayoutExtent())
	assert.Equal(t, "info", cfg.LogLevel())
}

func TestDefaultLevels(t *testing.T) {
	levels := New().Levels()
	require.Len(t, levels, 3)
	assert.Equal(t, "supercluster", levels[0].Name)
	assert.Equal(t, 0.0001, levels[0].Resolution)
	assert.Equal(t, "cluster", levels[1].Name)
	assert.Equal(t, 0.01, levels[1].Resolution)
	assert.Equal(t, "galaxy", levels[2].Name)
	assert.Equal(t, 0.14, levels[2].Resolution)
}

func TestSetOverridesDefault(t *testing.T) {
	cfg := New()
	cfg.Set("sampling.seed", 7)
	assert.Equal(t, int64(7), cfg.Seed())
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte(`
input:
  graph: custom.json
sampling:
  seed: 99
clustering:
  max_nodes: 50000
  levels:
    - name: coarse
      resolution: 0.001
`)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	cfg := New()
	require.NoError(t, cfg.LoadFromFile(path))

	assert.Equal(t, "custom.json", cfg.GraphPath())
	assert.Equal(t, int64(99), cfg.Seed())
	assert.Equal(t, 50000, cfg.MaxNodes())
	// Untouched keys keep their defaults.
	assert.Equal(t, 1000, cfg.DistanceSamples())

	levels := cfg.Levels()
	require.Len(t, levels, 1)
	assert.Equal(t, "coarse", levels[0].Name)
	assert.Equal(t, 0.001, levels[0].Resolution)
}

func TestLoadFromMissingFile(t *testing.T) {
	cfg := New()
	assert.Error(t, cfg.LoadFromFile("/nonexistent/config.yaml"))
}

func TestCreateLoggerFallsBackOnBadLevel(t *testing.T) {
	cfg := New()
	cfg.Set("logging.level", "nonsense")
	logger := cfg.CreateLogger("test")
	// Construction must not panic; the fallback level is info.
	logger.Debug().Msg("suppressed")
}
