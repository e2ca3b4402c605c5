// Package config is the shared configuration surface of the CLIs, backed
// by viper with defaults for every knob.
package config

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/lexatlas/lexgraph/pkg/cluster"
)

// Config wraps a viper instance seeded with engine defaults.
type Config struct {
	v *viper.Viper
}

// New creates a configuration with defaults.
func New() *Config {
	v := viper.New()

	// Paths
	v.SetDefault("input.graph", "lemma-graph.json")
	v.SetDefault("output.clusters", "clusters.json")
	v.SetDefault("output.report", "graph_benchmark_report.json")
	v.SetDefault("output.csv", "graph_benchmark.csv")

	// Sampling for approximate metrics
	v.SetDefault("sampling.distance_sources", 1000)
	v.SetDefault("sampling.betweenness_vertices", 4000)
	v.SetDefault("sampling.seed", 123)

	// Rankings
	v.SetDefault("rankings.hubs", 20)
	v.SetDefault("rankings.bridges", 20)

	// Community detection
	v.SetDefault("clustering.max_nodes", 0)
	levels := []map[string]interface{}{}
	for _, l := range cluster.DefaultLevels() {
		levels = append(levels, map[string]interface{}{
			"name":       l.Name,
			"resolution": l.Resolution,
		})
	}
	v.SetDefault("clustering.levels", levels)

	// Layout
	v.SetDefault("layout.iterations", 200)
	v.SetDefault("layout.extent", 1000.0)

	v.SetDefault("logging.level", "info")

	return &Config{v: v}
}

// LoadFromFile merges configuration from a file over the defaults.
func (c *Config) LoadFromFile(path string) error {
	c.v.SetConfigFile(path)
	if err := c.v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	return nil
}

// Set overrides a single key, used by CLI flags.
func (c *Config) Set(key string, value interface{}) { c.v.Set(key, value) }

func (c *Config) GraphPath() string      { return c.v.GetString("input.graph") }
func (c *Config) ClustersOutput() string { return c.v.GetString("output.clusters") }
func (c *Config) ReportOutput() string   { return c.v.GetString("output.report") }
func (c *Config) CSVOutput() string      { return c.v.GetString("output.csv") }

func (c *Config) DistanceSamples() int   { return c.v.GetInt("sampling.distance_sources") }
func (c *Config) BetweennessSample() int { return c.v.GetInt("sampling.betweenness_vertices") }
func (c *Config) Seed() int64            { return c.v.GetInt64("sampling.seed") }

func (c *Config) HubCount() int    { return c.v.GetInt("rankings.hubs") }
func (c *Config) BridgeCount() int { return c.v.GetInt("rankings.bridges") }

func (c *Config) MaxNodes() int { return c.v.GetInt("clustering.max_nodes") }

// Levels decodes the configured granularity levels, falling back to the
// defaults when the key cannot be decoded.
func (c *Config) Levels() []cluster.Level {
	var levels []cluster.Level
	if err := c.v.UnmarshalKey("clustering.levels", &levels); err != nil || len(levels) == 0 {
		return cluster.DefaultLevels()
	}
	return levels
}

func (c *Config) LayoutIterations() int { return c.v.GetInt("layout.iterations") }
func (c *Config) LayoutExtent() float64 { return c.v.GetFloat64("layout.extent") }

func (c *Config) LogLevel() string { return c.v.GetString("logging.level") }

// CreateLogger builds a console logger at the configured level.
func (c *Config) CreateLogger(service string) zerolog.Logger {
	level, err := zerolog.ParseLevel(c.LogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: "15:04:05",
	}).Level(level).With().Timestamp().Str("service", service).Logger()
}
