// Command clusters runs multi-resolution community detection over a lexical
// graph document and writes the per-level cluster assignments and layouts.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lexatlas/lexgraph/pkg/cluster"
	"github.com/lexatlas/lexgraph/pkg/config"
	"github.com/lexatlas/lexgraph/pkg/layout"
	"github.com/lexatlas/lexgraph/pkg/lexgraph"
	"github.com/lexatlas/lexgraph/pkg/models"
)

func main() {
	var (
		configPath = flag.String("config", "", "optional config file")
		graphPath  = flag.String("input", "", "path to lemma-graph.json")
		outPath    = flag.String("output", "", "clusters output path")
		maxNodes   = flag.Int("max-nodes", 0, "cap on nodes to cluster, selected by highest degree (0 = all)")
	)
	flag.Parse()

	cfg := config.New()
	if *configPath != "" {
		if err := cfg.LoadFromFile(*configPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	if *graphPath != "" {
		cfg.Set("input.graph", *graphPath)
	}
	if *outPath != "" {
		cfg.Set("output.clusters", *outPath)
	}
	if *maxNodes > 0 {
		cfg.Set("clustering.max_nodes", *maxNodes)
	}

	logger := cfg.CreateLogger("clusters")
	log.Logger = logger

	if err := run(cfg, logger); err != nil {
		logger.Fatal().Err(err).Msg("Clustering failed")
	}
}

func run(cfg *config.Config, logger zerolog.Logger) error {
	doc, err := models.LoadGraphDocument(cfg.GraphPath())
	if err != nil {
		return err
	}
	nodes, edges, drops, err := lexgraph.Normalize(doc)
	if err != nil {
		return err
	}
	logger.Info().
		Int("nodes", len(nodes)).
		Int("edges", len(edges)).
		Int("unresolved_endpoints", drops.UnresolvedEndpoints).
		Int("self_loops", drops.SelfLoops).
		Msg("Graph document normalized")

	layoutOpts := layout.Options{
		Iterations: cfg.LayoutIterations(),
		Extent:     cfg.LayoutExtent(),
		Seed:       cfg.Seed(),
	}
	docOut, err := cluster.RunPipeline(nodes, edges, cluster.PipelineOptions{
		Levels:   cfg.Levels(),
		Detector: cluster.ModularityDetector{},
		Seed:     cfg.Seed(),
		MaxNodes: cfg.MaxNodes(),
		Layout:   layoutOpts,
	})
	if err != nil {
		return err
	}

	if err := docOut.WriteJSON(cfg.ClustersOutput()); err != nil {
		return err
	}
	logger.Info().
		Str("output", cfg.ClustersOutput()).
		Int("clustered_nodes", docOut.Meta.ClusteredNodes).
		Msg("Clustering complete")
	return nil
}
