// Command benchmark runs the scenario benchmark over a lexical graph
// document and writes the JSON report plus the CSV companion table.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lexatlas/lexgraph/pkg/benchmark"
	"github.com/lexatlas/lexgraph/pkg/cluster"
	"github.com/lexatlas/lexgraph/pkg/config"
	"github.com/lexatlas/lexgraph/pkg/lexgraph"
	"github.com/lexatlas/lexgraph/pkg/models"
	"github.com/lexatlas/lexgraph/pkg/scenario"
)

func main() {
	var (
		configPath   = flag.String("config", "", "optional config file")
		graphPath    = flag.String("graph", "", "path to lemma-graph.json")
		csvPath      = flag.String("out", "", "CSV output path")
		reportPath   = flag.String("report", "", "JSON report output path")
		hubs         = flag.Int("hubs", 0, "top-k hubs to export")
		bridges      = flag.Int("bridges", 0, "top-k bridges to export")
		bridgeSample = flag.Int("bridge-sample", 0, "LCC vertex sample size for betweenness approximation")
		seed         = flag.Int64("seed", 0, "sampling seed")
	)
	flag.Parse()

	cfg := config.New()
	if *configPath != "" {
		if err := cfg.LoadFromFile(*configPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	override(cfg, "input.graph", *graphPath)
	override(cfg, "output.csv", *csvPath)
	override(cfg, "output.report", *reportPath)
	if *hubs > 0 {
		cfg.Set("rankings.hubs", *hubs)
	}
	if *bridges > 0 {
		cfg.Set("rankings.bridges", *bridges)
	}
	if *bridgeSample > 0 {
		cfg.Set("sampling.betweenness_vertices", *bridgeSample)
	}
	if *seed != 0 {
		cfg.Set("sampling.seed", *seed)
	}

	logger := cfg.CreateLogger("benchmark")
	log.Logger = logger

	if err := run(cfg, logger); err != nil {
		logger.Fatal().Err(err).Msg("Benchmark failed")
	}
}

func override(cfg *config.Config, key, value string) {
	if value != "" {
		cfg.Set(key, value)
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

	rep, err := benchmark.Run(nodes, edges, benchmark.Options{
		Scenarios:         scenario.DefaultFamily(),
		DistanceSamples:   cfg.DistanceSamples(),
		BetweennessSample: cfg.BetweennessSample(),
		Seed:              cfg.Seed(),
		HubCount:          cfg.HubCount(),
		BridgeCount:       cfg.BridgeCount(),
		Detector:          cluster.ModularityDetector{},
		InputGraph:        cfg.GraphPath(),
		CSVPath:           cfg.CSVOutput(),
		ReportPath:        cfg.ReportOutput(),
	})
	if err != nil {
		return err
	}

	if err := rep.WriteCSV(cfg.CSVOutput()); err != nil {
		return err
	}
	if err := rep.WriteJSON(cfg.ReportOutput()); err != nil {
		return err
	}
	logger.Info().
		Str("csv", cfg.CSVOutput()).
		Str("report", cfg.ReportOutput()).
		Int("scenarios", len(rep.Scenarios)).
		Msg("Benchmark complete")
	return nil
}
