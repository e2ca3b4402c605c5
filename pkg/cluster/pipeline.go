package cluster

import (
	"github.com/rs/zerolog/log"

	"github.com/lexatlas/lexgraph/pkg/layout"
	"github.com/lexatlas/lexgraph/pkg/lexgraph"
	"github.com/lexatlas/lexgraph/pkg/models"
)

// PipelineOptions configures one clustering run.
type PipelineOptions struct {
	Levels   []Level
	Detector Detector
	Seed     int64
	// MaxNodes caps the number of nodes considered for clustering,
	// selecting by highest degree first. Zero means all nodes.
	MaxNodes int
	Layout   layout.Options
}

// RunPipeline clusters the canonical collections at every configured level
// and lays the resulting clusters out, producing the cluster artifact.
func RunPipeline(nodes []models.Node, edges []models.Edge, opts PipelineOptions) (*models.ClusterDocument, error) {
	selected := lexgraph.TopByDegree(nodes, edges, opts.MaxNodes)
	g, _ := lexgraph.Build(nodes, edges, lexgraph.BuildOptions{Restrict: selected})

	log.Info().
		Int("input_nodes", len(nodes)).
		Int("input_edges", len(edges)).
		Int("selected", len(selected)).
		Int("graph_edges", g.Size()).
		Msg("Clustering graph built")

	levels, err := RunLevels(g, opts.Levels, opts.Detector, opts.Seed)
	if err != nil {
		return nil, err
	}

	positions := make(map[string]map[string]models.Position, len(levels))
	for _, level := range opts.Levels {
		membership := levels[level.Name]
		log.Info().
			Str("level", level.Name).
			Msg("Computing cluster layout")
		positions[level.Name] = layout.Compute(g.IDs(), membership, edges, opts.Layout)
	}

	var maxNodes *int
	if opts.MaxNodes > 0 {
		maxNodes = &opts.MaxNodes
	}
	doc := &models.ClusterDocument{
		Meta: models.ClusterMeta{
			InputNodes:     len(nodes),
			InputLinks:     len(edges),
			ClusteredNodes: len(selected),
			Levels:         Names(opts.Levels),
			MaxNodes:       maxNodes,
		},
		Levels:    levels,
		Positions: positions,
	}
	return doc, nil
}
