package cluster

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/lexatlas/lexgraph/pkg/lexgraph"
)

// Level names one granularity of the hierarchy and the resolution parameter
// the detector runs at. Higher resolution means more, smaller communities.
type Level struct {
	Name       string  `json:"name" mapstructure:"name"`
	Resolution float64 `json:"resolution" mapstructure:"resolution"`
}

// DefaultLevels spans coarse to fine granularity, tuned for a lexical graph
// in the tens of thousands of nodes.
func DefaultLevels() []Level {
	return []Level{
		{Name: "supercluster", Resolution: 0.0001},
		{Name: "cluster", Resolution: 0.01},
		{Name: "galaxy", Resolution: 0.14},
	}
}

// Names returns the level names in configured order.
func Names(levels []Level) []string {
	out := make([]string, len(levels))
	for i, l := range levels {
		out[i] = l.Name
	}
	return out
}

// RunLevels applies the detector independently at every configured level to
// the same input graph and returns, per level name, the canonical node id to
// cluster id mapping. Cluster ids are namespaced by level name. An edgeless
// graph short-circuits to singleton clusters per node at every level using
// the {level}_solo_{index} convention, without invoking the detector.
func RunLevels(g *lexgraph.Graph, levels []Level, det Detector, seed int64) (map[string]map[string]string, error) {
	result := make(map[string]map[string]string, len(levels))

	if g.Size() == 0 {
		for _, level := range levels {
			mapping := make(map[string]string, g.Order())
			for i, id := range g.IDs() {
				mapping[id] = fmt.Sprintf("%s_solo_%d", level.Name, i)
			}
			result[level.Name] = mapping
		}
		return result, nil
	}

	for _, level := range levels {
		log.Info().
			Str("level", level.Name).
			Float64("resolution", level.Resolution).
			Int("nodes", g.Order()).
			Msg("Detecting communities")

		membership, modularity, err := det.Detect(g, level.Resolution, seed)
		if err != nil {
			return nil, fmt.Errorf("level %s: %w", level.Name, err)
		}

		mapping := make(map[string]string, len(membership))
		communities := make(map[int]bool)
		for id, comm := range membership {
			mapping[id] = fmt.Sprintf("%s_%d", level.Name, comm)
			communities[comm] = true
		}
		result[level.Name] = mapping

		log.Info().
			Str("level", level.Name).
			Int("communities", len(communities)).
			Float64("modularity", modularity).
			Msg("Level complete")
	}
	return result, nil
}
