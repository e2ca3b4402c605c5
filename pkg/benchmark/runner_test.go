package benchmark

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexatlas/lexgraph/pkg/cluster"
	"github.com/lexatlas/lexgraph/pkg/models"
	"github.com/lexatlas/lexgraph/pkg/scenario"
)

func benchCollections() ([]models.Node, []models.Edge) {
	nodes := []models.Node{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}}
	edges := []models.Edge{
		{Source: "a", Target: "b", Weight: 1, RelationTypes: []string{"HYPERNYM"}},
		{Source: "b", Target: "c", Weight: 2, RelationTypes: []string{"HYPERNYM"}},
		{Source: "c", Target: "d", Weight: 1, RelationTypes: []string{"ANTONYM"}},
	}
	return nodes, edges
}

func benchOptions(scenarios []scenario.Scenario, det cluster.Detector) Options {
	return Options{
		Scenarios:         scenarios,
		DistanceSamples:   1000,
		BetweennessSample: 4000,
		Seed:              123,
		HubCount:          5,
		BridgeCount:       5,
		Detector:          det,
		InputGraph:        "graph.json",
		CSVPath:           "report.csv",
		ReportPath:        "report.json",
	}
}

func TestRunProducesEntryPerScenario(t *testing.T) {
	nodes, edges := benchCollections()
	family := scenario.DefaultFamily()

	rep, err := Run(nodes, edges, benchOptions(family, cluster.ModularityDetector{}))
	require.NoError(t, err)

	require.Len(t, rep.Scenarios, len(family))
	for i, sc := range family {
		assert.Equal(t, sc.Name, rep.Scenarios[i].Scenario)
	}
	assert.True(t, rep.CommunityDetectionAvailable)
	assert.NotEmpty(t, rep.RunID)
	assert.Equal(t, "graph.json", rep.InputGraph)
	assert.Equal(t, "report.csv", rep.Outputs.CSV)
}

func TestRunBaselineMatchesRawCollections(t *testing.T) {
	nodes, edges := benchCollections()
	rep, err := Run(nodes, edges, benchOptions([]scenario.Scenario{scenario.Baseline()}, cluster.ModularityDetector{}))
	require.NoError(t, err)

	require.Len(t, rep.Scenarios, 1)
	m := rep.Scenarios[0].Metrics
	assert.Equal(t, 4, m.NumNodes)
	assert.Equal(t, 3, m.NumEdges)
	assert.Equal(t, 1, m.NumComponents)
	assert.Equal(t, "HYPERNYM:2;ANTONYM:1", m.TopRelationTypes)
}

func TestRunWeightThresholdShrinksGraph(t *testing.T) {
	nodes, edges := benchCollections()
	scs := []scenario.Scenario{scenario.Baseline(), scenario.WeightThreshold(2)}
	rep, err := Run(nodes, edges, benchOptions(scs, cluster.ModularityDetector{}))
	require.NoError(t, err)

	require.Len(t, rep.Scenarios, 2)
	base := rep.Scenarios[0].Metrics
	thresh := rep.Scenarios[1].Metrics
	assert.Equal(t, base.NumNodes, thresh.NumNodes) // thresholds drop edges, never nodes
	assert.Less(t, thresh.NumEdges, base.NumEdges)
	assert.Greater(t, thresh.Isolates, base.Isolates)
}

func TestRunWithUnavailableDetector(t *testing.T) {
	nodes, edges := benchCollections()
	rep, err := Run(nodes, edges, benchOptions([]scenario.Scenario{scenario.Baseline()}, cluster.Unavailable{}))
	require.NoError(t, err)

	assert.False(t, rep.CommunityDetectionAvailable)
	m := rep.Scenarios[0].Metrics
	assert.Nil(t, m.CommunityModularityLCC)
	assert.Nil(t, m.CommunityCountLCC)
	// Everything else is still populated.
	assert.Equal(t, 4, m.NumNodes)
}

func TestRunNilDetectorTreatedAsUnavailable(t *testing.T) {
	nodes, edges := benchCollections()
	rep, err := Run(nodes, edges, benchOptions([]scenario.Scenario{scenario.Baseline()}, nil))
	require.NoError(t, err)
	assert.False(t, rep.CommunityDetectionAvailable)
}

func TestRunDoesNotMutateBaseCollections(t *testing.T) {
	nodes, edges := benchCollections()
	wantNodes, wantEdges := benchCollections()

	_, err := Run(nodes, edges, benchOptions(scenario.DefaultFamily(), cluster.ModularityDetector{}))
	require.NoError(t, err)
	assert.Equal(t, wantNodes, nodes)
	assert.Equal(t, wantEdges, edges)
}
