package metrics

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexatlas/lexgraph/pkg/cluster"
	"github.com/lexatlas/lexgraph/pkg/lexgraph"
	"github.com/lexatlas/lexgraph/pkg/models"
)

func pathGraph() (*lexgraph.Graph, []models.Edge) {
	nodes := []models.Node{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}}
	edges := []models.Edge{
		{Source: "a", Target: "b", Weight: 1, RelationTypes: []string{"HYPERNYM"}},
		{Source: "b", Target: "c", Weight: 1, RelationTypes: []string{"HYPERNYM"}},
		{Source: "c", Target: "d", Weight: 1, RelationTypes: []string{"ANTONYM"}},
	}
	g, _ := lexgraph.Build(nodes, edges, lexgraph.BuildOptions{})
	return g, edges
}

func testEngine() *Engine {
	return NewEngine(1000, 4000, 123, nil)
}

func TestSnapshotPathGraph(t *testing.T) {
	g, edges := pathGraph()
	snap := testEngine().Snapshot(g, edges)

	assert.Equal(t, 4, snap.NumNodes)
	assert.Equal(t, 3, snap.NumEdges)
	assert.Equal(t, 1, snap.NumComponents)
	assert.Equal(t, 4, snap.LCCSize)
	assert.Equal(t, 1.0, snap.LCCRatio)
	assert.Equal(t, 0, snap.Isolates)
	assert.Equal(t, 1, snap.DegreeP50)
	assert.Equal(t, 2, snap.DegreeP95)
	assert.Equal(t, 2, snap.DegreeMax)

	require.NotNil(t, snap.ClusteringLCC)
	assert.Equal(t, 0.0, *snap.ClusteringLCC) // path graph has no triangles
	require.NotNil(t, snap.MaxKCore)
	assert.Equal(t, 1, *snap.MaxKCore)

	require.NotNil(t, snap.AvgPathLCC)
	assert.InDelta(t, 20.0/12.0, *snap.AvgPathLCC, 1e-12)
	require.NotNil(t, snap.DiameterLCC)
	assert.Equal(t, 3, *snap.DiameterLCC)

	assert.Equal(t, "HYPERNYM:2;ANTONYM:1", snap.TopRelationTypes)
}

func TestSnapshotAfterAntonymRemoval(t *testing.T) {
	nodes := []models.Node{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}}
	edges := []models.Edge{
		{Source: "a", Target: "b", Weight: 1},
		{Source: "b", Target: "c", Weight: 1},
	}
	g, _ := lexgraph.Build(nodes, edges, lexgraph.BuildOptions{})
	snap := testEngine().Snapshot(g, edges)

	assert.Equal(t, 2, snap.NumComponents)
	assert.Equal(t, 3, snap.LCCSize)
	assert.Equal(t, 1, snap.Isolates)
}

func TestSnapshotDegenerateGraph(t *testing.T) {
	g, _ := lexgraph.Build([]models.Node{{ID: "solo"}}, nil, lexgraph.BuildOptions{})
	snap := testEngine().Snapshot(g, nil)

	assert.Equal(t, 1, snap.NumNodes)
	assert.Equal(t, 0, snap.NumEdges)
	assert.Equal(t, 1, snap.Isolates)
	assert.Nil(t, snap.AvgPathLCC)
	assert.Nil(t, snap.DiameterLCC)
	assert.Nil(t, snap.ClusteringLCC)
	assert.Nil(t, snap.MaxKCore)
	assert.Nil(t, snap.CommunityModularityLCC)
}

func TestSnapshotEmptyGraph(t *testing.T) {
	g, _ := lexgraph.Build(nil, nil, lexgraph.BuildOptions{})
	snap := testEngine().Snapshot(g, nil)
	assert.Equal(t, 0, snap.NumNodes)
	assert.Equal(t, 0, snap.NumComponents)
	assert.Equal(t, 0.0, snap.LCCRatio)
}

func TestClusteringCoefficientTriangle(t *testing.T) {
	nodes := []models.Node{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}}
	edges := []models.Edge{
		{Source: "a", Target: "b", Weight: 1},
		{Source: "b", Target: "c", Weight: 1},
		{Source: "c", Target: "a", Weight: 1},
		{Source: "c", Target: "d", Weight: 1},
	}
	g, _ := lexgraph.Build(nodes, edges, lexgraph.BuildOptions{})
	snap := testEngine().Snapshot(g, edges)

	// a and b close a full triangle (1.0 each), c has one closed pair of
	// three (1/3), d has degree 1 and zero-fills.
	require.NotNil(t, snap.ClusteringLCC)
	assert.InDelta(t, (1.0+1.0+1.0/3.0)/4.0, *snap.ClusteringLCC, 1e-12)
}

func TestMaxKCoreTriangleWithTail(t *testing.T) {
	nodes := []models.Node{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}}
	edges := []models.Edge{
		{Source: "a", Target: "b", Weight: 1},
		{Source: "b", Target: "c", Weight: 1},
		{Source: "c", Target: "a", Weight: 1},
		{Source: "c", Target: "d", Weight: 1},
	}
	g, _ := lexgraph.Build(nodes, edges, lexgraph.BuildOptions{})
	snap := testEngine().Snapshot(g, edges)
	require.NotNil(t, snap.MaxKCore)
	assert.Equal(t, 2, *snap.MaxKCore)
}

func TestSampledMetricsDeterministic(t *testing.T) {
	g, edges := pathGraph()

	a := testEngine().Snapshot(g, edges)
	b := testEngine().Snapshot(g, edges)

	ja, err := json.Marshal(a)
	require.NoError(t, err)
	jb, err := json.Marshal(b)
	require.NoError(t, err)
	assert.Equal(t, string(ja), string(jb))
}

func TestTopHubsStableTies(t *testing.T) {
	g, _ := pathGraph()
	hubs := TopHubs(g, 2)
	require.Len(t, hubs, 2)
	// b and c tie at degree 2; original order breaks the tie.
	assert.Equal(t, "b", hubs[0].Lemma)
	assert.Equal(t, "c", hubs[1].Lemma)
	assert.Equal(t, 2, hubs[0].Degree)
}

func TestTopBridgesSmallGraphSkipped(t *testing.T) {
	g, _ := pathGraph() // 4 nodes: below the 5-node floor
	assert.Empty(t, testEngine().TopBridges(g, 10))
}

func TestTopBridgesRanksCutVertex(t *testing.T) {
	// Two triangles joined through m: m carries every cross pair.
	nodes := []models.Node{
		{ID: "a"}, {ID: "b"}, {ID: "m"}, {ID: "x"}, {ID: "y"},
	}
	edges := []models.Edge{
		{Source: "a", Target: "b", Weight: 1},
		{Source: "a", Target: "m", Weight: 1},
		{Source: "b", Target: "m", Weight: 1},
		{Source: "m", Target: "x", Weight: 1},
		{Source: "m", Target: "y", Weight: 1},
		{Source: "x", Target: "y", Weight: 1},
	}
	g, _ := lexgraph.Build(nodes, edges, lexgraph.BuildOptions{})
	bridges := testEngine().TopBridges(g, 3)
	require.NotEmpty(t, bridges)
	assert.Equal(t, "m", bridges[0].Lemma)
	assert.Greater(t, bridges[0].Betweenness, 0.0)
}

func TestSnapshotWithDetectorReportsCommunities(t *testing.T) {
	nodes := []models.Node{
		{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "x"}, {ID: "y"}, {ID: "z"},
	}
	edges := []models.Edge{
		{Source: "a", Target: "b", Weight: 1},
		{Source: "b", Target: "c", Weight: 1},
		{Source: "c", Target: "a", Weight: 1},
		{Source: "x", Target: "y", Weight: 1},
		{Source: "y", Target: "z", Weight: 1},
		{Source: "z", Target: "x", Weight: 1},
		{Source: "c", Target: "x", Weight: 1},
	}
	g, _ := lexgraph.Build(nodes, edges, lexgraph.BuildOptions{})
	engine := NewEngine(1000, 4000, 123, cluster.ModularityDetector{})
	snap := engine.Snapshot(g, edges)

	require.NotNil(t, snap.CommunityCountLCC)
	assert.GreaterOrEqual(t, *snap.CommunityCountLCC, 1)
	require.NotNil(t, snap.CommunityModularityLCC)
}

func TestSnapshotWithUnavailableDetector(t *testing.T) {
	g, edges := pathGraph()
	engine := NewEngine(1000, 4000, 123, cluster.Unavailable{})
	snap := engine.Snapshot(g, edges)
	assert.Nil(t, snap.CommunityModularityLCC)
	assert.Nil(t, snap.CommunityCountLCC)
}
