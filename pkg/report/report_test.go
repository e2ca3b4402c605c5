package report

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexatlas/lexgraph/pkg/metrics"
)

func sampleReport() *Report {
	clustering := 0.25
	kcore := 2
	r := &Report{
		InputGraph: "graph.json",
		Outputs: Outputs{
			CSV:  "report.csv",
			JSON: "report.json",
		},
		CommunityDetectionAvailable: true,
		RunID:                       "run-1",
	}
	r.Append(ScenarioEntry{
		Scenario: "baseline",
		Metrics: metrics.Snapshot{
			NumNodes:      4,
			NumEdges:      3,
			NumComponents: 1,
			LCCSize:       4,
			LCCRatio:      1.0,
			DegreeP50:     1,
			DegreeP95:     2,
			DegreeMax:     2,
			ClusteringLCC: &clustering,
			MaxKCore:      &kcore,
			// Distance, community and ranking fields left undefined on purpose.
			TopRelationTypes: "HYPERNYM:2;ANTONYM:1",
		},
		TopHubs: []metrics.HubEntry{{Lemma: "b", Degree: 2}},
	})
	r.Append(ScenarioEntry{
		Scenario: "weight>=2",
		Metrics:  metrics.Snapshot{NumNodes: 4, NumEdges: 1, NumComponents: 3, LCCSize: 2, LCCRatio: 0.5, Isolates: 2},
	})
	return r
}

func TestWriteCSVHeaderAndRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.csv")
	require.NoError(t, sampleReport().WriteCSV(path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, csvHeader, rows[0])
	assert.Equal(t, "baseline", rows[1][0])
	assert.Equal(t, "4", rows[1][1])
	assert.Equal(t, "0.25", rows[1][10])
	assert.Equal(t, "2", rows[1][11])
	assert.Equal(t, "HYPERNYM:2;ANTONYM:1", rows[1][16])

	// Undefined metrics serialize as empty cells, not zeros.
	assert.Equal(t, "", rows[1][12]) // avg_path_lcc
	assert.Equal(t, "", rows[1][13]) // diameter_lcc
	assert.Equal(t, "", rows[2][10]) // clustering_lcc
	assert.Equal(t, "", rows[2][14]) // community_modularity_lcc
}

func TestWriteJSONShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, sampleReport().WriteJSON(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "graph.json", decoded["input_graph"])
	assert.Equal(t, true, decoded["community_detection_available"])
	assert.Equal(t, "run-1", decoded["run_id"])

	scenarios, ok := decoded["scenarios"].([]any)
	require.True(t, ok)
	require.Len(t, scenarios, 2)

	first, ok := scenarios[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "baseline", first["scenario"])
	assert.Contains(t, first, "metrics")
	assert.Contains(t, first, "top_hubs_degree")
	assert.Contains(t, first, "top_bridges_betweenness_approx")

	m, ok := first["metrics"].(map[string]any)
	require.True(t, ok)
	// Undefined optional metrics stay explicit nulls in JSON.
	v, present := m["avg_path_lcc"]
	assert.True(t, present)
	assert.Nil(t, v)
}

func TestScenarioOrderPreserved(t *testing.T) {
	r := sampleReport()
	require.Len(t, r.Scenarios, 2)
	assert.Equal(t, "baseline", r.Scenarios[0].Scenario)
	assert.Equal(t, "weight>=2", r.Scenarios[1].Scenario)
}
