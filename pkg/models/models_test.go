package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexIDDecoding(t *testing.T) {
	var doc GraphDocument
	raw := `{
		"nodes": [{"lemma": "dog", "id": 42}, {"id": "cat"}],
		"edges": [{"source": 42, "target": "cat", "weight": 2.5}]
	}`
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	require.Len(t, doc.Nodes, 2)
	assert.Equal(t, "42", doc.Nodes[0].ID.String())
	assert.Equal(t, "cat", doc.Nodes[1].ID.String())

	edges := doc.RawEdges()
	require.Len(t, edges, 1)
	assert.Equal(t, "42", edges[0].Source.String())
	assert.Equal(t, "cat", edges[0].Target.String())
	assert.Equal(t, 2.5, *edges[0].Weight)
}

func TestFlexIDRejectsStructured(t *testing.T) {
	var f FlexID
	assert.Error(t, json.Unmarshal([]byte(`{"x":1}`), &f))
}

func TestRawEdgesPrefersLinks(t *testing.T) {
	var doc GraphDocument
	raw := `{
		"nodes": [],
		"links": [{"source": "a", "target": "b"}],
		"edges": [{"source": "c", "target": "d"}, {"source": "e", "target": "f"}]
	}`
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	edges := doc.RawEdges()
	require.Len(t, edges, 1)
	assert.Equal(t, "a", edges[0].Source.String())
}

func TestRawEdgesFallsBackToEdges(t *testing.T) {
	var doc GraphDocument
	raw := `{"nodes": [], "edges": [{"source": "a", "target": "b"}]}`
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	assert.Len(t, doc.RawEdges(), 1)
}

func TestEdgeCloneIsDeep(t *testing.T) {
	e := Edge{
		Source:             "a",
		Target:             "b",
		Weight:             2,
		RelationTypes:      []string{"HYPERNYM"},
		RelationTypeCounts: map[string]int{"HYPERNYM": 2},
	}
	c := e.Clone()
	c.RelationTypes[0] = "ANTONYM"
	c.RelationTypeCounts["HYPERNYM"] = 99

	assert.Equal(t, "HYPERNYM", e.RelationTypes[0])
	assert.Equal(t, 2, e.RelationTypeCounts["HYPERNYM"])
}
