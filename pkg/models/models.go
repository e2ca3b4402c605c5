// Package models defines the input and output documents of the lexical
// graph engine: the raw node/link lists consumed from JSON, the canonical
// node/edge records every computation works on, and the cluster/benchmark
// artifacts written back out.
package models

import (
	"encoding/json"
	"fmt"
	"os"
)

// FlexID is a node identifier as it appears in raw input, where the same
// field may hold a JSON string or a JSON number depending on the exporter.
type FlexID string

// UnmarshalJSON accepts both string and numeric identifiers.
func (f *FlexID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexID(n.String())
		return nil
	}
	return fmt.Errorf("flex id: cannot decode %s as string or number", string(data))
}

func (f *FlexID) String() string {
	if f == nil {
		return ""
	}
	return string(*f)
}

// RawNode is one entry of the input "nodes" collection. All identifying
// fields are optional; canonicalization picks the first present one.
type RawNode struct {
	Lemma         *string `json:"lemma"`
	Label         *string `json:"label"`
	Name          *string `json:"name"`
	ID            *FlexID `json:"id"`
	SenseCount    *int    `json:"senseCount"`
	RelationCount *int    `json:"relationCount"`
}

// RawEdge is one entry of the input "edges" or "links" collection.
type RawEdge struct {
	Source             *FlexID        `json:"source"`
	Target             *FlexID        `json:"target"`
	Weight             *float64       `json:"weight"`
	RelationTypes      []string       `json:"relationTypes"`
	RelationTypeCounts map[string]int `json:"relationTypeCounts"`
}

// GraphDocument is the raw input document. "links" and "edges" are
// equivalent shapes; RawEdges picks whichever is present.
type GraphDocument struct {
	Nodes []RawNode `json:"nodes"`
	Edges []RawEdge `json:"edges"`
	Links []RawEdge `json:"links"`
}

// RawEdges returns the edge collection of the document, preferring "links"
// when both shapes are present.
func (d *GraphDocument) RawEdges() []RawEdge {
	if len(d.Links) > 0 {
		return d.Links
	}
	return d.Edges
}

// LoadGraphDocument reads and decodes a raw graph document from disk.
func LoadGraphDocument(path string) (*GraphDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read graph document: %w", err)
	}
	var doc GraphDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode graph document %s: %w", path, err)
	}
	return &doc, nil
}

// Node is a canonicalized node. Created once per distinct canonical id and
// immutable afterwards.
type Node struct {
	ID            string `json:"id"`
	SenseCount    int    `json:"senseCount,omitempty"`
	RelationCount int    `json:"relationCount,omitempty"`
}

// Edge is a canonicalized edge: an unordered pair of canonical ids with a
// weight, a set of relation-type labels and optional per-type mention counts.
type Edge struct {
	Source             string         `json:"source"`
	Target             string         `json:"target"`
	Weight             float64        `json:"weight"`
	RelationTypes      []string       `json:"relationTypes,omitempty"`
	RelationTypeCounts map[string]int `json:"relationTypeCounts,omitempty"`
}

// Clone returns a deep copy of the edge. Scenario transforms copy before
// they modify so the base collections stay untouched.
func (e Edge) Clone() Edge {
	out := e
	if e.RelationTypes != nil {
		out.RelationTypes = make([]string, len(e.RelationTypes))
		copy(out.RelationTypes, e.RelationTypes)
	}
	if e.RelationTypeCounts != nil {
		out.RelationTypeCounts = make(map[string]int, len(e.RelationTypeCounts))
		for k, v := range e.RelationTypeCounts {
			out.RelationTypeCounts[k] = v
		}
	}
	return out
}
