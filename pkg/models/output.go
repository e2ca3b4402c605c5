package models

import (
	"encoding/json"
	"fmt"
	"os"
)

// Position is the laid-out location of one cluster, with its membership.
type Position struct {
	X       float64  `json:"x"`
	Y       float64  `json:"y"`
	Size    int      `json:"size"`
	Members []string `json:"members"`
}

// ClusterMeta describes the input and the configuration of a clustering run.
type ClusterMeta struct {
	InputNodes     int      `json:"input_nodes"`
	InputLinks     int      `json:"input_links"`
	ClusteredNodes int      `json:"clustered_nodes"`
	Levels         []string `json:"levels"`
	MaxNodes       *int     `json:"max_nodes"`
}

// ClusterDocument is the artifact of a multi-level clustering run: one
// node→cluster mapping and one cluster layout per configured level.
type ClusterDocument struct {
	Meta      ClusterMeta                    `json:"meta"`
	Levels    map[string]map[string]string   `json:"levels"`
	Positions map[string]map[string]Position `json:"positions"`
}

// WriteJSON writes the document to path with indentation, for diffable runs.
func (d *ClusterDocument) WriteJSON(path string) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("encode cluster document: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write cluster document: %w", err)
	}
	return nil
}
