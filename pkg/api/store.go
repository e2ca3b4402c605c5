package api

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lexatlas/lexgraph/pkg/lexgraph"
	"github.com/lexatlas/lexgraph/pkg/models"
	"github.com/lexatlas/lexgraph/pkg/report"
)

// Dataset is an uploaded, already-normalized graph document held in memory.
type Dataset struct {
	ID        string              `json:"id"`
	Name      string              `json:"name"`
	Nodes     []models.Node       `json:"-"`
	Edges     []models.Edge       `json:"-"`
	NodeCount int                 `json:"node_count"`
	EdgeCount int                 `json:"edge_count"`
	Drops     *lexgraph.DropStats `json:"drops"`
	CreatedAt time.Time           `json:"created_at"`
}

// Store keeps datasets and computed artifacts in memory, keyed by uuid.
type Store struct {
	mu       sync.RWMutex
	datasets map[string]*Dataset
	reports  map[string]*report.Report
	clusters map[string]*models.ClusterDocument
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		datasets: make(map[string]*Dataset),
		reports:  make(map[string]*report.Report),
		clusters: make(map[string]*models.ClusterDocument),
	}
}

// AddDataset normalizes a raw document and registers it under a fresh id.
func (s *Store) AddDataset(name string, doc *models.GraphDocument) (*Dataset, error) {
	nodes, edges, drops, err := lexgraph.Normalize(doc)
	if err != nil {
		return nil, err
	}
	ds := &Dataset{
		ID:        uuid.New().String(),
		Name:      name,
		Nodes:     nodes,
		Edges:     edges,
		NodeCount: len(nodes),
		EdgeCount: len(edges),
		Drops:     drops,
		CreatedAt: time.Now().UTC(),
	}
	s.mu.Lock()
	s.datasets[ds.ID] = ds
	s.mu.Unlock()
	return ds, nil
}

// Dataset returns a dataset by id.
func (s *Store) Dataset(id string) (*Dataset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ds, ok := s.datasets[id]
	if !ok {
		return nil, fmt.Errorf("dataset %s not found", id)
	}
	return ds, nil
}

// ListDatasets returns every dataset, newest first.
func (s *Store) ListDatasets() []*Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Dataset, 0, len(s.datasets))
	for _, ds := range s.datasets {
		out = append(out, ds)
	}
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].CreatedAt.After(out[i].CreatedAt) {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out
}

// SetReport stores the benchmark artifact of a dataset.
func (s *Store) SetReport(datasetID string, rep *report.Report) {
	s.mu.Lock()
	s.reports[datasetID] = rep
	s.mu.Unlock()
}

// Report returns the stored benchmark artifact of a dataset.
func (s *Store) Report(datasetID string) (*report.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rep, ok := s.reports[datasetID]
	if !ok {
		return nil, fmt.Errorf("no benchmark report for dataset %s", datasetID)
	}
	return rep, nil
}

// SetClusters stores the clustering artifact of a dataset.
func (s *Store) SetClusters(datasetID string, doc *models.ClusterDocument) {
	s.mu.Lock()
	s.clusters[datasetID] = doc
	s.mu.Unlock()
}

// Clusters returns the stored clustering artifact of a dataset.
func (s *Store) Clusters(datasetID string) (*models.ClusterDocument, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.clusters[datasetID]
	if !ok {
		return nil, fmt.Errorf("no cluster document for dataset %s", datasetID)
	}
	return doc, nil
}
