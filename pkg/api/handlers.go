package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/lexatlas/lexgraph/pkg/benchmark"
	"github.com/lexatlas/lexgraph/pkg/cluster"
	"github.com/lexatlas/lexgraph/pkg/config"
	"github.com/lexatlas/lexgraph/pkg/layout"
	"github.com/lexatlas/lexgraph/pkg/models"
	"github.com/lexatlas/lexgraph/pkg/scenario"
)

// Handlers holds the HTTP request handlers and their dependencies.
type Handlers struct {
	store *Store
	cfg   *config.Config
}

// NewHandlers creates the API handlers over a store and configuration.
func NewHandlers(store *Store, cfg *config.Config) *Handlers {
	return &Handlers{store: store, cfg: cfg}
}

type uploadRequest struct {
	Name  string               `json:"name"`
	Graph models.GraphDocument `json:"graph"`
}

// UploadDataset accepts a raw graph document and normalizes it.
func (h *Handlers) UploadDataset(w http.ResponseWriter, r *http.Request) {
	var req uploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "Invalid graph document", err)
		return
	}
	if req.Name == "" {
		req.Name = "Unnamed Dataset"
	}
	ds, err := h.store.AddDataset(req.Name, &req.Graph)
	if err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			WriteErrorResponse(w, http.StatusBadRequest, "Graph document failed validation", err)
			return
		}
		WriteErrorResponse(w, http.StatusInternalServerError, "Dataset upload failed", err)
		return
	}
	log.Info().
		Str("dataset_id", ds.ID).
		Str("name", ds.Name).
		Int("nodes", ds.NodeCount).
		Int("edges", ds.EdgeCount).
		Msg("Dataset uploaded")
	WriteSuccessResponse(w, "Dataset uploaded successfully", ds)
}

// ListDatasets lists every uploaded dataset.
func (h *Handlers) ListDatasets(w http.ResponseWriter, r *http.Request) {
	WriteSuccessResponse(w, "Datasets retrieved successfully", h.store.ListDatasets())
}

// GetDataset retrieves one dataset.
func (h *Handlers) GetDataset(w http.ResponseWriter, r *http.Request) {
	ds, err := h.store.Dataset(mux.Vars(r)["datasetId"])
	if err != nil {
		WriteErrorResponse(w, http.StatusNotFound, "Dataset not found", err)
		return
	}
	WriteSuccessResponse(w, "Dataset retrieved successfully", ds)
}

// RunBenchmark executes the scenario benchmark against a dataset and stores
// the report. The run is synchronous: the engine is a batch computation and
// the caller owns any deadline.
func (h *Handlers) RunBenchmark(w http.ResponseWriter, r *http.Request) {
	ds, err := h.store.Dataset(mux.Vars(r)["datasetId"])
	if err != nil {
		WriteErrorResponse(w, http.StatusNotFound, "Dataset not found", err)
		return
	}
	rep, err := benchmark.Run(ds.Nodes, ds.Edges, benchmark.Options{
		Scenarios:         scenario.DefaultFamily(),
		DistanceSamples:   h.cfg.DistanceSamples(),
		BetweennessSample: h.cfg.BetweennessSample(),
		Seed:              h.cfg.Seed(),
		HubCount:          h.cfg.HubCount(),
		BridgeCount:       h.cfg.BridgeCount(),
		Detector:          cluster.ModularityDetector{},
		InputGraph:        ds.Name,
	})
	if err != nil {
		WriteErrorResponse(w, http.StatusInternalServerError, "Benchmark failed", err)
		return
	}
	h.store.SetReport(ds.ID, rep)
	WriteSuccessResponse(w, "Benchmark complete", rep)
}

// GetReport returns the stored benchmark report of a dataset.
func (h *Handlers) GetReport(w http.ResponseWriter, r *http.Request) {
	rep, err := h.store.Report(mux.Vars(r)["datasetId"])
	if err != nil {
		WriteErrorResponse(w, http.StatusNotFound, "Report not found", err)
		return
	}
	WriteSuccessResponse(w, "Report retrieved successfully", rep)
}

// RunClustering executes the multi-level clustering pipeline against a
// dataset and stores the cluster document.
func (h *Handlers) RunClustering(w http.ResponseWriter, r *http.Request) {
	ds, err := h.store.Dataset(mux.Vars(r)["datasetId"])
	if err != nil {
		WriteErrorResponse(w, http.StatusNotFound, "Dataset not found", err)
		return
	}
	doc, err := cluster.RunPipeline(ds.Nodes, ds.Edges, cluster.PipelineOptions{
		Levels:   h.cfg.Levels(),
		Detector: cluster.ModularityDetector{},
		Seed:     h.cfg.Seed(),
		MaxNodes: h.cfg.MaxNodes(),
		Layout: layout.Options{
			Iterations: h.cfg.LayoutIterations(),
			Extent:     h.cfg.LayoutExtent(),
			Seed:       h.cfg.Seed(),
		},
	})
	if err != nil {
		WriteErrorResponse(w, http.StatusInternalServerError, "Clustering failed", err)
		return
	}
	h.store.SetClusters(ds.ID, doc)
	WriteSuccessResponse(w, "Clustering complete", doc)
}

// GetClusters returns the stored cluster document of a dataset.
func (h *Handlers) GetClusters(w http.ResponseWriter, r *http.Request) {
	doc, err := h.store.Clusters(mux.Vars(r)["datasetId"])
	if err != nil {
		WriteErrorResponse(w, http.StatusNotFound, "Cluster document not found", err)
		return
	}
	WriteSuccessResponse(w, "Cluster document retrieved successfully", doc)
}

// HealthCheck reports liveness.
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	WriteSuccessResponse(w, "ok", map[string]string{"status": "healthy"})
}
