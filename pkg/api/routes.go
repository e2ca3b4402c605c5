package api

import (
	"github.com/gorilla/mux"
)

// SetupRoutes wires the handlers under the /api/v1 prefix.
func SetupRoutes(router *mux.Router, handlers *Handlers) {
	api := router.PathPrefix("/api/v1").Subrouter()

	datasets := api.PathPrefix("/datasets").Subrouter()
	datasets.HandleFunc("", handlers.ListDatasets).Methods("GET")
	datasets.HandleFunc("", handlers.UploadDataset).Methods("POST")
	datasets.HandleFunc("/{datasetId}", handlers.GetDataset).Methods("GET")

	datasets.HandleFunc("/{datasetId}/benchmark", handlers.RunBenchmark).Methods("POST")
	datasets.HandleFunc("/{datasetId}/benchmark", handlers.GetReport).Methods("GET")

	datasets.HandleFunc("/{datasetId}/clusters", handlers.RunClustering).Methods("POST")
	datasets.HandleFunc("/{datasetId}/clusters", handlers.GetClusters).Methods("GET")

	api.HandleFunc("/health", handlers.HealthCheck).Methods("GET")
}
