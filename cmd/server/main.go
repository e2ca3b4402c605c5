// Command server exposes the analytics engine over HTTP.
package main

import (
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"

	"github.com/lexatlas/lexgraph/pkg/api"
	"github.com/lexatlas/lexgraph/pkg/config"
)

func main() {
	cfg := config.New()
	if path := os.Getenv("LEXGRAPH_CONFIG"); path != "" {
		if err := cfg.LoadFromFile(path); err != nil {
			log.Fatal().Err(err).Msg("Failed to load config")
		}
	}
	log.Logger = cfg.CreateLogger("server")

	store := api.NewStore()
	handlers := api.NewHandlers(store, cfg)

	router := mux.NewRouter()
	api.SetupRoutes(router, handlers)

	var handler http.Handler = router
	handler = api.LoggingMiddleware(handler)
	handler = api.RecoveryMiddleware(handler)
	handler = cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(handler)

	addr := os.Getenv("SERVER_ADDRESS")
	if addr == "" {
		addr = ":8080"
	}
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 10 * time.Minute, // benchmark runs are synchronous
	}

	log.Info().Str("address", addr).Msg("Server listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("Server failed")
	}
}
