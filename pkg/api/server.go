package api

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ssargent/gobpt/pkg/index"
)

// NewRouter builds the chi router for an Index: a health check, a
// three-route key/value surface, and an unprotected /metrics endpoint
// for scraping. Returning the router rather than blocking on
// ListenAndServe lets cmd/gobpt layer its own panic-reporting
// middleware on top before serving.
func NewRouter(idx *index.Index, config ServerConfig) chi.Router {
	server := NewServer(idx)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	if m := idx.Metrics(); m != nil {
		r.Handle("/metrics", promhttp.HandlerFor(m.Registry(), promhttp.HandlerOpts{}))
	}

	r.Route("/v1", func(r chi.Router) {
		r.Use(apiKeyMiddleware(config.APIKey))

		r.Get("/health", server.handleHealth)
		r.Get("/keys", server.handleKeys)
		r.Put("/keys/{key}", server.handlePut)
		r.Get("/keys/{key}", server.handleGet)
		r.Delete("/keys/{key}", server.handleDelete)
	})

	return r
}

// StartServer blocks, serving idx over HTTP at config.Bind.
func StartServer(idx *index.Index, config ServerConfig) error {
	r := NewRouter(idx, config)
	log.Printf("gobpt listening on %s", config.Bind)
	return http.ListenAndServe(config.Bind, r)
}
