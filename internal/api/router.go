package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kdimtricp/reelmatch/internal/config"
	"github.com/kdimtricp/reelmatch/internal/middleware"
)

func NewRouter(app *App, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Observe)
	r.Use(chimw.Recoverer)

	r.Get("/ping", PingHandler)
	r.Get("/healthz", HealthzHandler)
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		if limit := cfg.RateLimit.Requests; limit > 0 {
			r.Use(httprate.LimitByIP(limit, cfg.RateLimit.Window))
		}

		r.Get("/", app.HomeHandler)
		r.Get("/recommend", app.RecommendHandler)

		r.Route("/api/v1", func(r chi.Router) {
			r.Use(cors.Handler(cors.Options{
				AllowedOrigins: cfg.Server.CORSOrigins,
				AllowedMethods: []string{http.MethodGet, http.MethodOptions},
				AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
				ExposedHeaders: []string{middleware.RequestIDHeader},
				MaxAge:         300,
			}))

			r.Get("/movies", app.MoviesAPIHandler)
			r.Get("/recommendations", app.RecommendationsAPIHandler)
			r.Get("/fetches", app.FetchLogAPIHandler)
		})
	})

	return r
}
