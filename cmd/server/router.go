package main

import (
	"net/http"

	"github.com/BigBug273/daily-vocab/internal/api"
	apiMiddleware "github.com/BigBug273/daily-vocab/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

// setupRouter creates the router with middleware and all routes.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.Trace(app.logger))
	r.Use(middleware.Recoverer)
	r.Use(app.metrics.Middleware)
	r.Use(cors.New(cors.Options{
		AllowedOrigins: app.config.Server.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", apiMiddleware.TraceHeader},
		ExposedHeaders: []string{apiMiddleware.TraceHeader},
	}).Handler)

	wordHandler := api.NewWordHandler(app.wordService, app.logger)
	practiceHandler := api.NewPracticeHandler(app.practiceService, app.logger)
	statsHandler := api.NewStatsHandler(app.statsService, app.logger)

	r.Get("/", api.IndexHandler(version))
	r.Get("/health", api.HealthHandler)
	r.Method(http.MethodGet, "/metrics", app.metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/word", wordHandler.GetRandomWord)
		r.Post("/validate-sentence", practiceHandler.ValidateSentence)
		r.Get("/summary", statsHandler.GetSummary)
		r.Get("/history", statsHandler.GetHistory)
	})

	return r
}
