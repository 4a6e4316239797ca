package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/FabritcioPS15/SistemadeInventario-GrupoSanCristobal-sub000/internal/api"
	"github.com/FabritcioPS15/SistemadeInventario-GrupoSanCristobal-sub000/internal/db"
	"github.com/FabritcioPS15/SistemadeInventario-GrupoSanCristobal-sub000/internal/jobs"
	"github.com/FabritcioPS15/SistemadeInventario-GrupoSanCristobal-sub000/internal/logging"
	"github.com/FabritcioPS15/SistemadeInventario-GrupoSanCristobal-sub000/internal/metrics"
	"github.com/FabritcioPS15/SistemadeInventario-GrupoSanCristobal-sub000/internal/middleware"
)

func RegisterRoutes(upSince time.Time) http.Handler {

	// initialize Chi router
	r := chi.NewRouter()

	// Initialize metrics registry
	metricsReg := metrics.NewMetricsRegistry()

	// global middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.MetricsMiddleware(metricsReg))
	r.Use(middleware.RateLimitMiddleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	logging.Info("Router initialized with metrics and logging middleware")
	// health check
	r.Get("/healthCheck", api.HealthCheckHandler(db.DB, upSince))

	// Initialize dependencies using DI pattern
	deps, err := api.InitDependencies(metricsReg)
	if err != nil {
		panic("Failed to initialize dependencies: " + err.Error())
	}

	// Initialize handlers with dependencies
	handlers := api.NewHandlers(deps)

	// Setup scheduled jobs
	sweepJob := jobs.InitializeJobs(context.Background(), deps.Services.Integrity)

	// Initialize jobs handler for manual triggering
	jobsHandler := api.NewJobsHandler(sweepJob)

	RegisterAPIRoutes(r, handlers, jobsHandler)

	return r
}
