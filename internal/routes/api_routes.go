package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/FabritcioPS15/SistemadeInventario-GrupoSanCristobal-sub000/internal/api"
)

// RegisterAPIRoutes registers all API v1 routes and handlers
// This keeps API route registration separate from the main router setup
func RegisterAPIRoutes(r chi.Router, handlers *api.Handlers, jobsHandler *api.JobsHandler) {

	r.Route("/api/v1", func(v1 chi.Router) {
		// Import sessions: upload → preview → commit
		v1.Route("/imports", func(imports chi.Router) {
			imports.Post("/", handlers.CreateImportHandler())
			imports.Get("/{sessionID}", handlers.GetImportHandler())
			imports.Patch("/{sessionID}/sheets/{sheetName}", handlers.PatchSheetMappingHandler())
			imports.Post("/{sessionID}/commit", handlers.CommitImportHandler())
			imports.Delete("/{sessionID}", handlers.AbortImportHandler())
		})

		// Catalogs
		v1.Get("/catalog/asset-types", handlers.ListAssetTypesHandler())
		v1.Get("/catalog/locations", handlers.ListLocationsHandler())

		// Integrity reconciliation
		v1.Route("/integrity", func(integrity chi.Router) {
			integrity.Get("/report", handlers.GetIntegrityReportHandler())
			integrity.Post("/sweep", jobsHandler.TriggerIntegritySweep())
			integrity.Post("/cleanup", handlers.CleanupOrphansHandler())
		})

		// Per-entity reconciliation triggers
		v1.Post("/assets/{assetID}/integrity", handlers.CheckAssetIntegrityHandler())
		v1.Post("/assets/{assetID}/sync-status", handlers.SyncMaintenanceStatusHandler())
		v1.Post("/shipments/{shipmentID}/sync-location", handlers.SyncShipmentLocationHandler())

		// Audit trail
		v1.Get("/audit", handlers.ListAuditLogsHandler())
	})
}
