package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/FabritcioPS15/SistemadeInventario-GrupoSanCristobal-sub000/internal/common"
)

// GetIntegrityReportHandler handles GET /api/v1/integrity/report
// Read-only: aggregates the system-wide inconsistency counts.
func (h *Handlers) GetIntegrityReportHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		report, err := h.deps.Services.Integrity.GenerateIntegrityReport(r.Context())
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to generate integrity report", http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "Integrity report", report)
	}
}

// CleanupOrphansHandler handles POST /api/v1/integrity/cleanup
func (h *Handlers) CleanupOrphansHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		result, err := h.deps.Services.Integrity.CleanupOrphanedData(r.Context())
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to clean up orphaned data", http.StatusInternalServerError)
			return
		}

		msg := "Orphaned data cleaned up"
		if result.Skipped {
			msg = "Cleanup skipped: no assets in store"
		}
		common.RespondSuccess(w, initTime, msg, result)
	}
}

// CheckAssetIntegrityHandler handles POST /api/v1/assets/{assetID}/integrity
// Validates one asset and auto-fixes status drift in place.
func (h *Handlers) CheckAssetIntegrityHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		result, err := h.deps.Services.Integrity.ValidateAndSyncAssetIntegrity(r.Context(), chi.URLParam(r, "assetID"))
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to check asset integrity", http.StatusNotFound)
			return
		}

		common.RespondSuccess(w, initTime, "Asset integrity checked", result)
	}
}

// SyncMaintenanceStatusHandler handles POST /api/v1/assets/{assetID}/sync-status
// Re-derives the asset's status from its maintenance records.
func (h *Handlers) SyncMaintenanceStatusHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		assetID := chi.URLParam(r, "assetID")
		if err := h.deps.Services.Integrity.SyncAssetMaintenanceStatus(r.Context(), assetID); err != nil {
			common.RespondError(w, initTime, err, "Failed to sync asset status", http.StatusNotFound)
			return
		}

		common.RespondSuccess(w, initTime, "Asset status synced", nil)
	}
}

// SyncShipmentLocationHandler handles POST /api/v1/shipments/{shipmentID}/sync-location
// Writes a delivered shipment's destination through to the asset.
func (h *Handlers) SyncShipmentLocationHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		shipmentID := chi.URLParam(r, "shipmentID")
		if err := h.deps.Services.Integrity.SyncAssetLocationOnShipmentComplete(r.Context(), shipmentID); err != nil {
			common.RespondError(w, initTime, err, "Failed to sync asset location", http.StatusNotFound)
			return
		}

		common.RespondSuccess(w, initTime, "Asset location synced", nil)
	}
}
