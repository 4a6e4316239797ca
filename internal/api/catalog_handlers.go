package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/FabritcioPS15/SistemadeInventario-GrupoSanCristobal-sub000/internal/common"
	"github.com/FabritcioPS15/SistemadeInventario-GrupoSanCristobal-sub000/internal/models/dtos"
)

// ListAssetTypesHandler handles GET /api/v1/catalog/asset-types
func (h *Handlers) ListAssetTypesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		types, err := h.deps.Services.Catalogs.AssetTypes(r.Context())
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to list asset types", http.StatusInternalServerError)
			return
		}

		out := make([]dtos.AssetTypeResponse, 0, len(types))
		for _, t := range types {
			out = append(out, dtos.AssetTypeResponse{
				ID:       t.ID,
				Name:     t.Name,
				Category: string(t.Category),
			})
		}
		common.RespondSuccess(w, initTime, "Asset types", out)
	}
}

// ListLocationsHandler handles GET /api/v1/catalog/locations
func (h *Handlers) ListLocationsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		locations, err := h.deps.Services.Catalogs.Locations(r.Context())
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to list locations", http.StatusInternalServerError)
			return
		}

		out := make([]dtos.LocationResponse, 0, len(locations))
		for _, l := range locations {
			out = append(out, dtos.LocationResponse{
				ID:     l.ID,
				Name:   l.Name,
				Region: l.Region,
			})
		}
		common.RespondSuccess(w, initTime, "Locations", out)
	}
}

// ListAuditLogsHandler handles GET /api/v1/audit?limit=N
func (h *Handlers) ListAuditLogsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		limit := 50
		if raw := r.URL.Query().Get("limit"); raw != "" {
			if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 500 {
				limit = n
			}
		}

		entries, err := h.deps.Repo.AuditLogs.Recent(r.Context(), limit)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to list audit logs", http.StatusInternalServerError)
			return
		}

		out := make([]dtos.AuditLogResponse, 0, len(entries))
		for _, e := range entries {
			out = append(out, dtos.AuditLogResponse{
				ID:         e.ID,
				ActorID:    e.ActorID,
				Action:     string(e.Action),
				EntityType: e.EntityType,
				EntityID:   e.EntityID,
				Details:    e.Details,
				CreatedAt:  e.CreatedAt,
			})
		}
		common.RespondSuccess(w, initTime, "Audit logs", out)
	}
}
