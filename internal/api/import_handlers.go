package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/FabritcioPS15/SistemadeInventario-GrupoSanCristobal-sub000/internal/common"
	"github.com/FabritcioPS15/SistemadeInventario-GrupoSanCristobal-sub000/internal/models/dtos"
	"github.com/FabritcioPS15/SistemadeInventario-GrupoSanCristobal-sub000/internal/services"
)

// Workbook uploads are buffered to memory up to this size before spilling
// to disk.
const maxUploadMemory = 16 << 20

// CreateImportHandler handles POST /api/v1/imports
// Accepts a multipart upload under "file", parses the workbook and returns
// the new session with its initial preview.
func (h *Handlers) CreateImportHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
			common.RespondError(w, initTime, err, "Invalid multipart upload", http.StatusBadRequest)
			return
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			common.RespondError(w, initTime, err, "Missing file field", http.StatusBadRequest)
			return
		}
		defer file.Close()

		session, err := h.deps.Services.Imports.LoadWorkbook(r.Context(), header.Filename, file)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to load workbook", http.StatusUnprocessableEntity)
			return
		}

		common.RespondSuccess(w, initTime, "Workbook loaded", session, http.StatusCreated)
	}
}

// GetImportHandler handles GET /api/v1/imports/{sessionID}
func (h *Handlers) GetImportHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		session, err := h.deps.Services.Imports.GetSession(chi.URLParam(r, "sessionID"))
		if err != nil {
			common.RespondError(w, initTime, err, "Session not found", http.StatusNotFound)
			return
		}

		common.RespondSuccess(w, initTime, "Import session", session)
	}
}

// PatchSheetMappingHandler handles PATCH /api/v1/imports/{sessionID}/sheets/{sheetName}
// Applies a location override or ignore flag and returns the recomputed
// preview.
func (h *Handlers) PatchSheetMappingHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var patch dtos.SheetMappingPatch
		if err := decodeJSONBody(r, &patch); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		session, err := h.deps.Services.Imports.SetSheetMapping(
			r.Context(),
			chi.URLParam(r, "sessionID"),
			chi.URLParam(r, "sheetName"),
			patch,
		)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to update sheet mapping", importErrorStatus(err))
			return
		}

		common.RespondSuccess(w, initTime, "Sheet mapping updated", session)
	}
}

// CommitImportHandler handles POST /api/v1/imports/{sessionID}/commit
func (h *Handlers) CommitImportHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		result, err := h.deps.Services.Imports.Commit(r.Context(), chi.URLParam(r, "sessionID"))
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to commit import", importErrorStatus(err))
			return
		}
		if result.Err != "" {
			// Partial failure: some batches may be committed, the session is
			// failed and the store error is surfaced verbatim.
			common.RespondError(w, initTime, errors.New(result.Err), "Import commit failed", http.StatusConflict)
			return
		}

		common.RespondSuccess(w, initTime, "Import committed", result)
	}
}

// AbortImportHandler handles DELETE /api/v1/imports/{sessionID}
func (h *Handlers) AbortImportHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		if err := h.deps.Services.Imports.Abort(chi.URLParam(r, "sessionID")); err != nil {
			common.RespondError(w, initTime, err, "Failed to abort import", importErrorStatus(err))
			return
		}

		common.RespondSuccess(w, initTime, "Import aborted", nil)
	}
}

func importErrorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrSessionNotFound), errors.Is(err, services.ErrUnknownSheet):
		return http.StatusNotFound
	case errors.Is(err, services.ErrSessionState):
		return http.StatusConflict
	case errors.Is(err, services.ErrUnknownLocation):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
