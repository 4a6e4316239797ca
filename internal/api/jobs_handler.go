package api

import (
	"net/http"
	"time"

	"github.com/FabritcioPS15/SistemadeInventario-GrupoSanCristobal-sub000/internal/common"
	"github.com/FabritcioPS15/SistemadeInventario-GrupoSanCristobal-sub000/internal/jobs"
	"github.com/FabritcioPS15/SistemadeInventario-GrupoSanCristobal-sub000/internal/models/dtos"
)

// JobsHandler exposes manual triggering of background jobs
type JobsHandler struct {
	sweepJob *jobs.IntegritySweepJob
}

// NewJobsHandler creates a new jobs handler
func NewJobsHandler(sweepJob *jobs.IntegritySweepJob) *JobsHandler {
	return &JobsHandler{sweepJob: sweepJob}
}

// TriggerIntegritySweep handles POST /api/v1/integrity/sweep
// Runs a full sweep synchronously and returns its summary.
func (h *JobsHandler) TriggerIntegritySweep() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		summary, err := h.sweepJob.Run(r.Context())
		if err != nil {
			common.RespondError(w, initTime, err, "Integrity sweep failed", http.StatusInternalServerError)
			return
		}

		completed := time.Now()
		common.RespondSuccess(w, initTime, "Integrity sweep completed", dtos.SweepTriggerResponse{
			TriggeredAt: initTime,
			CompletedAt: completed,
			DurationMs:  completed.Sub(initTime).Milliseconds(),
			Summary:     *summary,
		})
	}
}
