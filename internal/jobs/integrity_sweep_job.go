package jobs

import (
	"context"
	"log"
	"time"

	"github.com/FabritcioPS15/SistemadeInventario-GrupoSanCristobal-sub000/internal/models/dtos"
	"github.com/FabritcioPS15/SistemadeInventario-GrupoSanCristobal-sub000/internal/services"
)

// IntegritySweepJob periodically re-validates every asset against its
// maintenance records and fixes status drift in place.
type IntegritySweepJob struct {
	integrity *services.IntegrityService
}

// NewIntegritySweepJob creates a new integrity sweep job instance
func NewIntegritySweepJob(integrity *services.IntegrityService) *IntegritySweepJob {
	return &IntegritySweepJob{integrity: integrity}
}

// Run executes one full sweep. Exported for manual triggering through the
// API.
func (j *IntegritySweepJob) Run(ctx context.Context) (*dtos.SweepSummary, error) {
	start := time.Now()
	log.Printf("[IntegritySweepJob] Starting integrity sweep at %s", start.Format(time.RFC3339))

	summary, err := j.integrity.SyncAllAssetsIntegrity(ctx)
	if err != nil {
		log.Printf("[IntegritySweepJob] Error running sweep: %v", err)
		return nil, err
	}

	log.Printf("[IntegritySweepJob] Completed sweep in %s. Checked: %d, fixed: %d, errors: %d",
		time.Since(start).Truncate(time.Millisecond),
		summary.AssetsChecked, summary.AssetsFixed, summary.Errors)
	return summary, nil
}

// RunScheduled runs the sweep on a fixed interval until the context is
// cancelled. The first sweep runs immediately on start.
func (j *IntegritySweepJob) RunScheduled(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	if _, err := j.Run(ctx); err != nil {
		log.Printf("[IntegritySweepJob] Error in initial run: %v", err)
	}

	for {
		select {
		case <-ticker.C:
			if _, err := j.Run(ctx); err != nil {
				log.Printf("[IntegritySweepJob] Error in scheduled run: %v", err)
			}
		case <-ctx.Done():
			log.Printf("[IntegritySweepJob] Stopping scheduled sweeps")
			return
		}
	}
}
