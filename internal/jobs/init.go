package jobs

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/FabritcioPS15/SistemadeInventario-GrupoSanCristobal-sub000/internal/services"
)

// InitializeJobs initializes and starts all background jobs. The sweep
// interval comes from INTEGRITY_SWEEP_INTERVAL_MINUTES; 0 disables the
// schedule but keeps the job available for manual triggering.
func InitializeJobs(ctx context.Context, integrity *services.IntegrityService) *IntegritySweepJob {
	sweepJob := NewIntegritySweepJob(integrity)

	interval := sweepIntervalFromEnv()
	if interval > 0 {
		go sweepJob.RunScheduled(ctx, interval)
	} else {
		log.Printf("[IntegritySweepJob] Scheduled sweeps disabled")
	}

	return sweepJob
}

func sweepIntervalFromEnv() time.Duration {
	raw := os.Getenv("INTEGRITY_SWEEP_INTERVAL_MINUTES")
	if raw == "" {
		return 60 * time.Minute
	}
	minutes, err := strconv.Atoi(raw)
	if err != nil || minutes < 0 {
		log.Printf("[IntegritySweepJob] Invalid INTEGRITY_SWEEP_INTERVAL_MINUTES %q, using default", raw)
		return 60 * time.Minute
	}
	return time.Duration(minutes) * time.Minute
}
