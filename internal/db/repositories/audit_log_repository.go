package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/FabritcioPS15/SistemadeInventario-GrupoSanCristobal-sub000/internal/constants"
	gormModels "github.com/FabritcioPS15/SistemadeInventario-GrupoSanCristobal-sub000/internal/models/gorm"
)

// AuditLogRepository appends and reads the audit trail through sqlx.
type AuditLogRepository struct {
	db *sqlx.DB
}

func NewAuditLogRepository(db *sqlx.DB) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

func (r *AuditLogRepository) Append(ctx context.Context, entry *gormModels.AuditLog) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx, constants.InsertAuditLog,
		entry.ID,
		entry.ActorID,
		entry.Action,
		entry.EntityType,
		entry.EntityID,
		entry.Details,
		entry.CreatedAt,
	)
	return err
}

func (r *AuditLogRepository) Recent(ctx context.Context, limit int) ([]gormModels.AuditLog, error) {
	var entries []gormModels.AuditLog
	err := r.db.SelectContext(ctx, &entries, constants.GetRecentAuditLogs, limit)
	return entries, err
}
