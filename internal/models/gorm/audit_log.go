package gorm

import (
	"time"

	"github.com/google/uuid"
	gormlib "gorm.io/gorm"

	"github.com/FabritcioPS15/SistemadeInventario-GrupoSanCristobal-sub000/internal/constants"
)

// AuditLog is an append-only trail of status-changing reconciliation writes.
// Appends are fire-and-forget: a failed audit write never aborts the
// operation it describes.
// The db tags let the same struct scan through sqlx in the audit repository.
type AuditLog struct {
	ID         string                `gorm:"column:id;primaryKey;type:uuid" db:"id"`
	ActorID    *string               `gorm:"column:actor_id" db:"actor_id"`
	Action     constants.AuditAction `gorm:"column:action;type:varchar(40);not null" db:"action"`
	EntityType string                `gorm:"column:entity_type;type:varchar(40);not null" db:"entity_type"`
	EntityID   string                `gorm:"column:entity_id;not null" db:"entity_id"`
	Details    string                `gorm:"column:details;type:text" db:"details"`
	CreatedAt  time.Time             `gorm:"column:created_at;autoCreateTime" db:"created_at"`
}

// TableName specifies the table name for GORM
func (AuditLog) TableName() string {
	return "audit_logs"
}

func (a *AuditLog) BeforeCreate(tx *gormlib.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
