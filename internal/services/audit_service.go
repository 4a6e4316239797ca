package services

import (
	"context"
	"encoding/json"

	"github.com/FabritcioPS15/SistemadeInventario-GrupoSanCristobal-sub000/internal/constants"
	"github.com/FabritcioPS15/SistemadeInventario-GrupoSanCristobal-sub000/internal/logging"
	gormModels "github.com/FabritcioPS15/SistemadeInventario-GrupoSanCristobal-sub000/internal/models/gorm"
)

// AuditAppender is the persistence contract for audit entries.
type AuditAppender interface {
	Append(ctx context.Context, entry *gormModels.AuditLog) error
}

// AuditService records status-changing writes as a non-critical side
// effect: a failed append is reported to diagnostics and swallowed, never
// propagated to the operation that triggered it.
type AuditService struct {
	repo AuditAppender
}

func NewAuditService(repo AuditAppender) *AuditService {
	return &AuditService{repo: repo}
}

// Record appends one audit entry, fire-and-forget.
func (s *AuditService) Record(ctx context.Context, action constants.AuditAction, entityType, entityID string, details map[string]any) {
	payload, err := json.Marshal(details)
	if err != nil {
		logging.Warn("audit entry details not serializable",
			"action", action,
			"entity_id", entityID,
			"error", err.Error(),
		)
		payload = []byte("{}")
	}

	entry := &gormModels.AuditLog{
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Details:    string(payload),
	}

	if err := s.repo.Append(ctx, entry); err != nil {
		logging.Warn("audit append failed",
			"action", action,
			"entity_type", entityType,
			"entity_id", entityID,
			"error", err.Error(),
		)
	}
}
