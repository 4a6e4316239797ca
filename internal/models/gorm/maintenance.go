package gorm

import (
	"time"

	"github.com/google/uuid"
	gormlib "gorm.io/gorm"

	"github.com/FabritcioPS15/SistemadeInventario-GrupoSanCristobal-sub000/internal/constants"
)

// MaintenanceRecord tracks one repair cycle for an asset. A record in
// pending or in_progress forces the asset's status to maintenance.
type MaintenanceRecord struct {
	ID          string                      `gorm:"column:id;primaryKey;type:uuid"`
	AssetID     string                      `gorm:"column:asset_id;type:uuid;index;not null"`
	Status      constants.MaintenanceStatus `gorm:"column:status;type:varchar(20);default:pending"`
	Description *string                     `gorm:"column:description"`
	ReportedAt  time.Time                   `gorm:"column:reported_at;autoCreateTime"`
	ResolvedAt  *time.Time                  `gorm:"column:resolved_at"`
}

// TableName specifies the table name for GORM
func (MaintenanceRecord) TableName() string {
	return "maintenance_records"
}

func (m *MaintenanceRecord) BeforeCreate(tx *gormlib.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
