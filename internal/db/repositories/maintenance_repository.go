package repositories

import (
	"context"

	gormlib "gorm.io/gorm"

	gormModels "github.com/FabritcioPS15/SistemadeInventario-GrupoSanCristobal-sub000/internal/models/gorm"
)

// MaintenanceRepository handles maintenance records
type MaintenanceRepository struct {
	db *gormlib.DB
}

func NewMaintenanceRepository(db *gormlib.DB) *MaintenanceRepository {
	return &MaintenanceRepository{db: db}
}

func (r *MaintenanceRepository) ListByAsset(ctx context.Context, assetID string) ([]gormModels.MaintenanceRecord, error) {
	var records []gormModels.MaintenanceRecord
	err := r.db.WithContext(ctx).
		Where("asset_id = ?", assetID).
		Order("reported_at ASC").
		Find(&records).Error
	return records, err
}

// DeleteOrphaned removes records whose asset no longer exists. Expressed as
// an anti-join so an empty live-id list can never match every row. Callers
// must still skip the call entirely when the asset table is empty.
func (r *MaintenanceRepository) DeleteOrphaned(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).Exec(`
		DELETE FROM maintenance_records
		WHERE NOT EXISTS (SELECT 1 FROM assets a WHERE a.id = maintenance_records.asset_id)`)
	return result.RowsAffected, result.Error
}
