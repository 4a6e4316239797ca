package repositories

import (
	"context"

	gormlib "gorm.io/gorm"

	gormModels "github.com/FabritcioPS15/SistemadeInventario-GrupoSanCristobal-sub000/internal/models/gorm"
)

// ShipmentRepository handles shipments
type ShipmentRepository struct {
	db *gormlib.DB
}

func NewShipmentRepository(db *gormlib.DB) *ShipmentRepository {
	return &ShipmentRepository{db: db}
}

func (r *ShipmentRepository) GetByID(ctx context.Context, id string) (*gormModels.Shipment, error) {
	var s gormModels.Shipment
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&s).Error
	if err != nil {
		if err == gormlib.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *ShipmentRepository) ListByAsset(ctx context.Context, assetID string) ([]gormModels.Shipment, error) {
	var shipments []gormModels.Shipment
	err := r.db.WithContext(ctx).
		Where("asset_id = ?", assetID).
		Order("created_at ASC").
		Find(&shipments).Error
	return shipments, err
}

// DeleteOrphaned removes shipments whose asset no longer exists. Same
// anti-join guard as the maintenance cleanup.
func (r *ShipmentRepository) DeleteOrphaned(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).Exec(`
		DELETE FROM shipments
		WHERE NOT EXISTS (SELECT 1 FROM assets a WHERE a.id = shipments.asset_id)`)
	return result.RowsAffected, result.Error
}
