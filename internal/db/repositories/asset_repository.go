package repositories

import (
	"context"

	gormlib "gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/FabritcioPS15/SistemadeInventario-GrupoSanCristobal-sub000/internal/constants"
	gormModels "github.com/FabritcioPS15/SistemadeInventario-GrupoSanCristobal-sub000/internal/models/gorm"
)

// AssetRepository handles persisted assets. Status and location writes are
// narrow patches; the core never overwrites an asset wholesale.
type AssetRepository struct {
	db *gormlib.DB
}

func NewAssetRepository(db *gormlib.DB) *AssetRepository {
	return &AssetRepository{db: db}
}

func (r *AssetRepository) GetByID(ctx context.Context, id string) (*gormModels.Asset, error) {
	var a gormModels.Asset
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&a).Error
	if err != nil {
		if err == gormlib.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

// ListIDs returns every asset id. Drives the full-table integrity sweep.
func (r *AssetRepository) ListIDs(ctx context.Context) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&gormModels.Asset{}).
		Order("created_at ASC").
		Pluck("id", &ids).Error
	return ids, err
}

func (r *AssetRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&gormModels.Asset{}).Count(&count).Error
	return count, err
}

func (r *AssetRepository) UpdateStatus(ctx context.Context, id string, status constants.AssetStatus) error {
	return r.db.WithContext(ctx).
		Model(&gormModels.Asset{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *AssetRepository) UpdateLocation(ctx context.Context, id string, locationID string) error {
	return r.db.WithContext(ctx).
		Model(&gormModels.Asset{}).
		Where("id = ?", id).
		Update("location_id", locationID).Error
}

// InsertBatch inserts one commit batch. The ON CONFLICT clause on the
// import fingerprint makes a retried commit drop rows it already wrote
// instead of duplicating them. omit strips columns the store rejected on a
// previous attempt (schema drift).
func (r *AssetRepository) InsertBatch(ctx context.Context, batch []*gormModels.Asset, omit ...string) error {
	if len(batch) == 0 {
		return nil
	}

	tx := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "import_batch_id"},
			{Name: "row_fingerprint"},
		},
		DoNothing: true,
	})
	if len(omit) > 0 {
		tx = tx.Omit(omit...)
	}
	return tx.Create(&batch).Error
}
