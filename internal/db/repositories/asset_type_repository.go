package repositories

import (
	"context"
	"fmt"

	gormlib "gorm.io/gorm"

	"github.com/FabritcioPS15/SistemadeInventario-GrupoSanCristobal-sub000/internal/constants"
	gormModels "github.com/FabritcioPS15/SistemadeInventario-GrupoSanCristobal-sub000/internal/models/gorm"
)

// AssetTypeRepository handles the asset-type catalog
type AssetTypeRepository struct {
	db *gormlib.DB
}

// NewAssetTypeRepository creates a new asset-type repository
func NewAssetTypeRepository(db *gormlib.DB) *AssetTypeRepository {
	return &AssetTypeRepository{db: db}
}

// ListAll returns the catalog in stable name order.
func (r *AssetTypeRepository) ListAll(ctx context.Context) ([]gormModels.AssetType, error) {
	var types []gormModels.AssetType
	err := r.db.WithContext(ctx).Order("name ASC").Find(&types).Error
	return types, err
}

// GetByName does a case-insensitive exact lookup.
func (r *AssetTypeRepository) GetByName(ctx context.Context, name string) (*gormModels.AssetType, error) {
	var t gormModels.AssetType
	err := r.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?)", name).
		First(&t).Error
	if err != nil {
		if err == gormlib.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

// EnsureFallback guarantees the "Otros" catch-all row exists. A concurrent
// creation losing the unique-index race is resolved by re-reading, so all
// callers converge on one row.
func (r *AssetTypeRepository) EnsureFallback(ctx context.Context) (*gormModels.AssetType, error) {
	existing, err := r.GetByName(ctx, constants.FallbackTypeName)
	if err != nil {
		return nil, fmt.Errorf("failed to look up fallback type: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	fallback := gormModels.AssetType{
		Name:     constants.FallbackTypeName,
		Category: constants.CategoryOtros,
	}
	createErr := r.db.WithContext(ctx).Create(&fallback).Error
	if createErr == nil {
		return &fallback, nil
	}

	// Likely a duplicate-key race; the row another writer just created wins.
	existing, err = r.GetByName(ctx, constants.FallbackTypeName)
	if err == nil && existing != nil {
		return existing, nil
	}
	return nil, fmt.Errorf("failed to create fallback type: %w", createErr)
}
