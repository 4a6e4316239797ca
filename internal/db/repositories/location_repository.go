package repositories

import (
	"context"

	gormlib "gorm.io/gorm"

	gormModels "github.com/FabritcioPS15/SistemadeInventario-GrupoSanCristobal-sub000/internal/models/gorm"
)

// LocationRepository reads the location catalog. The import core never
// writes locations.
type LocationRepository struct {
	db *gormlib.DB
}

func NewLocationRepository(db *gormlib.DB) *LocationRepository {
	return &LocationRepository{db: db}
}

func (r *LocationRepository) ListAll(ctx context.Context) ([]gormModels.Location, error) {
	var locations []gormModels.Location
	err := r.db.WithContext(ctx).Order("name ASC").Find(&locations).Error
	return locations, err
}

func (r *LocationRepository) GetByID(ctx context.Context, id string) (*gormModels.Location, error) {
	var l gormModels.Location
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&l).Error
	if err != nil {
		if err == gormlib.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &l, nil
}
