package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/FabritcioPS15/SistemadeInventario-GrupoSanCristobal-sub000/internal/constants"
)

// IntegrityRepository answers the read-only aggregate queries behind the
// integrity report. Hand-written SQL through sqlx; the counts are cheap
// enough for an operator-triggered report but not meant for a hot path.
type IntegrityRepository struct {
	db *sqlx.DB
}

func NewIntegrityRepository(db *sqlx.DB) *IntegrityRepository {
	return &IntegrityRepository{db: db}
}

func (r *IntegrityRepository) CountAssetsWithoutLocation(ctx context.Context) (int, error) {
	var n int
	err := r.db.GetContext(ctx, &n, constants.CountAssetsWithoutLocation)
	return n, err
}

func (r *IntegrityRepository) CountInconsistentStatus(ctx context.Context) (int, error) {
	var n int
	err := r.db.GetContext(ctx, &n, constants.CountAssetsInconsistentStatus)
	return n, err
}

func (r *IntegrityRepository) CountOrphanedMaintenance(ctx context.Context) (int, error) {
	var n int
	err := r.db.GetContext(ctx, &n, constants.CountOrphanedMaintenance)
	return n, err
}

func (r *IntegrityRepository) CountOrphanedShipments(ctx context.Context) (int, error) {
	var n int
	err := r.db.GetContext(ctx, &n, constants.CountOrphanedShipments)
	return n, err
}
