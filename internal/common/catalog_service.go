package common

import (
	"context"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/FabritcioPS15/SistemadeInventario-GrupoSanCristobal-sub000/internal/constants"
	"github.com/FabritcioPS15/SistemadeInventario-GrupoSanCristobal-sub000/internal/db/repositories"
	gormModels "github.com/FabritcioPS15/SistemadeInventario-GrupoSanCristobal-sub000/internal/models/gorm"
)

const catalogCacheTTL = 5 * time.Minute

// CatalogService serves the asset-type and location catalogs through the
// cache. Concurrent cold reads for the same catalog collapse into one store
// query via singleflight. Redis cache hits decode as generic JSON, so a
// failed type assertion is treated as a miss and reloaded.
type CatalogService struct {
	typeRepo *repositories.AssetTypeRepository
	locRepo  *repositories.LocationRepository
	cache    CacheInterface
	group    singleflight.Group
}

func NewCatalogService(
	typeRepo *repositories.AssetTypeRepository,
	locRepo *repositories.LocationRepository,
	cache CacheInterface,
) *CatalogService {
	return &CatalogService{
		typeRepo: typeRepo,
		locRepo:  locRepo,
		cache:    cache,
	}
}

// AssetTypes returns the type catalog in stable order.
func (s *CatalogService) AssetTypes(ctx context.Context) ([]gormModels.AssetType, error) {
	key := string(constants.CachePrefixAssetTypes)
	if val, found := s.cache.Get(key); found {
		if types, ok := val.([]gormModels.AssetType); ok {
			return types, nil
		}
	}

	val, err, _ := s.group.Do(key, func() (any, error) {
		types, err := s.typeRepo.ListAll(ctx)
		if err != nil {
			return nil, err
		}
		s.cache.Set(key, types, catalogCacheTTL)
		return types, nil
	})
	if err != nil {
		return nil, err
	}
	return val.([]gormModels.AssetType), nil
}

// Locations returns the location catalog in stable order.
func (s *CatalogService) Locations(ctx context.Context) ([]gormModels.Location, error) {
	key := string(constants.CachePrefixLocations)
	if val, found := s.cache.Get(key); found {
		if locations, ok := val.([]gormModels.Location); ok {
			return locations, nil
		}
	}

	val, err, _ := s.group.Do(key, func() (any, error) {
		locations, err := s.locRepo.ListAll(ctx)
		if err != nil {
			return nil, err
		}
		s.cache.Set(key, locations, catalogCacheTTL)
		return locations, nil
	})
	if err != nil {
		return nil, err
	}
	return val.([]gormModels.Location), nil
}

// EnsureFallbackType guarantees the "Otros" row exists and drops the cached
// type catalog so the new row is visible to the next read.
func (s *CatalogService) EnsureFallbackType(ctx context.Context) (*gormModels.AssetType, error) {
	fallback, err := s.typeRepo.EnsureFallback(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Delete(string(constants.CachePrefixAssetTypes))
	return fallback, nil
}
