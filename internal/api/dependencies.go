package api

import (
	"os"
	"strconv"

	"github.com/FabritcioPS15/SistemadeInventario-GrupoSanCristobal-sub000/internal/common"
	"github.com/FabritcioPS15/SistemadeInventario-GrupoSanCristobal-sub000/internal/constants"
	"github.com/FabritcioPS15/SistemadeInventario-GrupoSanCristobal-sub000/internal/db"
	"github.com/FabritcioPS15/SistemadeInventario-GrupoSanCristobal-sub000/internal/db/repositories"
	"github.com/FabritcioPS15/SistemadeInventario-GrupoSanCristobal-sub000/internal/logging"
	"github.com/FabritcioPS15/SistemadeInventario-GrupoSanCristobal-sub000/internal/metrics"
	"github.com/FabritcioPS15/SistemadeInventario-GrupoSanCristobal-sub000/internal/services"
)

type Repositories struct {
	AssetTypes  *repositories.AssetTypeRepository
	Locations   *repositories.LocationRepository
	Assets      *repositories.AssetRepository
	Maintenance *repositories.MaintenanceRepository
	Shipments   *repositories.ShipmentRepository
	Integrity   *repositories.IntegrityRepository
	AuditLogs   *repositories.AuditLogRepository
}

type Services struct {
	Cache      common.CacheInterface
	Catalogs   *common.CatalogService
	Classifier *services.TypeClassifier
	Resolver   *services.LocationResolver
	Audit      *services.AuditService
	Imports    *services.ImportService
	Integrity  *services.IntegrityService
}

type Dependencies struct {
	Repo     *Repositories
	Services *Services
	Metrics  *metrics.MetricsRegistry
}

// InitDependencies wires repositories and services against the global DB
// handles. Redis backs the cache when REDIS_URL is set, otherwise an
// in-process cache is used.
func InitDependencies(metricsReg *metrics.MetricsRegistry) (*Dependencies, error) {
	repos := &Repositories{
		AssetTypes:  repositories.NewAssetTypeRepository(db.PgDB),
		Locations:   repositories.NewLocationRepository(db.PgDB),
		Assets:      repositories.NewAssetRepository(db.PgDB),
		Maintenance: repositories.NewMaintenanceRepository(db.PgDB),
		Shipments:   repositories.NewShipmentRepository(db.PgDB),
		Integrity:   repositories.NewIntegrityRepository(db.DB),
		AuditLogs:   repositories.NewAuditLogRepository(db.DB),
	}

	var cache common.CacheInterface
	if addr := os.Getenv("REDIS_URL"); addr != "" {
		redisCache, err := common.NewRedisCacheService(addr, os.Getenv("REDIS_PASSWORD"))
		if err != nil {
			logging.Warn("Redis unavailable, falling back to in-memory cache", "error", err.Error())
			cache = common.NewCacheService(300, 600)
		} else {
			cache = redisCache
		}
	} else {
		cache = common.NewCacheService(300, 600)
	}

	catalogs := common.NewCatalogService(repos.AssetTypes, repos.Locations, cache)
	classifier := services.NewTypeClassifier(services.DefaultClassifierConfig(), catalogs)
	resolver := services.NewLocationResolver(services.DefaultResolverConfig(), catalogs)
	audit := services.NewAuditService(repos.AuditLogs)

	batchSize := constants.DefaultImportBatchSize
	if raw := os.Getenv("IMPORT_BATCH_SIZE"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			batchSize = n
		}
	}

	svcs := &Services{
		Cache:      cache,
		Catalogs:   catalogs,
		Classifier: classifier,
		Resolver:   resolver,
		Audit:      audit,
		Imports: services.NewImportService(
			classifier, resolver, catalogs, repos.Assets, audit, metricsReg, batchSize),
		Integrity: services.NewIntegrityService(
			repos.Assets, repos.Maintenance, repos.Shipments, repos.Integrity, audit, metricsReg),
	}

	return &Dependencies{
		Repo:     repos,
		Services: svcs,
		Metrics:  metricsReg,
	}, nil
}
