package services

import (
	"context"
	"sync"
	"testing"

	"gorm.io/driver/sqlite"
	gormlib "gorm.io/gorm"

	"github.com/FabritcioPS15/SistemadeInventario-GrupoSanCristobal-sub000/internal/common"
	"github.com/FabritcioPS15/SistemadeInventario-GrupoSanCristobal-sub000/internal/constants"
	"github.com/FabritcioPS15/SistemadeInventario-GrupoSanCristobal-sub000/internal/db/repositories"
	gormModels "github.com/FabritcioPS15/SistemadeInventario-GrupoSanCristobal-sub000/internal/models/gorm"
)

// setupTestDB creates an in-memory sqlite database with the full schema.
func setupTestDB(t *testing.T) *gormlib.DB {
	t.Helper()

	db, err := gormlib.Open(sqlite.Open(":memory:"), &gormlib.Config{})
	if err != nil {
		t.Fatalf("Failed to open sqlite: %v", err)
	}
	err = db.AutoMigrate(
		&gormModels.AssetType{},
		&gormModels.Location{},
		&gormModels.Asset{},
		&gormModels.MaintenanceRecord{},
		&gormModels.Shipment{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate schema: %v", err)
	}
	return db
}

// seedCatalogs inserts the baseline type and location catalogs used across
// the service tests. The "Otros" fallback is deliberately absent so tests
// can observe its lazy creation.
func seedCatalogs(t *testing.T, db *gormlib.DB) {
	t.Helper()

	types := []gormModels.AssetType{
		{Name: "PC", Category: constants.CategoryComputo},
		{Name: "Laptop", Category: constants.CategoryComputo},
		{Name: "Monitor", Category: constants.CategoryAudiovisual},
		{Name: "Impresora", Category: constants.CategoryImpresion},
		{Name: "Cámara", Category: constants.CategoryCamaras},
		{Name: "Teléfono", Category: constants.CategoryTelefonia},
	}
	for i := range types {
		if err := db.Create(&types[i]).Error; err != nil {
			t.Fatalf("Failed to seed asset type %s: %v", types[i].Name, err)
		}
	}

	locations := []gormModels.Location{
		{Name: "ICA"},
		{Name: "LIMA"},
		{Name: "PISCO"},
		{Name: "ALMACEN CENTRAL"},
	}
	for i := range locations {
		if err := db.Create(&locations[i]).Error; err != nil {
			t.Fatalf("Failed to seed location %s: %v", locations[i].Name, err)
		}
	}
}

func newTestCatalogService(db *gormlib.DB) *common.CatalogService {
	return common.NewCatalogService(
		repositories.NewAssetTypeRepository(db),
		repositories.NewLocationRepository(db),
		common.NewCacheService(300, 600),
	)
}

func mustLocation(t *testing.T, db *gormlib.DB, name string) gormModels.Location {
	t.Helper()
	var loc gormModels.Location
	if err := db.Where("name = ?", name).First(&loc).Error; err != nil {
		t.Fatalf("Location %s not seeded: %v", name, err)
	}
	return loc
}

func mustAssetType(t *testing.T, db *gormlib.DB, name string) gormModels.AssetType {
	t.Helper()
	var at gormModels.AssetType
	if err := db.Where("name = ?", name).First(&at).Error; err != nil {
		t.Fatalf("Asset type %s not seeded: %v", name, err)
	}
	return at
}

// auditRecorder is an in-memory AuditAppender for asserting audit writes.
type auditRecorder struct {
	mu      sync.Mutex
	entries []gormModels.AuditLog
}

func (a *auditRecorder) Append(ctx context.Context, entry *gormModels.AuditLog) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.entries = append(a.entries, *entry)
	return nil
}

func (a *auditRecorder) byAction(action constants.AuditAction) []gormModels.AuditLog {
	a.mu.Lock()
	defer a.mu.Unlock()
	var out []gormModels.AuditLog
	for _, e := range a.entries {
		if e.Action == action {
			out = append(out, e)
		}
	}
	return out
}

// fixedReportSource returns canned counts for report tests.
type fixedReportSource struct {
	withoutLocation, inconsistent, orphanMaint, orphanShip int
}

func (f fixedReportSource) CountAssetsWithoutLocation(ctx context.Context) (int, error) {
	return f.withoutLocation, nil
}
func (f fixedReportSource) CountInconsistentStatus(ctx context.Context) (int, error) {
	return f.inconsistent, nil
}
func (f fixedReportSource) CountOrphanedMaintenance(ctx context.Context) (int, error) {
	return f.orphanMaint, nil
}
func (f fixedReportSource) CountOrphanedShipments(ctx context.Context) (int, error) {
	return f.orphanShip, nil
}

func strPtr(s string) *string { return &s }
