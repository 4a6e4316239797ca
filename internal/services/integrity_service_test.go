package services

import (
	"context"
	"testing"
	"time"

	gormlib "gorm.io/gorm"

	"github.com/FabritcioPS15/SistemadeInventario-GrupoSanCristobal-sub000/internal/constants"
	"github.com/FabritcioPS15/SistemadeInventario-GrupoSanCristobal-sub000/internal/db/repositories"
	gormModels "github.com/FabritcioPS15/SistemadeInventario-GrupoSanCristobal-sub000/internal/models/gorm"
)

func newTestIntegrityService(db *gormlib.DB, audit *auditRecorder, source IntegrityReportSource) *IntegrityService {
	return NewIntegrityService(
		repositories.NewAssetRepository(db),
		repositories.NewMaintenanceRepository(db),
		repositories.NewShipmentRepository(db),
		source,
		NewAuditService(audit),
		nil,
	)
}

func createAsset(t *testing.T, db *gormlib.DB, status constants.AssetStatus) *gormModels.Asset {
	t.Helper()
	laptop := mustAssetType(t, db, "Laptop")
	loc := mustLocation(t, db, "ICA")
	asset := &gormModels.Asset{
		AssetTypeID: &laptop.ID,
		LocationID:  &loc.ID,
		Status:      status,
	}
	if err := db.Create(asset).Error; err != nil {
		t.Fatalf("Failed to create asset: %v", err)
	}
	return asset
}

func TestIntegrity_OpenMaintenanceForcesMaintenanceStatus(t *testing.T) {
	db := setupTestDB(t)
	seedCatalogs(t, db)
	audit := &auditRecorder{}
	svc := newTestIntegrityService(db, audit, fixedReportSource{})

	asset := createAsset(t, db, constants.AssetStatusActive)
	record := &gormModels.MaintenanceRecord{AssetID: asset.ID, Status: constants.MaintenancePending}
	if err := db.Create(record).Error; err != nil {
		t.Fatalf("Failed to create maintenance record: %v", err)
	}

	result, err := svc.ValidateAndSyncAssetIntegrity(context.Background(), asset.ID)
	if err != nil {
		t.Fatalf("ValidateAndSyncAssetIntegrity failed: %v", err)
	}
	if result.IsValid {
		t.Error("Expected the asset to be flagged")
	}
	if len(result.Fixes) != 1 || !result.Fixes[0].AutoFixed {
		t.Fatalf("Expected one auto-fix, got %+v", result.Fixes)
	}

	var updated gormModels.Asset
	if err := db.First(&updated, "id = ?", asset.ID).Error; err != nil {
		t.Fatalf("Reload failed: %v", err)
	}
	if updated.Status != constants.AssetStatusMaintenance {
		t.Errorf("Expected maintenance status, got %s", updated.Status)
	}

	if entries := audit.byAction(constants.AuditActionIntegrityFix); len(entries) != 1 {
		t.Errorf("Expected 1 integrity_auto_fix audit entry, got %d", len(entries))
	}
}

func TestIntegrity_StaleMaintenanceStatusReverts(t *testing.T) {
	db := setupTestDB(t)
	seedCatalogs(t, db)
	svc := newTestIntegrityService(db, &auditRecorder{}, fixedReportSource{})

	asset := createAsset(t, db, constants.AssetStatusMaintenance)
	resolved := time.Now()
	record := &gormModels.MaintenanceRecord{
		AssetID:    asset.ID,
		Status:     constants.MaintenanceCompleted,
		ResolvedAt: &resolved,
	}
	if err := db.Create(record).Error; err != nil {
		t.Fatalf("Failed to create maintenance record: %v", err)
	}

	result, err := svc.ValidateAndSyncAssetIntegrity(context.Background(), asset.ID)
	if err != nil {
		t.Fatalf("ValidateAndSyncAssetIntegrity failed: %v", err)
	}
	if len(result.Fixes) != 1 {
		t.Fatalf("Expected one fix, got %+v", result.Fixes)
	}

	var updated gormModels.Asset
	if err := db.First(&updated, "id = ?", asset.ID).Error; err != nil {
		t.Fatalf("Reload failed: %v", err)
	}
	if updated.Status != constants.AssetStatusActive {
		t.Errorf("Expected active status after revert, got %s", updated.Status)
	}
}

func TestIntegrity_InTransitShipmentForcesShippedStatus(t *testing.T) {
	db := setupTestDB(t)
	seedCatalogs(t, db)
	svc := newTestIntegrityService(db, &auditRecorder{}, fixedReportSource{})

	asset := createAsset(t, db, constants.AssetStatusActive)
	dest := mustLocation(t, db, "PISCO")
	shipment := &gormModels.Shipment{
		AssetID:               asset.ID,
		Status:                constants.ShipmentInTransit,
		DestinationLocationID: &dest.ID,
	}
	if err := db.Create(shipment).Error; err != nil {
		t.Fatalf("Failed to create shipment: %v", err)
	}

	result, err := svc.ValidateAndSyncAssetIntegrity(context.Background(), asset.ID)
	if err != nil {
		t.Fatalf("ValidateAndSyncAssetIntegrity failed: %v", err)
	}
	if len(result.Fixes) != 1 || !result.Fixes[0].AutoFixed {
		t.Fatalf("Expected one auto-fix, got %+v", result.Fixes)
	}

	var updated gormModels.Asset
	if err := db.First(&updated, "id = ?", asset.ID).Error; err != nil {
		t.Fatalf("Reload failed: %v", err)
	}
	if updated.Status != constants.AssetStatusShipped {
		t.Errorf("Expected shipped status, got %s", updated.Status)
	}
}

func TestIntegrity_MaintenanceWinsOverInTransitShipment(t *testing.T) {
	db := setupTestDB(t)
	seedCatalogs(t, db)
	svc := newTestIntegrityService(db, &auditRecorder{}, fixedReportSource{})

	asset := createAsset(t, db, constants.AssetStatusActive)
	record := &gormModels.MaintenanceRecord{AssetID: asset.ID, Status: constants.MaintenancePending}
	if err := db.Create(record).Error; err != nil {
		t.Fatalf("Failed to create maintenance record: %v", err)
	}
	shipment := &gormModels.Shipment{AssetID: asset.ID, Status: constants.ShipmentInTransit}
	if err := db.Create(shipment).Error; err != nil {
		t.Fatalf("Failed to create shipment: %v", err)
	}

	if _, err := svc.ValidateAndSyncAssetIntegrity(context.Background(), asset.ID); err != nil {
		t.Fatalf("ValidateAndSyncAssetIntegrity failed: %v", err)
	}

	var updated gormModels.Asset
	if err := db.First(&updated, "id = ?", asset.ID).Error; err != nil {
		t.Fatalf("Reload failed: %v", err)
	}
	if updated.Status != constants.AssetStatusMaintenance {
		t.Errorf("Expected maintenance to take precedence, got %s", updated.Status)
	}
}

func TestIntegrity_StaleShippedStatusReverts(t *testing.T) {
	db := setupTestDB(t)
	seedCatalogs(t, db)
	svc := newTestIntegrityService(db, &auditRecorder{}, fixedReportSource{})

	asset := createAsset(t, db, constants.AssetStatusShipped)
	delivered := time.Now()
	shipment := &gormModels.Shipment{
		AssetID:     asset.ID,
		Status:      constants.ShipmentDelivered,
		DeliveredAt: &delivered,
	}
	if err := db.Create(shipment).Error; err != nil {
		t.Fatalf("Failed to create shipment: %v", err)
	}

	result, err := svc.ValidateAndSyncAssetIntegrity(context.Background(), asset.ID)
	if err != nil {
		t.Fatalf("ValidateAndSyncAssetIntegrity failed: %v", err)
	}
	if len(result.Fixes) != 1 {
		t.Fatalf("Expected one fix, got %+v", result.Fixes)
	}

	var updated gormModels.Asset
	if err := db.First(&updated, "id = ?", asset.ID).Error; err != nil {
		t.Fatalf("Reload failed: %v", err)
	}
	if updated.Status != constants.AssetStatusActive {
		t.Errorf("Expected active status after revert, got %s", updated.Status)
	}
}

func TestIntegrity_ConsistentAssetIsUntouched(t *testing.T) {
	db := setupTestDB(t)
	seedCatalogs(t, db)
	svc := newTestIntegrityService(db, &auditRecorder{}, fixedReportSource{})

	asset := createAsset(t, db, constants.AssetStatusActive)

	result, err := svc.ValidateAndSyncAssetIntegrity(context.Background(), asset.ID)
	if err != nil {
		t.Fatalf("ValidateAndSyncAssetIntegrity failed: %v", err)
	}
	if !result.IsValid || len(result.Issues) != 0 || len(result.Fixes) != 0 {
		t.Errorf("Expected a clean result, got %+v", result)
	}
}

func TestIntegrity_SyncMaintenanceStatus(t *testing.T) {
	db := setupTestDB(t)
	seedCatalogs(t, db)
	audit := &auditRecorder{}
	svc := newTestIntegrityService(db, audit, fixedReportSource{})

	asset := createAsset(t, db, constants.AssetStatusActive)
	record := &gormModels.MaintenanceRecord{AssetID: asset.ID, Status: constants.MaintenanceInProgress}
	if err := db.Create(record).Error; err != nil {
		t.Fatalf("Failed to create maintenance record: %v", err)
	}

	if err := svc.SyncAssetMaintenanceStatus(context.Background(), asset.ID); err != nil {
		t.Fatalf("SyncAssetMaintenanceStatus failed: %v", err)
	}

	var updated gormModels.Asset
	if err := db.First(&updated, "id = ?", asset.ID).Error; err != nil {
		t.Fatalf("Reload failed: %v", err)
	}
	if updated.Status != constants.AssetStatusMaintenance {
		t.Errorf("Expected maintenance status, got %s", updated.Status)
	}
	if entries := audit.byAction(constants.AuditActionStatusSync); len(entries) != 1 {
		t.Errorf("Expected 1 status sync audit entry, got %d", len(entries))
	}
}

func TestIntegrity_DeliveredShipmentSyncsLocation(t *testing.T) {
	db := setupTestDB(t)
	seedCatalogs(t, db)
	svc := newTestIntegrityService(db, &auditRecorder{}, fixedReportSource{})

	asset := createAsset(t, db, constants.AssetStatusActive)
	dest := mustLocation(t, db, "PISCO")
	delivered := time.Now()
	shipment := &gormModels.Shipment{
		AssetID:               asset.ID,
		Status:                constants.ShipmentDelivered,
		DestinationLocationID: &dest.ID,
		DeliveredAt:           &delivered,
	}
	if err := db.Create(shipment).Error; err != nil {
		t.Fatalf("Failed to create shipment: %v", err)
	}

	if err := svc.SyncAssetLocationOnShipmentComplete(context.Background(), shipment.ID); err != nil {
		t.Fatalf("SyncAssetLocationOnShipmentComplete failed: %v", err)
	}

	var updated gormModels.Asset
	if err := db.First(&updated, "id = ?", asset.ID).Error; err != nil {
		t.Fatalf("Reload failed: %v", err)
	}
	if updated.LocationID == nil || *updated.LocationID != dest.ID {
		t.Errorf("Expected asset moved to destination, got %v", updated.LocationID)
	}
}

func TestIntegrity_UndeliveredShipmentIsNoOp(t *testing.T) {
	db := setupTestDB(t)
	seedCatalogs(t, db)
	svc := newTestIntegrityService(db, &auditRecorder{}, fixedReportSource{})

	asset := createAsset(t, db, constants.AssetStatusActive)
	origin := *asset.LocationID
	dest := mustLocation(t, db, "PISCO")
	shipment := &gormModels.Shipment{
		AssetID:               asset.ID,
		Status:                constants.ShipmentInTransit,
		DestinationLocationID: &dest.ID,
	}
	if err := db.Create(shipment).Error; err != nil {
		t.Fatalf("Failed to create shipment: %v", err)
	}

	if err := svc.SyncAssetLocationOnShipmentComplete(context.Background(), shipment.ID); err != nil {
		t.Fatalf("Expected no-op, got error: %v", err)
	}

	var updated gormModels.Asset
	if err := db.First(&updated, "id = ?", asset.ID).Error; err != nil {
		t.Fatalf("Reload failed: %v", err)
	}
	if updated.LocationID == nil || *updated.LocationID != origin {
		t.Errorf("Expected location unchanged, got %v", updated.LocationID)
	}
}

func TestIntegrity_SweepFixesAllDriftedAssets(t *testing.T) {
	db := setupTestDB(t)
	seedCatalogs(t, db)
	svc := newTestIntegrityService(db, &auditRecorder{}, fixedReportSource{})

	drifted := createAsset(t, db, constants.AssetStatusActive)
	record := &gormModels.MaintenanceRecord{AssetID: drifted.ID, Status: constants.MaintenancePending}
	if err := db.Create(record).Error; err != nil {
		t.Fatalf("Failed to create maintenance record: %v", err)
	}
	createAsset(t, db, constants.AssetStatusActive)

	summary, err := svc.SyncAllAssetsIntegrity(context.Background())
	if err != nil {
		t.Fatalf("SyncAllAssetsIntegrity failed: %v", err)
	}
	if summary.AssetsChecked != 2 {
		t.Errorf("Expected 2 assets checked, got %d", summary.AssetsChecked)
	}
	if summary.AssetsFixed != 1 {
		t.Errorf("Expected 1 asset fixed, got %d", summary.AssetsFixed)
	}
	if summary.Errors != 0 {
		t.Errorf("Expected no errors, got %d", summary.Errors)
	}
}

func TestIntegrity_CleanupSkipsWhenNoAssets(t *testing.T) {
	db := setupTestDB(t)
	seedCatalogs(t, db)
	svc := newTestIntegrityService(db, &auditRecorder{}, fixedReportSource{})

	// Child rows without any parent assets: a wiped store, not a cleanup
	// target.
	orphan := &gormModels.MaintenanceRecord{AssetID: "gone", Status: constants.MaintenancePending}
	if err := db.Create(orphan).Error; err != nil {
		t.Fatalf("Failed to create orphan: %v", err)
	}

	result, err := svc.CleanupOrphanedData(context.Background())
	if err != nil {
		t.Fatalf("CleanupOrphanedData failed: %v", err)
	}
	if !result.Skipped {
		t.Fatal("Expected cleanup to be skipped")
	}

	var count int64
	if err := db.Model(&gormModels.MaintenanceRecord{}).Count(&count).Error; err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected orphan untouched, got %d rows", count)
	}
}

func TestIntegrity_CleanupDeletesOrphansOnly(t *testing.T) {
	db := setupTestDB(t)
	seedCatalogs(t, db)
	audit := &auditRecorder{}
	svc := newTestIntegrityService(db, audit, fixedReportSource{})

	asset := createAsset(t, db, constants.AssetStatusActive)
	kept := &gormModels.MaintenanceRecord{AssetID: asset.ID, Status: constants.MaintenancePending}
	orphanM := &gormModels.MaintenanceRecord{AssetID: "gone", Status: constants.MaintenancePending}
	orphanS := &gormModels.Shipment{AssetID: "gone", Status: constants.ShipmentPreparing}
	for _, row := range []any{kept, orphanM, orphanS} {
		if err := db.Create(row).Error; err != nil {
			t.Fatalf("Failed to seed row: %v", err)
		}
	}

	result, err := svc.CleanupOrphanedData(context.Background())
	if err != nil {
		t.Fatalf("CleanupOrphanedData failed: %v", err)
	}
	if result.Skipped {
		t.Fatal("Expected cleanup to run")
	}
	if result.MaintenanceDeleted != 1 || result.ShipmentsDeleted != 1 {
		t.Errorf("Expected 1/1 deletions, got %d/%d", result.MaintenanceDeleted, result.ShipmentsDeleted)
	}

	var count int64
	if err := db.Model(&gormModels.MaintenanceRecord{}).Count(&count).Error; err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected the live record to survive, got %d rows", count)
	}

	if entries := audit.byAction(constants.AuditActionOrphanCleanup); len(entries) != 1 {
		t.Errorf("Expected 1 cleanup audit entry, got %d", len(entries))
	}
}

func TestIntegrity_ReportRecommendations(t *testing.T) {
	db := setupTestDB(t)
	seedCatalogs(t, db)

	svc := newTestIntegrityService(db, &auditRecorder{}, fixedReportSource{
		withoutLocation: 3,
		orphanShip:      1,
	})
	report, err := svc.GenerateIntegrityReport(context.Background())
	if err != nil {
		t.Fatalf("GenerateIntegrityReport failed: %v", err)
	}
	if report.AssetsWithoutLocation != 3 || report.OrphanedShipments != 1 {
		t.Errorf("Unexpected counts: %+v", report)
	}
	if len(report.Recommendations) != 2 {
		t.Errorf("Expected one recommendation per nonzero count, got %v", report.Recommendations)
	}

	healthy := newTestIntegrityService(db, &auditRecorder{}, fixedReportSource{})
	report, err = healthy.GenerateIntegrityReport(context.Background())
	if err != nil {
		t.Fatalf("GenerateIntegrityReport failed: %v", err)
	}
	if len(report.Recommendations) != 1 || report.Recommendations[0] != "no integrity issues detected" {
		t.Errorf("Expected the healthy message, got %v", report.Recommendations)
	}
}
