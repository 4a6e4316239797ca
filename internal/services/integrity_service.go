package services

import (
	"context"
	"fmt"
	"time"

	"github.com/FabritcioPS15/SistemadeInventario-GrupoSanCristobal-sub000/internal/constants"
	"github.com/FabritcioPS15/SistemadeInventario-GrupoSanCristobal-sub000/internal/db/repositories"
	"github.com/FabritcioPS15/SistemadeInventario-GrupoSanCristobal-sub000/internal/logging"
	"github.com/FabritcioPS15/SistemadeInventario-GrupoSanCristobal-sub000/internal/metrics"
	"github.com/FabritcioPS15/SistemadeInventario-GrupoSanCristobal-sub000/internal/models/dtos"
)

const (
	issueStatusShouldBeMaintenance = "status_should_be_maintenance"
	issueStatusShouldBeShipped     = "status_should_be_shipped"
	issueStaleDerivedStatus        = "stale_derived_status"
	issueMissingAssetType          = "missing_asset_type"
	issueMissingLocation           = "missing_location"
)

// IntegrityReportSource answers the aggregate counts behind the system-wide
// report. Satisfied by repositories.IntegrityRepository in production.
type IntegrityReportSource interface {
	CountAssetsWithoutLocation(ctx context.Context) (int, error)
	CountInconsistentStatus(ctx context.Context) (int, error)
	CountOrphanedMaintenance(ctx context.Context) (int, error)
	CountOrphanedShipments(ctx context.Context) (int, error)
}

// IntegrityService reconciles derived asset state (status, location) against
// its sources of truth (maintenance records, shipments) and cleans up rows
// that lost their parent asset.
type IntegrityService struct {
	assetRepo       *repositories.AssetRepository
	maintenanceRepo *repositories.MaintenanceRepository
	shipmentRepo    *repositories.ShipmentRepository
	reportSource    IntegrityReportSource
	audit           *AuditService
	metricsReg      *metrics.MetricsRegistry
}

func NewIntegrityService(
	assetRepo *repositories.AssetRepository,
	maintenanceRepo *repositories.MaintenanceRepository,
	shipmentRepo *repositories.ShipmentRepository,
	reportSource IntegrityReportSource,
	audit *AuditService,
	metricsReg *metrics.MetricsRegistry,
) *IntegrityService {
	return &IntegrityService{
		assetRepo:       assetRepo,
		maintenanceRepo: maintenanceRepo,
		shipmentRepo:    shipmentRepo,
		reportSource:    reportSource,
		audit:           audit,
		metricsReg:      metricsReg,
	}
}

// SyncAssetMaintenanceStatus re-derives one asset's status from its
// maintenance records: any pending or in-progress record forces maintenance;
// once none remain, a maintenance status reverts to active. Other statuses
// are left alone.
func (s *IntegrityService) SyncAssetMaintenanceStatus(ctx context.Context, assetID string) error {
	asset, err := s.assetRepo.GetByID(ctx, assetID)
	if err != nil {
		return err
	}
	if asset == nil {
		return fmt.Errorf("asset %s not found", assetID)
	}

	active, err := s.hasActiveMaintenance(ctx, assetID)
	if err != nil {
		return err
	}

	var target constants.AssetStatus
	switch {
	case active && asset.Status != constants.AssetStatusMaintenance:
		target = constants.AssetStatusMaintenance
	case !active && asset.Status == constants.AssetStatusMaintenance:
		target = constants.AssetStatusActive
	default:
		return nil
	}

	if err := s.assetRepo.UpdateStatus(ctx, assetID, target); err != nil {
		return err
	}
	s.audit.Record(ctx, constants.AuditActionStatusSync, "asset", assetID, map[string]any{
		"from": asset.Status,
		"to":   target,
	})
	return nil
}

// SyncAssetLocationOnShipmentComplete writes a delivered shipment's
// destination through to the asset. Shipments in any other state (or without
// a destination) are a no-op, not an error.
func (s *IntegrityService) SyncAssetLocationOnShipmentComplete(ctx context.Context, shipmentID string) error {
	shipment, err := s.shipmentRepo.GetByID(ctx, shipmentID)
	if err != nil {
		return err
	}
	if shipment == nil {
		return fmt.Errorf("shipment %s not found", shipmentID)
	}
	if shipment.Status != constants.ShipmentDelivered || shipment.DestinationLocationID == nil {
		return nil
	}

	if err := s.assetRepo.UpdateLocation(ctx, shipment.AssetID, *shipment.DestinationLocationID); err != nil {
		return err
	}
	s.audit.Record(ctx, constants.AuditActionLocationSync, "asset", shipment.AssetID, map[string]any{
		"shipment_id": shipmentID,
		"location_id": *shipment.DestinationLocationID,
	})
	return nil
}

// ValidateAndSyncAssetIntegrity checks one asset against the reconciliation
// rules. Status drift against maintenance records and shipments is fixed in
// place (open maintenance wins over an in-transit shipment); a missing type
// or location is only reported, since the right value cannot be derived.
func (s *IntegrityService) ValidateAndSyncAssetIntegrity(ctx context.Context, assetID string) (*dtos.IntegrityCheckResult, error) {
	asset, err := s.assetRepo.GetByID(ctx, assetID)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, fmt.Errorf("asset %s not found", assetID)
	}

	result := &dtos.IntegrityCheckResult{AssetID: assetID, IsValid: true}

	activeMaint, err := s.hasActiveMaintenance(ctx, assetID)
	if err != nil {
		return nil, err
	}
	inTransit, err := s.hasInTransitShipment(ctx, assetID)
	if err != nil {
		return nil, err
	}

	switch {
	case activeMaint && asset.Status != constants.AssetStatusMaintenance:
		s.recordFix(ctx, result, dtos.IntegrityIssue{
			AssetID:     assetID,
			Kind:        issueStatusShouldBeMaintenance,
			Description: fmt.Sprintf("asset has open maintenance but status is %q", asset.Status),
		}, constants.AssetStatusMaintenance)
	case !activeMaint && inTransit && asset.Status != constants.AssetStatusShipped:
		s.recordFix(ctx, result, dtos.IntegrityIssue{
			AssetID:     assetID,
			Kind:        issueStatusShouldBeShipped,
			Description: fmt.Sprintf("asset has an in-transit shipment but status is %q", asset.Status),
		}, constants.AssetStatusShipped)
	case !activeMaint && !inTransit &&
		(asset.Status == constants.AssetStatusMaintenance || asset.Status == constants.AssetStatusShipped):
		s.recordFix(ctx, result, dtos.IntegrityIssue{
			AssetID:     assetID,
			Kind:        issueStaleDerivedStatus,
			Description: fmt.Sprintf("asset status %q has no open maintenance record or in-transit shipment behind it", asset.Status),
		}, constants.AssetStatusActive)
	}

	if asset.AssetTypeID == nil {
		s.recordIssue(result, dtos.IntegrityIssue{
			AssetID:     assetID,
			Kind:        issueMissingAssetType,
			Description: "asset has no type assigned",
		})
	}
	if asset.LocationID == nil {
		s.recordIssue(result, dtos.IntegrityIssue{
			AssetID:     assetID,
			Kind:        issueMissingLocation,
			Description: "asset has no location assigned",
		})
	}

	return result, nil
}

// SyncAllAssetsIntegrity sweeps every asset. One failing asset is logged and
// counted, never aborts the sweep.
func (s *IntegrityService) SyncAllAssetsIntegrity(ctx context.Context) (*dtos.SweepSummary, error) {
	start := time.Now()

	ids, err := s.assetRepo.ListIDs(ctx)
	if err != nil {
		return nil, err
	}

	summary := &dtos.SweepSummary{}
	for _, id := range ids {
		result, err := s.ValidateAndSyncAssetIntegrity(ctx, id)
		if err != nil {
			summary.Errors++
			logging.Warn("integrity check failed for asset",
				"asset_id", id,
				"error", err.Error(),
			)
			continue
		}
		summary.AssetsChecked++
		summary.IssuesFound += len(result.Issues) + len(result.Fixes)
		if len(result.Fixes) > 0 {
			summary.AssetsFixed++
		}
	}

	if s.metricsReg != nil {
		s.metricsReg.IntegritySweepSeconds.Observe(time.Since(start).Seconds())
	}
	logging.Info("integrity sweep finished",
		"checked", summary.AssetsChecked,
		"fixed", summary.AssetsFixed,
		"issues", summary.IssuesFound,
		"errors", summary.Errors,
	)
	return summary, nil
}

// GenerateIntegrityReport aggregates the system-wide counts without touching
// any row.
func (s *IntegrityService) GenerateIntegrityReport(ctx context.Context) (*dtos.IntegrityReport, error) {
	report := &dtos.IntegrityReport{}
	var err error

	if report.AssetsWithoutLocation, err = s.reportSource.CountAssetsWithoutLocation(ctx); err != nil {
		return nil, err
	}
	if report.InconsistentStatus, err = s.reportSource.CountInconsistentStatus(ctx); err != nil {
		return nil, err
	}
	if report.OrphanedMaintenance, err = s.reportSource.CountOrphanedMaintenance(ctx); err != nil {
		return nil, err
	}
	if report.OrphanedShipments, err = s.reportSource.CountOrphanedShipments(ctx); err != nil {
		return nil, err
	}

	if report.AssetsWithoutLocation > 0 {
		report.Recommendations = append(report.Recommendations,
			fmt.Sprintf("%d assets have no location; assign one from the catalog", report.AssetsWithoutLocation))
	}
	if report.InconsistentStatus > 0 {
		report.Recommendations = append(report.Recommendations,
			fmt.Sprintf("%d assets have a status out of sync with their maintenance records; run an integrity sweep", report.InconsistentStatus))
	}
	if report.OrphanedMaintenance > 0 {
		report.Recommendations = append(report.Recommendations,
			fmt.Sprintf("%d maintenance records reference missing assets; run orphan cleanup", report.OrphanedMaintenance))
	}
	if report.OrphanedShipments > 0 {
		report.Recommendations = append(report.Recommendations,
			fmt.Sprintf("%d shipments reference missing assets; run orphan cleanup", report.OrphanedShipments))
	}
	if len(report.Recommendations) == 0 {
		report.Recommendations = []string{"no integrity issues detected"}
	}

	return report, nil
}

// CleanupOrphanedData deletes maintenance records and shipments whose asset
// is gone. Refused outright when the asset table is empty: with zero assets
// every child row looks orphaned, and that state is far more likely a wiped
// or mis-pointed database than a legitimate cleanup target.
func (s *IntegrityService) CleanupOrphanedData(ctx context.Context) (*dtos.CleanupResult, error) {
	count, err := s.assetRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		logging.Warn("orphan cleanup skipped: asset table is empty")
		return &dtos.CleanupResult{Skipped: true}, nil
	}

	maintenanceDeleted, err := s.maintenanceRepo.DeleteOrphaned(ctx)
	if err != nil {
		return nil, err
	}
	shipmentsDeleted, err := s.shipmentRepo.DeleteOrphaned(ctx)
	if err != nil {
		return nil, err
	}

	if maintenanceDeleted > 0 || shipmentsDeleted > 0 {
		s.audit.Record(ctx, constants.AuditActionOrphanCleanup, "system", "orphan_cleanup", map[string]any{
			"maintenance_deleted": maintenanceDeleted,
			"shipments_deleted":   shipmentsDeleted,
		})
	}
	if s.metricsReg != nil {
		s.metricsReg.OrphansDeletedTotal.WithLabelValues("maintenance_records").Add(float64(maintenanceDeleted))
		s.metricsReg.OrphansDeletedTotal.WithLabelValues("shipments").Add(float64(shipmentsDeleted))
	}

	return &dtos.CleanupResult{
		MaintenanceDeleted: maintenanceDeleted,
		ShipmentsDeleted:   shipmentsDeleted,
	}, nil
}

func (s *IntegrityService) hasActiveMaintenance(ctx context.Context, assetID string) (bool, error) {
	records, err := s.maintenanceRepo.ListByAsset(ctx, assetID)
	if err != nil {
		return false, err
	}
	for _, record := range records {
		if constants.IsActiveMaintenance(record.Status) {
			return true, nil
		}
	}
	return false, nil
}

func (s *IntegrityService) hasInTransitShipment(ctx context.Context, assetID string) (bool, error) {
	shipments, err := s.shipmentRepo.ListByAsset(ctx, assetID)
	if err != nil {
		return false, err
	}
	for _, shipment := range shipments {
		if shipment.Status == constants.ShipmentInTransit {
			return true, nil
		}
	}
	return false, nil
}

func (s *IntegrityService) recordIssue(result *dtos.IntegrityCheckResult, issue dtos.IntegrityIssue) {
	result.IsValid = false
	result.Issues = append(result.Issues, issue)
	if s.metricsReg != nil {
		s.metricsReg.IntegrityIssuesTotal.WithLabelValues(issue.Kind).Inc()
	}
}

func (s *IntegrityService) recordFix(ctx context.Context, result *dtos.IntegrityCheckResult, issue dtos.IntegrityIssue, target constants.AssetStatus) {
	if err := s.assetRepo.UpdateStatus(ctx, issue.AssetID, target); err != nil {
		issue.Description += fmt.Sprintf(" (auto-fix failed: %v)", err)
		s.recordIssue(result, issue)
		return
	}

	issue.AutoFixed = true
	result.IsValid = false
	result.Fixes = append(result.Fixes, issue)
	s.audit.Record(ctx, constants.AuditActionIntegrityFix, "asset", issue.AssetID, map[string]any{
		"kind": issue.Kind,
		"to":   target,
	})
	if s.metricsReg != nil {
		s.metricsReg.IntegrityIssuesTotal.WithLabelValues(issue.Kind).Inc()
		s.metricsReg.IntegrityFixesTotal.Inc()
	}
}
