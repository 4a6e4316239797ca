package dtos

// IntegrityIssue is one detected inconsistency. Ephemeral: surfaced in the
// check result and mirrored into the audit log, never persisted as a row.
type IntegrityIssue struct {
	AssetID     string `json:"asset_id"`
	Kind        string `json:"kind"`
	Description string `json:"description"`
	AutoFixed   bool   `json:"auto_fixed"`
}

// IntegrityCheckResult is the outcome of validating a single asset.
type IntegrityCheckResult struct {
	AssetID string           `json:"asset_id"`
	IsValid bool             `json:"is_valid"`
	Issues  []IntegrityIssue `json:"issues"`
	Fixes   []IntegrityIssue `json:"fixes"`
}

// SweepSummary accumulates a full-table integrity pass.
type SweepSummary struct {
	AssetsChecked int `json:"assets_checked"`
	AssetsFixed   int `json:"assets_fixed"`
	IssuesFound   int `json:"issues_found"`
	Errors        int `json:"errors"`
}

// IntegrityReport is the read-only system-wide aggregate.
type IntegrityReport struct {
	AssetsWithoutLocation   int      `json:"assets_without_location"`
	InconsistentStatus      int      `json:"inconsistent_status"`
	OrphanedMaintenance     int      `json:"orphaned_maintenance"`
	OrphanedShipments       int      `json:"orphaned_shipments"`
	Recommendations         []string `json:"recommendations"`
}

// CleanupResult reports an orphan cleanup pass. Skipped is set when the
// asset table was empty and the deletion was refused.
type CleanupResult struct {
	MaintenanceDeleted int64 `json:"maintenance_deleted"`
	ShipmentsDeleted   int64 `json:"shipments_deleted"`
	Skipped            bool  `json:"skipped"`
}
