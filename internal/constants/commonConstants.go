package constants

type (
	APIStatus   string
	CachePrefix string
	AuditAction string
)

const (
	APIStatusOk    APIStatus = "ok"
	APIStatusError APIStatus = "error"

	CachePrefixAssetTypes CachePrefix = "CATALOG_ASSET_TYPES"
	CachePrefixLocations  CachePrefix = "CATALOG_LOCATIONS"

	AuditActionStatusSync    AuditAction = "asset_status_sync"
	AuditActionLocationSync  AuditAction = "asset_location_sync"
	AuditActionIntegrityFix  AuditAction = "integrity_auto_fix"
	AuditActionOrphanCleanup AuditAction = "orphan_cleanup"
	AuditActionImportCommit  AuditAction = "import_commit"
)

// DefaultImportBatchSize is the number of records inserted per commit batch.
// Tunable via IMPORT_BATCH_SIZE; not a correctness requirement.
const DefaultImportBatchSize = 50

// MaxPreviewDiagnostics caps the row diagnostics surfaced per import so a
// bad workbook does not flood the operator.
const MaxPreviewDiagnostics = 5
