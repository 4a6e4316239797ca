package constants

type (
	AssetStatus       string
	AssetCategory     string
	MaintenanceStatus string
	ShipmentStatus    string
)

const (
	AssetStatusActive      AssetStatus = "active"
	AssetStatusInactive    AssetStatus = "inactive"
	AssetStatusMaintenance AssetStatus = "maintenance"
	AssetStatusExtracted   AssetStatus = "extracted"
	AssetStatusShipped     AssetStatus = "shipped"

	CategoryComputo     AssetCategory = "computo"
	CategoryAudiovisual AssetCategory = "audiovisual"
	CategoryCamaras     AssetCategory = "camaras"
	CategoryTelefonia   AssetCategory = "telefonia"
	CategoryImpresion   AssetCategory = "impresion"
	CategoryOtros       AssetCategory = "otros"

	MaintenancePending    MaintenanceStatus = "pending"
	MaintenanceInProgress MaintenanceStatus = "in_progress"
	MaintenanceCompleted  MaintenanceStatus = "completed"

	ShipmentPreparing ShipmentStatus = "preparing"
	ShipmentInTransit ShipmentStatus = "in_transit"
	ShipmentDelivered ShipmentStatus = "delivered"
	ShipmentCancelled ShipmentStatus = "cancelled"
)

// FallbackTypeName is the catch-all catalog entry. It is lazily created the
// first time the classifier needs it and duplicate creation races converge
// to the existing row.
const FallbackTypeName = "Otros"

// IsActiveMaintenance reports whether a maintenance status should force the
// owning asset into maintenance.
func IsActiveMaintenance(s MaintenanceStatus) bool {
	return s == MaintenancePending || s == MaintenanceInProgress
}
