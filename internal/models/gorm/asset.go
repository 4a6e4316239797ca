package gorm

import (
	"time"

	"github.com/google/uuid"
	gormlib "gorm.io/gorm"

	"github.com/FabritcioPS15/SistemadeInventario-GrupoSanCristobal-sub000/internal/constants"
)

// Asset is the persisted inventory record. Category-specific columns are
// sparse: only the block matching the asset's type is ever populated.
type Asset struct {
	ID           string                `gorm:"column:id;primaryKey;type:uuid"`
	AssetTypeID  *string               `gorm:"column:asset_type_id;type:uuid;index"`
	LocationID   *string               `gorm:"column:location_id;type:uuid;index"`
	Brand        *string               `gorm:"column:brand"`
	Model        *string               `gorm:"column:model"`
	SerialNumber *string               `gorm:"column:serial_number"`
	Status       constants.AssetStatus `gorm:"column:status;type:varchar(20);default:active"`
	Quantity     float64               `gorm:"column:quantity;default:1"`
	AcquiredAt   *time.Time            `gorm:"column:acquired_at"`
	Notes        *string               `gorm:"column:notes"`

	// Computo block
	Processor       *string `gorm:"column:processor"`
	RAM             *string `gorm:"column:ram"`
	Storage         *string `gorm:"column:storage"`
	OperatingSystem *string `gorm:"column:operating_system"`
	BiosMode        *string `gorm:"column:bios_mode"`
	Area            *string `gorm:"column:area"`
	AssetTag        *string `gorm:"column:asset_tag"`

	// Camaras block
	IPAddress      *string `gorm:"column:ip_address"`
	AccessUser     *string `gorm:"column:access_user"`
	AccessPassword *string `gorm:"column:access_password"`

	// Telefonia block
	IMEI    *string `gorm:"column:imei"`
	Carrier *string `gorm:"column:carrier"`
	Plan    *string `gorm:"column:plan"`

	// Impresion block
	PrintTechnology *string `gorm:"column:print_technology"`
	ConnectionType  *string `gorm:"column:connection_type"`

	// Audiovisual block
	ScreenSize *string `gorm:"column:screen_size"`
	Resolution *string `gorm:"column:resolution"`

	// Idempotency fingerprint: a retried commit re-inserting the same row
	// of the same import session lands on this unique index and is dropped.
	ImportBatchID  *string `gorm:"column:import_batch_id;type:uuid;uniqueIndex:idx_assets_import_fingerprint"`
	RowFingerprint *string `gorm:"column:row_fingerprint;uniqueIndex:idx_assets_import_fingerprint"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`

	// Relationships
	AssetType *AssetType `gorm:"foreignKey:AssetTypeID"`
	Location  *Location  `gorm:"foreignKey:LocationID"`
}

// TableName specifies the table name for GORM
func (Asset) TableName() string {
	return "assets"
}

func (a *Asset) BeforeCreate(tx *gormlib.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
