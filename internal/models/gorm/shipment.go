package gorm

import (
	"time"

	"github.com/google/uuid"
	gormlib "gorm.io/gorm"

	"github.com/FabritcioPS15/SistemadeInventario-GrupoSanCristobal-sub000/internal/constants"
)

// Shipment moves an asset between locations. Delivery writes the asset's
// location through to the destination.
type Shipment struct {
	ID                    string                   `gorm:"column:id;primaryKey;type:uuid"`
	AssetID               string                   `gorm:"column:asset_id;type:uuid;index;not null"`
	Status                constants.ShipmentStatus `gorm:"column:status;type:varchar(20);default:preparing"`
	OriginLocationID      *string                  `gorm:"column:origin_location_id;type:uuid"`
	DestinationLocationID *string                  `gorm:"column:destination_location_id;type:uuid"`
	ShippedAt             *time.Time               `gorm:"column:shipped_at"`
	DeliveredAt           *time.Time               `gorm:"column:delivered_at"`
	CreatedAt             time.Time                `gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for GORM
func (Shipment) TableName() string {
	return "shipments"
}

func (s *Shipment) BeforeCreate(tx *gormlib.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
