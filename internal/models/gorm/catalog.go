package gorm

import (
	"time"

	"github.com/google/uuid"
	gormlib "gorm.io/gorm"

	"github.com/FabritcioPS15/SistemadeInventario-GrupoSanCristobal-sub000/internal/constants"
)

// AssetType is one canonical catalog entry free-text labels are classified
// onto. The "Otros" row is created lazily by the classifier.
type AssetType struct {
	ID        string                  `gorm:"column:id;primaryKey;type:uuid"`
	Name      string                  `gorm:"column:name;uniqueIndex;not null"`
	Category  constants.AssetCategory `gorm:"column:category;type:varchar(30);not null"`
	CreatedAt time.Time               `gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for GORM
func (AssetType) TableName() string {
	return "asset_types"
}

func (t *AssetType) BeforeCreate(tx *gormlib.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// Location is a canonical site. Read-only to the import/reconciliation core.
type Location struct {
	ID        string    `gorm:"column:id;primaryKey;type:uuid"`
	Name      string    `gorm:"column:name;uniqueIndex;not null"`
	Region    *string   `gorm:"column:region"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for GORM
func (Location) TableName() string {
	return "locations"
}

func (l *Location) BeforeCreate(tx *gormlib.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
