package dtos

import (
	"time"

	"github.com/FabritcioPS15/SistemadeInventario-GrupoSanCristobal-sub000/internal/constants"
)

// Row is one spreadsheet row keyed by normalized (uppercased, trimmed)
// header name. Values keep whatever the parser produced: strings, numbers
// or date serials.
type Row map[string]any

// RawSheet is one workbook tab. Ephemeral: parsed on upload, discarded
// after commit.
type RawSheet struct {
	Name string `json:"name"`
	Rows []Row  `json:"rows"`
}

// SheetMapping is the operator-adjustable decision for one sheet. Keyed by
// sheet name, unique per import session.
type SheetMapping struct {
	SheetName    string  `json:"sheet_name"`
	LocationID   *string `json:"location_id"`
	LocationName *string `json:"location_name"`
	Ignored      bool    `json:"ignored"`
}

// ExtensionFields is the category-specific block of a mapped record. The
// concrete variant is selected by the classified canonical type name, so a
// record can never carry fields from a category it does not belong to.
type ExtensionFields interface {
	Category() constants.AssetCategory
}

type ComputoFields struct {
	Processor       *string `json:"processor,omitempty"`
	RAM             *string `json:"ram,omitempty"`
	Storage         *string `json:"storage,omitempty"`
	OperatingSystem *string `json:"operating_system,omitempty"`
	BiosMode        *string `json:"bios_mode,omitempty"`
	Area            *string `json:"area,omitempty"`
	AssetTag        *string `json:"asset_tag,omitempty"`
}

func (ComputoFields) Category() constants.AssetCategory { return constants.CategoryComputo }

type CamarasFields struct {
	IPAddress      *string `json:"ip_address,omitempty"`
	AccessUser     *string `json:"access_user,omitempty"`
	AccessPassword *string `json:"access_password,omitempty"`
}

func (CamarasFields) Category() constants.AssetCategory { return constants.CategoryCamaras }

type TelefoniaFields struct {
	IMEI    *string `json:"imei,omitempty"`
	Carrier *string `json:"carrier,omitempty"`
	Plan    *string `json:"plan,omitempty"`
}

func (TelefoniaFields) Category() constants.AssetCategory { return constants.CategoryTelefonia }

type ImpresionFields struct {
	PrintTechnology *string `json:"print_technology,omitempty"`
	ConnectionType  *string `json:"connection_type,omitempty"`
}

func (ImpresionFields) Category() constants.AssetCategory { return constants.CategoryImpresion }

type AudiovisualFields struct {
	ScreenSize *string `json:"screen_size,omitempty"`
	Resolution *string `json:"resolution,omitempty"`
}

func (AudiovisualFields) Category() constants.AssetCategory { return constants.CategoryAudiovisual }

// MappedRecord is the canonical insertable shape produced by the mapper.
// A record is eligible for commit only when both AssetTypeID and LocationID
// are resolved.
type MappedRecord struct {
	SheetName    string                `json:"sheet_name"`
	RowIndex     int                   `json:"row_index"`
	AssetTypeID  *string               `json:"asset_type_id"`
	TypeName     string                `json:"type_name"`
	LocationID   *string               `json:"location_id"`
	Brand        *string               `json:"brand,omitempty"`
	Model        *string               `json:"model,omitempty"`
	SerialNumber *string               `json:"serial_number,omitempty"`
	Status       constants.AssetStatus `json:"status"`
	Quantity     float64               `json:"quantity"`
	AcquiredAt   *time.Time            `json:"acquired_at,omitempty"`
	Notes        *string               `json:"notes,omitempty"`
	Ext          ExtensionFields       `json:"ext,omitempty"`
}

// Valid reports commit eligibility.
func (m MappedRecord) Valid() bool {
	return m.AssetTypeID != nil && m.LocationID != nil
}

// PreviewResult is a pure, re-computable summary of what a commit would do.
// Ignored sheets are excluded from every count.
type PreviewResult struct {
	TotalSheets    int            `json:"total_sheets"`
	TotalRecords   int            `json:"total_records"`
	ValidRecords   int            `json:"valid_records"`
	InvalidRecords int            `json:"invalid_records"`
	Diagnostics    []string       `json:"diagnostics,omitempty"`
	Records        []MappedRecord `json:"records"`
}

// CommitResult reports the terminal state of a commit. When Err is set,
// Unconfirmed counts the records that could not be confirmed as committed;
// earlier batches may still have been written (no cross-batch rollback).
type CommitResult struct {
	SessionID   string `json:"session_id"`
	Committed   int    `json:"committed"`
	Unconfirmed int    `json:"unconfirmed"`
	Retried     bool   `json:"retried,omitempty"`
	Err         string `json:"error,omitempty"`
}
