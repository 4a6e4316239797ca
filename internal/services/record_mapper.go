package services

import (
	"strings"

	"github.com/FabritcioPS15/SistemadeInventario-GrupoSanCristobal-sub000/internal/common"
	"github.com/FabritcioPS15/SistemadeInventario-GrupoSanCristobal-sub000/internal/constants"
	"github.com/FabritcioPS15/SistemadeInventario-GrupoSanCristobal-sub000/internal/models/dtos"
	gormModels "github.com/FabritcioPS15/SistemadeInventario-GrupoSanCristobal-sub000/internal/models/gorm"
)

// Alternate header spellings per logical field. Field workbooks come from
// different sites and years; the first non-empty spelling wins.
var (
	typeLabelHeaders = []string{"TIPO", "TIPO DE EQUIPO", "TIPO DE ACTIVO", "EQUIPO", "DESCRIPCION"}
	brandHeaders     = []string{"MARCA", "BRAND"}
	modelHeaders     = []string{"MODELO", "MODEL"}
	serialHeaders    = []string{"SERIE", "NUMERO DE SERIE", "N° SERIE", "NRO SERIE", "SERIAL", "S/N"}
	conditionHeaders = []string{"ESTADO", "CONDICION", "CONDICIÓN", "SITUACION"}
	quantityHeaders  = []string{"CANTIDAD", "CANT", "QTY"}
	acquiredHeaders  = []string{"FECHA DE ADQUISICION", "FECHA DE ADQUISICIÓN", "FECHA DE COMPRA", "FECHA"}
	notesHeaders     = []string{"OBSERVACIONES", "OBSERVACION", "NOTAS", "COMENTARIOS"}

	processorHeaders  = []string{"PROCESADOR", "CPU"}
	ramHeaders        = []string{"RAM", "MEMORIA RAM", "MEMORIA"}
	storageHeaders    = []string{"ALMACENAMIENTO", "DISCO DURO", "DISCO", "HDD", "SSD"}
	osHeaders         = []string{"SISTEMA OPERATIVO", "SO"}
	biosHeaders       = []string{"MODO BIOS", "BIOS", "UEFI"}
	areaHeaders       = []string{"AREA", "ÁREA", "OFICINA"}
	assetTagHeaders   = []string{"CODIGO PATRIMONIAL", "CODIGO", "CÓDIGO", "ETIQUETA"}
	ipHeaders         = []string{"DIRECCION IP", "DIRECCIÓN IP", "IP"}
	accessUserHeaders = []string{"USUARIO", "USER"}
	accessPassHeaders = []string{"CONTRASEÑA", "CLAVE", "PASSWORD"}
	imeiHeaders       = []string{"IMEI"}
	carrierHeaders    = []string{"OPERADOR", "OPERADORA", "COMPAÑIA"}
	planHeaders       = []string{"PLAN"}
	printTechHeaders  = []string{"TECNOLOGIA", "TECNOLOGÍA", "TIPO DE IMPRESION"}
	connectionHeaders = []string{"CONEXION", "CONEXIÓN", "CONECTIVIDAD"}
	screenSizeHeaders = []string{"TAMAÑO", "TAMANO", "PULGADAS"}
	resolutionHeaders = []string{"RESOLUCION", "RESOLUCIÓN"}
)

// Condition vocabularies for status derivation. The maintenance vocabulary
// is evaluated first and wins when both would match.
var (
	maintenanceWords = []string{
		"DAÑADO", "DAÑADA", "MALOGRADO", "MALOGRADA", "INOPERATIVO",
		"INOPERATIVA", "AVERIADO", "AVERIADA", "ROTO", "ROTA", "MAL ESTADO", "FALLA",
	}
	decommissionWords = []string{
		"BAJA", "DESCARTADO", "DESCARTE", "EXTRAIDO", "EXTRAÍDO",
		"RETIRADO", "OBSOLETO", "DESUSO",
	}
)

// TypeLabel extracts the raw asset-type label from a row, empty when the
// row has none.
func TypeLabel(row dtos.Row) string {
	return common.Deref(firstField(row, typeLabelHeaders...))
}

// MapRow projects one normalized row into the canonical insertable shape.
// assetType may be nil (unclassifiable row), locationID may be nil
// (unresolved sheet); the record is then counted invalid, never dropped.
func MapRow(row dtos.Row, assetType *gormModels.AssetType, locationID *string, sheetName string, rowIndex int) dtos.MappedRecord {
	record := dtos.MappedRecord{
		SheetName:    sheetName,
		RowIndex:     rowIndex,
		LocationID:   locationID,
		Brand:        firstField(row, brandHeaders...),
		Model:        firstField(row, modelHeaders...),
		SerialNumber: firstField(row, serialHeaders...),
		Status:       deriveStatus(firstField(row, conditionHeaders...)),
		Quantity:     common.NormalizeQuantity(firstRaw(row, quantityHeaders...), 1),
		AcquiredAt:   common.NormalizeDate(firstRaw(row, acquiredHeaders...)),
		Notes:        firstField(row, notesHeaders...),
	}

	if assetType == nil {
		return record
	}
	record.AssetTypeID = &assetType.ID
	record.TypeName = assetType.Name
	record.Ext = extensionFor(assetType.Category, row)
	return record
}

// deriveStatus runs the substring-membership test over the two fixed
// vocabularies, maintenance first.
func deriveStatus(condition *string) constants.AssetStatus {
	if condition == nil {
		return constants.AssetStatusActive
	}
	norm := common.NormalizeHeader(*condition)
	for _, word := range maintenanceWords {
		if strings.Contains(norm, word) {
			return constants.AssetStatusMaintenance
		}
	}
	for _, word := range decommissionWords {
		if strings.Contains(norm, word) {
			return constants.AssetStatusInactive
		}
	}
	return constants.AssetStatusActive
}

// extensionFor selects the category-specific block. Only the variant
// matching the classified category is ever populated.
func extensionFor(category constants.AssetCategory, row dtos.Row) dtos.ExtensionFields {
	switch category {
	case constants.CategoryComputo:
		return dtos.ComputoFields{
			Processor:       firstField(row, processorHeaders...),
			RAM:             firstField(row, ramHeaders...),
			Storage:         firstField(row, storageHeaders...),
			OperatingSystem: firstField(row, osHeaders...),
			BiosMode:        firstField(row, biosHeaders...),
			Area:            firstField(row, areaHeaders...),
			AssetTag:        firstField(row, assetTagHeaders...),
		}
	case constants.CategoryCamaras:
		return dtos.CamarasFields{
			IPAddress:      firstField(row, ipHeaders...),
			AccessUser:     firstField(row, accessUserHeaders...),
			AccessPassword: firstField(row, accessPassHeaders...),
		}
	case constants.CategoryTelefonia:
		return dtos.TelefoniaFields{
			IMEI:    firstField(row, imeiHeaders...),
			Carrier: firstField(row, carrierHeaders...),
			Plan:    firstField(row, planHeaders...),
		}
	case constants.CategoryImpresion:
		return dtos.ImpresionFields{
			PrintTechnology: firstField(row, printTechHeaders...),
			ConnectionType:  firstField(row, connectionHeaders...),
		}
	case constants.CategoryAudiovisual:
		return dtos.AudiovisualFields{
			ScreenSize: firstField(row, screenSizeHeaders...),
			Resolution: firstField(row, resolutionHeaders...),
		}
	default:
		return nil
	}
}

// firstRaw returns the first present raw value among the alternate
// spellings, for normalizers that need the untouched cell (serials, numbers).
func firstRaw(row dtos.Row, headers ...string) any {
	for _, h := range headers {
		if raw, ok := row[h]; ok {
			return raw
		}
	}
	return nil
}

// firstField returns the first non-empty normalized value among the
// alternate spellings of one logical field.
func firstField(row dtos.Row, headers ...string) *string {
	for _, h := range headers {
		if raw, ok := row[h]; ok {
			if v := common.NormalizeText(raw); v != nil {
				return v
			}
		}
	}
	return nil
}
