package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/FabritcioPS15/SistemadeInventario-GrupoSanCristobal-sub000/internal/common"
	"github.com/FabritcioPS15/SistemadeInventario-GrupoSanCristobal-sub000/internal/constants"
	"github.com/FabritcioPS15/SistemadeInventario-GrupoSanCristobal-sub000/internal/db/repositories"
	"github.com/FabritcioPS15/SistemadeInventario-GrupoSanCristobal-sub000/internal/logging"
	"github.com/FabritcioPS15/SistemadeInventario-GrupoSanCristobal-sub000/internal/metrics"
	"github.com/FabritcioPS15/SistemadeInventario-GrupoSanCristobal-sub000/internal/models/dtos"
	gormModels "github.com/FabritcioPS15/SistemadeInventario-GrupoSanCristobal-sub000/internal/models/gorm"
)

// SessionState tracks one import session through its lifecycle.
type SessionState string

const (
	SessionIdle       SessionState = "idle"
	SessionFileLoaded SessionState = "file_loaded"
	SessionPreviewing SessionState = "previewing"
	SessionCommitting SessionState = "committing"
	SessionCommitted  SessionState = "committed"
	SessionFailed     SessionState = "failed"
)

var (
	ErrSessionNotFound = errors.New("import session not found")
	ErrSessionState    = errors.New("operation not allowed in current session state")
	ErrUnknownSheet    = errors.New("unknown sheet name")
	ErrUnknownLocation = errors.New("unknown location id")
)

// ImportSession holds the parsed workbook and the operator's mapping
// decisions. Ephemeral: lives in memory until committed or aborted.
type ImportSession struct {
	ID       string
	State    SessionState
	FileName string
	Sheets   []dtos.RawSheet
	Mappings []*dtos.SheetMapping
	Preview  *dtos.PreviewResult
}

// ImportService drives the upload → preview → commit pipeline. Each
// operator action runs to completion before the next is accepted; the
// mutex only protects the session map against double-submission races.
type ImportService struct {
	mu         sync.Mutex
	sessions   map[string]*ImportSession
	classifier *TypeClassifier
	resolver   *LocationResolver
	catalogs   *common.CatalogService
	assetRepo  *repositories.AssetRepository
	audit      *AuditService
	metricsReg *metrics.MetricsRegistry
	batchSize  int
}

func NewImportService(
	classifier *TypeClassifier,
	resolver *LocationResolver,
	catalogs *common.CatalogService,
	assetRepo *repositories.AssetRepository,
	audit *AuditService,
	metricsReg *metrics.MetricsRegistry,
	batchSize int,
) *ImportService {
	if batchSize <= 0 {
		batchSize = constants.DefaultImportBatchSize
	}
	return &ImportService{
		sessions:   make(map[string]*ImportSession),
		classifier: classifier,
		resolver:   resolver,
		catalogs:   catalogs,
		assetRepo:  assetRepo,
		audit:      audit,
		metricsReg: metricsReg,
		batchSize:  batchSize,
	}
}

// LoadWorkbook parses an uploaded file, seeds one mapping per sheet through
// the location resolver and computes the initial preview. Sheets without
// data rows are dropped silently.
func (s *ImportService) LoadWorkbook(ctx context.Context, fileName string, r io.Reader) (*dtos.ImportSessionResponse, error) {
	parsed, err := ParseWorkbook(r)
	if err != nil {
		return nil, err
	}

	var sheets []dtos.RawSheet
	for _, sheet := range parsed {
		if len(sheet.Rows) == 0 {
			continue
		}
		sheets = append(sheets, sheet)
	}
	if len(sheets) == 0 {
		return nil, errors.New("workbook contains no data rows")
	}

	mappings := make([]*dtos.SheetMapping, 0, len(sheets))
	for _, sheet := range sheets {
		mapping := &dtos.SheetMapping{SheetName: sheet.Name}
		loc, err := s.resolver.Resolve(ctx, sheet.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve sheet %q: %w", sheet.Name, err)
		}
		if loc != nil {
			mapping.LocationID = &loc.ID
			mapping.LocationName = &loc.Name
		}
		mappings = append(mappings, mapping)
	}

	session := &ImportSession{
		ID:       uuid.NewString(),
		State:    SessionFileLoaded,
		FileName: fileName,
		Sheets:   sheets,
		Mappings: mappings,
	}

	preview, err := s.ComputePreview(ctx, session.Sheets, session.Mappings)
	if err != nil {
		return nil, err
	}
	session.Preview = preview
	session.State = SessionPreviewing

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	logging.WithImportSession(session.ID, fileName).Infow("workbook loaded",
		"sheets", preview.TotalSheets,
		"rows", preview.TotalRecords,
	)
	return sessionView(session), nil
}

// ComputePreview is the pure aggregation of what a commit would do: a
// function of the sheets, the current mappings and the catalogs, with no
// writes. Recomputing with identical inputs yields identical output, so the
// operator can adjust mappings repeatedly without re-parsing the file.
func (s *ImportService) ComputePreview(ctx context.Context, sheets []dtos.RawSheet, mappings []*dtos.SheetMapping) (*dtos.PreviewResult, error) {
	byName := make(map[string]*dtos.SheetMapping, len(mappings))
	for _, m := range mappings {
		byName[m.SheetName] = m
	}

	result := &dtos.PreviewResult{}
	seen := make(map[string]bool)

	for _, sheet := range sheets {
		mapping := byName[sheet.Name]
		if mapping == nil || mapping.Ignored {
			continue
		}
		result.TotalSheets++

		for i, row := range sheet.Rows {
			result.TotalRecords++

			var assetType *gormModels.AssetType
			label := TypeLabel(row)
			if strings.TrimSpace(label) != "" {
				var err error
				assetType, err = s.classifier.Classify(ctx, label)
				if err != nil {
					return nil, fmt.Errorf("classification failed: %w", err)
				}
			}

			record := MapRow(row, assetType, mapping.LocationID, sheet.Name, i)
			if record.Valid() {
				result.ValidRecords++
				result.Records = append(result.Records, record)
				continue
			}

			result.InvalidRecords++
			if record.AssetTypeID == nil {
				addDiagnostic(result, seen,
					fmt.Sprintf("sheet %q: row %d has no recognizable asset type", sheet.Name, i+2))
			}
			if record.LocationID == nil {
				addDiagnostic(result, seen,
					fmt.Sprintf("sheet %q: no location resolved; assign one before commit", sheet.Name))
			}
		}
	}

	return result, nil
}

func addDiagnostic(result *dtos.PreviewResult, seen map[string]bool, msg string) {
	if seen[msg] || len(result.Diagnostics) >= constants.MaxPreviewDiagnostics {
		return
	}
	seen[msg] = true
	result.Diagnostics = append(result.Diagnostics, msg)
}

// GetSession returns the current view of a session.
func (s *ImportService) GetSession(sessionID string) (*dtos.ImportSessionResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sessionView(session), nil
}

// SetSheetMapping applies an operator override (location or ignore flag)
// and recomputes the preview.
func (s *ImportService) SetSheetMapping(ctx context.Context, sessionID, sheetName string, patch dtos.SheetMappingPatch) (*dtos.ImportSessionResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if session.State != SessionPreviewing {
		return nil, ErrSessionState
	}

	var mapping *dtos.SheetMapping
	for _, m := range session.Mappings {
		if m.SheetName == sheetName {
			mapping = m
			break
		}
	}
	if mapping == nil {
		return nil, ErrUnknownSheet
	}

	if patch.LocationID != nil {
		if *patch.LocationID == "" {
			mapping.LocationID = nil
			mapping.LocationName = nil
		} else {
			loc, err := s.findLocation(ctx, *patch.LocationID)
			if err != nil {
				return nil, err
			}
			mapping.LocationID = &loc.ID
			mapping.LocationName = &loc.Name
		}
	}
	if patch.Ignored != nil {
		mapping.Ignored = *patch.Ignored
	}

	preview, err := s.ComputePreview(ctx, session.Sheets, session.Mappings)
	if err != nil {
		return nil, err
	}
	session.Preview = preview

	return sessionView(session), nil
}

// Abort discards a session. Allowed until committing starts.
func (s *ImportService) Abort(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return ErrSessionNotFound
	}
	if session.State == SessionCommitting {
		return ErrSessionState
	}
	delete(s.sessions, sessionID)
	return nil
}

// Commit inserts the previewed valid records in fixed-size batches, sheet
// then row order. Batches are not wrapped in one transaction; instead every
// row carries the session id and a per-row fingerprint, and the insert is
// ON CONFLICT DO NOTHING on that pair, so a retry after partial failure
// cannot duplicate rows. A batch failure aborts the remaining batches and
// surfaces the store error verbatim.
func (s *ImportService) Commit(ctx context.Context, sessionID string) (*dtos.CommitResult, error) {
	s.mu.Lock()
	session, ok := s.sessions[sessionID]
	if !ok {
		s.mu.Unlock()
		return nil, ErrSessionNotFound
	}
	if session.State != SessionPreviewing {
		s.mu.Unlock()
		return nil, ErrSessionState
	}
	session.State = SessionCommitting
	preview := session.Preview
	fileName := session.FileName
	s.mu.Unlock()

	start := time.Now()

	if _, err := s.catalogs.EnsureFallbackType(ctx); err != nil {
		s.setState(sessionID, SessionFailed)
		return nil, fmt.Errorf("failed to ensure fallback type: %w", err)
	}

	assets := make([]*gormModels.Asset, 0, len(preview.Records))
	for _, record := range preview.Records {
		assets = append(assets, assetFromRecord(record, sessionID))
	}

	committed := 0
	retried := false
	for from := 0; from < len(assets); from += s.batchSize {
		to := min(from+s.batchSize, len(assets))
		batch := assets[from:to]

		err := s.assetRepo.InsertBatch(ctx, batch)
		if err != nil {
			if col := repositories.UndefinedColumn(err); col != "" {
				logging.Warn("store rejected a column, retrying batch with reduced field set",
					"session_id", sessionID,
					"column", col,
				)
				retried = true
				err = s.assetRepo.InsertBatch(ctx, batch, col)
			}
		}
		if err != nil {
			s.setState(sessionID, SessionFailed)
			if s.metricsReg != nil {
				s.metricsReg.ImportCommitsTotal.WithLabelValues("failed").Inc()
			}
			logging.Error("import commit failed",
				"session_id", sessionID,
				"committed", committed,
				"error", err.Error(),
			)
			return &dtos.CommitResult{
				SessionID:   sessionID,
				Committed:   committed,
				Unconfirmed: len(assets) - committed,
				Retried:     retried,
				Err:         err.Error(),
			}, nil
		}
		committed += len(batch)
	}

	s.setState(sessionID, SessionCommitted)
	s.audit.Record(ctx, constants.AuditActionImportCommit, "import_session", sessionID, map[string]any{
		"file_name":    fileName,
		"committed":    committed,
		"invalid_rows": preview.InvalidRecords,
	})
	if s.metricsReg != nil {
		s.metricsReg.ImportCommitsTotal.WithLabelValues("success").Inc()
		s.metricsReg.ImportRecordsTotal.Add(float64(committed))
		s.metricsReg.ImportInvalidRows.Add(float64(preview.InvalidRecords))
		s.metricsReg.ImportCommitDuration.Observe(time.Since(start).Seconds())
	}
	logging.WithImportSession(sessionID, fileName).Infow("import committed",
		"records", committed,
		"retried", retried,
	)

	return &dtos.CommitResult{
		SessionID: sessionID,
		Committed: committed,
		Retried:   retried,
	}, nil
}

func (s *ImportService) setState(sessionID string, state SessionState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if session, ok := s.sessions[sessionID]; ok {
		session.State = state
	}
}

func (s *ImportService) findLocation(ctx context.Context, id string) (*gormModels.Location, error) {
	locations, err := s.catalogs.Locations(ctx)
	if err != nil {
		return nil, err
	}
	for i := range locations {
		if locations[i].ID == id {
			return &locations[i], nil
		}
	}
	return nil, ErrUnknownLocation
}

func sessionView(session *ImportSession) *dtos.ImportSessionResponse {
	sheets := make([]dtos.SheetMapping, 0, len(session.Mappings))
	for _, m := range session.Mappings {
		sheets = append(sheets, *m)
	}
	return &dtos.ImportSessionResponse{
		SessionID: session.ID,
		State:     string(session.State),
		FileName:  session.FileName,
		Sheets:    sheets,
		Preview:   session.Preview,
	}
}

// assetFromRecord flattens the tagged extension variant into the sparse
// asset columns and stamps the idempotency fingerprint.
func assetFromRecord(record dtos.MappedRecord, sessionID string) *gormModels.Asset {
	fingerprint := fmt.Sprintf("%s:%d", record.SheetName, record.RowIndex)
	asset := &gormModels.Asset{
		AssetTypeID:    record.AssetTypeID,
		LocationID:     record.LocationID,
		Brand:          record.Brand,
		Model:          record.Model,
		SerialNumber:   record.SerialNumber,
		Status:         record.Status,
		Quantity:       record.Quantity,
		AcquiredAt:     record.AcquiredAt,
		Notes:          record.Notes,
		ImportBatchID:  &sessionID,
		RowFingerprint: &fingerprint,
	}

	switch ext := record.Ext.(type) {
	case dtos.ComputoFields:
		asset.Processor = ext.Processor
		asset.RAM = ext.RAM
		asset.Storage = ext.Storage
		asset.OperatingSystem = ext.OperatingSystem
		asset.BiosMode = ext.BiosMode
		asset.Area = ext.Area
		asset.AssetTag = ext.AssetTag
	case dtos.CamarasFields:
		asset.IPAddress = ext.IPAddress
		asset.AccessUser = ext.AccessUser
		asset.AccessPassword = ext.AccessPassword
	case dtos.TelefoniaFields:
		asset.IMEI = ext.IMEI
		asset.Carrier = ext.Carrier
		asset.Plan = ext.Plan
	case dtos.ImpresionFields:
		asset.PrintTechnology = ext.PrintTechnology
		asset.ConnectionType = ext.ConnectionType
	case dtos.AudiovisualFields:
		asset.ScreenSize = ext.ScreenSize
		asset.Resolution = ext.Resolution
	}

	return asset
}
