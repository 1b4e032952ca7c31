package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-sheet-sync/internal/adapter"
	"github.com/MKhiriev/go-sheet-sync/internal/logger"
	"github.com/MKhiriev/go-sheet-sync/internal/store"
	"github.com/MKhiriev/go-sheet-sync/models"
)

// reconcileService is the one generic reconciliation engine; an instance is
// bound to a single entity definition.
//
// Protocol of one record, taken under the record lock:
//
//  1. Confirmed identifier present on the remote sheet → update that row.
//  2. Otherwise (placeholder, unassigned, stale) → natural-key search unless
//     the entity disables it; a match is updated and adopted.
//  3. No match → append, proposing the placeholder token when the sheet
//     accepts caller-assigned identifiers, and store the returned identifier.
//
// The sync flag is set only after the remote store accepted the values.
type reconcileService struct {
	entity models.Entity
	repo   store.RecordRepository
	remote adapter.RemoteStore
	locker RecordLocker

	logger *logger.Logger
}

// NewReconcileService builds the engine for the entity served by repo.
func NewReconcileService(repo store.RecordRepository, remote adapter.RemoteStore, locker RecordLocker, log *logger.Logger) ReconcileService {
	entity := repo.Entity()
	return &reconcileService{
		entity: entity,
		repo:   repo,
		remote: remote,
		locker: locker,
		logger: log.WithEntity(entity.Name),
	}
}

func (s *reconcileService) Entity() models.Entity {
	return s.entity
}

// Reconcile implements [ReconcileService]. Only record.ID is used; the
// current state is re-read under the lock.
func (s *reconcileService) Reconcile(ctx context.Context, record models.Record) (models.ReconcileOutcome, error) {
	if record.ID <= 0 {
		return models.ReconcileOutcome{}, ErrRecordNotPersisted
	}
	return s.ReconcileByID(ctx, record.ID)
}

func (s *reconcileService) ReconcileByID(ctx context.Context, id int64) (models.ReconcileOutcome, error) {
	unlock, err := s.locker.Lock(ctx, LockKey(s.entity.Name, id))
	if err != nil {
		return models.ReconcileOutcome{}, err
	}
	defer unlock()

	current, err := s.repo.FindByID(ctx, id)
	if store.IsNotFound(err) {
		return models.ReconcileOutcome{}, fmt.Errorf("%w: %s %d", ErrRecordNotPersisted, s.entity.Name, id)
	}
	if err != nil {
		return models.ReconcileOutcome{}, fmt.Errorf("load %s %d: %w", s.entity.Name, id, err)
	}

	return s.reconcile(ctx, current)
}

func (s *reconcileService) reconcile(ctx context.Context, rec models.Record) (models.ReconcileOutcome, error) {
	log := logger.FromContext(ctx)
	sheet := s.entity.Sheet

	confirmedID := rec.Remote.ConfirmedID()
	if confirmedID == "" && rec.Fields.Empty() {
		return models.ReconcileOutcome{}, fmt.Errorf("%w: %s %d has neither identifier nor values", ErrUnidentifiableRecord, s.entity.Name, rec.ID)
	}

	row := s.entity.ToRow(rec.Fields)

	var rows []models.Row
	if confirmedID != "" || s.entity.NaturalKey.Enabled() {
		var err error
		if rows, err = s.remote.ListAll(ctx, sheet); err != nil {
			return s.remoteFailed(ctx, rec, "list remote rows", err)
		}
	}

	if confirmedID != "" {
		if _, found := models.FindRow(rows, sheet.IDColumn, confirmedID); found {
			err := s.remote.UpdateByIdentifier(ctx, sheet, confirmedID, row)
			if err == nil {
				return s.markSynced(ctx, rec, models.ActionUpdated, confirmedID)
			}
			if !errors.Is(err, adapter.ErrRowNotFound) {
				return s.remoteFailed(ctx, rec, "update remote row", err)
			}
		}
		log.Warn().
			Str("func", "reconcileService.reconcile").
			Str("entity", s.entity.Name).
			Int64("record_id", rec.ID).
			Str("remote_id", confirmedID).
			Msg("confirmed identifier is stale, recreating remote row")
	}

	if s.entity.NaturalKey.Enabled() {
		if match, ok := s.matchNaturalKey(rows, rec.Fields); ok {
			matchedID := match.ID(sheet.IDColumn)
			if err := s.checkOwner(ctx, rec, matchedID); err != nil {
				return models.ReconcileOutcome{}, err
			}
			err := s.remote.UpdateByIdentifier(ctx, sheet, matchedID, row)
			switch {
			case err == nil:
				return s.relink(ctx, rec, matchedID)
			case !errors.Is(err, adapter.ErrRowNotFound):
				return s.remoteFailed(ctx, rec, "update matched remote row", err)
			}
		}
	}

	return s.create(ctx, rec, row)
}

// checkOwner refuses a natural-key match whose row is already linked to
// another local record. The row is left untouched so the owner stays in sync
// with it.
func (s *reconcileService) checkOwner(ctx context.Context, rec models.Record, matchedID string) error {
	owner, err := s.repo.FindByRemoteID(ctx, matchedID)
	switch {
	case err == nil && owner.ID != rec.ID:
		s.markUnsynced(ctx, rec)
		return fmt.Errorf("%w: %s row %s belongs to record %d", ErrDuplicateLocalRecord, s.entity.Name, matchedID, owner.ID)
	case err != nil && !store.IsNotFound(err):
		return fmt.Errorf("look up owner of %s: %w", matchedID, err)
	}
	return nil
}

// relink adopts a natural-key match already written to the remote row.
func (s *reconcileService) relink(ctx context.Context, rec models.Record, matchedID string) (models.ReconcileOutcome, error) {
	if err := s.repo.SetRemoteRef(ctx, rec.ID, models.Confirmed(matchedID)); err != nil {
		if errors.Is(err, store.ErrRemoteIDConflict) {
			return models.ReconcileOutcome{}, fmt.Errorf("%w: %s row %s", ErrDuplicateLocalRecord, s.entity.Name, matchedID)
		}
		return models.ReconcileOutcome{}, fmt.Errorf("link record %d to %s: %w", rec.ID, matchedID, err)
	}

	return s.markSynced(ctx, rec, models.ActionRelinked, matchedID)
}

func (s *reconcileService) create(ctx context.Context, rec models.Record, row models.Row) (models.ReconcileOutcome, error) {
	sheet := s.entity.Sheet

	var proposedID string
	if sheet.AcceptsProposedID {
		proposedID = rec.Remote.ProposedID()
	}

	stored, err := s.remote.Append(ctx, sheet, row, proposedID)
	if err != nil {
		return s.remoteFailed(ctx, rec, "append remote row", err)
	}

	newID := stored.ID(sheet.IDColumn)
	if newID == "" {
		return s.remoteFailed(ctx, rec, "append remote row", adapter.ErrInvalidResponse)
	}

	if err = s.repo.SetRemoteRef(ctx, rec.ID, models.Confirmed(newID)); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "reconcileService.create").
			Str("entity", s.entity.Name).
			Int64("record_id", rec.ID).
			Str("remote_id", newID).
			Msg("remote row created but identifier not stored")
		return models.ReconcileOutcome{}, fmt.Errorf("store remote id %s of record %d: %w", newID, rec.ID, err)
	}

	return s.markSynced(ctx, rec, models.ActionCreated, newID)
}

func (s *reconcileService) markSynced(ctx context.Context, rec models.Record, action models.ReconcileAction, remoteID string) (models.ReconcileOutcome, error) {
	if err := s.repo.UpdateSyncFlag(ctx, rec.ID, true); err != nil {
		return models.ReconcileOutcome{}, fmt.Errorf("mark record %d synced: %w", rec.ID, err)
	}

	logger.FromContext(ctx).Debug().
		Str("func", "reconcileService.markSynced").
		Str("entity", s.entity.Name).
		Int64("record_id", rec.ID).
		Str("remote_id", remoteID).
		Str("action", string(action)).
		Msg("record reconciled")

	return models.ReconcileOutcome{RecordID: rec.ID, Action: action, RemoteID: remoteID}, nil
}

// remoteFailed leaves the record unsynced and wraps err.
func (s *reconcileService) remoteFailed(ctx context.Context, rec models.Record, op string, err error) (models.ReconcileOutcome, error) {
	logger.FromContext(ctx).Err(err).
		Str("func", "reconcileService.reconcile").
		Str("entity", s.entity.Name).
		Int64("record_id", rec.ID).
		Str("remote_id", rec.Remote.Value).
		Msg(op + " failed")

	s.markUnsynced(ctx, rec)
	return models.ReconcileOutcome{}, fmt.Errorf("%s for %s %d: %w", op, s.entity.Name, rec.ID, err)
}

func (s *reconcileService) markUnsynced(ctx context.Context, rec models.Record) {
	if !rec.Synced {
		return
	}
	if err := s.repo.UpdateSyncFlag(ctx, rec.ID, false); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "reconcileService.markUnsynced").
			Str("entity", s.entity.Name).
			Int64("record_id", rec.ID).
			Msg("failed to clear sync flag")
	}
}

// matchNaturalKey scans rows for the first one whose two natural-key
// columns equal the record's, trimmed and case-insensitively.
func (s *reconcileService) matchNaturalKey(rows []models.Row, fields models.Fields) (models.Row, bool) {
	headers, ok := s.naturalKeyHeaders()
	if !ok {
		return nil, false
	}

	first := normalizeKey(fields[s.entity.NaturalKey.Fields[0]])
	second := normalizeKey(fields[s.entity.NaturalKey.Fields[1]])
	if first == "" && second == "" {
		return nil, false
	}

	for _, row := range rows {
		if row.ID(s.entity.Sheet.IDColumn) == "" {
			continue
		}
		if normalizeKey(row[headers[0]]) == first && normalizeKey(row[headers[1]]) == second {
			return row, true
		}
	}
	return nil, false
}

func (s *reconcileService) naturalKeyHeaders() ([2]string, bool) {
	var headers [2]string
	if !s.entity.NaturalKey.Enabled() {
		return headers, false
	}
	for i, column := range s.entity.NaturalKey.Fields {
		f, ok := s.entity.Field(column)
		if !ok {
			return headers, false
		}
		headers[i] = f.Header
	}
	return headers, true
}

func (s *reconcileService) naturalKeyValues(rec models.Record) map[string]string {
	if !s.entity.NaturalKey.Enabled() {
		return nil
	}
	values := make(map[string]string, len(s.entity.NaturalKey.Fields))
	for _, column := range s.entity.NaturalKey.Fields {
		values[column] = rec.Fields[column]
	}
	return values
}

func normalizeKey(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}
