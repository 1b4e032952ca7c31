package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-sheet-sync/internal/logger"
	"github.com/MKhiriev/go-sheet-sync/internal/store"
	"github.com/MKhiriev/go-sheet-sync/models"
)

// ReconcileAllUnsynced implements [ReconcileService]. Records are processed
// one after another; a failing record is reported and the batch goes on.
func (s *reconcileService) ReconcileAllUnsynced(ctx context.Context, parentKey string, progress ProgressFunc) (models.SyncReport, error) {
	records, err := s.repo.FindUnsynced(ctx, parentKey)
	if err != nil {
		return models.SyncReport{Entity: s.entity.Name}, fmt.Errorf("load unsynced %s: %w", s.entity.Name, err)
	}
	return s.reconcileBatch(ctx, "reconcileService.ReconcileAllUnsynced", records, progress)
}

// MigrateAll implements [ReconcileService]: a full migration reconciles
// every local record regardless of its sync flag.
func (s *reconcileService) MigrateAll(ctx context.Context, progress ProgressFunc) (models.SyncReport, error) {
	records, err := s.repo.FindAll(ctx)
	if err != nil {
		return models.SyncReport{Entity: s.entity.Name}, fmt.Errorf("load %s: %w", s.entity.Name, err)
	}
	return s.reconcileBatch(ctx, "reconcileService.MigrateAll", records, progress)
}

func (s *reconcileService) reconcileBatch(ctx context.Context, fn string, records []models.Record, progress ProgressFunc) (models.SyncReport, error) {
	log := logger.FromContext(ctx)
	report := models.SyncReport{Entity: s.entity.Name, Total: len(records)}

	for i, rec := range records {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		outcome, err := s.Reconcile(ctx, rec)
		switch {
		case err == nil:
			report.Count(outcome)
		case errors.Is(err, ErrUnidentifiableRecord), errors.Is(err, ErrDuplicateLocalRecord), errors.Is(err, ErrRecordNotPersisted):
			report.Skip(models.RecordSkip{RecordID: rec.ID, RemoteID: rec.Remote.Value, Reason: err.Error()})
		default:
			report.Fail(models.RecordFailure{
				RecordID:   rec.ID,
				RemoteID:   rec.Remote.Value,
				NaturalKey: s.naturalKeyValues(rec),
				Error:      err.Error(),
			})
		}

		if progress != nil {
			progress(i+1, len(records))
		}
	}

	log.Info().
		Str("func", fn).
		Str("entity", s.entity.Name).
		Int("total", report.Total).
		Int("synced", report.Synced).
		Int("skipped", report.Skipped).
		Int("errors", report.Errors).
		Msg("batch reconciled")

	return report, nil
}

// Import implements [ReconcileService]. Remote rows unknown locally are
// created as synced records; known rows overwrite local values only while
// the local record has no pending edits.
func (s *reconcileService) Import(ctx context.Context) (models.ImportReport, error) {
	log := logger.FromContext(ctx)
	sheet := s.entity.Sheet

	rows, err := s.remote.ListAll(ctx, sheet)
	if err != nil {
		return models.ImportReport{Entity: s.entity.Name}, fmt.Errorf("list remote %s: %w", s.entity.Name, err)
	}

	report := models.ImportReport{Entity: s.entity.Name, Total: len(rows)}
	for _, row := range rows {
		if err = ctx.Err(); err != nil {
			return report, err
		}

		remoteID := row.ID(sheet.IDColumn)
		if remoteID == "" {
			report.Skip(models.RecordSkip{Reason: "remote row has no identifier"})
			continue
		}

		if err = s.importRow(ctx, remoteID, row, &report); err != nil {
			report.Fail(models.RecordFailure{RemoteID: remoteID, Error: err.Error()})
		}
	}

	log.Info().
		Str("func", "reconcileService.Import").
		Str("entity", s.entity.Name).
		Int("total", report.Total).
		Int("imported", report.Imported).
		Int("updated", report.Updated).
		Int("errors", report.Errors).
		Msg("remote rows imported")

	return report, nil
}

func (s *reconcileService) importRow(ctx context.Context, remoteID string, row models.Row, report *models.ImportReport) error {
	fields, err := canonicalFields(s.entity, s.entity.FromRow(row))
	if err != nil {
		return err
	}

	local, err := s.repo.FindByRemoteID(ctx, remoteID)
	if store.IsNotFound(err) {
		_, err = s.repo.Create(ctx, models.Record{Remote: models.Confirmed(remoteID), Synced: true, Fields: fields})
		if err != nil {
			return fmt.Errorf("create local record: %w", err)
		}
		report.Imported++
		return nil
	}
	if err != nil {
		return fmt.Errorf("find local record: %w", err)
	}

	unlock, err := s.locker.Lock(ctx, LockKey(s.entity.Name, local.ID))
	if err != nil {
		return err
	}
	defer unlock()

	if local, err = s.repo.FindByID(ctx, local.ID); err != nil {
		return fmt.Errorf("reload local record: %w", err)
	}
	if !local.Synced {
		report.Skip(models.RecordSkip{RecordID: local.ID, RemoteID: remoteID, Reason: "local record has unsynced changes"})
		return nil
	}
	if len(diffFields(s.entity, local.Fields, fields)) == 0 {
		report.Unchanged++
		return nil
	}

	if _, err = s.repo.Update(ctx, remoteID, fields); err != nil {
		return fmt.Errorf("update local record %d: %w", local.ID, err)
	}
	if err = s.repo.UpdateSyncFlag(ctx, local.ID, true); err != nil {
		return fmt.Errorf("mark record %d synced: %w", local.ID, err)
	}
	report.Updated++
	return nil
}

// Compare implements [ReconcileService]. Nothing is written to either store.
func (s *reconcileService) Compare(ctx context.Context) (models.CompareReport, error) {
	sheet := s.entity.Sheet

	records, err := s.repo.FindAll(ctx)
	if err != nil {
		return models.CompareReport{Entity: s.entity.Name}, fmt.Errorf("load %s: %w", s.entity.Name, err)
	}
	rows, err := s.remote.ListAll(ctx, sheet)
	if err != nil {
		return models.CompareReport{Entity: s.entity.Name}, fmt.Errorf("list remote %s: %w", s.entity.Name, err)
	}

	report := models.CompareReport{Entity: s.entity.Name, LocalCount: len(records), RemoteCount: len(rows)}

	byID := make(map[string]models.Row, len(rows))
	for _, row := range rows {
		if id := row.ID(sheet.IDColumn); id != "" {
			if _, dup := byID[id]; !dup {
				byID[id] = row
			}
		}
	}

	linked := make(map[string]bool, len(records))
	for _, rec := range records {
		id := rec.Remote.ConfirmedID()
		row, ok := byID[id]
		if id == "" || !ok {
			report.OnlyLocal = append(report.OnlyLocal, rec.ID)
			continue
		}
		linked[id] = true

		remoteFields, _ := canonicalFields(s.entity, s.entity.FromRow(row))
		if diffs := diffFields(s.entity, rec.Fields, remoteFields); len(diffs) > 0 {
			report.Mismatched = append(report.Mismatched, models.RecordMismatch{RecordID: rec.ID, RemoteID: id, Fields: diffs})
			continue
		}
		report.InSync++
	}

	for _, row := range rows {
		id := row.ID(sheet.IDColumn)
		if id != "" && !linked[id] {
			report.OnlyRemote = append(report.OnlyRemote, id)
			linked[id] = true
		}
	}

	return report, nil
}

// canonicalFields normalises every value of fields by its column type. On
// an invalid value the raw value is kept in the result and the error is
// returned.
func canonicalFields(entity models.Entity, fields models.Fields) (models.Fields, error) {
	out := make(models.Fields, len(fields))
	var errs []error
	for column, value := range fields {
		f, ok := entity.Field(column)
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %s.%s", ErrInvalidField, entity.Name, column))
			continue
		}
		canonical, err := f.Canonical(value)
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: %s.%s = %q", ErrInvalidField, entity.Name, column, value))
			canonical = value
		}
		out[column] = canonical
	}
	return out, errors.Join(errs...)
}

func diffFields(entity models.Entity, local, remote models.Fields) []models.FieldDiff {
	var diffs []models.FieldDiff
	for _, f := range entity.Fields {
		if local[f.Column] != remote[f.Column] {
			diffs = append(diffs, models.FieldDiff{Column: f.Column, Local: local[f.Column], Remote: remote[f.Column]})
		}
	}
	return diffs
}
