package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-sheet-sync/internal/logger"
	"github.com/MKhiriev/go-sheet-sync/models"
)

// recordRepository is the catalog-driven implementation of
// [RecordRepository]. One instance serves one entity table; the SQL is built
// with squirrel from the entity's field mapping.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that database interactions are traced with the
// entity and record identifiers.
type recordRepository struct {
	*DB
	entity  models.Entity
	columns []string
	logger  *logger.Logger
}

// NewRecordRepository constructs a [RecordRepository] for entity backed by
// db.
func NewRecordRepository(db *DB, entity models.Entity, log *logger.Logger) RecordRepository {
	columns := make([]string, 0, len(bookkeepingColumns)+len(entity.Fields))
	columns = append(columns, bookkeepingColumns...)
	columns = append(columns, entity.Columns()...)

	return &recordRepository{
		DB:      db,
		entity:  entity,
		columns: columns,
		logger:  log.WithEntity(entity.Name),
	}
}

func (r *recordRepository) Entity() models.Entity {
	return r.entity
}

func (r *recordRepository) selectRecords() sq.SelectBuilder {
	return r.builder().Select(r.columns...).From(r.entity.Table)
}

// FindAll returns every record of the entity ordered by local id.
func (r *recordRepository) FindAll(ctx context.Context) ([]models.Record, error) {
	return r.queryRecords(ctx, "recordRepository.FindAll", r.selectRecords().OrderBy("id"))
}

// FindUnsynced returns the records with synced = false ordered by local id.
// A non-empty parentKey narrows the result to one parent when the entity
// has a parent field; otherwise it is ignored.
func (r *recordRepository) FindUnsynced(ctx context.Context, parentKey string) ([]models.Record, error) {
	where := sq.Eq{"synced": false}
	if parentKey != "" && r.entity.ParentField != "" {
		where[r.entity.ParentField] = parentKey
	}

	return r.queryRecords(ctx, "recordRepository.FindUnsynced", r.selectRecords().Where(where).OrderBy("id"))
}

func (r *recordRepository) FindByID(ctx context.Context, id int64) (models.Record, error) {
	rec, err := r.queryRecord(ctx, "recordRepository.FindByID", r.selectRecords().Where(sq.Eq{"id": id}))
	if err != nil {
		return models.Record{}, fmt.Errorf("record %d: %w", id, err)
	}
	return rec, nil
}

func (r *recordRepository) FindByRemoteID(ctx context.Context, remoteID string) (models.Record, error) {
	if remoteID == "" {
		return models.Record{}, ErrRecordNotFound
	}

	rec, err := r.queryRecord(ctx, "recordRepository.FindByRemoteID", r.selectRecords().Where(sq.Eq{"remote_id": remoteID}))
	if err != nil {
		return models.Record{}, fmt.Errorf("remote id %q: %w", remoteID, err)
	}
	return rec, nil
}

// Create inserts record and returns it as stored. The local id, timestamps
// and unset bookkeeping values are assigned by the database.
func (r *recordRepository) Create(ctx context.Context, record models.Record) (models.Record, error) {
	log := logger.FromContext(ctx)

	columns := []string{"remote_id", "remote_state", "synced"}
	values := []any{remoteIDValue(record.Remote), remoteStateValue(record.Remote), record.Synced}
	for _, f := range r.entity.Fields {
		columns = append(columns, f.Column)
		values = append(values, dbValue(f, record.Fields[f.Column]))
	}

	query, args, err := r.builder().
		Insert(r.entity.Table).
		Columns(columns...).
		Values(values...).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "recordRepository.Create").Str("entity", r.entity.Name).Msg("failed to build query")
		return models.Record{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	err = r.withRetry(ctx, func() error {
		return r.DB.QueryRowContext(ctx, query, args...).Scan(&id)
	})
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.Create").
			Str("entity", r.entity.Name).
			Str("remote_id", record.Remote.Value).
			Msg("failed to insert record")
		if r.isUniqueViolation(err) {
			return models.Record{}, fmt.Errorf("%w: %s", ErrRemoteIDConflict, record.Remote.Value)
		}
		return models.Record{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return r.FindByID(ctx, id)
}

// Update overwrites the given fields of the record linked to remoteID and
// clears its sync flag. Columns absent from fields keep their value.
func (r *recordRepository) Update(ctx context.Context, remoteID string, fields models.Fields) (models.Record, error) {
	update := r.builder().Update(r.entity.Table)
	for _, f := range r.entity.Fields {
		if v, ok := fields[f.Column]; ok {
			update = update.Set(f.Column, dbValue(f, v))
		}
	}
	update = update.
		Set("synced", false).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"remote_id": remoteID})

	if err := r.execAffecting(ctx, "recordRepository.Update", update); err != nil {
		return models.Record{}, fmt.Errorf("remote id %q: %w", remoteID, err)
	}

	return r.FindByRemoteID(ctx, remoteID)
}

// PatchField writes one mapped column and clears the sync flag so the new
// value is propagated by the next reconciliation.
func (r *recordRepository) PatchField(ctx context.Context, id int64, column, value string) error {
	f, ok := r.entity.Field(column)
	if !ok {
		return fmt.Errorf("%w: %s.%s", ErrUnknownColumn, r.entity.Name, column)
	}

	update := r.builder().Update(r.entity.Table).
		Set(f.Column, dbValue(f, value)).
		Set("synced", false).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": id})

	if err := r.execAffecting(ctx, "recordRepository.PatchField", update); err != nil {
		return fmt.Errorf("record %d: %w", id, err)
	}
	return nil
}

func (r *recordRepository) SetRemoteRef(ctx context.Context, id int64, ref models.RemoteRef) error {
	update := r.builder().Update(r.entity.Table).
		Set("remote_id", remoteIDValue(ref)).
		Set("remote_state", remoteStateValue(ref)).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": id})

	err := r.execAffecting(ctx, "recordRepository.SetRemoteRef", update)
	if err != nil && r.isUniqueViolation(err) {
		return fmt.Errorf("record %d: %w: %s", id, ErrRemoteIDConflict, ref.Value)
	}
	if err != nil {
		return fmt.Errorf("record %d: %w", id, err)
	}
	return nil
}

func (r *recordRepository) UpdateSyncFlag(ctx context.Context, id int64, synced bool) error {
	update := r.builder().Update(r.entity.Table).
		Set("synced", synced).
		Where(sq.Eq{"id": id})

	if err := r.execAffecting(ctx, "recordRepository.UpdateSyncFlag", update); err != nil {
		return fmt.Errorf("record %d: %w", id, err)
	}
	return nil
}

// execAffecting runs an UPDATE and maps zero affected rows to
// [ErrRecordNotFound]. Driver errors are returned unwrapped inside
// [ErrExecutingStatement] so callers can still classify them.
func (r *recordRepository) execAffecting(ctx context.Context, fn string, update sq.UpdateBuilder) error {
	log := logger.FromContext(ctx)

	query, args, err := update.ToSql()
	if err != nil {
		log.Err(err).Str("func", fn).Str("entity", r.entity.Name).Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var result sql.Result
	err = r.withRetry(ctx, func() error {
		var execErr error
		result, execErr = r.DB.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", fn).Str("entity", r.entity.Name).Msg("failed to execute statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (r *recordRepository) queryRecord(ctx context.Context, fn string, query sq.SelectBuilder) (models.Record, error) {
	records, err := r.queryRecords(ctx, fn, query.Limit(1))
	if err != nil {
		return models.Record{}, err
	}
	if len(records) == 0 {
		return models.Record{}, ErrRecordNotFound
	}
	return records[0], nil
}

func (r *recordRepository) queryRecords(ctx context.Context, fn string, builder sq.SelectBuilder) ([]models.Record, error) {
	log := logger.FromContext(ctx)

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", fn).Str("entity", r.entity.Name).Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var rows *sql.Rows
	err = r.withRetry(ctx, func() error {
		var queryErr error
		rows, queryErr = r.DB.QueryContext(ctx, query, args...)
		return queryErr
	})
	if err != nil {
		log.Err(err).Str("func", fn).Str("entity", r.entity.Name).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.Record, 0, 16)
	for rows.Next() {
		rec, scanErr := scanRecord(rows, r.entity)
		if scanErr != nil {
			log.Err(scanErr).Str("func", fn).Str("entity", r.entity.Name).Msg("failed to scan record row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		records = append(records, rec)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", fn).Str("entity", r.entity.Name).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return records, nil
}

// IsNotFound reports whether err means the addressed record does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrRecordNotFound)
}
