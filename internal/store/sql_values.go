package store

import (
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-sheet-sync/models"
)

var bookkeepingColumns = []string{"id", "remote_id", "remote_state", "synced", "created_at", "updated_at"}

// dbValue converts a canonical domain value into a driver argument. Blank
// values become NULL so typed columns (NUMERIC, DATE) accept them.
func dbValue(f models.Field, v string) any {
	canonical, err := f.Canonical(v)
	if err != nil {
		// keep the raw value; the database rejects it with a typed error
		canonical = v
	}
	if canonical == "" {
		return nil
	}
	return canonical
}

// domainValue renders a scanned column value as the canonical string of f.
func domainValue(f models.Field, raw any) string {
	var s string
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		s = v
	case []byte:
		s = string(v)
	case int64:
		s = strconv.FormatInt(v, 10)
	case float64:
		s = strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		s = strconv.FormatBool(v)
	case time.Time:
		s = v.Format(time.RFC3339)
	default:
		s = fmt.Sprint(v)
	}

	if canonical, err := f.Canonical(s); err == nil {
		return canonical
	}
	return s
}

// remoteIDValue is the persisted remote_id of ref.
func remoteIDValue(ref models.RemoteRef) any {
	if ref.IsUnassigned() || ref.Value == "" {
		return nil
	}
	return ref.Value
}

// remoteStateValue is the persisted remote_state of ref.
func remoteStateValue(ref models.RemoteRef) string {
	if ref.State == "" {
		return string(models.RemoteUnassigned)
	}
	return string(ref.State)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner, entity models.Entity) (models.Record, error) {
	var (
		rec         models.Record
		remoteID    sql.NullString
		remoteState sql.NullString
	)

	raw := make([]any, len(entity.Fields))
	dest := make([]any, 0, len(bookkeepingColumns)+len(raw))
	dest = append(dest, &rec.ID, &remoteID, &remoteState, &rec.Synced, &rec.CreatedAt, &rec.UpdatedAt)
	for i := range raw {
		dest = append(dest, &raw[i])
	}

	if err := row.Scan(dest...); err != nil {
		return models.Record{}, err
	}

	rec.Entity = entity.Name
	rec.Remote = models.ParseRemoteRef(remoteState.String, remoteID.String)
	rec.Fields = make(models.Fields, len(entity.Fields))
	for i, f := range entity.Fields {
		rec.Fields[f.Column] = domainValue(f, raw[i])
	}

	return rec, nil
}
