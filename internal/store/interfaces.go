package store

import (
	"context"

	"github.com/MKhiriev/go-sheet-sync/models"
)

// RecordRepository is the Record Store adapter of one entity. Updates by
// content are always addressed by remote identifier; bookkeeping updates
// (field patch, remote reference, sync flag) by local id.
type RecordRepository interface {
	Entity() models.Entity
	FindAll(ctx context.Context) ([]models.Record, error)
	FindByID(ctx context.Context, id int64) (models.Record, error)
	FindByRemoteID(ctx context.Context, remoteID string) (models.Record, error)
	FindUnsynced(ctx context.Context, parentKey string) ([]models.Record, error)
	Create(ctx context.Context, record models.Record) (models.Record, error)
	Update(ctx context.Context, remoteID string, fields models.Fields) (models.Record, error)
	PatchField(ctx context.Context, id int64, column, value string) error
	SetRemoteRef(ctx context.Context, id int64, ref models.RemoteRef) error
	UpdateSyncFlag(ctx context.Context, id int64, synced bool) error
}
