package service

import (
	"context"

	"github.com/MKhiriev/go-sheet-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ProgressFunc is called after every processed record of a bulk run.
type ProgressFunc = func(done, total int)

// ReconcileService is the reconciliation engine of one entity. It talks only
// to the record store and the remote store.
type ReconcileService interface {
	Entity() models.Entity

	// Reconcile brings one local record in agreement with its remote row.
	// The record is re-read under its lock, so only its ID is relied upon.
	Reconcile(ctx context.Context, record models.Record) (models.ReconcileOutcome, error)
	ReconcileByID(ctx context.Context, id int64) (models.ReconcileOutcome, error)

	// ReconcileAllUnsynced processes every unsynced record sequentially and
	// never aborts on a single record's failure.
	ReconcileAllUnsynced(ctx context.Context, parentKey string, progress ProgressFunc) (models.SyncReport, error)

	Import(ctx context.Context) (models.ImportReport, error)
	MigrateAll(ctx context.Context, progress ProgressFunc) (models.SyncReport, error)
	Compare(ctx context.Context) (models.CompareReport, error)
}

// RecordService performs local writes and triggers their follow-up: upload
// of attachments and an immediate reconciliation.
type RecordService interface {
	List(ctx context.Context, entity string) ([]models.Record, error)
	Create(ctx context.Context, entity string, req models.WriteRecordRequest) (models.WriteRecordResponse, error)
	Update(ctx context.Context, entity, remoteID string, req models.WriteRecordRequest) (models.WriteRecordResponse, error)
	PatchField(ctx context.Context, entity string, id int64, column, value string) error
}

// RecordLocker serializes reconciliation of one record. Lock blocks until
// the key is free or ctx is done; the returned func releases it.
type RecordLocker interface {
	Lock(ctx context.Context, key string) (func(), error)
}

// UploadEnqueuer accepts attachment transfers.
type UploadEnqueuer interface {
	Enqueue(task models.UploadTask) error
}

// UploadQueue is the attachment queue as seen by the service layer.
type UploadQueue interface {
	UploadEnqueuer
	Status() models.UploadQueueStatus
}

type AppInfoService interface {
	Version(ctx context.Context) models.VersionResponse
}
