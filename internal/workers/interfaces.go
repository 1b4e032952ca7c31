// Package workers runs the background processes of the service: the
// attachment upload queue and the aggregate that supervises them.
package workers

import (
	"context"

	"github.com/MKhiriev/go-sheet-sync/models"
)

// Worker is a background process. Run blocks until ctx is done or the
// worker fails.
type Worker interface {
	Run(ctx context.Context) error
}

// FieldPatcher stores the object-store location of an uploaded file on the
// owning record.
type FieldPatcher interface {
	PatchField(ctx context.Context, entity string, id int64, column, value string) error
}

// RecordReconciler pushes one record to the remote store.
type RecordReconciler interface {
	ReconcileRecord(ctx context.Context, entity string, id int64) (models.ReconcileOutcome, error)
}
