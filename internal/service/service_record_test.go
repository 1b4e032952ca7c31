package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-sheet-sync/internal/adapter"
	"github.com/MKhiriev/go-sheet-sync/internal/config"
	"github.com/MKhiriev/go-sheet-sync/internal/logger"
	"github.com/MKhiriev/go-sheet-sync/internal/mock"
	"github.com/MKhiriev/go-sheet-sync/internal/store"
	"github.com/MKhiriev/go-sheet-sync/internal/validators"
	"github.com/MKhiriev/go-sheet-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func debtsWithStatement() models.Entity {
	e := additionalDebtsEntity()
	e.Fields = append(e.Fields, models.Field{Column: "statement_url", Header: "Statement", File: true})
	return e
}

type recordFixture struct {
	svc       RecordService
	directors *fakeRepo
	debts     *fakeRepo
	remote    *fakeRemote
	locker    RecordLocker
}

func newRecordFixture(uploads UploadEnqueuer) recordFixture {
	log := logger.Nop()
	directors := newFakeRepo(directorsEntity())
	debts := newFakeRepo(debtsWithStatement())
	remote := newFakeRemote()

	storages := store.NewStorages(nil, nil, log)
	storages.Add(directors)
	storages.Add(debts)

	locker := NewMemoryLocker()
	reconcilers := NewReconcilers(storages, remote, locker, log)
	patcher := NewFieldPatcher(storages, locker, log)
	svc := NewRecordService(storages, reconcilers, patcher, uploads, config.Workers{MaxRetries: 3}, log)

	return recordFixture{svc: svc, directors: directors, debts: debts, remote: remote, locker: locker}
}

// ── Create ───────────────────────────────────────────────────────────────────

func TestRecordService_CreateReconcilesImmediately(t *testing.T) {
	f := newRecordFixture(nil)
	ctx := testContext()

	resp, err := f.svc.Create(ctx, "directors", models.WriteRecordRequest{
		Fields: models.Fields{"credit_application_id": "CA-1", "email": "ann@x.io", "date_of_birth": "1990-02-01T00:00:00Z"},
	})

	require.NoError(t, err)
	require.NotNil(t, resp.Sync)
	assert.Equal(t, models.ActionCreated, resp.Sync.Action)
	assert.Empty(t, resp.SyncError)
	assert.True(t, resp.Record.Synced)
	assert.True(t, resp.Record.Remote.IsConfirmed())
	assert.Equal(t, resp.Sync.RemoteID, resp.Record.Remote.Value)
	assert.False(t, models.HasPlaceholderPrefix(resp.Record.Remote.Value))
	assert.Equal(t, "1990-02-01", resp.Record.Fields["date_of_birth"])
	assert.Equal(t, 1, f.remote.count("Directors"))
}

func TestRecordService_CreateKeepsRecordWhenRemoteFails(t *testing.T) {
	f := newRecordFixture(nil)
	f.remote.appendErr = func(models.Row) error { return adapter.ErrRemoteUnavailable }
	ctx := testContext()

	resp, err := f.svc.Create(ctx, "additional_debts", models.WriteRecordRequest{Fields: models.Fields{"lender": "Bank"}})

	require.NoError(t, err)
	assert.Nil(t, resp.Sync)
	assert.Contains(t, resp.SyncError, adapter.ErrRemoteUnavailable.Error())
	assert.False(t, resp.Record.Synced)
	assert.True(t, resp.Record.Remote.IsPlaceholder())
	assert.True(t, strings.HasPrefix(resp.Record.Remote.Value, models.DebtPlaceholderPrefix))
}

func TestRecordService_CreateRejectsInvalidInput(t *testing.T) {
	f := newRecordFixture(nil)
	ctx := testContext()

	tests := []struct {
		name    string
		entity  string
		req     models.WriteRecordRequest
		wantErr error
	}{
		{
			name:    "unknown entity",
			entity:  "offers",
			req:     models.WriteRecordRequest{Fields: models.Fields{"lender": "x"}},
			wantErr: ErrUnknownEntity,
		},
		{
			name:    "unknown column",
			entity:  "additional_debts",
			req:     models.WriteRecordRequest{Fields: models.Fields{"colour": "red"}},
			wantErr: validators.ErrUnknownColumn,
		},
		{
			name:    "bad number",
			entity:  "additional_debts",
			req:     models.WriteRecordRequest{Fields: models.Fields{"balance": "a lot"}},
			wantErr: validators.ErrInvalidValue,
		},
		{
			name:    "empty record",
			entity:  "additional_debts",
			req:     models.WriteRecordRequest{Fields: models.Fields{"lender": "  "}},
			wantErr: validators.ErrEmptyRecord,
		},
		{
			name:   "attachment without object store",
			entity: "additional_debts",
			req: models.WriteRecordRequest{
				Fields:      models.Fields{"lender": "Bank"},
				Attachments: []models.Attachment{{Field: "statement_url", Path: "/tmp/s.pdf"}},
			},
			wantErr: ErrInvalidField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.Create(ctx, tt.entity, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
	assert.Zero(t, f.remote.appends)
}

func TestRecordService_CreateEnqueuesAttachments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uploads := mock.NewMockUploadEnqueuer(ctrl)
	f := newRecordFixture(uploads)
	ctx := testContext()

	var task models.UploadTask
	uploads.EXPECT().Enqueue(gomock.Any()).DoAndReturn(func(got models.UploadTask) error {
		task = got
		return nil
	})

	resp, err := f.svc.Create(ctx, "additional_debts", models.WriteRecordRequest{
		Fields:      models.Fields{"lender": "Bank"},
		Attachments: []models.Attachment{{Field: "statement_url", Path: "/srv/in/statement-01.pdf"}},
	})

	require.NoError(t, err)
	require.Equal(t, []string{task.ID}, resp.Uploads)
	assert.NotEmpty(t, task.ID)
	assert.Equal(t, "statement-01.pdf", task.FileName)
	assert.Equal(t, "additional_debts", task.Folder)
	assert.Equal(t, "additional_debts", task.Entity)
	assert.Equal(t, resp.Record.ID, task.RecordID)
	assert.Equal(t, "statement_url", task.Field)
	assert.Equal(t, 3, task.MaxRetries)
	assert.Zero(t, task.RetryCount)
}

func TestRecordService_EnqueueFailureKeepsRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uploads := mock.NewMockUploadEnqueuer(ctrl)
	uploads.EXPECT().Enqueue(gomock.Any()).Return(assert.AnError)
	f := newRecordFixture(uploads)

	resp, err := f.svc.Create(testContext(), "additional_debts", models.WriteRecordRequest{
		Fields:      models.Fields{"lender": "Bank"},
		Attachments: []models.Attachment{{Field: "statement_url", Path: "s.pdf", FileName: "Statement.pdf", Folder: "custom"}},
	})

	require.NoError(t, err)
	assert.Empty(t, resp.Uploads)
	assert.True(t, resp.Record.Synced)
}

// ── Update ───────────────────────────────────────────────────────────────────

func TestRecordService_Update(t *testing.T) {
	f := newRecordFixture(nil)
	ctx := testContext()

	f.remote.put("Additional Debts", models.Row{"Debt ID": "R-5", "Lender": "Old"})
	id := f.debts.seed(models.Record{Remote: models.Confirmed("R-5"), Synced: true, Fields: models.Fields{"lender": "Old"}})

	resp, err := f.svc.Update(ctx, "additional_debts", " R-5 ", models.WriteRecordRequest{Fields: models.Fields{"lender": "New", "balance": "1,000"}})

	require.NoError(t, err)
	require.NotNil(t, resp.Sync)
	assert.Equal(t, models.ActionUpdated, resp.Sync.Action)
	assert.Equal(t, id, resp.Record.ID)
	assert.Equal(t, "1000", resp.Record.Fields["balance"])
	assert.True(t, resp.Record.Synced)

	rows, _ := f.remote.ListAll(ctx, debtsWithStatement().Sheet)
	assert.Equal(t, "New", rows[0]["Lender"])
}

func TestRecordService_UpdateErrors(t *testing.T) {
	f := newRecordFixture(nil)
	ctx := testContext()

	_, err := f.svc.Update(ctx, "additional_debts", "", models.WriteRecordRequest{Fields: models.Fields{"lender": "x"}})
	assert.ErrorIs(t, err, ErrNoRemoteID)

	_, err = f.svc.Update(ctx, "additional_debts", "R-404", models.WriteRecordRequest{Fields: models.Fields{"lender": "x"}})
	assert.ErrorIs(t, err, store.ErrRecordNotFound)
}

// ── List / PatchField ────────────────────────────────────────────────────────

func TestRecordService_List(t *testing.T) {
	f := newRecordFixture(nil)
	f.directors.seed(models.Record{Fields: models.Fields{"email": "a@x.io"}})

	records, err := f.svc.List(testContext(), "directors")
	require.NoError(t, err)
	assert.Len(t, records, 1)

	_, err = f.svc.List(testContext(), "nope")
	assert.ErrorIs(t, err, ErrUnknownEntity)
}

func TestFieldPatcher_PatchField(t *testing.T) {
	f := newRecordFixture(nil)
	ctx := testContext()

	id := f.debts.seed(models.Record{Remote: models.Confirmed("R-1"), Synced: true, Fields: models.Fields{"lender": "Bank"}})

	err := f.svc.PatchField(ctx, "additional_debts", id, "statement_url", "s3://bucket/additional_debts/s.pdf")
	require.NoError(t, err)
	assert.Equal(t, "s3://bucket/additional_debts/s.pdf", f.debts.get(id).Fields["statement_url"])
	assert.False(t, f.debts.get(id).Synced)

	err = f.svc.PatchField(ctx, "additional_debts", id, "balance", "many")
	assert.ErrorIs(t, err, ErrInvalidField)

	err = f.svc.PatchField(ctx, "additional_debts", id, "colour", "red")
	assert.ErrorIs(t, err, ErrInvalidField)

	err = f.svc.PatchField(ctx, "additional_debts", 99, "lender", "x")
	assert.ErrorIs(t, err, store.ErrRecordNotFound)
}

func TestRecordService_LocalWritesWaitForRecordLock(t *testing.T) {
	f := newRecordFixture(nil)
	ctx := testContext()

	f.remote.put("Additional Debts", models.Row{"Debt ID": "R-7", "Lender": "Old"})
	id := f.debts.seed(models.Record{Remote: models.Confirmed("R-7"), Synced: true, Fields: models.Fields{"lender": "Old"}})

	unlock, err := f.locker.Lock(ctx, LockKey("additional_debts", id))
	require.NoError(t, err)

	busy, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
	defer cancel()
	err = f.svc.PatchField(busy, "additional_debts", id, "lender", "Patched")
	assert.ErrorIs(t, err, ErrLockNotAcquired)

	busy, cancel = context.WithTimeout(ctx, 20*time.Millisecond)
	defer cancel()
	_, err = f.svc.Update(busy, "additional_debts", "R-7", models.WriteRecordRequest{Fields: models.Fields{"lender": "Updated"}})
	assert.ErrorIs(t, err, ErrLockNotAcquired)

	stored := f.debts.get(id)
	assert.Equal(t, "Old", stored.Fields["lender"])
	assert.True(t, stored.Synced)

	unlock()

	require.NoError(t, f.svc.PatchField(ctx, "additional_debts", id, "lender", "Patched"))
	assert.Equal(t, "Patched", f.debts.get(id).Fields["lender"])
}
