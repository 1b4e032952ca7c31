package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/MKhiriev/go-sheet-sync/internal/adapter"
	"github.com/MKhiriev/go-sheet-sync/internal/logger"
	"github.com/MKhiriev/go-sheet-sync/internal/store"
	"github.com/MKhiriev/go-sheet-sync/models"
	"github.com/rs/zerolog"
)

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

func directorsEntity() models.Entity {
	return models.Entity{
		Name:              "directors",
		Table:             "directors",
		Family:            "application",
		PlaceholderPrefix: models.ApplicationPlaceholderPrefix,
		Sheet:             models.Sheet{Name: "Directors", IDColumn: "Director ID", AcceptsProposedID: true},
		Fields: []models.Field{
			{Column: "credit_application_id", Header: "Application ID", Type: models.FieldString},
			{Column: "email", Header: "Email", Type: models.FieldString},
			{Column: "first_name", Header: "First Name", Type: models.FieldString},
			{Column: "date_of_birth", Header: "Date of Birth", Type: models.FieldDate},
		},
		NaturalKey:  models.NaturalKey{Policy: models.NaturalKeyTwoFieldMatch, Fields: []string{"credit_application_id", "email"}},
		ParentField: "credit_application_id",
	}
}

func additionalDebtsEntity() models.Entity {
	return models.Entity{
		Name:              "additional_debts",
		Table:             "additional_debts",
		Family:            "debt",
		PlaceholderPrefix: models.DebtPlaceholderPrefix,
		Sheet:             models.Sheet{Name: "Additional Debts", IDColumn: "Debt ID"},
		Fields: []models.Field{
			{Column: "credit_application_id", Header: "Application ID", Type: models.FieldString},
			{Column: "lender", Header: "Lender", Type: models.FieldString},
			{Column: "balance", Header: "Balance", Type: models.FieldNumber},
		},
		NaturalKey:   models.NaturalKey{Policy: models.NaturalKeyDisabled},
		ParentField:  "credit_application_id",
		UploadFolder: "additional_debts",
	}
}

// ─────────────────────────────────────────────
// Fake: store.RecordRepository
// ─────────────────────────────────────────────

type fakeRepo struct {
	mu      sync.Mutex
	entity  models.Entity
	nextID  int64
	records map[int64]models.Record

	syncFlagErr error
}

func newFakeRepo(entity models.Entity) *fakeRepo {
	return &fakeRepo{entity: entity, records: make(map[int64]models.Record)}
}

// seed stores rec as-is and returns its id.
func (f *fakeRepo) seed(rec models.Record) int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	rec.ID = f.nextID
	rec.Entity = f.entity.Name
	if rec.Fields == nil {
		rec.Fields = models.Fields{}
	}
	f.records[rec.ID] = rec
	return rec.ID
}

func (f *fakeRepo) get(id int64) models.Record {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.records[id]
}

func (f *fakeRepo) Entity() models.Entity { return f.entity }

func (f *fakeRepo) sorted(filter func(models.Record) bool) []models.Record {
	out := make([]models.Record, 0, len(f.records))
	for _, r := range f.records {
		if filter(r) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (f *fakeRepo) FindAll(_ context.Context) ([]models.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sorted(func(models.Record) bool { return true }), nil
}

func (f *fakeRepo) FindUnsynced(_ context.Context, parentKey string) ([]models.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sorted(func(r models.Record) bool {
		if r.Synced {
			return false
		}
		return parentKey == "" || f.entity.ParentField == "" || r.Fields[f.entity.ParentField] == parentKey
	}), nil
}

func (f *fakeRepo) FindByID(_ context.Context, id int64) (models.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.records[id]
	if !ok {
		return models.Record{}, fmt.Errorf("record %d: %w", id, store.ErrRecordNotFound)
	}
	r.Fields = r.Fields.Clone()
	return r, nil
}

func (f *fakeRepo) FindByRemoteID(_ context.Context, remoteID string) (models.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.sorted(func(models.Record) bool { return true }) {
		if remoteID != "" && r.Remote.Value == remoteID {
			return r, nil
		}
	}
	return models.Record{}, store.ErrRecordNotFound
}

func (f *fakeRepo) Create(_ context.Context, rec models.Record) (models.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if rec.Remote.Value != "" {
		for _, r := range f.records {
			if r.Remote.Value == rec.Remote.Value {
				return models.Record{}, store.ErrRemoteIDConflict
			}
		}
	}
	f.nextID++
	rec.ID = f.nextID
	rec.Entity = f.entity.Name
	rec.CreatedAt = time.Now()
	rec.UpdatedAt = rec.CreatedAt
	rec.Fields = rec.Fields.Clone()
	f.records[rec.ID] = rec
	return rec, nil
}

func (f *fakeRepo) Update(_ context.Context, remoteID string, fields models.Fields) (models.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, r := range f.records {
		if r.Remote.Value == remoteID {
			for k, v := range fields {
				r.Fields[k] = v
			}
			r.Synced = false
			f.records[id] = r
			return r, nil
		}
	}
	return models.Record{}, store.ErrRecordNotFound
}

func (f *fakeRepo) PatchField(_ context.Context, id int64, column, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.records[id]
	if !ok {
		return store.ErrRecordNotFound
	}
	r.Fields[column] = value
	r.Synced = false
	f.records[id] = r
	return nil
}

func (f *fakeRepo) SetRemoteRef(_ context.Context, id int64, ref models.RemoteRef) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.records[id]
	if !ok {
		return store.ErrRecordNotFound
	}
	for other, o := range f.records {
		if other != id && ref.Value != "" && o.Remote.Value == ref.Value {
			return store.ErrRemoteIDConflict
		}
	}
	r.Remote = ref
	f.records[id] = r
	return nil
}

func (f *fakeRepo) UpdateSyncFlag(_ context.Context, id int64, synced bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.syncFlagErr != nil {
		return f.syncFlagErr
	}
	r, ok := f.records[id]
	if !ok {
		return store.ErrRecordNotFound
	}
	r.Synced = synced
	f.records[id] = r
	return nil
}

// ─────────────────────────────────────────────
// Fake: adapter.RemoteStore
// ─────────────────────────────────────────────

type fakeRemote struct {
	mu     sync.Mutex
	rows   map[string][]models.Row
	nextID int

	listErr   error
	appendErr func(row models.Row) error
	// updateNotFound makes UpdateByIdentifier report a row deleted after it
	// was listed.
	updateNotFound bool

	appends int
	updates int
	delay   time.Duration
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{rows: make(map[string][]models.Row)}
}

func (f *fakeRemote) put(sheet string, row models.Row) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows[sheet] = append(f.rows[sheet], row)
}

func (f *fakeRemote) count(sheet string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.rows[sheet])
}

func (f *fakeRemote) ListAll(_ context.Context, sheet models.Sheet) ([]models.Row, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]models.Row, 0, len(f.rows[sheet.Name]))
	for _, r := range f.rows[sheet.Name] {
		c := make(models.Row, len(r))
		for k, v := range r {
			c[k] = v
		}
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeRemote) Append(_ context.Context, sheet models.Sheet, row models.Row, proposedID string) (models.Row, error) {
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.appendErr != nil {
		if err := f.appendErr(row); err != nil {
			return nil, err
		}
	}
	f.appends++

	id := proposedID
	if !sheet.AcceptsProposedID || id == "" {
		id = f.freshID(sheet)
	}
	stored := make(models.Row, len(row)+1)
	for k, v := range row {
		stored[k] = v
	}
	stored[sheet.IDColumn] = id
	f.rows[sheet.Name] = append(f.rows[sheet.Name], stored)
	return stored, nil
}

// freshID numbers rows like a sheet would, skipping identifiers that were
// seeded with put. f.mu must be held.
func (f *fakeRemote) freshID(sheet models.Sheet) string {
	for {
		f.nextID++
		id := fmt.Sprintf("R-%d", f.nextID)
		if _, taken := models.FindRow(f.rows[sheet.Name], sheet.IDColumn, id); !taken {
			return id
		}
	}
}

func (f *fakeRemote) UpdateByIdentifier(_ context.Context, sheet models.Sheet, id string, row models.Row) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateNotFound {
		return fmt.Errorf("update %s: %w", id, adapter.ErrRowNotFound)
	}
	for _, r := range f.rows[sheet.Name] {
		if r.ID(sheet.IDColumn) == id {
			for k, v := range row {
				r[k] = v
			}
			f.updates++
			return nil
		}
	}
	return adapter.ErrRowNotFound
}

func newTestEngine(entity models.Entity) (*reconcileService, *fakeRepo, *fakeRemote) {
	repo := newFakeRepo(entity)
	remote := newFakeRemote()
	svc := NewReconcileService(repo, remote, NewMemoryLocker(), logger.Nop()).(*reconcileService)
	return svc, repo, remote
}
