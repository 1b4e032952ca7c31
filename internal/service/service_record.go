package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/go-sheet-sync/internal/config"
	"github.com/MKhiriev/go-sheet-sync/internal/logger"
	"github.com/MKhiriev/go-sheet-sync/internal/store"
	"github.com/MKhiriev/go-sheet-sync/internal/utils"
	"github.com/MKhiriev/go-sheet-sync/internal/validators"
	"github.com/MKhiriev/go-sheet-sync/models"
)

type idGenerator interface {
	Generate() string
}

// FieldPatcher writes single column values, used for object-store locations
// delivered by the upload queue. Writes hold the same per-record lock as
// reconciliation.
type FieldPatcher struct {
	storages *store.Storages
	locker   RecordLocker

	logger *logger.Logger
}

func NewFieldPatcher(storages *store.Storages, locker RecordLocker, log *logger.Logger) *FieldPatcher {
	return &FieldPatcher{storages: storages, locker: locker, logger: log}
}

// PatchField validates and stores one value. The record's sync flag is
// cleared so the next reconciliation pushes the value.
func (p *FieldPatcher) PatchField(ctx context.Context, entity string, id int64, column, value string) error {
	repo, err := repository(p.storages, entity)
	if err != nil {
		return err
	}

	fields := models.Fields{column: value}
	if err = validators.NewRecordValidator(repo.Entity()).Validate(ctx, fields); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidField, err)
	}
	canonical, err := canonicalFields(repo.Entity(), fields)
	if err != nil {
		return err
	}

	unlock, err := p.locker.Lock(ctx, LockKey(repo.Entity().Name, id))
	if err != nil {
		return err
	}
	defer unlock()

	return repo.PatchField(ctx, id, column, canonical[column])
}

type recordService struct {
	storages     *store.Storages
	reconcilers  *Reconcilers
	patcher      *FieldPatcher
	uploads      UploadEnqueuer
	placeholders idGenerator
	maxRetries   int

	logger *logger.Logger
}

// NewRecordService constructs a [RecordService]. uploads may be nil when no
// object store is configured; attachments are then rejected.
func NewRecordService(
	storages *store.Storages,
	reconcilers *Reconcilers,
	patcher *FieldPatcher,
	uploads UploadEnqueuer,
	cfg config.Workers,
	log *logger.Logger,
) RecordService {
	return &recordService{
		storages:     storages,
		reconcilers:  reconcilers,
		patcher:      patcher,
		uploads:      uploads,
		placeholders: utils.NewUUIDGenerator(),
		maxRetries:   cfg.MaxRetries,
		logger:       log,
	}
}

func (s *recordService) List(ctx context.Context, entity string) ([]models.Record, error) {
	repo, err := repository(s.storages, entity)
	if err != nil {
		return nil, err
	}
	return repo.FindAll(ctx)
}

// Create stores a new record under a fresh placeholder, enqueues its
// attachments and reconciles it immediately. A reconciliation failure leaves
// the record unsynced and is reported in the response, not as an error.
func (s *recordService) Create(ctx context.Context, entity string, req models.WriteRecordRequest) (models.WriteRecordResponse, error) {
	repo, fields, err := s.prepare(ctx, entity, req)
	if err != nil {
		return models.WriteRecordResponse{}, err
	}

	token := repo.Entity().PlaceholderPrefix + s.placeholders.Generate()
	created, err := repo.Create(ctx, models.Record{Remote: models.Placeholder(token), Fields: fields})
	if err != nil {
		return models.WriteRecordResponse{}, fmt.Errorf("create %s: %w", entity, err)
	}

	return s.followUp(ctx, repo, created, req.Attachments)
}

// Update overwrites the record linked to remoteID, then follows up like
// Create.
func (s *recordService) Update(ctx context.Context, entity, remoteID string, req models.WriteRecordRequest) (models.WriteRecordResponse, error) {
	remoteID = strings.TrimSpace(remoteID)
	if remoteID == "" {
		return models.WriteRecordResponse{}, ErrNoRemoteID
	}

	repo, fields, err := s.prepare(ctx, entity, req)
	if err != nil {
		return models.WriteRecordResponse{}, err
	}

	updated, err := s.update(ctx, repo, remoteID, fields)
	if err != nil {
		return models.WriteRecordResponse{}, fmt.Errorf("update %s %s: %w", entity, remoteID, err)
	}

	return s.followUp(ctx, repo, updated, req.Attachments)
}

// update resolves the local record behind remoteID and writes it under the
// record lock. The lock is released before reconciliation takes it again.
func (s *recordService) update(ctx context.Context, repo store.RecordRepository, remoteID string, fields models.Fields) (models.Record, error) {
	current, err := repo.FindByRemoteID(ctx, remoteID)
	if err != nil {
		return models.Record{}, err
	}

	unlock, err := s.patcher.locker.Lock(ctx, LockKey(repo.Entity().Name, current.ID))
	if err != nil {
		return models.Record{}, err
	}
	defer unlock()

	return repo.Update(ctx, remoteID, fields)
}

func (s *recordService) PatchField(ctx context.Context, entity string, id int64, column, value string) error {
	return s.patcher.PatchField(ctx, entity, id, column, value)
}

func (s *recordService) prepare(ctx context.Context, entity string, req models.WriteRecordRequest) (store.RecordRepository, models.Fields, error) {
	repo, err := repository(s.storages, entity)
	if err != nil {
		return nil, nil, err
	}

	err = validators.NewRecordValidator(repo.Entity()).
		Validate(ctx, req, validators.FieldValues, validators.FieldNotEmpty, validators.FieldAttachments)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidField, err)
	}
	if len(req.Attachments) > 0 && s.uploads == nil {
		return nil, nil, fmt.Errorf("%w: attachments are not accepted without an object store", ErrInvalidField)
	}

	fields, err := canonicalFields(repo.Entity(), req.Fields)
	if err != nil {
		return nil, nil, err
	}
	return repo, fields, nil
}

func (s *recordService) followUp(ctx context.Context, repo store.RecordRepository, rec models.Record, attachments []models.Attachment) (models.WriteRecordResponse, error) {
	log := logger.FromContext(ctx)
	entity := repo.Entity()
	resp := models.WriteRecordResponse{Record: rec}

	for _, a := range attachments {
		task := s.uploadTask(entity, rec.ID, a)
		if err := s.uploads.Enqueue(task); err != nil {
			log.Err(err).
				Str("func", "recordService.followUp").
				Str("entity", entity.Name).
				Int64("record_id", rec.ID).
				Str("field", a.Field).
				Msg("failed to enqueue attachment")
			continue
		}
		resp.Uploads = append(resp.Uploads, task.ID)
	}

	reconciler, err := s.reconcilers.Get(entity.Name)
	if err != nil {
		return resp, err
	}
	outcome, err := reconciler.Reconcile(ctx, rec)
	if err != nil {
		log.Warn().
			Err(err).
			Str("func", "recordService.followUp").
			Str("entity", entity.Name).
			Int64("record_id", rec.ID).
			Msg("record saved but not synced")
		resp.SyncError = err.Error()
	} else {
		resp.Sync = &outcome
	}

	current, err := repo.FindByID(ctx, rec.ID)
	if err != nil {
		return resp, fmt.Errorf("reload %s %d: %w", entity.Name, rec.ID, err)
	}
	resp.Record = current

	return resp, nil
}

func (s *recordService) uploadTask(entity models.Entity, recordID int64, a models.Attachment) models.UploadTask {
	name := strings.TrimSpace(a.FileName)
	if name == "" {
		name = filepath.Base(a.Path)
	}
	folder := strings.TrimSpace(a.Folder)
	if folder == "" {
		folder = entity.UploadFolder
	}

	return models.UploadTask{
		ID:         s.placeholders.Generate(),
		SourcePath: a.Path,
		FileName:   name,
		Folder:     folder,
		MimeType:   a.MimeType,
		Entity:     entity.Name,
		RecordID:   recordID,
		Field:      a.Field,
		MaxRetries: s.maxRetries,
		EnqueuedAt: time.Now(),
	}
}

func repository(storages *store.Storages, entity string) (store.RecordRepository, error) {
	repo, ok := storages.Repository(entity)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEntity, entity)
	}
	return repo, nil
}
