package service

import (
	"github.com/MKhiriev/go-sheet-sync/internal/config"
	"github.com/MKhiriev/go-sheet-sync/internal/logger"
	"github.com/MKhiriev/go-sheet-sync/internal/store"
	"github.com/MKhiriev/go-sheet-sync/models"
)

type Services struct {
	AppInfoService AppInfoService
	Reconcilers    *Reconcilers
	RecordService  RecordService
	// Uploads is nil when no object store is configured.
	Uploads UploadQueue
}

// NewServices assembles the services on top of the reconcilers and patcher
// the upload queue was built with.
func NewServices(
	storages *store.Storages,
	reconcilers *Reconcilers,
	patcher *FieldPatcher,
	uploads UploadQueue,
	cfg config.StructuredConfig,
	build models.AppBuildInfo,
	logger *logger.Logger,
) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	var enqueuer UploadEnqueuer
	if uploads != nil {
		enqueuer = uploads
	}

	return &Services{
		AppInfoService: appInfo,
		Reconcilers:    reconcilers,
		RecordService:  NewRecordService(storages, reconcilers, patcher, enqueuer, cfg.Workers, logger),
		Uploads:        uploads,
	}, nil
}
