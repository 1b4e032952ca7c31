package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-sheet-sync/internal/adapter"
	"github.com/MKhiriev/go-sheet-sync/internal/catalog"
	"github.com/MKhiriev/go-sheet-sync/internal/config"
	"github.com/MKhiriev/go-sheet-sync/internal/handler"
	"github.com/MKhiriev/go-sheet-sync/internal/logger"
	"github.com/MKhiriev/go-sheet-sync/internal/server"
	"github.com/MKhiriev/go-sheet-sync/internal/service"
	"github.com/MKhiriev/go-sheet-sync/internal/store"
	"github.com/MKhiriev/go-sheet-sync/internal/workers"
	"github.com/MKhiriev/go-sheet-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(build)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("sheet-sync-server").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.New("sheet-sync-server", logger.Options{
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
	})
	log.Debug().Str("http", cfg.Server.HTTPAddress).Str("grpc", cfg.Server.GRPCAddress).Msg("received configs")

	if err = run(cfg, build, log); err != nil {
		log.Err(err).Msg("server stopped")
		os.Exit(1)
	}
}

func run(cfg *config.StructuredConfig, build models.AppBuildInfo, log *logger.Logger) error {
	ctx := log.WithContext(context.Background())

	entities, err := catalog.Load(cfg.Entities.File)
	if err != nil {
		return fmt.Errorf("error loading entity catalog: %w", err)
	}

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}
	defer db.Close()

	if _, err = db.Migrate(ctx); err != nil {
		return fmt.Errorf("error applying migrations: %w", err)
	}

	storages := store.NewStorages(db, entities.Entities(), log)

	remote, err := adapter.NewRemoteStore(cfg.Remote, log)
	if err != nil {
		return fmt.Errorf("error creating remote store: %w", err)
	}

	locker, closeLocker, err := service.NewRecordLocker(ctx, cfg.Lock, log)
	if err != nil {
		return fmt.Errorf("error creating record locker: %w", err)
	}
	defer closeLocker()

	reconcilers := service.NewReconcilers(storages, remote, locker, log)
	patcher := service.NewFieldPatcher(storages, locker, log)

	var background []workers.Worker
	var uploads service.UploadQueue
	if cfg.ObjectStore.Endpoint != "" {
		objects, err := adapter.NewMinioObjectStore(ctx, cfg.ObjectStore, log)
		if err != nil {
			return fmt.Errorf("error creating object store: %w", err)
		}
		queue := workers.NewUploadQueue(cfg.Workers, adapter.NewFileSource(cfg.Workers.SourceRoot), objects, patcher, reconcilers, log)
		uploads = queue
		background = append(background, queue)
	} else {
		log.Warn().Msg("no object store configured, attachments are disabled")
	}

	services, err := service.NewServices(storages, reconcilers, patcher, uploads, *cfg, build, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, workers.NewWorkers(background...), cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	return srv.RunServer(ctx)
}

func printBuildInfo(build models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", build.BuildVersion())
	fmt.Printf("Build date: %s\n", build.BuildDate())
	fmt.Printf("Build commit: %s\n", build.BuildCommit())
}
