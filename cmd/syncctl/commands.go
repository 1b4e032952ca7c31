package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-sheet-sync/internal/adapter"
	"github.com/MKhiriev/go-sheet-sync/internal/catalog"
	"github.com/MKhiriev/go-sheet-sync/internal/config"
	"github.com/MKhiriev/go-sheet-sync/internal/logger"
	"github.com/MKhiriev/go-sheet-sync/internal/service"
	"github.com/MKhiriev/go-sheet-sync/internal/store"
	"github.com/MKhiriev/go-sheet-sync/internal/utils"
	"github.com/MKhiriev/go-sheet-sync/models"
	"github.com/urfave/cli/v2"
)

var errTokenSignKeyNotSet = errors.New("APP_TOKEN_SIGN_KEY is not set")

// runtime holds what the reconciliation commands share.
type runtime struct {
	cfg         *config.StructuredConfig
	db          *store.DB
	reconcilers *service.Reconcilers
	closers     []func() error
	logger      *logger.Logger
}

func loadConfig(c *cli.Context) (*config.StructuredConfig, *logger.Logger, error) {
	cfg, err := config.GetCLIConfig(c.String("config"))
	if err != nil {
		return nil, nil, fmt.Errorf("error getting configs: %w", err)
	}

	log := logger.New("syncctl", logger.Options{
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
	})
	return cfg, log, nil
}

func newRuntime(c *cli.Context) (*runtime, context.Context, error) {
	cfg, log, err := loadConfig(c)
	if err != nil {
		return nil, nil, err
	}
	ctx := log.WithContext(c.Context)

	entities, err := catalog.Load(cfg.Entities.File)
	if err != nil {
		return nil, nil, err
	}

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, nil, err
	}
	rt := &runtime{cfg: cfg, db: db, logger: log, closers: []func() error{db.Close}}

	remote, err := adapter.NewRemoteStore(cfg.Remote, log)
	if err != nil {
		rt.close()
		return nil, nil, err
	}

	locker, closeLocker, err := service.NewRecordLocker(ctx, cfg.Lock, log)
	if err != nil {
		rt.close()
		return nil, nil, err
	}
	rt.closers = append(rt.closers, closeLocker)

	rt.reconcilers = service.NewReconcilers(store.NewStorages(db, entities.Entities(), log), remote, locker, log)
	return rt, ctx, nil
}

func (rt *runtime) close() {
	for i := len(rt.closers) - 1; i >= 0; i-- {
		if err := rt.closers[i](); err != nil {
			rt.logger.Err(err).Str("func", "runtime.close").Send()
		}
	}
}

// entities resolves the --entity flag; empty means every entity.
func (rt *runtime) entities(name string) ([]service.ReconcileService, error) {
	names := rt.reconcilers.Names()
	if name != "" {
		names = []string{name}
	}

	out := make([]service.ReconcileService, 0, len(names))
	for _, n := range names {
		svc, err := rt.reconcilers.Get(n)
		if err != nil {
			return nil, err
		}
		out = append(out, svc)
	}
	return out, nil
}

func migrateSchema(c *cli.Context) error {
	cfg, log, err := loadConfig(c)
	if err != nil {
		return err
	}

	db, err := store.NewConnect(log.WithContext(c.Context), cfg.Storage.DB, log)
	if err != nil {
		return err
	}
	defer db.Close()

	applied, err := db.Migrate(c.Context)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "%d migrations applied\n", applied)
	return nil
}

func listEntities(c *cli.Context) error {
	cfg, _, err := loadConfig(c)
	if err != nil {
		return err
	}
	entities, err := catalog.Load(cfg.Entities.File)
	if err != nil {
		return err
	}

	for _, e := range entities.Entities() {
		fmt.Fprintf(c.App.Writer, "%-28s sheet=%q id=%q fields=%d\n", e.Name, e.Sheet.Name, e.Sheet.IDColumn, len(e.Fields))
	}
	return nil
}

func syncRecords(c *cli.Context) error {
	if c.String("parent") != "" && c.String("entity") == "" {
		return errors.New("--parent requires --entity")
	}

	rt, ctx, err := newRuntime(c)
	if err != nil {
		return err
	}
	defer rt.close()

	if c.String("entity") == "" {
		bars := newEntityBars(c.App.ErrWriter, c.Bool("quiet"))
		resp, err := rt.reconcilers.SyncAll(ctx, bars.progress)
		bars.finish()
		if err != nil {
			return err
		}
		return printJSON(c, resp)
	}

	svc, err := rt.reconcilers.Get(c.String("entity"))
	if err != nil {
		return err
	}
	bar := newBar(c.App.ErrWriter, svc.Entity().Name, c.Bool("quiet"))
	report, err := svc.ReconcileAllUnsynced(ctx, c.String("parent"), bar.progress)
	bar.finish()
	if err != nil {
		return err
	}
	return printJSON(c, report)
}

func migrateAll(c *cli.Context) error {
	rt, ctx, err := newRuntime(c)
	if err != nil {
		return err
	}
	defer rt.close()

	services, err := rt.entities(c.String("entity"))
	if err != nil {
		return err
	}

	var resp models.SyncAllResponse
	for _, svc := range services {
		bar := newBar(c.App.ErrWriter, svc.Entity().Name, c.Bool("quiet"))
		report, err := svc.MigrateAll(ctx, bar.progress)
		bar.finish()
		if err != nil {
			return fmt.Errorf("%s: %w", svc.Entity().Name, err)
		}
		resp.Add(report)
	}
	return printJSON(c, resp)
}

func importRows(c *cli.Context) error {
	rt, ctx, err := newRuntime(c)
	if err != nil {
		return err
	}
	defer rt.close()

	svc, err := rt.reconcilers.Get(c.String("entity"))
	if err != nil {
		return err
	}
	report, err := svc.Import(ctx)
	if err != nil {
		return err
	}
	return printJSON(c, report)
}

func compare(c *cli.Context) error {
	rt, ctx, err := newRuntime(c)
	if err != nil {
		return err
	}
	defer rt.close()

	svc, err := rt.reconcilers.Get(c.String("entity"))
	if err != nil {
		return err
	}
	report, err := svc.Compare(ctx)
	if err != nil {
		return err
	}
	return printJSON(c, report)
}

func uploadStatus(c *cli.Context) error {
	client := utils.NewHTTPClient(c.String("server"), 0)

	req := client.R().SetContext(c.Context).SetResult(&models.UploadQueueStatus{}).SetError(&models.ErrorResponse{})
	if token := c.String("token"); token != "" {
		req.SetAuthToken(token)
	}

	resp, err := req.Get("/api/uploads/status")
	if err != nil {
		return fmt.Errorf("request upload status: %w", err)
	}
	if resp.IsError() {
		if e, ok := resp.Error().(*models.ErrorResponse); ok && e.Error != "" {
			return fmt.Errorf("server answered %d: %s", resp.StatusCode(), e.Error)
		}
		return fmt.Errorf("server answered %d", resp.StatusCode())
	}

	status := resp.Result().(*models.UploadQueueStatus)
	fmt.Fprintf(c.App.Writer, "queued: %d  in flight: %t  retrying: %d\n", status.Depth, status.InFlight, status.Retrying)
	for _, task := range status.Pending {
		fmt.Fprintf(c.App.Writer, "  %-10s %-36s %s (retries %d)\n", task.State, task.ID, task.Name, task.RetryCount)
	}
	return nil
}

func issueToken(c *cli.Context) error {
	cfg, _, err := loadConfig(c)
	if err != nil {
		return err
	}
	if cfg.App.TokenSignKey == "" {
		return errTokenSignKeyNotSet
	}

	token, err := utils.GenerateJWTToken(cfg.App.TokenIssuer, c.String("operator"), c.Duration("ttl"), cfg.App.TokenSignKey)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, token.SignedString)
	return nil
}

func printJSON(c *cli.Context, v any) error {
	enc := json.NewEncoder(c.App.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
