package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-sheet-sync/internal/adapter"
	"github.com/MKhiriev/go-sheet-sync/internal/logger"
	"github.com/MKhiriev/go-sheet-sync/internal/store"
	"github.com/MKhiriev/go-sheet-sync/models"
)

// EntityProgressFunc reports bulk progress across entities.
type EntityProgressFunc func(entity string, done, total int)

// Reconcilers holds one [ReconcileService] per entity, in catalog order.
type Reconcilers struct {
	names    []string
	services map[string]ReconcileService

	logger *logger.Logger
}

// NewReconcilers builds an engine for every repository of storages.
func NewReconcilers(storages *store.Storages, remote adapter.RemoteStore, locker RecordLocker, log *logger.Logger) *Reconcilers {
	r := &Reconcilers{services: make(map[string]ReconcileService), logger: log}
	for _, name := range storages.Names() {
		repo, _ := storages.Repository(name)
		r.Add(NewReconcileService(repo, remote, locker, log))
	}
	return r
}

// Add registers svc under its entity name.
func (r *Reconcilers) Add(svc ReconcileService) {
	name := svc.Entity().Name
	if _, ok := r.services[name]; !ok {
		r.names = append(r.names, name)
	}
	r.services[name] = svc
}

// Get returns the engine of entity or [ErrUnknownEntity].
func (r *Reconcilers) Get(entity string) (ReconcileService, error) {
	svc, ok := r.services[entity]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEntity, entity)
	}
	return svc, nil
}

// Names returns the registered entity names in catalog order.
func (r *Reconcilers) Names() []string {
	return append([]string(nil), r.names...)
}

// Entities returns the registered entity definitions in catalog order.
func (r *Reconcilers) Entities() []models.Entity {
	entities := make([]models.Entity, 0, len(r.names))
	for _, name := range r.names {
		entities = append(entities, r.services[name].Entity())
	}
	return entities
}

// ReconcileRecord reconciles one record of entity. It is the callback of the
// upload queue.
func (r *Reconcilers) ReconcileRecord(ctx context.Context, entity string, id int64) (models.ReconcileOutcome, error) {
	svc, err := r.Get(entity)
	if err != nil {
		return models.ReconcileOutcome{}, err
	}
	return svc.ReconcileByID(ctx, id)
}

// SyncAll runs ReconcileAllUnsynced for every entity. A failure to load one
// entity is reported in its report and does not stop the others.
func (r *Reconcilers) SyncAll(ctx context.Context, progress EntityProgressFunc) (models.SyncAllResponse, error) {
	var resp models.SyncAllResponse

	for _, name := range r.names {
		var entityProgress ProgressFunc
		if progress != nil {
			entityProgress = func(done, total int) { progress(name, done, total) }
		}

		report, err := r.services[name].ReconcileAllUnsynced(ctx, "", entityProgress)
		if err != nil {
			if ctx.Err() != nil {
				resp.Add(report)
				return resp, ctx.Err()
			}
			r.logger.Err(err).Str("func", "Reconcilers.SyncAll").Str("entity", name).Msg("entity sync failed")
			report.Fail(models.RecordFailure{Error: err.Error()})
		}
		resp.Add(report)
	}

	return resp, nil
}
