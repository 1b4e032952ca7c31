package store

import (
	"github.com/MKhiriev/go-sheet-sync/internal/logger"
	"github.com/MKhiriev/go-sheet-sync/models"
)

// Storages holds one record repository per catalog entity, in catalog order.
type Storages struct {
	names        []string
	repositories map[string]RecordRepository
}

// NewStorages builds the repositories of entities on db.
func NewStorages(db *DB, entities []models.Entity, log *logger.Logger) *Storages {
	s := &Storages{
		names:        make([]string, 0, len(entities)),
		repositories: make(map[string]RecordRepository, len(entities)),
	}
	for _, e := range entities {
		s.Add(NewRecordRepository(db, e, log))
	}
	return s
}

// Add registers repo under its entity name.
func (s *Storages) Add(repo RecordRepository) {
	name := repo.Entity().Name
	if _, ok := s.repositories[name]; !ok {
		s.names = append(s.names, name)
	}
	s.repositories[name] = repo
}

// Repository returns the repository of entity.
func (s *Storages) Repository(entity string) (RecordRepository, bool) {
	repo, ok := s.repositories[entity]
	return repo, ok
}

// Names returns the registered entity names in registration order.
func (s *Storages) Names() []string {
	return append([]string(nil), s.names...)
}
