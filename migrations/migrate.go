// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the goose migrations creating one table per
// catalog entity, in a postgres and a sqlite flavour.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
	"github.com/pressly/goose/v3/database"
)

// Dialect selects the migration directory and goose dialect.
type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

var errNilDB = errors.New("db is nil")

// Migrate applies every pending migration of dialect to db and returns the
// versions it applied, oldest first.
func Migrate(ctx context.Context, db *sql.DB, dialect Dialect) ([]int64, error) {
	if db == nil {
		return nil, fmt.Errorf("migration error: %w", errNilDB)
	}

	gooseDialect, err := dialect.goose()
	if err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}
	dir, err := fs.Sub(embedMigrations, string(dialect))
	if err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	provider, err := goose.NewProvider(gooseDialect, db, dir)
	if err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	applied := make([]int64, 0, len(results))
	for _, r := range results {
		applied = append(applied, r.Source.Version)
	}
	return applied, nil
}

func (d Dialect) goose() (database.Dialect, error) {
	switch d {
	case Postgres:
		return database.DialectPostgres, nil
	case SQLite:
		return database.DialectSQLite3, nil
	default:
		return "", fmt.Errorf("unsupported dialect %q", d)
	}
}
