// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-sheet-sync/internal/config"
	"github.com/MKhiriev/go-sheet-sync/internal/logger"
	"github.com/MKhiriev/go-sheet-sync/migrations"
)

// ErrorClassificator tells retryable driver errors apart from permanent ones
// and recognises unique-constraint violations of the active dialect.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	IsUniqueViolation(err error) bool
}

// DB is a database handle bound to one dialect.
type DB struct {
	*sql.DB
	dialect            migrations.Dialect
	placeholder        sq.PlaceholderFormat
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

const (
	maxAttempts    = 3
	retryBaseDelay = 100 * time.Millisecond
)

// NewConnect opens the database selected by the DSN scheme:
// postgres:// and postgresql:// use pgx, sqlite:// and file: use sqlite3.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch {
	case strings.HasPrefix(cfg.DSN, "postgres://"), strings.HasPrefix(cfg.DSN, "postgresql://"):
		return NewConnectPostgres(ctx, cfg, log)
	case strings.HasPrefix(cfg.DSN, "sqlite://"):
		return NewConnectSQLite(ctx, strings.TrimPrefix(cfg.DSN, "sqlite://"), log)
	case strings.HasPrefix(cfg.DSN, "file:"):
		return NewConnectSQLite(ctx, cfg.DSN, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDSN, redactDSN(cfg.DSN))
	}
}

// Migrate applies the embedded migrations of the handle's dialect and
// returns how many were pending.
func (db *DB) Migrate(ctx context.Context) (int, error) {
	applied, err := migrations.Migrate(ctx, db.DB, db.dialect)
	if err != nil {
		return 0, err
	}
	db.logger.Info().
		Str("func", "DB.Migrate").
		Str("dialect", string(db.dialect)).
		Ints64("versions", applied).
		Msg("migrations applied")
	return len(applied), nil
}

// Dialect returns the SQL dialect of the connection.
func (db *DB) Dialect() migrations.Dialect {
	return db.dialect
}

func (db *DB) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(db.placeholder)
}

// withRetry runs op again while the classifier reports a retryable error.
func (db *DB) withRetry(ctx context.Context, op func() error) error {
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err = op(); err == nil || db.errorClassificator == nil || db.errorClassificator.Classify(err) != Retryable {
			return err
		}
		if attempt == maxAttempts {
			break
		}

		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "DB.withRetry").
			Int("attempt", attempt).
			Msg("retryable database error")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(retryBaseDelay * time.Duration(attempt)):
		}
	}
	return err
}

func (db *DB) isUniqueViolation(err error) bool {
	return db.errorClassificator != nil && db.errorClassificator.IsUniqueViolation(err)
}

func redactDSN(dsn string) string {
	if i := strings.Index(dsn, "://"); i >= 0 {
		return dsn[:i+3] + "..."
	}
	return "..."
}
