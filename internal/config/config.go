// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for
// go-sheet-sync. It aggregates all sub-configurations and is populated by
// merging values from a .env file, environment variables, command-line flags
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as token parameters and the
	// application version.
	App App `envPrefix:"APP_"`

	// Storage holds the relational database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Remote selects and configures the spreadsheet-backed remote store.
	Remote Remote `envPrefix:"REMOTE_"`

	// ObjectStore configures the bucket receiving uploaded attachments.
	ObjectStore ObjectStore `envPrefix:"OBJECT_STORE_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Workers tunes the upload queue.
	Workers Workers `envPrefix:"WORKERS_"`

	// Lock selects the record locker used by reconciliation.
	Lock Lock `envPrefix:"LOCK_"`

	// Log configures the zerolog output.
	Log Log `envPrefix:"LOG_"`

	// Entities points to an alternative entity catalog.
	Entities Entities `envPrefix:"ENTITIES_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for the relational store.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey is the secret used to verify bearer tokens on the
	// orchestration routes. Empty disables the check.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the expected "iss" claim of bearer tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// Version is the semantic version string of the running application.
	// Exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address of the HTTP server ("host:port").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address of the gRPC health server.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds the graceful shutdown of both transports.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the dialect by scheme: "postgres://" / "postgresql://" use
	// pgx, "sqlite://" / "file:" use go-sqlite3.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// MaxOpenConns and MaxIdleConns size the Postgres pool. SQLite always
	// runs with a single connection.
	// Env: STORAGE_DB_MAX_OPEN_CONNS, STORAGE_DB_MAX_IDLE_CONNS
	MaxOpenConns int `env:"MAX_OPEN_CONNS"`
	MaxIdleConns int `env:"MAX_IDLE_CONNS"`

	// ConnMaxLifetime recycles pooled connections; zero keeps them forever.
	// Env: STORAGE_DB_CONN_MAX_LIFETIME
	ConnMaxLifetime time.Duration `env:"CONN_MAX_LIFETIME"`
}

// Remote store backends.
const (
	RemoteBackendHTTP     = "http"
	RemoteBackendWorkbook = "xlsx"
)

// Remote configures the spreadsheet-backed store.
type Remote struct {
	// Backend is "http" (spreadsheet API) or "xlsx" (local workbook file).
	// Env: REMOTE_BACKEND
	Backend string `env:"BACKEND"`

	// BaseURL is the spreadsheet API root for the http backend.
	// Env: REMOTE_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// APIKey is sent as a bearer token to the spreadsheet API.
	// Env: REMOTE_API_KEY
	APIKey string `env:"API_KEY"`

	// RequestTimeout bounds every remote call.
	// Env: REMOTE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// WorkbookPath is the workbook file used by the xlsx backend.
	// Env: REMOTE_WORKBOOK_PATH
	WorkbookPath string `env:"WORKBOOK_PATH"`
}

// ObjectStore configures the MinIO / S3 bucket receiving attachments.
type ObjectStore struct {
	Endpoint  string `env:"ENDPOINT"`
	AccessKey string `env:"ACCESS_KEY"`
	SecretKey string `env:"SECRET_KEY"`
	Bucket    string `env:"BUCKET"`
	Region    string `env:"REGION"`
	UseSSL    bool   `env:"USE_SSL"`
	// PublicBaseURL, when set, prefixes returned object locations instead of
	// the s3://bucket/key form.
	PublicBaseURL string `env:"PUBLIC_BASE_URL"`
	// TransferTimeout bounds a single upload.
	TransferTimeout time.Duration `env:"TRANSFER_TIMEOUT"`
}

// Workers holds the upload queue settings.
type Workers struct {
	// QueueCapacity bounds the number of pending upload tasks.
	QueueCapacity int `env:"QUEUE_CAPACITY"`
	// MaxRetries is the retry budget of one task after its first attempt.
	MaxRetries int `env:"MAX_RETRIES"`
	// RetryBaseDelay is multiplied by the retry counter before re-enqueueing.
	RetryBaseDelay time.Duration `env:"RETRY_BASE_DELAY"`
	// InterTaskDelay is waited after every processed task.
	InterTaskDelay time.Duration `env:"INTER_TASK_DELAY"`
	// ReconcileDelay is waited between a successful upload and the
	// reconciliation of the owning record.
	ReconcileDelay time.Duration `env:"RECONCILE_DELAY"`
	// SourceRoot resolves relative attachment paths.
	SourceRoot string `env:"SOURCE_ROOT"`
}

// Lock selects the record locker.
type Lock struct {
	// RedisURL switches reconciliation locks to redis when set
	// (e.g. "redis://localhost:6379/0").
	RedisURL string `env:"REDIS_URL"`
	// TTL bounds how long a redis lock is held if its owner dies.
	TTL time.Duration `env:"TTL"`
}

// Log configures logging.
type Log struct {
	Level      string `env:"LEVEL"`
	File       string `env:"FILE"`
	MaxSizeMB  int    `env:"MAX_SIZE_MB"`
	MaxBackups int    `env:"MAX_BACKUPS"`
}

// Entities points to the entity catalog.
type Entities struct {
	// File replaces the embedded catalog when set.
	File string `env:"FILE"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order (later sources
// override earlier non-zero fields):
//  1. .env file in the working directory (if present)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 1-3)
//
// Unset fields are filled with defaults before validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags(osArgs()).
		withJSON().
		withDefaults().
		build(validateServer)
}

// GetCLIConfig loads the configuration used by syncctl: .env, environment
// and an optional JSON file. jsonPath, when non-empty, takes precedence over
// the CONFIG variable. The object store and HTTP addresses are not required.
func GetCLIConfig(jsonPath string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		with(&StructuredConfig{JSONFilePath: jsonPath}).
		withJSON().
		withDefaults().
		build(validateCommon)
}
