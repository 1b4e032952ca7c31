package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates a missing database DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidRemoteConfigs indicates an unknown backend or a backend
	// missing its address.
	ErrInvalidRemoteConfigs = errors.New("invalid remote store configuration")
	// ErrInvalidObjectStoreConfigs indicates a missing endpoint or bucket.
	ErrInvalidObjectStoreConfigs = errors.New("invalid object store configuration")
	// ErrInvalidServerConfigs indicates missing listen address or timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidWorkerConfigs indicates invalid upload queue settings.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidLockConfigs indicates a redis lock without TTL.
	ErrInvalidLockConfigs = errors.New("invalid lock configuration")
)
