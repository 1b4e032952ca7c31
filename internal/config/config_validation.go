// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validateCommon checks the settings every entry point needs: a database
// and a usable remote store.
func validateCommon(cfg *StructuredConfig) error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	switch cfg.Remote.Backend {
	case RemoteBackendHTTP:
		if cfg.Remote.BaseURL == "" || cfg.Remote.RequestTimeout <= 0 {
			return ErrInvalidRemoteConfigs
		}
	case RemoteBackendWorkbook:
		if cfg.Remote.WorkbookPath == "" {
			return ErrInvalidRemoteConfigs
		}
	default:
		return ErrInvalidRemoteConfigs
	}

	w := cfg.Workers
	if w.QueueCapacity <= 0 || w.MaxRetries < 0 || w.RetryBaseDelay < 0 || w.InterTaskDelay < 0 || w.ReconcileDelay < 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Lock.RedisURL != "" && cfg.Lock.TTL <= 0 {
		return ErrInvalidLockConfigs
	}

	return nil
}

// validateServer additionally checks the listen addresses. The object store
// is optional, but a configured endpoint needs a bucket.
func validateServer(cfg *StructuredConfig) error {
	if err := validateCommon(cfg); err != nil {
		return err
	}

	if cfg.ObjectStore.Endpoint != "" && cfg.ObjectStore.Bucket == "" {
		return ErrInvalidObjectStoreConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}
