// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/MKhiriev/go-sheet-sync/models"
)

// Defaults returns the values used for every field left unset by all
// sources.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version: "dev",
		},
		Storage: Storage{
			DB: DB{MaxOpenConns: 10, MaxIdleConns: 4},
		},
		Remote: Remote{
			Backend:        RemoteBackendHTTP,
			RequestTimeout: 30 * time.Second,
		},
		ObjectStore: ObjectStore{
			TransferTimeout: 2 * time.Minute,
		},
		Server: Server{
			HTTPAddress:     "localhost:8080",
			GRPCAddress:     "localhost:9090",
			RequestTimeout:  time.Minute,
			ShutdownTimeout: 15 * time.Second,
		},
		Workers: Workers{
			QueueCapacity:  256,
			MaxRetries:     models.DefaultMaxUploadRetries,
			RetryBaseDelay: 5 * time.Second,
			InterTaskDelay: time.Second,
			ReconcileDelay: 2 * time.Second,
		},
		Lock: Lock{
			TTL: 30 * time.Second,
		},
		Log: Log{
			Level:      "debug",
			MaxSizeMB:  100,
			MaxBackups: 3,
		},
	}
}
