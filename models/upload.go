// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DefaultMaxUploadRetries is the retry budget of an upload task.
const DefaultMaxUploadRetries = 3

// UploadState is the lifecycle position of an upload task.
type UploadState string

const (
	UploadQueued    UploadState = "queued"
	UploadInFlight  UploadState = "in_flight"
	UploadRetrying  UploadState = "retrying"
	UploadCompleted UploadState = "completed"
	UploadAbandoned UploadState = "abandoned"
)

// UploadTask is one pending file transfer owned by the upload queue.
type UploadTask struct {
	ID         string    `json:"id"`
	SourcePath string    `json:"source_path"`
	FileName   string    `json:"file_name"`
	Folder     string    `json:"folder"`
	MimeType   string    `json:"mime_type"`
	Entity     string    `json:"entity"`
	RecordID   int64     `json:"record_id"`
	Field      string    `json:"field"`
	RetryCount int       `json:"retry_count"`
	MaxRetries int       `json:"max_retries"`
	EnqueuedAt time.Time `json:"enqueued_at"`
}

// UploadTaskSummary is the observable view of a pending task.
type UploadTaskSummary struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	RetryCount int         `json:"retry_count"`
	State      UploadState `json:"state"`
}

// UploadQueueStatus is returned by the queue status endpoint.
type UploadQueueStatus struct {
	Depth    int                 `json:"depth"`
	InFlight bool                `json:"in_flight"`
	Retrying int                 `json:"retrying"`
	Pending  []UploadTaskSummary `json:"pending"`
}

// Attachment is a file attached to a create or update request.
type Attachment struct {
	// Field is the local column receiving the object-store location.
	Field    string `json:"field"`
	Path     string `json:"path"`
	FileName string `json:"file_name,omitempty"`
	MimeType string `json:"mime_type,omitempty"`
	Folder   string `json:"folder,omitempty"`
}
