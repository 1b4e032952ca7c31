// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound clients of go-sheet-sync: the
// spreadsheet-backed remote store, the object store receiving attachments and
// the local file source feeding it.
//
// Two [RemoteStore] implementations ship with the package: an HTTP client for
// a spreadsheet API ([NewHTTPRemoteStore]) and a workbook file client
// ([NewWorkbookRemoteStore]) used for local runs and imports. [ObjectStore] is
// backed by MinIO / S3 ([NewMinioObjectStore]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for backend-agnostic error
// handling (e.g. [ErrRowNotFound] for a stale identifier).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-sheet-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// RemoteStore is the record-oriented system of record. Rows are flat
// header→value maps keyed by the sheet's identifier column; their order is
// never assumed stable.
type RemoteStore interface {
	// ListAll returns every row of the sheet.
	ListAll(ctx context.Context, sheet models.Sheet) ([]models.Row, error)

	// Append adds row and returns it as stored, including the identifier the
	// store assigned. proposedID is a hint honoured only by sheets that accept
	// caller-assigned identifiers; an empty value means no proposal.
	Append(ctx context.Context, sheet models.Sheet, row models.Row, proposedID string) (models.Row, error)

	// UpdateByIdentifier overwrites the row addressed by id. It returns
	// [ErrRowNotFound] when no such row exists.
	UpdateByIdentifier(ctx context.Context, sheet models.Sheet, id string, row models.Row) error
}

// ObjectStore persists attachment bytes and returns a location string that
// is later written into the owning record.
type ObjectStore interface {
	Transfer(ctx context.Context, data []byte, name, mimeType, folder string) (string, error)
}

// FileSource reads attachment bytes from where producers left them.
type FileSource interface {
	ReadBytes(path string) ([]byte, error)
}
