// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// WriteRecordRequest is the body of record create and update calls.
type WriteRecordRequest struct {
	Fields      Fields       `json:"fields"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

// WriteRecordResponse reports the stored record and the outcome of the
// immediate reconciliation attempt. SyncError is set when the record was
// saved but stays unsynced.
type WriteRecordResponse struct {
	Record    Record            `json:"record"`
	Sync      *ReconcileOutcome `json:"sync,omitempty"`
	SyncError string            `json:"sync_error,omitempty"`
	Uploads   []string          `json:"uploads,omitempty"`
}

// RecordsResponse lists records of an entity.
type RecordsResponse struct {
	Entity  string   `json:"entity"`
	Records []Record `json:"records"`
	Length  int      `json:"length"`
}

// SyncAllResponse carries one report per entity.
type SyncAllResponse struct {
	Reports []SyncReport `json:"reports"`
	Total   int          `json:"total"`
	Synced  int          `json:"synced"`
	Skipped int          `json:"skipped"`
	Errors  int          `json:"errors"`
}

// Add appends report and updates the totals.
func (r *SyncAllResponse) Add(report SyncReport) {
	r.Reports = append(r.Reports, report)
	r.Total += report.Total
	r.Synced += report.Synced
	r.Skipped += report.Skipped
	r.Errors += report.Errors
}

// EntitiesResponse lists the configured entities.
type EntitiesResponse struct {
	Entities []Entity `json:"entities"`
	Length   int      `json:"length"`
}

// ErrorResponse is the body of every failed API call.
type ErrorResponse struct {
	Error string `json:"error"`
}
