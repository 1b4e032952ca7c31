// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ReconcileAction tells which branch of the reconciliation protocol brought
// a record in sync.
type ReconcileAction string

const (
	// ActionUpdated means the confirmed identifier was found and its row updated.
	ActionUpdated ReconcileAction = "updated"
	// ActionRelinked means a natural-key match was updated and adopted.
	ActionRelinked ReconcileAction = "relinked"
	// ActionCreated means a new remote row was appended.
	ActionCreated ReconcileAction = "created"
)

// ReconcileOutcome is the result of reconciling one record.
type ReconcileOutcome struct {
	RecordID int64           `json:"record_id"`
	Action   ReconcileAction `json:"action"`
	RemoteID string          `json:"remote_id"`
}

// RecordFailure itemises a record that could not be reconciled or imported.
type RecordFailure struct {
	RecordID   int64             `json:"record_id,omitempty"`
	RemoteID   string            `json:"remote_id,omitempty"`
	NaturalKey map[string]string `json:"natural_key,omitempty"`
	Error      string            `json:"error"`
}

// RecordSkip itemises a record left untouched on purpose.
type RecordSkip struct {
	RecordID int64  `json:"record_id,omitempty"`
	RemoteID string `json:"remote_id,omitempty"`
	Reason   string `json:"reason"`
}

// SyncReport aggregates a bulk reconciliation run. Total = Synced + Skipped
// + Errors; Synced = Created + Updated + Relinked.
type SyncReport struct {
	Entity   string          `json:"entity"`
	Total    int             `json:"total"`
	Synced   int             `json:"synced"`
	Created  int             `json:"created"`
	Updated  int             `json:"updated"`
	Relinked int             `json:"relinked"`
	Skipped  int             `json:"skipped"`
	Errors   int             `json:"errors"`
	Skips    []RecordSkip    `json:"skips,omitempty"`
	Failures []RecordFailure `json:"failures,omitempty"`
}

// Count records a successful outcome.
func (r *SyncReport) Count(outcome ReconcileOutcome) {
	r.Synced++
	switch outcome.Action {
	case ActionCreated:
		r.Created++
	case ActionUpdated:
		r.Updated++
	case ActionRelinked:
		r.Relinked++
	}
}

// Skip records a skipped record.
func (r *SyncReport) Skip(skip RecordSkip) {
	r.Skipped++
	r.Skips = append(r.Skips, skip)
}

// Fail records a failed record.
func (r *SyncReport) Fail(failure RecordFailure) {
	r.Errors++
	r.Failures = append(r.Failures, failure)
}

// ImportReport aggregates pulling remote rows into the local store. Total =
// Imported + Updated + Unchanged + Skipped + Errors.
type ImportReport struct {
	Entity    string          `json:"entity"`
	Total     int             `json:"total"`
	Imported  int             `json:"imported"`
	Updated   int             `json:"updated"`
	Unchanged int             `json:"unchanged"`
	Skipped   int             `json:"skipped"`
	Errors    int             `json:"errors"`
	Skips     []RecordSkip    `json:"skips,omitempty"`
	Failures  []RecordFailure `json:"failures,omitempty"`
}

// Skip records a skipped row.
func (r *ImportReport) Skip(skip RecordSkip) {
	r.Skipped++
	r.Skips = append(r.Skips, skip)
}

// Fail records a failed row.
func (r *ImportReport) Fail(failure RecordFailure) {
	r.Errors++
	r.Failures = append(r.Failures, failure)
}

// FieldDiff is one differing column between a local record and its row.
type FieldDiff struct {
	Column string `json:"column"`
	Local  string `json:"local"`
	Remote string `json:"remote"`
}

// RecordMismatch lists the differing columns of one linked pair.
type RecordMismatch struct {
	RecordID int64       `json:"record_id"`
	RemoteID string      `json:"remote_id"`
	Fields   []FieldDiff `json:"fields"`
}

// CompareReport is a read-only diff between both stores.
type CompareReport struct {
	Entity      string           `json:"entity"`
	LocalCount  int              `json:"local_count"`
	RemoteCount int              `json:"remote_count"`
	InSync      int              `json:"in_sync"`
	OnlyLocal   []int64          `json:"only_local,omitempty"`
	OnlyRemote  []string         `json:"only_remote,omitempty"`
	Mismatched  []RecordMismatch `json:"mismatched,omitempty"`
}
