// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// Placeholder prefixes of the two historical entity families. Identifiers
// persisted without an explicit remote state are classified by these
// prefixes; everything written by this service carries the state explicitly.
const (
	ApplicationPlaceholderPrefix = "TEMP-"
	DebtPlaceholderPrefix        = "AD-"
)

// PlaceholderPrefixes lists every prefix recognised as "not a confirmed
// identifier" for legacy rows.
var PlaceholderPrefixes = []string{ApplicationPlaceholderPrefix, DebtPlaceholderPrefix}

// ErrInvalidFieldValue is returned by [Field.Canonical] when a value cannot be
// parsed as the field's type.
var ErrInvalidFieldValue = errors.New("invalid field value")

// dateLayout is the canonical date representation in both stores.
const dateLayout = "2006-01-02"

// RemoteState is the tag of [RemoteRef].
type RemoteState string

const (
	RemoteUnassigned  RemoteState = "unassigned"
	RemotePlaceholder RemoteState = "placeholder"
	RemoteConfirmed   RemoteState = "confirmed"
)

// RemoteRef links a local record to its remote row. It is a tagged union:
// Unassigned carries no value, Placeholder carries a locally generated
// prefixed token, Confirmed carries the identifier accepted by the remote
// store.
type RemoteRef struct {
	State RemoteState `json:"state"`
	Value string      `json:"id,omitempty"`
}

// Unassigned returns a reference with no remote identifier.
func Unassigned() RemoteRef {
	return RemoteRef{State: RemoteUnassigned}
}

// Placeholder returns a reference holding an unconfirmed token.
func Placeholder(token string) RemoteRef {
	return RemoteRef{State: RemotePlaceholder, Value: token}
}

// Confirmed returns a reference holding a store-confirmed identifier.
func Confirmed(id string) RemoteRef {
	return RemoteRef{State: RemoteConfirmed, Value: id}
}

// ParseRemoteRef restores a reference from its persisted form. An empty or
// unknown state means the row predates explicit states and the identifier is
// classified by prefix.
func ParseRemoteRef(state, value string) RemoteRef {
	value = strings.TrimSpace(value)
	switch RemoteState(state) {
	case RemoteUnassigned:
		return Unassigned()
	case RemotePlaceholder:
		return Placeholder(value)
	case RemoteConfirmed:
		if value == "" {
			return Unassigned()
		}
		return Confirmed(value)
	}

	if value == "" {
		return Unassigned()
	}
	if HasPlaceholderPrefix(value) {
		return Placeholder(value)
	}
	return Confirmed(value)
}

// HasPlaceholderPrefix reports whether id starts with one of
// [PlaceholderPrefixes].
func HasPlaceholderPrefix(id string) bool {
	for _, prefix := range PlaceholderPrefixes {
		if strings.HasPrefix(id, prefix) {
			return true
		}
	}
	return false
}

func (r RemoteRef) IsUnassigned() bool  { return r.State == RemoteUnassigned || r.State == "" }
func (r RemoteRef) IsPlaceholder() bool { return r.State == RemotePlaceholder }
func (r RemoteRef) IsConfirmed() bool   { return r.State == RemoteConfirmed && r.Value != "" }

// ConfirmedID returns the confirmed identifier or "".
func (r RemoteRef) ConfirmedID() string {
	if r.IsConfirmed() {
		return r.Value
	}
	return ""
}

// ProposedID returns the token a placeholder proposes as permanent
// identifier: the placeholder value without its family prefix.
func (r RemoteRef) ProposedID() string {
	if !r.IsPlaceholder() {
		return ""
	}
	for _, prefix := range PlaceholderPrefixes {
		if token, ok := strings.CutPrefix(r.Value, prefix); ok {
			return token
		}
	}
	return r.Value
}

// Fields holds domain values keyed by local column name.
type Fields map[string]string

// Clone returns an independent copy of f.
func (f Fields) Clone() Fields {
	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// Empty reports whether every value is blank.
func (f Fields) Empty() bool {
	for _, v := range f {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// Record is one local row of an entity table.
type Record struct {
	ID        int64     `json:"id"`
	Entity    string    `json:"entity"`
	Remote    RemoteRef `json:"remote"`
	Synced    bool      `json:"synced"`
	Fields    Fields    `json:"fields"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Canonical normalises v according to the field type: numbers are
// re-formatted without trailing zeros and dates are rendered as YYYY-MM-DD.
// Blank values stay blank.
func (f Field) Canonical(v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", nil
	}

	switch f.Type {
	case FieldNumber:
		n, err := strconv.ParseFloat(strings.ReplaceAll(v, ",", ""), 64)
		if err != nil {
			return "", errors.Join(ErrInvalidFieldValue, err)
		}
		return strconv.FormatFloat(n, 'f', -1, 64), nil
	case FieldDate:
		for _, layout := range []string{dateLayout, time.RFC3339, time.RFC3339Nano, "02/01/2006"} {
			if t, err := time.Parse(layout, v); err == nil {
				return t.Format(dateLayout), nil
			}
		}
		return "", ErrInvalidFieldValue
	default:
		return v, nil
	}
}
