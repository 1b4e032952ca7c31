// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// FieldType describes how a domain value is canonicalized before it is
// written to either store.
type FieldType string

const (
	FieldString FieldType = "string"
	FieldNumber FieldType = "number"
	FieldDate   FieldType = "date"
)

// NaturalKeyPolicy selects how the reconciliation engine searches the remote
// store for a pre-existing row when a record has no confirmed identifier.
type NaturalKeyPolicy string

const (
	// NaturalKeyDisabled is used by entities where duplicates are legitimate
	// (several debts per application, notes, offers). Such records are always
	// appended.
	NaturalKeyDisabled NaturalKeyPolicy = "disabled"

	// NaturalKeyTwoFieldMatch matches a remote row when both configured
	// natural-key fields are equal.
	NaturalKeyTwoFieldMatch NaturalKeyPolicy = "two_field_match"
)

// Field maps one local column to one remote column header.
type Field struct {
	// Column is the relational column name.
	Column string `yaml:"column" json:"column"`
	// Header is the remote sheet column header.
	Header string `yaml:"header" json:"header"`
	// Type controls canonicalization, defaults to string.
	Type FieldType `yaml:"type" json:"type"`
	// File marks fields holding an object-store location filled by the
	// upload queue.
	File bool `yaml:"file,omitempty" json:"file,omitempty"`
}

// NaturalKey is the entity-specific natural-key heuristic.
type NaturalKey struct {
	Policy NaturalKeyPolicy `yaml:"policy" json:"policy"`
	// Fields holds the two local columns compared by NaturalKeyTwoFieldMatch.
	Fields []string `yaml:"fields,omitempty" json:"fields,omitempty"`
}

// Enabled reports whether a natural-key search should run at all.
func (n NaturalKey) Enabled() bool {
	return n.Policy == NaturalKeyTwoFieldMatch && len(n.Fields) == 2
}

// Sheet addresses the remote table of an entity.
type Sheet struct {
	// Name is the sheet (tab) name in the remote store.
	Name string `yaml:"name" json:"name"`
	// IDColumn is the header of the store-visible identifier column.
	IDColumn string `yaml:"id_column" json:"id_column"`
	// AcceptsProposedID reports whether the store keeps a caller-assigned
	// identifier on append instead of assigning its own.
	AcceptsProposedID bool `yaml:"accepts_proposed_id" json:"accepts_proposed_id"`
}

// Entity is the full per-entity configuration of the sync engine. One
// generic repository and one generic reconciliation service are built per
// Entity; nothing else is entity specific.
type Entity struct {
	Name              string     `yaml:"name" json:"name"`
	Table             string     `yaml:"table" json:"table"`
	Family            string     `yaml:"family" json:"family"`
	PlaceholderPrefix string     `yaml:"placeholder_prefix" json:"placeholder_prefix"`
	Sheet             Sheet      `yaml:"sheet" json:"sheet"`
	Fields            []Field    `yaml:"fields" json:"fields"`
	NaturalKey        NaturalKey `yaml:"natural_key" json:"natural_key"`
	// ParentField is the local column holding the parent-entity key, used to
	// filter bulk runs. Empty when the entity has no parent.
	ParentField  string `yaml:"parent_field,omitempty" json:"parent_field,omitempty"`
	UploadFolder string `yaml:"upload_folder,omitempty" json:"upload_folder,omitempty"`
}

// Field returns the mapping for a local column.
func (e Entity) Field(column string) (Field, bool) {
	for _, f := range e.Fields {
		if f.Column == column {
			return f, true
		}
	}
	return Field{}, false
}

// Columns returns the local domain columns in catalog order.
func (e Entity) Columns() []string {
	columns := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		columns = append(columns, f.Column)
	}
	return columns
}

// ToRow translates local fields into a remote row keyed by headers. Columns
// missing from fields are sent as empty strings so the remote row is fully
// overwritten.
func (e Entity) ToRow(fields Fields) Row {
	row := make(Row, len(e.Fields))
	for _, f := range e.Fields {
		row[f.Header] = fields[f.Column]
	}
	return row
}

// FromRow translates a remote row back into local fields.
func (e Entity) FromRow(row Row) Fields {
	fields := make(Fields, len(e.Fields))
	for _, f := range e.Fields {
		if v, ok := row[f.Header]; ok {
			fields[f.Column] = v
		}
	}
	return fields
}
