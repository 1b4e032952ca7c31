// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package catalog loads the entity definitions that parameterize the
// generic record repository and the reconciliation engine.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"regexp"
	"slices"

	"github.com/MKhiriev/go-sheet-sync/models"
	"gopkg.in/yaml.v3"
)

//go:embed entities.yaml
var embedded []byte

// reservedColumns are maintained by the record repository itself.
var reservedColumns = []string{"id", "remote_id", "remote_state", "synced", "created_at", "updated_at"}

var identifier = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// Catalog is an ordered, validated set of entity definitions.
type Catalog struct {
	entities []models.Entity
	byName   map[string]models.Entity
}

type document struct {
	Entities []models.Entity `yaml:"entities"`
}

// Default returns the embedded catalog.
func Default() (*Catalog, error) {
	return Parse(embedded)
}

// Load reads a catalog from path. An empty path returns [Default].
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading entity catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML catalog.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}
	if len(doc.Entities) == 0 {
		return nil, fmt.Errorf("%w: no entities defined", ErrInvalidCatalog)
	}

	c := &Catalog{
		entities: make([]models.Entity, 0, len(doc.Entities)),
		byName:   make(map[string]models.Entity, len(doc.Entities)),
	}
	for _, e := range doc.Entities {
		e = normalize(e)
		if err := validate(e); err != nil {
			return nil, err
		}
		if _, ok := c.byName[e.Name]; ok {
			return nil, fmt.Errorf("%w: duplicate entity %q", ErrInvalidCatalog, e.Name)
		}
		c.entities = append(c.entities, e)
		c.byName[e.Name] = e
	}

	return c, nil
}

// Entities returns the definitions in catalog order.
func (c *Catalog) Entities() []models.Entity {
	return slices.Clone(c.entities)
}

// Names returns the entity names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.entities))
	for _, e := range c.entities {
		names = append(names, e.Name)
	}
	return names
}

// Lookup returns the definition named name.
func (c *Catalog) Lookup(name string) (models.Entity, error) {
	e, ok := c.byName[name]
	if !ok {
		return models.Entity{}, fmt.Errorf("%w: %s", ErrUnknownEntity, name)
	}
	return e, nil
}

func normalize(e models.Entity) models.Entity {
	if e.Table == "" {
		e.Table = e.Name
	}
	if e.Sheet.Name == "" {
		e.Sheet.Name = e.Name
	}
	if e.Sheet.IDColumn == "" {
		e.Sheet.IDColumn = "ID"
	}
	if e.NaturalKey.Policy == "" {
		e.NaturalKey.Policy = models.NaturalKeyDisabled
	}
	if e.UploadFolder == "" {
		e.UploadFolder = e.Name
	}
	for i := range e.Fields {
		if e.Fields[i].Type == "" {
			e.Fields[i].Type = models.FieldString
		}
	}
	return e
}

func validate(e models.Entity) error {
	fail := func(format string, args ...any) error {
		return fmt.Errorf("%w: entity %q: %s", ErrInvalidCatalog, e.Name, fmt.Sprintf(format, args...))
	}

	if !identifier.MatchString(e.Name) || !identifier.MatchString(e.Table) {
		return fail("name and table must be lower_snake_case identifiers")
	}
	if !slices.Contains(models.PlaceholderPrefixes, e.PlaceholderPrefix) {
		return fail("unknown placeholder prefix %q", e.PlaceholderPrefix)
	}
	if len(e.Fields) == 0 {
		return fail("no fields")
	}

	headers := map[string]bool{e.Sheet.IDColumn: true}
	columns := map[string]bool{}
	for _, f := range e.Fields {
		if !identifier.MatchString(f.Column) || slices.Contains(reservedColumns, f.Column) {
			return fail("invalid column %q", f.Column)
		}
		if columns[f.Column] {
			return fail("duplicate column %q", f.Column)
		}
		if f.Header == "" || headers[f.Header] {
			return fail("missing or duplicate header for column %q", f.Column)
		}
		switch f.Type {
		case models.FieldString, models.FieldNumber, models.FieldDate:
		default:
			return fail("unknown type %q of column %q", f.Type, f.Column)
		}
		columns[f.Column] = true
		headers[f.Header] = true
	}

	switch e.NaturalKey.Policy {
	case models.NaturalKeyDisabled:
	case models.NaturalKeyTwoFieldMatch:
		if len(e.NaturalKey.Fields) != 2 {
			return fail("two_field_match needs exactly two fields")
		}
		for _, column := range e.NaturalKey.Fields {
			if !columns[column] {
				return fail("natural key column %q is not a field", column)
			}
		}
	default:
		return fail("unknown natural key policy %q", e.NaturalKey.Policy)
	}

	if e.ParentField != "" && !columns[e.ParentField] {
		return fail("parent field %q is not a field", e.ParentField)
	}

	return nil
}
