package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-sheet-sync/models"
)

// Field name constants used to restrict validation of a
// [models.WriteRecordRequest] to a subset of its parts.
const (
	// FieldValues targets the column values of the request.
	FieldValues = "values"

	// FieldNotEmpty requires at least one non-blank value.
	FieldNotEmpty = "not_empty"

	// FieldAttachments targets the attached files.
	FieldAttachments = "attachments"
)

// RecordValidator checks write requests against one entity definition.
type RecordValidator struct {
	entity models.Entity
}

func NewRecordValidator(entity models.Entity) Validator {
	return &RecordValidator{entity: entity}
}

func (v *RecordValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.WriteRecordRequest:
		return v.validateWriteRequest(ctx, value, fields...)
	case *models.WriteRecordRequest:
		return v.validateWriteRequest(ctx, *value, fields...)

	case models.Fields:
		return v.validateValues(value)

	case models.Attachment:
		return v.validateAttachment(value)
	case *models.Attachment:
		return v.validateAttachment(*value)

	default:
		return ErrUnsupportedType
	}
}

func (v *RecordValidator) validateWriteRequest(_ context.Context, req models.WriteRecordRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldValues, FieldAttachments}
	}

	for _, f := range fields {
		switch f {
		case FieldValues:
			if err := v.validateValues(req.Fields); err != nil {
				return err
			}
		case FieldNotEmpty:
			if req.Fields.Empty() && len(req.Attachments) == 0 {
				return ErrEmptyRecord
			}
		case FieldAttachments:
			seen := make(map[string]bool, len(req.Attachments))
			for _, a := range req.Attachments {
				if err := v.validateAttachment(a); err != nil {
					return err
				}
				if seen[a.Field] {
					return fmt.Errorf("%w: %s", ErrDuplicateAttachment, a.Field)
				}
				seen[a.Field] = true
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func (v *RecordValidator) validateValues(values models.Fields) error {
	for column, value := range values {
		field, ok := v.entity.Field(column)
		if !ok {
			return fmt.Errorf("%w: %s.%s", ErrUnknownColumn, v.entity.Name, column)
		}
		if _, err := field.Canonical(value); err != nil {
			return fmt.Errorf("%w: %s.%s = %q", ErrInvalidValue, v.entity.Name, column, value)
		}
	}
	return nil
}

func (v *RecordValidator) validateAttachment(a models.Attachment) error {
	field, ok := v.entity.Field(a.Field)
	if !ok {
		return fmt.Errorf("%w: %s.%s", ErrUnknownColumn, v.entity.Name, a.Field)
	}
	if !field.File {
		return fmt.Errorf("%w: %s.%s", ErrNotFileField, v.entity.Name, a.Field)
	}
	if strings.TrimSpace(a.Path) == "" {
		return fmt.Errorf("%w: %s.%s", ErrEmptyAttachmentPath, v.entity.Name, a.Field)
	}
	return nil
}
