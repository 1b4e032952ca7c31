package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrUnknownColumn       = errors.New("unknown column")
	ErrInvalidValue        = errors.New("invalid value")
	ErrNoFieldsToUpdate    = errors.New("at least one field must be provided for update")
	ErrEmptyRecord         = errors.New("record has no values")
	ErrNotFileField        = errors.New("column does not hold a file location")
	ErrEmptyAttachmentPath = errors.New("attachment path is required")
	ErrDuplicateAttachment = errors.New("column has more than one attachment")
)
