package catalog

import "errors"

var (
	ErrInvalidCatalog = errors.New("invalid entity catalog")
	ErrUnknownEntity  = errors.New("unknown entity")
)
