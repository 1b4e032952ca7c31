// Package validators checks write requests against the entity catalog
// before they reach the record service.
package validators

import "context"

// Validator checks v. When fields are given only those columns are checked.
type Validator interface {
	Validate(ctx context.Context, v any, fields ...string) error
}
