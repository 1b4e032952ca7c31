// Package utils holds small helpers shared by the transports and the CLI:
// JSON responses, the resty client, operator tokens, context keys and ID
// generation.
package utils

import "context"

type contextKey string

func (c contextKey) String() string { return "go-sheet-sync/" + string(c) }

// OperatorCtxKey carries the operator named by a verified bearer token.
var OperatorCtxKey = contextKey("operator")

// GetOperatorFromContext returns the authenticated operator, if any.
func GetOperatorFromContext(ctx context.Context) (string, bool) {
	operator, ok := ctx.Value(OperatorCtxKey).(string)
	return operator, ok && operator != ""
}
