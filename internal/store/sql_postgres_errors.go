package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification says whether a failed statement is worth repeating.
type ErrorClassification int

const (
	NonRetryable ErrorClassification = iota
	Retryable
)

// retryablePgCodes are the SQLSTATEs after which withRetry runs the
// statement again: lost connections, serialization failures, deadlocks and
// a server still starting up.
var retryablePgCodes = map[string]struct{}{
	pgerrcode.ConnectionException:    {},
	pgerrcode.ConnectionDoesNotExist: {},
	pgerrcode.ConnectionFailure:      {},
	pgerrcode.TransactionRollback:    {},
	pgerrcode.SerializationFailure:   {},
	pgerrcode.DeadlockDetected:       {},
	pgerrcode.CannotConnectNow:       {},
}

// PostgresErrorClassifier implements [ErrorClassificator] for pgx.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	code, ok := pgCode(err)
	if !ok {
		return NonRetryable
	}
	if _, retry := retryablePgCodes[code]; retry {
		return Retryable
	}
	return NonRetryable
}

// IsUniqueViolation reports a 23505 raised by the remote_id unique index.
func (c *PostgresErrorClassifier) IsUniqueViolation(err error) bool {
	code, ok := pgCode(err)
	return ok && code == pgerrcode.UniqueViolation
}

func pgCode(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if err == nil || !errors.As(err, &pgErr) {
		return "", false
	}
	return pgErr.Code, true
}
