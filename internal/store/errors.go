package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrRecordNotFound is returned when a lookup by local id or remote id
	// matches no row, or an update affects zero rows.
	ErrRecordNotFound = errors.New("record was not found")

	// ErrRemoteIDConflict is returned when a remote identifier is already held
	// by another record of the same entity.
	ErrRemoteIDConflict = errors.New("remote id is already linked to another record")

	// ErrUnknownColumn is returned by PatchField for columns outside the
	// entity's field mapping.
	ErrUnknownColumn = errors.New("unknown column")

	// ErrUnsupportedDSN is returned when the DSN scheme selects no dialect.
	ErrUnsupportedDSN = errors.New("unsupported database dsn")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or UPDATE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan record row")

	// ErrScanningRows is returned when multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan record rows")
)
