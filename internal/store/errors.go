package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrGrantNotFound is returned when no answer was ever recorded for the
	// requested permission kind.
	ErrGrantNotFound = errors.New("permission grant not found")

	// ErrGrantNotSaved is returned when the upsert affected no rows.
	ErrGrantNotSaved = errors.New("permission grant was not saved")
)

// Low-level database operation errors.
var (
	// ErrExecutingQuery is returned when a SELECT against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan permission grant row")
)
