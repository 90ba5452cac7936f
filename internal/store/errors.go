package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when a lookup by user identifier matches
	// no user record. This is a domain outcome, not an infrastructure fault:
	// the HTTP layer reports it with a success status and an error body.
	ErrUserNotFound = errors.New("user not found")

	// ErrExerciseNotSaved is returned when an INSERT of an exercise record
	// is rejected by a table constraint (check or not-null violation), so
	// nothing was actually persisted.
	ErrExerciseNotSaved = errors.New("exercise was not saved")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
