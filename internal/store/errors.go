package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNoUserWasFound is returned when a query expected to match at least
	// one account record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrSessionNotFound is returned when a session lookup by id produces
	// no row, meaning the session was destroyed or never existed.
	ErrSessionNotFound = errors.New("session was not found")

	// ErrPasswordResetNotFound is returned when a password-reset lookup by
	// id or key produces no row. The same sentinel is used for both lookup
	// paths so the not-found contract stays uniform.
	ErrPasswordResetNotFound = errors.New("password reset was not found")

	// ErrSessionAlreadyExists is returned when inserting a session row
	// collides with an existing session id.
	ErrSessionAlreadyExists = errors.New("session already exists")

	// ErrPasswordResetAlreadyExists is returned when inserting a reset row
	// collides with an existing reset id or key.
	ErrPasswordResetAlreadyExists = errors.New("password reset already exists")
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

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single result row into the
	// destination model fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating or scanning a multi-row
	// result set fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
