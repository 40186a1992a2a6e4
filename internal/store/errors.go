package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when an attempt to register a new
	// seller fails because a seller with the same login already exists.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoSellerWasFound is returned when a query expected to match at least
	// one seller record produces an empty result set.
	ErrNoSellerWasFound = errors.New("no seller was found")

	// ErrSettingNotSaved is returned when a setting upsert completes without
	// error but the number of affected rows is zero, indicating that nothing
	// was actually persisted.
	ErrSettingNotSaved = errors.New("setting was not saved")

	// ErrSettingNotOwned is returned when a setting save targets an existing
	// setting row that belongs to a different seller.
	ErrSettingNotOwned = errors.New("setting belongs to another seller")

	// ErrReportNotSaved is returned when a report insert completes without
	// error but no row was written.
	ErrReportNotSaved = errors.New("report was not saved")
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

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
