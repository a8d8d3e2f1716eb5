package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserLimitReached is returned by Login when the username is unknown
	// and the number of registered users already equals the configured cap.
	ErrUserLimitReached = errors.New("user limit reached")

	// ErrNoUserWasFound is returned when no user holds the given token digest.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrDirectoryAlreadyExists is returned when the caller already owns a
	// directory with the same id.
	ErrDirectoryAlreadyExists = errors.New("directory already exists")

	// ErrDirectoryNotFound is returned when a directory, or the parent
	// directory a state refers to, does not exist for the caller.
	ErrDirectoryNotFound = errors.New("directory not found")

	// ErrDirectoryLimitReached is returned when creating a directory would
	// exceed the per-user directory cap.
	ErrDirectoryLimitReached = errors.New("directory limit reached")

	// ErrStateAlreadyExists is returned when the caller already owns a state
	// with the same id.
	ErrStateAlreadyExists = errors.New("state already exists")

	// ErrStateNotFound is returned when the targeted state does not exist
	// for the caller.
	ErrStateNotFound = errors.New("state not found")

	// ErrStateLimitReached is returned when creating or moving a state would
	// exceed the per-directory state cap.
	ErrStateLimitReached = errors.New("state limit reached")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a statement against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrAcquiringLock is returned when the per-user or registration advisory
	// lock cannot be taken.
	ErrAcquiringLock = errors.New("failed to acquire advisory lock")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
