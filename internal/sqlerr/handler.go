package sqlerr

import (
	"database/sql"
	"errors"

	"github.com/deppfellow/people-api/internal/errs"
	sqlite "modernc.org/sqlite"
)

// HandleError converts a low-level database error into an application error.
//
// Output:
//   - If already *errs.HTTPError: returned unchanged
//   - If sql.ErrNoRows: mapped to errs.NewNotFoundError
//   - If a SQLite driver error: Busy/Locked become 503, everything else 500
//   - Otherwise: errs.NewInternalServerError
//
// There is deliberately no retry here: a locked or broken store surfaces
// immediately as a server error.
//
// This function is the fallback in the global error handler; repositories
// and services may also call it directly after a failed database call.
func HandleError(err error) error {
	// If it's already an HTTPError, don't re-wrap it.
	// This preserves messages shaped for the client (e.g. person not found).
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	// "No rows" from a point lookup. Callers that know the entity produce
	// a specific message themselves; this is the generic fallback.
	if errors.Is(err, sql.ErrNoRows) {
		return errs.NewNotFoundError("Resource not found", nil)
	}

	// SQLite driver errors carry a numeric result code.
	var driverErr *sqlite.Error
	if errors.As(err, &driverErr) {
		sqlErr := ConvertSQLiteError(driverErr)

		switch sqlErr.Code {
		case Busy, Locked:
			// The file is locked by a writer; the client may retry.
			return errs.NewServiceUnavailableError()
		default:
			// Missing table, unreadable file, corruption: nothing the
			// client can do, and no details it should see.
			return errs.NewInternalServerError()
		}
	}

	// Default fallback: treat unknown errors as 500.
	return errs.NewInternalServerError()
}
