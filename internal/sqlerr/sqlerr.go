// Package sqlerr specifically handles database driver errors.
//
// It parses cryptic result codes from the SQLite driver and
// converts them into consistent application errors (e.g.
// converting SQLITE_BUSY into a Service Unavailable error).
package sqlerr

import (
	"errors"
	"fmt"

	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Code is the application-level category for a SQLite failure.
//
// SQLite reports numeric result codes (possibly extended); Code collapses
// them into the handful of cases this service distinguishes.
type Code int

const (
	// Other is any driver error the service does not treat specially.
	Other Code = iota

	// Busy means the database file is locked by another connection and
	// the busy timeout elapsed (SQLITE_BUSY).
	Busy

	// Locked means a table-level lock conflict inside the same
	// connection (SQLITE_LOCKED).
	Locked

	// CantOpen means the database file could not be opened
	// (missing path, permissions) (SQLITE_CANTOPEN).
	CantOpen

	// Corrupt means the file is not a usable database
	// (SQLITE_CORRUPT, SQLITE_NOTADB).
	Corrupt
)

// Error is the normalized form of a SQLite driver error.
//
// It keeps the original numeric code for logs while exposing the mapped
// Code for switching. driverErr preserves the original error for Unwrap.
type Error struct {
	Code         Code
	DatabaseCode int
	Message      string

	driverErr error
}

func (e *Error) Error() string {
	return fmt.Sprintf("sqlite error %d: %s", e.DatabaseCode, e.Message)
}

// Unwrap exposes the original driver error to errors.Is/As.
func (e *Error) Unwrap() error {
	return e.driverErr
}

// MapCode maps a SQLite result code to our Code enum.
//
// Extended result codes carry the primary code in the low byte
// (e.g. SQLITE_BUSY_SNAPSHOT = 517 -> SQLITE_BUSY = 5).
func MapCode(code int) Code {
	switch code & 0xff {
	case sqlite3.SQLITE_BUSY:
		return Busy
	case sqlite3.SQLITE_LOCKED:
		return Locked
	case sqlite3.SQLITE_CANTOPEN:
		return CantOpen
	case sqlite3.SQLITE_CORRUPT, sqlite3.SQLITE_NOTADB:
		return Corrupt
	default:
		return Other
	}
}

// ConvertSQLiteError converts a raw driver error into our custom Error.
func ConvertSQLiteError(src *sqlite.Error) *Error {
	return &Error{
		Code:         MapCode(src.Code()),
		DatabaseCode: src.Code(),
		Message:      src.Error(),
		driverErr:    src,
	}
}

// ErrCode reports the mapped Code for a given error.
//
// Behavior:
//   - If err can be unwrapped into *sqlerr.Error, return its Code.
//   - If err can be unwrapped into the raw driver error, map its code.
//   - Otherwise return Other.
func ErrCode(err error) Code {
	var sqlErr *Error
	if errors.As(err, &sqlErr) {
		return sqlErr.Code
	}

	var driverErr *sqlite.Error
	if errors.As(err, &driverErr) {
		return MapCode(driverErr.Code())
	}

	return Other
}
