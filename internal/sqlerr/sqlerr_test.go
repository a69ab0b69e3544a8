package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/deppfellow/people-api/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

func TestMapCode(t *testing.T) {
	tests := []struct {
		name string
		code int
		want Code
	}{
		{"busy", sqlite3.SQLITE_BUSY, Busy},
		{"locked", sqlite3.SQLITE_LOCKED, Locked},
		{"cantopen", sqlite3.SQLITE_CANTOPEN, CantOpen},
		{"corrupt", sqlite3.SQLITE_CORRUPT, Corrupt},
		{"notadb", sqlite3.SQLITE_NOTADB, Corrupt},
		{"generic error", sqlite3.SQLITE_ERROR, Other},
		// Extended codes carry the primary code in the low byte.
		{"busy snapshot", sqlite3.SQLITE_BUSY | (2 << 8), Busy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapCode(tt.code))
		})
	}
}

func TestHandleError_PassesThroughHTTPError(t *testing.T) {
	original := errs.NewNotFoundError("Person with id 1 not found", nil)

	handled := HandleError(original)

	// Already client-shaped errors must not be re-wrapped.
	assert.Same(t, original, handled)
}

func TestHandleError_WrappedHTTPError(t *testing.T) {
	original := errs.NewNotFoundError("Person with id 1 not found", nil)
	wrapped := fmt.Errorf("lookup: %w", original)

	handled := HandleError(wrapped)
	assert.Same(t, wrapped, handled)
}

func TestHandleError_NoRows(t *testing.T) {
	handled := HandleError(fmt.Errorf("person id=1: %w", sql.ErrNoRows))

	var httpErr *errs.HTTPError
	require.True(t, errors.As(handled, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "Resource not found", httpErr.Message)
}

func TestHandleError_Unknown(t *testing.T) {
	handled := HandleError(errors.New("something odd"))

	var httpErr *errs.HTTPError
	require.True(t, errors.As(handled, &httpErr))
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
}

func TestHandleError_DriverError(t *testing.T) {
	// Provoke a real driver error: querying a table that does not exist
	// yields SQLITE_ERROR, which maps to a generic 500.
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	_, queryErr := db.Query(`SELECT * FROM missing_table`)
	require.Error(t, queryErr)

	handled := HandleError(queryErr)

	var httpErr *errs.HTTPError
	require.True(t, errors.As(handled, &httpErr))
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	// The driver detail must not leak into the client message.
	assert.NotContains(t, httpErr.Message, "missing_table")
}

func TestErrCode_DriverError(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	_, queryErr := db.Query(`SELECT * FROM missing_table`)
	require.Error(t, queryErr)

	assert.Equal(t, Other, ErrCode(queryErr))
}

func TestErrCode_PlainError(t *testing.T) {
	assert.Equal(t, Other, ErrCode(errors.New("plain")))
}
