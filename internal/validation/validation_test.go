package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deppfellow/people-api/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type lookupRequest struct {
	ID int64 `param:"people_id"`
}

func (r *lookupRequest) Validate() error {
	return validator.New().Struct(r)
}

type namedRequest struct {
	Name string `query:"name" validate:"required"`
}

func (r *namedRequest) Validate() error {
	return validator.New().Struct(r)
}

func newContext(t *testing.T, target string) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func TestBindAndValidate_PathParam(t *testing.T) {
	c := newContext(t, "/people/42")
	c.SetParamNames("people_id")
	c.SetParamValues("42")

	payload := &lookupRequest{}
	require.NoError(t, BindAndValidate(c, payload))
	assert.Equal(t, int64(42), payload.ID)
}

func TestBindAndValidate_MalformedPathParam(t *testing.T) {
	c := newContext(t, "/people/abc")
	c.SetParamNames("people_id")
	c.SetParamValues("abc")

	err := BindAndValidate(c, &lookupRequest{})
	require.Error(t, err)

	// Binding failures surface as client errors, not internal ones.
	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
}

func TestBindAndValidate_TagViolation(t *testing.T) {
	c := newContext(t, "/search")

	err := BindAndValidate(c, &namedRequest{})
	require.Error(t, err)

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	require.Len(t, httpErr.Fields, 1)
	assert.Equal(t, "name", httpErr.Fields[0].Field)
	assert.Equal(t, "is required", httpErr.Fields[0].Error)
}

func TestExtractValidationError_Custom(t *testing.T) {
	msg, fields := extractValidationError(CustomValidationErrors{
		{Field: "people_id", Message: "must be positive"},
	})

	assert.Equal(t, "Validation failed", msg)
	require.Len(t, fields, 1)
	assert.Equal(t, "people_id", fields[0].Field)
	assert.Equal(t, "must be positive", fields[0].Error)
}
