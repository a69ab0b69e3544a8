// Package errs defines custom error types and utilities.
//
// Its purpose is to create specific error structures
// (FieldError for per-field problems, HTTPError for API
// responses) so the client receives meaningful, actionable,
// and consistent error messages.
//
// The JSON shape of HTTPError is the client-facing error envelope:
//
//	{"error": "Person with id 999 not found"}
//
// Status and machine code travel with the error internally (for the
// global error handler and logs) but are not part of the body.
package errs

import "strings"

// FieldError represents a field-level validation error.
// Example:
//
//	{ "field": "people_id", "error": "must be an integer" }
type FieldError struct {
	// Field is the field name/key the error relates to.
	Field string `json:"field"`

	// Error is the human-readable error message.
	Error string `json:"error"`
}

// HTTPError is the main custom error type for API responses.
//
// It implements the `error` interface via Error() and is serialized
// directly to JSON as the error envelope.
//
// Fields:
//   - Code: machine-friendly error code (e.g. "NOT_FOUND"); log-only.
//   - Message: human-friendly message; the envelope's "error" value.
//   - Status: HTTP status code; drives the response status, not the body.
//   - Fields: optional per-field validation errors.
type HTTPError struct {
	Code    string `json:"-"`
	Message string `json:"error"`
	Status  int    `json:"-"`

	// Fields holds field-level validation errors, typically for
	// malformed request input. Omitted from the envelope when empty.
	Fields []FieldError `json:"fields,omitempty"`
}

// Error makes *HTTPError satisfy the built-in `error` interface.
// Printing/logging the error shows the client-facing message.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is customizes how errors.Is treats HTTPError.
//
// It reports a match when target is also a *HTTPError, regardless of
// code or status. Useful for "is this already client-shaped" checks.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// WithMessage returns a copy of this HTTPError with Message replaced.
//
// Useful when a base error acts as a template and only the message
// needs customizing, without mutating the original.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Code:    e.Code,
		Message: message,
		Status:  e.Status,
		Fields:  e.Fields,
	}
}

// MakeUpperCaseWithUnderscores converts a string into
// UPPER_CASE_WITH_UNDERSCORES format.
//
// Example:
//
//	"Bad Request" -> "BAD_REQUEST"
//
// Used to create stable machine-readable error codes from HTTP status text.
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
