package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/deppfellow/people-api/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validatable is implemented by request payload types that know how to
// validate themselves.
//
// Typical pattern:
//   - Define a request struct with binding tags (`param:"people_id"`)
//     and validator tags (`validate:"required"`)
//   - Implement Validate() error that runs validator.Struct(req)
type Validatable interface {
	Validate() error
}

// CustomValidationError represents a single validation issue for a
// specific field, used for rules that cannot be expressed via tags.
type CustomValidationError struct {
	Field   string
	Message string
}

// CustomValidationErrors is a slice of custom validation errors that
// satisfies error.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

// BindAndValidate binds request data into payload and validates it.
//
// Flow:
//  1. c.Bind(payload) populates the request struct from path params,
//     query params, and body.
//  2. payload.Validate() applies validation rules.
//  3. Returns *errs.HTTPError (400) if either step fails.
//
// A non-integer value in an integer path param fails at step 1, before
// any business logic runs.
//
// NOTE: payload must be a pointer so c.Bind can mutate it.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		return errs.NewBadRequestError(bindErrorMessage(err), nil, nil)
	}

	if msg, fieldErrors := validateStruct(payload); fieldErrors != nil {
		return errs.NewBadRequestError(msg, nil, fieldErrors)
	}

	return nil
}

// bindErrorMessage extracts a client-safe message from an Echo bind error.
//
// Echo reports path/query binding failures as *echo.BindingError and body
// failures as *echo.HTTPError; Message may be a string or an arbitrary
// value in either case, so normalize to a string.
func bindErrorMessage(err error) string {
	var bindingErr *echo.BindingError
	if errors.As(err, &bindingErr) {
		if msg, ok := bindingErr.Message.(string); ok {
			return msg
		}
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		if msg, ok := echoErr.Message.(string); ok {
			return msg
		}
	}

	return "Malformed request input"
}

// validateStruct calls v.Validate() and extracts field errors if
// validation fails.
func validateStruct(v Validatable) (string, []errs.FieldError) {
	if err := v.Validate(); err != nil {
		return extractValidationError(err)
	}
	return "", nil
}

// extractValidationError converts validator errors into a summary message
// plus field-level entries the client can render.
func extractValidationError(err error) (string, []errs.FieldError) {
	var fieldErrors []errs.FieldError

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, fieldErr := range validationErrors {
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field: strings.ToLower(fieldErr.Field()),
				Error: messageForTag(fieldErr),
			})
		}
		return "Validation failed", fieldErrors
	}

	var customErrors CustomValidationErrors
	if errors.As(err, &customErrors) {
		for _, customErr := range customErrors {
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field: customErr.Field,
				Error: customErr.Message,
			})
		}
		return "Validation failed", fieldErrors
	}

	// Unknown error shape; still a client-input problem at this stage.
	return err.Error(), []errs.FieldError{}
}

// messageForTag turns a validator tag failure into a human message.
func messageForTag(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fieldErr.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fieldErr.Param())
	default:
		return fmt.Sprintf("failed %s validation", fieldErr.Tag())
	}
}
