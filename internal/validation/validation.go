// Package validation contains the logic for validating
// request data.
//
// It uses the `validator` library to enforce rules (like
// required fields or email formats) defined in struct tags
// and extracts validation errors into a format the client can
// understand
package validation

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/deppfellow/analytics/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validatable is implemented by request payload types that know how to validate themselves.
//
// Typical pattern:
// - Define a request struct with validator tags (`validate:"required,email"`)
// - Implement Validate() error that runs validator.Struct(req)
// - Return validator.ValidationErrors, or a plain error reported against the body
type Validatable interface {
	Validate() error
}

// BodyRequirer is implemented by payloads that must arrive with a body.
// An empty body or the JSON literal null is rejected before binding.
type BodyRequirer interface {
	RequiresBody() bool
}

// RawBinder is implemented by payloads that take the request body verbatim
// instead of having it decoded into fields.
type RawBinder interface {
	BindRaw(body []byte) error
}

// BindAndValidate binds request data into payload and validates it.
//
// Binder failures keep the status echo chose for them (400 for malformed
// JSON, 415 for an unsupported content type). Validation failures are
// returned as a 400 with field-level errors.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if raw, ok := payload.(RawBinder); ok {
		if err := bindRaw(c, raw); err != nil {
			return err
		}
	} else {
		if required, ok := payload.(BodyRequirer); ok && required.RequiresBody() {
			if err := requireBody(c); err != nil {
				return err
			}
		}
		if err := c.Bind(payload); err != nil {
			return bindError(err)
		}
	}

	if msg, fieldErrors := validateStruct(payload); fieldErrors != nil {
		return errs.NewBadRequestError(msg, true, nil, fieldErrors, nil)
	}

	return nil
}

func bindRaw(c echo.Context, payload RawBinder) error {
	req := c.Request()

	body, err := io.ReadAll(req.Body)
	if err != nil {
		return bindError(err)
	}

	ctype := req.Header.Get(echo.HeaderContentType)
	if len(bytes.TrimSpace(body)) > 0 && !strings.HasPrefix(ctype, echo.MIMEApplicationJSON) {
		return errs.NewStatusError(http.StatusUnsupportedMediaType)
	}

	if err := payload.BindRaw(body); err != nil {
		return errs.NewBadRequestError(err.Error(), false, nil, nil, nil)
	}
	return nil
}

// requireBody reads the body, rejects it when it is blank or null, then
// restores it for the binder.
func requireBody(c echo.Context) error {
	req := c.Request()

	body, err := io.ReadAll(req.Body)
	if err != nil {
		return bindError(err)
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return errs.NewBadRequestError("Request body is required", false, nil,
			[]errs.FieldError{{Field: "body", Error: "is required"}}, nil)
	}

	req.Body = io.NopCloser(bytes.NewReader(body))
	req.ContentLength = int64(len(body))
	return nil
}

func bindError(err error) *errs.HTTPError {
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		return errs.NewBadRequestError("Invalid request body", false, nil, nil, nil)
	}

	if he.Code != http.StatusBadRequest {
		return errs.NewStatusError(he.Code)
	}

	return errs.NewBadRequestError(fmt.Sprint(he.Message), false, nil, nil, nil)
}

// validateStruct calls v.Validate() and extracts field errors if validation fails.
func validateStruct(v Validatable) (string, []errs.FieldError) {
	if err := v.Validate(); err != nil {
		return extractValidationError(err)
	}
	return "", nil
}

func extractValidationError(err error) (string, []errs.FieldError) {
	var fieldErrors []errs.FieldError

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		// Payloads that validate without tags (raw documents) report against the body.
		return "Validation failed", []errs.FieldError{{Field: "body", Error: err.Error()}}
	}

	for _, fe := range validationErrors {
		field := strings.ToLower(fe.Field())
		var msg string

		switch fe.Tag() {
		case "required":
			msg = "is required"

		case "min":
			if fe.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must be at least %s characters", fe.Param())
			} else {
				msg = fmt.Sprintf("must be at least %s", fe.Param())
			}

		case "email":
			msg = "must be a valid email address"

		default:
			if fe.Param() != "" {
				msg = fmt.Sprintf("%s: %s:%s", field, fe.Tag(), fe.Param())
			} else {
				msg = fmt.Sprintf("%s: %s", field, fe.Tag())
			}
		}

		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: field,
			Error: msg,
		})
	}

	return "Validation failed", fieldErrors
}
