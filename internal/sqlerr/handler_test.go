package sqlerr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/deppfellow/analytics/internal/errs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *errs.HTTPError, got %T (%v)", err, err)
	}
	return httpErr
}

func TestHandleErrorUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Severity:       "ERROR",
		Code:           "23505",
		Message:        "duplicate key value violates unique constraint",
		TableName:      "contacts",
		ConstraintName: "contacts_email_key",
	}

	httpErr := asHTTPError(t, HandleError(fmt.Errorf("insert contact: %w", pgErr)))

	if httpErr.Status != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", httpErr.Status)
	}
	if httpErr.Code != "CONTACT_ALREADY_EXISTS" {
		t.Errorf("code = %q, want CONTACT_ALREADY_EXISTS", httpErr.Code)
	}
	if httpErr.Message != "A Contact with this Email already exists" {
		t.Errorf("message = %q", httpErr.Message)
	}
}

func TestHandleErrorNotNullViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Severity:   "ERROR",
		Code:       "23502",
		TableName:  "raw_json_data",
		ColumnName: "json_data",
	}

	httpErr := asHTTPError(t, HandleError(pgErr))

	if httpErr.Status != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", httpErr.Status)
	}
	if len(httpErr.Errors) != 1 || httpErr.Errors[0].Field != "json_data" {
		t.Errorf("field errors = %+v", httpErr.Errors)
	}
	if httpErr.Message != "The Json Data is required" {
		t.Errorf("message = %q", httpErr.Message)
	}
}

func TestHandleErrorNoRows(t *testing.T) {
	httpErr := asHTTPError(t, HandleError(fmt.Errorf("select raw json: %w", pgx.ErrNoRows)))
	if httpErr.Status != http.StatusNotFound {
		t.Errorf("status = %d, want 404", httpErr.Status)
	}
}

func TestHandleErrorUnknown(t *testing.T) {
	httpErr := asHTTPError(t, HandleError(errors.New("boom")))
	if httpErr.Status != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", httpErr.Status)
	}
	if httpErr.Message != http.StatusText(http.StatusInternalServerError) {
		t.Errorf("internal details leaked: %q", httpErr.Message)
	}
}

func TestHandleErrorPassesHTTPErrorThrough(t *testing.T) {
	in := errs.NewNotFoundError("Contact not found", true, nil)
	if out := HandleError(in); out != error(in) {
		t.Errorf("HTTPError should be returned unchanged, got %v", out)
	}
}

func TestHandleErrorConnectionFailure(t *testing.T) {
	pgErr := &pgconn.PgError{Severity: "FATAL", Code: "08006"}
	httpErr := asHTTPError(t, HandleError(pgErr))
	if httpErr.Status != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", httpErr.Status)
	}
}

func TestErrCode(t *testing.T) {
	converted := ConvertPgError(&pgconn.PgError{Code: "23503"})
	if got := ErrCode(fmt.Errorf("wrap: %w", converted)); got != ForeignKeyViolation {
		t.Errorf("ErrCode = %q, want %q", got, ForeignKeyViolation)
	}
	if got := ErrCode(fmt.Errorf("wrap: %w", &pgconn.PgError{Code: "22021"})); got != InvalidJSON {
		t.Errorf("ErrCode(raw driver error) = %q, want %q", got, InvalidJSON)
	}
	if got := ErrCode(errors.New("plain")); got != Other {
		t.Errorf("ErrCode = %q, want %q", got, Other)
	}
}

func TestHandleErrorInvalidByteSequence(t *testing.T) {
	pgErr := &pgconn.PgError{
		Severity:  "ERROR",
		Code:      "22021",
		Message:   "invalid byte sequence for encoding \"UTF8\": 0xff",
		TableName: "raw_json_data",
	}

	httpErr := asHTTPError(t, HandleError(fmt.Errorf("insert raw json: %w", pgErr)))

	if httpErr.Status != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", httpErr.Status)
	}
	if httpErr.Message != "The submitted document is not valid JSON" {
		t.Errorf("message = %q", httpErr.Message)
	}
}

func TestExtractColumnForUniqueViolation(t *testing.T) {
	tests := map[string]string{
		"unique_contacts_email": "email",
		"contacts_email_key":    "email",
		"contacts_pkey":         "",
		"":                      "",
	}
	for in, want := range tests {
		if got := extractColumnForUniqueViolation(in); got != want {
			t.Errorf("extractColumnForUniqueViolation(%q) = %q, want %q", in, got, want)
		}
	}
}
