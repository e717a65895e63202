package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError_ToHTTPErrorHidesCause(t *testing.T) {
	cause := errors.New("connection reset")
	appErr := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	body := appErr.ToHTTPError()
	if body.Code != "INTERNAL_ERROR" || body.Message != "An internal error occurred" || body.Fields != nil {
		t.Fatalf("unexpected body: %+v", body)
	}
	if !errors.Is(appErr, cause) {
		t.Fatalf("expected cause to be unwrappable")
	}
}

func TestNewValidationError(t *testing.T) {
	appErr := NewValidationError("VALIDATION_FAILED", "Invalid input", map[string]string{"name": "too short"}, http.StatusUnprocessableEntity)
	if appErr.HTTPStatus != http.StatusUnprocessableEntity {
		t.Fatalf("unexpected status %d", appErr.HTTPStatus)
	}
	if got := appErr.ToHTTPError().Fields["name"]; got != "too short" {
		t.Fatalf("unexpected field message %q", got)
	}
	if appErr.Error() != "VALIDATION_FAILED: Invalid input" {
		t.Fatalf("unexpected error string %q", appErr.Error())
	}
}
