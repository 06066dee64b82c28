package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/ahams/appointment-register/internal/core/domain"
)

func renderError(t *testing.T, err error) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return rec, body
}

func TestErrorHandler_DomainErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrAuthRequired, http.StatusUnauthorized},
		{domain.ErrSessionNotFound, http.StatusUnauthorized},
		{domain.ErrForbidden, http.StatusForbidden},
		{domain.ErrSessionConflict, http.StatusConflict},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrValidation, http.StatusBadRequest},
		{domain.ErrInvalidSerialNumber, http.StatusBadRequest},
		{domain.ErrAppointmentNotFound, http.StatusNotFound},
		{domain.ErrUserNotFound, http.StatusNotFound},
		{domain.ErrUserExists, http.StatusConflict},
		{domain.ErrDepartmentExists, http.StatusConflict},
	}

	for _, tc := range cases {
		rec, body := renderError(t, tc.err)
		if rec.Code != tc.code {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.code, rec.Code)
		}
		if body["success"] != false {
			t.Fatalf("%v: expected success=false envelope, got %+v", tc.err, body)
		}
	}
}

func TestErrorHandler_SessionConflictMessage(t *testing.T) {
	_, body := renderError(t, domain.ErrSessionConflict)
	msg, _ := body["message"].(string)
	if msg == "" || msg == domain.ErrSessionConflict.Error() {
		t.Fatalf("conflict message not client-facing: %q", msg)
	}
}

func TestErrorHandler_WrappedDomainError(t *testing.T) {
	wrapped := errors.Join(errors.New("context"), domain.ErrForbidden)
	rec, _ := renderError(t, wrapped)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("wrapped error not unwrapped, got %d", rec.Code)
	}
}

func TestErrorHandler_EchoHTTPErrorPassthrough(t *testing.T) {
	rec, body := renderError(t, echo.NewHTTPError(http.StatusBadRequest, "invalid payload"))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if body["message"] != "invalid payload" {
		t.Fatalf("echo error message lost: %+v", body)
	}
}

func TestErrorHandler_UnknownErrorHidesDetails(t *testing.T) {
	rec, body := renderError(t, errors.New("mongo: socket closed unexpectedly"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if body["message"] != "Internal server error" {
		t.Fatalf("internal detail leaked: %+v", body)
	}
}
