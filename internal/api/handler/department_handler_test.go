package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/ahams/appointment-register/internal/api/middleware"
	"github.com/ahams/appointment-register/internal/core/domain"
)

type stubDepartmentService struct {
	names []string
}

func (s *stubDepartmentService) List(context.Context) ([]string, error) {
	return append([]string(nil), s.names...), nil
}

func (s *stubDepartmentService) Add(_ context.Context, _ domain.Session, name string) error {
	for _, existing := range s.names {
		if existing == name {
			return domain.ErrDepartmentExists
		}
	}
	s.names = append(s.names, name)
	return nil
}

func (s *stubDepartmentService) Remove(_ context.Context, _ domain.Session, name string) error {
	for i, existing := range s.names {
		if existing == name {
			s.names = append(s.names[:i], s.names[i+1:]...)
			return nil
		}
	}
	return nil
}

func newDepartmentContext(t *testing.T, method, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	c, rec := newAuthContext(t, method, "/api/departments", body)
	c.Echo().Validator = NewValidator()
	c.Set(middleware.ContextKeySession, domain.Session{ID: "s1", Username: "boss", Role: domain.RoleAdmin})
	return c, rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return resp
}

func TestDepartmentHandler_Add(t *testing.T) {
	stub := &stubDepartmentService{}
	handler := NewDepartmentHandler(stub)

	c, rec := newDepartmentContext(t, http.MethodPost, `{"departmentName":"Cardiology"}`)
	if err := handler.Add(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if resp := decodeEnvelope(t, rec); resp["success"] != true {
		t.Fatalf("expected success, got %+v", resp)
	}
}

func TestDepartmentHandler_Add_DuplicateSoftFailure(t *testing.T) {
	stub := &stubDepartmentService{names: []string{"Cardiology"}}
	handler := NewDepartmentHandler(stub)

	c, rec := newDepartmentContext(t, http.MethodPost, `{"departmentName":"Cardiology"}`)
	if err := handler.Add(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("duplicate must be a 200 soft failure, got %d", rec.Code)
	}
	if resp := decodeEnvelope(t, rec); resp["success"] != false {
		t.Fatalf("expected success=false, got %+v", resp)
	}
}

func TestDepartmentHandler_Remove(t *testing.T) {
	stub := &stubDepartmentService{names: []string{"Cardiology"}}
	handler := NewDepartmentHandler(stub)

	c, rec := newDepartmentContext(t, http.MethodDelete, `{"departmentName":"Cardiology"}`)
	if err := handler.Remove(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if resp := decodeEnvelope(t, rec); resp["success"] != true {
		t.Fatalf("expected success, got %+v", resp)
	}
	if len(stub.names) != 0 {
		t.Fatalf("department still present: %v", stub.names)
	}
}

func TestDepartmentHandler_Remove_MissingNameStillSucceeds(t *testing.T) {
	stub := &stubDepartmentService{}
	handler := NewDepartmentHandler(stub)

	c, rec := newDepartmentContext(t, http.MethodDelete, `{"departmentName":"Radiology"}`)
	if err := handler.Remove(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if resp := decodeEnvelope(t, rec); resp["success"] != true {
		t.Fatalf("delete of an absent department must still acknowledge: %+v", resp)
	}
}
