package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ahams/appointment-register/internal/api/middleware"
	"github.com/ahams/appointment-register/internal/core/domain"
)

type stubAuthService struct {
	loginFn    func(ctx context.Context, username, password string) (*domain.Session, error)
	logoutFn   func(ctx context.Context, sess domain.Session) error
	validateFn func(ctx context.Context, sessionID string) (domain.Session, error)
	refreshFn  func(ctx context.Context, sess domain.Session) (domain.Session, error)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (*domain.Session, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubAuthService) Logout(ctx context.Context, sess domain.Session) error {
	return s.logoutFn(ctx, sess)
}

func (s *stubAuthService) Validate(ctx context.Context, sessionID string) (domain.Session, error) {
	return s.validateFn(ctx, sessionID)
}

func (s *stubAuthService) Refresh(ctx context.Context, sess domain.Session) (domain.Session, error) {
	return s.refreshFn(ctx, sess)
}

func newAuthContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func setCookieValue(rec *httptest.ResponseRecorder, name string) (string, bool) {
	res := http.Response{Header: rec.Header()}
	for _, cookie := range res.Cookies() {
		if cookie.Name == name {
			return cookie.Value, true
		}
	}
	return "", false
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(_ context.Context, username, password string) (*domain.Session, error) {
			if username != "alice" || password != "secret" {
				t.Fatalf("unexpected args: %s %s", username, password)
			}
			return &domain.Session{
				ID:        "sess-1",
				Username:  "alice",
				Role:      domain.RoleAdmin,
				ExpiresAt: time.Now().Add(time.Hour),
			}, nil
		},
	}
	handler := NewAuthHandler(stub, "sid")

	c, rec := newAuthContext(t, http.MethodPost, "/api/login", `{"username":"alice","password":"secret"}`)
	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["success"] != true {
		t.Fatalf("expected success, got %+v", resp)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["username"] != "alice" || user["role"] != domain.RoleAdmin {
		t.Fatalf("unexpected user payload: %+v", user)
	}

	value, ok := setCookieValue(rec, "sid")
	if !ok || value != "sess-1" {
		t.Fatalf("session cookie not issued: %q %v", value, ok)
	}
}

func TestAuthHandler_Login_WrongCredentialsSoftFailure(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(context.Context, string, string) (*domain.Session, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub, "sid")

	c, rec := newAuthContext(t, http.MethodPost, "/api/login", `{"username":"alice","password":"bad"}`)
	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("wrong credentials must be a 200 soft failure, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["success"] != false {
		t.Fatalf("expected success=false, got %+v", resp)
	}
	if _, ok := setCookieValue(rec, "sid"); ok {
		t.Fatalf("failed login issued a cookie")
	}
}

func TestAuthHandler_Login_Conflict(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(context.Context, string, string) (*domain.Session, error) {
			return nil, domain.ErrSessionConflict
		},
	}
	handler := NewAuthHandler(stub, "sid")

	c, _ := newAuthContext(t, http.MethodPost, "/api/login", `{"username":"alice","password":"secret"}`)
	if err := handler.Login(c); err != domain.ErrSessionConflict {
		t.Fatalf("expected ErrSessionConflict, got %v", err)
	}
}

func TestAuthHandler_Login_InvalidPayload(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(context.Context, string, string) (*domain.Session, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub, "sid")

	c, _ := newAuthContext(t, http.MethodPost, "/api/login", "{")
	err := handler.Login(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 error, got %v", err)
	}
}

func TestAuthHandler_Logout_WithSession(t *testing.T) {
	released := false
	stub := &stubAuthService{
		logoutFn: func(_ context.Context, sess domain.Session) error {
			if sess.ID != "sess-1" {
				t.Fatalf("unexpected session: %+v", sess)
			}
			released = true
			return nil
		},
	}
	handler := NewAuthHandler(stub, "sid")

	c, rec := newAuthContext(t, http.MethodPost, "/api/logout", "")
	c.Set(middleware.ContextKeySession, domain.Session{ID: "sess-1", Username: "alice"})

	if err := handler.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !released {
		t.Fatalf("logout did not release the session")
	}
	if value, ok := setCookieValue(rec, "sid"); !ok || value != "" {
		t.Fatalf("cookie not cleared: %q %v", value, ok)
	}
}

func TestAuthHandler_Logout_AnonymousIsIdempotent(t *testing.T) {
	stub := &stubAuthService{
		logoutFn: func(context.Context, domain.Session) error {
			t.Fatalf("should not be called without a session")
			return nil
		},
	}
	handler := NewAuthHandler(stub, "sid")

	c, rec := newAuthContext(t, http.MethodPost, "/api/logout", "")
	if err := handler.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthHandler_Session_NoActiveSession(t *testing.T) {
	handler := NewAuthHandler(&stubAuthService{}, "sid")

	c, rec := newAuthContext(t, http.MethodGet, "/api/session", "")
	if err := handler.Session(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["success"] != false {
		t.Fatalf("expected success=false, got %+v", resp)
	}
}

func TestAuthHandler_Session_RefreshedPermissions(t *testing.T) {
	stub := &stubAuthService{
		refreshFn: func(_ context.Context, sess domain.Session) (domain.Session, error) {
			sess.Permissions.CanAddHistorical = true
			return sess, nil
		},
	}
	handler := NewAuthHandler(stub, "sid")

	c, rec := newAuthContext(t, http.MethodGet, "/api/session", "")
	c.Set(middleware.ContextKeySession, domain.Session{ID: "s1", Username: "alice", Role: domain.RoleStaff})

	if err := handler.Session(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	user := resp["user"].(map[string]any)
	perms := user["permissions"].(map[string]any)
	if perms["canAddHistorical"] != true {
		t.Fatalf("refreshed permission not reflected: %+v", perms)
	}
}

func TestAuthHandler_Session_InvalidatedSessionClearsCookie(t *testing.T) {
	stub := &stubAuthService{
		refreshFn: func(context.Context, domain.Session) (domain.Session, error) {
			return domain.Session{}, domain.ErrAuthRequired
		},
	}
	handler := NewAuthHandler(stub, "sid")

	c, rec := newAuthContext(t, http.MethodGet, "/api/session", "")
	c.Set(middleware.ContextKeySession, domain.Session{ID: "s1", Username: "alice"})

	if err := handler.Session(c); err != domain.ErrAuthRequired {
		t.Fatalf("expected ErrAuthRequired, got %v", err)
	}
	if value, ok := setCookieValue(rec, "sid"); !ok || value != "" {
		t.Fatalf("cookie not cleared: %q %v", value, ok)
	}
}
