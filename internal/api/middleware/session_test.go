package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/ahams/appointment-register/internal/core/domain"
)

type stubValidator struct {
	sessions map[string]domain.Session
	err      error
}

func (v *stubValidator) Validate(_ context.Context, sessionID string) (domain.Session, error) {
	if v.err != nil {
		return domain.Session{}, v.err
	}
	sess, ok := v.sessions[sessionID]
	if !ok {
		return domain.Session{}, domain.ErrSessionNotFound
	}
	return sess, nil
}

func runSession(t *testing.T, validator *stubValidator, cookie *http.Cookie) (echo.Context, *httptest.ResponseRecorder, error, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reached := false
	handler := Session(validator, "sid")(func(c echo.Context) error {
		reached = true
		return c.NoContent(http.StatusOK)
	})
	err := handler(c)
	return c, rec, err, reached
}

func TestSession_NoCookiePassesAnonymously(t *testing.T) {
	c, _, err, reached := runSession(t, &stubValidator{}, nil)
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !reached {
		t.Fatalf("next handler not called")
	}
	if _, ok := SessionFromContext(c); ok {
		t.Fatalf("anonymous request carries a session")
	}
}

func TestSession_ValidCookieAttachesSession(t *testing.T) {
	validator := &stubValidator{sessions: map[string]domain.Session{
		"s1": {ID: "s1", Username: "alice", Role: domain.RoleStaff},
	}}

	c, _, err, reached := runSession(t, validator, &http.Cookie{Name: "sid", Value: "s1"})
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !reached {
		t.Fatalf("next handler not called")
	}
	sess, ok := SessionFromContext(c)
	if !ok || sess.Username != "alice" {
		t.Fatalf("session not attached: %+v", sess)
	}
}

func TestSession_UnknownCookieClearedAndAnonymous(t *testing.T) {
	c, _, err, reached := runSession(t, &stubValidator{}, &http.Cookie{Name: "sid", Value: "gone"})
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !reached {
		t.Fatalf("request with a dead cookie should continue anonymously")
	}
	if !hasExpiredCookie(c, "sid") {
		t.Fatalf("dead cookie not cleared")
	}
}

func TestSession_SupersededCookieRejected(t *testing.T) {
	validator := &stubValidator{err: domain.ErrAuthRequired}

	c, _, err, reached := runSession(t, validator, &http.Cookie{Name: "sid", Value: "old"})
	if err != domain.ErrAuthRequired {
		t.Fatalf("expected ErrAuthRequired, got %v", err)
	}
	if reached {
		t.Fatalf("superseded session reached the handler")
	}
	if !hasExpiredCookie(c, "sid") {
		t.Fatalf("superseded cookie not cleared")
	}
}

func hasExpiredCookie(c echo.Context, name string) bool {
	for _, raw := range c.Response().Header().Values(echo.HeaderSetCookie) {
		header := http.Header{}
		header.Add("Cookie", raw)
		req := http.Request{Header: header}
		if cookie, err := req.Cookie(name); err == nil && cookie.Value == "" {
			return true
		}
	}
	return false
}
