package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ahams/appointment-register/internal/api/metrics"
	"github.com/ahams/appointment-register/internal/core/domain"
)

// ContextKeySession is the echo context key the validated session is
// stored under.
const ContextKeySession = "session"

// SessionValidator resolves a session identifier and confirms it is still
// the registered session for its username.
type SessionValidator interface {
	Validate(ctx context.Context, sessionID string) (domain.Session, error)
}

// Session is the per-request staleness check. Requests without a session
// cookie pass through anonymously. A cookie whose session record no longer
// exists (expired, logged out) is cleared and the request continues
// anonymously. A cookie whose session has been superseded by a newer login
// is rejected with 401 on this, its next, request.
func Session(auth SessionValidator, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			sess, err := auth.Validate(c.Request().Context(), cookie.Value)
			if err != nil {
				switch {
				case errors.Is(err, domain.ErrSessionNotFound):
					c.SetCookie(ExpiredSessionCookie(cookieName))
					return next(c)
				case errors.Is(err, domain.ErrAuthRequired):
					metrics.StaleSessionsTotal.Inc()
					c.SetCookie(ExpiredSessionCookie(cookieName))
					return domain.ErrAuthRequired
				default:
					return err
				}
			}

			c.Set(ContextKeySession, sess)
			return next(c)
		}
	}
}

// SessionFromContext returns the validated session, if any.
func SessionFromContext(c echo.Context) (domain.Session, bool) {
	sess, ok := c.Get(ContextKeySession).(domain.Session)
	return sess, ok
}

// NewSessionCookie builds the session cookie: HTTP-only, same-site
// restricted, carrying only the opaque identifier.
func NewSessionCookie(name, sessionID string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    sessionID,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// ExpiredSessionCookie builds a cookie that clears the session cookie.
func ExpiredSessionCookie(name string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
