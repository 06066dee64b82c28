package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/ahams/appointment-register/internal/api/middleware"
	"github.com/ahams/appointment-register/internal/core/domain"
)

// currentSession extracts the session injected by the Session middleware.
// Handlers behind a role gate can rely on it being present; anything else
// gets domain.ErrAuthRequired back.
func currentSession(c echo.Context) (domain.Session, error) {
	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		return domain.Session{}, domain.ErrAuthRequired
	}
	return sess, nil
}
