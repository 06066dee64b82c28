package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ahams/appointment-register/internal/api/metrics"
	"github.com/ahams/appointment-register/internal/api/middleware"
	"github.com/ahams/appointment-register/internal/core/domain"
	"github.com/ahams/appointment-register/internal/core/ports"
)

// AuthHandler handles login, logout and the session check.
type AuthHandler struct {
	authService ports.AuthService
	cookieName  string
}

func NewAuthHandler(authService ports.AuthService, cookieName string) *AuthHandler {
	return &AuthHandler{authService: authService, cookieName: cookieName}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type sessionResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message,omitempty"`
	User    *ports.Profile `json:"user,omitempty"`
}

func profileOf(sess domain.Session) *ports.Profile {
	return &ports.Profile{
		Username:    sess.Username,
		Role:        sess.Role,
		Permissions: sess.Permissions,
	}
}

// Login authenticates and issues the session cookie.
//
// Wrong credentials are a soft failure (200 with success=false), matching
// the original client contract; a live session elsewhere is a hard 409.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  sessionResponse
// @Failure      409   {object}  map[string]any
// @Router       /api/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	sess, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("denied").Inc()
			return c.JSON(http.StatusOK, sessionResponse{Success: false, Message: "Incorrect username or password"})
		}
		if errors.Is(err, domain.ErrSessionConflict) {
			metrics.LoginsTotal.WithLabelValues("conflict").Inc()
			metrics.SessionConflictsTotal.Inc()
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("granted").Inc()
	c.SetCookie(middleware.NewSessionCookie(h.cookieName, sess.ID, sess.ExpiresAt))
	return c.JSON(http.StatusOK, sessionResponse{Success: true, User: profileOf(*sess)})
}

// Logout releases the caller's registry slot and clears the cookie.
// Idempotent: a request without a live session still succeeds.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /api/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if sess, ok := middleware.SessionFromContext(c); ok {
		if err := h.authService.Logout(c.Request().Context(), sess); err != nil {
			return err
		}
	}
	c.SetCookie(middleware.ExpiredSessionCookie(h.cookieName))
	return c.JSON(http.StatusOK, sessionResponse{Success: true, Message: "Logged out successfully"})
}

// Session returns the caller's profile with permissions refreshed from the
// credential store, so permission changes apply without re-login.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /api/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		return c.JSON(http.StatusOK, sessionResponse{Success: false, Message: "No active session"})
	}

	refreshed, err := h.authService.Refresh(c.Request().Context(), sess)
	if err != nil {
		if errors.Is(err, domain.ErrAuthRequired) {
			c.SetCookie(middleware.ExpiredSessionCookie(h.cookieName))
			return err
		}
		// Refresh is best-effort; fall back to the session snapshot.
		return c.JSON(http.StatusOK, sessionResponse{Success: true, User: profileOf(sess)})
	}
	return c.JSON(http.StatusOK, sessionResponse{Success: true, User: profileOf(refreshed)})
}
