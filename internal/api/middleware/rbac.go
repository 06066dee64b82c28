package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/ahams/appointment-register/internal/core/domain"
)

// RequireRoles gates an operation on the caller's role. No session yields
// 401; a session with a role outside the allowed set yields 403.
func RequireRoles(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, ok := SessionFromContext(c)
			if !ok {
				return domain.ErrAuthRequired
			}
			if _, ok := allowed[sess.Role]; !ok {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}

// RequireStaffOrAdmin gates operations available to any front-desk account.
func RequireStaffOrAdmin() echo.MiddlewareFunc {
	return RequireRoles(domain.RoleStaff, domain.RoleAdmin)
}

// RequireAdmin gates administrative operations.
func RequireAdmin() echo.MiddlewareFunc {
	return RequireRoles(domain.RoleAdmin)
}
