package domain

import (
	"errors"
	"time"
)

var ErrSessionNotFound = errors.New("session not found")
var ErrSessionConflict = errors.New("account already in use in another session")
var ErrAuthRequired = errors.New("authentication required")
var ErrForbidden = errors.New("access forbidden")

// Session binds an opaque identifier to an authenticated identity for a
// fixed lifetime. Role and permissions are snapshots taken at login and
// refreshed on session checks; the registry decides whether the identifier
// is still the one authorized to act for the username.
type Session struct {
	ID          string      `json:"-"`
	Username    string      `json:"username"`
	Role        string      `json:"role"`
	Permissions Permissions `json:"permissions"`
	IssuedAt    time.Time   `json:"issued_at"`
	ExpiresAt   time.Time   `json:"expires_at"`
}

// Expired reports whether the session's fixed lifetime has elapsed.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

// IsAdmin reports whether the session acts with admin privileges.
func (s *Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}
