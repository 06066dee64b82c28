package ports

import (
	"context"

	"github.com/ahams/appointment-register/internal/core/domain"
)

// Profile is the public view of an authenticated identity returned to
// clients. It never carries credentials.
type Profile struct {
	Username    string             `json:"username"`
	Role        string             `json:"role"`
	Permissions domain.Permissions `json:"permissions"`
}

// AuthService implements the login protocol and per-request session checks.
type AuthService interface {
	// Login verifies credentials, takes over the user's registry slot and
	// issues a fresh session. Errors: domain.ErrInvalidCredentials,
	// domain.ErrSessionConflict.
	Login(ctx context.Context, username, password string) (*domain.Session, error)
	// Logout releases the registry slot (only when still held by this
	// session) and destroys the session record. Idempotent.
	Logout(ctx context.Context, sess domain.Session) error
	// Validate resolves a session identifier and confirms it is still the
	// registered session for its username. A stale session is destroyed
	// and domain.ErrAuthRequired returned; an unknown identifier yields
	// domain.ErrSessionNotFound.
	Validate(ctx context.Context, sessionID string) (domain.Session, error)
	// Refresh re-reads role and permissions from the credential store into
	// the session record, so permission changes apply without re-login.
	Refresh(ctx context.Context, sess domain.Session) (domain.Session, error)
}
