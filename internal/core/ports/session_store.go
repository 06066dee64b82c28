package ports

import (
	"context"

	"github.com/ahams/appointment-register/internal/core/domain"
)

// SessionStore persists session records and the per-username active-session
// registry. Implementations must make Acquire and Release atomic: between
// the staleness check and the registry write no other acquisition for the
// same username may interleave.
type SessionStore interface {
	// Create stores a session record for its fixed lifetime.
	Create(ctx context.Context, sess domain.Session) error
	// Get returns the live session record or domain.ErrSessionNotFound.
	Get(ctx context.Context, sessionID string) (domain.Session, error)
	// Save replaces a live session record, keeping its original expiry.
	Save(ctx context.Context, sess domain.Session) error
	// Delete removes a session record. Idempotent.
	Delete(ctx context.Context, sessionID string) error

	// Acquire registers sessionID as the single active session for
	// username. It returns "" when granted. When another session holds
	// the registry entry and its record is still alive, the holder's
	// identifier is returned and nothing changes; a stale holder is
	// purged and the acquisition granted.
	Acquire(ctx context.Context, username, sessionID string) (holder string, err error)
	// Release removes the registry entry only if it currently equals
	// sessionID, so a superseded session cannot clobber its successor.
	Release(ctx context.Context, username, sessionID string) error
	// IsCurrent reports whether sessionID is the registered active
	// session for username.
	IsCurrent(ctx context.Context, username, sessionID string) (bool, error)
}
