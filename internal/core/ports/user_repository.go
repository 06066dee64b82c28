package ports

import (
	"context"

	"github.com/ahams/appointment-register/internal/core/domain"
)

// UserRepository is the credential store: the authoritative mapping from
// username to account record.
type UserRepository interface {
	// Find returns the user or domain.ErrUserNotFound.
	Find(ctx context.Context, username string) (*domain.User, error)
	// Upsert inserts the user or replaces the existing record.
	Upsert(ctx context.Context, user *domain.User) error
	// Remove deletes the user; domain.ErrUserNotFound when absent.
	Remove(ctx context.Context, username string) error
	// List returns all users ordered by creation time.
	List(ctx context.Context) ([]domain.User, error)
}
