package ports

import (
	"context"

	"github.com/ahams/appointment-register/internal/core/domain"
)

// CreateUserInput carries data for a new account.
type CreateUserInput struct {
	Username string
	Password string
	Role     string
}

// UpdateUserInput edits an existing account. An empty password keeps the
// stored credential.
type UpdateUserInput struct {
	Username string
	Password string
	Role     string
}

// UserService implements admin account management. Mutations broadcast the
// user collection; permission-affecting mutations additionally broadcast a
// per-user permission delta.
type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, username string) error
	// SetHistoricalPermission toggles the canAddHistorical flag.
	SetHistoricalPermission(ctx context.Context, username string, allowed bool) (*domain.User, error)
}

// DepartmentService maintains the department list.
type DepartmentService interface {
	List(ctx context.Context) ([]string, error)
	Add(ctx context.Context, actor domain.Session, name string) error
	Remove(ctx context.Context, actor domain.Session, name string) error
}
