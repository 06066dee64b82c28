package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/ahams/appointment-register/internal/core/domain"
	"github.com/ahams/appointment-register/internal/core/ports"
)

// UserService implements admin account management. Every mutation
// broadcasts the user collection; anything touching permissions also
// broadcasts a per-user delta so affected clients can update without
// re-login.
type UserService struct {
	users     ports.UserRepository
	broadcast ports.Broadcaster
	log       zerolog.Logger
}

func NewUserService(users ports.UserRepository, broadcast ports.Broadcaster, log zerolog.Logger) *UserService {
	return &UserService{users: users, broadcast: broadcast, log: log}
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	if input.Username == "" || input.Password == "" {
		return nil, fmt.Errorf("%w: username and password are required", domain.ErrValidation)
	}
	if !domain.ValidRole(input.Role) {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, input.Role)
	}
	if _, err := s.users.Find(ctx, input.Username); err == nil {
		return nil, domain.ErrUserExists
	} else if err != domain.ErrUserNotFound {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     input.Username,
		PasswordHash: string(hash),
		Role:         input.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Upsert(ctx, user); err != nil {
		return nil, err
	}

	s.publishUsers(ctx)
	s.publishPermissions(user)
	s.log.Info().Str("username", user.Username).Str("role", user.Role).Msg("user created")
	return user, nil
}

// Update edits role and optionally the password. Permission flags survive
// the edit untouched.
func (s *UserService) Update(ctx context.Context, input ports.UpdateUserInput) (*domain.User, error) {
	if !domain.ValidRole(input.Role) {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, input.Role)
	}

	user, err := s.users.Find(ctx, input.Username)
	if err != nil {
		return nil, err
	}

	user.Role = input.Role
	if input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.users.Upsert(ctx, user); err != nil {
		return nil, err
	}

	s.publishUsers(ctx)
	s.publishPermissions(user)
	s.log.Info().Str("username", user.Username).Str("role", user.Role).Msg("user updated")
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, username string) error {
	if err := s.users.Remove(ctx, username); err != nil {
		return err
	}
	s.publishUsers(ctx)
	s.log.Info().Str("username", username).Msg("user deleted")
	return nil
}

func (s *UserService) SetHistoricalPermission(ctx context.Context, username string, allowed bool) (*domain.User, error) {
	user, err := s.users.Find(ctx, username)
	if err != nil {
		return nil, err
	}

	user.Permissions.CanAddHistorical = allowed
	user.UpdatedAt = time.Now().UTC()
	if err := s.users.Upsert(ctx, user); err != nil {
		return nil, err
	}

	s.publishUsers(ctx)
	s.publishPermissions(user)
	s.log.Info().Str("username", username).Bool("allowed", allowed).Msg("historical permission changed")
	return user, nil
}

func (s *UserService) publishUsers(ctx context.Context) {
	list, err := s.users.List(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("user snapshot for broadcast failed")
		return
	}
	s.broadcast.Publish(ports.TopicUsers, list)
}

// publishPermissions emits the per-user permission delta consumed by the
// affected client.
func (s *UserService) publishPermissions(user *domain.User) {
	s.broadcast.Publish(ports.TopicPermissions, map[string]any{
		"username":    user.Username,
		"permissions": user.Permissions,
	})
}
