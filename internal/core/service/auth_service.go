package service

import (
	"context"
	"crypto/subtle"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/ahams/appointment-register/internal/core/domain"
	"github.com/ahams/appointment-register/internal/core/ports"
)

// AuthService implements the login protocol: credential check, atomic
// registry takeover, session issuance, and the per-request staleness check.
type AuthService struct {
	users      ports.UserRepository
	sessions   ports.SessionStore
	sessionTTL time.Duration
	log        zerolog.Logger
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionStore, sessionTTL time.Duration, log zerolog.Logger) *AuthService {
	if sessionTTL <= 0 {
		sessionTTL = 8 * time.Hour
	}
	return &AuthService{users: users, sessions: sessions, sessionTTL: sessionTTL, log: log}
}

// Login runs the three-phase login state machine. The session record is
// created before the registry acquisition so the registry never points at
// a session that does not exist; on a lost takeover the record is removed
// again and nothing observable remains.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.Session, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.Find(ctx, username)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.verifyPassword(ctx, user, password) {
		return nil, domain.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	sess := domain.Session{
		ID:          uuid.NewString(),
		Username:    user.Username,
		Role:        user.Role,
		Permissions: user.Permissions,
		IssuedAt:    now,
		ExpiresAt:   now.Add(s.sessionTTL),
	}

	if err := s.sessions.Create(ctx, sess); err != nil {
		return nil, err
	}

	holder, err := s.sessions.Acquire(ctx, user.Username, sess.ID)
	if err != nil {
		_ = s.sessions.Delete(ctx, sess.ID)
		return nil, err
	}
	if holder != "" {
		_ = s.sessions.Delete(ctx, sess.ID)
		s.log.Info().Str("username", user.Username).Msg("login rejected, account in use elsewhere")
		return nil, domain.ErrSessionConflict
	}

	s.log.Info().Str("username", user.Username).Str("role", user.Role).Msg("login")
	return &sess, nil
}

// Logout releases the registry slot only when this session still holds it
// and removes the session record. Safe to call for superseded sessions.
func (s *AuthService) Logout(ctx context.Context, sess domain.Session) error {
	if err := s.sessions.Release(ctx, sess.Username, sess.ID); err != nil {
		return err
	}
	if err := s.sessions.Delete(ctx, sess.ID); err != nil {
		return err
	}
	s.log.Info().Str("username", sess.Username).Msg("logout")
	return nil
}

// Validate resolves sessionID and confirms it is still the registered
// session for its username. A session superseded by a newer login is
// destroyed here, on its next request.
func (s *AuthService) Validate(ctx context.Context, sessionID string) (domain.Session, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return domain.Session{}, err
	}

	current, err := s.sessions.IsCurrent(ctx, sess.Username, sess.ID)
	if err != nil {
		return domain.Session{}, err
	}
	if !current {
		_ = s.sessions.Delete(ctx, sess.ID)
		s.log.Debug().Str("username", sess.Username).Msg("stale session rejected")
		return domain.Session{}, domain.ErrAuthRequired
	}
	return sess, nil
}

// Refresh re-reads role and permissions from the credential store into the
// session record, keeping its original expiry. A deleted user invalidates
// the session outright.
func (s *AuthService) Refresh(ctx context.Context, sess domain.Session) (domain.Session, error) {
	user, err := s.users.Find(ctx, sess.Username)
	if err != nil {
		if err == domain.ErrUserNotFound {
			_ = s.Logout(ctx, sess)
			return domain.Session{}, domain.ErrAuthRequired
		}
		return domain.Session{}, err
	}

	sess.Role = user.Role
	sess.Permissions = user.Permissions
	if err := s.sessions.Save(ctx, sess); err != nil {
		return domain.Session{}, err
	}
	return sess, nil
}

// verifyPassword compares against the stored bcrypt hash. Records predating
// the hashing migration hold plaintext; those are compared in constant time
// and upgraded to bcrypt in place on first successful login.
func (s *AuthService) verifyPassword(ctx context.Context, user *domain.User, password string) bool {
	if isBcryptHash(user.PasswordHash) {
		return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) == nil
	}

	if subtle.ConstantTimeCompare([]byte(user.PasswordHash), []byte(password)) != 1 {
		return false
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err == nil {
		user.PasswordHash = string(hash)
		user.UpdatedAt = time.Now().UTC()
		if err := s.users.Upsert(ctx, user); err != nil {
			s.log.Warn().Err(err).Str("username", user.Username).Msg("legacy password upgrade failed")
		} else {
			s.log.Info().Str("username", user.Username).Msg("legacy password upgraded to bcrypt")
		}
	}
	return true
}

// isBcryptHash matches the full version prefix so a legacy plaintext
// password that merely starts with "$2" is not mistaken for a hash.
func isBcryptHash(stored string) bool {
	for _, prefix := range []string{"$2a$", "$2b$", "$2y$"} {
		if strings.HasPrefix(stored, prefix) {
			return true
		}
	}
	return false
}
