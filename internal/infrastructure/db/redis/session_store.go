package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ahams/appointment-register/internal/core/domain"
)

const (
	sessionKeyPrefix  = "session:"
	registryKeyPrefix = "active:"
)

// acquireScript is the takeover compare-and-swap. It runs atomically on the
// Redis side, which closes the check-then-act window between reading the
// registry entry and writing the new one: no two logins for the same
// username can both be granted.
//
// KEYS[1] registry key for the username
// ARGV[1] candidate session id
// ARGV[2] session record key prefix
// ARGV[3] registry entry TTL in milliseconds
//
// Returns "" when granted, else the id of the live holder. A holder whose
// session record no longer exists is stale and is overwritten.
var acquireScript = redis.NewScript(`
local holder = redis.call('GET', KEYS[1])
if holder then
  if holder == ARGV[1] then
    return ''
  end
  if redis.call('EXISTS', ARGV[2] .. holder) == 1 then
    return holder
  end
end
redis.call('SET', KEYS[1], ARGV[1], 'PX', ARGV[3])
return ''
`)

// releaseScript removes the registry entry only when it still belongs to
// the releasing session, so a superseded logout cannot evict its successor.
var releaseScript = redis.NewScript(`
if redis.call('GET', KEYS[1]) == ARGV[1] then
  return redis.call('DEL', KEYS[1])
end
return 0
`)

// SessionStore keeps session records and the active-session registry in
// Redis. Session records expire with their fixed lifetime; registry entries
// carry the same TTL and self-clean.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = 8 * time.Hour
	}
	return &SessionStore{client: client, ttl: ttl}
}

type sessionRecord struct {
	ID          string             `json:"id"`
	Username    string             `json:"username"`
	Role        string             `json:"role"`
	Permissions domain.Permissions `json:"permissions"`
	IssuedAt    time.Time          `json:"issued_at"`
	ExpiresAt   time.Time          `json:"expires_at"`
}

func (s *SessionStore) Create(ctx context.Context, sess domain.Session) error {
	data, err := json.Marshal(sessionRecord(sess))
	if err != nil {
		return err
	}
	expiry := time.Until(sess.ExpiresAt)
	if expiry <= 0 {
		expiry = s.ttl
	}
	if err := s.client.Set(ctx, sessionKey(sess.ID), data, expiry).Err(); err != nil {
		return fmt.Errorf("session create: %w", err)
	}
	return nil
}

func (s *SessionStore) Get(ctx context.Context, sessionID string) (domain.Session, error) {
	raw, err := s.client.Get(ctx, sessionKey(sessionID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return domain.Session{}, domain.ErrSessionNotFound
		}
		return domain.Session{}, fmt.Errorf("session get: %w", err)
	}

	var rec sessionRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return domain.Session{}, fmt.Errorf("session decode: %w", err)
	}
	return domain.Session(rec), nil
}

// Save replaces a live record. The expiry is recomputed from the record's
// fixed ExpiresAt, so refreshing never extends a session's lifetime.
func (s *SessionStore) Save(ctx context.Context, sess domain.Session) error {
	expiry := time.Until(sess.ExpiresAt)
	if expiry <= 0 {
		return domain.ErrSessionNotFound
	}
	data, err := json.Marshal(sessionRecord(sess))
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, sessionKey(sess.ID), data, expiry).Err(); err != nil {
		return fmt.Errorf("session save: %w", err)
	}
	return nil
}

func (s *SessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("session delete: %w", err)
	}
	return nil
}

func (s *SessionStore) Acquire(ctx context.Context, username, sessionID string) (string, error) {
	res, err := acquireScript.Run(ctx, s.client,
		[]string{registryKey(username)},
		sessionID, sessionKeyPrefix, s.ttl.Milliseconds(),
	).Text()
	if err != nil {
		return "", fmt.Errorf("registry acquire: %w", err)
	}
	return res, nil
}

func (s *SessionStore) Release(ctx context.Context, username, sessionID string) error {
	if err := releaseScript.Run(ctx, s.client,
		[]string{registryKey(username)}, sessionID,
	).Err(); err != nil && err != redis.Nil {
		return fmt.Errorf("registry release: %w", err)
	}
	return nil
}

func (s *SessionStore) IsCurrent(ctx context.Context, username, sessionID string) (bool, error) {
	holder, err := s.client.Get(ctx, registryKey(username)).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("registry get: %w", err)
	}
	return holder == sessionID, nil
}

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}

func registryKey(username string) string {
	return registryKeyPrefix + username
}
