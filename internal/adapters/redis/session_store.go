package redis

// Package redis provides the Redis-backed session store for the club-ui
// front-end.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	domainauth "github.com/sportclub/club-ui/internal/domain/auth"
)

// DefaultSessionTTL bounds how long an idle session survives in the store.
const DefaultSessionTTL = 30 * 24 * time.Hour

// SessionStore is a Redis-based session store.
//
// A session is marshalled to a single JSON value under one prefixed key, so
// the user record and the bearer token are written and read atomically: a
// Load can never observe one half of the pair.
type SessionStore struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewSessionStore creates a new Redis-based session store.
func NewSessionStore(client redis.UniversalClient) *SessionStore {
	return &SessionStore{
		client: client,
		prefix: "session:",
		ttl:    DefaultSessionTTL,
	}
}

// NewSessionStoreWithPrefix creates a Redis session store with a custom key prefix.
func NewSessionStoreWithPrefix(client redis.UniversalClient, prefix string) *SessionStore {
	return &SessionStore{
		client: client,
		prefix: prefix,
		ttl:    DefaultSessionTTL,
	}
}

// Save persists the session. It refuses a partial pair up front; storage
// errors are returned to the caller rather than logged and swallowed.
func (s *SessionStore) Save(ctx context.Context, sess domainauth.Session) error {
	if sess.ID == "" {
		return errors.New("session ID cannot be empty")
	}
	if !sess.Valid() {
		return errors.New("session must carry both a user and a token")
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	key := s.prefix + sess.ID
	return s.client.Set(ctx, key, data, s.ttl).Err()
}

// Get returns the stored session, or domainauth.ErrSessionNotFound when the
// key is absent or the stored value no longer forms a complete user/token
// pair.
func (s *SessionStore) Get(ctx context.Context, id string) (domainauth.Session, error) {
	if id == "" {
		return domainauth.Session{}, domainauth.ErrSessionNotFound
	}

	key := s.prefix + id
	data, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domainauth.Session{}, domainauth.ErrSessionNotFound
		}
		return domainauth.Session{}, fmt.Errorf("redis get: %w", err)
	}

	var sess domainauth.Session
	if unmarshalErr := json.Unmarshal([]byte(data), &sess); unmarshalErr != nil {
		return domainauth.Session{}, fmt.Errorf("unmarshal session: %w", unmarshalErr)
	}

	// A stored value that lost half the pair is treated as no session at all.
	if !sess.Valid() {
		if deleteErr := s.Delete(ctx, id); deleteErr != nil {
			return domainauth.Session{}, fmt.Errorf("cleanup invalid session: %w", deleteErr)
		}
		return domainauth.Session{}, domainauth.ErrSessionNotFound
	}

	return sess, nil
}

// Delete removes the session. Deleting an absent or empty id succeeds.
func (s *SessionStore) Delete(ctx context.Context, id string) error {
	if id == "" {
		return nil // Nothing to delete
	}

	key := s.prefix + id
	return s.client.Del(ctx, key).Err()
}
