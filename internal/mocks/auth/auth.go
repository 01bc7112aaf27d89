package auth

// Package auth contains simple hand-written test doubles for the auth
// service's dependencies. These are lightweight and suitable for unit tests
// without codegen.

import (
	"context"
	"errors"
	"sync"

	domainauth "github.com/sportclub/club-ui/internal/domain/auth"
)

// MemorySessionStore is an in-memory session store for unit tests.
// Optional func hooks allow individual operations to be overridden for
// error injection.
type MemorySessionStore struct {
	SaveFunc   func(ctx context.Context, sess domainauth.Session) error
	GetFunc    func(ctx context.Context, id string) (domainauth.Session, error)
	DeleteFunc func(ctx context.Context, id string) error

	mu       sync.Mutex
	sessions map[string]domainauth.Session
}

// NewMemorySessionStore creates a new in-memory session store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]domainauth.Session),
	}
}

func (m *MemorySessionStore) Save(ctx context.Context, sess domainauth.Session) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, sess)
	}
	if sess.ID == "" {
		return errors.New("session ID cannot be empty")
	}
	if !sess.Valid() {
		return errors.New("session must carry both a user and a token")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[sess.ID] = sess
	return nil
}

func (m *MemorySessionStore) Get(ctx context.Context, id string) (domainauth.Session, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	if id == "" {
		return domainauth.Session{}, domainauth.ErrSessionNotFound
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, ok := m.sessions[id]
	if !ok {
		return domainauth.Session{}, domainauth.ErrSessionNotFound
	}
	return sess, nil
}

func (m *MemorySessionStore) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	if id == "" {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

// Len reports how many sessions the store currently holds.
func (m *MemorySessionStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// StaticRoleMapper maps roles through a fixed table, mirroring the production
// dashboard mapper.
type StaticRoleMapper struct {
	Routes map[domainauth.Role]string
}

func (m StaticRoleMapper) Map(role domainauth.Role) (string, bool) {
	path, ok := m.Routes[role]
	return path, ok
}

// DefaultRoleMapper returns a StaticRoleMapper covering the five known roles.
func DefaultRoleMapper() StaticRoleMapper {
	return StaticRoleMapper{Routes: map[domainauth.Role]string{
		domainauth.RoleParent:     "/parent/dashboard",
		domainauth.RoleAdmin:      "/admin/dashboard",
		domainauth.RoleCoach:      "/coach/dashboard",
		domainauth.RoleAssistant:  "/assistant/dashboard",
		domainauth.RoleSuperadmin: "/superadmin/dashboard",
	}}
}
