// Package service contains the application services that sit between the HTTP
// layer and the adapters.
package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	domainauth "github.com/sportclub/club-ui/internal/domain/auth"
)

// SessionStore persists user/token sessions. The Redis adapter is the
// production implementation; tests use an in-memory fake.
type SessionStore interface {
	Save(ctx context.Context, sess domainauth.Session) error
	Get(ctx context.Context, id string) (domainauth.Session, error)
	Delete(ctx context.Context, id string) error
}

// RoleMapper resolves a role to its dashboard destination.
type RoleMapper interface {
	Map(role domainauth.Role) (string, bool)
}

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Sessions SessionStore
	Roles    RoleMapper
}

// AuthService owns the authenticated-session lifecycle: it mints sessions on
// login, resolves them per request, and tears them down on logout.
//
// State transitions (Login, Logout) are serialized with a mutex so two
// concurrent requests cannot interleave a save with a delete. Reads go
// straight to the store.
type AuthService struct {
	sessions SessionStore
	roles    RoleMapper

	mu sync.Mutex
}

// ErrNoSession is returned when no session exists for the given ID.
var ErrNoSession = errors.New("no session")

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	return &AuthService{
		sessions: opts.Sessions,
		roles:    opts.Roles,
	}
}

// LoginResult contains the session created by a successful login together
// with the dashboard destination for the user's role, when one exists.
type LoginResult struct {
	Session   domainauth.Session
	Dashboard string
	// KnownRole is false when the backend returned a role with no dashboard.
	// The session is still persisted so the user does not have to
	// re-authenticate once the role situation is resolved.
	KnownRole bool
}

// Login persists a new session for the authenticated user and resolves the
// dashboard destination for their role. The user and token must both be
// present; a partial pair is rejected before anything is written.
func (s *AuthService) Login(ctx context.Context, user domainauth.User, token string) (*LoginResult, error) {
	if user.ID == "" {
		return nil, errors.New("user ID is required")
	}
	if token == "" {
		return nil, errors.New("token is required")
	}

	sess := domainauth.Session{
		ID:    generateSessionID(),
		User:  user,
		Token: token,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	dashboard, ok := s.roles.Map(user.Role)
	return &LoginResult{
		Session:   sess,
		Dashboard: dashboard,
		KnownRole: ok,
	}, nil
}

// GetSession retrieves a session by ID. A missing session is ErrNoSession;
// any other error is a storage failure the caller must surface, not treat as
// "logged out".
func (s *AuthService) GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error) {
	if sessionID == "" {
		return nil, ErrNoSession
	}

	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domainauth.ErrSessionNotFound) {
			return nil, ErrNoSession
		}
		return nil, fmt.Errorf("get session: %w", err)
	}

	return &sess, nil
}

// Logout removes a session. The error is reported but the caller should
// still clear the browser cookie: a failed delete must never leave the user
// visibly logged in.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil // Nothing to logout
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	return nil
}

// Dashboard resolves the dashboard destination for a role.
func (s *AuthService) Dashboard(role domainauth.Role) (string, bool) {
	return s.roles.Map(role)
}

// HTTPClient returns an http.Client that attaches the session's bearer token
// to every request. The token travels with the session, never in process-wide
// state, so concurrent sessions cannot leak credentials into each other.
func (s *AuthService) HTTPClient(ctx context.Context, sess domainauth.Session) *http.Client {
	src := oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: sess.Token,
		TokenType:   "Bearer",
	})
	return oauth2.NewClient(ctx, src)
}

// generateSessionID creates a cryptographically secure random session ID.
func generateSessionID() string {
	// Use UUID for session ID - it's URL-safe and has good entropy
	id := uuid.New()
	return id.String()
}
