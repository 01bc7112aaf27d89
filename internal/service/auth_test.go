package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/sportclub/club-ui/internal/domain/auth"
	mocks "github.com/sportclub/club-ui/internal/mocks/auth"
)

func coachUser() domainauth.User {
	return domainauth.User{
		ID:    "user-7",
		Email: "coach@example.com",
		Name:  "Sam Coach",
		Role:  domainauth.RoleCoach,
	}
}

func newTestService(sessions *mocks.MemorySessionStore) *AuthService {
	return NewAuthService(AuthServiceOptions{
		Sessions: sessions,
		Roles:    mocks.DefaultRoleMapper(),
	})
}

func TestAuthService_Login_Success(t *testing.T) {
	sessions := mocks.NewMemorySessionStore()
	svc := newTestService(sessions)
	ctx := context.Background()

	result, err := svc.Login(ctx, coachUser(), "token-abc")

	require.NoError(t, err)
	assert.True(t, result.KnownRole)
	assert.Equal(t, "/coach/dashboard", result.Dashboard)
	assert.NotEmpty(t, result.Session.ID)
	assert.Equal(t, "token-abc", result.Session.Token)

	stored, err := sessions.Get(ctx, result.Session.ID)
	require.NoError(t, err)
	assert.Equal(t, coachUser(), stored.User)
}

func TestAuthService_Login_UnknownRoleStillPersists(t *testing.T) {
	sessions := mocks.NewMemorySessionStore()
	svc := newTestService(sessions)
	ctx := context.Background()

	user := coachUser()
	user.Role = domainauth.ParseRole("janitor")

	result, err := svc.Login(ctx, user, "token-abc")

	require.NoError(t, err)
	assert.False(t, result.KnownRole)
	assert.Empty(t, result.Dashboard)

	// The session exists even though there is nowhere to navigate.
	stored, err := sessions.Get(ctx, result.Session.ID)
	require.NoError(t, err)
	assert.Equal(t, domainauth.RoleUnknown, stored.User.Role)
}

func TestAuthService_Login_RejectsPartialPair(t *testing.T) {
	sessions := mocks.NewMemorySessionStore()
	svc := newTestService(sessions)
	ctx := context.Background()

	_, err := svc.Login(ctx, domainauth.User{}, "token-abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "user ID is required")

	_, err = svc.Login(ctx, coachUser(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "token is required")

	assert.Zero(t, sessions.Len())
}

func TestAuthService_Login_SaveError(t *testing.T) {
	sessions := mocks.NewMemorySessionStore()
	sessions.SaveFunc = func(context.Context, domainauth.Session) error {
		return errors.New("redis down")
	}
	svc := newTestService(sessions)

	result, err := svc.Login(context.Background(), coachUser(), "token-abc")

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "save session")
}

func TestAuthService_GetSession(t *testing.T) {
	sessions := mocks.NewMemorySessionStore()
	svc := newTestService(sessions)
	ctx := context.Background()

	result, err := svc.Login(ctx, coachUser(), "token-abc")
	require.NoError(t, err)

	sess, err := svc.GetSession(ctx, result.Session.ID)
	require.NoError(t, err)
	assert.Equal(t, result.Session, *sess)
}

func TestAuthService_GetSession_Missing(t *testing.T) {
	svc := newTestService(mocks.NewMemorySessionStore())

	_, err := svc.GetSession(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNoSession)

	_, err = svc.GetSession(context.Background(), "")
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestAuthService_GetSession_StorageError(t *testing.T) {
	sessions := mocks.NewMemorySessionStore()
	sessions.GetFunc = func(context.Context, string) (domainauth.Session, error) {
		return domainauth.Session{}, errors.New("redis down")
	}
	svc := newTestService(sessions)

	// A storage failure is not the same as being logged out.
	_, err := svc.GetSession(context.Background(), "sess-1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoSession)
}

func TestAuthService_Logout(t *testing.T) {
	sessions := mocks.NewMemorySessionStore()
	svc := newTestService(sessions)
	ctx := context.Background()

	result, err := svc.Login(ctx, coachUser(), "token-abc")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, result.Session.ID))

	_, err = svc.GetSession(ctx, result.Session.ID)
	assert.ErrorIs(t, err, ErrNoSession)

	// Logging out again, or with no session at all, is a no-op.
	assert.NoError(t, svc.Logout(ctx, result.Session.ID))
	assert.NoError(t, svc.Logout(ctx, ""))
}

func TestAuthService_Logout_DeleteError(t *testing.T) {
	sessions := mocks.NewMemorySessionStore()
	sessions.DeleteFunc = func(context.Context, string) error {
		return errors.New("redis down")
	}
	svc := newTestService(sessions)

	err := svc.Logout(context.Background(), "sess-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "delete session")
}

func TestAuthService_ConcurrentLogins(t *testing.T) {
	sessions := mocks.NewMemorySessionStore()
	svc := newTestService(sessions)
	ctx := context.Background()

	const n = 16
	var wg sync.WaitGroup
	ids := make([]string, n)
	errs := make([]error, n)
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := svc.Login(ctx, coachUser(), "token-abc")
			if err != nil {
				errs[i] = err
				return
			}
			ids[i] = result.Session.ID
		}()
	}
	wg.Wait()
	for _, err := range errs {
		require.NoError(t, err)
	}

	// Every login minted its own session.
	assert.Equal(t, n, sessions.Len())
	seen := make(map[string]bool, n)
	for _, id := range ids {
		assert.False(t, seen[id])
		seen[id] = true
	}
}

func TestAuthService_HTTPClient_AttachesBearerToken(t *testing.T) {
	svc := newTestService(mocks.NewMemorySessionStore())

	sess := domainauth.Session{ID: "sess-1", User: coachUser(), Token: "token-abc"}
	client := svc.HTTPClient(context.Background(), sess)

	require.NotNil(t, client)
	// Transport must be per-session, never shared process state.
	other := svc.HTTPClient(context.Background(), domainauth.Session{ID: "sess-2", User: coachUser(), Token: "token-def"})
	assert.NotSame(t, client.Transport, other.Transport)
}
