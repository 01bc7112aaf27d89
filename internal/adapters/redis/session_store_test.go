package redis

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/sportclub/club-ui/internal/domain/auth"
	"github.com/sportclub/club-ui/internal/testutil"
)

// setupTestRedis creates a Redis client for testing.
// Tests will be skipped if Redis is not available.
func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	return testutil.SetupTestRedis(t)
}

func testSession(id string) domainauth.Session {
	return domainauth.Session{
		ID: id,
		User: domainauth.User{
			ID:    "user-123",
			Email: "user@example.com",
			Role:  domainauth.RoleCoach,
		},
		Token: "token-abc",
	}
}

func TestSessionStore_SaveAndGet(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewSessionStoreWithPrefix(client, "clubui-test-session:")
	ctx := context.Background()

	sess := testSession("test-session-1")
	t.Cleanup(func() { _ = store.Delete(ctx, sess.ID) })

	err := store.Save(ctx, sess)
	require.NoError(t, err)

	retrieved, err := store.Get(ctx, "test-session-1")
	require.NoError(t, err)
	assert.Equal(t, sess.ID, retrieved.ID)
	assert.Equal(t, sess.User, retrieved.User)
	assert.Equal(t, sess.Token, retrieved.Token)
}

func TestSessionStore_GetNonExistent(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewSessionStoreWithPrefix(client, "clubui-test-session:")

	_, err := store.Get(context.Background(), "non-existent")
	assert.ErrorIs(t, err, domainauth.ErrSessionNotFound)
}

func TestSessionStore_RejectsPartialPair(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewSessionStoreWithPrefix(client, "clubui-test-session:")
	ctx := context.Background()

	noToken := testSession("test-session-partial")
	noToken.Token = ""
	require.Error(t, store.Save(ctx, noToken))

	noUser := testSession("test-session-partial")
	noUser.User = domainauth.User{}
	require.Error(t, store.Save(ctx, noUser))

	// Nothing was written either time.
	_, err := store.Get(ctx, "test-session-partial")
	assert.ErrorIs(t, err, domainauth.ErrSessionNotFound)
}

func TestSessionStore_Delete(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewSessionStoreWithPrefix(client, "clubui-test-session:")
	ctx := context.Background()

	sess := testSession("test-session-delete")
	require.NoError(t, store.Save(ctx, sess))

	_, err := store.Get(ctx, sess.ID)
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, sess.ID))

	_, err = store.Get(ctx, sess.ID)
	assert.ErrorIs(t, err, domainauth.ErrSessionNotFound)

	// Idempotent: deleting again (or an empty id) still succeeds.
	assert.NoError(t, store.Delete(ctx, sess.ID))
	assert.NoError(t, store.Delete(ctx, ""))
}

func TestSessionStore_OverwriteReplaces(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewSessionStoreWithPrefix(client, "clubui-test-session:")
	ctx := context.Background()

	sess := testSession("test-session-overwrite")
	t.Cleanup(func() { _ = store.Delete(ctx, sess.ID) })

	require.NoError(t, store.Save(ctx, sess))

	sess.User.Email = "new@example.com"
	sess.Token = "token-def"
	require.NoError(t, store.Save(ctx, sess))

	retrieved, err := store.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", retrieved.User.Email)
	assert.Equal(t, "token-def", retrieved.Token)
}
