package session

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipeshare/internal/store"
)

func newTestManager(t *testing.T) (*Manager, *store.MemoryUserRepository, *MemoryStore) {
	t.Helper()
	users := store.NewMemoryUserRepository()
	sessions := NewMemoryStore()
	return NewManager(users, sessions, 24*time.Hour), users, sessions
}

func signup(t *testing.T, users *store.MemoryUserRepository, username, password string) {
	t.Helper()
	hash, err := HashPassword(password)
	require.NoError(t, err)
	_, err = users.Create(context.Background(), username, username+"@example.com", hash)
	require.NoError(t, err)
}

func TestManager_SignupThenLogin(t *testing.T) {
	mgr, users, _ := newTestManager(t)
	ctx := context.Background()

	signup(t, users, "alice", "hunter2")

	token, err := mgr.Login(ctx, "alice", "hunter2")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	user, err := mgr.Identity(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
}

func TestManager_LoginWrongPassword(t *testing.T) {
	mgr, users, _ := newTestManager(t)
	ctx := context.Background()

	signup(t, users, "alice", "hunter2")

	_, err := mgr.Login(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestManager_LoginUnknownUser(t *testing.T) {
	mgr, _, _ := newTestManager(t)

	_, err := mgr.Login(context.Background(), "nobody", "hunter2")
	// Unknown user and bad password are indistinguishable.
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestManager_StoredHashIsNotPlaintext(t *testing.T) {
	_, users, _ := newTestManager(t)
	ctx := context.Background()

	signup(t, users, "alice", "hunter2")

	user, err := users.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", user.PasswordHash)
}

func TestManager_SessionExpiresAbsolutely(t *testing.T) {
	users := store.NewMemoryUserRepository()
	sessions := NewMemoryStore()
	mgr := NewManager(users, sessions, 24*time.Hour)

	now := time.Now()
	mgr.now = func() time.Time { return now }
	sessions.now = mgr.now

	signup(t, users, "alice", "hunter2")
	ctx := context.Background()

	token, err := mgr.Login(ctx, "alice", "hunter2")
	require.NoError(t, err)

	// Still valid just before the deadline, reads do not extend it.
	now = now.Add(23 * time.Hour)
	_, err = mgr.Identity(ctx, token)
	require.NoError(t, err)

	now = now.Add(59 * time.Minute)
	_, err = mgr.Identity(ctx, token)
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	_, err = mgr.Identity(ctx, token)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestManager_LogoutIsIdempotent(t *testing.T) {
	mgr, users, _ := newTestManager(t)
	ctx := context.Background()

	signup(t, users, "alice", "hunter2")

	token, err := mgr.Login(ctx, "alice", "hunter2")
	require.NoError(t, err)

	require.NoError(t, mgr.Logout(ctx, token))
	require.NoError(t, mgr.Logout(ctx, token))

	_, err = mgr.Identity(ctx, token)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestManager_DanglingSessionIsHardError(t *testing.T) {
	mgr, users, _ := newTestManager(t)
	ctx := context.Background()

	signup(t, users, "alice", "hunter2")

	token, err := mgr.Login(ctx, "alice", "hunter2")
	require.NoError(t, err)

	user, err := users.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	users.Remove(user.ID)

	_, err = mgr.Identity(ctx, token)
	assert.ErrorIs(t, err, ErrIdentityNotFound)
}

func TestMemoryStore_JanitorSweepsExpired(t *testing.T) {
	sessions := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, sessions.Set(ctx, "tok", uuid.New(), time.Now().Add(-time.Minute)))

	_, ok, err := sessions.Get(ctx, "tok")
	require.NoError(t, err)
	assert.False(t, ok)
}
