package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"recipeshare/internal/models"
	"recipeshare/internal/store"
)

var (
	// ErrInvalidCredentials is returned when the username is unknown or the
	// password does not verify. The two cases are deliberately
	// indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrSessionNotFound is returned for an unknown or expired token.
	ErrSessionNotFound = errors.New("session not found")
	// ErrIdentityNotFound is returned when a live session is bound to a user
	// id that no longer resolves. Callers treat this as a hard error, not as
	// an anonymous request.
	ErrIdentityNotFound = errors.New("session user not found")
)

// Manager establishes, resolves and tears down authenticated identities.
// Sessions carry only the user id and expire at a fixed deadline set at
// login; the deadline does not slide.
type Manager struct {
	users store.UserRepository
	store Store
	ttl   time.Duration
	now   func() time.Time
}

func NewManager(users store.UserRepository, sessions Store, ttl time.Duration) *Manager {
	return &Manager{
		users: users,
		store: sessions,
		ttl:   ttl,
		now:   time.Now,
	}
}

// TTL returns the absolute session lifetime.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Login verifies the credentials and establishes a fresh session, returning
// its opaque token.
func (m *Manager) Login(ctx context.Context, username, password string) (string, error) {
	user, err := m.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("lookup user: %w", err)
	}

	if !VerifyPassword(password, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	token := uuid.NewString()
	if err := m.store.Set(ctx, token, user.ID, m.now().Add(m.ttl)); err != nil {
		return "", fmt.Errorf("establish session: %w", err)
	}

	return token, nil
}

// Identity resolves a token to its user. ErrSessionNotFound means the caller
// is anonymous; ErrIdentityNotFound means the session dangles and must not
// be downgraded silently.
func (m *Manager) Identity(ctx context.Context, token string) (*models.User, error) {
	userID, ok, err := m.store.Get(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("resolve session: %w", err)
	}
	if !ok {
		return nil, ErrSessionNotFound
	}

	user, err := m.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrIdentityNotFound
		}
		return nil, fmt.Errorf("lookup session user: %w", err)
	}

	return user, nil
}

// Logout destroys the session. Destroying an unknown token is a no-op.
func (m *Manager) Logout(ctx context.Context, token string) error {
	return m.store.Delete(ctx, token)
}
