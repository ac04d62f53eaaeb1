package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"recipeshare/internal/models"
)

// MemoryUserRepository is an in-memory UserRepository used in tests and as
// a stand-in when no database is available.
type MemoryUserRepository struct {
	mu    sync.RWMutex
	byID  map[uuid.UUID]models.User
	names map[string]uuid.UUID
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		byID:  make(map[uuid.UUID]models.User),
		names: make(map[string]uuid.UUID),
	}
}

func (r *MemoryUserRepository) Create(ctx context.Context, username, email, passwordHash string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.names[username]; ok {
		return nil, ErrDuplicateUsername
	}

	user := models.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	r.byID[user.ID] = user
	r.names[username] = user.ID

	return &user, nil
}

func (r *MemoryUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.names[username]
	if !ok {
		return nil, ErrNotFound
	}
	user := r.byID[id]
	return &user, nil
}

func (r *MemoryUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

// Remove deletes a user directly, bypassing the repository contract. Tests
// use it to simulate a session whose user no longer resolves.
func (r *MemoryUserRepository) Remove(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user, ok := r.byID[id]; ok {
		delete(r.names, user.Username)
		delete(r.byID, id)
	}
}
