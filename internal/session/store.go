package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store holds live sessions keyed by opaque token. Only the bound user id is
// stored, never credentials. Expiry is absolute: the deadline set on Set is
// final and is not extended by reads.
type Store interface {
	Set(ctx context.Context, token string, userID uuid.UUID, expiresAt time.Time) error
	// Get returns the bound user id, or ok=false for an unknown or expired
	// token.
	Get(ctx context.Context, token string) (uuid.UUID, bool, error)
	Delete(ctx context.Context, token string) error
}

type memoryRecord struct {
	userID    uuid.UUID
	expiresAt time.Time
}

// MemoryStore is the default in-process session store.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]memoryRecord
	now      func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]memoryRecord),
		now:      time.Now,
	}
}

func (s *MemoryStore) Set(ctx context.Context, token string, userID uuid.UUID, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = memoryRecord{userID: userID, expiresAt: expiresAt}
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, token string) (uuid.UUID, bool, error) {
	s.mu.RLock()
	rec, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return uuid.Nil, false, nil
	}
	if !s.now().Before(rec.expiresAt) {
		// Expired entries are reaped lazily on access.
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return uuid.Nil, false, nil
	}
	return rec.userID, true, nil
}

func (s *MemoryStore) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}

// Janitor sweeps expired sessions every interval until ctx is cancelled.
func (s *MemoryStore) Janitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			now := s.now()
			s.mu.Lock()
			for token, rec := range s.sessions {
				if !now.Before(rec.expiresAt) {
					delete(s.sessions, token)
				}
			}
			s.mu.Unlock()
		}
	}
}
