package session

import (
	"context"
	"sync"
	"time"

	"eats/internal/domain/entity"
	"eats/internal/domain/service"

	"github.com/google/uuid"
)

type memoryEntry struct {
	userID    uuid.UUID
	expiresAt time.Time
}

// memoryStore keeps sessions in process memory. Sessions are lost on restart.
type memoryStore struct {
	mu       sync.RWMutex
	sessions map[string]memoryEntry
	ttl      time.Duration
	now      clock
}

// NewMemoryStore creates an in-memory session store with the given TTL.
func NewMemoryStore(ttl time.Duration) service.SessionStore {
	return newMemoryStore(ttl, time.Now)
}

func newMemoryStore(ttl time.Duration, now clock) *memoryStore {
	return &memoryStore{
		sessions: make(map[string]memoryEntry),
		ttl:      ttl,
		now:      now,
	}
}

func (s *memoryStore) Issue(_ context.Context, userID uuid.UUID) (*entity.Session, error) {
	token, err := newToken()
	if err != nil {
		return nil, err
	}

	issuedAt := s.now()
	sess := &entity.Session{
		Token:     token,
		UserID:    userID,
		IssuedAt:  issuedAt,
		ExpiresAt: issuedAt.Add(s.ttl),
	}

	s.mu.Lock()
	s.sessions[hashToken(token)] = memoryEntry{userID: userID, expiresAt: sess.ExpiresAt}
	s.mu.Unlock()

	return sess, nil
}

func (s *memoryStore) Resolve(_ context.Context, token string) (uuid.UUID, error) {
	key := hashToken(token)

	s.mu.RLock()
	entry, ok := s.sessions[key]
	s.mu.RUnlock()

	if !ok {
		return uuid.Nil, service.ErrSessionInvalid
	}

	if !s.now().Before(entry.expiresAt) {
		s.mu.Lock()
		delete(s.sessions, key)
		s.mu.Unlock()

		return uuid.Nil, service.ErrSessionInvalid
	}

	return entry.userID, nil
}

func (s *memoryStore) Revoke(_ context.Context, token string) error {
	s.mu.Lock()
	delete(s.sessions, hashToken(token))
	s.mu.Unlock()

	return nil
}

func (s *memoryStore) PurgeExpired(_ context.Context) (int, error) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	purged := 0
	for key, entry := range s.sessions {
		if !now.Before(entry.expiresAt) {
			delete(s.sessions, key)
			purged++
		}
	}

	return purged, nil
}

func (s *memoryStore) Close() error {
	return nil
}
