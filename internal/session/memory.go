package session

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	token     string
	expiresAt time.Time
}

// MemoryTokenStore is an in-process ports.TokenStore used in development and
// tests when no Redis is configured. Expiry is checked lazily on Get.
type MemoryTokenStore struct {
	mu     sync.RWMutex
	tokens map[string]memoryEntry
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{tokens: make(map[string]memoryEntry)}
}

func (s *MemoryTokenStore) Get(_ context.Context, sessionID string) (string, error) {
	s.mu.RLock()
	entry, ok := s.tokens[sessionID]
	s.mu.RUnlock()
	if !ok {
		return "", nil
	}
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.tokens, sessionID)
		s.mu.Unlock()
		return "", nil
	}
	return entry.token, nil
}

func (s *MemoryTokenStore) Set(_ context.Context, sessionID, token string, ttl time.Duration) error {
	entry := memoryEntry{token: token}
	if ttl > 0 {
		entry.expiresAt = time.Now().Add(ttl)
	}
	s.mu.Lock()
	s.tokens[sessionID] = entry
	s.mu.Unlock()
	return nil
}

func (s *MemoryTokenStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	delete(s.tokens, sessionID)
	s.mu.Unlock()
	return nil
}
