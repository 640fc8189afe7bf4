package auth

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type memorySession struct {
	adminID   int
	expiresAt time.Time
}

// MemorySessions is the default SessionStore: tokens live in a map with a
// per-session deadline. Expired entries are rejected on Resolve; Sweep
// reclaims them and is meant to run on a schedule.
type MemorySessions struct {
	mu       sync.RWMutex
	sessions map[string]memorySession
	ttl      time.Duration
}

func NewMemorySessions(ttl time.Duration) *MemorySessions {
	return &MemorySessions{
		sessions: make(map[string]memorySession),
		ttl:      ttl,
	}
}

func (m *MemorySessions) Create(_ context.Context, adminID int) (string, error) {
	token := uuid.New().String()

	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[token] = memorySession{
		adminID:   adminID,
		expiresAt: time.Now().Add(m.ttl),
	}
	return token, nil
}

func (m *MemorySessions) Resolve(_ context.Context, token string) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sess, ok := m.sessions[token]
	if !ok || time.Now().After(sess.expiresAt) {
		return 0, ErrSessionNotFound
	}
	return sess.adminID, nil
}

func (m *MemorySessions) Invalidate(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, token)
	return nil
}

// Sweep drops expired sessions and returns how many were removed.
func (m *MemorySessions) Sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	removed := 0
	for token, sess := range m.sessions {
		if now.After(sess.expiresAt) {
			delete(m.sessions, token)
			removed++
		}
	}
	return removed
}
