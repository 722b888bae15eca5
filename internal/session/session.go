// Package session holds the client-side half of authentication: the
// cookie-keyed session record pairing a backend bearer token with the
// cached identity it was issued to, and the expiry check that decides
// whether the record is still usable.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned by Store.Get for unknown or deleted sessions.
var ErrNotFound = errors.New("session: not found")

// Session pairs a bearer token with the identity cached at login time.
// Invariant: a stored Session implies the token was unexpired when last
// checked; the middleware re-checks and deletes on every request.
type Session struct {
	ID        string
	Token     string
	UserID    int64
	Username  string
	IsAdmin   bool
	CreatedAt time.Time
}

// New builds a Session with a fresh random ID.
func New(token string, userID int64, username string, isAdmin bool) *Session {
	return &Session{
		ID:        uuid.NewString(),
		Token:     token,
		UserID:    userID,
		Username:  username,
		IsAdmin:   isAdmin,
		CreatedAt: time.Now(),
	}
}

type Store interface {
	Create(ctx context.Context, s *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}

// MemoryStore keeps sessions in a process-local map. Used by the tests
// and for running without a database (SESSION_BACKEND=memory); sessions
// then do not survive a restart.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]Session)}
}

func (m *MemoryStore) Create(_ context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = *s
	return nil
}

func (m *MemoryStore) Get(_ context.Context, id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &s, nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}
