package session

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("session not found")

// Store keeps sessions in memory, keyed by a random UUID.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	limits   Limits
	logger   *slog.Logger
}

func NewStore(limits Limits, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		sessions: make(map[string]*Session),
		limits:   limits,
		logger:   logger,
	}
}

func (st *Store) Create() *Session {
	s := New(uuid.NewString(), st.limits, st.logger)

	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()

	st.logger.Info("session created", "session", s.ID)
	return s
}

func (st *Store) Get(id string) (*Session, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

func (st *Store) Delete(id string) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	if _, ok := st.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(st.sessions, id)
	st.logger.Info("session deleted", "session", id)
	return nil
}

func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
