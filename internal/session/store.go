// Package session owns the mutable document state. Each editing session
// holds exactly one document; all reads hand out copies and all writes go
// through the store, so the pure core packages never see shared state.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/ekosiswoyo/cv-generator/internal/model"
)

// ErrNotFound is returned for unknown or expired session ids.
var ErrNotFound = errors.New("session not found")

// Session is one editing session and its document.
type Session struct {
	ID        uuid.UUID      `json:"id"`
	Document  model.Document `json:"document"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// Store is a mutex-guarded in-memory session map. Sessions idle past the
// TTL are discarded by the janitor; there is no other persistence.
type Store struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
	ttl      time.Duration
	logger   *zap.Logger
	now      func() time.Time
}

// NewStore creates a store whose sessions expire after ttl of inactivity.
func NewStore(ttl time.Duration, logger *zap.Logger) *Store {
	return &Store{
		sessions: make(map[uuid.UUID]*Session),
		ttl:      ttl,
		logger:   logger,
		now:      time.Now,
	}
}

// Create starts a session seeded with the default document.
func (s *Store) Create() Session {
	now := s.now()
	sess := &Session{
		ID:        uuid.New(),
		Document:  model.Default(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	return snapshot(sess)
}

// Get returns a copy of the session's document.
func (s *Store) Get(id uuid.UUID) (model.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return model.Document{}, ErrNotFound
	}
	return sess.Document.Clone(), nil
}

// Replace swaps the session's document wholesale, as import does.
func (s *Store) Replace(id uuid.UUID, doc model.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return ErrNotFound
	}
	sess.Document = doc.Clone()
	sess.UpdatedAt = s.now()
	return nil
}

// Update applies a pure mutation to the session's document and returns the
// resulting value. The function receives and returns documents by value;
// the stored document changes only when fn returns.
func (s *Store) Update(id uuid.UUID, fn func(model.Document) model.Document) (model.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return model.Document{}, ErrNotFound
	}
	sess.Document = fn(sess.Document.Clone())
	sess.UpdatedAt = s.now()
	return sess.Document.Clone(), nil
}

// Delete removes a session.
func (s *Store) Delete(id uuid.UUID) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep discards sessions idle past the TTL and reports how many went.
func (s *Store) Sweep() int {
	cutoff := s.now().Add(-s.ttl)
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, sess := range s.sessions {
		if sess.UpdatedAt.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// StartJanitor schedules periodic sweeps on the given cron spec. The
// returned cron is already running; callers stop it on shutdown.
func (s *Store) StartJanitor(spec string) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		if n := s.Sweep(); n > 0 {
			s.logger.Info("expired idle sessions", zap.Int("count", n))
		}
	})
	if err != nil {
		return nil, err
	}
	c.Start()
	return c, nil
}

func snapshot(sess *Session) Session {
	return Session{
		ID:        sess.ID,
		Document:  sess.Document.Clone(),
		CreatedAt: sess.CreatedAt,
		UpdatedAt: sess.UpdatedAt,
	}
}
