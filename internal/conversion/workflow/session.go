package workflow

import (
	"context"
	"sync"
	"time"

	"salescrm_backend/internal/conversion/domain"

	"github.com/google/uuid"
)

// session wraps one WorkflowState with its access lock and commit guard.
// All mutation happens under mu; committing marks an in-flight commit so a
// second trigger is rejected while the first is outstanding.
type session struct {
	mu         sync.Mutex
	state      *domain.WorkflowState
	committing bool
	lastActive time.Time
}

// SessionStore keeps live workflow runs in memory, keyed by workflow id.
// Runs are never persisted; idle ones are evicted after the TTL.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*session
	ttl      time.Duration
}

// NewSessionStore creates a store with the given idle TTL. A zero TTL
// disables eviction.
func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		sessions: make(map[uuid.UUID]*session),
		ttl:      ttl,
	}
}

func (s *SessionStore) put(state *domain.WorkflowState) *session {
	sess := &session{
		state:      state,
		lastActive: time.Now(),
	}

	s.mu.Lock()
	s.sessions[state.ID] = sess
	s.mu.Unlock()

	return sess
}

func (s *SessionStore) get(id uuid.UUID) (*session, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}

	if s.expired(sess) {
		s.remove(id)
		return nil, false
	}

	sess.mu.Lock()
	sess.lastActive = time.Now()
	sess.mu.Unlock()
	return sess, true
}

func (s *SessionStore) remove(id uuid.UUID) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

func (s *SessionStore) expired(sess *session) bool {
	if s.ttl <= 0 {
		return false
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return time.Since(sess.lastActive) > s.ttl
}

// StartEvictor drops idle sessions in the background until ctx is done.
func (s *SessionStore) StartEvictor(ctx context.Context) {
	if s.ttl <= 0 {
		return
	}

	interval := s.ttl / 4
	if interval < time.Minute {
		interval = time.Minute
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.evictIdle()
			}
		}
	}()
}

func (s *SessionStore) evictIdle() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, sess := range s.sessions {
		sess.mu.Lock()
		idle := time.Since(sess.lastActive) > s.ttl
		inFlight := sess.committing
		sess.mu.Unlock()

		if idle && !inFlight {
			delete(s.sessions, id)
		}
	}
}

// Len reports the number of live sessions.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
