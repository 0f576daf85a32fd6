package memory

import (
	"context"
	"sync"
	"time"

	"github.com/astroline/astroline-server/internal/model"
)

var _ model.SessionStore = (*SessionStore)(nil)

// SessionStore keeps sessions in process memory and drops expired
// entries on a fixed interval. It shares nothing with the entity store
// beyond the process lifetime.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]model.Session
	done     chan struct{}
	stopOnce sync.Once
}

func NewSessionStore(pruneInterval time.Duration) *SessionStore {
	s := &SessionStore{
		sessions: make(map[string]model.Session),
		done:     make(chan struct{}),
	}
	go s.prune(pruneInterval)

	return s
}

func (s *SessionStore) Create(_ context.Context, session model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.ID] = session
	return nil
}

func (s *SessionStore) GetByID(_ context.Context, id string) (model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return model.Session{}, model.ErrNotFound
	}
	if session.Expired(time.Now()) {
		return model.Session{}, model.ErrSessionExpired
	}
	return session, nil
}

func (s *SessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
	return nil
}

// Stop terminates the pruning loop.
func (s *SessionStore) Stop() {
	s.stopOnce.Do(func() { close(s.done) })
}

func (s *SessionStore) prune(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case now := <-ticker.C:
			s.mu.Lock()
			for id, session := range s.sessions {
				if session.Expired(now) {
					delete(s.sessions, id)
				}
			}
			s.mu.Unlock()
		}
	}
}
