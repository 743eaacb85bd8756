package client

import "sync"

// Session is the logged-in state the admin console carries around.
type Session struct {
	Token    string
	Username string
	Role     string
}

func (s Session) IsAdmin() bool {
	return s.Role == "Admin"
}

// SessionStore holds the current session and notifies subscribers on every
// change, replacing the shared browser-storage session of old with an
// explicit object components can watch.
type SessionStore struct {
	mu      sync.RWMutex
	current Session
	subs    map[int]func(Session)
	nextID  int
}

func NewSessionStore() *SessionStore {
	return &SessionStore{subs: make(map[int]func(Session))}
}

func (s *SessionStore) Current() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *SessionStore) Set(session Session) {
	s.mu.Lock()
	s.current = session
	subs := make([]func(Session), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(session)
	}
}

func (s *SessionStore) Clear() {
	s.Set(Session{})
}

// Subscribe registers a listener for session changes and returns its
// unsubscribe function.
func (s *SessionStore) Subscribe(fn func(Session)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}
