package session

import (
	"strings"
	"sync"
)

// Registry holds the sessions that reached the play state, keyed by the client's UUID.
type Registry struct {
	sessions map[string]*Session
	mu       sync.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
	}
}

func (r *Registry) AddSession(uuid string, session *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[uuid] = session
}

func (r *Registry) GetSession(uuid string) *Session {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sessions[uuid]
}

func (r *Registry) GetSessionByUsername(username string) *Session {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, session := range r.sessions {
		if strings.EqualFold(session.Username(), username) {
			return session
		}
	}
	return nil
}

func (r *Registry) RemoveSession(uuid string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, uuid)
}

func (r *Registry) GetSessions() []*Session {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sessions := make([]*Session, 0, len(r.sessions))
	for _, session := range r.sessions {
		sessions = append(sessions, session)
	}
	return sessions
}

// Len returns the number of registered sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
