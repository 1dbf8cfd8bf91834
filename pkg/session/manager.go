package session

import (
	"sync"

	"github.com/reviewlens/reviewlens/pkg/models"
)

// Manager is the registry of live sessions, keyed by session ID. Sessions
// are created per product and carry their own index and memory, so the
// manager's only job is lookup and lifecycle.
type Manager struct {
	appState *models.AppState

	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewManager(appState *models.AppState) *Manager {
	return &Manager{
		appState: appState,
		sessions: make(map[string]*Session),
	}
}

// Create builds a new session for the given ASIN and registers it. The
// session is returned unloaded; the caller decides when to Load.
func (m *Manager) Create(asin string) *Session {
	s := NewSession(m.appState, asin)

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()

	return s
}

func (m *Manager) Get(sessionID string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[sessionID]
	m.mu.RUnlock()
	if !ok {
		return nil, models.NewNotFoundError("session " + sessionID)
	}
	return s, nil
}

// Close closes the session and removes it from the registry.
func (m *Manager) Close(sessionID string) error {
	m.mu.Lock()
	s, ok := m.sessions[sessionID]
	if ok {
		delete(m.sessions, sessionID)
	}
	m.mu.Unlock()
	if !ok {
		return models.NewNotFoundError("session " + sessionID)
	}
	s.Close()
	return nil
}

// Len reports the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
