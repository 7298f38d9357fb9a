package builder

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/merxlab/merx/pkg/models"
	"github.com/merxlab/merx/pkg/services"
)

// Session is one in-flight builder dialogue. Sessions live only in memory;
// an interrupted dialogue is restarted, not resumed.
type Session struct {
	ID         string
	OwnerID    string
	State      *State
	Transcript []models.ChatMessage
	AgentID    string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	mu sync.Mutex
}

// append records one transcript turn. Callers hold the session lock.
func (s *Session) append(role, content string) {
	s.Transcript = append(s.Transcript, models.ChatMessage{
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	})
	s.UpdatedAt = time.Now()
}

// Manager holds builder sessions in memory.
type Manager struct {
	sessions map[string]*Session
	mu       sync.RWMutex
}

// NewManager creates an empty session manager.
func NewManager() *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
	}
}

// Create starts a fresh session for the given owner.
func (m *Manager) Create(ownerID string) *Session {
	now := time.Now()
	session := &Session{
		ID:        uuid.New().String(),
		OwnerID:   ownerID,
		State:     NewState(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	m.mu.Lock()
	m.sessions[session.ID] = session
	m.mu.Unlock()

	return session
}

// Get retrieves a session, scoped to its owner.
func (m *Manager) Get(sessionID, ownerID string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	session, ok := m.sessions[sessionID]
	if !ok || session.OwnerID != ownerID {
		return nil, fmt.Errorf("builder session %s: %w", sessionID, services.ErrNotFound)
	}
	return session, nil
}

// Delete removes a session.
func (m *Manager) Delete(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sessionID)
}

// DeleteStale drops sessions idle longer than maxIdle and reports how many
// went. Completed sessions age out the same way; their agent already exists.
func (m *Manager) DeleteStale(maxIdle time.Duration) int {
	cutoff := time.Now().Add(-maxIdle)

	m.mu.Lock()
	defer m.mu.Unlock()

	dropped := 0
	for id, session := range m.sessions {
		if session.UpdatedAt.Before(cutoff) {
			delete(m.sessions, id)
			dropped++
		}
	}
	return dropped
}
