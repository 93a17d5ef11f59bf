// Package session holds the identity of the user logged in to this process.
package session

import (
	"sync"

	"github.com/dmitrijs2005/hotelres/internal/models"
)

// Manager is a single-slot session store. The zero value is an empty
// session and is ready to use. It is safe for concurrent use.
type Manager struct {
	mu       sync.RWMutex
	identity models.Identity
	present  bool
}

func NewManager() *Manager {
	return &Manager{}
}

// SetUser replaces the current identity; the last writer wins.
func (m *Manager) SetUser(id models.Identity) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.identity = id
	m.present = true
}

// GetUser returns the current identity and whether one is set.
func (m *Manager) GetUser() (models.Identity, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.present {
		return models.Identity{}, false
	}
	return m.identity, true
}

// Clear empties the session. Clearing an empty session is a no-op.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.identity = models.Identity{}
	m.present = false
}

func (m *Manager) IsLoggedIn() bool {
	_, ok := m.GetUser()
	return ok
}
