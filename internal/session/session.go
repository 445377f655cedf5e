// Package session persists the signed-in user and token pair between CLI
// invocations.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"artdistrict/internal/api"
	"artdistrict/internal/logging"
)

// Session is the on-disk record of an authenticated account.
type Session struct {
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
	User         *api.User `json:"user,omitempty"`
	SavedAt      time.Time `json:"savedAt"`
}

// Manager handles loading and saving the session file. It implements
// api.TokenSource for the API client. Tokens are stored with owner-only
// file permissions.
type Manager struct {
	mu      sync.RWMutex
	path    string
	session *Session
}

// NewManager creates a manager for the session file under dir.
func NewManager(dir string) *Manager {
	return &Manager{path: filepath.Join(dir, "session.json")}
}

// Load reads the session from disk. A missing file means signed out, not an
// error.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, err := os.ReadFile(m.path)
	if err != nil {
		if os.IsNotExist(err) {
			m.session = nil
			return nil
		}
		return fmt.Errorf("failed to read session: %w", err)
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("failed to parse session: %w", err)
	}
	m.session = &s
	return nil
}

// Save writes the session to disk.
func (m *Manager) Save(s Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s.SavedAt.IsZero() {
		s.SavedAt = time.Now()
	}

	if err := os.MkdirAll(filepath.Dir(m.path), 0755); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}
	data, err := json.MarshalIndent(&s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := os.WriteFile(m.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}

	m.session = &s
	logging.Session("session saved for user=%s", s.userID())
	return nil
}

// Clear removes the session file and forgets the in-memory copy.
func (m *Manager) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.session = nil
	if err := os.Remove(m.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session: %w", err)
	}
	return nil
}

// Current returns the loaded session, or nil when signed out.
func (m *Manager) Current() *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session
}

// SignedIn reports whether a session with an access token is loaded.
func (m *Manager) SignedIn() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session != nil && m.session.AccessToken != ""
}

// AccessToken implements api.TokenSource.
func (m *Manager) AccessToken() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.session == nil {
		return ""
	}
	return m.session.AccessToken
}

// RefreshToken returns the stored refresh token, or the empty string.
func (m *Manager) RefreshToken() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.session == nil {
		return ""
	}
	return m.session.RefreshToken
}

// UpdateTokens replaces the token pair after a refresh, keeping the user.
func (m *Manager) UpdateTokens(t api.Tokens) error {
	m.mu.RLock()
	cur := m.session
	m.mu.RUnlock()

	s := Session{AccessToken: t.AccessToken, RefreshToken: t.RefreshToken}
	if cur != nil {
		s.User = cur.User
	}
	return m.Save(s)
}

func (s *Session) userID() string {
	if s.User == nil {
		return ""
	}
	return s.User.ID
}

var _ api.RefreshTokenSource = (*Manager)(nil)
