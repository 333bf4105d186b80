package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fespace-studio/fespace/models"
)

// SessionData is a snapshot of the logged-in user.
type SessionData struct {
	UserID uint        `json:"user_id"`
	Role   models.Role `json:"role"`
	Name   string      `json:"name"`
	Email  string      `json:"email"`
}

// prefs is the on-disk shape of the key-value file. It also carries the
// one-time seeding flag, which survives logout.
type prefs struct {
	IsLoggedIn     bool        `json:"is_logged_in"`
	UserID         uint        `json:"user_id"`
	UserRole       models.Role `json:"user_role"`
	UserName       string      `json:"user_name"`
	UserEmail      string      `json:"user_email"`
	DatabaseSeeded bool        `json:"database_seeded"`
}

// Manager persists the login session in a small key-value file in app-private
// storage, separate from the relational store. Reads are served from memory;
// every mutation is written through to disk.
type Manager struct {
	mu    sync.Mutex
	path  string
	prefs prefs
}

// NewManager loads (or initializes) the session file at path.
func NewManager(path string) (*Manager, error) {
	m := &Manager{path: path}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return m, nil // first install, everything zero-valued
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}
	if err := json.Unmarshal(data, &m.prefs); err != nil {
		return nil, fmt.Errorf("failed to parse session file: %w", err)
	}
	return m, nil
}

// SaveSession records the user after a successful login.
func (m *Manager) SaveSession(userID uint, role models.Role, name, email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.prefs.IsLoggedIn = true
	m.prefs.UserID = userID
	m.prefs.UserRole = role
	m.prefs.UserName = name
	m.prefs.UserEmail = email
	return m.flush()
}

// ClearSession logs the user out. The seeding flag is kept.
func (m *Manager) ClearSession() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	seeded := m.prefs.DatabaseSeeded
	m.prefs = prefs{DatabaseSeeded: seeded}
	return m.flush()
}

// IsLoggedIn reports whether a session is active.
func (m *Manager) IsLoggedIn() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.prefs.IsLoggedIn
}

// UserID returns the logged-in user's id, or 0 when logged out.
func (m *Manager) UserID() uint {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.prefs.UserID
}

// UserRole returns the logged-in user's role, or "" when logged out.
func (m *Manager) UserRole() models.Role {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.prefs.UserRole
}

// UserName returns the logged-in user's display name.
func (m *Manager) UserName() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.prefs.UserName
}

// UserEmail returns the logged-in user's email.
func (m *Manager) UserEmail() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.prefs.UserEmail
}

// Session returns the current session snapshot, or nil when logged out.
func (m *Manager) Session() *SessionData {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.prefs.IsLoggedIn {
		return nil
	}
	return &SessionData{
		UserID: m.prefs.UserID,
		Role:   m.prefs.UserRole,
		Name:   m.prefs.UserName,
		Email:  m.prefs.UserEmail,
	}
}

// IsSeeded reports whether first-run seeding already happened.
func (m *Manager) IsSeeded() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.prefs.DatabaseSeeded
}

// MarkSeeded records that first-run seeding has happened.
func (m *Manager) MarkSeeded() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.prefs.DatabaseSeeded = true
	return m.flush()
}

// flush writes the prefs file. Callers hold m.mu.
func (m *Manager) flush() error {
	data, err := json.MarshalIndent(m.prefs, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(m.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create session directory: %w", err)
		}
	}
	if err := os.WriteFile(m.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}
