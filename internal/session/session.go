// Package session persists the operator's session token between CLI
// invocations. Login writes the token; every later command reads it back
// and validates it before touching the ledger.
package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const fileName = "session"

// Manager reads and writes the session-token file inside the app's home
// directory.
type Manager struct {
	dir string
}

// NewManager creates a manager rooted at the given directory.
func NewManager(dir string) *Manager {
	return &Manager{dir: dir}
}

// Save writes the token, replacing any previous session. The file is
// operator-private (0600).
func (m *Manager) Save(token string) error {
	if err := os.MkdirAll(m.dir, 0o700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}
	if err := os.WriteFile(m.path(), []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	return nil
}

// Load returns the stored token. A missing file means no session; the
// caller distinguishes that with os.IsNotExist.
func (m *Manager) Load() (string, error) {
	data, err := os.ReadFile(m.path())
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// Clear removes the session file. Clearing an absent session is not an
// error.
func (m *Manager) Clear() error {
	err := os.Remove(m.path())
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

func (m *Manager) path() string {
	return filepath.Join(m.dir, fileName)
}
