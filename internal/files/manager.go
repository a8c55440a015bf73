package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	dirPermissions   = 0o700
	tokenPermissions = 0o600
	tokenFileName    = "session"
)

// ErrNoToken is returned when no session token has been saved.
var ErrNoToken = errors.New("no saved session token")

// Manager centralizes where pulse keeps local state on disk. The only state
// is the session token saved by `pulse login`; wellbeing data is never stored.
type Manager struct {
	basePath string
}

// NewManager constructs a Manager rooted at the provided directory. If basePath
// is empty, it falls back to ~/.pulse (or another location determined by
// ResolveBasePath).
func NewManager(basePath string) (*Manager, error) {
	var err error
	if basePath == "" {
		basePath, err = ResolveBasePath()
		if err != nil {
			return nil, err
		}
	}
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, err
	}

	return &Manager{basePath: abs}, nil
}

// BasePath returns the root directory holding local state.
func (m *Manager) BasePath() string {
	return m.basePath
}

// TokenPath resolves the absolute path of the saved session token.
func (m *Manager) TokenPath() string {
	return filepath.Join(m.basePath, tokenFileName)
}

// SaveToken writes token to disk readable only by the current user.
func (m *Manager) SaveToken(token string) error {
	if m == nil {
		return errors.New("files.Manager is nil")
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return errors.New("token is empty")
	}

	if err := os.MkdirAll(m.basePath, dirPermissions); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}
	if err := os.WriteFile(m.TokenPath(), []byte(token+"\n"), tokenPermissions); err != nil {
		return fmt.Errorf("write token: %w", err)
	}
	return nil
}

// LoadToken reads the saved session token.
func (m *Manager) LoadToken() (string, error) {
	if m == nil {
		return "", errors.New("files.Manager is nil")
	}
	data, err := os.ReadFile(m.TokenPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", ErrNoToken
		}
		return "", fmt.Errorf("read token: %w", err)
	}
	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", ErrNoToken
	}
	return token, nil
}

// ClearToken removes the saved session token. Clearing a missing token is not an error.
func (m *Manager) ClearToken() error {
	if m == nil {
		return errors.New("files.Manager is nil")
	}
	if err := os.Remove(m.TokenPath()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove token: %w", err)
	}
	return nil
}
