// Package session persists the authentication state between newsctl
// invocations: the bearer token issued at login and the login name it
// belongs to.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// record is the on-disk shape of the session file.
type record struct {
	AccessToken string `json:"access_token"`
	Login       string `json:"login"`
	Active      bool   `json:"active"`
}

// Store is a file-backed session store. Writes originate only from the
// login/logout flow; reads may happen from any goroutine, so all access
// goes through the mutex. A missing or unreadable file is treated as "no
// session", never as an error.
type Store struct {
	path   string
	logger *slog.Logger

	mu  sync.RWMutex
	cur record
}

// NewStore creates a session store backed by the given file path and loads
// any existing record.
func NewStore(path string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Store{path: path, logger: logger}
	s.load()
	return s
}

// DefaultPath returns the default session file location under the user's
// config directory.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".newsctl-session.json"
	}
	return filepath.Join(dir, "newsctl", "session.json")
}

func (s *Store) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug("session file unreadable, starting logged out", "path", s.path, "error", err)
		}
		return
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		s.logger.Warn("session file corrupt, starting logged out", "path", s.path, "error", err)
		return
	}

	s.cur = rec
}

// Save persists the token and login name and marks the session active.
func (s *Store) Save(token, login string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cur = record{AccessToken: token, Login: login, Active: true}
	return s.persist()
}

// Clear removes the stored credentials and marks the session inactive.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cur = record{}
	return s.persist()
}

// persist writes the current record. Callers hold the write lock.
func (s *Store) persist() error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("creating session directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(s.cur, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding session record: %w", err)
	}

	// 0600: the file holds a live bearer credential.
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("writing session file: %w", err)
	}
	return nil
}

// Token returns the stored access token, if any.
func (s *Store) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.cur.AccessToken == "" {
		return "", false
	}
	return s.cur.AccessToken, true
}

// Login returns the stored login name, if any.
func (s *Store) Login() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.cur.Login == "" {
		return "", false
	}
	return s.cur.Login, true
}

// Active reports whether a session is present: the active flag is set and
// a token is stored.
func (s *Store) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.cur.Active && s.cur.AccessToken != ""
}
