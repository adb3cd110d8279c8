// Package fs provides file-based persistence for the local auth session.
package fs

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/zoltlabs/articlaw"
)

// SessionStore persists the auth session as a JSON file. Writes are atomic
// (temp file + rename) so a crash never leaves a torn session behind.
type SessionStore struct {
	path string
}

// NewSessionStore creates a SessionStore writing to the given path.
func NewSessionStore(path string) *SessionStore {
	return &SessionStore{path: path}
}

// DefaultSessionPath returns the conventional session file location under
// the user's home directory.
func DefaultSessionPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "articlaw-session.json"
	}
	return filepath.Join(home, ".articlaw", "session.json")
}

// Save writes the session to disk, creating parent directories as needed.
// The file is owner-readable only: it holds bearer credentials.
func (s *SessionStore) Save(session *articlaw.Session) error {
	if session == nil {
		return articlaw.Errorf(articlaw.EINVALID, "session required")
	}

	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "session-*.json")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Chmod(0600); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, s.path)
}

// Load reads the stored session. Returns EUNAUTHORIZED when no session has
// been saved.
func (s *SessionStore) Load() (*articlaw.Session, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, articlaw.Errorf(articlaw.EUNAUTHORIZED, "not logged in")
		}
		return nil, err
	}

	var session articlaw.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	if session.AccessToken == "" {
		return nil, articlaw.Errorf(articlaw.EUNAUTHORIZED, "not logged in")
	}
	return &session, nil
}

// Clear removes the stored session. Clearing an absent session is not an
// error.
func (s *SessionStore) Clear() error {
	err := os.Remove(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
