// Package tokenstore persists the session token, the only durable
// cross-session state the client owns.
package tokenstore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	envHome       = "SALUDYA_HOME" // override for tests
	dirName       = ".saludya"     // default under $HOME
	tokenFilename = "token"
)

// Store abstracts token persistence. Load returns the empty string when no
// token is stored; Clear on an empty store is a no-op.
type Store interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// FileStore keeps the token in a file under the SaludYa data directory.
type FileStore struct{}

// NewFileStore returns a file-backed token store.
func NewFileStore() *FileStore { return &FileStore{} }

// DataDir returns the directory where client state is stored (~/.saludya).
// It creates the directory with 0700 permissions if it does not exist.
func DataDir() (string, error) {
	if custom := os.Getenv(envHome); custom != "" {
		if err := os.MkdirAll(custom, 0o700); err != nil {
			return "", err
		}
		return custom, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine user home: %w", err)
	}
	dir := filepath.Join(home, dirName)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}
	return dir, nil
}

func tokenPath() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, tokenFilename), nil
}

// Load reads the persisted token. A missing file is not an error.
func (s *FileStore) Load() (string, error) {
	p, err := tokenPath()
	if err != nil {
		return "", err
	}
	b, err := os.ReadFile(p)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

// Save writes the token with owner-only permissions.
func (s *FileStore) Save(token string) error {
	p, err := tokenPath()
	if err != nil {
		return err
	}
	return os.WriteFile(p, []byte(token), 0o600)
}

// Clear removes the persisted token. Idempotent.
func (s *FileStore) Clear() error {
	p, err := tokenPath()
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// MemStore is an in-memory Store for tests.
type MemStore struct {
	token string
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore { return &MemStore{} }

// NewMemStoreWith returns an in-memory store seeded with token.
func NewMemStoreWith(token string) *MemStore { return &MemStore{token: token} }

// Load implements Store.
func (s *MemStore) Load() (string, error) { return s.token, nil }

// Save implements Store.
func (s *MemStore) Save(token string) error {
	s.token = token
	return nil
}

// Clear implements Store.
func (s *MemStore) Clear() error {
	s.token = ""
	return nil
}
