// Package tokenfile persists the bearer credential in a single file under
// the user's configuration directory. The file either exists and holds the
// token verbatim, or is absent, which is the canonical logged-out signal.
package tokenfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/se1dhe/botpanel/internal/ports"
)

const (
	fileMode = 0o600
	dirMode  = 0o700
)

// Ensure compile-time conformance to ports.
var _ ports.CredentialStore = (*Store)(nil)

// Store is a file-backed credential slot.
type Store struct {
	path string
}

// New creates a Store writing to the given path.
func New(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("token file path is required")
	}
	return &Store{path: path}, nil
}

// Path returns the location of the token file.
func (s *Store) Path() string {
	return s.path
}

// Load reads the persisted credential. A missing file is not an error:
// it returns ("", nil).
func (s *Store) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("read token file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Store writes the credential atomically: the token lands in a temp file in
// the same directory and is renamed over the slot, so concurrent readers
// observe either the old or the new value, never a partial write.
func (s *Store) Store(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return errors.New("token is required")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, dirMode); err != nil {
		return fmt.Errorf("create token dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".token-*")
	if err != nil {
		return fmt.Errorf("create temp token file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		// Best-effort cleanup when the rename below did not happen.
		_ = os.Remove(tmpName)
	}()

	if err = tmp.Chmod(fileMode); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod temp token file: %w", err)
	}
	if _, err = tmp.WriteString(token + "\n"); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp token file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp token file: %w", err)
	}

	if err = os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replace token file: %w", err)
	}
	return nil
}

// Clear removes the persisted credential. Clearing an already-empty slot
// is not an error.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove token file: %w", err)
	}
	return nil
}
