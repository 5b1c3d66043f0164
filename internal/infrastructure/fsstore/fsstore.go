package fsstore

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lens-project/lens-engine-sub000/internal/ports"
)

// Store is the os-backed file store used by the criteria repository.
type Store struct{}

var _ ports.FileStore = (*Store)(nil)

// New returns a ready store; it has no state.
func New() *Store {
	return &Store{}
}

// ReadText returns the file contents. A missing file surfaces as an error
// matching fs.ErrNotExist, which callers distinguish from other failures.
func (s *Store) ReadText(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(raw), nil
}

// WriteText writes the content, creating parent directories as needed.
func (s *Store) WriteText(path string, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create dir for %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
