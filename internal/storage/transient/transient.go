// Package transient manages short-lived narration files on disk.
package transient

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const Ext = ".mp3"

type Store struct {
	dir string
}

// New creates dir if needed.
func New(dir string) (*Store, error) {
	if dir == "" {
		dir = filepath.Join(os.TempDir(), "moviebot")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create transient dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) Dir() string {
	return s.dir
}

// NewName returns a unique file name without extension.
func (s *Store) NewName() string {
	return "narration-" + uuid.NewString()
}

// Path returns the full path of name inside the store.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name+Ext)
}

// Remove deletes path. A file that is already gone is not an error.
func (s *Store) Remove(path string) error {
	if path == "" {
		return nil
	}
	if !s.owns(path) {
		return fmt.Errorf("refusing to remove %q outside %q", path, s.dir)
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func (s *Store) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Files lists the narration files currently in the store.
func (s *Store) Files() ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(s.dir, "*"+Ext))
	if err != nil {
		return nil, err
	}
	return matches, nil
}

// Purge removes every narration file left in the store and returns how many were removed.
func (s *Store) Purge() (int, error) {
	files, err := s.Files()
	if err != nil {
		return 0, err
	}

	var removed int
	var errs []error
	for _, f := range files {
		if err := s.Remove(f); err != nil {
			errs = append(errs, err)
			continue
		}
		removed++
	}

	return removed, errors.Join(errs...)
}

func (s *Store) owns(path string) bool {
	rel, err := filepath.Rel(s.dir, path)
	if err != nil {
		return false
	}
	return rel != "." && !strings.HasPrefix(rel, "..")
}
