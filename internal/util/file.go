package util

import (
	"fmt"
	"os"
	"path/filepath"
)

func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o755)
}

// Scratch is a private temporary directory owned by one caller. Close
// removes it with everything written into it.
type Scratch struct {
	dir string
}

// NewScratch creates a fresh directory under parent (os.TempDir when empty).
func NewScratch(parent, pattern string) (*Scratch, error) {
	if parent == "" {
		parent = os.TempDir()
	}
	if err := EnsureDir(parent); err != nil {
		return nil, fmt.Errorf("scratch parent %s: %w", parent, err)
	}
	dir, err := os.MkdirTemp(parent, pattern)
	if err != nil {
		return nil, fmt.Errorf("scratch dir: %w", err)
	}
	return &Scratch{dir: dir}, nil
}

func (s *Scratch) Dir() string {
	return s.dir
}

// WriteFile stores data under name and returns the full path.
func (s *Scratch) WriteFile(name string, data []byte) (string, error) {
	path := filepath.Join(s.dir, filepath.Base(name))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// Close is safe to call more than once.
func (s *Scratch) Close() error {
	if s == nil || s.dir == "" {
		return nil
	}
	err := os.RemoveAll(s.dir)
	s.dir = ""
	return err
}
