package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileStore keeps each key in its own file under a base directory.
type FileStore struct {
	baseDir string
}

// NewFileStore ensures the base directory exists and returns a handle.
func NewFileStore(baseDir string) (*FileStore, error) {
	if baseDir == "" {
		baseDir = "./data"
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create store directory: %w", err)
	}
	return &FileStore{baseDir: baseDir}, nil
}

// Get reads the value stored for key.
func (s *FileStore) Get(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(s.resolve(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read store key %s: %w", key, err)
	}
	return data, nil
}

// Set writes the value for key, replacing any previous one.
func (s *FileStore) Set(_ context.Context, key string, value []byte) error {
	if err := os.WriteFile(s.resolve(key), value, 0o644); err != nil {
		return fmt.Errorf("write store key %s: %w", key, err)
	}
	return nil
}

// Remove deletes the key; removing an absent key is not an error.
func (s *FileStore) Remove(_ context.Context, key string) error {
	if err := os.Remove(s.resolve(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove store key %s: %w", key, err)
	}
	return nil
}

// resolve keeps keys inside the base directory regardless of their content.
func (s *FileStore) resolve(key string) string {
	safe := strings.ReplaceAll(key, string(os.PathSeparator), "_")
	return filepath.Join(s.baseDir, filepath.Base(safe)+".json")
}
