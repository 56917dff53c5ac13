package save

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNotFound is returned by a Store when no value exists for a key.
var ErrNotFound = errors.New("save: key not found")

// Store is the key-value storage the save layer persists through. The
// original game wrote to browser localStorage; here the same contract is
// a blob per fixed key.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, data []byte) error
	Delete(key string) error
}

// FileStore persists each key as a JSON file under a base directory.
type FileStore struct {
	dir string
}

// NewFileStore creates a file-backed store, creating the directory if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create save directory %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Get reads the value stored for key.
func (s *FileStore) Get(key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return data, nil
}

// Set writes the value for key.
func (s *FileStore) Set(key string, data []byte) error {
	if err := os.WriteFile(s.path(key), data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// Delete removes the value for key. Deleting a missing key is not an error.
func (s *FileStore) Delete(key string) error {
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

// MemoryStore is an in-memory Store for tests.
type MemoryStore struct {
	values map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string][]byte)}
}

// Get reads the value stored for key.
func (s *MemoryStore) Get(key string) ([]byte, error) {
	data, ok := s.values[key]
	if !ok {
		return nil, ErrNotFound
	}
	return data, nil
}

// Set writes the value for key.
func (s *MemoryStore) Set(key string, data []byte) error {
	s.values[key] = append([]byte(nil), data...)
	return nil
}

// Delete removes the value for key.
func (s *MemoryStore) Delete(key string) error {
	delete(s.values, key)
	return nil
}

var (
	_ Store = (*FileStore)(nil)
	_ Store = (*MemoryStore)(nil)
)
