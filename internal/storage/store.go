package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

var (
	ErrNotFound = errors.New("no value stored for key")
)

// Collection keys. Each key maps to one serialized blob in the store.
const (
	KeyProducts = "products"
	KeyOrders   = "orders"
	KeyCart     = "cart"
)

// Store is a durable key-value blob store. Every Save is a full rewrite
// of the value under the key; last writer wins, no merge, no versioning.
type Store interface {
	// Load deserializes the value stored under key into out. Returns
	// ErrNotFound when nothing has been stored yet.
	Load(key string, out interface{}) error

	// Save serializes v and overwrites the value stored under key.
	Save(key string, v interface{}) error
}

type fileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore creates a Store persisting each key as a JSON file under
// dir, creating dir if needed.
func NewFileStore(dir string) (Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}
	return &fileStore{dir: dir}, nil
}

func (s *fileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *fileStore) Load(key string, out interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to read %q: %w", key, err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode %q: %w", key, err)
	}

	return nil
}

func (s *fileStore) Save(key string, v interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %q: %w", key, err)
	}

	// Write to a temp file first so a crash mid-write never truncates
	// the previous blob.
	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %q: %w", key, err)
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		return fmt.Errorf("failed to replace %q: %w", key, err)
	}

	return nil
}

type memStore struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

// NewMemStore creates an in-memory Store with the same semantics as the
// file-backed one. Intended for tests and ephemeral runs.
func NewMemStore() Store {
	return &memStore{blobs: make(map[string][]byte)}
}

func (s *memStore) Load(key string, out interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.blobs[key]
	if !ok {
		return ErrNotFound
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode %q: %w", key, err)
	}
	return nil
}

func (s *memStore) Save(key string, v interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %q: %w", key, err)
	}
	s.blobs[key] = data
	return nil
}
