package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/mcoot/tourneyview/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// Nothing survives a restart; used for tests and throwaway runs.
type Storage struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		values: make(map[string][]byte),
	}
}

// Ensure Storage implements the interface
var _ storage.Store = (*Storage)(nil)

func (s *Storage) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return slices.Clone(value), nil
}

func (s *Storage) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = slices.Clone(value)
	return nil
}

// Close is a no-op for the memory store
func (s *Storage) Close() error {
	return nil
}
