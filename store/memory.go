package store

import (
	"context"
	"sync"
)

// Memory is an in-process store backed by a plain map. Entries live until
// process teardown; useful for tests and single-run embedding.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		entries: make(map[string]string),
	}
}

// Get returns the stored value for key, with ok=false when absent.
func (s *Memory) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.entries[key]
	return value, ok, nil
}

// Set stores value under key, overwriting any previous value.
func (s *Memory) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = value
	return nil
}
