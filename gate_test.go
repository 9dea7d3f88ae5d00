package pagegate

import (
	"context"
	"errors"
	"sync"
	"testing"
)

var errTestHash = errors.New("hash backend unavailable")

// countingStore is a Store fake with call counting and fault injection.
type countingStore struct {
	mu      sync.Mutex
	entries map[string]string
	gets    int
	sets    int
	getErr  error
	setErr  error
}

func newCountingStore() *countingStore {
	return &countingStore{
		entries: make(map[string]string),
	}
}

func (s *countingStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gets++
	if s.getErr != nil {
		return "", false, s.getErr
	}
	value, ok := s.entries[key]
	return value, ok, nil
}

func (s *countingStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sets++
	if s.setErr != nil {
		return s.setErr
	}
	s.entries[key] = value
	return nil
}

func (s *countingStore) getCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gets
}

func (s *countingStore) setCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sets
}

func newTestGate(t *testing.T, cfg Config, st Store) *Gate {
	t.Helper()

	gate, err := New().
		WithConfig(cfg).
		WithStore(st).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	t.Cleanup(gate.Close)

	return gate
}

func localPasswordConfig(password string) Config {
	cfg := DefaultConfig()
	cfg.Gate.Password = password
	return cfg
}
