package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// File persists entries as a single JSON document rewritten on every Set.
// It is the local-storage analog for CLI and desktop embeddings: one file
// per browsing-context equivalent, loaded once at open.
type File struct {
	path string

	mu      sync.Mutex
	entries map[string]string
}

// NewFile opens (or initializes) the store at path. A missing file starts
// empty; a corrupt one is an error.
func NewFile(path string) (*File, error) {
	s := &File{
		path:    path,
		entries: make(map[string]string),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *File) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read store file: %w", err)
	}
	if err := json.Unmarshal(data, &s.entries); err != nil {
		return fmt.Errorf("decode store file: %w", err)
	}
	return nil
}

func (s *File) save() error {
	data, err := json.Marshal(s.entries)
	if err != nil {
		return fmt.Errorf("encode store file: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write store file: %w", err)
	}
	return nil
}

// Get returns the stored value for key, with ok=false when absent.
func (s *File) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, ok := s.entries[key]
	return value, ok, nil
}

// Set stores value under key and rewrites the backing file. The in-memory
// view is only updated when the write succeeds.
func (s *File) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous, had := s.entries[key]
	s.entries[key] = value
	if err := s.save(); err != nil {
		if had {
			s.entries[key] = previous
		} else {
			delete(s.entries, key)
		}
		return err
	}
	return nil
}
