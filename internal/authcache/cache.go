// Package authcache holds the process-lifetime authorization cache used by
// the persistence gate.
//
// The cache exists to avoid redundant hashing and store round-trips across
// repeated authorization checks within one process lifetime, and to keep a
// check that follows a successful write from observing stale store state. It
// is not a security feature.
package authcache

import "sync"

// State is the tri-state result cached per derived storage key.
type State int

const (
	// Unknown means no result has been cached for the key.
	Unknown State = iota
	// Authorized means a prior check or write resolved to authorized.
	Authorized
	// Denied means a prior check resolved to not authorized.
	Denied
)

// Cache is a concurrency-safe map from derived storage key to [State].
// Created empty, populated on resolution, never invalidated; it lives until
// process teardown.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]State
}

// New creates an empty Cache.
func New() *Cache {
	return &Cache{
		entries: make(map[string]State),
	}
}

// Get returns the cached state for key, or [Unknown].
func (c *Cache) Get(key string) State {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.entries[key]
}

// Set records a resolved state for key. Storing [Unknown] is a no-op; the
// cache only ever moves a key out of the unknown state.
func (c *Cache) Set(key string, state State) {
	if state == Unknown {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = state
}
