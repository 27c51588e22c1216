// Package session implements the client side of the authentication flow:
// submitting the login and signup forms, holding the issued token in
// session-scoped storage, and reading identity claims for display.
package session

import "sync"

// TokenKey is the single well-known storage key the access token lives under.
const TokenKey = "authToken"

// TokenStore abstracts session-scoped token storage so components depend on a
// capability rather than a global. A browser's sessionStorage, an in-memory
// map, or a test double all satisfy it.
type TokenStore interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Clear(key string)
}

// MemoryStore is a TokenStore backed by an in-process map. Its contents live
// for the life of the process, mirroring the tab-scoped lifetime of browser
// session storage.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore creates an empty in-memory token store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// Get returns the value for key and whether it was present.
func (s *MemoryStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

// Set stores value under key, replacing any previous value.
func (s *MemoryStore) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

// Clear removes key from the store.
func (s *MemoryStore) Clear(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
}

var _ TokenStore = (*MemoryStore)(nil)
