package history

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"sync"
)

// MemoryStore is an in-process Repository. It is the default store when
// no database is configured and is safe for concurrent use.
type MemoryStore struct {
	mu      sync.Mutex
	entries []Entry // newest first
}

// NewMemoryStore creates an empty in-memory history store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Append implements Repository.
func (s *MemoryStore) Append(_ context.Context, entry Entry) (Entry, error) {
	entry.ID = newID()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append([]Entry{entry}, s.entries...)
	if len(s.entries) > Capacity {
		s.entries = s.entries[:Capacity]
	}
	return entry, nil
}

// List implements Repository.
func (s *MemoryStore) List(_ context.Context) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out, nil
}

// Clear implements Repository.
func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = nil
	return nil
}

// Remove implements Repository.
func (s *MemoryStore) Remove(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, entry := range s.entries {
		if entry.ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// newID returns a random 16-character hex identifier.
func newID() string {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// crypto/rand only fails when the platform source is broken;
		// fall back to the zero id rather than failing the append.
		return "0000000000000000"
	}
	return hex.EncodeToString(buf[:])
}
