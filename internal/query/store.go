package query

import (
	"bytes"
	"context"
	"sync"
	"time"
)

// Entry is an encoded query result and the moment it was fetched.
type Entry struct {
	Data     []byte    `json:"data"`
	StoredAt time.Time `json:"storedAt"`
}

// Store keeps encoded query results.
type Store interface {
	Get(ctx context.Context, key string) (Entry, bool, error)
	Set(ctx context.Context, key string, entry Entry) error
	// DeleteEntity drops the collection key of entity and all its detail keys.
	DeleteEntity(ctx context.Context, entity string) error
}

// MemoryStore is a process-local Store.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]Entry)}
}

var _ Store = (*MemoryStore)(nil)

func (s *MemoryStore) Get(_ context.Context, key string) (Entry, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[key]
	if !ok {
		return Entry{}, false, nil
	}
	return Entry{Data: bytes.Clone(e.Data), StoredAt: e.StoredAt}, true, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, entry Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = Entry{Data: bytes.Clone(entry.Data), StoredAt: entry.StoredAt}
	return nil
}

func (s *MemoryStore) DeleteEntity(_ context.Context, entity string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key := range s.entries {
		if BelongsTo(key, entity) {
			delete(s.entries, key)
		}
	}
	return nil
}

// Len reports the number of cached entries.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
