package storage

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
)

// MemoryStore keeps documents in process memory. It backs the memory backend
// and gives tests a fresh, isolated store per instance. Documents are held in
// serialized form so Get/Set round-trip exactly like the SQLite store.
type MemoryStore struct {
	mu   sync.Mutex
	docs map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string][]byte)}
}

// Set implements Store.
func (s *MemoryStore) Set(ctx context.Context, key string, value any) bool {
	payload, err := json.Marshal(value)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to serialize document", "key", key, "error", err)
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[key] = payload
	return true
}

// Get implements Store.
func (s *MemoryStore) Get(ctx context.Context, key string, dest any) bool {
	s.mu.Lock()
	payload, ok := s.docs[key]
	s.mu.Unlock()
	if !ok {
		return false
	}

	if err := json.Unmarshal(payload, dest); err != nil {
		slog.WarnContext(ctx, "Corrupt document, treating as absent", "key", key, "error", err)
		return false
	}

	return true
}

// Remove implements Store.
func (s *MemoryStore) Remove(_ context.Context, key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, key)
}
