package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/velarium/scriptorium/internal/domain"
)

// MemoryStore is an in-memory Store. State survives only for the lifetime
// of the process; it exists for tests and for running without Postgres.
type MemoryStore struct {
	mu   sync.RWMutex
	data []byte
}

// NewMemoryStore creates an empty MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load returns a copy of the stored snapshot
func (s *MemoryStore) Load(_ context.Context) (*domain.PlayerState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.data == nil {
		return nil, ErrNoSnapshot
	}

	var state domain.PlayerState
	if err := json.Unmarshal(s.data, &state); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return &state, nil
}

// Save stores a copy of the snapshot
func (s *MemoryStore) Save(_ context.Context, state *domain.PlayerState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	s.mu.Lock()
	s.data = data
	s.mu.Unlock()
	return nil
}

// Close is a no-op
func (s *MemoryStore) Close() {}
