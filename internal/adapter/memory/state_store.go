package memory

import (
	"context"
	"sync"

	"mesa-ledger/internal/core/domain"
)

// StateStore keeps the last saved state in memory. It satisfies
// port.StateRepository for tests and for deployments without a database.
type StateStore struct {
	mu    sync.Mutex
	state *domain.State
}

// NewStateStore returns an empty store.
func NewStateStore() *StateStore {
	return &StateStore{}
}

// Load returns a copy of the last saved state.
func (s *StateStore) Load(_ context.Context) (*domain.State, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == nil {
		return nil, false, nil
	}
	return s.state.Clone(), true, nil
}

// Save keeps a copy of state.
func (s *StateStore) Save(_ context.Context, state *domain.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state.Clone()
	return nil
}
