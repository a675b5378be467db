package store

import (
	"context"
	"sync"

	"github.com/samdwyer/warband/internal/game"
)

// MemoryStore keeps the game in process memory.
type MemoryStore struct {
	mu sync.RWMutex
	st *game.State
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load(_ context.Context) (game.State, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.st == nil {
		return game.State{}, false, nil
	}
	return *s.st, true, nil
}

func (s *MemoryStore) Save(_ context.Context, st game.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st = &st
	return nil
}
