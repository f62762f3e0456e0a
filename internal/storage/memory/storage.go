package memory

import (
	"context"
	"sync"

	"github.com/draftelite/onboarding-go/internal/model"
	"github.com/draftelite/onboarding-go/internal/storage"
)

// Storage is an in-memory implementation of the flag store
type Storage struct {
	mu    sync.RWMutex
	flags map[string]string
}

// New creates a new in-memory flag store
func New() *Storage {
	return &Storage{
		flags: make(map[string]string),
	}
}

// Ensure Storage implements the interface
var _ storage.FlagStore = (*Storage)(nil)

func (s *Storage) Get(ctx context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.flags[key]
	if !ok {
		return "", model.ErrFlagNotFound
	}
	return value, nil
}

func (s *Storage) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flags[key] = value
	return nil
}
