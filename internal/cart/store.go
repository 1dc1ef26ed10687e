package cart

import (
	"context"
	"sync"

	"github.com/Beka01247/forno-storefront/internal/domain"
)

// Store keeps the line items of each cart session between requests.
type Store interface {
	Load(ctx context.Context, sessionID string) ([]domain.LineItem, error)
	Save(ctx context.Context, sessionID string, items []domain.LineItem) error
	Delete(ctx context.Context, sessionID string) error
}

type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string][]domain.LineItem
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string][]domain.LineItem)}
}

func (s *MemoryStore) Load(_ context.Context, sessionID string) ([]domain.LineItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items, ok := s.sessions[sessionID]
	if !ok {
		return nil, domain.ErrCartNotFound
	}
	return cloneItems(items), nil
}

func (s *MemoryStore) Save(_ context.Context, sessionID string, items []domain.LineItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[sessionID] = cloneItems(items)
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, sessionID)
	return nil
}

func cloneItems(items []domain.LineItem) []domain.LineItem {
	out := make([]domain.LineItem, len(items))
	for i, item := range items {
		out[i] = item.Clone()
	}
	return out
}
