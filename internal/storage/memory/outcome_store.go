package memory

import (
	"context"
	"sort"
	"sync"

	"blackjack-lab/internal/domain"
	"blackjack-lab/internal/storage"
)

// OutcomeStore is an in-memory implementation of storage.OutcomeStore.
type OutcomeStore struct {
	mu   sync.RWMutex
	data map[string][]domain.HandOutcome
}

// NewOutcomeStore creates a new in-memory outcome store.
func NewOutcomeStore() *OutcomeStore {
	return &OutcomeStore{
		data: make(map[string][]domain.HandOutcome),
	}
}

// Compile-time interface check.
var _ storage.OutcomeStore = (*OutcomeStore)(nil)

// ReplaceStrategy replaces the full outcome sequence for a strategy.
func (s *OutcomeStore) ReplaceStrategy(_ context.Context, key string, hands []domain.HandOutcome) error {
	if key == "" {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	handsCopy := make([]domain.HandOutcome, len(hands))
	copy(handsCopy, hands)
	s.data[key] = handsCopy
	return nil
}

// GetByStrategy retrieves a strategy's outcome sequence in simulation order.
func (s *OutcomeStore) GetByStrategy(_ context.Context, key string) ([]domain.HandOutcome, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	hands, exists := s.data[key]
	if !exists {
		return nil, storage.ErrNotFound
	}

	handsCopy := make([]domain.HandOutcome, len(hands))
	copy(handsCopy, hands)
	return handsCopy, nil
}

// Keys returns all strategy keys with stored outcomes, sorted.
func (s *OutcomeStore) Keys(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}
