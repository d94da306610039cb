package memory

import (
	"context"
	"sort"
	"sync"

	"blackjack-lab/internal/domain"
	"blackjack-lab/internal/storage"
)

// SummaryStore is an in-memory implementation of storage.SummaryStore.
type SummaryStore struct {
	mu   sync.RWMutex
	data map[string]*domain.StrategySummary
}

// NewSummaryStore creates a new in-memory summary store.
func NewSummaryStore() *SummaryStore {
	return &SummaryStore{
		data: make(map[string]*domain.StrategySummary),
	}
}

// Compile-time interface check.
var _ storage.SummaryStore = (*SummaryStore)(nil)

// Put stores the summary for a strategy, replacing any existing one.
func (s *SummaryStore) Put(_ context.Context, key string, summary *domain.StrategySummary) error {
	if key == "" || summary == nil {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = copySummary(summary)
	return nil
}

// GetByKey retrieves one strategy's summary. Returns ErrNotFound if absent.
func (s *SummaryStore) GetByKey(_ context.Context, key string) (*domain.StrategySummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summary, exists := s.data[key]
	if !exists {
		return nil, storage.ErrNotFound
	}
	return copySummary(summary), nil
}

// GetAll retrieves every stored summary keyed by strategy.
func (s *SummaryStore) GetAll(_ context.Context) (map[string]*domain.StrategySummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[string]*domain.StrategySummary, len(s.data))
	for k, summary := range s.data {
		result[k] = copySummary(summary)
	}
	return result, nil
}

// Keys returns all strategy keys with stored summaries, sorted.
func (s *SummaryStore) Keys(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

// copySummary deep-copies a summary so callers can never mutate stored state.
func copySummary(s *domain.StrategySummary) *domain.StrategySummary {
	summaryCopy := *s
	summaryCopy.WinningsDistribution = make([]domain.DistributionBin, len(s.WinningsDistribution))
	copy(summaryCopy.WinningsDistribution, s.WinningsDistribution)
	summaryCopy.BankrollHistory = make([]domain.BankrollPoint, len(s.BankrollHistory))
	copy(summaryCopy.BankrollHistory, s.BankrollHistory)
	return &summaryCopy
}
