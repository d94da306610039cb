package storage

import (
	"context"

	"blackjack-lab/internal/domain"
)

// OutcomeStore provides access to raw per-hand outcome storage.
type OutcomeStore interface {
	// ReplaceStrategy replaces the full outcome sequence for a strategy.
	// A re-ingest overwrites the sequence wholesale.
	ReplaceStrategy(ctx context.Context, key string, hands []domain.HandOutcome) error

	// GetByStrategy retrieves a strategy's outcome sequence in simulation
	// order. Returns ErrNotFound if the strategy has no stored outcomes.
	GetByStrategy(ctx context.Context, key string) ([]domain.HandOutcome, error)

	// Keys returns all strategy keys with stored outcomes, sorted.
	Keys(ctx context.Context) ([]string, error)
}

// SummaryStore provides access to precomputed strategy summaries.
// Summaries are written whole and replaced whole; no store mutates a
// stored summary in place.
type SummaryStore interface {
	// Put stores the summary for a strategy, replacing any existing one.
	Put(ctx context.Context, key string, s *domain.StrategySummary) error

	// GetByKey retrieves one strategy's summary. Returns ErrNotFound if absent.
	GetByKey(ctx context.Context, key string) (*domain.StrategySummary, error)

	// GetAll retrieves every stored summary keyed by strategy.
	GetAll(ctx context.Context) (map[string]*domain.StrategySummary, error)

	// Keys returns all strategy keys with stored summaries, sorted.
	Keys(ctx context.Context) ([]string, error)
}
