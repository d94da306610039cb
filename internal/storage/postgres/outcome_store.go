package postgres

import (
	"context"
	"fmt"

	"blackjack-lab/internal/domain"
	"blackjack-lab/internal/storage"
)

// OutcomeStore implements storage.OutcomeStore using PostgreSQL.
// Outcomes are keyed by (strategy_key, hand_index) so a sequence reads
// back in simulation order.
type OutcomeStore struct {
	pool *Pool
}

// NewOutcomeStore creates a new OutcomeStore.
func NewOutcomeStore(pool *Pool) *OutcomeStore {
	return &OutcomeStore{pool: pool}
}

// Compile-time interface check.
var _ storage.OutcomeStore = (*OutcomeStore)(nil)

// ReplaceStrategy replaces the full outcome sequence for a strategy
// atomically. A re-ingest overwrites the sequence wholesale.
func (s *OutcomeStore) ReplaceStrategy(ctx context.Context, key string, hands []domain.HandOutcome) error {
	if key == "" {
		return storage.ErrInvalidInput
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM hand_outcomes WHERE strategy_key = $1`, key); err != nil {
		return fmt.Errorf("delete existing outcomes: %w", err)
	}

	query := `
		INSERT INTO hand_outcomes (strategy_key, hand_index, profit, bet)
		VALUES ($1, $2, $3, $4)
	`
	for i, h := range hands {
		if _, err := tx.Exec(ctx, query, key, i, h.Profit, h.Bet); err != nil {
			return fmt.Errorf("insert outcome %d: %w", i, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}

// GetByStrategy retrieves a strategy's outcome sequence in simulation order.
func (s *OutcomeStore) GetByStrategy(ctx context.Context, key string) ([]domain.HandOutcome, error) {
	query := `
		SELECT profit, bet
		FROM hand_outcomes
		WHERE strategy_key = $1
		ORDER BY hand_index ASC
	`

	rows, err := s.pool.Query(ctx, query, key)
	if err != nil {
		return nil, fmt.Errorf("get outcomes by strategy: %w", err)
	}
	defer rows.Close()

	var hands []domain.HandOutcome
	for rows.Next() {
		var h domain.HandOutcome
		if err := rows.Scan(&h.Profit, &h.Bet); err != nil {
			return nil, fmt.Errorf("scan outcome row: %w", err)
		}
		hands = append(hands, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate outcome rows: %w", err)
	}

	if len(hands) == 0 {
		return nil, storage.ErrNotFound
	}

	return hands, nil
}

// Keys returns all strategy keys with stored outcomes, sorted.
func (s *OutcomeStore) Keys(ctx context.Context) ([]string, error) {
	query := `
		SELECT DISTINCT strategy_key
		FROM hand_outcomes
		ORDER BY strategy_key ASC
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("get strategy keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("scan strategy key: %w", err)
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate strategy key rows: %w", err)
	}

	return keys, nil
}
