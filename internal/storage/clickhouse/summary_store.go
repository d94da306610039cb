package clickhouse

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"blackjack-lab/internal/domain"
	"blackjack-lab/internal/storage"
)

// SummaryStore implements storage.SummaryStore using ClickHouse.
//
// strategy_summaries uses ReplacingMergeTree keyed on strategy_key with
// updated_at as the version column, so a Put naturally supersedes the
// previous summary and reads go through FINAL. The distribution and
// bankroll curve are stored as JSON columns; they are read back whole,
// never queried into.
type SummaryStore struct {
	conn *Conn
}

// NewSummaryStore creates a new SummaryStore.
func NewSummaryStore(conn *Conn) *SummaryStore {
	return &SummaryStore{conn: conn}
}

// Compile-time interface check.
var _ storage.SummaryStore = (*SummaryStore)(nil)

// Put stores the summary for a strategy, replacing any existing one.
func (s *SummaryStore) Put(ctx context.Context, key string, summary *domain.StrategySummary) error {
	if key == "" || summary == nil {
		return storage.ErrInvalidInput
	}

	distribution, err := json.Marshal(summary.WinningsDistribution)
	if err != nil {
		return fmt.Errorf("marshal distribution: %w", err)
	}
	history, err := json.Marshal(summary.BankrollHistory)
	if err != nil {
		return fmt.Errorf("marshal bankroll history: %w", err)
	}

	query := `
		INSERT INTO strategy_summaries (
			strategy_key, simulations, total_winnings, win_rate,
			avg_net_per_hand, std_deviation, roi,
			winnings_distribution, bankroll_history, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	err = s.conn.Exec(ctx, query,
		key,
		uint32(summary.Simulations),
		summary.TotalWinnings,
		summary.WinRate,
		summary.AvgNetPerHand,
		summary.StdDeviation,
		summary.ROI,
		string(distribution),
		string(history),
		time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert strategy summary: %w", err)
	}
	return nil
}

// GetByKey retrieves one strategy's summary. Returns ErrNotFound if absent.
func (s *SummaryStore) GetByKey(ctx context.Context, key string) (*domain.StrategySummary, error) {
	query := `
		SELECT
			simulations, total_winnings, win_rate,
			avg_net_per_hand, std_deviation, roi,
			winnings_distribution, bankroll_history
		FROM strategy_summaries FINAL
		WHERE strategy_key = ?
		LIMIT 1
	`

	row := s.conn.QueryRow(ctx, query, key)

	summary, err := scanSummary(row)
	if err != nil {
		return nil, storage.ErrNotFound
	}
	return summary, nil
}

// GetAll retrieves every stored summary keyed by strategy.
func (s *SummaryStore) GetAll(ctx context.Context) (map[string]*domain.StrategySummary, error) {
	query := `
		SELECT
			strategy_key,
			simulations, total_winnings, win_rate,
			avg_net_per_hand, std_deviation, roi,
			winnings_distribution, bankroll_history
		FROM strategy_summaries FINAL
		ORDER BY strategy_key ASC
	`

	rows, err := s.conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query all summaries: %w", err)
	}
	defer rows.Close()

	result := make(map[string]*domain.StrategySummary)
	for rows.Next() {
		var (
			key          string
			simulations  uint32
			total        float64
			winRate      float64
			avgNet       float64
			stddev       float64
			roi          float64
			distribution string
			history      string
		)
		err := rows.Scan(&key, &simulations, &total, &winRate, &avgNet, &stddev, &roi, &distribution, &history)
		if err != nil {
			return nil, fmt.Errorf("scan summary row: %w", err)
		}

		summary, err := assembleSummary(simulations, total, winRate, avgNet, stddev, roi, distribution, history)
		if err != nil {
			return nil, fmt.Errorf("decode summary %s: %w", key, err)
		}
		result[key] = summary
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate summary rows: %w", err)
	}

	return result, nil
}

// Keys returns all strategy keys with stored summaries, sorted.
func (s *SummaryStore) Keys(ctx context.Context) ([]string, error) {
	query := `
		SELECT DISTINCT strategy_key
		FROM strategy_summaries FINAL
		ORDER BY strategy_key ASC
	`

	rows, err := s.conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query summary keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("scan summary key: %w", err)
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate summary key rows: %w", err)
	}

	return keys, nil
}

// Row interface for scanning single rows.
type chRow interface {
	Scan(dest ...interface{}) error
}

func scanSummary(row chRow) (*domain.StrategySummary, error) {
	var (
		simulations  uint32
		total        float64
		winRate      float64
		avgNet       float64
		stddev       float64
		roi          float64
		distribution string
		history      string
	)
	err := row.Scan(&simulations, &total, &winRate, &avgNet, &stddev, &roi, &distribution, &history)
	if err != nil {
		return nil, err
	}
	return assembleSummary(simulations, total, winRate, avgNet, stddev, roi, distribution, history)
}

func assembleSummary(simulations uint32, total, winRate, avgNet, stddev, roi float64, distribution, history string) (*domain.StrategySummary, error) {
	summary := &domain.StrategySummary{
		Simulations:   int(simulations),
		TotalWinnings: total,
		WinRate:       winRate,
		AvgNetPerHand: avgNet,
		StdDeviation:  stddev,
		ROI:           roi,
	}
	if err := json.Unmarshal([]byte(distribution), &summary.WinningsDistribution); err != nil {
		return nil, fmt.Errorf("unmarshal distribution: %w", err)
	}
	if err := json.Unmarshal([]byte(history), &summary.BankrollHistory); err != nil {
		return nil, fmt.Errorf("unmarshal bankroll history: %w", err)
	}
	return summary, nil
}
