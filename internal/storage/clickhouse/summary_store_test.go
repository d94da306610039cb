package clickhouse

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"blackjack-lab/internal/domain"
	"blackjack-lab/internal/storage"
)

func testSummary(total float64) *domain.StrategySummary {
	return &domain.StrategySummary{
		Simulations:   5,
		TotalWinnings: total,
		WinRate:       40,
		AvgNetPerHand: total / 5,
		StdDeviation:  18.2,
		ROI:           total / 50 * 100,
		WinningsDistribution: []domain.DistributionBin{
			{Name: "Big Loss (<-$20)", Value: 1},
			{Name: "Small Loss (-$20 to $0)", Value: 2},
			{Name: "Small Win ($0 to $20)", Value: 1},
			{Name: "Big Win (>$20)", Value: 1},
		},
		BankrollHistory: []domain.BankrollPoint{
			{Hand: 0, Bankroll: -25},
			{Hand: 2, Bankroll: -10},
			{Hand: 4, Bankroll: total},
		},
	}
}

func TestSummaryStore_PutAndGet(t *testing.T) {
	conn, cleanup := setupTestDB(t)
	defer cleanup()

	store := NewSummaryStore(conn)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "basic", testSummary(30)))

	got, err := store.GetByKey(ctx, "basic")
	require.NoError(t, err)
	require.Equal(t, testSummary(30), got)
}

func TestSummaryStore_PutSupersedesPrevious(t *testing.T) {
	conn, cleanup := setupTestDB(t)
	defer cleanup()

	store := NewSummaryStore(conn)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "basic", testSummary(30)))
	require.NoError(t, store.Put(ctx, "basic", testSummary(-15)))

	got, err := store.GetByKey(ctx, "basic")
	require.NoError(t, err)
	require.Equal(t, -15.0, got.TotalWinnings)

	// FINAL must collapse the superseded row out of listings too.
	keys, err := store.Keys(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"basic"}, keys)
}

func TestSummaryStore_NotFound(t *testing.T) {
	conn, cleanup := setupTestDB(t)
	defer cleanup()

	store := NewSummaryStore(conn)

	_, err := store.GetByKey(context.Background(), "nonexistent")
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestSummaryStore_InvalidInput(t *testing.T) {
	conn, cleanup := setupTestDB(t)
	defer cleanup()

	store := NewSummaryStore(conn)
	ctx := context.Background()

	require.ErrorIs(t, store.Put(ctx, "", testSummary(1)), storage.ErrInvalidInput)
	require.ErrorIs(t, store.Put(ctx, "basic", nil), storage.ErrInvalidInput)
}

func TestSummaryStore_GetAllAndKeys(t *testing.T) {
	conn, cleanup := setupTestDB(t)
	defer cleanup()

	store := NewSummaryStore(conn)
	ctx := context.Background()

	for _, key := range []string{"mimic-dealer", "basic", "fixed-threshold-16"} {
		require.NoError(t, store.Put(ctx, key, testSummary(10)))
	}

	keys, err := store.Keys(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"basic", "fixed-threshold-16", "mimic-dealer"}, keys)

	all, err := store.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	for _, key := range keys {
		require.Contains(t, all, key)
		require.Len(t, all[key].WinningsDistribution, 4)
	}
}
