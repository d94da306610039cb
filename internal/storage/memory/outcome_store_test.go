package memory

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"blackjack-lab/internal/domain"
	"blackjack-lab/internal/storage"
)

func TestOutcomeStore_ReplaceAndGet(t *testing.T) {
	store := NewOutcomeStore()
	ctx := context.Background()

	bet := 20.0
	hands := []domain.HandOutcome{
		{Profit: 10, Bet: &bet},
		{Profit: -10, Bet: &bet},
	}

	if err := store.ReplaceStrategy(ctx, "card-counter", hands); err != nil {
		t.Fatalf("ReplaceStrategy failed: %v", err)
	}

	got, err := store.GetByStrategy(ctx, "card-counter")
	if err != nil {
		t.Fatalf("GetByStrategy failed: %v", err)
	}
	if !reflect.DeepEqual(got, hands) {
		t.Errorf("expected %+v, got %+v", hands, got)
	}
}

func TestOutcomeStore_ReplaceOverwrites(t *testing.T) {
	store := NewOutcomeStore()
	ctx := context.Background()

	if err := store.ReplaceStrategy(ctx, "basic", []domain.HandOutcome{{Profit: 1}, {Profit: 2}}); err != nil {
		t.Fatalf("first ReplaceStrategy failed: %v", err)
	}
	if err := store.ReplaceStrategy(ctx, "basic", []domain.HandOutcome{{Profit: 3}}); err != nil {
		t.Fatalf("second ReplaceStrategy failed: %v", err)
	}

	got, err := store.GetByStrategy(ctx, "basic")
	if err != nil {
		t.Fatalf("GetByStrategy failed: %v", err)
	}
	if len(got) != 1 || got[0].Profit != 3 {
		t.Errorf("expected single replaced hand, got %+v", got)
	}
}

func TestOutcomeStore_NotFound(t *testing.T) {
	store := NewOutcomeStore()

	_, err := store.GetByStrategy(context.Background(), "nonexistent")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestOutcomeStore_Keys(t *testing.T) {
	store := NewOutcomeStore()
	ctx := context.Background()

	for _, key := range []string{"martingale", "basic"} {
		if err := store.ReplaceStrategy(ctx, key, []domain.HandOutcome{{Profit: 1}}); err != nil {
			t.Fatalf("ReplaceStrategy %s failed: %v", key, err)
		}
	}

	keys, err := store.Keys(ctx)
	if err != nil {
		t.Fatalf("Keys failed: %v", err)
	}
	if !reflect.DeepEqual(keys, []string{"basic", "martingale"}) {
		t.Errorf("unexpected keys: %v", keys)
	}
}
