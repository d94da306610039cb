package summary

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"blackjack-lab/internal/domain"
)

func TestBuild_Invariants(t *testing.T) {
	hands := make([]domain.HandOutcome, 800)
	for i := range hands {
		hands[i] = domain.HandOutcome{Profit: float64(i%90) - 40}
	}

	s, err := Build(hands)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	binTotal := 0
	for _, b := range s.WinningsDistribution {
		binTotal += b.Value
	}
	if binTotal != s.Simulations {
		t.Errorf("bin counts sum to %d, expected %d", binTotal, s.Simulations)
	}

	if len(s.BankrollHistory) != 500 {
		t.Errorf("expected 500 bankroll points, got %d", len(s.BankrollHistory))
	}
	last := s.BankrollHistory[len(s.BankrollHistory)-1]
	if math.Abs(last.Bankroll-s.TotalWinnings) > 1e-9 {
		t.Errorf("final bankroll %v does not match totalWinnings %v", last.Bankroll, s.TotalWinnings)
	}
}

func TestBuild_Idempotent(t *testing.T) {
	hands := handsFromProfits(-30, -5, 5, 25, 0, 12.5, -12.5)

	first, err := Build(hands)
	if err != nil {
		t.Fatalf("first Build failed: %v", err)
	}
	second, err := Build(hands)
	if err != nil {
		t.Fatalf("second Build failed: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("expected identical summaries from repeated builds")
	}
}

func TestBuild_PropagatesEmptyInput(t *testing.T) {
	s, err := Build(nil)
	if !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
	if s != nil {
		t.Errorf("expected no record on error, got %+v", s)
	}
}

func TestBuild_PropagatesInconsistentSchema(t *testing.T) {
	hands := []domain.HandOutcome{
		{Profit: 1, Bet: betPtr(10)},
		{Profit: 2},
	}

	s, err := Build(hands)
	if !errors.Is(err, ErrInconsistentSchema) {
		t.Errorf("expected ErrInconsistentSchema, got %v", err)
	}
	if s != nil {
		t.Errorf("expected no record on error, got %+v", s)
	}
}
