// Package summary reduces one strategy's outcome sequence into its summary
// record: scalar statistics, a binned winnings distribution and a down-sampled
// bankroll trajectory. Everything here is deterministic, single-pass over the
// input and free of side effects.
package summary

import (
	"math"

	"blackjack-lab/internal/domain"
)

// Stats holds the scalar reductions over one strategy's outcome sequence.
type Stats struct {
	Simulations   int
	TotalWinnings float64
	TotalWagered  float64
	WinRate       float64 // percentage of hands with profit > 0
	AvgNetPerHand float64
	StdDeviation  float64
	ROI           float64 // percentage; exactly 0 when nothing was wagered
}

// Summarize computes the scalar statistics for a sequence of hands.
// Returns ErrEmptyInput for an empty sequence and ErrInconsistentSchema
// when the bet field is present on only part of the sequence.
func Summarize(hands []domain.HandOutcome) (Stats, error) {
	n := len(hands)
	if n == 0 {
		return Stats{}, ErrEmptyInput
	}

	totalWagered, err := totalWagered(hands)
	if err != nil {
		return Stats{}, err
	}

	totalWinnings := 0.0
	wins := 0
	for _, h := range hands {
		totalWinnings += h.Profit
		if h.Profit > 0 {
			wins++
		}
	}

	mean := totalWinnings / float64(n)

	stats := Stats{
		Simulations:   n,
		TotalWinnings: totalWinnings,
		TotalWagered:  totalWagered,
		WinRate:       float64(wins) / float64(n) * 100,
		AvgNetPerHand: mean,
		StdDeviation:  computeStddev(hands, mean),
		ROI:           computeROI(totalWinnings, totalWagered),
	}

	return stats, nil
}

// totalWagered sums the bet over all hands. The fixed DefaultBet stake
// applies only when the bet field is absent from the entire sequence;
// mixed presence is an error, never a silent default.
func totalWagered(hands []domain.HandOutcome) (float64, error) {
	withBet := 0
	total := 0.0
	for _, h := range hands {
		if h.Bet != nil {
			withBet++
			total += *h.Bet
		}
	}

	switch withBet {
	case len(hands):
		return total, nil
	case 0:
		return float64(domain.DefaultBet) * float64(len(hands)), nil
	default:
		return 0, ErrInconsistentSchema
	}
}

// computeStddev calculates the population standard deviation of profit
// (sum of squared deviations divided by N, no Bessel correction).
func computeStddev(hands []domain.HandOutcome, mean float64) float64 {
	sumSq := 0.0
	for _, h := range hands {
		diff := h.Profit - mean
		sumSq += diff * diff
	}
	return math.Sqrt(sumSq / float64(len(hands)))
}

// computeROI calculates return on investment as a percentage.
// A zero wager yields exactly 0, not NaN.
func computeROI(totalWinnings, totalWagered float64) float64 {
	if totalWagered == 0 {
		return 0
	}
	return totalWinnings / totalWagered * 100
}
