package summary

import "blackjack-lab/internal/domain"

// DefaultMaxPoints bounds the bankroll history kept per strategy. 500 points
// is plenty for charting and keeps summary records small.
const DefaultMaxPoints = 500

// SampleBankroll computes the cumulative bankroll curve over hands in
// simulation order and down-samples it to at most maxPoints points.
// Indices are selected evenly across [0, N-1]; the first and last hand are
// always kept, and duplicate indices after integer conversion are emitted
// as-is rather than deduplicated. Hand indices are 0-based.
func SampleBankroll(hands []domain.HandOutcome, maxPoints int) []domain.BankrollPoint {
	n := len(hands)
	if n == 0 {
		return nil
	}
	if maxPoints <= 0 {
		maxPoints = DefaultMaxPoints
	}

	cumulative := make([]float64, n)
	running := 0.0
	for i, h := range hands {
		running += h.Profit
		cumulative[i] = running
	}

	if n <= maxPoints {
		points := make([]domain.BankrollPoint, n)
		for i := range cumulative {
			points[i] = domain.BankrollPoint{Hand: i, Bankroll: cumulative[i]}
		}
		return points
	}

	if maxPoints == 1 {
		return []domain.BankrollPoint{{Hand: 0, Bankroll: cumulative[0]}}
	}

	points := make([]domain.BankrollPoint, 0, maxPoints)
	for k := 0; k < maxPoints; k++ {
		idx := int(float64(k) * float64(n-1) / float64(maxPoints-1))
		if k == maxPoints-1 {
			// Guard against float truncation dropping the final hand.
			idx = n - 1
		}
		points = append(points, domain.BankrollPoint{Hand: idx, Bankroll: cumulative[idx]})
	}
	return points
}
