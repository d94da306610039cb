package domain

// DefaultBet is the fixed stake assumed for a strategy whose result file
// carries no bet field at all.
const DefaultBet = 10

// HandOutcome represents one simulated hand of play.
// Bet is nil when the source record carries no bet field.
// Immutable once loaded.
type HandOutcome struct {
	Profit float64  `json:"profit"`
	Bet    *float64 `json:"bet,omitempty"`
}

// TotalProfit returns the sum of profit over a sequence of hands.
func TotalProfit(hands []HandOutcome) float64 {
	total := 0.0
	for _, h := range hands {
		total += h.Profit
	}
	return total
}
