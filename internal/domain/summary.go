package domain

// DistributionBin is one bucket of the winnings distribution.
type DistributionBin struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// BankrollPoint is one down-sampled point of the cumulative bankroll curve.
// Hand is the 0-based index into the original simulation order.
type BankrollPoint struct {
	Hand     int     `json:"hand"`
	Bankroll float64 `json:"bankroll"`
}

// StrategySummary is the per-strategy summary record: the sole artifact
// persisted by the preprocessing pipeline and served by the API.
// The JSON field names are the compatibility contract with clients and
// must not be renamed.
// Built once per strategy and treated as immutable; a re-run overwrites
// the whole record, it is never mutated incrementally.
type StrategySummary struct {
	Simulations          int               `json:"simulations"`
	TotalWinnings        float64           `json:"totalWinnings"`
	WinRate              float64           `json:"winRate"`
	AvgNetPerHand        float64           `json:"avgNetPerHand"`
	StdDeviation         float64           `json:"stdDeviation"`
	ROI                  float64           `json:"roi"`
	WinningsDistribution []DistributionBin `json:"winningsDistribution"`
	BankrollHistory      []BankrollPoint   `json:"bankrollHistory"`
}
