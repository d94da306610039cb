package reporting

import "time"

// Report is a comparison report across all summarized strategies.
type Report struct {
	// Metadata
	GeneratedAt   time.Time
	StrategyCount int

	// Comparison rows (sorted by strategy name)
	Comparison []ComparisonRow

	// Quick comparison rows (sorted by strategy key)
	QuickComparison []QuickComparisonRow
}

// ComparisonRow carries the headline metrics for one strategy. The field
// names in JSON are display labels; dashboards chart them as-is.
type ComparisonRow struct {
	Name           string  `json:"name"`
	AvgNetWinnings float64 `json:"Avg Net Winnings"`
	ROI            float64 `json:"ROI (%)"`
	Volatility     float64 `json:"Volatility (Std Dev)"`
}

// QuickComparisonRow is the lightweight per-strategy row used for fast
// initial loads: scalars only, no distribution or bankroll curve.
type QuickComparisonRow struct {
	Key           string  `json:"key"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	AvgNetPerHand float64 `json:"avgNetPerHand"`
	ROI           float64 `json:"roi"`
	StdDeviation  float64 `json:"stdDeviation"`
	WinRate       float64 `json:"winRate"`
	TotalWinnings float64 `json:"totalWinnings"`
}
