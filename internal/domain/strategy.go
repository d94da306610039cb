package domain

// StrategyInfo is the human-readable label pair attached to a summary
// when it is returned to clients.
type StrategyInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// StrategySummaryWithInfo is a summary enriched with its catalog labels,
// the shape returned by the strategy listing endpoints.
type StrategySummaryWithInfo struct {
	StrategySummary
	StrategyInfo
}
