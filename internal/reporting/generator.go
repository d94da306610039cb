// Package reporting builds comparison reports over stored strategy
// summaries and renders them as CSV or Markdown.
package reporting

import (
	"context"
	"sort"
	"time"

	"blackjack-lab/internal/catalog"
	"blackjack-lab/internal/domain"
	"blackjack-lab/internal/storage"
)

// Generator produces comparison reports from stored summaries.
type Generator struct {
	summaryStore storage.SummaryStore
	now          func() time.Time // Injectable clock for deterministic output
}

// NewGenerator creates a new report generator.
func NewGenerator(summaryStore storage.SummaryStore) *Generator {
	return &Generator{
		summaryStore: summaryStore,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// WithClock sets a custom clock function for deterministic output.
func (g *Generator) WithClock(now func() time.Time) *Generator {
	g.now = now
	return g
}

// Generate produces a complete comparison report.
func (g *Generator) Generate(ctx context.Context) (*Report, error) {
	summaries, err := g.summaryStore.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	return &Report{
		GeneratedAt:     g.now(),
		StrategyCount:   len(summaries),
		Comparison:      ComparisonRows(summaries),
		QuickComparison: QuickComparisonRows(summaries),
	}, nil
}

// ComparisonRows builds the headline-metric rows for a set of summaries,
// sorted by strategy key. The fixed-threshold family collapses to its
// representative so one sweep member does not drown out the named
// strategies.
func ComparisonRows(summaries map[string]*domain.StrategySummary) []ComparisonRow {
	var rows []ComparisonRow
	for _, key := range comparableKeys(summaries) {
		s := summaries[key]
		info := catalog.Lookup(key)
		rows = append(rows, ComparisonRow{
			Name:           info.Name,
			AvgNetWinnings: s.AvgNetPerHand,
			ROI:            s.ROI,
			Volatility:     s.StdDeviation,
		})
	}
	return rows
}

// QuickComparisonRows builds the lightweight rows for a set of summaries,
// sorted by strategy key, with the same fixed-threshold filtering.
func QuickComparisonRows(summaries map[string]*domain.StrategySummary) []QuickComparisonRow {
	var rows []QuickComparisonRow
	for _, key := range comparableKeys(summaries) {
		s := summaries[key]
		info := catalog.Lookup(key)
		rows = append(rows, QuickComparisonRow{
			Key:           key,
			Name:          info.Name,
			Description:   info.Description,
			AvgNetPerHand: s.AvgNetPerHand,
			ROI:           s.ROI,
			StdDeviation:  s.StdDeviation,
			WinRate:       s.WinRate,
			TotalWinnings: s.TotalWinnings,
		})
	}
	return rows
}

// comparableKeys returns the keys that belong in comparisons, sorted.
// Of the fixed-threshold sweep only the representative threshold is kept.
func comparableKeys(summaries map[string]*domain.StrategySummary) []string {
	var keys []string
	for key := range summaries {
		if catalog.IsFixedThreshold(key) && key != catalog.FixedThresholdRepresentative {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
