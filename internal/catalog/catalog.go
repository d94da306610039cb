// Package catalog maps strategy keys to their human-readable display labels.
// Keys are the dash-separated identifiers derived from result file names
// ("basic", "card-counter", "fixed-threshold-16", ...).
package catalog

import (
	"fmt"
	"strings"

	"blackjack-lab/internal/domain"
)

const fixedThresholdPrefix = "fixed-threshold-"

// FixedThresholdRepresentative is the one member of the fixed-threshold
// sweep that appears in cross-strategy comparisons.
const FixedThresholdRepresentative = "fixed-threshold-16"

// Known strategy labels.
var strategyLabels = map[string]domain.StrategyInfo{
	"basic": {
		Name:        "Basic Strategy",
		Description: "Follows the mathematically optimal decisions for hitting, standing, and doubling.",
	},
	"card-counter": {
		Name:        "Card Counter",
		Description: "Adjusts strategy and bets based on the count of high vs. low cards.",
	},
	"dealer-weakness": {
		Name:        "Dealer Weakness",
		Description: "Stands if dealer shows 2-6 and player has 12+, otherwise hits to 17.",
	},
	"mimic-dealer": {
		Name:        "Mimic Dealer",
		Description: "Player hits until 17, just like the dealer.",
	},
	"martingale": {
		Name:        "Martingale + Basic",
		Description: "Uses Basic Strategy for decisions and doubles the bet after every loss.",
	},
}

// Lookup returns the display labels for a strategy key. Parameterized
// fixed-threshold keys get a generated label; unrecognized keys fall back
// to a title-cased name with a generic description.
func Lookup(key string) domain.StrategyInfo {
	if info, ok := strategyLabels[key]; ok {
		return info
	}

	if threshold, ok := fixedThreshold(key); ok {
		return domain.StrategyInfo{
			Name:        fmt.Sprintf("Fixed Threshold (%s)", threshold),
			Description: fmt.Sprintf("Player always hits until their hand value is %s or more.", threshold),
		}
	}

	return domain.StrategyInfo{
		Name:        titleCase(key),
		Description: "Strategy simulation results.",
	}
}

// IsFixedThreshold reports whether a key belongs to the parameterized
// fixed-threshold family.
func IsFixedThreshold(key string) bool {
	_, ok := fixedThreshold(key)
	return ok
}

// fixedThreshold extracts the threshold parameter from keys of the form
// "fixed-threshold-N".
func fixedThreshold(key string) (string, bool) {
	if !strings.HasPrefix(key, fixedThresholdPrefix) {
		return "", false
	}
	threshold := strings.SplitN(strings.TrimPrefix(key, fixedThresholdPrefix), "-", 2)[0]
	if threshold == "" {
		return "", false
	}
	return threshold, true
}

// titleCase turns a dash-separated key into a space-separated name with
// each word capitalized.
func titleCase(key string) string {
	words := strings.Split(key, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
