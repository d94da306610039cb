package catalog

import "testing"

func TestLookup(t *testing.T) {
	tests := []struct {
		key         string
		name        string
		description string
	}{
		{
			key:         "basic",
			name:        "Basic Strategy",
			description: "Follows the mathematically optimal decisions for hitting, standing, and doubling.",
		},
		{
			key:         "card-counter",
			name:        "Card Counter",
			description: "Adjusts strategy and bets based on the count of high vs. low cards.",
		},
		{
			key:         "dealer-weakness",
			name:        "Dealer Weakness",
			description: "Stands if dealer shows 2-6 and player has 12+, otherwise hits to 17.",
		},
		{
			key:         "mimic-dealer",
			name:        "Mimic Dealer",
			description: "Player hits until 17, just like the dealer.",
		},
		{
			key:         "martingale",
			name:        "Martingale + Basic",
			description: "Uses Basic Strategy for decisions and doubles the bet after every loss.",
		},
		{
			key:         "fixed-threshold-16",
			name:        "Fixed Threshold (16)",
			description: "Player always hits until their hand value is 16 or more.",
		},
		{
			key:         "fixed-threshold-12",
			name:        "Fixed Threshold (12)",
			description: "Player always hits until their hand value is 12 or more.",
		},
		{
			key:         "ace-five-count",
			name:        "Ace Five Count",
			description: "Strategy simulation results.",
		},
		{
			key:         "hilo",
			name:        "Hilo",
			description: "Strategy simulation results.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			info := Lookup(tt.key)
			if info.Name != tt.name {
				t.Errorf("expected name %q, got %q", tt.name, info.Name)
			}
			if info.Description != tt.description {
				t.Errorf("expected description %q, got %q", tt.description, info.Description)
			}
		})
	}
}

func TestIsFixedThreshold(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"fixed-threshold-16", true},
		{"fixed-threshold-17", true},
		{"fixed-threshold-", false},
		{"basic", false},
		{"martingale", false},
	}

	for _, tt := range tests {
		if got := IsFixedThreshold(tt.key); got != tt.want {
			t.Errorf("IsFixedThreshold(%q): expected %v, got %v", tt.key, tt.want, got)
		}
	}
}
