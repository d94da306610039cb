package summary

import "blackjack-lab/internal/domain"

// Build assembles the full summary record for one strategy's outcome
// sequence. Pure composition of Summarize, BinWinnings and SampleBankroll;
// any sub-component error is propagated unchanged and no partial record is
// ever returned.
func Build(hands []domain.HandOutcome) (*domain.StrategySummary, error) {
	stats, err := Summarize(hands)
	if err != nil {
		return nil, err
	}

	return &domain.StrategySummary{
		Simulations:          stats.Simulations,
		TotalWinnings:        stats.TotalWinnings,
		WinRate:              stats.WinRate,
		AvgNetPerHand:        stats.AvgNetPerHand,
		StdDeviation:         stats.StdDeviation,
		ROI:                  stats.ROI,
		WinningsDistribution: BinWinnings(hands),
		BankrollHistory:      SampleBankroll(hands, DefaultMaxPoints),
	}, nil
}
