package summary

import "blackjack-lab/internal/domain"

// Bin boundaries over profit. The ranges are half-open at -20, 0 and 20 so
// every hand falls into exactly one bin.
const (
	bigLossMax  = -20.0
	smallWinMax = 20.0
)

// Fixed bin labels, in output order.
var binNames = [4]string{
	"Big Loss (<-$20)",
	"Small Loss (-$20 to $0)",
	"Small Win ($0 to $20)",
	"Big Win (>$20)",
}

// BinWinnings partitions hands into the four fixed profit ranges and counts
// membership per bin. Output order is fixed, not sorted by count.
func BinWinnings(hands []domain.HandOutcome) []domain.DistributionBin {
	var counts [4]int
	for _, h := range hands {
		switch {
		case h.Profit <= bigLossMax:
			counts[0]++
		case h.Profit <= 0:
			counts[1]++
		case h.Profit <= smallWinMax:
			counts[2]++
		default:
			counts[3]++
		}
	}

	bins := make([]domain.DistributionBin, len(binNames))
	for i, name := range binNames {
		bins[i] = domain.DistributionBin{Name: name, Value: counts[i]}
	}
	return bins
}
