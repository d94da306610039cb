package reporting

import (
	"fmt"
	"strings"
	"time"
)

// RenderMarkdown renders a report as Markdown string.
func RenderMarkdown(r *Report) string {
	var sb strings.Builder

	// Header
	sb.WriteString("# Strategy Comparison Report\n\n")
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", r.GeneratedAt.Format(time.RFC3339)))
	sb.WriteString(fmt.Sprintf("Strategies summarized: %d\n\n", r.StrategyCount))

	// Headline metrics
	sb.WriteString("## Headline Metrics\n\n")
	if len(r.Comparison) > 0 {
		sb.WriteString("| Strategy | Avg Net Winnings | ROI (%) | Volatility (Std Dev) |\n")
		sb.WriteString("|----------|------------------|---------|----------------------|\n")
		for _, c := range r.Comparison {
			sb.WriteString(fmt.Sprintf("| %s | %.4f | %.4f | %.4f |\n",
				c.Name, c.AvgNetWinnings, c.ROI, c.Volatility))
		}
	} else {
		sb.WriteString("No summaries available.\n")
	}
	sb.WriteString("\n")

	// Per-strategy detail
	sb.WriteString("## Strategy Detail\n\n")
	if len(r.QuickComparison) > 0 {
		sb.WriteString("| Key | Strategy | Win Rate (%) | Avg Net/Hand | ROI (%) | Std Dev | Total Winnings |\n")
		sb.WriteString("|-----|----------|--------------|--------------|---------|---------|----------------|\n")
		for _, q := range r.QuickComparison {
			sb.WriteString(fmt.Sprintf("| %s | %s | %.2f | %.4f | %.4f | %.4f | %.2f |\n",
				q.Key, q.Name, q.WinRate, q.AvgNetPerHand, q.ROI, q.StdDeviation, q.TotalWinnings))
		}
	} else {
		sb.WriteString("No summaries available.\n")
	}
	sb.WriteString("\n")

	return sb.String()
}
