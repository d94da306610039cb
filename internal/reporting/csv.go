package reporting

import (
	"fmt"
	"strings"
)

// RenderCSV renders quick comparison rows as CSV string.
func RenderCSV(rows []QuickComparisonRow) string {
	var sb strings.Builder

	// Header
	sb.WriteString("key,name,avg_net_per_hand,roi,std_deviation,win_rate,total_winnings\n")

	// Rows
	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("%s,%s,%.6f,%.6f,%.6f,%.6f,%.6f\n",
			r.Key,
			csvEscape(r.Name),
			r.AvgNetPerHand,
			r.ROI,
			r.StdDeviation,
			r.WinRate,
			r.TotalWinnings,
		))
	}

	return sb.String()
}

// csvEscape quotes a field containing a comma. Display names like
// "Martingale + Basic" are comma-free today; this guards renames.
func csvEscape(field string) string {
	if strings.ContainsAny(field, ",\"") {
		return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
	}
	return field
}
