// Package main generates the strategy comparison report from stored
// summaries and writes it as Markdown and CSV.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"blackjack-lab/internal/observability"
	"blackjack-lab/internal/reporting"
	"blackjack-lab/internal/storage"
	chstore "blackjack-lab/internal/storage/clickhouse"
	"blackjack-lab/internal/storage/jsonfile"
)

func main() {
	// Parse flags
	processedDir := flag.String("processed-dir", "processed_data", "Directory containing <strategy>_summary.json files")
	clickhouseDSN := flag.String("clickhouse-dsn", "", "Read summaries from ClickHouse instead of summary files")
	outputDir := flag.String("output-dir", "docs", "Output directory for generated files")
	fixedClock := flag.Bool("fixed-clock", false, "Use a fixed timestamp for deterministic output")
	flag.Parse()

	ctx := context.Background()

	// Create summary store based on mode
	var summaryStore storage.SummaryStore
	if *clickhouseDSN != "" {
		conn, err := chstore.NewConn(ctx, *clickhouseDSN)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error connecting to clickhouse: %v\n", err)
			os.Exit(1)
		}
		defer conn.Close()
		summaryStore = chstore.NewSummaryStore(conn)
	} else {
		store, err := jsonfile.NewSummaryStore(*processedDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening processed dir: %v\n", err)
			os.Exit(1)
		}
		summaryStore = store
	}

	generator := reporting.NewGenerator(summaryStore)
	if *fixedClock {
		fixedTime := time.Date(2025, 1, 4, 12, 0, 0, 0, time.UTC)
		generator = generator.WithClock(func() time.Time { return fixedTime })
	}

	report, err := generator.Generate(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating report: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(*outputDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	mdPath := filepath.Join(*outputDir, "STRATEGY_COMPARISON.md")
	if err := os.WriteFile(mdPath, []byte(reporting.RenderMarkdown(report)), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing markdown: %v\n", err)
		os.Exit(1)
	}

	csvPath := filepath.Join(*outputDir, "STRATEGY_COMPARISON.csv")
	if err := os.WriteFile(csvPath, []byte(reporting.RenderCSV(report.QuickComparison)), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing csv: %v\n", err)
		os.Exit(1)
	}

	observability.DefaultMetrics.ReportsGenerated.Inc()

	fmt.Println("Comparison report generated successfully:")
	fmt.Printf("  - %s\n", mdPath)
	fmt.Printf("  - %s\n", csvPath)
}
