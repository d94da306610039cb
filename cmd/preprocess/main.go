// Package main runs the reduction pipeline: raw per-hand outcomes in,
// one summary per strategy out. Outcomes come from result files or from
// PostgreSQL; summaries go to indented JSON files and, when configured,
// to ClickHouse.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strings"
	"time"

	"blackjack-lab/internal/loader"
	"blackjack-lab/internal/observability"
	"blackjack-lab/internal/pipeline"
	"blackjack-lab/internal/storage"
	chstore "blackjack-lab/internal/storage/clickhouse"
	"blackjack-lab/internal/storage/jsonfile"
	"blackjack-lab/internal/storage/memory"
	pgstore "blackjack-lab/internal/storage/postgres"
)

func main() {
	// Load .env file if exists
	loadEnvFile()

	// Parse flags (env vars as defaults)
	resultsDir := flag.String("results-dir", envOr("RESULTS_DIR", "."), "Directory containing <strategy>_results.json files")
	outputDir := flag.String("output-dir", envOr("PROCESSED_DIR", "processed_data"), "Directory for <strategy>_summary.json files")
	postgresDSN := flag.String("postgres-dsn", os.Getenv("POSTGRES_DSN"), "Read outcomes from PostgreSQL instead of result files")
	clickhouseDSN := flag.String("clickhouse-dsn", os.Getenv("CLICKHOUSE_DSN"), "Also write summaries to ClickHouse")
	workers := flag.Int("workers", 4, "Concurrent strategy reductions")
	verbose := flag.Bool("verbose", false, "Log per-strategy progress")

	flag.Parse()

	logger := log.New(os.Stdout, "[preprocess] ", log.LstdFlags|log.Lshortfile)

	ctx := context.Background()

	outcomes, cleanupOutcomes, err := createOutcomeStore(ctx, *resultsDir, *postgresDSN, logger)
	if err != nil {
		logger.Fatalf("Failed to create outcome store: %v", err)
	}
	defer cleanupOutcomes()

	summaries, cleanupSummaries, err := createSummaryStores(ctx, *outputDir, *clickhouseDSN)
	if err != nil {
		logger.Fatalf("Failed to create summary stores: %v", err)
	}
	defer cleanupSummaries()

	runner, err := pipeline.NewRunner(pipeline.Options{
		OutcomeStore:  outcomes,
		SummaryStores: summaries,
		Workers:       *workers,
		Verbose:       *verbose,
	})
	if err != nil {
		logger.Fatalf("Failed to create runner: %v", err)
	}

	start := time.Now()
	result, err := runner.Run(ctx)
	elapsed := time.Since(start)

	if err != nil {
		observability.DefaultMetrics.PipelineRunsTotal.WithLabelValues("error").Inc()
		logger.Fatalf("Pipeline failed: %v", err)
	}

	observability.DefaultMetrics.PipelineRunsTotal.WithLabelValues("success").Inc()
	observability.DefaultMetrics.PipelineDuration.Observe(elapsed.Seconds())
	observability.DefaultMetrics.LastSuccessfulPipeline.SetToCurrentTime()

	for _, e := range result.Errors {
		logger.Printf("  skipped %s", e)
	}
	logger.Printf("Preprocessing complete in %v: %d of %d strategies summarized",
		elapsed, result.SummariesWritten, result.StrategiesFound)

	if len(result.Errors) > 0 {
		os.Exit(1)
	}
}

// createOutcomeStore reads outcomes from PostgreSQL when a DSN is given,
// otherwise loads every result file in resultsDir into a memory store.
func createOutcomeStore(ctx context.Context, resultsDir, postgresDSN string, logger *log.Logger) (storage.OutcomeStore, func(), error) {
	if postgresDSN != "" {
		pool, err := pgstore.NewPool(ctx, postgresDSN)
		if err != nil {
			return nil, nil, err
		}
		return pgstore.NewOutcomeStore(pool), pool.Close, nil
	}

	store := memory.NewOutcomeStore()

	keys, err := loader.ListStrategies(resultsDir)
	if err != nil {
		return nil, nil, err
	}
	for _, key := range keys {
		hands, err := loader.LoadOutcomes(resultsDir, key)
		if err != nil {
			// A malformed file should not sink the whole run.
			logger.Printf("  %s: load failed: %v", key, err)
			continue
		}
		if err := store.ReplaceStrategy(ctx, key, hands); err != nil {
			return nil, nil, err
		}
	}

	return store, func() {}, nil
}

// createSummaryStores always writes JSON files; ClickHouse is added when
// a DSN is given.
func createSummaryStores(ctx context.Context, outputDir, clickhouseDSN string) ([]storage.SummaryStore, func(), error) {
	fileStore, err := jsonfile.NewSummaryStore(outputDir)
	if err != nil {
		return nil, nil, err
	}
	stores := []storage.SummaryStore{fileStore}
	cleanup := func() {}

	if clickhouseDSN != "" {
		conn, err := chstore.NewConn(ctx, clickhouseDSN)
		if err != nil {
			return nil, nil, err
		}
		stores = append(stores, chstore.NewSummaryStore(conn))
		cleanup = func() { conn.Close() }
	}

	return stores, cleanup, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// loadEnvFile loads environment variables from .env file if it exists.
func loadEnvFile() {
	data, err := os.ReadFile(".env")
	if err != nil {
		return // File doesn't exist, use system env vars
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		// Don't override existing env vars
		if os.Getenv(key) == "" {
			os.Setenv(key, value)
		}
	}
}
