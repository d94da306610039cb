// Package main loads raw simulator result files into the outcome store.
// Each <strategy>_results.json file becomes one strategy's outcome
// sequence; re-running replaces the sequence wholesale.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strings"

	"blackjack-lab/internal/loader"
	"blackjack-lab/internal/observability"
	"blackjack-lab/internal/storage"
	"blackjack-lab/internal/storage/memory"
	pgstore "blackjack-lab/internal/storage/postgres"
)

func main() {
	// Load .env file if exists
	loadEnvFile()

	// Parse flags (env vars as defaults)
	resultsDir := flag.String("results-dir", envOr("RESULTS_DIR", "."), "Directory containing <strategy>_results.json files")
	postgresDSN := flag.String("postgres-dsn", os.Getenv("POSTGRES_DSN"), "PostgreSQL connection string")
	strategy := flag.String("strategy", "", "Ingest a single strategy key instead of the whole directory")
	useMemory := flag.Bool("use-memory", false, "Use in-memory storage (dry run)")

	flag.Parse()

	logger := log.New(os.Stdout, "[ingest] ", log.LstdFlags|log.Lshortfile)

	if !*useMemory && *postgresDSN == "" {
		logger.Fatal("--postgres-dsn is required (use --use-memory for a dry run)")
	}

	ctx := context.Background()

	store, cleanup, err := createOutcomeStore(ctx, *postgresDSN, *useMemory)
	if err != nil {
		logger.Fatalf("Failed to create outcome store: %v", err)
	}
	defer cleanup()

	keys, err := resolveKeys(*resultsDir, *strategy)
	if err != nil {
		logger.Fatalf("Failed to list strategies: %v", err)
	}
	logger.Printf("Ingesting %d strategies from %s", len(keys), *resultsDir)

	var failed int
	for _, key := range keys {
		hands, err := loader.LoadOutcomes(*resultsDir, key)
		if err != nil {
			observability.DefaultMetrics.IngestErrors.WithLabelValues("load").Inc()
			logger.Printf("  %s: load failed: %v", key, err)
			failed++
			continue
		}

		if err := store.ReplaceStrategy(ctx, key, hands); err != nil {
			observability.DefaultMetrics.IngestErrors.WithLabelValues("store").Inc()
			logger.Printf("  %s: store failed: %v", key, err)
			failed++
			continue
		}

		observability.RecordOutcomesIngested(len(hands))
		logger.Printf("  %s: %d hands", key, len(hands))
	}

	if failed > 0 {
		logger.Fatalf("Ingest finished with %d of %d strategies failed", failed, len(keys))
	}
	logger.Printf("Ingest complete: %d strategies", len(keys))
}

// resolveKeys returns the strategy keys to ingest.
func resolveKeys(resultsDir, strategy string) ([]string, error) {
	if strategy != "" {
		return []string{strategy}, nil
	}
	return loader.ListStrategies(resultsDir)
}

// createOutcomeStore creates the outcome store for the selected mode.
func createOutcomeStore(ctx context.Context, postgresDSN string, useMemory bool) (storage.OutcomeStore, func(), error) {
	if useMemory {
		return memory.NewOutcomeStore(), func() {}, nil
	}

	pool, err := pgstore.NewPool(ctx, postgresDSN)
	if err != nil {
		return nil, nil, err
	}
	return pgstore.NewOutcomeStore(pool), pool.Close, nil
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
