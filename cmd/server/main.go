// Package main serves the strategy summary API. The server is thin glue
// over a summary store: summary JSON files by default, ClickHouse when a
// DSN is configured.
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"blackjack-lab/internal/server"
	"blackjack-lab/internal/storage"
	chstore "blackjack-lab/internal/storage/clickhouse"
	"blackjack-lab/internal/storage/jsonfile"
)

func main() {
	// Load .env file if exists
	loadEnvFile()

	// Parse flags (env vars as defaults)
	addr := flag.String("addr", ":"+envOr("PORT", "5001"), "HTTP listen address")
	processedDir := flag.String("processed-dir", envOr("PROCESSED_DIR", "processed_data"), "Directory containing <strategy>_summary.json files")
	clickhouseDSN := flag.String("clickhouse-dsn", os.Getenv("CLICKHOUSE_DSN"), "Read summaries from ClickHouse instead of summary files")

	flag.Parse()

	// Setup logger
	logger := log.New(os.Stdout, "[server] ", log.LstdFlags|log.Lshortfile)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	summaryStore, cleanup, err := createSummaryStore(ctx, *processedDir, *clickhouseDSN)
	if err != nil {
		logger.Fatalf("Failed to create summary store: %v", err)
	}
	defer cleanup()

	srv := &http.Server{
		Addr:    *addr,
		Handler: server.New(summaryStore, logger).Handler(),
	}

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		logger.Printf("Received signal %v, shutting down...", sig)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Printf("Shutdown error: %v", err)
		}
		cancel()
	}()

	logger.Printf("Serving strategy API on %s", *addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("Server error: %v", err)
	}

	<-ctx.Done()
	logger.Println("Shutdown complete")
}

// createSummaryStore selects the summary source for the configured mode.
func createSummaryStore(ctx context.Context, processedDir, clickhouseDSN string) (storage.SummaryStore, func(), error) {
	if clickhouseDSN != "" {
		conn, err := chstore.NewConn(ctx, clickhouseDSN)
		if err != nil {
			return nil, nil, err
		}
		return chstore.NewSummaryStore(conn), func() { conn.Close() }, nil
	}

	store, err := jsonfile.NewSummaryStore(processedDir)
	if err != nil {
		return nil, nil, err
	}
	return store, func() {}, nil
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
