// Package server exposes stored strategy summaries over HTTP. Handlers
// are thin: they read from the summary store and attach catalog labels,
// all statistics having been computed by the pipeline beforehand.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"blackjack-lab/internal/catalog"
	"blackjack-lab/internal/domain"
	"blackjack-lab/internal/observability"
	"blackjack-lab/internal/reporting"
	"blackjack-lab/internal/storage"
)

// Server serves the strategy summary API.
type Server struct {
	summaries storage.SummaryStore
	logger    *log.Logger
}

// New creates a new Server.
func New(summaries storage.SummaryStore, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(log.Writer(), "[server] ", log.LstdFlags)
	}
	return &Server{summaries: summaries, logger: logger}
}

// Handler returns the fully routed HTTP handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleHome)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("GET /metrics", observability.Handler())

	mux.HandleFunc("GET /api/strategies", s.handleStrategies)
	mux.HandleFunc("GET /api/strategy/{key}", s.handleStrategy)
	mux.HandleFunc("GET /api/comparison", s.handleComparison)
	mux.HandleFunc("GET /api/quick-comparison", s.handleQuickComparison)

	return withCORS(withMetrics(mux))
}

// handleHome is a simple health check endpoint.
func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"message": "Blackjack strategy API is running",
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// handleStrategies returns every summary keyed by strategy, with labels.
func (s *Server) handleStrategies(w http.ResponseWriter, r *http.Request) {
	strategies, err := s.loadAll(r)
	if err != nil {
		s.serverError(w, "load strategies", err)
		return
	}
	writeJSON(w, http.StatusOK, strategies)
}

// handleStrategy returns one strategy's full summary with labels.
func (s *Server) handleStrategy(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")

	summary, err := s.summaries.GetByKey(r.Context(), key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "Strategy not found"})
			return
		}
		s.serverError(w, "load strategy", err)
		return
	}

	writeJSON(w, http.StatusOK, domain.StrategySummaryWithInfo{
		StrategySummary: *summary,
		StrategyInfo:    catalog.Lookup(key),
	})
}

// handleComparison returns all strategies plus the chart-ready comparison
// rows. Of the fixed-threshold sweep only the representative appears in
// the rows; the full map still carries every strategy.
func (s *Server) handleComparison(w http.ResponseWriter, r *http.Request) {
	strategies, err := s.loadAll(r)
	if err != nil {
		s.serverError(w, "load strategies", err)
		return
	}

	raw := make(map[string]*domain.StrategySummary, len(strategies))
	for key, v := range strategies {
		summary := v.StrategySummary
		raw[key] = &summary
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"strategies":     strategies,
		"comparisonData": reporting.ComparisonRows(raw),
	})
}

// handleQuickComparison returns just the scalar rows for fast initial load.
func (s *Server) handleQuickComparison(w http.ResponseWriter, r *http.Request) {
	summaries, err := s.summaries.GetAll(r.Context())
	if err != nil {
		s.serverError(w, "load strategies", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"comparisonData": reporting.QuickComparisonRows(summaries),
	})
}

// loadAll reads every summary and attaches catalog labels.
func (s *Server) loadAll(r *http.Request) (map[string]domain.StrategySummaryWithInfo, error) {
	summaries, err := s.summaries.GetAll(r.Context())
	if err != nil {
		return nil, err
	}

	strategies := make(map[string]domain.StrategySummaryWithInfo, len(summaries))
	for key, summary := range summaries {
		strategies[key] = domain.StrategySummaryWithInfo{
			StrategySummary: *summary,
			StrategyInfo:    catalog.Lookup(key),
		}
	}
	return strategies, nil
}

func (s *Server) serverError(w http.ResponseWriter, op string, err error) {
	s.logger.Printf("%s: %v", op, err)
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// withCORS allows any origin; the API is read-only and dashboards are
// served from other hosts.
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// statusRecorder captures the response status for metrics.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// withMetrics records request counts and latency per route pattern.
func withMetrics(mux *http.ServeMux) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		mux.ServeHTTP(rec, r)

		_, pattern := mux.Handler(r)
		if pattern == "" {
			pattern = "unmatched"
		}
		observability.DefaultMetrics.HTTPRequestsTotal.
			WithLabelValues(pattern, fmt.Sprintf("%d", rec.status)).Inc()
		observability.DefaultMetrics.HTTPRequestDuration.
			WithLabelValues(pattern).Observe(time.Since(start).Seconds())
	})
}
