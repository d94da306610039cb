// Package pipeline coordinates the reduction run: read raw outcomes,
// compute one summary per strategy, write the summaries out.
package pipeline

import (
	"context"
	"fmt"
	"log"
	"sort"
	"sync"

	"blackjack-lab/internal/observability"
	"blackjack-lab/internal/storage"
	"blackjack-lab/internal/summary"
)

const defaultWorkers = 4

// Runner executes the reduction across all stored strategies.
type Runner struct {
	outcomes  storage.OutcomeStore
	summaries []storage.SummaryStore

	workers int
	verbose bool
}

// Options for creating Runner.
type Options struct {
	// OutcomeStore holds the raw per-hand outcomes to reduce.
	OutcomeStore storage.OutcomeStore

	// SummaryStores receive every computed summary. At least one is required.
	SummaryStores []storage.SummaryStore

	// Workers bounds concurrent strategy reductions. Defaults to 4.
	Workers int

	Verbose bool
}

// NewRunner creates a new Runner.
func NewRunner(opts Options) (*Runner, error) {
	if opts.OutcomeStore == nil {
		return nil, fmt.Errorf("outcome store is required")
	}
	if len(opts.SummaryStores) == 0 {
		return nil, fmt.Errorf("at least one summary store is required")
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}

	return &Runner{
		outcomes:  opts.OutcomeStore,
		summaries: opts.SummaryStores,
		workers:   workers,
		verbose:   opts.Verbose,
	}, nil
}

// RunResult contains results from a reduction run.
type RunResult struct {
	StrategiesFound  int
	SummariesWritten int
	Errors           []string
}

// Run reduces every stored strategy. A strategy that fails to reduce or
// write is recorded in Errors and skipped; it never produces a partial
// summary. Other strategies are unaffected.
func (r *Runner) Run(ctx context.Context) (*RunResult, error) {
	keys, err := r.outcomes.Keys(ctx)
	if err != nil {
		return nil, fmt.Errorf("list strategies: %w", err)
	}

	result := &RunResult{StrategiesFound: len(keys)}
	r.log("Reducing %d strategies with %d workers", len(keys), r.workers)

	if len(keys) == 0 {
		return result, nil
	}

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		keyChan = make(chan string)
	)

	for i := 0; i < r.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for key := range keyChan {
				if err := r.runStrategy(ctx, key); err != nil {
					observability.RecordStrategySkipped("reduce_failed")
					mu.Lock()
					result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", key, err))
					mu.Unlock()
					continue
				}
				observability.RecordSummaryComputed()
				mu.Lock()
				result.SummariesWritten++
				mu.Unlock()
			}
		}()
	}

	for _, key := range keys {
		keyChan <- key
	}
	close(keyChan)
	wg.Wait()

	// Deterministic error order regardless of worker scheduling.
	sort.Strings(result.Errors)

	r.log("Run completed: %d summaries written (%d errors)",
		result.SummariesWritten, len(result.Errors))

	return result, nil
}

// runStrategy reduces one strategy and writes its summary to every store.
func (r *Runner) runStrategy(ctx context.Context, key string) error {
	hands, err := r.outcomes.GetByStrategy(ctx, key)
	if err != nil {
		return fmt.Errorf("load outcomes: %w", err)
	}

	s, err := summary.Build(hands)
	if err != nil {
		return fmt.Errorf("summarize: %w", err)
	}

	for _, store := range r.summaries {
		if err := store.Put(ctx, key, s); err != nil {
			return fmt.Errorf("store summary: %w", err)
		}
	}

	r.log("  %s: %d hands -> %d curve points", key, s.Simulations, len(s.BankrollHistory))
	return nil
}

func (r *Runner) log(format string, args ...interface{}) {
	if r.verbose {
		log.Printf("[pipeline] "+format, args...)
	}
}
