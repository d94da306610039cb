// Package loader reads raw simulation result files. Each strategy is one
// JSON array of per-hand records named <strategy_key>_results.json, with
// underscores in the file name mapping to dashes in the strategy key.
package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"blackjack-lab/internal/domain"
)

const resultSuffix = "_results.json"

// ErrNoResults is returned when a results directory contains no result files.
var ErrNoResults = errors.New("no result files found")

// ListStrategies returns the strategy keys for all result files in dir,
// sorted for deterministic processing order.
func ListStrategies(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read results directory: %w", err)
	}

	var keys []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), resultSuffix) {
			continue
		}
		keys = append(keys, KeyFromFilename(entry.Name()))
	}

	if len(keys) == 0 {
		return nil, ErrNoResults
	}

	sort.Strings(keys)
	return keys, nil
}

// LoadOutcomes reads and decodes the outcome sequence for one strategy key.
// Order of records in the file is simulation order and is preserved.
func LoadOutcomes(dir, key string) ([]domain.HandOutcome, error) {
	path := filepath.Join(dir, FilenameFromKey(key))

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read result file: %w", err)
	}

	var hands []domain.HandOutcome
	if err := json.Unmarshal(data, &hands); err != nil {
		return nil, fmt.Errorf("decode result file %s: %w", filepath.Base(path), err)
	}

	return hands, nil
}

// KeyFromFilename maps a result file name to its strategy key.
func KeyFromFilename(name string) string {
	return strings.ReplaceAll(strings.TrimSuffix(name, resultSuffix), "_", "-")
}

// FilenameFromKey maps a strategy key back to its result file name.
func FilenameFromKey(key string) string {
	return strings.ReplaceAll(key, "-", "_") + resultSuffix
}
