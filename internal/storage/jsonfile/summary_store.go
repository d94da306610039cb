// Package jsonfile stores strategy summaries as one indented JSON file
// per strategy, the layout the report and server commands exchange on disk.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"blackjack-lab/internal/domain"
	"blackjack-lab/internal/storage"
)

const summarySuffix = "_summary.json"

// SummaryStore implements storage.SummaryStore on a directory of
// <key>_summary.json files. Keys use hyphens; filenames use underscores.
type SummaryStore struct {
	dir string
}

// NewSummaryStore creates a file-backed summary store rooted at dir.
// The directory is created if it does not exist.
func NewSummaryStore(dir string) (*SummaryStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create summary dir: %w", err)
	}
	return &SummaryStore{dir: dir}, nil
}

// Compile-time interface check.
var _ storage.SummaryStore = (*SummaryStore)(nil)

// Put writes the summary for a strategy, replacing any existing file.
func (s *SummaryStore) Put(_ context.Context, key string, summary *domain.StrategySummary) error {
	if key == "" || summary == nil {
		return storage.ErrInvalidInput
	}

	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal summary %s: %w", key, err)
	}

	// Write to a temp file and rename so readers never see a torn file.
	path := s.path(key)
	tmp, err := os.CreateTemp(s.dir, filepath.Base(path)+".tmp")
	if err != nil {
		return fmt.Errorf("create temp summary file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write summary %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close summary %s: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace summary %s: %w", key, err)
	}
	return nil
}

// GetByKey reads one strategy's summary. Returns ErrNotFound if the file
// is absent.
func (s *SummaryStore) GetByKey(_ context.Context, key string) (*domain.StrategySummary, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("read summary %s: %w", key, err)
	}

	var summary domain.StrategySummary
	if err := json.Unmarshal(data, &summary); err != nil {
		return nil, fmt.Errorf("parse summary %s: %w", key, err)
	}
	return &summary, nil
}

// GetAll reads every summary file in the directory.
func (s *SummaryStore) GetAll(ctx context.Context) (map[string]*domain.StrategySummary, error) {
	keys, err := s.Keys(ctx)
	if err != nil {
		return nil, err
	}

	result := make(map[string]*domain.StrategySummary, len(keys))
	for _, key := range keys {
		summary, err := s.GetByKey(ctx, key)
		if err != nil {
			return nil, err
		}
		result[key] = summary
	}
	return result, nil
}

// Keys lists the strategy keys that have a summary file, sorted.
func (s *SummaryStore) Keys(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read summary dir: %w", err)
	}

	var keys []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, summarySuffix) {
			continue
		}
		base := strings.TrimSuffix(name, summarySuffix)
		keys = append(keys, strings.ReplaceAll(base, "_", "-"))
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *SummaryStore) path(key string) string {
	filename := strings.ReplaceAll(key, "-", "_") + summarySuffix
	return filepath.Join(s.dir, filename)
}
