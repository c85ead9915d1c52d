package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/linecull/internal/core/domain"
	"github.com/custodia-labs/linecull/internal/core/ports/driven"
)

// Ensure RunStore implements the interface.
var _ driven.RunStore = (*RunStore)(nil)

// RunStore is an in-memory implementation of driven.RunStore.
// Runs are held in completion order.
type RunStore struct {
	mu   sync.RWMutex
	runs []domain.RemovalResult
}

// NewRunStore creates a new in-memory run store.
func NewRunStore() *RunStore {
	return &RunStore{}
}

// SaveRun stores a completed run result.
func (s *RunStore) SaveRun(_ context.Context, result *domain.RemovalResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs = append(s.runs, *result)
	return nil
}

// GetRun retrieves a run by its ID.
func (s *RunStore) GetRun(_ context.Context, runID string) (*domain.RemovalResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.runs {
		if s.runs[i].RunID == runID {
			run := s.runs[i]
			return &run, nil
		}
	}
	return nil, domain.ErrNotFound
}

// ListRuns returns the most recent runs, newest first.
func (s *RunStore) ListRuns(_ context.Context, limit int) ([]domain.RemovalResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(limit, func(*domain.RemovalResult) bool { return true }), nil
}

// ListRunsByDocument returns the most recent runs for one document path.
func (s *RunStore) ListRunsByDocument(_ context.Context, path string, limit int) ([]domain.RemovalResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(limit, func(r *domain.RemovalResult) bool {
		return r.DocumentPath == path
	}), nil
}

// PurgeRuns deletes all recorded runs.
func (s *RunStore) PurgeRuns(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.runs)
	s.runs = nil
	return n, nil
}

// collect walks the runs newest first, keeping matches up to limit.
// Callers must hold at least the read lock.
func (s *RunStore) collect(limit int, match func(*domain.RemovalResult) bool) []domain.RemovalResult {
	var result []domain.RemovalResult
	for i := len(s.runs) - 1; i >= 0; i-- {
		if limit > 0 && len(result) >= limit {
			break
		}
		if match(&s.runs[i]) {
			result = append(result, s.runs[i])
		}
	}
	return result
}
