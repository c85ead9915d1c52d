package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/linecull/internal/core/domain"
	"github.com/custodia-labs/linecull/internal/core/ports/driven"
	"github.com/custodia-labs/linecull/internal/core/ports/driving"
	"github.com/custodia-labs/linecull/internal/logger"
)

// Ensure HistoryService implements the interface.
var _ driving.HistoryService = (*HistoryService)(nil)

// HistoryService manages the run-history ledger.
type HistoryService struct {
	runs     driven.RunStore
	settings driving.SettingsService
}

// NewHistoryService creates a new history service. runs may be nil;
// recording then becomes a no-op and queries report not implemented.
func NewHistoryService(runs driven.RunStore, settings driving.SettingsService) *HistoryService {
	return &HistoryService{
		runs:     runs,
		settings: settings,
	}
}

// Record stores a completed run. Disabled history makes this a no-op.
func (s *HistoryService) Record(ctx context.Context, result *domain.RemovalResult) error {
	if s.runs == nil {
		return nil
	}
	if !s.enabled() {
		logger.Debug("history disabled, not recording run %s", result.RunID)
		return nil
	}
	if err := s.runs.SaveRun(ctx, result); err != nil {
		return fmt.Errorf("saving run %s: %w", result.RunID, err)
	}
	return nil
}

// List returns recent runs, newest first.
func (s *HistoryService) List(ctx context.Context, limit int) ([]domain.RemovalResult, error) {
	if s.runs == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.runs.ListRuns(ctx, s.effectiveLimit(limit))
}

// ListForDocument returns recent runs for one document path, newest first.
func (s *HistoryService) ListForDocument(ctx context.Context, path string, limit int) ([]domain.RemovalResult, error) {
	if s.runs == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.runs.ListRunsByDocument(ctx, path, s.effectiveLimit(limit))
}

// Get retrieves one run by its ID.
func (s *HistoryService) Get(ctx context.Context, runID string) (*domain.RemovalResult, error) {
	if s.runs == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.runs.GetRun(ctx, runID)
}

// Clear deletes all recorded runs.
func (s *HistoryService) Clear(ctx context.Context) (int, error) {
	if s.runs == nil {
		return 0, domain.ErrNotImplemented
	}
	return s.runs.PurgeRuns(ctx)
}

// enabled reports whether recording is switched on in settings.
// Missing settings default to recording.
func (s *HistoryService) enabled() bool {
	if s.settings == nil {
		return true
	}
	app, err := s.settings.Get()
	if err != nil {
		return true
	}
	return app.History.Enabled
}

// effectiveLimit substitutes the configured default for non-positive limits.
func (s *HistoryService) effectiveLimit(limit int) int {
	if limit > 0 {
		return limit
	}
	if s.settings != nil {
		if app, err := s.settings.Get(); err == nil && app.History.Limit > 0 {
			return app.History.Limit
		}
	}
	return domain.DefaultHistoryLimit
}
