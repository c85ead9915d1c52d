package driven

import (
	"context"

	"github.com/custodia-labs/linecull/internal/core/domain"
)

// RunStore persists completed run results.
// Backed by SQLite for the on-disk history ledger.
type RunStore interface {
	// SaveRun stores a completed run result.
	SaveRun(ctx context.Context, result *domain.RemovalResult) error

	// GetRun retrieves a run by its ID.
	GetRun(ctx context.Context, runID string) (*domain.RemovalResult, error)

	// ListRuns returns the most recent runs, newest first.
	// A limit of zero or less means no limit.
	ListRuns(ctx context.Context, limit int) ([]domain.RemovalResult, error)

	// ListRunsByDocument returns the most recent runs for one document
	// path, newest first. A limit of zero or less means no limit.
	ListRunsByDocument(ctx context.Context, path string, limit int) ([]domain.RemovalResult, error)

	// PurgeRuns deletes all recorded runs and returns how many were removed.
	PurgeRuns(ctx context.Context) (int, error)
}
