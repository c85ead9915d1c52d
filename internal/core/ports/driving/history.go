package driving

import (
	"context"

	"github.com/custodia-labs/linecull/internal/core/domain"
)

// HistoryService manages the run-history ledger.
type HistoryService interface {
	// Record stores a completed run. When history is disabled or no
	// store is configured this is a no-op.
	Record(ctx context.Context, result *domain.RemovalResult) error

	// List returns recent runs, newest first. A limit of zero or less
	// falls back to the configured default.
	List(ctx context.Context, limit int) ([]domain.RemovalResult, error)

	// ListForDocument returns recent runs for one document path,
	// newest first.
	ListForDocument(ctx context.Context, path string, limit int) ([]domain.RemovalResult, error)

	// Get retrieves one run by its ID.
	Get(ctx context.Context, runID string) (*domain.RemovalResult, error)

	// Clear deletes all recorded runs and returns how many were removed.
	Clear(ctx context.Context) (int, error)
}
