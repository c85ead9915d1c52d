package driving

import (
	"time"

	"github.com/custodia-labs/linecull/internal/core/domain"
)

// SettingsService exposes the persisted knobs for the write-retry
// pipeline and the history ledger.
type SettingsService interface {
	// Get returns the current settings, with defaults filled in for
	// anything missing from the store.
	Get() (*domain.AppSettings, error)

	// Save persists settings.
	Save(settings *domain.AppSettings) error

	// SetWriteAttempts updates the write attempt budget.
	// Attempts below one are rejected.
	SetWriteAttempts(attempts int) error

	// SetRetryInterval updates the fixed wait between write attempts.
	// Non-positive intervals are rejected.
	SetRetryInterval(interval time.Duration) error

	// SetHistoryEnabled toggles run-history recording.
	SetHistoryEnabled(enabled bool) error

	// GetDefaults returns the built-in settings.
	GetDefaults() domain.AppSettings
}
