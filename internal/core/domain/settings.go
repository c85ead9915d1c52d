package domain

import "time"

// Default behaviour for the write pipeline and the history ledger.
const (
	// DefaultWriteAttempts is the total number of primary write
	// attempts per run, including the first.
	DefaultWriteAttempts = 3

	// DefaultRetryInterval is the fixed wait between failed write
	// attempts. The backoff is flat, not exponential.
	DefaultRetryInterval = 2 * time.Second

	// DefaultHistoryLimit is how many runs the history listing shows
	// when no explicit limit is given.
	DefaultHistoryLimit = 20
)

// WriteSettings holds write-retry behaviour configuration.
type WriteSettings struct {
	// MaxAttempts is the total number of primary write attempts.
	MaxAttempts int

	// RetryInterval is the fixed wait between failed attempts.
	RetryInterval time.Duration
}

// Normalized returns a copy with out-of-range values replaced by
// defaults, so zero-valued settings behave like DefaultAppSettings.
func (w WriteSettings) Normalized() WriteSettings {
	if w.MaxAttempts < 1 {
		w.MaxAttempts = DefaultWriteAttempts
	}
	if w.RetryInterval <= 0 {
		w.RetryInterval = DefaultRetryInterval
	}
	return w
}

// HistorySettings holds run-history ledger configuration.
type HistorySettings struct {
	// Enabled indicates whether completed runs are recorded.
	Enabled bool

	// Limit is the default number of runs listed.
	Limit int
}

// AppSettings holds all application settings.
type AppSettings struct {
	// Write holds write-retry behaviour settings.
	Write WriteSettings

	// History holds run-history ledger settings.
	History HistorySettings
}

// DefaultAppSettings returns settings with sensible defaults.
// Three write attempts two seconds apart, history recording on.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Write: WriteSettings{
			MaxAttempts:   DefaultWriteAttempts,
			RetryInterval: DefaultRetryInterval,
		},
		History: HistorySettings{
			Enabled: true,
			Limit:   DefaultHistoryLimit,
		},
	}
}
