package services

import (
	"fmt"
	"time"

	"github.com/custodia-labs/linecull/internal/core/domain"
	"github.com/custodia-labs/linecull/internal/core/ports/driven"
	"github.com/custodia-labs/linecull/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Dotted keys under which settings live in the config store.
const (
	keyWriteMaxAttempts   = "write.max_attempts"
	keyWriteRetryInterval = "write.retry_interval"
	keyHistoryEnabled     = "history.enabled"
	keyHistoryLimit       = "history.limit"
)

// SettingsService reads and updates the persisted application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a settings service over a config store.
// A nil store is tolerated; Get then always answers with defaults.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get returns the current settings. Missing or malformed stored
// values fall back to their defaults individually, so one bad key
// never poisons the rest.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()
	if s.configStore == nil {
		return &defaults, nil
	}

	settings := &domain.AppSettings{
		Write: domain.WriteSettings{
			MaxAttempts:   s.getInt(keyWriteMaxAttempts, defaults.Write.MaxAttempts),
			RetryInterval: s.getDuration(keyWriteRetryInterval, defaults.Write.RetryInterval),
		},
		History: domain.HistorySettings{
			Enabled: s.getBool(keyHistoryEnabled, defaults.History.Enabled),
			Limit:   s.getInt(keyHistoryLimit, defaults.History.Limit),
		},
	}

	return settings, nil
}

// Save persists settings to the config store. Write settings are
// normalized first so out-of-range values never reach disk.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if s.configStore == nil {
		return domain.ErrNotImplemented
	}

	write := settings.Write.Normalized()
	if err := s.configStore.Set(keyWriteMaxAttempts, write.MaxAttempts); err != nil {
		return fmt.Errorf("save write attempts: %w", err)
	}
	if err := s.configStore.Set(keyWriteRetryInterval, write.RetryInterval.String()); err != nil {
		return fmt.Errorf("save retry interval: %w", err)
	}
	if err := s.configStore.Set(keyHistoryEnabled, settings.History.Enabled); err != nil {
		return fmt.Errorf("save history enabled: %w", err)
	}
	if err := s.configStore.Set(keyHistoryLimit, settings.History.Limit); err != nil {
		return fmt.Errorf("save history limit: %w", err)
	}

	return nil
}

// SetWriteAttempts updates the write attempt budget.
func (s *SettingsService) SetWriteAttempts(attempts int) error {
	if attempts < 1 {
		return fmt.Errorf("write attempts must be at least 1, got %d", attempts)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.Write.MaxAttempts = attempts
	return s.Save(settings)
}

// SetRetryInterval updates the fixed wait between write attempts.
func (s *SettingsService) SetRetryInterval(interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("retry interval must be positive, got %s", interval)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.Write.RetryInterval = interval
	return s.Save(settings)
}

// SetHistoryEnabled toggles run-history recording.
func (s *SettingsService) SetHistoryEnabled(enabled bool) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.History.Enabled = enabled
	return s.Save(settings)
}

// GetDefaults returns the built-in settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Per-key readers. Each falls back to its default when the stored
// value is absent or unusable.

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val <= 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	// False is a legitimate stored value, so only a missing key
	// falls back.
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getDuration(key string, defaultVal time.Duration) time.Duration {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(val)
	if err != nil || d <= 0 {
		return defaultVal
	}
	return d
}
