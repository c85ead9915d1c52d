package file

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/linecull/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigStore persists settings in a TOML file under the linecull
// config directory. Keys use dot notation (write.max_attempts,
// history.enabled); on disk they may equally appear as nested TOML
// tables, which Load folds back into dotted keys.
type ConfigStore struct {
	mu   sync.RWMutex
	path string
	data map[string]any
}

// NewConfigStore opens the config store rooted at configDir, creating
// the directory if needed. An empty configDir means ~/.linecull.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".linecull")
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	s := &ConfigStore{
		path: filepath.Join(configDir, "config.toml"),
		data: make(map[string]any),
	}
	if err := s.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	return s, nil
}

// Load reads the TOML file into memory, replacing any unsaved state.
// A missing file is not an error; the store simply starts empty.
func (s *ConfigStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.data = make(map[string]any)
			return nil
		}
		return err
	}

	var parsed map[string]any
	if err := toml.Unmarshal(raw, &parsed); err != nil {
		return err
	}

	s.data = make(map[string]any)
	flattenInto(s.data, "", parsed)
	return nil
}

// Save writes the in-memory state back to the TOML file.
func (s *ConfigStore) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save()
}

// save assumes the caller holds the lock.
func (s *ConfigStore) save() error {
	raw, err := toml.Marshal(s.data)
	if err != nil {
		return err
	}
	// Settings are per-user; keep the file private.
	return os.WriteFile(s.path, raw, 0600)
}

// Set stores a value under key and persists immediately.
func (s *ConfigStore) Set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = value
	return s.save()
}

// Get retrieves a value by dotted key. The boolean reports whether
// the key exists.
func (s *ConfigStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	val, ok := s.data[key]
	return val, ok
}

// GetString retrieves a string value. Missing keys and type
// mismatches yield the empty string.
func (s *ConfigStore) GetString(key string) string {
	val, ok := s.Get(key)
	if !ok {
		return ""
	}
	str, _ := val.(string)
	return str
}

// GetInt retrieves an integer value. Missing keys and type
// mismatches yield zero. TOML integers unmarshal as int64.
func (s *ConfigStore) GetInt(key string) int {
	val, ok := s.Get(key)
	if !ok {
		return 0
	}
	switch v := val.(type) {
	case int64:
		return int(v)
	case int:
		return v
	default:
		return 0
	}
}

// GetBool retrieves a boolean value. Missing keys and type
// mismatches yield false.
func (s *ConfigStore) GetBool(key string) bool {
	val, ok := s.Get(key)
	if !ok {
		return false
	}
	b, _ := val.(bool)
	return b
}

// Path returns the location of the TOML file.
func (s *ConfigStore) Path() string {
	return s.path
}

// flattenInto copies src into dst, rewriting nested tables as dotted
// keys so {"write": {"max_attempts": 3}} lands as "write.max_attempts".
func flattenInto(dst map[string]any, prefix string, src map[string]any) {
	for key, value := range src {
		if prefix != "" {
			key = prefix + "." + key
		}
		if table, ok := value.(map[string]any); ok {
			flattenInto(dst, key, table)
			continue
		}
		dst[key] = value
	}
}
