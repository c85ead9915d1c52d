package driven

// ConfigStore reads and writes persisted application settings.
// Keys use dot notation, e.g. "write.max_attempts". Implementations
// own the on-disk format and the type conversions.
type ConfigStore interface {
	// Get retrieves a raw value. The boolean reports whether the
	// key exists.
	Get(key string) (any, bool)

	// GetString retrieves a string value, or "" when the key is
	// missing or holds another type.
	GetString(key string) string

	// GetInt retrieves an integer value, or 0 when the key is
	// missing or holds another type.
	GetInt(key string) int

	// GetBool retrieves a boolean value, or false when the key is
	// missing or holds another type.
	GetBool(key string) bool

	// Set stores a value and persists it immediately.
	Set(key string, value any) error

	// Save persists the current state to storage.
	Save() error

	// Load replaces the current state with what storage holds.
	Load() error

	// Path names the backing location, for display to the user.
	Path() string
}
