package driven

// FileStore provides filesystem access for documents, backups and
// fallback files. Implementations decide where the bytes actually live,
// which keeps the write pipeline testable without touching a real disk.
type FileStore interface {
	// Exists reports whether a file exists at the given path.
	Exists(path string) (bool, error)

	// ReadFile returns the full content of the file at path.
	ReadFile(path string) ([]byte, error)

	// WriteFile writes data to path, creating or truncating the file.
	// The write replaces the whole file content.
	WriteFile(path string, data []byte) error

	// ReadDir returns the names of the entries in a directory,
	// excluding subdirectories.
	ReadDir(dir string) ([]string, error)
}
