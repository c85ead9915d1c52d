// Package billy implements the FileStore port over go-billy filesystems.
// Production wiring uses the host filesystem; tests use the in-memory
// variant so the backup and write-retry pipeline can be exercised
// without touching a real disk.
package billy

import (
	"fmt"
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"

	"github.com/custodia-labs/linecull/internal/core/ports/driven"
)

// filePerm is the mode for files the store creates.
const filePerm = 0o644

// Ensure FileStore implements the interface.
var _ driven.FileStore = (*FileStore)(nil)

// FileStore provides filesystem access backed by a go-billy filesystem.
type FileStore struct {
	fs billy.Filesystem
}

// New creates a FileStore over the given go-billy filesystem.
func New(fsys billy.Filesystem) *FileStore {
	return &FileStore{fs: fsys}
}

// NewOS creates a FileStore over the host filesystem, rooted at /.
// Callers must pass absolute paths.
func NewOS() *FileStore {
	return &FileStore{fs: osfs.New("/")}
}

// NewMemory creates a FileStore over an in-memory filesystem.
func NewMemory() *FileStore {
	return &FileStore{fs: memfs.New()}
}

// Exists reports whether a file exists at path.
func (s *FileStore) Exists(path string) (bool, error) {
	_, err := s.fs.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case os.IsNotExist(err):
		return false, nil
	default:
		return false, fmt.Errorf("stat %q: %w", path, err)
	}
}

// ReadFile returns the full content of the file at path.
func (s *FileStore) ReadFile(path string) ([]byte, error) {
	data, err := util.ReadFile(s.fs, path)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", path, err)
	}
	return data, nil
}

// WriteFile writes data to path, creating or truncating the file.
// Parent directories are created as needed.
func (s *FileStore) WriteFile(path string, data []byte) error {
	if err := util.WriteFile(s.fs, path, data, filePerm); err != nil {
		return fmt.Errorf("write %q: %w", path, err)
	}
	return nil
}

// ReadDir returns the entry names in dir, excluding subdirectories.
func (s *FileStore) ReadDir(dir string) ([]string, error) {
	infos, err := s.fs.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("readdir %q: %w", dir, err)
	}

	names := make([]string, 0, len(infos))
	for _, info := range infos {
		if info.IsDir() {
			continue
		}
		names = append(names, info.Name())
	}
	return names, nil
}
