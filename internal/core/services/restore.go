package services

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/custodia-labs/linecull/internal/core/domain"
	"github.com/custodia-labs/linecull/internal/core/ports/driven"
	"github.com/custodia-labs/linecull/internal/core/ports/driving"
	"github.com/custodia-labs/linecull/internal/logger"
)

// Ensure RestoreService implements the interface.
var _ driving.RestoreService = (*RestoreService)(nil)

// RestoreService recovers documents from the timestamped backups a
// clean run leaves behind.
type RestoreService struct {
	files driven.FileStore
}

// NewRestoreService creates a new restore service.
func NewRestoreService(files driven.FileStore) *RestoreService {
	return &RestoreService{files: files}
}

// ListBackups returns the backups found for a document, newest first.
// The document itself does not need to exist anymore.
func (s *RestoreService) ListBackups(_ context.Context, path string) ([]driving.BackupInfo, error) {
	if s.files == nil {
		return nil, domain.ErrNotImplemented
	}

	dir := filepath.Dir(path)
	names, err := s.files.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing %q: %w", dir, err)
	}

	var backups []driving.BackupInfo
	for _, name := range names {
		candidate := filepath.Join(dir, name)
		at, ok := domain.BackupTime(path, candidate)
		if !ok {
			continue
		}
		backups = append(backups, driving.BackupInfo{Path: candidate, CreatedAt: at})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].CreatedAt.After(backups[j].CreatedAt)
	})
	return backups, nil
}

// Restore overwrites the document with backup content. An empty
// backupPath selects the newest backup.
func (s *RestoreService) Restore(ctx context.Context, path, backupPath string) (*driving.RestoreResult, error) {
	if s.files == nil {
		return nil, domain.ErrNotImplemented
	}

	if backupPath == "" {
		backups, err := s.ListBackups(ctx, path)
		if err != nil {
			return nil, err
		}
		if len(backups) == 0 {
			return nil, fmt.Errorf("%w: %s", domain.ErrNoBackups, path)
		}
		backupPath = backups[0].Path
	} else {
		if _, ok := domain.BackupTime(path, backupPath); !ok {
			return nil, fmt.Errorf("%w: %q is not a backup of %q", domain.ErrInvalidInput, backupPath, path)
		}
		exists, err := s.files.Exists(backupPath)
		if err != nil {
			return nil, fmt.Errorf("checking %q: %w", backupPath, err)
		}
		if !exists {
			return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, backupPath)
		}
	}

	raw, err := s.files.ReadFile(backupPath)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", backupPath, err)
	}
	if err := s.files.WriteFile(path, raw); err != nil {
		return nil, fmt.Errorf("restoring %q from %q: %w", path, backupPath, err)
	}

	doc := domain.ParseDocument(path, raw)
	logger.Info("restored %s from %s (%d lines)", path, backupPath, doc.LineCount())

	return &driving.RestoreResult{
		DocumentPath: path,
		BackupPath:   backupPath,
		LineCount:    doc.LineCount(),
	}, nil
}
