package driving

import (
	"context"
	"time"
)

// BackupInfo describes one discovered backup file.
type BackupInfo struct {
	// Path is the backup file location.
	Path string

	// CreatedAt is the timestamp parsed from the backup filename.
	CreatedAt time.Time
}

// RestoreResult summarises a completed restore.
type RestoreResult struct {
	// DocumentPath is the document that was overwritten.
	DocumentPath string

	// BackupPath is the backup the content came from.
	BackupPath string

	// LineCount is the restored document's line count.
	LineCount int
}

// RestoreService recovers documents from their timestamped backups.
type RestoreService interface {
	// ListBackups returns the backups found for a document,
	// newest first.
	ListBackups(ctx context.Context, path string) ([]BackupInfo, error)

	// Restore overwrites the document with backup content. An empty
	// backupPath selects the newest backup.
	Restore(ctx context.Context, path, backupPath string) (*RestoreResult, error)
}
