package domain

import "errors"

// Sentinel errors for business failures. Callers branch on these
// with errors.Is; adapters wrap their own causes around them.
var (
	// ErrDocumentMissing indicates the target document does not exist.
	// Nothing has been written when this is returned.
	ErrDocumentMissing = errors.New("document does not exist")

	// ErrBackupFailed indicates the pre-write backup could not be created.
	// The primary document is guaranteed untouched when this is returned.
	ErrBackupFailed = errors.New("backup failed")

	// ErrFallbackWriteFailed indicates both the primary document and the
	// fallback sibling could not be written. The reduced content was lost;
	// the primary document and its backup are intact.
	ErrFallbackWriteFailed = errors.New("fallback write failed")

	// ErrNoBackups indicates no backup file exists for the document.
	ErrNoBackups = errors.New("no backups found")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")
)
