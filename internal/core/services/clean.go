package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/linecull/internal/core/domain"
	"github.com/custodia-labs/linecull/internal/core/ports/driven"
	"github.com/custodia-labs/linecull/internal/core/ports/driving"
	"github.com/custodia-labs/linecull/internal/logger"
)

// Ensure CleanService implements the interface.
var _ driving.CleanService = (*CleanService)(nil)

// CleanService removes externally designated lines from a document
// through a backed-up, retried write pipeline. One call owns one
// document; nothing is shared across runs.
type CleanService struct {
	files    driven.FileStore
	settings driving.SettingsService
	history  driving.HistoryService
}

// NewCleanService creates a new clean service. settings and history
// may be nil; the service then uses built-in defaults and skips
// run recording.
func NewCleanService(
	files driven.FileStore,
	settings driving.SettingsService,
	history driving.HistoryService,
) *CleanService {
	return &CleanService{
		files:    files,
		settings: settings,
		history:  history,
	}
}

// Preview reports what a run would remove without touching the
// filesystem beyond reading the document.
func (s *CleanService) Preview(_ context.Context, req driving.CleanRequest) (*driving.CleanPreview, error) {
	if s.files == nil {
		return nil, domain.ErrNotImplemented
	}

	doc, _, err := s.loadDocument(req.Path)
	if err != nil {
		return nil, err
	}

	normalized, dropped := domain.NormalizeDeletionSet(req.Lines, doc.LineCount())

	// normalized is descending; previews read better ascending.
	doomed := make([]driving.DoomedLine, 0, len(normalized))
	for i := len(normalized) - 1; i >= 0; i-- {
		n := normalized[i]
		doomed = append(doomed, driving.DoomedLine{Number: n, Text: doc.Lines[n-1]})
	}

	return &driving.CleanPreview{
		DocumentPath:      doc.Path,
		OriginalLineCount: doc.LineCount(),
		FinalLineCount:    doc.LineCount() - len(normalized),
		OutOfRangeDropped: dropped,
		Doomed:            doomed,
	}, nil
}

// Clean backs up the document, removes the requested lines and
// persists the reduced content through the write-retry pipeline.
// The backup is written before the primary document is touched; a
// backup failure aborts the run with the document intact. Once the
// backup exists the reduced content always ends up somewhere: in
// place on success, in the fallback sibling when retries exhaust.
func (s *CleanService) Clean(ctx context.Context, req driving.CleanRequest) (*domain.RemovalResult, error) {
	if s.files == nil {
		return nil, domain.ErrNotImplemented
	}

	started := time.Now()
	logger.Section("Clean " + req.Path)

	doc, raw, err := s.loadDocument(req.Path)
	if err != nil {
		return nil, err
	}

	normalized, dropped := domain.NormalizeDeletionSet(req.Lines, doc.LineCount())
	logger.Debug("deletion set: %d requested, %d applicable, %d out of range",
		len(req.Lines), len(normalized), dropped)

	kept, removed := domain.RemoveLines(doc.Lines, normalized)

	backupPath := domain.BackupPath(req.Path, started)
	if err := s.files.WriteFile(backupPath, raw); err != nil {
		return nil, fmt.Errorf("creating %q: %w: %w", backupPath, domain.ErrBackupFailed, err)
	}
	logger.Debug("backup written to %s", backupPath)

	reduced := &domain.Document{
		Path:            doc.Path,
		Lines:           kept,
		EOL:             doc.EOL,
		TrailingNewline: doc.TrailingNewline,
	}

	outcome, outputPath, attempts, err := s.writeWithRetry(ctx, req.Path, reduced.Bytes(), s.writeSettings(req.Write))
	if err != nil {
		return nil, err
	}

	result := &domain.RemovalResult{
		RunID:             uuid.New().String(),
		DocumentPath:      req.Path,
		OriginalLineCount: doc.LineCount(),
		FinalLineCount:    len(kept),
		LinesRemoved:      removed,
		OutOfRangeDropped: dropped,
		BackupPath:        backupPath,
		OutputPath:        outputPath,
		Outcome:           outcome,
		WriteAttempts:     attempts,
		StartedAt:         started,
		CompletedAt:       time.Now(),
	}
	logger.Info("removed %d of %d lines (%.1f%%), output %s",
		result.LinesRemoved, result.OriginalLineCount, result.ReductionPercent(), result.OutputPath)

	if s.history != nil {
		if err := s.history.Record(ctx, result); err != nil {
			// The mutation already happened; a ledger failure must not
			// turn a finished run into an error.
			logger.Warn("recording run %s: %v", result.RunID, err)
		}
	}

	return result, nil
}

// loadDocument reads and parses the document, returning the raw bytes
// alongside so the backup can be byte-identical to the original.
func (s *CleanService) loadDocument(path string) (*domain.Document, []byte, error) {
	exists, err := s.files.Exists(path)
	if err != nil {
		return nil, nil, fmt.Errorf("checking %q: %w", path, err)
	}
	if !exists {
		return nil, nil, fmt.Errorf("%w: %s", domain.ErrDocumentMissing, path)
	}

	raw, err := s.files.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading %q: %w", path, err)
	}
	return domain.ParseDocument(path, raw), raw, nil
}

// writeSettings resolves the effective write settings for a run:
// persisted settings, overridden per-field by the request.
func (s *CleanService) writeSettings(override domain.WriteSettings) domain.WriteSettings {
	w := domain.DefaultAppSettings().Write
	if s.settings != nil {
		if app, err := s.settings.Get(); err == nil {
			w = app.Write
		}
	}
	if override.MaxAttempts > 0 {
		w.MaxAttempts = override.MaxAttempts
	}
	if override.RetryInterval > 0 {
		w.RetryInterval = override.RetryInterval
	}
	return w.Normalized()
}

// writeWithRetry drives the write state machine: attempt the primary
// write, wait a fixed interval on failure, retry up to the attempt
// budget, then divert to the fallback sibling. Every write failure is
// treated as retryable; the distinction between a transient and a
// persistent lock is simply whether the budget runs out.
func (s *CleanService) writeWithRetry(
	ctx context.Context,
	path string,
	content []byte,
	w domain.WriteSettings,
) (domain.Outcome, string, int, error) {
	var lastErr error
	for attempt := 1; attempt <= w.MaxAttempts; attempt++ {
		err := s.files.WriteFile(path, content)
		if err == nil {
			if attempt > 1 {
				logger.Info("write succeeded on attempt %d/%d", attempt, w.MaxAttempts)
			}
			return domain.OutcomeSuccess, path, attempt, nil
		}
		lastErr = err
		logger.Warn("write attempt %d/%d failed: %v", attempt, w.MaxAttempts, err)

		if attempt < w.MaxAttempts {
			select {
			case <-ctx.Done():
				return "", "", attempt, fmt.Errorf("waiting to retry %q: %w", path, ctx.Err())
			case <-time.After(w.RetryInterval):
			}
		}
	}

	fallbackPath := domain.FallbackPath(path)
	logger.Info("%d write attempts failed, writing %s", w.MaxAttempts, fallbackPath)
	if err := s.files.WriteFile(fallbackPath, content); err != nil {
		return "", "", w.MaxAttempts, fmt.Errorf(
			"writing %q after %d failed attempts on %q (last: %v): %w: %w",
			fallbackPath, w.MaxAttempts, path, lastErr, domain.ErrFallbackWriteFailed, err)
	}
	return domain.OutcomeSuccessFallback, fallbackPath, w.MaxAttempts, nil
}
