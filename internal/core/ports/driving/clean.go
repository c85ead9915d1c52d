package driving

import (
	"context"

	"github.com/custodia-labs/linecull/internal/core/domain"
)

// CleanRequest describes one clean run over a single document.
type CleanRequest struct {
	// Path is the document to clean.
	Path string

	// Lines is the externally computed deletion set, 1-based, in any
	// order, duplicates allowed.
	Lines []int

	// Write overrides the persisted write-retry settings for this run.
	// Zero fields fall back to the persisted values.
	Write domain.WriteSettings
}

// DoomedLine pairs a line number with its content, for previews.
type DoomedLine struct {
	// Number is the 1-based position in the original document.
	Number int

	// Text is the line content without its terminator.
	Text string
}

// CleanPreview summarises what a run would do, without doing it.
type CleanPreview struct {
	// DocumentPath is the document the preview was computed for.
	DocumentPath string

	// OriginalLineCount is the current line count.
	OriginalLineCount int

	// FinalLineCount is the line count the run would leave behind.
	FinalLineCount int

	// OutOfRangeDropped is the count of distinct requested line
	// numbers outside the document.
	OutOfRangeDropped int

	// Doomed lists the lines that would be removed, ascending.
	Doomed []DoomedLine
}

// LinesRemoved returns how many lines the run would remove.
func (p *CleanPreview) LinesRemoved() int {
	return len(p.Doomed)
}

// CleanService executes line removal runs.
type CleanService interface {
	// Preview reports what a run would remove without touching the
	// filesystem beyond reading the document.
	Preview(ctx context.Context, req CleanRequest) (*CleanPreview, error)

	// Clean backs up the document, removes the requested lines and
	// persists the reduced content through the write-retry pipeline.
	// The returned result is complete for both outcomes; an error means
	// the run stopped before any content could be persisted.
	Clean(ctx context.Context, req CleanRequest) (*domain.RemovalResult, error)
}
