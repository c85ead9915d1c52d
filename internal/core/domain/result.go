package domain

import "time"

const unknownDescription = "Unknown"

// Outcome identifies the terminal state of a clean run's write pipeline.
type Outcome string

// Available outcomes.
const (
	// OutcomeSuccess means the primary document was rewritten in place.
	OutcomeSuccess Outcome = "success"

	// OutcomeSuccessFallback means write retries were exhausted and the
	// reduced content was written to the fallback sibling instead.
	// The primary document is unchanged.
	OutcomeSuccessFallback Outcome = "success_fallback"
)

// IsValid returns true if the outcome is recognised.
func (o Outcome) IsValid() bool {
	switch o {
	case OutcomeSuccess, OutcomeSuccessFallback:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (o Outcome) String() string {
	return string(o)
}

// Description returns a human-readable description of the outcome.
func (o Outcome) Description() string {
	switch o {
	case OutcomeSuccess:
		return "Cleaned in place"
	case OutcomeSuccessFallback:
		return "Written to fallback file (manual replacement required)"
	default:
		return unknownDescription
	}
}

// RemovalResult summarises a completed clean run. It carries no
// behaviour beyond derived counters; formatting is the caller's job.
type RemovalResult struct {
	// RunID uniquely identifies the run in the history ledger.
	RunID string

	// DocumentPath is the document the run operated on.
	DocumentPath string

	// OriginalLineCount is the line count before removal.
	OriginalLineCount int

	// FinalLineCount is the line count after removal.
	FinalLineCount int

	// LinesRemoved is the number of lines actually removed.
	LinesRemoved int

	// OutOfRangeDropped is the count of distinct requested line
	// numbers that fell outside the document and were ignored.
	OutOfRangeDropped int

	// BackupPath is where the pre-run content was copied.
	BackupPath string

	// OutputPath is where the reduced content was written: the
	// document itself, or the fallback sibling.
	OutputPath string

	// Outcome is the terminal state the write pipeline reached.
	Outcome Outcome

	// WriteAttempts is the number of primary write attempts used.
	WriteAttempts int

	// StartedAt is when the run began.
	StartedAt time.Time

	// CompletedAt is when the run reached its terminal state.
	CompletedAt time.Time
}

// ReductionPercent returns the removed share of the original line
// count as a percentage. A zero-line original reduces by zero.
func (r *RemovalResult) ReductionPercent() float64 {
	if r.OriginalLineCount == 0 {
		return 0
	}
	return float64(r.LinesRemoved) / float64(r.OriginalLineCount) * 100
}

// RequiresManualReplace returns true when the reduced content lives in
// the fallback sibling and the user must swap it in themselves.
func (r *RemovalResult) RequiresManualReplace() bool {
	return r.Outcome == OutcomeSuccessFallback
}

// Duration returns how long the run took.
func (r *RemovalResult) Duration() time.Duration {
	return r.CompletedAt.Sub(r.StartedAt)
}
