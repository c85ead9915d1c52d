package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestOutcome_IsValid tests all valid and invalid outcomes
func TestOutcome_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		outcome  Outcome
		expected bool
	}{
		{
			name:     "success is valid",
			outcome:  OutcomeSuccess,
			expected: true,
		},
		{
			name:     "success_fallback is valid",
			outcome:  OutcomeSuccessFallback,
			expected: true,
		},
		{
			name:     "empty string is invalid",
			outcome:  Outcome(""),
			expected: false,
		},
		{
			name:     "unknown outcome is invalid",
			outcome:  Outcome("failed"),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.outcome.IsValid())
		})
	}
}

// TestOutcome_String tests string representation
func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "success", OutcomeSuccess.String())
	assert.Equal(t, "success_fallback", OutcomeSuccessFallback.String())
	assert.Equal(t, "odd", Outcome("odd").String())
}

// TestOutcome_Description tests human-readable descriptions
func TestOutcome_Description(t *testing.T) {
	assert.Equal(t, "Cleaned in place", OutcomeSuccess.Description())
	assert.Equal(t, "Written to fallback file (manual replacement required)",
		OutcomeSuccessFallback.Description())
	assert.Equal(t, unknownDescription, Outcome("odd").Description())
}

// TestRemovalResult_ReductionPercent tests the derived percentage
func TestRemovalResult_ReductionPercent(t *testing.T) {
	tests := []struct {
		name     string
		result   RemovalResult
		expected float64
	}{
		{
			name:     "partial removal",
			result:   RemovalResult{OriginalLineCount: 10, LinesRemoved: 2},
			expected: 20,
		},
		{
			name:     "full removal",
			result:   RemovalResult{OriginalLineCount: 5, LinesRemoved: 5},
			expected: 100,
		},
		{
			name:     "nothing removed",
			result:   RemovalResult{OriginalLineCount: 5, LinesRemoved: 0},
			expected: 0,
		},
		{
			name:     "zero line original",
			result:   RemovalResult{OriginalLineCount: 0, LinesRemoved: 0},
			expected: 0,
		},
		{
			name:     "fractional percentage",
			result:   RemovalResult{OriginalLineCount: 3, LinesRemoved: 1},
			expected: 100.0 / 3.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, tt.result.ReductionPercent(), 0.0001)
		})
	}
}

// TestRemovalResult_RequiresManualReplace tests the fallback indicator
func TestRemovalResult_RequiresManualReplace(t *testing.T) {
	inPlace := RemovalResult{Outcome: OutcomeSuccess}
	fallback := RemovalResult{Outcome: OutcomeSuccessFallback}

	assert.False(t, inPlace.RequiresManualReplace())
	assert.True(t, fallback.RequiresManualReplace())
}

// TestRemovalResult_Duration tests elapsed time calculation
func TestRemovalResult_Duration(t *testing.T) {
	start := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	result := RemovalResult{
		StartedAt:   start,
		CompletedAt: start.Add(4 * time.Second),
	}

	assert.Equal(t, 4*time.Second, result.Duration())
}
