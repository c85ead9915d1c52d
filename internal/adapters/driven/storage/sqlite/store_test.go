package sqlite

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/linecull/internal/core/domain"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) (*Store, func()) {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "linecull-test-*")
	require.NoError(t, err)

	store, err := NewStore(tempDir)
	require.NoError(t, err)
	require.NotNil(t, store)

	cleanup := func() {
		assert.NoError(t, store.Close())
		assert.NoError(t, os.RemoveAll(tempDir))
	}

	return store, cleanup
}

// testRun builds a run with DATETIME-safe timestamps.
func testRun(id, path string, startedAt time.Time) *domain.RemovalResult {
	startedAt = startedAt.UTC().Truncate(time.Second)
	return &domain.RemovalResult{
		RunID:             id,
		DocumentPath:      path,
		OriginalLineCount: 120,
		FinalLineCount:    97,
		LinesRemoved:      23,
		OutOfRangeDropped: 2,
		BackupPath:        domain.BackupPath(path, startedAt),
		OutputPath:        path,
		Outcome:           domain.OutcomeSuccess,
		WriteAttempts:     1,
		StartedAt:         startedAt,
		CompletedAt:       startedAt.Add(time.Second),
	}
}

func TestNewStore_ErrorHandling(t *testing.T) {
	// Invalid path should fail to create the data directory
	_, err := NewStore("/invalid\x00path")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "creating data directory")
}

func TestNewStore_Success(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "linecull-test-*")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	store, err := NewStore(tempDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	defer store.Close()

	assert.Equal(t, filepath.Join(tempDir, "history.db"), store.Path())

	_, err = os.Stat(store.Path())
	assert.NoError(t, err)
}

func TestStore_MigrationsAreIdempotent(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "linecull-test-*")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	store1, err := NewStore(tempDir)
	require.NoError(t, err)

	runs := store1.RunStore()
	require.NoError(t, runs.SaveRun(context.Background(), testRun("run-1", "/docs/a.txt", time.Now())))
	require.NoError(t, store1.Close())

	// Reopening replays the migration check without clobbering data
	store2, err := NewStore(tempDir)
	require.NoError(t, err)
	defer store2.Close()

	got, err := store2.RunStore().GetRun(context.Background(), "run-1")
	require.NoError(t, err)
	assert.Equal(t, "/docs/a.txt", got.DocumentPath)
}

func TestRunStore_SaveAndGet(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	runs := store.RunStore()
	want := testRun("run-1", "/docs/report.txt", time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC))
	require.NoError(t, runs.SaveRun(context.Background(), want))

	got, err := runs.GetRun(context.Background(), "run-1")

	require.NoError(t, err)
	assert.Equal(t, want.RunID, got.RunID)
	assert.Equal(t, want.DocumentPath, got.DocumentPath)
	assert.Equal(t, want.OriginalLineCount, got.OriginalLineCount)
	assert.Equal(t, want.FinalLineCount, got.FinalLineCount)
	assert.Equal(t, want.LinesRemoved, got.LinesRemoved)
	assert.Equal(t, want.OutOfRangeDropped, got.OutOfRangeDropped)
	assert.Equal(t, want.BackupPath, got.BackupPath)
	assert.Equal(t, want.OutputPath, got.OutputPath)
	assert.Equal(t, want.Outcome, got.Outcome)
	assert.Equal(t, want.WriteAttempts, got.WriteAttempts)
	assert.True(t, want.StartedAt.Equal(got.StartedAt))
	assert.True(t, want.CompletedAt.Equal(got.CompletedAt))
}

func TestRunStore_SaveRun_Upsert(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	runs := store.RunStore()
	run := testRun("run-1", "/docs/report.txt", time.Now())
	require.NoError(t, runs.SaveRun(context.Background(), run))

	run.Outcome = domain.OutcomeSuccessFallback
	run.OutputPath = domain.FallbackPath(run.DocumentPath)
	run.WriteAttempts = 3
	require.NoError(t, runs.SaveRun(context.Background(), run))

	got, err := runs.GetRun(context.Background(), "run-1")
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeSuccessFallback, got.Outcome)
	assert.Equal(t, 3, got.WriteAttempts)

	all, err := runs.ListRuns(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, all, 1, "upsert must not duplicate the row")
}

func TestRunStore_GetRun_NotFound(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	_, err := store.RunStore().GetRun(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRunStore_ListRuns_NewestFirst(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	runs := store.RunStore()
	base := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	for i := 1; i <= 3; i++ {
		run := testRun(fmt.Sprintf("run-%d", i), "/docs/report.txt", base.Add(time.Duration(i)*time.Minute))
		require.NoError(t, runs.SaveRun(context.Background(), run))
	}

	got, err := runs.ListRuns(context.Background(), 0)

	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "run-3", got[0].RunID)
	assert.Equal(t, "run-2", got[1].RunID)
	assert.Equal(t, "run-1", got[2].RunID)
}

func TestRunStore_ListRuns_Limit(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	runs := store.RunStore()
	base := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	for i := 1; i <= 5; i++ {
		run := testRun(fmt.Sprintf("run-%d", i), "/docs/report.txt", base.Add(time.Duration(i)*time.Minute))
		require.NoError(t, runs.SaveRun(context.Background(), run))
	}

	got, err := runs.ListRuns(context.Background(), 2)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "run-5", got[0].RunID)
	assert.Equal(t, "run-4", got[1].RunID)
}

func TestRunStore_ListRuns_Empty(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	got, err := store.RunStore().ListRuns(context.Background(), 0)

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRunStore_ListRunsByDocument(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	runs := store.RunStore()
	base := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	require.NoError(t, runs.SaveRun(context.Background(), testRun("run-1", "/docs/a.txt", base)))
	require.NoError(t, runs.SaveRun(context.Background(), testRun("run-2", "/docs/b.txt", base.Add(time.Minute))))
	require.NoError(t, runs.SaveRun(context.Background(), testRun("run-3", "/docs/a.txt", base.Add(2*time.Minute))))

	got, err := runs.ListRunsByDocument(context.Background(), "/docs/a.txt", 0)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "run-3", got[0].RunID)
	assert.Equal(t, "run-1", got[1].RunID)
}

func TestRunStore_PurgeRuns(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	runs := store.RunStore()
	base := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	require.NoError(t, runs.SaveRun(context.Background(), testRun("run-1", "/docs/a.txt", base)))
	require.NoError(t, runs.SaveRun(context.Background(), testRun("run-2", "/docs/b.txt", base.Add(time.Minute))))

	purged, err := runs.PurgeRuns(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, purged)

	got, err := runs.ListRuns(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRunStore_PurgeRuns_Empty(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	purged, err := store.RunStore().PurgeRuns(context.Background())

	require.NoError(t, err)
	assert.Zero(t, purged)
}
