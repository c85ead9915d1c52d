package cli

import (
	"context"
	"time"

	"github.com/custodia-labs/linecull/internal/adapters/driven/fileaccess/billy"
	"github.com/custodia-labs/linecull/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/linecull/internal/core/domain"
	"github.com/custodia-labs/linecull/internal/core/services"
)

// Fixture document shared by the command tests. The path is absolute so
// it comes back unchanged from the filepath.Abs in the handlers.
const (
	testDocPath    = "/docs/report.txt"
	testDocContent = "alpha\nbravo\ncharlie\ndelta\necho\n"
)

// Timestamps of the seeded backups. The later one is what a restore
// without --backup picks.
var (
	testBackupOlder = time.Date(2025, 3, 14, 9, 0, 0, 0, time.Local)
	testBackupNewer = time.Date(2025, 3, 15, 10, 30, 0, 0, time.Local)
)

// testFiles is the in-memory filesystem behind the current test
// services, so tests can check what a command wrote.
var testFiles *billy.FileStore

// setupTestServices wires the commands to services backed by in-memory
// adapters, seeded with a document, two backups and two recorded runs.
// The returned cleanup restores the previous wiring.
func setupTestServices() func() {
	oldClean := cleanService
	oldRestore := restoreService
	oldHistory := historyService
	oldSettings := settingsService
	oldFiles := testFiles

	files := billy.NewMemory()
	seedTestFiles(files)
	testFiles = files

	settings := services.NewSettingsService(memory.NewConfigStore())
	history := services.NewHistoryService(seedTestRuns(), settings)

	cleanService = services.NewCleanService(files, settings, history)
	restoreService = services.NewRestoreService(files)
	historyService = history
	settingsService = settings

	return func() {
		cleanService = oldClean
		restoreService = oldRestore
		historyService = oldHistory
		settingsService = oldSettings
		testFiles = oldFiles
	}
}

func seedTestFiles(files *billy.FileStore) {
	seed := map[string]string{
		testDocPath: testDocContent,
		domain.BackupPath(testDocPath, testBackupOlder): "old alpha\nold bravo\n",
		domain.BackupPath(testDocPath, testBackupNewer): "saved alpha\nsaved bravo\nsaved charlie\n",
	}
	for path, content := range seed {
		if err := files.WriteFile(path, []byte(content)); err != nil {
			panic(err)
		}
	}
}

// seedTestRuns returns a run store holding two finished runs.
// run-2 is the newer one and lists first.
func seedTestRuns() *memory.RunStore {
	runs := memory.NewRunStore()
	started := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

	seed := []domain.RemovalResult{
		{
			RunID:             "run-1",
			DocumentPath:      testDocPath,
			OriginalLineCount: 5,
			FinalLineCount:    3,
			LinesRemoved:      2,
			BackupPath:        domain.BackupPath(testDocPath, testBackupOlder),
			OutputPath:        testDocPath,
			Outcome:           domain.OutcomeSuccess,
			WriteAttempts:     1,
			StartedAt:         started,
			CompletedAt:       started.Add(40 * time.Millisecond),
		},
		{
			RunID:             "run-2",
			DocumentPath:      "/docs/other.txt",
			OriginalLineCount: 8,
			FinalLineCount:    6,
			LinesRemoved:      2,
			OutOfRangeDropped: 3,
			BackupPath:        "/docs/other.txt.backup_20250315_103000",
			OutputPath:        "/docs/other.txt" + domain.FallbackSuffix,
			Outcome:           domain.OutcomeSuccessFallback,
			WriteAttempts:     3,
			StartedAt:         started.Add(24 * time.Hour),
			CompletedAt:       started.Add(24*time.Hour + 5*time.Second),
		},
	}
	for i := range seed {
		if err := runs.SaveRun(context.Background(), &seed[i]); err != nil {
			panic(err)
		}
	}
	return runs
}

// readTestFile returns the current content of a seeded file.
func readTestFile(path string) string {
	data, err := testFiles.ReadFile(path)
	if err != nil {
		panic(err)
	}
	return string(data)
}
