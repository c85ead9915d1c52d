package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/linecull/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/linecull/internal/core/domain"
	"github.com/custodia-labs/linecull/internal/core/ports/driven"
)

// Store owns the SQLite database behind the run-history ledger.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens (and if needed creates) the history database under
// dataDir. An empty dataDir means ~/.linecull/data. The schema is
// migrated to the latest version before the store is returned.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".linecull", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "history.db")

	// WAL plus a busy timeout lets a clean run and a history query
	// overlap without SQLITE_BUSY errors.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// RunStore returns a RunStore interface backed by this store.
func (s *Store) RunStore() driven.RunStore {
	return &runStore{store: s}
}

// migrate runs all pending migrations.
// migrate applies every embedded *.up.sql whose numeric prefix is
// newer than the recorded schema version. Re-running against an
// up-to-date database is a no-op.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var applied int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&applied); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	names, err := fs.Glob(fsys, "*.up.sql")
	if err != nil {
		return fmt.Errorf("listing migrations: %w", err)
	}
	sort.Strings(names)

	for _, name := range names {
		// Filenames carry their version as a numeric prefix,
		// e.g. 001_create_runs.up.sql.
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= applied {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// ==================== Run Store ====================

// runStore implements driven.RunStore.
type runStore struct {
	store *Store
}

var _ driven.RunStore = (*runStore)(nil)

// SaveRun stores or updates a completed run.
func (s *runStore) SaveRun(ctx context.Context, result *domain.RemovalResult) error {
	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO runs (id, document_path, original_line_count, final_line_count,
			lines_removed, out_of_range_dropped, backup_path, output_path, outcome,
			write_attempts, started_at, completed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			document_path = excluded.document_path,
			original_line_count = excluded.original_line_count,
			final_line_count = excluded.final_line_count,
			lines_removed = excluded.lines_removed,
			out_of_range_dropped = excluded.out_of_range_dropped,
			backup_path = excluded.backup_path,
			output_path = excluded.output_path,
			outcome = excluded.outcome,
			write_attempts = excluded.write_attempts,
			started_at = excluded.started_at,
			completed_at = excluded.completed_at
	`, result.RunID, result.DocumentPath, result.OriginalLineCount, result.FinalLineCount,
		result.LinesRemoved, result.OutOfRangeDropped, result.BackupPath, result.OutputPath,
		string(result.Outcome), result.WriteAttempts,
		result.StartedAt.UTC(), result.CompletedAt.UTC())

	if err != nil {
		return fmt.Errorf("saving run: %w", err)
	}
	return nil
}

// GetRun retrieves a run by ID.
func (s *runStore) GetRun(ctx context.Context, runID string) (*domain.RemovalResult, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, document_path, original_line_count, final_line_count,
			lines_removed, out_of_range_dropped, backup_path, output_path, outcome,
			write_attempts, started_at, completed_at
		FROM runs WHERE id = ?
	`, runID)

	return scanRun(row)
}

// ListRuns returns recorded runs, newest first. A limit of zero or less
// returns all runs.
func (s *runStore) ListRuns(ctx context.Context, limit int) ([]domain.RemovalResult, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, document_path, original_line_count, final_line_count,
			lines_removed, out_of_range_dropped, backup_path, output_path, outcome,
			write_attempts, started_at, completed_at
		FROM runs
		ORDER BY started_at DESC, id DESC
		LIMIT ?
	`, normalizeLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	return collectRuns(rows)
}

// ListRunsByDocument returns recorded runs for one document path, newest first.
func (s *runStore) ListRunsByDocument(ctx context.Context, path string, limit int) ([]domain.RemovalResult, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, document_path, original_line_count, final_line_count,
			lines_removed, out_of_range_dropped, backup_path, output_path, outcome,
			write_attempts, started_at, completed_at
		FROM runs WHERE document_path = ?
		ORDER BY started_at DESC, id DESC
		LIMIT ?
	`, path, normalizeLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("querying runs for %q: %w", path, err)
	}
	defer rows.Close()

	return collectRuns(rows)
}

// PurgeRuns deletes all recorded runs and returns how many were removed.
func (s *runStore) PurgeRuns(ctx context.Context) (int, error) {
	res, err := s.store.db.ExecContext(ctx, "DELETE FROM runs")
	if err != nil {
		return 0, fmt.Errorf("purging runs: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting purged runs: %w", err)
	}
	return int(affected), nil
}

// normalizeLimit maps "no limit" onto SQLite's unbounded LIMIT value.
func normalizeLimit(limit int) int {
	if limit <= 0 {
		return -1
	}
	return limit
}

// scanRun scans a run from *sql.Row.
func scanRun(row *sql.Row) (*domain.RemovalResult, error) {
	var result domain.RemovalResult
	var outcome string
	var startedAt, completedAt time.Time

	if err := row.Scan(&result.RunID, &result.DocumentPath, &result.OriginalLineCount,
		&result.FinalLineCount, &result.LinesRemoved, &result.OutOfRangeDropped,
		&result.BackupPath, &result.OutputPath, &outcome,
		&result.WriteAttempts, &startedAt, &completedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning run: %w", err)
	}

	result.Outcome = domain.Outcome(outcome)
	result.StartedAt = startedAt.UTC()
	result.CompletedAt = completedAt.UTC()

	return &result, nil
}

// scanRunRows scans a run from *sql.Rows.
func scanRunRows(rows *sql.Rows) (*domain.RemovalResult, error) {
	var result domain.RemovalResult
	var outcome string
	var startedAt, completedAt time.Time

	if err := rows.Scan(&result.RunID, &result.DocumentPath, &result.OriginalLineCount,
		&result.FinalLineCount, &result.LinesRemoved, &result.OutOfRangeDropped,
		&result.BackupPath, &result.OutputPath, &outcome,
		&result.WriteAttempts, &startedAt, &completedAt); err != nil {
		return nil, fmt.Errorf("scanning run: %w", err)
	}

	result.Outcome = domain.Outcome(outcome)
	result.StartedAt = startedAt.UTC()
	result.CompletedAt = completedAt.UTC()

	return &result, nil
}

// collectRuns drains a result set into a slice.
func collectRuns(rows *sql.Rows) ([]domain.RemovalResult, error) {
	var runs []domain.RemovalResult //nolint:prealloc // size unknown from query
	for rows.Next() {
		run, err := scanRunRows(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating runs: %w", err)
	}

	return runs, nil
}
