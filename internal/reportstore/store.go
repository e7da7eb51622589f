package reportstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Report describes one validation run.
type Report struct {
	ID               string
	Dataset          string
	DataRoot         string
	TotalFiles       int
	Missing          []string
	InvalidChecksums []string
	CreatedAt        time.Time
}

// Clean reports whether the run found no discrepancies.
func (r Report) Clean() bool {
	return len(r.Missing) == 0 && len(r.InvalidChecksums) == 0
}

const schema = `
CREATE TABLE IF NOT EXISTS validation_runs (
    id TEXT PRIMARY KEY,
    dataset TEXT NOT NULL,
    data_root TEXT NOT NULL,
    total_files INTEGER NOT NULL,
    missing TEXT NOT NULL,
    invalid_checksums TEXT NOT NULL,
    created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_validation_runs_dataset
    ON validation_runs (dataset, created_at DESC);
`

// Store manages validation run persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the report database at path and applies
// the schema.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create report db directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Record inserts a validation run. A missing ID or timestamp is filled in.
func (s *Store) Record(ctx context.Context, report *Report) error {
	if report.ID == "" {
		report.ID = uuid.NewString()
	}
	if report.CreatedAt.IsZero() {
		report.CreatedAt = time.Now().UTC()
	}

	missing, err := json.Marshal(emptyIfNil(report.Missing))
	if err != nil {
		return fmt.Errorf("marshal missing paths: %w", err)
	}
	invalid, err := json.Marshal(emptyIfNil(report.InvalidChecksums))
	if err != nil {
		return fmt.Errorf("marshal invalid paths: %w", err)
	}

	_, err = s.db.ExecContext(
		ctx,
		`INSERT INTO validation_runs (
            id, dataset, data_root, total_files, missing, invalid_checksums, created_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		report.ID,
		report.Dataset,
		report.DataRoot,
		report.TotalFiles,
		string(missing),
		string(invalid),
		report.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert validation run: %w", err)
	}
	return nil
}

// History returns recent runs for a dataset, newest first. limit <= 0 selects
// a default of 20.
func (s *Store) History(ctx context.Context, dataset string, limit int) ([]Report, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, dataset, data_root, total_files, missing, invalid_checksums, created_at
         FROM validation_runs
         WHERE dataset = ?
         ORDER BY created_at DESC
         LIMIT ?`,
		dataset,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query validation runs: %w", err)
	}
	defer rows.Close()

	var reports []Report
	for rows.Next() {
		var report Report
		var missing, invalid, createdAt string
		if err := rows.Scan(
			&report.ID,
			&report.Dataset,
			&report.DataRoot,
			&report.TotalFiles,
			&missing,
			&invalid,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan validation run: %w", err)
		}
		if err := json.Unmarshal([]byte(missing), &report.Missing); err != nil {
			return nil, fmt.Errorf("parse missing paths: %w", err)
		}
		if err := json.Unmarshal([]byte(invalid), &report.InvalidChecksums); err != nil {
			return nil, fmt.Errorf("parse invalid paths: %w", err)
		}
		report.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse run timestamp: %w", err)
		}
		reports = append(reports, report)
	}
	return reports, rows.Err()
}

func emptyIfNil(paths []string) []string {
	if paths == nil {
		return []string{}
	}
	return paths
}
