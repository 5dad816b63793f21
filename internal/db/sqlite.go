package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"wordbench/internal/benchmark"
)

// Store persists benchmark runs so later invocations can compare against
// them.
type Store interface {
	Close() error
	SaveRun(run Run) (int64, error)
	LatestRun(platform string) (*Run, error)
	ListRuns(limit int) ([]Run, error)
}

// Run is one stored harness execution for a single platform.
type Run struct {
	ID          int64              `json:"id"`
	Platform    string             `json:"platform"`
	Version     string             `json:"version"`
	CreatedAt   time.Time          `json:"created_at"`
	Records     []benchmark.Record `json:"records,omitempty"`
	RecordCount int                `json:"record_count"`
}

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite store and applies migrations.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return store, nil
}

func (s *SQLiteStore) migrate() error {
	query := `
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		platform TEXT NOT NULL,
		version TEXT NOT NULL DEFAULT '',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE TABLE IF NOT EXISTS records (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		avg_ms REAL NOT NULL,
		min_ms REAL NOT NULL,
		max_ms REAL NOT NULL,
		iterations INTEGER NOT NULL,
		bytes_per_op INTEGER NOT NULL DEFAULT 0,
		allocs_per_op INTEGER NOT NULL DEFAULT 0
	);
	`
	_, err := s.db.Exec(query)
	return err
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// SaveRun stores a run and its records, returning the new run ID.
func (s *SQLiteStore) SaveRun(run Run) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	createdAt := run.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	res, err := tx.Exec(`INSERT INTO runs (platform, version, created_at) VALUES (?, ?, ?)`,
		run.Platform, run.Version, createdAt)
	if err != nil {
		return 0, err
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for _, rec := range run.Records {
		_, err := tx.Exec(`INSERT INTO records
			(run_id, name, avg_ms, min_ms, max_ms, iterations, bytes_per_op, allocs_per_op)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			runID, rec.Name, float64(rec.AvgTimeMs), float64(rec.MinTimeMs), float64(rec.MaxTimeMs),
			rec.Iterations, rec.BytesPerOp, rec.AllocsPerOp)
		if err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return runID, nil
}

// LatestRun returns the most recent run for a platform, or nil when none
// is stored.
func (s *SQLiteStore) LatestRun(platform string) (*Run, error) {
	row := s.db.QueryRow(`SELECT id, platform, version, created_at FROM runs
		WHERE platform = ? ORDER BY created_at DESC, id DESC LIMIT 1`, platform)

	var run Run
	if err := row.Scan(&run.ID, &run.Platform, &run.Version, &run.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	records, err := s.loadRecords(run.ID)
	if err != nil {
		return nil, err
	}
	run.Records = records
	run.RecordCount = len(records)
	return &run, nil
}

// ListRuns returns the most recent runs across all platforms, newest
// first, without their records.
func (s *SQLiteStore) ListRuns(limit int) ([]Run, error) {
	rows, err := s.db.Query(`SELECT r.id, r.platform, r.version, r.created_at,
		(SELECT COUNT(*) FROM records WHERE run_id = r.id)
		FROM runs r ORDER BY r.created_at DESC, r.id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.ID, &run.Platform, &run.Version, &run.CreatedAt, &run.RecordCount); err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

func (s *SQLiteStore) loadRecords(runID int64) ([]benchmark.Record, error) {
	rows, err := s.db.Query(`SELECT name, avg_ms, min_ms, max_ms, iterations, bytes_per_op, allocs_per_op
		FROM records WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []benchmark.Record
	for rows.Next() {
		var rec benchmark.Record
		var avg, min, max float64
		if err := rows.Scan(&rec.Name, &avg, &min, &max, &rec.Iterations, &rec.BytesPerOp, &rec.AllocsPerOp); err != nil {
			return nil, err
		}
		rec.AvgTimeMs = benchmark.Millis(avg)
		rec.MinTimeMs = benchmark.Millis(min)
		rec.MaxTimeMs = benchmark.Millis(max)
		records = append(records, rec)
	}
	return records, rows.Err()
}
