// Package storage provides SQLite-based persistence for analysis runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Outcome describes how a run ended.
type Outcome string

const (
	OutcomeOK              Outcome = "ok"
	OutcomeNoIntersections Outcome = "no_intersections"
	OutcomeFailed          Outcome = "failed"
)

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// Run represents one recorded analysis.
type Run struct {
	ID            int64
	Source        string // Input file path or "sample:<id>"
	Wire1         string
	Wire2         string
	Outcome       Outcome
	Distance      int // Valid only when Outcome is OutcomeOK
	Steps         int // Valid only when Outcome is OutcomeOK
	Intersections int
	Error         string // Set when Outcome is OutcomeFailed
	Duration      time.Duration
	CreatedAt     time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			source TEXT NOT NULL,
			wire1 TEXT NOT NULL,
			wire2 TEXT NOT NULL,
			outcome TEXT NOT NULL,
			distance INTEGER,
			steps INTEGER,
			intersections INTEGER NOT NULL DEFAULT 0,
			error TEXT,
			duration_us INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_source ON runs(source);
		CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a run. Returns the ID of the inserted record.
func (s *Store) SaveRun(run Run) (int64, error) {
	var distance, steps sql.NullInt64
	if run.Outcome == OutcomeOK {
		distance = sql.NullInt64{Int64: int64(run.Distance), Valid: true}
		steps = sql.NullInt64{Int64: int64(run.Steps), Valid: true}
	}
	var errText sql.NullString
	if run.Error != "" {
		errText = sql.NullString{String: run.Error, Valid: true}
	}

	result, err := s.db.Exec(
		`INSERT INTO runs
		 (source, wire1, wire2, outcome, distance, steps, intersections, error, duration_us)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.Source,
		run.Wire1,
		run.Wire2,
		string(run.Outcome),
		distance,
		steps,
		run.Intersections,
		errText,
		run.Duration.Microseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const runColumns = `id, source, wire1, wire2, outcome, distance, steps,
		        intersections, error, duration_us, created_at`

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (Run, error) {
	var run Run
	var outcome string
	var distance, steps sql.NullInt64
	var errText sql.NullString
	var durationUS int64
	var createdAt any

	if err := row.Scan(
		&run.ID,
		&run.Source,
		&run.Wire1,
		&run.Wire2,
		&outcome,
		&distance,
		&steps,
		&run.Intersections,
		&errText,
		&durationUS,
		&createdAt,
	); err != nil {
		return Run{}, err
	}

	run.Outcome = Outcome(outcome)
	if distance.Valid {
		run.Distance = int(distance.Int64)
	}
	if steps.Valid {
		run.Steps = int(steps.Int64)
	}
	if errText.Valid {
		run.Error = errText.String
	}
	run.Duration = time.Duration(durationUS) * time.Microsecond
	run.CreatedAt = parseTime(createdAt)
	return run, nil
}

// parseTime handles both time.Time and string datetime values.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// RunByID retrieves a run by its ID. Returns nil if it does not exist.
func (s *Store) RunByID(id int64) (*Run, error) {
	run, err := scanRun(s.db.QueryRow(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE id = ?`,
		id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	return &run, nil
}

// RecentRuns retrieves the most recent runs, newest first.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// ClearRuns deletes all recorded runs.
func (s *Store) ClearRuns() error {
	_, err := s.db.Exec("DELETE FROM runs")
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// Stats contains aggregated statistics over all runs.
type Stats struct {
	Runs            int
	Succeeded       int
	NoIntersections int
	Failed          int
	BestDistance    int // Smallest distance among successful runs, 0 if none
	BestSteps       int // Smallest step sum among successful runs, 0 if none
}

// GetStats retrieves aggregated statistics for the run history.
func (s *Store) GetStats() (*Stats, error) {
	stats := &Stats{}
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(outcome = 'ok'), 0),
		        COALESCE(SUM(outcome = 'no_intersections'), 0),
		        COALESCE(SUM(outcome = 'failed'), 0),
		        COALESCE(MIN(distance), 0),
		        COALESCE(MIN(steps), 0)
		 FROM runs`,
	).Scan(&stats.Runs, &stats.Succeeded, &stats.NoIntersections, &stats.Failed, &stats.BestDistance, &stats.BestSteps)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	return stats, nil
}
