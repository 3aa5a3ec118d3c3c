// Package history persists one row per validation run in a local SQLite
// database. Watch mode appends a row after every re-validation; the
// history command lists and prunes them.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/uxforge/uxlint/internal/report"
)

// Run is one recorded validation run.
type Run struct {
	ID             string `json:"id"`
	RanAt          string `json:"ranAt"`
	ScaffoldPath   string `json:"scaffoldPath"`
	ScaffoldDigest string `json:"scaffoldDigest"`
	ContentDigest  string `json:"contentDigest"`
	Patterns       int    `json:"patterns"`
	MustFailed     int    `json:"mustFailed"`
	ShouldFailed   int    `json:"shouldFailed"`
	TotalIssues    int    `json:"totalIssues"`
	Score          int    `json:"score"`
	Band           string `json:"band"`
}

// FromArtifact flattens a flow.json artifact into a run row.
func FromArtifact(a report.Artifact) Run {
	r := Run{
		ID:             a.RunID,
		RanAt:          a.GeneratedAt,
		ScaffoldPath:   a.ScaffoldPath,
		ScaffoldDigest: a.ScaffoldDigest,
		ContentDigest:  a.ContentDigest,
		Patterns:       len(a.Summary.Patterns),
		TotalIssues:    a.Summary.TotalIssues,
		Score:          a.Score.Score,
		Band:           a.Score.Band,
	}
	for _, p := range a.Summary.Patterns {
		r.MustFailed += p.MustFailed
		r.ShouldFailed += p.ShouldFailed
	}
	return r
}

// Store wraps the runs table of one history database.
type Store struct {
	db *sql.DB
}

// Open opens the history database at path, creating the directory, the
// file and the schema when absent.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("ensure history dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	query := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		ran_at TEXT NOT NULL,
		scaffold_path TEXT NOT NULL,
		scaffold_digest TEXT NOT NULL,
		content_digest TEXT NOT NULL,
		patterns INTEGER NOT NULL,
		must_failed INTEGER NOT NULL,
		should_failed INTEGER NOT NULL,
		total_issues INTEGER NOT NULL,
		score INTEGER NOT NULL,
		band TEXT NOT NULL
	);`
	if _, err := s.db.ExecContext(context.Background(), query); err != nil {
		return fmt.Errorf("migrate history db: %w", err)
	}
	return nil
}

// Save inserts one run row.
func (s *Store) Save(ctx context.Context, r Run) error {
	query := `INSERT INTO runs (
		id, ran_at, scaffold_path, scaffold_digest, content_digest,
		patterns, must_failed, should_failed, total_issues, score, band
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query,
		r.ID, r.RanAt, r.ScaffoldPath, r.ScaffoldDigest, r.ContentDigest,
		r.Patterns, r.MustFailed, r.ShouldFailed, r.TotalIssues, r.Score, r.Band,
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

// Recent returns up to limit runs, newest first. RFC3339 timestamps sort
// lexicographically; rowid breaks ties between runs within one second.
func (s *Store) Recent(ctx context.Context, limit int) ([]Run, error) {
	query := `
	SELECT id, ran_at, scaffold_path, scaffold_digest, content_digest,
	       patterns, must_failed, should_failed, total_issues, score, band
	FROM runs
	ORDER BY ran_at DESC, rowid DESC
	LIMIT ?`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(
			&r.ID, &r.RanAt, &r.ScaffoldPath, &r.ScaffoldDigest, &r.ContentDigest,
			&r.Patterns, &r.MustFailed, &r.ShouldFailed, &r.TotalIssues, &r.Score, &r.Band,
		); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return runs, nil
}

// Prune deletes all but the newest keep runs and returns how many rows
// were removed.
func (s *Store) Prune(ctx context.Context, keep int) (int, error) {
	if keep < 0 {
		keep = 0
	}
	query := `DELETE FROM runs WHERE id NOT IN (
		SELECT id FROM runs ORDER BY ran_at DESC, rowid DESC LIMIT ?
	)`
	res, err := s.db.ExecContext(ctx, query, keep)
	if err != nil {
		return 0, fmt.Errorf("prune runs: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}
