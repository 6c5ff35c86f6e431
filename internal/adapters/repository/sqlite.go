package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/okian/scoreportal/internal/domain/model"
	"github.com/okian/scoreportal/pkg/metrics"
)

// Connection tuning constants.
const (
	writeMaxConns   = 1 // single writer; SQLite serializes writes anyway
	readMaxConns    = 4
	readConnMaxLife = 5 * time.Minute
)

const schemaDDL = `
CREATE TABLE IF NOT EXISTS scores (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	team_id TEXT NOT NULL,
	score INTEGER NOT NULL,
	registered_at INTEGER NOT NULL
);`

// SQLiteStore implements Store on a local SQLite database. A dedicated
// single-connection writer and a small read pool share the same WAL file,
// so reads never block the writer.
type SQLiteStore struct {
	db         *sql.DB // write connection
	readDB     *sql.DB // read connection pool
	insertStmt *sql.Stmt

	queryTimeout time.Duration
}

// NewSQLiteStore opens (creating if needed) the scores database at path.
func NewSQLiteStore(ctx context.Context, path string, opts ...Option) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	db.SetMaxOpenConns(writeMaxConns)
	db.SetMaxIdleConns(writeMaxConns)

	readDB, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	readDB.SetMaxOpenConns(readMaxConns)
	readDB.SetMaxIdleConns(readMaxConns)
	readDB.SetConnMaxLifetime(readConnMaxLife)

	s := &SQLiteStore{db: db, readDB: readDB}
	for _, opt := range opts {
		opt(s)
	}

	if _, err := db.ExecContext(ctx, schemaDDL); err != nil {
		_ = readDB.Close()
		_ = db.Close()
		return nil, fmt.Errorf("%w: init schema: %w", ErrOpen, err)
	}

	insertStmt, err := db.PrepareContext(ctx,
		`INSERT INTO scores (team_id, score, registered_at) VALUES (?, ?, ?)`)
	if err != nil {
		_ = readDB.Close()
		_ = db.Close()
		return nil, fmt.Errorf("%w: prepare insert: %w", ErrOpen, err)
	}
	s.insertStmt = insertStmt

	return s, nil
}

// Append records one event in a single atomic INSERT and returns the
// auto-assigned id.
func (s *SQLiteStore) Append(ctx context.Context, teamID string, score, registeredAt int64) (int64, error) {
	ctx, cancel := s.maybeTimeout(ctx)
	defer cancel()

	start := time.Now()
	res, err := s.insertStmt.ExecContext(ctx, teamID, score, registeredAt)
	metrics.RecordStoreQueryDuration("append", float64(time.Since(start).Milliseconds()))
	if err != nil {
		metrics.RecordStoreError("append")
		return 0, fmt.Errorf("%w: %w", ErrAppend, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrAppend, err)
	}
	return id, nil
}

// ListAll scans the full table in id order. The whole result set is
// materialized; callers accept the O(N) read in exchange for a single query.
func (s *SQLiteStore) ListAll(ctx context.Context) ([]model.ScoreEvent, error) {
	ctx, cancel := s.maybeTimeout(ctx)
	defer cancel()

	start := time.Now()
	rows, err := s.readDB.QueryContext(ctx,
		`SELECT id, team_id, score, registered_at FROM scores ORDER BY id ASC`)
	metrics.RecordStoreQueryDuration("list_all", float64(time.Since(start).Milliseconds()))
	if err != nil {
		metrics.RecordStoreError("list_all")
		return nil, fmt.Errorf("%w: %w", ErrScan, err)
	}
	defer rows.Close()

	var events []model.ScoreEvent
	for rows.Next() {
		var ev model.ScoreEvent
		if err := rows.Scan(&ev.ID, &ev.TeamID, &ev.Score, &ev.RegisteredAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScan, err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScan, err)
	}
	return events, nil
}

// BestByTeam computes the ranking rows in SQL. MAX(score) and
// MAX(registered_at) are independent aggregates; the reported timestamp for
// a team may not belong to the event that produced its best score.
func (s *SQLiteStore) BestByTeam(ctx context.Context) ([]model.TeamBest, error) {
	ctx, cancel := s.maybeTimeout(ctx)
	defer cancel()

	start := time.Now()
	rows, err := s.readDB.QueryContext(ctx, `
		SELECT team_id, MAX(score), MAX(registered_at)
		FROM scores
		GROUP BY team_id
		ORDER BY MAX(score) DESC, team_id ASC`)
	metrics.RecordStoreQueryDuration("best_by_team", float64(time.Since(start).Milliseconds()))
	if err != nil {
		metrics.RecordStoreError("best_by_team")
		return nil, fmt.Errorf("%w: %w", ErrScan, err)
	}
	defer rows.Close()

	var best []model.TeamBest
	for rows.Next() {
		var tb model.TeamBest
		if err := rows.Scan(&tb.TeamID, &tb.MaxScore, &tb.MaxRegistered); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScan, err)
		}
		best = append(best, tb)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScan, err)
	}
	return best, nil
}

// Count returns the total number of stored events.
func (s *SQLiteStore) Count(ctx context.Context) (int64, error) {
	ctx, cancel := s.maybeTimeout(ctx)
	defer cancel()

	var n int64
	if err := s.readDB.QueryRowContext(ctx, `SELECT COUNT(*) FROM scores`).Scan(&n); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrScan, err)
	}
	return n, nil
}

// TeamCount returns the number of distinct teams with at least one event.
func (s *SQLiteStore) TeamCount(ctx context.Context) (int64, error) {
	ctx, cancel := s.maybeTimeout(ctx)
	defer cancel()

	var n int64
	if err := s.readDB.QueryRowContext(ctx, `SELECT COUNT(DISTINCT team_id) FROM scores`).Scan(&n); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrScan, err)
	}
	return n, nil
}

// Close releases both database handles.
func (s *SQLiteStore) Close() error {
	if s.insertStmt != nil {
		_ = s.insertStmt.Close()
	}
	if s.readDB != nil {
		_ = s.readDB.Close()
	}
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			return fmt.Errorf("%w: %w", ErrClosed, err)
		}
	}
	return nil
}

// maybeTimeout derives a bounded context when a query timeout is configured.
func (s *SQLiteStore) maybeTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.queryTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.queryTimeout)
}
