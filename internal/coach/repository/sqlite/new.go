package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"financial-coach/internal/coach/repository"
	"financial-coach/pkg/log"
)

type implRepository struct {
	db    *sql.DB
	l     log.Logger
	now   func() time.Time
	newID func() string
}

// New opens (creating if needed) the SQLite database at path and applies the schema.
func New(ctx context.Context, path string, l log.Logger) (repository.Repository, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	dsn := path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// A single writer avoids SQLITE_BUSY between concurrent turns.
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	r := &implRepository{
		db:    db,
		l:     l,
		now:   time.Now,
		newID: func() string { return uuid.NewString() },
	}
	if err := r.initSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return r, nil
}

func (r *implRepository) initSchema(ctx context.Context) error {
	const query = `
	CREATE TABLE IF NOT EXISTS coach_turns (
		id         TEXT PRIMARY KEY,
		seq        INTEGER NOT NULL,
		user_id    TEXT NOT NULL,
		sender     TEXT NOT NULL,
		text       TEXT NOT NULL,
		is_error   INTEGER NOT NULL DEFAULT 0,
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_coach_turns_user_seq ON coach_turns(user_id, seq);

	CREATE TABLE IF NOT EXISTS coach_assessments (
		id              TEXT PRIMARY KEY,
		seq             INTEGER NOT NULL,
		user_id         TEXT NOT NULL,
		user_name       TEXT NOT NULL,
		score           REAL NOT NULL,
		max_score       REAL NOT NULL,
		category_scores TEXT NOT NULL,
		result_title    TEXT NOT NULL,
		advice_list     TEXT NOT NULL,
		created_at      INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_coach_assessments_user_seq ON coach_assessments(user_id, seq);
	`
	_, err := r.db.ExecContext(ctx, query)
	return err
}

// Ping verifies database connectivity.
func (r *implRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *implRepository) Close() error {
	return r.db.Close()
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("coach/repository/sqlite.%s", method)
}
