package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/Susmita-Codes/Pravartak-AI/internal/logger"
)

var (
	ErrNotFound    = errors.New("not found")
	ErrEmailExists = errors.New("email already exists")
)

// sqlite extended result code for UNIQUE constraint violations.
const sqliteConstraintUnique = 2067

// Fixed-width so stored timestamps sort lexicographically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (or creates) the SQLite database at path and applies the schema.
// ":memory:" gives a private in-memory database.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("creating database directory: %w", err)
			}
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	// 단일 커넥션: "database is locked" 방지, :memory: DB 유지
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{"PRAGMA busy_timeout = 5000", "PRAGMA foreign_keys = ON"} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("%s: %w", pragma, err)
		}
	}

	s := &Store{db: db, now: time.Now}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	logger.L().Info("storage ready", zap.String("path", path))
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		"id" TEXT PRIMARY KEY,
		"email" TEXT NOT NULL UNIQUE,
		"name" TEXT NOT NULL DEFAULT '',
		"image_url" TEXT NOT NULL DEFAULT '',
		"password_hash" TEXT NOT NULL,
		"industry" TEXT NOT NULL DEFAULT '',
		"experience" INTEGER NOT NULL DEFAULT 0,
		"bio" TEXT NOT NULL DEFAULT '',
		"skills" TEXT NOT NULL DEFAULT '[]',
		"created_at" TEXT NOT NULL,
		"updated_at" TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS industry_insights (
		"id" TEXT PRIMARY KEY,
		"industry" TEXT NOT NULL UNIQUE,
		"salary_ranges" TEXT NOT NULL DEFAULT '[]',
		"growth_rate" REAL NOT NULL DEFAULT 0,
		"demand_level" TEXT NOT NULL DEFAULT '',
		"top_skills" TEXT NOT NULL DEFAULT '[]',
		"market_outlook" TEXT NOT NULL DEFAULT '',
		"key_trends" TEXT NOT NULL DEFAULT '[]',
		"recommended_skills" TEXT NOT NULL DEFAULT '[]',
		"last_updated" TEXT NOT NULL,
		"next_update" TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_insights_next_update ON industry_insights(next_update)`,
	`CREATE TABLE IF NOT EXISTS interview_records (
		"id" TEXT PRIMARY KEY,
		"user_id" TEXT NOT NULL,
		"session_id" TEXT NOT NULL,
		"job_role" TEXT NOT NULL,
		"metrics" TEXT NOT NULL,
		"analysis" TEXT NOT NULL,
		"audio_file" TEXT NOT NULL DEFAULT '',
		"created_at" TEXT NOT NULL,
		FOREIGN KEY(user_id) REFERENCES users(id) ON DELETE CASCADE
	)`,
	`CREATE INDEX IF NOT EXISTS idx_records_user_created ON interview_records(user_id, created_at)`,
	`CREATE TABLE IF NOT EXISTS answer_clips (
		"id" INTEGER PRIMARY KEY AUTOINCREMENT,
		"session_id" TEXT NOT NULL,
		"user_id" TEXT NOT NULL,
		"question_id" INTEGER NOT NULL,
		"file_path" TEXT NOT NULL,
		"created_at" TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_clips_session ON answer_clips(session_id, question_id)`,
	`CREATE INDEX IF NOT EXISTS idx_clips_owner ON answer_clips(session_id, user_id, question_id)`,
}

// migrate applies each statement once, tracked by schema_version.
func (s *Store) migrate() error {
	if _, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS schema_version (
		version INTEGER PRIMARY KEY,
		applied_at TEXT NOT NULL
	)`); err != nil {
		return fmt.Errorf("creating schema_version table: %w", err)
	}

	for i, stmt := range migrations {
		version := i + 1
		var exists int
		if err := s.db.QueryRow("SELECT COUNT(*) FROM schema_version WHERE version = ?", version).Scan(&exists); err != nil {
			return fmt.Errorf("checking migration %d: %w", version, err)
		}
		if exists > 0 {
			continue
		}

		tx, err := s.db.Begin()
		if err != nil {
			return fmt.Errorf("beginning migration %d: %w", version, err)
		}
		if _, err := tx.Exec(stmt); err != nil {
			tx.Rollback()
			return fmt.Errorf("applying migration %d: %w", version, err)
		}
		if _, err := tx.Exec("INSERT INTO schema_version (version, applied_at) VALUES (?, ?)", version, formatTime(time.Now())); err != nil {
			tx.Rollback()
			return fmt.Errorf("recording migration %d: %w", version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("committing migration %d: %w", version, err)
		}
	}
	return nil
}

// AppliedMigrations returns applied schema versions in ascending order.
func (s *Store) AppliedMigrations() ([]int, error) {
	rows, err := s.db.Query("SELECT version FROM schema_version ORDER BY version")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var versions []int
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		versions = append(versions, v)
	}
	return versions, rows.Err()
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
