package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"smart-task-manager/internal/task/repository"
	pkgLog "smart-task-manager/pkg/log"
)

const schema = `
CREATE TABLE IF NOT EXISTS tasks (
	task_id INTEGER PRIMARY KEY AUTOINCREMENT,
	task_name TEXT NOT NULL,
	category TEXT NOT NULL,
	priority TEXT NOT NULL,
	due_date TEXT NOT NULL,
	status TEXT NOT NULL,
	tags TEXT NOT NULL DEFAULT '',
	created_at TEXT NOT NULL,
	estimated_duration INTEGER NOT NULL DEFAULT 0,
	ai_suggestions TEXT NOT NULL DEFAULT '',
	context_keywords TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_tasks_status ON tasks (status);
CREATE INDEX IF NOT EXISTS idx_tasks_due_date ON tasks (due_date);
`

// NewDB opens (and migrates) the sqlite database at path.
// The pool is capped at a single connection; sqlite serializes writers anyway.
func NewDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	return db, nil
}

type implRepository struct {
	l  pkgLog.Logger
	db *sql.DB
}

var _ repository.Repository = &implRepository{}

// New returns a sqlite-backed task repository.
func New(l pkgLog.Logger, db *sql.DB) repository.Repository {
	return &implRepository{
		l:  l,
		db: db,
	}
}
