package storage

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

// Open opens (creating if needed) the sqlite database at path and applies
// the schema. The returned handle is safe for concurrent use.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func migrate(db *sql.DB) error {
	stmts := []string{
		`PRAGMA journal_mode=WAL;`,
		`PRAGMA foreign_keys=ON;`,
		`CREATE TABLE IF NOT EXISTS tasks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			due_at TEXT,
			created_at TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'pending',
			source TEXT,
			reminded_at TEXT,
			notes TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS papers (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			source TEXT NOT NULL,
			source_id TEXT NOT NULL,
			title TEXT NOT NULL,
			abstract TEXT,
			url TEXT,
			authors TEXT,
			published_at TEXT,
			fetched_at TEXT NOT NULL,
			relevance_score REAL,
			summary TEXT,
			tags TEXT,
			status TEXT NOT NULL DEFAULT 'new',
			UNIQUE(source, source_id)
		);`,
		`CREATE TABLE IF NOT EXISTS reads (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			paper_id INTEGER NOT NULL,
			read_at TEXT NOT NULL,
			FOREIGN KEY(paper_id) REFERENCES papers(id) ON DELETE CASCADE
		);`,
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS goals (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			year INTEGER NOT NULL,
			status TEXT NOT NULL DEFAULT 'active',
			progress INTEGER NOT NULL DEFAULT 0,
			created_at TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS pending_tasks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			chat_id TEXT NOT NULL,
			title TEXT NOT NULL,
			created_at TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_status_due ON tasks(status, due_at);`,
		`CREATE INDEX IF NOT EXISTS idx_papers_status ON papers(status);`,
		`CREATE INDEX IF NOT EXISTS idx_pending_tasks_chat ON pending_tasks(chat_id);`,
		`CREATE INDEX IF NOT EXISTS idx_reads_paper ON reads(paper_id);`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
