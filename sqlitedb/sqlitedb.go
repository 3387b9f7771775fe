package sqlitedb

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Open opens (or creates) the SQLite database at the given path and
// makes sure all tables exist. Services share the returned handle.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	// database/sql pools connections but :memory: databases are
	// per-connection, and sqlite writes lock the file anyway.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init sqlite schema: %w", err)
	}

	return db, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS users (
	uuid TEXT PRIMARY KEY,
	username TEXT NOT NULL UNIQUE,
	email TEXT NOT NULL UNIQUE,
	bcrypt_pwd TEXT NOT NULL,
	role TEXT NOT NULL DEFAULT 'candidate',
	company TEXT,
	created_at TIMESTAMP NOT NULL
);
CREATE TABLE IF NOT EXISTS templates (
	uuid TEXT PRIMARY KEY,
	created_by TEXT NOT NULL REFERENCES users(uuid),
	title TEXT NOT NULL,
	role TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	difficulty TEXT NOT NULL DEFAULT 'intermediate',
	duration_min INTEGER NOT NULL DEFAULT 30,
	topics TEXT NOT NULL DEFAULT '[]',
	is_active INTEGER NOT NULL DEFAULT 1,
	created_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP NOT NULL
);
CREATE TABLE IF NOT EXISTS interviews (
	uuid TEXT PRIMARY KEY,
	user_uuid TEXT NOT NULL REFERENCES users(uuid),
	template_uuid TEXT REFERENCES templates(uuid),
	role TEXT NOT NULL,
	mode TEXT NOT NULL,
	conversation_history TEXT NOT NULL DEFAULT '',
	final_report TEXT NOT NULL DEFAULT '',
	final_score REAL,
	duration_min INTEGER,
	completed INTEGER NOT NULL DEFAULT 0,
	suspended INTEGER NOT NULL DEFAULT 0,
	suspend_reason TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP NOT NULL
);
CREATE TABLE IF NOT EXISTS proctor_violations (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	interview_uuid TEXT NOT NULL REFERENCES interviews(uuid),
	kind TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	evidence TEXT NOT NULL DEFAULT '{}',
	critical INTEGER NOT NULL DEFAULT 0,
	created_at TIMESTAMP NOT NULL
);
CREATE TABLE IF NOT EXISTS proctor_snapshots (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	interview_uuid TEXT NOT NULL REFERENCES interviews(uuid),
	object_url TEXT NOT NULL,
	kind TEXT NOT NULL,
	reason TEXT NOT NULL DEFAULT '',
	thumbnail BLOB,
	created_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_interviews_user ON interviews(user_uuid);
CREATE INDEX IF NOT EXISTS idx_interviews_template ON interviews(template_uuid);
CREATE INDEX IF NOT EXISTS idx_violations_interview ON proctor_violations(interview_uuid);
`
