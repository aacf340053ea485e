// Package sqlite implements the repository interfaces on top of SQLite.
//
// The storage engine is modernc.org/sqlite — a pure Go translation of the
// SQLite C code, so the binary builds without CGo and runs anywhere Go does.
// The whole database is a single file (or ":memory:" in tests).
//
// Every repository method runs a single statement through the database/sql
// pool in auto-commit mode: one operation, one transaction. No transaction
// is ever shared across calls, so a constraint violation on one insert can
// never poison another request's work.
package sqlite

import (
	"database/sql"
	"fmt"

	// Blank import registers the "sqlite" driver with database/sql.
	_ "modernc.org/sqlite"
)

// DB wraps the database/sql pool and implements the repository interfaces.
type DB struct {
	conn *sql.DB
}

// New opens the database at dbPath and idempotently creates the schema.
// Safe to call on every process start — existing tables are left untouched.
func New(dbPath string) (*DB, error) {
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("sqlite: opening database: %w", err)
	}

	// sql.Open only configures the pool; Ping forces a real connection so a
	// bad path or permission problem surfaces here, not on the first query.
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: pinging database: %w", err)
	}

	// WAL lets concurrent reads proceed while a write is in flight.
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: setting WAL mode: %w", err)
	}

	if _, err := conn.Exec("PRAGMA foreign_keys=ON"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: enabling foreign keys: %w", err)
	}

	db := &DB{conn: conn}

	if err := db.initialize(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: creating schema: %w", err)
	}

	return db, nil
}

// Close closes the connection pool. Callers should defer this right after New.
func (db *DB) Close() error {
	return db.conn.Close()
}

// initialize creates the three tables if they do not exist yet. There is no
// migration or schema-version mechanism — the schema is fixed.
func (db *DB) initialize() error {
	_, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS accounts (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			email         TEXT NOT NULL UNIQUE,
			username      TEXT NOT NULL,
			password_hash TEXT NOT NULL,
			is_admin      INTEGER NOT NULL DEFAULT 0,
			created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
	`)
	if err != nil {
		return fmt.Errorf("creating accounts table: %w", err)
	}

	_, err = db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS institutions (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			name      TEXT NOT NULL,
			category  TEXT NOT NULL, -- University, Faculty, Institute
			latitude  REAL,
			longitude REAL,
			details   TEXT,
			website   TEXT,
			ranking   TEXT,
			courses   TEXT
		);
	`)
	if err != nil {
		return fmt.Errorf("creating institutions table: %w", err)
	}

	_, err = db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS login_events (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			account_id INTEGER REFERENCES accounts(id),
			timestamp  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			ip_address TEXT
		);
		CREATE INDEX IF NOT EXISTS idx_login_events_timestamp ON login_events(timestamp);
	`)
	if err != nil {
		return fmt.Errorf("creating login_events table: %w", err)
	}

	return nil
}
