// Package sqlite provides SQLite-based storage for the confindex index.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// DB represents a SQLite database connection.
type DB struct {
	db   *sql.DB
	path string
}

// NewDB creates a new DB instance with the given path.
// Use ":memory:" for an in-memory database.
func NewDB(path string) *DB {
	return &DB{path: path}
}

// Open opens the database connection and creates the schema if needed.
func (db *DB) Open() error {
	conn, err := sql.Open("sqlite3", db.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit to one connection.
	conn.SetMaxOpenConns(1)

	// Verify connection
	if err := conn.Ping(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Set busy timeout to wait 5 seconds before failing on lock contention.
	// This prevents immediate "database is locked" errors.
	if _, err := conn.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		conn.Close()
		return fmt.Errorf("failed to set busy timeout: %w", err)
	}

	// Enable WAL mode for file-based databases for better write performance.
	// WAL is ~7x faster for writes and allows concurrent reads during writes.
	// Trade-off: creates additional -wal and -shm files alongside the database.
	// Note: WAL mode is not supported for in-memory databases.
	if db.path != ":memory:" {
		if _, err := conn.Exec("PRAGMA journal_mode = WAL"); err != nil {
			conn.Close()
			return fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	// Enable foreign key constraints
	if _, err := conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
		conn.Close()
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	db.db = conn

	// Create schema
	if err := db.createSchema(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	if db.db != nil {
		return db.db.Close()
	}
	return nil
}

// QueryRowContext executes a query that returns a single row.
func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return db.db.QueryRowContext(ctx, query, args...)
}

// QueryContext executes a query that returns rows.
func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.db.QueryContext(ctx, query, args...)
}

// ExecContext executes a statement that doesn't return rows.
func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.db.ExecContext(ctx, query, args...)
}

// BeginTx starts a transaction.
func (db *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error) {
	return db.db.BeginTx(ctx, opts)
}

// Stats returns database statistics.
func (db *DB) Stats() sql.DBStats {
	return db.db.Stats()
}

const schema = `
	CREATE TABLE IF NOT EXISTS confessions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		file_name TEXT NOT NULL UNIQUE,
		title TEXT NOT NULL,
		country TEXT NOT NULL DEFAULT '',
		tradition TEXT NOT NULL DEFAULT '',
		year INTEGER NOT NULL DEFAULT 0,
		quiz INTEGER NOT NULL DEFAULT 0,
		content_hash TEXT NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS search_index (
		id INTEGER PRIMARY KEY,
		confession_id INTEGER NOT NULL REFERENCES confessions(id) ON DELETE CASCADE,
		file_name TEXT NOT NULL,
		title TEXT NOT NULL,
		contents TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS scripture_index (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		search_index_id INTEGER NOT NULL REFERENCES search_index(id) ON DELETE CASCADE,
		address TEXT NOT NULL,
		reference TEXT NOT NULL,
		book TEXT NOT NULL,
		chapter_number INTEGER NOT NULL,
		UNIQUE (search_index_id, book, chapter_number)
	);

	CREATE TABLE IF NOT EXISTS synonyms (
		position INTEGER PRIMARY KEY,
		alternate_word TEXT NOT NULL,
		preferred_word TEXT NOT NULL DEFAULT ''
	);

	CREATE INDEX IF NOT EXISTS idx_search_index_confession_id ON search_index(confession_id);
	CREATE INDEX IF NOT EXISTS idx_scripture_index_chapter ON scripture_index(book, chapter_number);
`

// dropSchema removes every table, children first.
const dropSchema = `
	DROP TABLE IF EXISTS scripture_index;
	DROP TABLE IF EXISTS search_index;
	DROP TABLE IF EXISTS confessions;
	DROP TABLE IF EXISTS synonyms;
`

// createSchema creates the database tables if they don't exist.
func (db *DB) createSchema() error {
	_, err := db.db.Exec(schema)
	return err
}
