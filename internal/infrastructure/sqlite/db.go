// Package sqlite provides the SQLite-backed persistence layer for
// generation history.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/edesto/edesto/internal/log"
)

// schema creates the generations table. Executed on every open; the
// IF NOT EXISTS guard makes it idempotent.
const schema = `
CREATE TABLE IF NOT EXISTS generations (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	guid TEXT NOT NULL UNIQUE,
	board_slug TEXT NOT NULL,
	fqbn TEXT NOT NULL,
	port TEXT NOT NULL,
	checksum TEXT NOT NULL,
	artifacts TEXT NOT NULL DEFAULT '[]',
	created_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_generations_created_at ON generations(created_at DESC);
`

// DB wraps the sql.DB connection for the history database.
type DB struct {
	conn *sql.DB
}

// NewDB opens (creating if necessary) the history database at the given
// path. Parent directories are created with 0700 permissions.
func NewDB(path string) (*DB, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := conn.Exec(schema); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("applying schema: %w", err)
	}

	log.Debug(log.CatDB, "opened history database", "path", path)
	return &DB{conn: conn}, nil
}

// Close closes the underlying connection.
func (d *DB) Close() error {
	return d.conn.Close()
}
