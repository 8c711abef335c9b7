package db

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	_ "modernc.org/sqlite"
)

const (
	// DriverCgo is the mattn/go-sqlite3 driver name.
	DriverCgo = "sqlite3"
	// DriverPure is the modernc.org/sqlite driver name (no cgo required).
	DriverPure = "sqlite"
)

// schemaSQL creates the tables if they are missing. Existing tables are left untouched.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS words (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	word TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS kanji (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	kanji TEXT NOT NULL UNIQUE,
	meaning TEXT,
	rtk TEXT
);
`

// Open opens (or creates) the SQLite store at path using the named driver.
// An empty driver selects DefaultDriver.
func Open(driver, path string) (*sql.DB, error) {
	switch driver {
	case "":
		driver = DefaultDriver
	case DriverCgo, DriverPure:
	default:
		return nil, fmt.Errorf("unsupported sqlite driver %q", driver)
	}
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("database path must be non-empty")
	}

	conn, err := sql.Open(driver, path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	// Sole writer; one connection also keeps :memory: stores shared.
	conn.SetMaxOpenConns(1)
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return conn, nil
}

// InitDB ensures the words and kanji tables exist.
func InitDB(db *sql.DB) error {
	stmts := strings.Split(schemaSQL, ";")
	for _, s := range stmts {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, err := db.Exec(s); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}
	return nil
}
