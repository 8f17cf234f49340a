// Package db persists capture sessions and their GPS samples in sqlite and
// exports a stored session as a VBOX data file document.
package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

type DB struct {
	*sql.DB
}

// OpenDB opens the sqlite database at path without touching the schema.
// Use NewDB unless migrations are being driven explicitly.
func OpenDB(path string) (*DB, error) {
	dbh, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Sample inserts arrive continuously while exports read; WAL lets the
	// two proceed without lock errors.
	if _, err := dbh.Exec(`PRAGMA journal_mode = WAL; PRAGMA foreign_keys = ON;`); err != nil {
		dbh.Close()
		return nil, fmt.Errorf("set pragmas: %w", err)
	}

	return &DB{dbh}, nil
}

// NewDB opens the database and applies any pending schema migrations.
func NewDB(path string) (*DB, error) {
	dbh, err := OpenDB(path)
	if err != nil {
		return nil, err
	}
	if err := dbh.MigrateUp(); err != nil {
		dbh.Close()
		return nil, err
	}
	return dbh, nil
}
