// Package store persists the engine host's own bookkeeping — which
// dictionary artefact version is installed, and how far each fetched
// source has been read through — in a local SQLite database. spec.md
// names this "the local SQLite key-value store for user
// settings/migrations" as an out-of-scope external collaborator; this
// package is the minimal adapted form of it, grounded on the teacher's
// pkg/db (db.go's InitDB, store.go's DBExecutor interface and UPSERT
// idiom), repurposed from word/source vocabulary tracking to dictionary
// artefact and reading-progress bookkeeping.
package store

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// DBExecutor is satisfied by both *sql.DB and *sql.Tx, so store
// functions work uniformly inside or outside a transaction.
type DBExecutor interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

// Init runs the full migration batch against db and enables foreign key
// enforcement on the connection (pkg/db/db.go::InitDB).
func Init(db *sql.DB) error {
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return fmt.Errorf("store: enable foreign keys: %w", err)
	}
	if _, err := db.Exec(migrationsSQL); err != nil {
		return fmt.Errorf("store: run migrations: %w", err)
	}
	return nil
}
