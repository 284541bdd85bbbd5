// filepath: internal/store/store.go
// Package store is the canonical holder of all business records: clients,
// shoot sessions, photos and portfolio albums. Every mutation runs in a
// single transaction, validates referenced parents before writing, and
// maintains the derived counters (session photo counts, album counts)
// itself; callers never supply them.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/patrickmn/go-cache"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // SQLite driver
	"lumina/internal/db/migrations"
	"lumina/internal/logging"
)

// Standard errors returned by the store.
var (
	// ErrNotFound is returned when an operation references a nonexistent id.
	ErrNotFound = errors.New("not found")
	// ErrInvalidReference is returned when an operation references a
	// nonexistent parent id (client, session or album).
	ErrInvalidReference = errors.New("invalid reference")
)

// Store holds the database handle and its supporting pieces. The default
// DSN is ":memory:", which keeps all state process-local; a file DSN is
// the seam for a future persistence layer.
type Store struct {
	DB      *sql.DB
	Builder squirrel.StatementBuilderType // SQL Query Builder
	Cache   *cache.Cache
	Gen     Generator
}

// Open connects to the database behind dsn and prepares the store. The
// caller owns the returned store and must Close it.
func Open(dsn string, gen Generator) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// An in-memory database exists per connection; restrict the pool to a
	// single connection so every query sees the same data.
	if dsn == ":memory:" || strings.Contains(dsn, "mode=memory") {
		db.SetMaxOpenConns(1)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return &Store{
		DB:      db,
		Builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
		Cache:   cache.New(5*time.Minute, 10*time.Minute),
		Gen:     gen,
	}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.DB.Close()
}

// Migrate brings the schema to the most recent version using the
// embedded goose migrations. For the in-memory DSN this runs on every
// startup, which is what bootstraps the empty store.
func (s *Store) Migrate() error {
	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(logging.Log)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}
	// Migrations are embedded at the root of the FS.
	if err := goose.Up(s.DB, "."); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}
