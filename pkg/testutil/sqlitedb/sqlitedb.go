// Package sqlitedb opens throwaway SQLite databases for store and service
// tests so they exercise real SQL without a container.
package sqlitedb

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/briclabs/evcoordinator-sub000/internal/platform/database"
	"github.com/briclabs/evcoordinator-sub000/internal/query"
)

// DSN returns a file DSN inside dir with ISO time formatting.
func DSN(dir string) string {
	return fmt.Sprintf("file:%s?_time_format=sqlite", filepath.Join(dir, "evc.db"))
}

// OpenEmpty opens a fresh database with no tables. It is closed when t ends.
func OpenEmpty(t testing.TB) *sql.DB {
	t.Helper()
	db, _, err := database.Open(context.Background(), "sqlite", DSN(t.TempDir()), database.Options{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// Open opens a fresh database with the full schema applied.
func Open(t testing.TB) *sql.DB {
	t.Helper()
	db := OpenEmpty(t)
	if err := database.Migrate(context.Background(), db, query.SQLite); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}
	return db
}
