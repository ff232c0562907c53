// Package database opens the shared connection pool and bootstraps the
// schema for development and tests. Schema evolution in production is owned
// by external migration tooling.
package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	_ "modernc.org/sqlite"             // registers the "sqlite" database/sql driver

	"github.com/briclabs/evcoordinator-sub000/internal/query"
)

//go:embed schema/*.sql
var schemaFS embed.FS

// Options tunes the pool.
type Options struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Open connects to driver/dsn, verifies the connection, and returns the
// matching dialect. SQLite is limited to one connection so every caller sees
// the same database and writers never contend for the file lock.
func Open(ctx context.Context, driver, dsn string, opts Options) (*sql.DB, query.Dialect, error) {
	dialect, err := query.DialectFor(driver)
	if err != nil {
		return nil, nil, err
	}
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", driver, err)
	}

	if dialect == query.SQLite {
		db.SetMaxOpenConns(1)
	} else {
		if opts.MaxOpenConns > 0 {
			db.SetMaxOpenConns(opts.MaxOpenConns)
		}
		if opts.MaxIdleConns > 0 {
			db.SetMaxIdleConns(opts.MaxIdleConns)
		}
	}
	if opts.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(opts.ConnMaxLifetime)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("ping %s: %w", driver, err)
	}
	return db, dialect, nil
}

// Migrate creates every table of the closed entity set if missing.
func Migrate(ctx context.Context, db *sql.DB, dialect query.Dialect) error {
	raw, err := schemaFS.ReadFile("schema/" + dialect.Name() + ".sql")
	if err != nil {
		return fmt.Errorf("read schema: %w", err)
	}
	for _, stmt := range strings.Split(string(raw), ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
