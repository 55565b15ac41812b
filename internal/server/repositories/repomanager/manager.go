// Package repomanager picks the record store backend for a storage driver
// name, opening the database and applying its migrations with goose.
package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/custkeeper/internal/dbx"
	"github.com/dmitrijs2005/custkeeper/internal/server/repositories/customers"
	"github.com/pressly/goose/v3"
)

// Storage driver names accepted by New and Open.
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// RepositoryManager vends SQL-backed repositories and the schema migration hook.
type RepositoryManager interface {
	// DriverName is the database/sql driver to open.
	DriverName() string
	RunMigrations(context.Context, *sql.DB) error
	Customers(db dbx.DBTX) customers.Repository
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// sqlOpen is a seam for testing sql.Open.
var sqlOpen = sql.Open

// New returns the manager for a SQL storage driver.
func New(driver string) (RepositoryManager, error) {
	switch driver {
	case DriverPostgres:
		return &PostgresRepositoryManager{}, nil
	case DriverSQLite:
		return &SQLiteRepositoryManager{}, nil
	}
	return nil, fmt.Errorf("unsupported sql driver %q", driver)
}

func noopClose() error { return nil }

// Open returns a ready record store for the driver. SQL stores are opened
// with dsn, pinged and migrated; the returned close func releases them.
func Open(ctx context.Context, driver, dsn string) (customers.Repository, func() error, error) {
	if driver == DriverMemory {
		return customers.NewMemoryRepository(), noopClose, nil
	}

	m, err := New(driver)
	if err != nil {
		return nil, nil, err
	}

	db, err := sqlOpen(m.DriverName(), dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("db open error: %w", err)
	}
	if driver == DriverSQLite {
		// a single writer avoids SQLITE_BUSY and keeps ":memory:" databases alive
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("db ping error: %w", err)
	}

	if err := m.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("migration error: %w", err)
	}

	return m.Customers(db), db.Close, nil
}
