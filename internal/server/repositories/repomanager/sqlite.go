package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/custkeeper/internal/dbx"
	"github.com/dmitrijs2005/custkeeper/internal/server/migrations"
	"github.com/dmitrijs2005/custkeeper/internal/server/repositories/customers"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// SQLiteRepositoryManager serves SQLite through the pure Go modernc driver.
type SQLiteRepositoryManager struct{}

func (m *SQLiteRepositoryManager) DriverName() string {
	return "sqlite"
}

func (m *SQLiteRepositoryManager) Customers(db dbx.DBTX) customers.Repository {
	return customers.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, migrations.SQLiteDir)
}
