package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/custkeeper/internal/dbx"
	"github.com/dmitrijs2005/custkeeper/internal/server/migrations"
	"github.com/dmitrijs2005/custkeeper/internal/server/repositories/customers"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager serves PostgreSQL through the pgx stdlib driver.
type PostgresRepositoryManager struct{}

func (m *PostgresRepositoryManager) DriverName() string {
	return "pgx"
}

// Customers returns a customers.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Customers(db dbx.DBTX) customers.Repository {
	return customers.NewPostgresRepository(db)
}

// RunMigrations applies the embedded postgres migrations.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, migrations.PostgresDir)
}
