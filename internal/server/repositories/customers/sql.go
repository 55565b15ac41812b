package customers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/custkeeper/internal/common"
	"github.com/dmitrijs2005/custkeeper/internal/customer"
	"github.com/dmitrijs2005/custkeeper/internal/dbx"
)

const (
	selectPage = `SELECT id, first_name, last_name, email, discount, can_be_removed
		 FROM customers
		 WHERE id > ?
		 ORDER BY id
		 LIMIT ?`

	selectByID = `SELECT id, first_name, last_name, email, discount, can_be_removed
		 FROM customers
		 WHERE id = ?`

	insertCustomer = `INSERT INTO customers (id, first_name, last_name, email, discount, can_be_removed)
		 VALUES (?, ?, ?, ?, ?, ?)`

	updateCustomer = `UPDATE customers
		 SET first_name = ?, last_name = ?, email = ?, discount = ?, can_be_removed = ?
		 WHERE id = ?`

	deleteCustomer = `DELETE FROM customers WHERE id = ?`

	countCustomers = `SELECT COUNT(*) FROM customers`
)

type statements struct {
	page, byID, insert, update, delete, count string
}

func rebindAll(d dbx.Dialect) statements {
	return statements{
		page:   dbx.Rebind(d, selectPage),
		byID:   dbx.Rebind(d, selectByID),
		insert: dbx.Rebind(d, insertCustomer),
		update: dbx.Rebind(d, updateCustomer),
		delete: dbx.Rebind(d, deleteCustomer),
		count:  dbx.Rebind(d, countCustomers),
	}
}

// SQLRepository stores records in a "customers" table. The same queries
// serve PostgreSQL and SQLite; only the placeholder syntax differs.
type SQLRepository struct {
	db       dbx.DBTX
	stmt     statements
	pageSize int
}

func NewPostgresRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{db: db, stmt: rebindAll(dbx.Postgres), pageSize: DefaultPageSize}
}

func NewSQLiteRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{db: db, stmt: rebindAll(dbx.SQLite), pageSize: DefaultPageSize}
}

func (r *SQLRepository) Scan() *Cursor {
	return NewCursor(r.page, r.pageSize)
}

func (r *SQLRepository) page(ctx context.Context, after string, limit int) ([]customer.Record, error) {
	rows, err := r.db.QueryContext(ctx, r.stmt.page, after, limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	out := make([]customer.Record, 0, limit)
	for rows.Next() {
		var rec customer.Record
		if err := rows.Scan(&rec.ID, &rec.FirstName, &rec.LastName, &rec.Email, &rec.Discount, &rec.Removable); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return out, nil
}

func (r *SQLRepository) FindByID(ctx context.Context, id string) (customer.Record, error) {
	var rec customer.Record
	err := r.db.QueryRowContext(ctx, r.stmt.byID, id).
		Scan(&rec.ID, &rec.FirstName, &rec.LastName, &rec.Email, &rec.Discount, &rec.Removable)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return customer.Record{}, common.ErrorNotFound
		}
		return customer.Record{}, fmt.Errorf("db error: %w", err)
	}

	return rec, nil
}

func (r *SQLRepository) Insert(ctx context.Context, rec customer.Record) (customer.Record, error) {
	rec.ID = newID()

	_, err := r.db.ExecContext(ctx, r.stmt.insert,
		rec.ID, rec.FirstName, rec.LastName, rec.Email, rec.Discount, rec.Removable)
	if err != nil {
		return customer.Record{}, fmt.Errorf("db error: %w", err)
	}

	return rec, nil
}

func (r *SQLRepository) Replace(ctx context.Context, rec customer.Record) error {
	res, err := r.db.ExecContext(ctx, r.stmt.update,
		rec.FirstName, rec.LastName, rec.Email, rec.Discount, rec.Removable, rec.ID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return expectOneRow(res)
}

func (r *SQLRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, r.stmt.delete, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return expectOneRow(res)
}

func (r *SQLRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, r.stmt.count).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func expectOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
