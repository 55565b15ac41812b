package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/custkeeper/internal/customer"
	"github.com/dmitrijs2005/custkeeper/internal/logging"
	"github.com/dmitrijs2005/custkeeper/internal/server/repositories/customers"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(context.Context, string, ...any) {}
func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}
func (l nopLogger) With(...any) logging.Logger          { return l }

var (
	damyant = customer.Record{FirstName: "Damyant", LastName: "Jain", Email: "dj@example.com", Discount: 10, Removable: true}
	sukriti = customer.Record{FirstName: "Sukriti", LastName: "Gantayet", Email: "sg@example.com", Discount: 15, Removable: false}
	kiran   = customer.Record{FirstName: "Kiran", LastName: "Rao", Email: "kiran@example.com", Discount: 0, Removable: true}
)

// seeded returns a memory store holding recs in insertion order and the
// stored copies with their assigned ids.
func seeded(t *testing.T, recs ...customer.Record) (*customers.MemoryRepository, []customer.Record) {
	t.Helper()
	repo := customers.NewMemoryRepository()
	out := make([]customer.Record, 0, len(recs))
	for _, r := range recs {
		created, err := repo.Insert(context.Background(), r)
		require.NoError(t, err)
		out = append(out, created)
	}
	return repo, out
}

func scanAll(t *testing.T, repo customers.Repository) []customer.Record {
	t.Helper()
	var out []customer.Record
	c := repo.Scan()
	for c.Next(context.Background()) {
		out = append(out, c.Record())
	}
	require.NoError(t, c.Err())
	return out
}

// pagedRepo serves Scan from a scripted page function and everything else
// from the embedded store.
type pagedRepo struct {
	customers.Repository
	page customers.PageFunc
	size int
}

func (r *pagedRepo) Scan() *customers.Cursor {
	return customers.NewCursor(r.page, r.size)
}
