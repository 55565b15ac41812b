package client

import (
	"context"
	"iter"

	"github.com/dmitrijs2005/custkeeper/internal/customer"
)

type Client interface {
	Close() error
	ListCustomers(ctx context.Context, spec customer.FilterSpec) iter.Seq2[customer.Record, error]
	Add(ctx context.Context, r customer.Record) (customer.Record, error)
	Update(ctx context.Context, r customer.Record) error
	Remove(ctx context.Context, id string) error
}
