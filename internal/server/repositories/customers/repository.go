// Package customers is the record store: an ordered collection of customer
// records keyed by a store-assigned identifier. Three backends share one
// interface: an in-memory B-tree, SQLite and PostgreSQL.
package customers

import (
	"context"

	"github.com/dmitrijs2005/custkeeper/internal/customer"
	"github.com/oklog/ulid/v2"
)

// DefaultPageSize is the number of records a cursor reads per store round trip.
const DefaultPageSize = 32

// Repository is implemented by every record store backend.
//
// FindByID, Replace and Delete return common.ErrorNotFound for an unknown id.
// Other failures are wrapped store faults.
type Repository interface {
	// Scan opens a cursor over all records in id order. Identifiers are
	// ULIDs, so id order is creation order.
	Scan() *Cursor
	FindByID(ctx context.Context, id string) (customer.Record, error)
	// Insert assigns a fresh identifier and stores r. Any ID set on r is ignored.
	Insert(ctx context.Context, r customer.Record) (customer.Record, error)
	Replace(ctx context.Context, r customer.Record) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// newID is a seam for tests that need predictable identifiers.
var newID = func() string {
	return ulid.Make().String()
}
