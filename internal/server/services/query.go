// Package services holds the server-side core: the streaming query engine
// that filters the record store lazily and the mutation gateway that
// serializes every write.
package services

import (
	"context"
	"fmt"
	"iter"

	"github.com/dmitrijs2005/custkeeper/internal/customer"
	"github.com/dmitrijs2005/custkeeper/internal/logging"
	"github.com/dmitrijs2005/custkeeper/internal/server/repositories/customers"
)

// QueryFailure reports a store read error that ended a stream. Records
// yielded before it remain valid.
type QueryFailure struct {
	Cause error
}

func (e *QueryFailure) Error() string {
	return fmt.Sprintf("query failed: %v", e.Cause)
}

func (e *QueryFailure) Unwrap() error {
	return e.Cause
}

// QueryEngine produces filtered record streams. Reads take no lock, so a
// stream may or may not observe a mutation committed while it runs.
type QueryEngine struct {
	repo   customers.Repository
	logger logging.Logger
}

func NewQueryEngine(repo customers.Repository, logger logging.Logger) *QueryEngine {
	return &QueryEngine{repo: repo, logger: logger.With("module", "query")}
}

// Stream returns a single-pass sequence of the records matching spec, in
// store scan order. Records are read a page at a time and filtered as they
// arrive.
//
// ctx is checked before every store read and before every emission. A
// cancelled ctx ends the sequence without an error. A store failure is
// yielded once as a *QueryFailure and ends the sequence.
func (q *QueryEngine) Stream(ctx context.Context, spec customer.FilterSpec) iter.Seq2[customer.Record, error] {
	spec = spec.Normalized()

	return func(yield func(customer.Record, error) bool) {
		cur := q.repo.Scan()

		for ctx.Err() == nil && cur.Next(ctx) {
			rec := cur.Record()
			if !customer.Matches(spec.Mode, spec.Text, rec) {
				continue
			}
			if ctx.Err() != nil {
				return
			}
			if !yield(rec, nil) {
				return
			}
		}

		err := cur.Err()
		if err == nil || ctx.Err() != nil {
			return
		}

		q.logger.Error(ctx, "store scan failed", "mode", spec.Mode.String(), "error", err)
		yield(customer.Record{}, &QueryFailure{Cause: err})
	}
}
