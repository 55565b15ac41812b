package services

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/custkeeper/internal/common"
	"github.com/dmitrijs2005/custkeeper/internal/customer"
	"github.com/dmitrijs2005/custkeeper/internal/logging"
	"github.com/dmitrijs2005/custkeeper/internal/server/repositories/customers"
)

// Gateway is the only write path to the record store. Every mutation runs
// under one exclusive lock, so at most one is in flight and a query started
// after a mutation returns sees all of it.
//
// Failures are *customer.MutationFailure values. The gateway never retries
// and never triggers a refresh on its own.
type Gateway struct {
	mu     sync.Mutex
	repo   customers.Repository
	logger logging.Logger
}

func NewGateway(repo customers.Repository, logger logging.Logger) *Gateway {
	return &Gateway{repo: repo, logger: logger.With("module", "gateway")}
}

// Add validates r and inserts it. The returned record carries the
// identifier assigned by the store.
func (g *Gateway) Add(ctx context.Context, r customer.Record) (customer.Record, error) {
	if err := r.Validate(); err != nil {
		return customer.Record{}, &customer.MutationFailure{Kind: customer.Invalid, Err: err}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	created, err := g.repo.Insert(ctx, r)
	if err != nil {
		g.logger.Error(ctx, "insert failed", "error", err)
		return customer.Record{}, &customer.MutationFailure{Kind: customer.StoreError, Err: err}
	}

	g.logger.Info(ctx, "customer added", "id", created.ID)
	return created, nil
}

// Update replaces the stored record with the same identifier.
func (g *Gateway) Update(ctx context.Context, r customer.Record) error {
	if err := r.Validate(); err != nil {
		return &customer.MutationFailure{Kind: customer.Invalid, ID: r.ID, Err: err}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, err := g.find(ctx, r.ID); err != nil {
		return err
	}

	if err := g.repo.Replace(ctx, r); err != nil {
		return g.storeFailure(ctx, r.ID, err)
	}

	g.logger.Info(ctx, "customer updated", "id", r.ID)
	return nil
}

// Remove deletes the record with the given identifier. Records whose
// Removable flag is false are left untouched and NotRemovable is returned.
func (g *Gateway) Remove(ctx context.Context, id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	existing, err := g.find(ctx, id)
	if err != nil {
		return err
	}
	if !existing.Removable {
		return &customer.MutationFailure{Kind: customer.NotRemovable, ID: id}
	}

	if err := g.repo.Delete(ctx, id); err != nil {
		return g.storeFailure(ctx, id, err)
	}

	g.logger.Info(ctx, "customer removed", "id", id)
	return nil
}

// find must be called with mu held.
func (g *Gateway) find(ctx context.Context, id string) (customer.Record, error) {
	if id == "" {
		return customer.Record{}, &customer.MutationFailure{Kind: customer.NotFound}
	}
	rec, err := g.repo.FindByID(ctx, id)
	if err != nil {
		return customer.Record{}, g.storeFailure(ctx, id, err)
	}
	return rec, nil
}

func (g *Gateway) storeFailure(ctx context.Context, id string, err error) error {
	if errors.Is(err, common.ErrorNotFound) {
		return &customer.MutationFailure{Kind: customer.NotFound, ID: id}
	}
	g.logger.Error(ctx, "store write failed", "id", id, "error", err)
	return &customer.MutationFailure{Kind: customer.StoreError, ID: id, Err: err}
}
