package customers

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/custkeeper/internal/client/eventbus"
	"github.com/dmitrijs2005/custkeeper/internal/customer"
	"github.com/dmitrijs2005/custkeeper/internal/logging"
)

// Mutations is the server's write side, normally client.GRPCClient.
type Mutations interface {
	Add(ctx context.Context, r customer.Record) (customer.Record, error)
	Update(ctx context.Context, r customer.Record) error
	Remove(ctx context.Context, id string) error
}

// Snapshotter gives access to the displayed list.
type Snapshotter interface {
	Snapshot() Snapshot
}

// ListController carries out save and remove requests from the bus one at a
// time and announces each success with MutationCompleted.
type ListController struct {
	api    Mutations
	bus    *eventbus.Bus
	scope  *eventbus.Scope
	view   Snapshotter
	logger logging.Logger

	mu sync.Mutex
}

func NewListController(api Mutations, bus *eventbus.Bus, view Snapshotter, logger logging.Logger) *ListController {
	c := &ListController{
		api:    api,
		bus:    bus,
		scope:  eventbus.NewScope(bus),
		view:   view,
		logger: logger.With("module", "list_controller"),
	}
	c.scope.RegisterAsync(eventbus.SaveRequested, c.save)
	c.scope.RegisterAsync(eventbus.RemoveRequested, c.remove)
	return c
}

// Close detaches the controller from the bus.
func (c *ListController) Close() {
	c.scope.Close()
}

func (c *ListController) save(ctx context.Context, e eventbus.Event) error {
	if e.Record == nil {
		return errors.New("save requested without a record")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	rec := *e.Record
	var err error
	if rec.Persisted() {
		err = c.api.Update(ctx, rec)
	} else {
		// new records are always removable
		rec.Removable = true
		rec, err = c.api.Add(ctx, rec)
	}
	if err != nil {
		c.logger.Warn(ctx, "Save rejected", "id", e.Record.ID, "error", err)
		return err
	}

	c.logger.Debug(ctx, "Saved", "id", rec.ID)
	c.bus.Publish(ctx, eventbus.Event{Type: eventbus.MutationCompleted, Record: &rec})
	return nil
}

func (c *ListController) remove(ctx context.Context, e eventbus.Event) error {
	if e.Record == nil {
		return errors.New("remove requested without a record")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.api.Remove(ctx, e.Record.ID); err != nil {
		c.logger.Warn(ctx, "Remove rejected", "id", e.Record.ID, "error", err)
		return err
	}

	c.logger.Debug(ctx, "Removed", "id", e.Record.ID)
	c.bus.Publish(ctx, eventbus.Event{Type: eventbus.MutationCompleted, Record: e.Record})
	return nil
}

// At returns the i-th displayed record, counting from 1.
func (c *ListController) At(i int) (customer.Record, error) {
	recs := c.view.Snapshot().Records
	if i < 1 || i > len(recs) {
		return customer.Record{}, fmt.Errorf("no customer #%d, the list has %d", i, len(recs))
	}
	return recs[i-1], nil
}

// Select sends the i-th displayed record to the edit surface.
func (c *ListController) Select(ctx context.Context, i int) error {
	rec, err := c.At(i)
	if err != nil {
		return err
	}
	c.bus.Publish(ctx, eventbus.Event{Type: eventbus.SelectionChanged, Record: &rec})
	return nil
}

// Remove asks for the i-th displayed record to be removed and waits for
// the outcome.
func (c *ListController) Remove(ctx context.Context, i int) error {
	rec, err := c.At(i)
	if err != nil {
		return err
	}
	return c.bus.PublishAndAwait(ctx, eventbus.Event{Type: eventbus.RemoveRequested, Record: &rec})
}
