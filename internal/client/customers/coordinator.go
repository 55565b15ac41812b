// Package customers holds the client-side view logic: the coordinator that
// keeps the displayed list in step with the filter, the edit model and the
// list controller that turns bus requests into server calls.
package customers

import (
	"context"
	"fmt"
	"iter"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/dmitrijs2005/custkeeper/internal/client/eventbus"
	"github.com/dmitrijs2005/custkeeper/internal/customer"
	"github.com/dmitrijs2005/custkeeper/internal/logging"
)

// Lister opens a filtered record stream, normally client.GRPCClient.
type Lister interface {
	ListCustomers(ctx context.Context, spec customer.FilterSpec) iter.Seq2[customer.Record, error]
}

type State int

const (
	Idle State = iota
	Streaming
	Cancelling
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Streaming:
		return "streaming"
	case Cancelling:
		return "cancelling"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Snapshot is what the presentation layer renders. Records is a private copy.
type Snapshot struct {
	Records    []customer.Record
	Filter     customer.FilterSpec
	State      State
	Generation uint64
	// Err is set when the last stream failed; Records then holds what
	// arrived before the failure.
	Err error
}

// token identifies one stream generation. Exactly one is current.
type token struct {
	gen    uint64
	cancel context.CancelFunc
}

type (
	reloadMsg struct {
		filter *customer.FilterSpec
	}
	recordMsg struct {
		gen uint64
		rec customer.Record
	}
	endMsg struct {
		gen uint64
		err error
	}
	subscribeMsg struct {
		id uint64
		fn func(Snapshot)
	}
	unsubscribeMsg struct {
		id uint64
	}
)

const inboxSize = 64

// Coordinator reloads the displayed list whenever the filter changes or a
// mutation completes, cancelling the stream it supersedes. All of its state
// belongs to the goroutine running Run; other goroutines only send it
// messages.
type Coordinator struct {
	lister Lister
	logger logging.Logger
	scope  *eventbus.Scope

	inbox chan any
	done  chan struct{}
	last  atomic.Pointer[Snapshot]
	subID atomic.Uint64

	// owned by Run
	state   State
	filter  customer.FilterSpec
	records []customer.Record
	err     error
	gen     uint64
	current *token
	subs    map[uint64]func(Snapshot)
	streams sync.WaitGroup
}

// NewCoordinator subscribes the coordinator to MutationCompleted on bus.
// Nothing is loaded until Run is called.
func NewCoordinator(l Lister, bus *eventbus.Bus, logger logging.Logger) *Coordinator {
	c := &Coordinator{
		lister: l,
		logger: logger.With("module", "coordinator"),
		scope:  eventbus.NewScope(bus),
		inbox:  make(chan any, inboxSize),
		done:   make(chan struct{}),
		subs:   make(map[uint64]func(Snapshot)),
	}
	c.last.Store(&Snapshot{})

	c.scope.Register(eventbus.MutationCompleted, func(context.Context, eventbus.Event) {
		c.Reload()
	})
	return c
}

// Run starts the first stream with the current filter and processes
// triggers until ctx is cancelled. It must be called once.
func (c *Coordinator) Run(ctx context.Context) error {
	defer close(c.done)
	defer c.scope.Close()
	defer func() {
		if c.current != nil {
			c.current.cancel()
		}
		c.streams.Wait()
	}()

	c.restart(ctx)

	for {
		select {
		case <-ctx.Done():
			return nil
		case m := <-c.inbox:
			c.handle(ctx, m)
		}
	}
}

// SetFilter replaces the filter and reloads.
func (c *Coordinator) SetFilter(spec customer.FilterSpec) {
	c.post(reloadMsg{filter: &spec})
}

// Reload restarts the stream with the current filter.
func (c *Coordinator) Reload() {
	c.post(reloadMsg{})
}

// Subscribe calls fn with the current snapshot and again after every change.
// fn runs on the coordinator goroutine and must not block. The returned func
// removes the subscription.
func (c *Coordinator) Subscribe(fn func(Snapshot)) func() {
	id := c.subID.Add(1)
	c.post(subscribeMsg{id: id, fn: fn})
	return func() { c.post(unsubscribeMsg{id: id}) }
}

// Snapshot returns the latest published snapshot.
func (c *Coordinator) Snapshot() Snapshot {
	return *c.last.Load()
}

func (c *Coordinator) post(m any) {
	select {
	case c.inbox <- m:
	case <-c.done:
	}
}

func (c *Coordinator) handle(ctx context.Context, m any) {
	switch m := m.(type) {
	case reloadMsg:
		if m.filter != nil {
			c.filter = *m.filter
		}
		c.restart(ctx)

	case recordMsg:
		if !c.isCurrent(m.gen) {
			c.logger.Debug(ctx, "Dropping stale record", "generation", m.gen, "current", c.gen)
			return
		}
		c.records = append(c.records, m.rec)
		c.notify()

	case endMsg:
		if !c.isCurrent(m.gen) {
			return
		}
		c.current.cancel()
		c.current = nil
		c.err = m.err
		c.state = Idle
		if m.err != nil {
			c.logger.Warn(ctx, "Stream failed", "generation", m.gen, "received", len(c.records), "error", m.err)
		} else {
			c.logger.Debug(ctx, "Stream done", "generation", m.gen, "received", len(c.records))
		}
		c.notify()

	case subscribeMsg:
		c.subs[m.id] = m.fn
		m.fn(c.snapshot())

	case unsubscribeMsg:
		delete(c.subs, m.id)
	}
}

func (c *Coordinator) isCurrent(gen uint64) bool {
	return c.current != nil && c.current.gen == gen
}

// restart cancels the current stream, if any, and opens a new one without
// waiting for the old one to wind down.
func (c *Coordinator) restart(ctx context.Context) {
	if c.current != nil {
		c.state = Cancelling
		c.notify()
		c.current.cancel()
		c.logger.Debug(ctx, "Stream superseded", "generation", c.current.gen)
	}

	c.gen++
	sctx, cancel := context.WithCancel(ctx)
	c.current = &token{gen: c.gen, cancel: cancel}
	c.records = nil
	c.err = nil
	c.state = Streaming

	c.streams.Add(1)
	go c.stream(sctx, c.gen, c.filter)

	c.notify()
}

func (c *Coordinator) stream(ctx context.Context, gen uint64, spec customer.FilterSpec) {
	defer c.streams.Done()

	send := func(m any) bool {
		select {
		case c.inbox <- m:
			return true
		case <-ctx.Done():
			return false
		case <-c.done:
			return false
		}
	}

	for rec, err := range c.lister.ListCustomers(ctx, spec) {
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			send(endMsg{gen: gen, err: err})
			return
		}
		if !send(recordMsg{gen: gen, rec: rec}) {
			return
		}
	}
	send(endMsg{gen: gen})
}

func (c *Coordinator) snapshot() Snapshot {
	return Snapshot{
		Records:    slices.Clone(c.records),
		Filter:     c.filter,
		State:      c.state,
		Generation: c.gen,
		Err:        c.err,
	}
}

func (c *Coordinator) notify() {
	s := c.snapshot()
	c.last.Store(&s)
	for _, fn := range c.subs {
		fn(s)
	}
}
