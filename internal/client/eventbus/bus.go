package eventbus

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/dmitrijs2005/custkeeper/internal/logging"
	"github.com/google/uuid"
)

// Handler runs on the publisher's goroutine.
type Handler func(ctx context.Context, e Event)

// AsyncHandler may block; the bus decides whether the publisher waits for it.
type AsyncHandler func(ctx context.Context, e Event) error

type entry struct {
	id     string
	async  bool
	sync   Handler
	asyncH AsyncHandler
	active atomic.Bool
}

type Option func(*Bus)

// WithStrictOrder makes both publish paths walk the handlers strictly in
// registration order, awaiting each async handler in place on
// PublishAndAwait. Without it async handlers run before sync ones on
// PublishAndAwait and after them on Publish.
func WithStrictOrder() Option {
	return func(b *Bus) { b.strict = true }
}

type Bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]*entry
	strict   bool
	logger   logging.Logger
	wg       sync.WaitGroup
}

func New(l logging.Logger, opts ...Option) *Bus {
	b := &Bus{
		handlers: make(map[EventType][]*entry),
		logger:   l.With("module", "eventbus"),
	}
	for _, o := range opts {
		o(b)
	}
	return b
}

func (b *Bus) Register(t EventType, h Handler) *Subscription {
	return b.add(t, &entry{sync: h})
}

func (b *Bus) RegisterAsync(t EventType, h AsyncHandler) *Subscription {
	return b.add(t, &entry{async: true, asyncH: h})
}

func (b *Bus) add(t EventType, e *entry) *Subscription {
	e.id = uuid.NewString()
	e.active.Store(true)

	b.mu.Lock()
	b.handlers[t] = append(b.handlers[t], e)
	b.mu.Unlock()

	return &Subscription{bus: b, typ: t, entry: e}
}

func (b *Bus) remove(t EventType, e *entry) {
	e.active.Store(false)

	b.mu.Lock()
	defer b.mu.Unlock()

	list := b.handlers[t]
	for i, x := range list {
		if x == e {
			// copy so in-flight publishes keep their snapshot intact
			next := make([]*entry, 0, len(list)-1)
			next = append(next, list[:i]...)
			b.handlers[t] = append(next, list[i+1:]...)
			return
		}
	}
}

func (b *Bus) snapshot(t EventType) []*entry {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.handlers[t]
}

// Publish runs the sync handlers of e.Type and starts the async ones without
// waiting for them. Handler failures and panics are logged and never reach
// the publisher or the other handlers.
func (b *Bus) Publish(ctx context.Context, e Event) {
	list := b.snapshot(e.Type)
	bg := context.WithoutCancel(ctx)

	if b.strict {
		for _, x := range list {
			if x.async {
				b.spawn(bg, x, e)
			} else {
				b.callSync(ctx, x, e)
			}
		}
		return
	}

	for _, x := range list {
		if !x.async {
			b.callSync(ctx, x, e)
		}
	}
	for _, x := range list {
		if x.async {
			b.spawn(bg, x, e)
		}
	}
}

// PublishAndAwait returns once every handler of e.Type has finished. Async
// handler errors are joined into the result; a failing handler does not stop
// the rest.
func (b *Bus) PublishAndAwait(ctx context.Context, e Event) error {
	list := b.snapshot(e.Type)
	var errs []error

	if b.strict {
		for _, x := range list {
			if x.async {
				errs = append(errs, b.callAsync(ctx, x, e))
			} else {
				b.callSync(ctx, x, e)
			}
		}
		return errors.Join(errs...)
	}

	for _, x := range list {
		if x.async {
			errs = append(errs, b.callAsync(ctx, x, e))
		}
	}
	for _, x := range list {
		if !x.async {
			b.callSync(ctx, x, e)
		}
	}
	return errors.Join(errs...)
}

// Wait blocks until every async handler started by Publish has returned.
func (b *Bus) Wait() {
	b.wg.Wait()
}

func (b *Bus) spawn(ctx context.Context, x *entry, e Event) {
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		if err := b.callAsync(ctx, x, e); err != nil {
			b.logger.Error(ctx, "Async handler failed", "event", e.Type.String(), "handler", x.id, "error", err)
		}
	}()
}

func (b *Bus) callSync(ctx context.Context, x *entry, e Event) {
	if !x.active.Load() {
		return
	}
	ev, err := e.clone()
	if err != nil {
		b.logger.Error(ctx, "Event dropped", "event", e.Type.String(), "handler", x.id, "error", err)
		return
	}

	defer func() {
		if r := recover(); r != nil {
			b.logger.Error(ctx, "Handler panicked", "event", e.Type.String(), "handler", x.id, "panic", r)
		}
	}()
	x.sync(ctx, ev)
}

func (b *Bus) callAsync(ctx context.Context, x *entry, e Event) (err error) {
	if !x.active.Load() {
		return nil
	}
	ev, err := e.clone()
	if err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler %s panicked: %v", x.id, r)
		}
	}()
	return x.asyncH(ctx, ev)
}
