package customers

import (
	"context"
	"iter"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/custkeeper/internal/client/eventbus"
	"github.com/dmitrijs2005/custkeeper/internal/customer"
	"github.com/dmitrijs2005/custkeeper/internal/logging"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(context.Context, string, ...any) {}
func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}
func (l nopLogger) With(...any) logging.Logger          { return l }

var (
	damyant = customer.Record{ID: "01", FirstName: "Damyant", LastName: "Jain", Email: "dj@example.com", Discount: 10, Removable: true}
	sukriti = customer.Record{ID: "02", FirstName: "Sukriti", LastName: "Gantayet", Email: "sg@example.com", Discount: 15}
	kiran   = customer.Record{ID: "03", FirstName: "Kiran", LastName: "Rao", Email: "kiran@example.com", Removable: true}
)

// fakeStream is one ListCustomers call driven by the test.
type fakeStream struct {
	spec    customer.FilterSpec
	ctx     context.Context
	recs    chan customer.Record
	fail    chan error
	stopped chan struct{}
}

// Finish ends the stream normally.
func (s *fakeStream) Finish() { close(s.recs) }

// scriptedLister hands every opened stream to the test through opened.
type scriptedLister struct {
	opened chan *fakeStream
	// leaky streams keep delivering after their context is cancelled.
	leaky bool
}

func newScriptedLister() *scriptedLister {
	return &scriptedLister{opened: make(chan *fakeStream, 16)}
}

func (l *scriptedLister) ListCustomers(ctx context.Context, spec customer.FilterSpec) iter.Seq2[customer.Record, error] {
	return func(yield func(customer.Record, error) bool) {
		s := &fakeStream{
			spec:    spec,
			ctx:     ctx,
			recs:    make(chan customer.Record),
			fail:    make(chan error, 1),
			stopped: make(chan struct{}),
		}
		defer close(s.stopped)
		l.opened <- s

		cancelled := ctx.Done()
		if l.leaky {
			cancelled = nil
		}
		for {
			select {
			case <-cancelled:
				return
			case r, ok := <-s.recs:
				if !ok || !yield(r, nil) {
					return
				}
			case err := <-s.fail:
				yield(customer.Record{}, err)
				return
			}
		}
	}
}

func (l *scriptedLister) next(t *testing.T) *fakeStream {
	t.Helper()
	select {
	case s := <-l.opened:
		return s
	case <-time.After(2 * time.Second):
		t.Fatal("no stream opened")
		return nil
	}
}

// staticLister answers every call with the records that match.
type staticLister struct {
	mu   sync.Mutex
	recs []customer.Record
}

func (l *staticLister) set(recs ...customer.Record) {
	l.mu.Lock()
	l.recs = recs
	l.mu.Unlock()
}

func (l *staticLister) ListCustomers(ctx context.Context, spec customer.FilterSpec) iter.Seq2[customer.Record, error] {
	l.mu.Lock()
	recs := append([]customer.Record(nil), l.recs...)
	l.mu.Unlock()

	return func(yield func(customer.Record, error) bool) {
		for _, r := range recs {
			if spec.Match(r) && !yield(r, nil) {
				return
			}
		}
	}
}

// runCoordinator starts c.Run and stops it when the test ends.
func runCoordinator(t *testing.T, c *Coordinator) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		_ = c.Run(ctx)
		close(done)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
}

func waitFor(t *testing.T, c *Coordinator, cond func(Snapshot) bool) Snapshot {
	t.Helper()
	require.Eventually(t, func() bool { return cond(c.Snapshot()) }, 2*time.Second, 5*time.Millisecond)
	return c.Snapshot()
}

func newBus() *eventbus.Bus {
	return eventbus.New(nopLogger{})
}
