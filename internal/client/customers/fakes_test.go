package customers

import (
	"context"
	"fmt"
	"iter"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dmitrijs2005/custkeeper/internal/customer"
)

// fakeServer is an in-process stand-in for the customer service, serving
// both the list stream and the mutations.
type fakeServer struct {
	mu     sync.Mutex
	recs   []customer.Record
	nextID int

	failNext error
	delay    time.Duration

	inFlight    atomic.Int32
	maxInFlight atomic.Int32
	calls       atomic.Int32
}

func (f *fakeServer) enter() func() {
	f.calls.Add(1)
	n := f.inFlight.Add(1)
	for {
		m := f.maxInFlight.Load()
		if n <= m || f.maxInFlight.CompareAndSwap(m, n) {
			break
		}
	}
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	return func() { f.inFlight.Add(-1) }
}

func (f *fakeServer) takeFailure() error {
	err := f.failNext
	f.failNext = nil
	return err
}

func (f *fakeServer) ListCustomers(ctx context.Context, spec customer.FilterSpec) iter.Seq2[customer.Record, error] {
	f.mu.Lock()
	recs := append([]customer.Record(nil), f.recs...)
	f.mu.Unlock()

	return func(yield func(customer.Record, error) bool) {
		for _, r := range recs {
			if ctx.Err() != nil {
				return
			}
			if spec.Match(r) && !yield(r, nil) {
				return
			}
		}
	}
}

func (f *fakeServer) Add(ctx context.Context, r customer.Record) (customer.Record, error) {
	defer f.enter()()
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.takeFailure(); err != nil {
		return customer.Record{}, err
	}
	f.nextID++
	r.ID = fmt.Sprintf("id-%02d", f.nextID)
	f.recs = append(f.recs, r)
	return r, nil
}

func (f *fakeServer) Update(ctx context.Context, r customer.Record) error {
	defer f.enter()()
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.takeFailure(); err != nil {
		return err
	}
	for i := range f.recs {
		if f.recs[i].ID == r.ID {
			f.recs[i] = r
			return nil
		}
	}
	return &customer.MutationFailure{Kind: customer.NotFound, ID: r.ID}
}

func (f *fakeServer) Remove(ctx context.Context, id string) error {
	defer f.enter()()
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.takeFailure(); err != nil {
		return err
	}
	for i, r := range f.recs {
		if r.ID != id {
			continue
		}
		if !r.Removable {
			return &customer.MutationFailure{Kind: customer.NotRemovable, ID: id}
		}
		f.recs = append(f.recs[:i], f.recs[i+1:]...)
		return nil
	}
	return &customer.MutationFailure{Kind: customer.NotFound, ID: id}
}

type fixedView struct{ snap Snapshot }

func (v fixedView) Snapshot() Snapshot { return v.snap }
