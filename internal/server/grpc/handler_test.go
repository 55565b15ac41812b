package grpc

import (
	"context"
	"errors"
	"iter"
	"testing"

	"github.com/dmitrijs2005/custkeeper/internal/customer"
	pb "github.com/dmitrijs2005/custkeeper/internal/proto"
	"github.com/dmitrijs2005/custkeeper/internal/server/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// scriptedStreamer yields recs and then, when set, err.
type scriptedStreamer struct {
	recs []customer.Record
	err  error
	seen customer.FilterSpec
}

func (s *scriptedStreamer) Stream(ctx context.Context, spec customer.FilterSpec) iter.Seq2[customer.Record, error] {
	s.seen = spec
	return func(yield func(customer.Record, error) bool) {
		for _, r := range s.recs {
			if !yield(r, nil) {
				return
			}
		}
		if s.err != nil {
			yield(customer.Record{}, s.err)
		}
	}
}

type fakeMutator struct {
	Mutator
	added   customer.Record
	err     error
	removed string
}

func (f *fakeMutator) Add(ctx context.Context, r customer.Record) (customer.Record, error) {
	f.added = r
	if f.err != nil {
		return customer.Record{}, f.err
	}
	r.ID = "new-id"
	return r, nil
}

func (f *fakeMutator) Remove(ctx context.Context, id string) error {
	f.removed = id
	return f.err
}

func TestListCustomers_QueryFailureAfterPartialResults(t *testing.T) {
	q := &scriptedStreamer{
		recs: []customer.Record{{ID: "1", FirstName: "a"}, {ID: "2", FirstName: "b"}},
		err:  &services.QueryFailure{Cause: errors.New("disk gone")},
	}
	c := startServer(t, q, &fakeMutator{})

	got, err := list(t, c, customer.FilterSpec{Mode: customer.FilterEmail, Text: "x@"})

	assert.Len(t, got, 2)
	require.Error(t, err)
	assert.Equal(t, codes.Internal, status.Code(err))
	assert.Contains(t, status.Convert(err).Message(), "disk gone")
	assert.Equal(t, customer.FilterSpec{Mode: customer.FilterEmail, Text: "x@"}, q.seen)
}

func TestAddCustomer_ClearsIDAndReturnsCreated(t *testing.T) {
	m := &fakeMutator{}
	s := NewGRPCServer("", 0, nopLogger{}, &scriptedStreamer{}, m)

	resp, err := s.AddCustomer(context.Background(), &pb.Customer{Id: "client", FirstName: "a"})
	require.NoError(t, err)
	assert.Equal(t, "", m.added.ID)
	assert.Equal(t, pb.ResponseStatus_SUCCESS, resp.GetStatus())
	assert.Equal(t, "new-id", resp.GetCustomer().GetId())
}

func TestDeleteCustomer_StoreErrorOutcome(t *testing.T) {
	m := &fakeMutator{err: &customer.MutationFailure{Kind: customer.StoreError, ID: "7", Err: errors.New("locked")}}
	s := NewGRPCServer("", 0, nopLogger{}, &scriptedStreamer{}, m)

	resp, err := s.DeleteCustomer(context.Background(), &pb.CustomerId{Id: "7"})
	require.NoError(t, err)
	assert.Equal(t, "7", m.removed)
	assert.Equal(t, pb.ResponseStatus_ERROR, resp.GetStatus())
	assert.Equal(t, "store_error", resp.GetErrorKind())
	assert.Equal(t, "store error: locked", resp.GetMessage())
	assert.Equal(t, "7", resp.GetCustomer().GetId())
}
