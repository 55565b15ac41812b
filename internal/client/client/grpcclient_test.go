package client

import (
	"context"
	"errors"
	"math"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/custkeeper/internal/common"
	"github.com/dmitrijs2005/custkeeper/internal/customer"
	pb "github.com/dmitrijs2005/custkeeper/internal/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

/*************
 * Fake server
 *************/

type fakeServer struct {
	pb.UnimplementedCustomerManagementServer

	mu         sync.Mutex
	requestIDs []string
	lastFilter *pb.CustomerFilter
	lastAdd    *pb.Customer

	records   []*pb.Customer
	streamErr error
	// block makes ListCustomers wait for the client to go away after sending records.
	block bool

	resp    *pb.CustomerResponse
	respErr error
}

func (f *fakeServer) seen(ctx context.Context) {
	md, _ := metadata.FromIncomingContext(ctx)
	f.mu.Lock()
	f.requestIDs = append(f.requestIDs, md.Get(common.RequestIDHeaderName)...)
	f.mu.Unlock()
}

func (f *fakeServer) ListCustomers(req *pb.CustomerFilter, stream grpc.ServerStreamingServer[pb.Customer]) error {
	f.seen(stream.Context())
	f.mu.Lock()
	f.lastFilter = req
	f.mu.Unlock()

	for _, c := range f.records {
		if err := stream.Send(c); err != nil {
			return err
		}
	}
	if f.block {
		<-stream.Context().Done()
		return status.FromContextError(stream.Context().Err()).Err()
	}
	return f.streamErr
}

func (f *fakeServer) AddCustomer(ctx context.Context, in *pb.Customer) (*pb.CustomerResponse, error) {
	f.seen(ctx)
	f.mu.Lock()
	f.lastAdd = in
	f.mu.Unlock()
	return f.resp, f.respErr
}

func (f *fakeServer) UpdateCustomer(ctx context.Context, in *pb.Customer) (*pb.CustomerResponse, error) {
	f.seen(ctx)
	return f.resp, f.respErr
}

func (f *fakeServer) DeleteCustomer(ctx context.Context, in *pb.CustomerId) (*pb.CustomerResponse, error) {
	f.seen(ctx)
	return f.resp, f.respErr
}

func newTestClient(t *testing.T, f *fakeServer) *GRPCClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	pb.RegisterCustomerManagementServer(srv, f)
	go func() { _ = srv.Serve(lis) }()

	c, err := NewCustomerClient("passthrough:///bufnet", time.Second,
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = c.Close()
		srv.Stop()
	})
	return c
}

func collect(t *testing.T, c *GRPCClient, ctx context.Context, spec customer.FilterSpec) ([]customer.Record, []error) {
	t.Helper()
	var (
		recs []customer.Record
		errs []error
	)
	for r, err := range c.ListCustomers(ctx, spec) {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		recs = append(recs, r)
	}
	return recs, errs
}

/*************
 * Tests
 *************/

func TestListCustomers_StreamsRecordsAndSendsFilter(t *testing.T) {
	f := &fakeServer{records: []*pb.Customer{
		{Id: "1", FirstName: "A", LastName: "B", Email: "a@b", Discount: 5, CanBeRemoved: true},
		{Id: "2", FirstName: "C", LastName: "D", Email: "c@d"},
	}}
	c := newTestClient(t, f)

	recs, errs := collect(t, c, context.Background(), customer.FilterSpec{Mode: customer.FilterName, Text: "b"})

	require.Empty(t, errs)
	require.Len(t, recs, 2)
	assert.Equal(t, customer.Record{ID: "1", FirstName: "A", LastName: "B", Email: "a@b", Discount: 5, Removable: true}, recs[0])
	assert.Equal(t, pb.FilterType_NAME, f.lastFilter.GetFilterType())
	assert.Equal(t, "b", f.lastFilter.GetSearchText())

	require.Len(t, f.requestIDs, 1)
	assert.NotEmpty(t, f.requestIDs[0])
}

func TestListCustomers_ServerFailureAfterPartialResults(t *testing.T) {
	f := &fakeServer{
		records:   []*pb.Customer{{Id: "1"}},
		streamErr: status.Error(codes.Internal, "scan failed"),
	}
	c := newTestClient(t, f)

	recs, errs := collect(t, c, context.Background(), customer.FilterSpec{})

	assert.Len(t, recs, 1)
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], ErrStreamFailed)
	assert.Contains(t, errs[0].Error(), "scan failed")
}

func TestListCustomers_CancelEndsSilently(t *testing.T) {
	f := &fakeServer{records: []*pb.Customer{{Id: "1"}}, block: true}
	c := newTestClient(t, f)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	var (
		recs []customer.Record
		errs []error
	)
	for r, err := range c.ListCustomers(ctx, customer.FilterSpec{}) {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		recs = append(recs, r)
		cancel()
	}

	assert.Len(t, recs, 1)
	assert.Empty(t, errs)
}

func TestListCustomers_BreakStopsStream(t *testing.T) {
	f := &fakeServer{records: []*pb.Customer{{Id: "1"}, {Id: "2"}, {Id: "3"}}}
	c := newTestClient(t, f)

	n := 0
	for range c.ListCustomers(context.Background(), customer.FilterSpec{}) {
		n++
		break
	}
	assert.Equal(t, 1, n)
}

func TestAdd_ReturnsAssignedID(t *testing.T) {
	f := &fakeServer{resp: pb.Success(&pb.Customer{Id: "new", FirstName: "A"})}
	c := newTestClient(t, f)

	got, err := c.Add(context.Background(), customer.Record{FirstName: "A"})
	require.NoError(t, err)
	assert.Equal(t, "new", got.ID)
	assert.Equal(t, "A", f.lastAdd.GetFirstName())
}

func TestAddUpdate_RejectDiscountOutsideWireRange(t *testing.T) {
	f := &fakeServer{resp: pb.Success(nil)}
	c := newTestClient(t, f)

	huge := customer.Record{ID: "1", FirstName: "A", LastName: "B", Email: "c", Discount: math.MaxInt32 + 1}

	_, err := c.Add(context.Background(), huge)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrorValidation)
	assert.Nil(t, f.lastAdd)

	err = c.Update(context.Background(), huge)
	kind, ok := customer.FailureKindOf(err)
	require.True(t, ok)
	assert.Equal(t, customer.Invalid, kind)
}

func TestMutations_DecodeFailures(t *testing.T) {
	f := &fakeServer{resp: pb.Failure("9", &customer.MutationFailure{Kind: customer.NotRemovable, ID: "9"})}
	c := newTestClient(t, f)

	err := c.Remove(context.Background(), "9")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrorNotRemovable)
	assert.Equal(t, "customer 9 cannot be removed", err.Error())

	f.resp = pb.Failure("9", &customer.MutationFailure{Kind: customer.NotFound, ID: "9"})
	err = c.Update(context.Background(), customer.Record{ID: "9"})
	assert.ErrorIs(t, err, common.ErrorNotFound)

	kind, ok := customer.FailureKindOf(err)
	require.True(t, ok)
	assert.Equal(t, customer.NotFound, kind)
}

func TestMutations_TransportErrors(t *testing.T) {
	f := &fakeServer{respErr: status.Error(codes.Unavailable, "down")}
	c := newTestClient(t, f)

	_, err := c.Add(context.Background(), customer.Record{})
	assert.ErrorIs(t, err, ErrUnavailable)

	f.respErr = status.Error(codes.InvalidArgument, "bad")
	err = c.Update(context.Background(), customer.Record{})
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrUnavailable))
	assert.Contains(t, err.Error(), "rpc error")
}

func TestWithRequestID_KeepsCallerValue(t *testing.T) {
	ctx := metadata.AppendToOutgoingContext(context.Background(), common.RequestIDHeaderName, "mine")
	md, _ := metadata.FromOutgoingContext(withRequestID(ctx))
	assert.Equal(t, []string{"mine"}, md.Get(common.RequestIDHeaderName))

	md, _ = metadata.FromOutgoingContext(withRequestID(context.Background()))
	assert.Len(t, md.Get(common.RequestIDHeaderName), 1)
}

func TestMapError(t *testing.T) {
	c := &GRPCClient{}
	assert.NoError(t, c.mapError(nil))
	assert.ErrorIs(t, c.mapError(status.Error(codes.DeadlineExceeded, "slow")), ErrUnavailable)
	assert.ErrorIs(t, c.mapError(status.Error(codes.Canceled, "bye")), context.Canceled)
	assert.ErrorIs(t, c.mapError(status.Error(codes.Internal, "x")), ErrStreamFailed)
}
