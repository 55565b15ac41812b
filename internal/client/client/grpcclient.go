package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"time"

	"github.com/dmitrijs2005/custkeeper/internal/common"
	"github.com/dmitrijs2005/custkeeper/internal/customer"
	pb "github.com/dmitrijs2005/custkeeper/internal/proto"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	timeout     time.Duration
	conn        *grpc.ClientConn
	client      pb.CustomerManagementClient
}

func withRequestID(ctx context.Context) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	if len(md.Get(common.RequestIDHeaderName)) > 0 {
		return ctx
	}
	return metadata.AppendToOutgoingContext(ctx, common.RequestIDHeaderName, uuid.NewString())
}

func (s *GRPCClient) requestIDInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	return invoker(withRequestID(ctx), method, req, reply, cc, opts...)
}

func (s *GRPCClient) requestIDStreamInterceptor(
	ctx context.Context,
	desc *grpc.StreamDesc,
	cc *grpc.ClientConn,
	method string,
	streamer grpc.Streamer,
	opts ...grpc.CallOption,
) (grpc.ClientStream, error) {
	return streamer(withRequestID(ctx), desc, cc, method, opts...)
}

// NewCustomerClient connects to endpointURL. timeout bounds each mutation
// call; extra dial options are appended to the defaults.
func NewCustomerClient(endpointURL string, timeout time.Duration, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, timeout: timeout}
	err := c.InitGRPCClient(opts...)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient(opts ...grpc.DialOption) error {
	base := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.requestIDInterceptor),
		grpc.WithStreamInterceptor(s.requestIDStreamInterceptor),
	}

	conn, err := grpc.NewClient(s.endpointURL, append(base, opts...)...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewCustomerManagementClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

// ListCustomers yields the records matching spec as the server sends them.
// Cancelling ctx ends the sequence without an error. A server-side failure
// is yielded once, wrapped in ErrStreamFailed, after the records already
// received.
func (s *GRPCClient) ListCustomers(ctx context.Context, spec customer.FilterSpec) iter.Seq2[customer.Record, error] {
	return func(yield func(customer.Record, error) bool) {
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		stream, err := s.client.ListCustomers(ctx, pb.FilterFromSpec(spec))
		if err != nil {
			if ctx.Err() == nil {
				yield(customer.Record{}, s.mapError(err))
			}
			return
		}

		for {
			msg, err := stream.Recv()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				if ctx.Err() == nil {
					yield(customer.Record{}, s.mapError(err))
				}
				return
			}
			if !yield(msg.Record(), nil) {
				return
			}
		}
	}
}

// Add returns the stored record, with the id the server assigned.
func (s *GRPCClient) Add(ctx context.Context, r customer.Record) (customer.Record, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	in, err := pb.NewCustomer(r)
	if err != nil {
		return customer.Record{}, err
	}

	resp, err := s.client.AddCustomer(ctx, in)
	if err != nil {
		return customer.Record{}, s.mapError(err)
	}
	if err := resp.Err(); err != nil {
		return customer.Record{}, err
	}
	return resp.GetCustomer().Record(), nil
}

func (s *GRPCClient) Update(ctx context.Context, r customer.Record) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	in, err := pb.NewCustomer(r)
	if err != nil {
		return err
	}

	resp, err := s.client.UpdateCustomer(ctx, in)
	if err != nil {
		return s.mapError(err)
	}
	return resp.Err()
}

func (s *GRPCClient) Remove(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.client.DeleteCustomer(ctx, &pb.CustomerId{Id: id})
	if err != nil {
		return s.mapError(err)
	}
	return resp.Err()
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unavailable, codes.DeadlineExceeded:
		return fmt.Errorf("%w: %s", ErrUnavailable, st.Message())
	case codes.Internal:
		return fmt.Errorf("%w: %s", ErrStreamFailed, st.Message())
	case codes.Canceled:
		return context.Canceled
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
