// Package grpc exposes the query engine and the mutation gateway as the
// customers.v1.CustomerManagement gRPC service.
package grpc

import (
	"context"
	"iter"
	"net"
	"time"

	"github.com/dmitrijs2005/custkeeper/internal/customer"
	"github.com/dmitrijs2005/custkeeper/internal/logging"
	pb "github.com/dmitrijs2005/custkeeper/internal/proto"
	"google.golang.org/grpc"
)

// Streamer is the read side, implemented by services.QueryEngine.
type Streamer interface {
	Stream(ctx context.Context, spec customer.FilterSpec) iter.Seq2[customer.Record, error]
}

// Mutator is the write side, implemented by services.Gateway.
type Mutator interface {
	Add(ctx context.Context, r customer.Record) (customer.Record, error)
	Update(ctx context.Context, r customer.Record) error
	Remove(ctx context.Context, id string) error
}

type GRPCServer struct {
	pb.UnimplementedCustomerManagementServer
	address         string
	shutdownTimeout time.Duration
	query           Streamer
	mutations       Mutator
	logger          logging.Logger
}

func NewGRPCServer(a string, shutdownTimeout time.Duration, l logging.Logger, q Streamer, m Mutator) *GRPCServer {
	return &GRPCServer{
		address:         a,
		shutdownTimeout: shutdownTimeout,
		logger:          l.With("module", "grpc_server"),
		query:           q,
		mutations:       m,
	}
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(s.unaryInterceptor),
		grpc.ChainStreamInterceptor(s.streamInterceptor),
	)
	pb.RegisterCustomerManagementServer(srv, s)
	return srv
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is cancelled. In-flight calls
// get shutdownTimeout to finish before they are cut off.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")

		done := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(s.shutdownTimeout):
			s.logger.Warn(ctx, "Graceful stop timed out, closing open streams")
			srv.Stop()
		}
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil {
		return err
	}
	return nil
}
