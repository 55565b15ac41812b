package grpc

import (
	"context"

	pb "github.com/dmitrijs2005/custkeeper/internal/proto"
	"github.com/dmitrijs2005/custkeeper/internal/server/metrics"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ListCustomers streams the matching records as the store scan produces
// them. A store failure ends the stream with codes.Internal after the
// records already sent.
func (s *GRPCServer) ListCustomers(req *pb.CustomerFilter, stream grpc.ServerStreamingServer[pb.Customer]) error {
	ctx := stream.Context()
	spec := req.Spec()

	s.logger.Debug(ctx, "List request", "request_id", requestID(ctx), "mode", spec.Mode.String(), "text", spec.Text)

	sent := 0
	for rec, err := range s.query.Stream(ctx, spec) {
		if err != nil {
			s.logger.Error(ctx, "List stream failed", "request_id", requestID(ctx), "sent", sent, "error", err)
			return status.Error(codes.Internal, err.Error())
		}
		if err := stream.Send(pb.CustomerFromRecord(rec)); err != nil {
			return err
		}
		metrics.RecordStreamed(spec.Mode)
		sent++
	}

	if err := ctx.Err(); err != nil {
		s.logger.Debug(ctx, "List cancelled", "request_id", requestID(ctx), "sent", sent)
		return status.FromContextError(err).Err()
	}

	s.logger.Debug(ctx, "List done", "request_id", requestID(ctx), "sent", sent)
	return nil
}

// AddCustomer stores a new record. Any id in the request is ignored.
func (s *GRPCServer) AddCustomer(ctx context.Context, req *pb.Customer) (*pb.CustomerResponse, error) {
	rec := req.Record()
	rec.ID = ""

	created, err := s.mutations.Add(ctx, rec)
	metrics.ObserveMutation("add", err)
	if err != nil {
		s.logger.Warn(ctx, "Add rejected", "request_id", requestID(ctx), "error", err)
		return pb.Failure("", err), nil
	}

	return pb.Success(pb.CustomerFromRecord(created)), nil
}

func (s *GRPCServer) UpdateCustomer(ctx context.Context, req *pb.Customer) (*pb.CustomerResponse, error) {
	rec := req.Record()

	err := s.mutations.Update(ctx, rec)
	metrics.ObserveMutation("update", err)
	if err != nil {
		s.logger.Warn(ctx, "Update rejected", "request_id", requestID(ctx), "id", rec.ID, "error", err)
		return pb.Failure(rec.ID, err), nil
	}

	return pb.Success(pb.CustomerFromRecord(rec)), nil
}

func (s *GRPCServer) DeleteCustomer(ctx context.Context, req *pb.CustomerId) (*pb.CustomerResponse, error) {
	id := req.GetId()

	err := s.mutations.Remove(ctx, id)
	metrics.ObserveMutation("remove", err)
	if err != nil {
		s.logger.Warn(ctx, "Remove rejected", "request_id", requestID(ctx), "id", id, "error", err)
		return pb.Failure(id, err), nil
	}

	return pb.Success(&pb.Customer{Id: id}), nil
}
