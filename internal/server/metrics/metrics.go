// Package metrics holds the server's Prometheus collectors and the HTTP
// endpoint exposing them.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/custkeeper/internal/customer"
	"github.com/dmitrijs2005/custkeeper/internal/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// callsTotal counts finished gRPC calls by method and status code
	callsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "custkeeper_grpc_calls_total",
		Help: "Finished gRPC calls by method and status code",
	}, []string{"method", "code"})

	callDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "custkeeper_grpc_call_duration_seconds",
		Help:    "gRPC call duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0005, 2, 14), // 0.5ms to ~4s
	}, []string{"method"})

	// streamedRecords counts records sent on ListCustomers streams
	streamedRecords = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "custkeeper_streamed_records_total",
		Help: "Records sent on customer list streams by filter mode",
	}, []string{"mode"})

	mutationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "custkeeper_mutations_total",
		Help: "Customer mutations by operation and result",
	}, []string{"operation", "result"})
)

func ObserveCall(method, code string, d time.Duration) {
	callsTotal.WithLabelValues(method, code).Inc()
	callDuration.WithLabelValues(method).Observe(d.Seconds())
}

func RecordStreamed(mode customer.FilterMode) {
	streamedRecords.WithLabelValues(mode.String()).Inc()
}

// ObserveMutation labels the result "success" or with the failure kind.
func ObserveMutation(operation string, err error) {
	result := "success"
	if err != nil {
		result = string(customer.StoreError)
		if kind, ok := customer.FailureKindOf(err); ok {
			result = string(kind)
		}
	}
	mutationsTotal.WithLabelValues(operation, result).Inc()
}

// Server exposes /metrics over HTTP.
type Server struct {
	address string
	logger  logging.Logger
}

func NewServer(address string, l logging.Logger) *Server {
	return &Server{address: address, logger: l.With("module", "metrics")}
}

func Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

// Run serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.address,
		Handler:           Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping metrics server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting metrics server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
