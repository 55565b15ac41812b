// Package server wires the customer server together: it opens the configured
// record store, seeds it, and runs the gRPC and metrics endpoints until a
// stop signal arrives.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/custkeeper/internal/logging"
	"github.com/dmitrijs2005/custkeeper/internal/server/config"
	"github.com/dmitrijs2005/custkeeper/internal/server/metrics"
	"github.com/dmitrijs2005/custkeeper/internal/server/repositories/customers"
	"github.com/dmitrijs2005/custkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/custkeeper/internal/server/seed"
	"github.com/dmitrijs2005/custkeeper/internal/server/services"

	gs "github.com/dmitrijs2005/custkeeper/internal/server/grpc"
)

type App struct {
	config    *config.Config
	logger    logging.Logger
	repo      customers.Repository
	closeRepo func() error
	query     *services.QueryEngine
	gateway   *services.Gateway
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	logger := logging.NewJSON(os.Stdout, level)

	repo, closeRepo, err := repomanager.Open(ctx, c.StorageDriver, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	return &App{
		config:    c,
		logger:    logger,
		repo:      repo,
		closeRepo: closeRepo,
		query:     services.NewQueryEngine(repo, logger),
		gateway:   services.NewGateway(repo, logger),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) seed(ctx context.Context) error {
	s := seed.NewSeeder(app.config.SeedSource, seed.S3Config{
		Region:   app.config.S3Region,
		User:     app.config.S3RootUser,
		Password: app.config.S3RootPassword,
		Endpoint: app.config.S3BaseEndpoint,
	}, app.logger)

	_, err := s.Run(ctx, app.repo, app.gateway)
	return err
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.config.ShutdownTimeout, app.logger, app.query, app.gateway)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startMetricsServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := metrics.NewServer(app.config.MetricsAddr, app.logger)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run blocks until ctx is cancelled, a stop signal arrives or one of the
// endpoints fails.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	defer func() {
		if err := app.closeRepo(); err != nil {
			app.logger.Error(ctx, "db close error", "error", err)
		}
	}()

	app.logger.Info(ctx, "Starting app...", "storage", app.config.StorageDriver)

	app.initSignalHandler(cancelFunc)

	if err := app.seed(ctx); err != nil {
		return err
	}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	if app.config.MetricsAddr != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			app.startMetricsServer(ctx, cancelFunc)
		}()
	}

	wg.Wait()

	app.logger.Info(context.Background(), "App stopped")
	return nil
}
