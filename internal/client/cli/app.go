package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/dmitrijs2005/custkeeper/internal/client/client"
	"github.com/dmitrijs2005/custkeeper/internal/client/config"
	"github.com/dmitrijs2005/custkeeper/internal/client/customers"
	"github.com/dmitrijs2005/custkeeper/internal/client/eventbus"
	"github.com/dmitrijs2005/custkeeper/internal/customer"
	"github.com/dmitrijs2005/custkeeper/internal/logging"
)

// Server is what the app needs from the customer service.
type Server interface {
	customers.Lister
	customers.Mutations
}

type App struct {
	config  *config.Config
	logger  logging.Logger
	closeFn func() error

	bus   *eventbus.Bus
	coord *customers.Coordinator
	list  *customers.ListController
	edit  *customers.EditModel

	outMu     sync.Mutex
	out       io.Writer
	lastState customers.State
}

func NewApp(c *config.Config) (*App, error) {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	logger := logging.NewText(os.Stderr, level)

	apiClient, err := client.NewCustomerClient(c.ServerEndpointAddr, c.RequestTimeout)
	if err != nil {
		return nil, err
	}

	return newApp(c, logger, apiClient, apiClient.Close, os.Stdout), nil
}

func newApp(c *config.Config, logger logging.Logger, srv Server, closeFn func() error, out io.Writer) *App {
	bus := eventbus.New(logger)
	coord := customers.NewCoordinator(srv, bus, logger)

	return &App{
		config:  c,
		logger:  logger,
		closeFn: closeFn,
		bus:     bus,
		coord:   coord,
		list:    customers.NewListController(srv, bus, coord, logger),
		edit:    customers.NewEditModel(bus, logger),
		out:     out,
	}
}

// Run loads the list and reads commands from stdin until exit or EOF.
func (a *App) Run(ctx context.Context) error {
	return a.run(ctx, os.Stdin)
}

func (a *App) run(ctx context.Context, in io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := a.coord.Run(ctx); err != nil {
			a.logger.Error(ctx, "coordinator stopped", "error", err)
		}
	}()

	unsubscribe := a.coord.Subscribe(a.onSnapshot)

	a.println("Customer client (type 'help' for commands)")
	runREPL(ctx, a, a.prompt, in)

	unsubscribe()
	cancel()
	<-done

	a.bus.Wait()
	a.list.Close()
	a.edit.Close()
	return a.closeFn()
}

func (a *App) println(args ...any) {
	a.outMu.Lock()
	defer a.outMu.Unlock()
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	a.outMu.Lock()
	defer a.outMu.Unlock()
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) prompt() string {
	s := a.coord.Snapshot()
	p := "customers"
	if s.Filter.Text != "" {
		p = fmt.Sprintf("customers %s:%q", s.Filter.Mode, s.Filter.Text)
	}
	if rec, ok := a.edit.Current(); ok {
		if rec.Persisted() {
			p += " [editing " + rec.FullName() + "]"
		} else {
			p += " [new]"
		}
	}
	return p
}

// onSnapshot runs on the coordinator goroutine. It reports the end of each
// load so the user knows the list is complete.
func (a *App) onSnapshot(s customers.Snapshot) {
	prev := a.lastState
	a.lastState = s.State
	if s.State != customers.Idle || prev == customers.Idle {
		return
	}
	if s.Err != nil {
		a.printf("(list incomplete: %d customers loaded before the error: %v)\n", len(s.Records), s.Err)
		return
	}
	a.printf("(%d customers loaded)\n", len(s.Records))
}

func (a *App) List(ctx context.Context) error {
	s := a.coord.Snapshot()
	a.outMu.Lock()
	renderTable(a.out, s.Records, termWidth())
	a.outMu.Unlock()

	if s.State != customers.Idle {
		a.println("(still loading)")
	}
	if s.Err != nil {
		a.printf("(incomplete: %v)\n", s.Err)
	}
	return nil
}

func (a *App) Filter(ctx context.Context, args []string) error {
	spec := customer.FilterSpec{}
	if len(args) > 0 {
		mode, err := customer.ParseFilterMode(args[0])
		if err != nil {
			return err
		}
		spec.Mode = mode
		spec.Text = strings.Join(args[1:], " ")
	}
	a.coord.SetFilter(spec)
	return nil
}

func (a *App) New(ctx context.Context) error {
	a.edit.New(ctx)
	return nil
}

func (a *App) Select(ctx context.Context, args []string) error {
	i, err := index(args)
	if err != nil {
		return err
	}
	return a.list.Select(ctx, i)
}

func (a *App) Set(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: set <first|last|email|discount|removable> <value>")
	}
	return a.edit.Set(args[0], strings.Join(args[1:], " "))
}

func (a *App) Show(ctx context.Context) error {
	rec, ok := a.edit.Current()
	if !ok {
		return customers.ErrNothingSelected
	}

	errs := a.edit.Errors()
	a.outMu.Lock()
	defer a.outMu.Unlock()
	renderRecord(a.out, rec, errs)
	return nil
}

func (a *App) Save(ctx context.Context) error {
	if err := a.edit.Save(ctx); err != nil {
		return err
	}
	a.println("Saved.")
	return nil
}

func (a *App) Remove(ctx context.Context, args []string) error {
	i, err := index(args)
	if err != nil {
		return err
	}
	if err := a.list.Remove(ctx, i); err != nil {
		return err
	}
	a.println("Removed.")
	return nil
}

func index(args []string) (int, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("usage: <command> <n>, n as shown by list")
	}
	i, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("bad index %q", args[0])
	}
	return i, nil
}
