package customers

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/dmitrijs2005/custkeeper/internal/client/eventbus"
	"github.com/dmitrijs2005/custkeeper/internal/customer"
	"github.com/dmitrijs2005/custkeeper/internal/logging"
)

var ErrNothingSelected = errors.New("no customer selected")

// EditModel holds the record being edited. It follows SelectionChanged on
// the bus and turns Save into a SaveRequested event.
type EditModel struct {
	bus    *eventbus.Bus
	scope  *eventbus.Scope
	logger logging.Logger

	mu       sync.Mutex
	current  customer.Record
	selected bool
}

func NewEditModel(bus *eventbus.Bus, logger logging.Logger) *EditModel {
	m := &EditModel{
		bus:    bus,
		scope:  eventbus.NewScope(bus),
		logger: logger.With("module", "edit_model"),
	}
	m.scope.Register(eventbus.SelectionChanged, m.onSelectionChanged)
	return m
}

func (m *EditModel) onSelectionChanged(_ context.Context, e eventbus.Event) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if e.Record == nil {
		m.current = customer.Record{}
		m.selected = false
		return
	}
	m.current = *e.Record
	m.selected = true
}

// Close detaches the model from the bus.
func (m *EditModel) Close() {
	m.scope.Close()
}

// Current returns a copy of the edited record and whether one is selected.
func (m *EditModel) Current() (customer.Record, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current, m.selected
}

// New selects an empty record.
func (m *EditModel) New(ctx context.Context) {
	m.bus.Publish(ctx, eventbus.Event{Type: eventbus.SelectionChanged, Record: &customer.Record{}})
}

// Clear drops the selection.
func (m *EditModel) Clear(ctx context.Context) {
	m.bus.Publish(ctx, eventbus.Event{Type: eventbus.SelectionChanged})
}

// Set changes one field of the edited record. Field names are first, last,
// email, discount and removable.
func (m *EditModel) Set(field, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.selected {
		return ErrNothingSelected
	}

	switch strings.ToLower(field) {
	case "first", "firstname", "first_name":
		m.current.FirstName = value
	case "last", "lastname", "last_name":
		m.current.LastName = value
	case "email":
		m.current.Email = value
	case "discount":
		d, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("discount must be a number: %w", err)
		}
		m.current.Discount = d
	case "removable", "can_be_removed":
		b, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("removable must be true or false: %w", err)
		}
		m.current.Removable = b
	default:
		return fmt.Errorf("unknown field %q", field)
	}
	return nil
}

// Errors returns the validation messages for the edited record by field.
func (m *EditModel) Errors() map[string]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.selected {
		return nil
	}
	return m.current.FieldErrors()
}

func (m *EditModel) CanSave() bool {
	rec, ok := m.Current()
	return ok && rec.Validate() == nil
}

// Save publishes the edited record and waits for the handlers. On success
// the selection is cleared.
func (m *EditModel) Save(ctx context.Context) error {
	rec, ok := m.Current()
	if !ok {
		return ErrNothingSelected
	}
	if err := rec.Validate(); err != nil {
		return &customer.MutationFailure{Kind: customer.Invalid, ID: rec.ID, Err: err}
	}

	if err := m.bus.PublishAndAwait(ctx, eventbus.Event{Type: eventbus.SaveRequested, Record: &rec}); err != nil {
		m.logger.Warn(ctx, "Save failed", "id", rec.ID, "error", err)
		return err
	}

	m.Clear(ctx)
	return nil
}
