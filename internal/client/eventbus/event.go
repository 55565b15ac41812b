// Package eventbus is the in-process publish/subscribe channel the client
// components talk through. The bus is an ordinary value owned by the
// application root; there is no package-level instance.
package eventbus

import (
	"fmt"

	"github.com/dmitrijs2005/custkeeper/internal/customer"
	"github.com/jinzhu/copier"
)

type EventType int

const (
	// SelectionChanged carries the record to edit, or nil to clear the selection.
	SelectionChanged EventType = iota
	// SaveRequested carries the record to add (empty ID) or update.
	SaveRequested
	// RemoveRequested carries the record to remove.
	RemoveRequested
	// MutationCompleted carries the record that was stored or removed.
	MutationCompleted
)

func (t EventType) String() string {
	switch t {
	case SelectionChanged:
		return "selection_changed"
	case SaveRequested:
		return "save_requested"
	case RemoveRequested:
		return "remove_requested"
	case MutationCompleted:
		return "mutation_completed"
	}
	return fmt.Sprintf("EventType(%d)", int(t))
}

type Event struct {
	Type   EventType
	Record *customer.Record
}

// clone gives each handler its own copy of the payload.
func (e Event) clone() (Event, error) {
	out := Event{Type: e.Type}
	if e.Record == nil {
		return out, nil
	}
	rec := &customer.Record{}
	if err := copier.CopyWithOption(rec, e.Record, copier.Option{DeepCopy: true}); err != nil {
		return Event{}, fmt.Errorf("copy payload: %w", err)
	}
	out.Record = rec
	return out, nil
}
