package customers

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/custkeeper/internal/customer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFlow_EditSaveReloadRemove drives the client pieces together: a save
// from the edit model reaches the server, the coordinator reloads on the
// completion event, and a remove drops the record from the next load.
func TestFlow_EditSaveReloadRemove(t *testing.T) {
	bus := newBus()
	srv := &fakeServer{}
	coord := NewCoordinator(srv, bus, nopLogger{})
	list := NewListController(srv, bus, coord, nopLogger{})
	edit := NewEditModel(bus, nopLogger{})
	runCoordinator(t, coord)
	ctx := context.Background()

	waitFor(t, coord, func(s Snapshot) bool { return s.State == Idle })

	edit.New(ctx)
	require.NoError(t, edit.Set("first", "A"))
	require.NoError(t, edit.Set("last", "B"))
	require.NoError(t, edit.Set("email", "a@b.com"))
	require.NoError(t, edit.Set("discount", "10"))
	require.NoError(t, edit.Save(ctx))

	snap := waitFor(t, coord, func(s Snapshot) bool { return s.State == Idle && len(s.Records) == 1 })
	added := snap.Records[0]
	assert.NotEmpty(t, added.ID)
	assert.True(t, added.Removable)

	coord.SetFilter(customer.FilterSpec{Mode: customer.FilterEmail, Text: "A@B"})
	waitFor(t, coord, func(s Snapshot) bool { return s.State == Idle && s.Filter.Text == "A@B" && len(s.Records) == 1 })

	require.NoError(t, list.Remove(ctx, 1))
	snap = waitFor(t, coord, func(s Snapshot) bool { return s.State == Idle && len(s.Records) == 0 })
	assert.Equal(t, "A@B", snap.Filter.Text, "reload keeps the filter")
}
