package customers

import (
	"context"

	"github.com/dmitrijs2005/custkeeper/internal/customer"
)

// PageFunc reads at most limit records whose id sorts after the given one,
// in id order. An empty after starts at the beginning.
type PageFunc func(ctx context.Context, after string, limit int) ([]customer.Record, error)

// Cursor walks a store in id order one page at a time. It never holds a
// lock or an open result set between calls to Next, so writers are not
// blocked by slow readers and a scan may observe writes made after it began.
//
// A Cursor is single pass and not safe for concurrent use.
type Cursor struct {
	fetch PageFunc
	size  int

	page  []customer.Record
	after string
	cur   customer.Record
	done  bool
	err   error
}

// NewCursor returns a cursor reading pages of size records through fetch.
func NewCursor(fetch PageFunc, size int) *Cursor {
	if size <= 0 {
		size = DefaultPageSize
	}
	return &Cursor{fetch: fetch, size: size}
}

// Next advances to the next record. It returns false at the end of the scan
// or after a store error, which Err then reports.
func (c *Cursor) Next(ctx context.Context) bool {
	if c.err != nil {
		return false
	}

	if len(c.page) == 0 {
		if c.done {
			return false
		}
		page, err := c.fetch(ctx, c.after, c.size)
		if err != nil {
			c.err = err
			return false
		}
		if len(page) < c.size {
			c.done = true
		}
		if len(page) == 0 {
			return false
		}
		c.page = page
	}

	c.cur, c.page = c.page[0], c.page[1:]
	c.after = c.cur.ID
	return true
}

// Record returns the record Next moved to.
func (c *Cursor) Record() customer.Record {
	return c.cur
}

func (c *Cursor) Err() error {
	return c.err
}
