package customers

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/custkeeper/internal/common"
	"github.com/dmitrijs2005/custkeeper/internal/customer"
	"github.com/tidwall/btree"
)

func byID(a, b interface{}) bool {
	return a.(customer.Record).ID < b.(customer.Record).ID
}

// MemoryRepository keeps records in a B-tree ordered by id.
type MemoryRepository struct {
	mu       sync.RWMutex
	tree     *btree.BTree
	pageSize int
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		tree:     btree.NewNonConcurrent(byID),
		pageSize: DefaultPageSize,
	}
}

func (r *MemoryRepository) Scan() *Cursor {
	return NewCursor(r.page, r.pageSize)
}

func (r *MemoryRepository) page(ctx context.Context, after string, limit int) ([]customer.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]customer.Record, 0, limit)
	var pivot interface{}
	if after != "" {
		pivot = customer.Record{ID: after}
	}

	r.tree.Ascend(pivot, func(i interface{}) bool {
		rec := i.(customer.Record)
		if rec.ID == after {
			return true
		}
		out = append(out, rec)
		return len(out) < limit
	})

	return out, nil
}

func (r *MemoryRepository) FindByID(ctx context.Context, id string) (customer.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	found := r.tree.Get(customer.Record{ID: id})
	if found == nil {
		return customer.Record{}, common.ErrorNotFound
	}
	return found.(customer.Record), nil
}

func (r *MemoryRepository) Insert(ctx context.Context, rec customer.Record) (customer.Record, error) {
	rec.ID = newID()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.tree.Set(rec)
	return rec, nil
}

func (r *MemoryRepository) Replace(ctx context.Context, rec customer.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.tree.Get(customer.Record{ID: rec.ID}) == nil {
		return common.ErrorNotFound
	}
	r.tree.Set(rec)
	return nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.tree.Delete(customer.Record{ID: id}) == nil {
		return common.ErrorNotFound
	}
	return nil
}

func (r *MemoryRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.tree.Len(), nil
}
