package memory

import (
	"context"
	"sync"

	"github.com/jsamuelsen11/blog-domain/internal/domain"
)

// record is satisfied by every entity type through its embedded
// *model.Entity.
type record interface {
	PK() int64
	IsNew() bool
	SetPK(pk int64)
}

// table is a thread-safe pk-indexed collection that remembers insertion
// order. Primary keys start at 1 and are never reused.
type table[T record] struct {
	mu     sync.RWMutex
	rows   map[int64]T
	order  []int64
	nextPK int64
}

func newTable[T record]() *table[T] {
	return &table[T]{rows: make(map[int64]T), nextPK: 1}
}

func (t *table[T]) get(ctx context.Context, pk int64) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	row, ok := t.rows[pk]
	if !ok {
		return zero, domain.ErrNotFound
	}
	return row, nil
}

// insert assigns the next primary key to a new row, or stores a row loaded
// with an explicit key and moves the sequence past it.
func (t *table[T]) insert(ctx context.Context, row T) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if row.IsNew() {
		row.SetPK(t.nextPK)
	}
	pk := row.PK()
	if _, exists := t.rows[pk]; exists {
		return ErrDuplicateKey
	}
	if pk >= t.nextPK {
		t.nextPK = pk + 1
	}

	t.rows[pk] = row
	t.order = append(t.order, pk)
	return nil
}

func (t *table[T]) replace(ctx context.Context, row T) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.rows[row.PK()]; !ok {
		return domain.ErrNotFound
	}
	t.rows[row.PK()] = row
	return nil
}

// scan returns the rows matching keep in insertion order.
func (t *table[T]) scan(ctx context.Context, keep func(T) bool) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]T, 0, len(t.order))
	for _, pk := range t.order {
		if row := t.rows[pk]; keep == nil || keep(row) {
			out = append(out, row)
		}
	}
	return out, nil
}

func (t *table[T]) has(pk int64) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.rows[pk]
	return ok
}

func (t *table[T]) count() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}
