// Package memstore keeps the stub backend's records in process memory.
package memstore

import (
	"sync"

	"seva-console/internal/pkg/errs"
)

var ErrNotFound = errs.New("record not found")

// Table is a concurrency-safe keyed collection that lists newest first.
type Table[T any] struct {
	mu    sync.RWMutex
	rows  map[string]T
	order []string
}

func NewTable[T any]() *Table[T] {
	return &Table[T]{rows: make(map[string]T)}
}

func (t *Table[T]) Insert(id string, v T) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, exists := t.rows[id]; !exists {
		t.order = append(t.order, id)
	}
	t.rows[id] = v
}

func (t *Table[T]) Get(id string) (T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, errs.Wrapf(ErrNotFound, "id %s", id)
	}
	return v, nil
}

// Update runs fn on a copy of the row and stores the result.
func (t *Table[T]) Update(id string, fn func(*T)) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	v, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, errs.Wrapf(ErrNotFound, "id %s", id)
	}
	fn(&v)
	t.rows[id] = v
	return v, nil
}

func (t *Table[T]) Delete(id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; !ok {
		return errs.Wrapf(ErrNotFound, "id %s", id)
	}
	delete(t.rows, id)
	for i, key := range t.order {
		if key == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return nil
}

// List returns matching rows newest first, after skipping skip matches.
// limit <= 0 means no limit.
func (t *Table[T]) List(match func(T) bool, skip, limit int) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]T, 0)
	seen := 0
	for i := len(t.order) - 1; i >= 0; i-- {
		v := t.rows[t.order[i]]
		if match != nil && !match(v) {
			continue
		}
		seen++
		if seen <= skip {
			continue
		}
		out = append(out, v)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

func (t *Table[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}
