package repository

import "sync"

// collection is an ordered, mutex-guarded list of records keyed by id.
//
// Records are copied in and out with clone so callers never share memory
// with the stored values.
type collection[T any] struct {
	mu    sync.RWMutex
	items []T
	idOf  func(T) string
	clone func(T) T
}

func newCollection[T any](idOf func(T) string, clone func(T) T) *collection[T] {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	return &collection[T]{idOf: idOf, clone: clone}
}

func (c *collection[T]) list() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.items))
	for i, item := range c.items {
		out[i] = c.clone(item)
	}
	return out
}

func (c *collection[T]) find(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if i := c.indexOf(id); i >= 0 {
		return c.clone(c.items[i]), true
	}
	var zero T
	return zero, false
}

func (c *collection[T]) append(item T) {
	c.mu.Lock()
	c.items = append(c.items, c.clone(item))
	c.mu.Unlock()
}

// replace swaps the record with the same id in place.
func (c *collection[T]) replace(item T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(c.idOf(item))
	if i < 0 {
		return false
	}
	c.items[i] = c.clone(item)
	return true
}

func (c *collection[T]) removeByID(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return false
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	return true
}

func (c *collection[T]) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// indexOf must be called with mu held.
func (c *collection[T]) indexOf(id string) int {
	for i, item := range c.items {
		if c.idOf(item) == id {
			return i
		}
	}
	return -1
}
