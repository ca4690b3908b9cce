package store

import (
	"errors"
	"sync"
)

// MemStore implements in-memory store
type MemStore[V any] struct {
	m  map[string]V
	mu sync.Mutex
}

func NewMemStore[V any]() *MemStore[V] {
	return &MemStore[V]{
		m: make(map[string]V),
	}
}

// Update calls fn with the current value for key and stores what it
// returns. Nothing is stored if fn fails, and the key is removed if fn
// returns ErrDelete. Calls are serialized, so fn may touch state owned by
// the value without further locking.
func (m *MemStore[V]) Update(key string, fn func(v V, found bool) (V, error)) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, found := m.m[key]
	v, err := fn(v, found)
	if errors.Is(err, ErrDelete) {
		delete(m.m, key)
		return nil
	}
	if err != nil {
		return err
	}

	m.m[key] = v
	return nil
}

func (m *MemStore[V]) Get(key string) (V, error) {
	m.mu.Lock()
	v, ok := m.m[key]
	m.mu.Unlock()

	if !ok {
		return v, ErrNotFound
	}

	return v, nil
}

func (m *MemStore[V]) Pop(key string) (V, error) {
	m.mu.Lock()
	v, ok := m.m[key]
	delete(m.m, key)
	m.mu.Unlock()

	if !ok {
		return v, ErrNotFound
	}

	return v, nil
}

func (m *MemStore[V]) Has(key string) bool {
	m.mu.Lock()
	_, ok := m.m[key]
	m.mu.Unlock()
	return ok
}
