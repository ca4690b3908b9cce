package store

import "errors"

// Store keeps one value per key. Update is the only way to mutate a value
// in place, and runs with the store locked. An Update callback returning
// ErrDelete removes the key instead of storing a value.
type Store[V any] interface {
	Update(key string, fn func(v V, found bool) (V, error)) error
	Get(key string) (V, error)
	Pop(key string) (V, error)
	Has(key string) bool
}

var (
	ErrNotFound = errors.New("key not found")
	ErrDelete   = errors.New("delete key")
)
