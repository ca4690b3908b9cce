package store

import (
	"fmt"
	"strings"
)

// MemQueue is a strict FIFO queue. It does no locking, callers sharing
// one between goroutines have to serialize access themselves.
type MemQueue[T any] struct {
	data []T
}

func NewMemQueue[T any]() *MemQueue[T] {
	return &MemQueue[T]{}
}

func (m *MemQueue[T]) Enqueue(v T) {
	m.data = append(m.data, v)
}

func (m *MemQueue[T]) Dequeue() (T, error) {
	var v T
	if len(m.data) == 0 {
		return v, ErrQueueEmpty
	}

	v = m.data[0]

	// drop the backing array reference to the old head
	var zero T
	m.data[0] = zero
	m.data = m.data[1:]

	return v, nil
}

func (m *MemQueue[T]) IsEmpty() bool {
	return len(m.data) == 0
}

func (m *MemQueue[T]) Len() int {
	return len(m.data)
}

func (m *MemQueue[T]) String() string {
	return render(m.data)
}

func render[T any](items []T) string {
	parts := make([]string, len(items))
	for i, v := range items {
		parts[i] = fmt.Sprintf("%v", v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
