package store

import "errors"

// Queue is an ordered collection handing out its elements one at a time.
type Queue[T any] interface {
	Enqueue(v T)
	Dequeue() (T, error)
	IsEmpty() bool
	Len() int
	String() string
}

var (
	ErrQueueEmpty = errors.New("queue is empty")
)
