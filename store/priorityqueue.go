package store

import (
	"container/heap"
	"sort"
)

// PriorityQueue hands out the highest priority element first. Elements of
// equal priority leave in the order they were enqueued.
type PriorityQueue[T any] struct {
	items    prioHeap[T]
	priority func(T) int
	seq      uint64
}

// NewPriorityQueue returns an empty queue ranking elements by priority(v).
func NewPriorityQueue[T any](priority func(T) int) *PriorityQueue[T] {
	return &PriorityQueue[T]{priority: priority}
}

func (p *PriorityQueue[T]) Enqueue(v T) {
	heap.Push(&p.items, prioItem[T]{
		value:    v,
		priority: p.priority(v),
		seq:      p.seq,
	})
	p.seq++
}

func (p *PriorityQueue[T]) Dequeue() (T, error) {
	if len(p.items) == 0 {
		var zero T
		return zero, ErrQueueEmpty
	}

	it := heap.Pop(&p.items).(prioItem[T])
	return it.value, nil
}

func (p *PriorityQueue[T]) IsEmpty() bool {
	return len(p.items) == 0
}

func (p *PriorityQueue[T]) Len() int {
	return len(p.items)
}

// String renders the elements in the order Dequeue would return them.
func (p *PriorityQueue[T]) String() string {
	sorted := make(prioHeap[T], len(p.items))
	copy(sorted, p.items)
	sort.Sort(sorted)

	values := make([]T, len(sorted))
	for i, it := range sorted {
		values[i] = it.value
	}
	return render(values)
}

type prioItem[T any] struct {
	value    T
	priority int
	seq      uint64
}

type prioHeap[T any] []prioItem[T]

func (h prioHeap[T]) Len() int { return len(h) }

func (h prioHeap[T]) Less(i, j int) bool {
	if h[i].priority == h[j].priority {
		return h[i].seq < h[j].seq
	}
	return h[i].priority > h[j].priority
}

func (h prioHeap[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *prioHeap[T]) Push(x any) {
	*h = append(*h, x.(prioItem[T]))
}

func (h *prioHeap[T]) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = prioItem[T]{}
	*h = old[:n-1]
	return it
}
