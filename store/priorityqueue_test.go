package store

import (
	"errors"
	"testing"
)

type entry struct {
	name     string
	priority int
}

func (e entry) String() string { return e.name }

func newEntryQueue() *PriorityQueue[entry] {
	return NewPriorityQueue(func(e entry) int { return e.priority })
}

func TestPriorityQueue_Order(t *testing.T) {
	tests := []struct {
		name string
		in   []entry
		want []string
	}{
		{
			name: "basic priority",
			in:   []entry{{"Low", 1}, {"High", 3}, {"Medium", 2}},
			want: []string{"High", "Medium", "Low"},
		},
		{
			name: "same priority is FIFO",
			in:   []entry{{"First", 1}, {"Second", 1}, {"Third", 1}},
			want: []string{"First", "Second", "Third"},
		},
		{
			name: "mixed priorities",
			in:   []entry{{"A", 1}, {"B", 2}, {"C", 2}, {"D", 3}, {"E", 1}},
			want: []string{"D", "B", "C", "A", "E"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := newEntryQueue()
			for _, e := range tt.in {
				q.Enqueue(e)
			}

			for _, want := range tt.want {
				got, err := q.Dequeue()
				if err != nil {
					t.Fatalf("dequeue: %v", err)
				}
				if got.name != want {
					t.Errorf("expected %s, got %s", want, got.name)
				}
			}
		})
	}
}

func TestPriorityQueue_Empty(t *testing.T) {
	q := newEntryQueue()
	if !q.IsEmpty() {
		t.Fatal("expected new queue to be empty")
	}

	if _, err := q.Dequeue(); !errors.Is(err, ErrQueueEmpty) {
		t.Fatalf("expected ErrQueueEmpty, got %v", err)
	}
}

func TestPriorityQueue_StringInDequeueOrder(t *testing.T) {
	q := newEntryQueue()
	q.Enqueue(entry{"A", 1})
	q.Enqueue(entry{"B", 2})
	q.Enqueue(entry{"C", 2})

	if got := q.String(); got != "[B, C, A]" {
		t.Errorf("expected [B, C, A], got %s", got)
	}
	if q.Len() != 3 {
		t.Errorf("String must not consume elements, len %d", q.Len())
	}
}
