// Package turns hands out turns to participants in round-robin order,
// each participant holding either a fixed number of turns or an
// unlimited supply.
//
// A Scheduler is not safe for concurrent use.
package turns

import (
	"errors"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"

	"taketurns/store"
)

var (
	ErrNoParticipants = errors.New("no one in the rotation")
)

type Scheduler struct {
	queue  store.Queue[Participant]
	logger log.FieldLogger
}

type Option func(*Scheduler)

// WithQueue replaces the default FIFO queue, e.g. with a priority queue.
// The queue must be empty.
func WithQueue(q store.Queue[Participant]) Option {
	return func(s *Scheduler) {
		s.queue = q
	}
}

func WithLogger(l log.FieldLogger) Option {
	return func(s *Scheduler) {
		s.logger = l
	}
}

func New(opts ...Option) *Scheduler {
	s := &Scheduler{}
	for _, opt := range opts {
		opt(s)
	}

	if s.queue == nil {
		s.queue = store.NewMemQueue[Participant]()
	}
	if s.logger == nil {
		l := log.New()
		l.Out = io.Discard
		s.logger = l
	}

	return s
}

// NewPriority returns a scheduler serving higher Priority participants
// first and equal priorities round-robin.
func NewPriority(opts ...Option) *Scheduler {
	q := store.NewPriorityQueue(func(p Participant) int { return p.Priority })
	return New(append([]Option{WithQueue(q)}, opts...)...)
}

// AddParticipant puts name at the back of the rotation with the given
// number of turns. A turns value of zero or less gives the participant
// unlimited turns.
func (s *Scheduler) AddParticipant(name string, turns int) {
	s.AddPrioritized(name, turns, 0)
}

// AddPrioritized is AddParticipant with a priority, which is ignored
// unless the scheduler uses a priority queue.
func (s *Scheduler) AddPrioritized(name string, turns, priority int) {
	p := Participant{
		Name:     name,
		Budget:   BudgetOf(turns),
		Priority: priority,
	}
	s.queue.Enqueue(p)

	s.logger.WithFields(log.Fields{
		"name":     name,
		"budget":   p.Budget.String(),
		"priority": priority,
		"length":   s.queue.Len(),
	}).Debug("participant added")
}

// NextTurn returns the participant whose turn it is and moves the
// rotation along. Participants with turns left go to the back of the
// rotation; the returned value already has this turn deducted. A
// participant on its last turn is dropped from the rotation and
// returned with Retired set.
//
// ErrNoParticipants is returned when the rotation is empty.
func (s *Scheduler) NextTurn() (Participant, error) {
	if s.queue.IsEmpty() {
		return Participant{}, ErrNoParticipants
	}

	p, err := s.queue.Dequeue()
	if err != nil {
		return Participant{}, fmt.Errorf("cant take next participant: %w", err)
	}

	switch left, limited := p.Budget.Left(); {
	case !limited:
		s.queue.Enqueue(p)
	case left > 1:
		p.Budget = Remaining(left - 1)
		s.queue.Enqueue(p)
	default:
		p.Retired = true
	}

	fields := log.Fields{
		"name":   p.Name,
		"budget": p.Budget.String(),
		"length": s.queue.Len(),
	}
	if p.Retired {
		s.logger.WithFields(fields).Info("participant retired")
	} else {
		s.logger.WithFields(fields).Debug("participant served")
	}

	return p, nil
}

// Len is the number of participants still in the rotation.
func (s *Scheduler) Len() int {
	return s.queue.Len()
}

func (s *Scheduler) String() string {
	return s.queue.String()
}
