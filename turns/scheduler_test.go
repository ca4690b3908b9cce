package turns

import (
	"errors"
	"testing"
)

type served struct {
	name    string
	left    int // 0 for unlimited
	retired bool
}

func next(t *testing.T, s *Scheduler) served {
	t.Helper()

	p, err := s.NextTurn()
	if err != nil {
		t.Fatalf("next turn: %v", err)
	}

	left, _ := p.Budget.Left()
	return served{p.Name, left, p.Retired}
}

func TestScheduler_MixedBudgets(t *testing.T) {
	s := New()
	s.AddParticipant("Sam", 3)
	s.AddParticipant("Ana", 1)
	s.AddParticipant("Bo", 0)

	want := []served{
		{"Sam", 2, false},
		{"Ana", 1, true},
		{"Bo", 0, false},
		{"Sam", 1, false},
		{"Bo", 0, false},
		{"Sam", 1, true},
	}

	for i, w := range want {
		if got := next(t, s); got != w {
			t.Errorf("turn %d: expected %+v, got %+v", i+1, w, got)
		}
	}

	if s.Len() != 1 {
		t.Errorf("expected only Bo left, len %d: %s", s.Len(), s)
	}
	if got := s.String(); got != "[Bo (unlimited)]" {
		t.Errorf("unexpected rotation %s", got)
	}
}

func TestScheduler_Empty(t *testing.T) {
	s := New()

	if _, err := s.NextTurn(); !errors.Is(err, ErrNoParticipants) {
		t.Fatalf("expected ErrNoParticipants, got %v", err)
	}
	if s.Len() != 0 {
		t.Fatalf("expected empty rotation, len %d", s.Len())
	}

	// failing call must leave the scheduler usable
	s.AddParticipant("Ana", 1)
	if got := next(t, s); got != (served{"Ana", 1, true}) {
		t.Errorf("unexpected turn %+v", got)
	}
	if _, err := s.NextTurn(); !errors.Is(err, ErrNoParticipants) {
		t.Errorf("expected ErrNoParticipants after Ana retired, got %v", err)
	}
}

func TestScheduler_FirstTurnsInJoinOrder(t *testing.T) {
	names := []string{"a", "b", "c", "d", "e"}

	s := New()
	for i, name := range names {
		s.AddParticipant(name, i-1) // mixes unlimited and finite budgets
	}

	seen := map[string]bool{}
	var order []string
	for i := 0; i < 20 && len(order) < len(names); i++ {
		p, err := s.NextTurn()
		if err != nil {
			t.Fatalf("next turn: %v", err)
		}
		if !seen[p.Name] {
			seen[p.Name] = true
			order = append(order, p.Name)
		}
	}

	for i := range names {
		if i >= len(order) || order[i] != names[i] {
			t.Fatalf("expected first turns %v, got %v", names, order)
		}
	}
}

func TestScheduler_FiniteBudgetServedExactly(t *testing.T) {
	for _, n := range []int{1, 2, 5} {
		s := New()
		s.AddParticipant("x", n)

		for i := 1; i <= n; i++ {
			got := next(t, s)

			wantLeft := n - i
			if i == n {
				wantLeft = 1
			}
			if got.left != wantLeft || got.retired != (i == n) {
				t.Errorf("budget %d, turn %d: got %+v", n, i, got)
			}

			wantLen := 1
			if i == n {
				wantLen = 0
			}
			if s.Len() != wantLen {
				t.Errorf("budget %d, turn %d: expected len %d, got %d", n, i, wantLen, s.Len())
			}
		}

		if _, err := s.NextTurn(); !errors.Is(err, ErrNoParticipants) {
			t.Errorf("budget %d: expected x gone after %d turns, got %v", n, n, err)
		}
	}
}

func TestScheduler_UnlimitedNeverRetires(t *testing.T) {
	for _, turns := range []int{0, -1, -42} {
		s := New()
		s.AddParticipant("u", turns)
		s.AddParticipant("f", 2)

		for i := 0; i < 50; i++ {
			p, err := s.NextTurn()
			if err != nil {
				t.Fatalf("next turn: %v", err)
			}
			if p.Name == "u" && (!p.Budget.IsUnlimited() || p.Retired) {
				t.Fatalf("turns %d: unlimited participant changed: %+v", turns, p)
			}
		}

		if s.Len() != 1 {
			t.Errorf("turns %d: expected only u left, got %s", turns, s)
		}
	}
}

func TestScheduler_LenTracksRetirements(t *testing.T) {
	s := New()
	s.AddParticipant("a", 1)
	s.AddParticipant("b", 2)
	s.AddParticipant("c", 0)

	lens := []int{2, 2, 2, 1, 1}
	for i, want := range lens {
		next(t, s)
		if s.Len() != want {
			t.Errorf("after turn %d: expected len %d, got %d", i+1, want, s.Len())
		}
	}
}

func TestScheduler_ReturnedValueIsACopy(t *testing.T) {
	s := New()
	s.AddParticipant("a", 3)

	p, _ := s.NextTurn()
	p.Budget = Remaining(100)
	p.Name = "mutated"

	got := next(t, s)
	if got != (served{"a", 1, false}) {
		t.Errorf("caller mutation leaked into rotation: %+v", got)
	}
}

func TestScheduler_Priority(t *testing.T) {
	s := NewPriority()
	s.AddPrioritized("low", 2, 1)
	s.AddPrioritized("high", 2, 3)
	s.AddPrioritized("mid", 1, 2)

	want := []string{"high", "high", "mid", "low", "low"}
	for i, w := range want {
		if got := next(t, s); got.name != w {
			t.Errorf("turn %d: expected %s, got %s", i+1, w, got.name)
		}
	}

	if _, err := s.NextTurn(); !errors.Is(err, ErrNoParticipants) {
		t.Errorf("expected ErrNoParticipants, got %v", err)
	}
}

func TestScheduler_PriorityTiesRotate(t *testing.T) {
	s := NewPriority()
	s.AddPrioritized("a", 0, 1)
	s.AddPrioritized("b", 0, 1)

	want := []string{"a", "b", "a", "b"}
	for i, w := range want {
		if got := next(t, s); got.name != w {
			t.Errorf("turn %d: expected %s, got %s", i+1, w, got.name)
		}
	}
}
