package turns

import "fmt"

// Budget is how many turns a participant has left. The zero value is
// unlimited.
type Budget struct {
	left int
}

// Unlimited returns a budget that is never used up.
func Unlimited() Budget {
	return Budget{}
}

// Remaining returns a budget of n turns. n < 1 is treated as unlimited,
// never as exhausted.
func Remaining(n int) Budget {
	if n < 1 {
		return Unlimited()
	}
	return Budget{left: n}
}

// BudgetOf maps the integer turn count used by callers: any value <= 0
// means unlimited.
func BudgetOf(turns int) Budget {
	return Remaining(turns)
}

func (b Budget) IsUnlimited() bool {
	return b.left == 0
}

// Left returns the remaining turns, ok is false for unlimited budgets.
func (b Budget) Left() (n int, ok bool) {
	return b.left, b.left != 0
}

func (b Budget) String() string {
	if b.IsUnlimited() {
		return "unlimited"
	}
	return fmt.Sprintf("%d left", b.left)
}

// Participant is one entry of a rotation.
type Participant struct {
	Name   string
	Budget Budget

	// Priority only matters when the rotation is backed by a priority queue.
	Priority int

	// Retired is set on the value returned for a participant's last turn.
	Retired bool
}

func (p Participant) String() string {
	return fmt.Sprintf("%s (%s)", p.Name, p.Budget)
}
