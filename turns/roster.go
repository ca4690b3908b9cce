package turns

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	OrderFIFO     = "fifo"
	OrderPriority = "priority"
)

var (
	ErrUnknownOrder = errors.New("unknown rotation order")
)

// Roster describes a rotation to set up, in the order participants join.
type Roster struct {
	Order        string        `toml:"order"`
	Participants []RosterEntry `toml:"participant"`
}

type RosterEntry struct {
	Name     string `toml:"name"`
	Turns    int    `toml:"turns"`
	Priority int    `toml:"priority"`
}

func LoadRoster(path string) (*Roster, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cant open roster: %w", err)
	}
	defer f.Close()

	return DecodeRoster(f)
}

func DecodeRoster(r io.Reader) (*Roster, error) {
	var roster Roster
	md, err := toml.DecodeReader(r, &roster)
	if err != nil {
		return nil, fmt.Errorf("cant decode roster: %w", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown roster keys: %s", strings.Join(keys, ", "))
	}

	switch roster.Order {
	case "":
		roster.Order = OrderFIFO
	case OrderFIFO, OrderPriority:
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownOrder, roster.Order)
	}

	return &roster, nil
}

// Unlimited reports whether any participant of the roster never retires.
func (r *Roster) Unlimited() bool {
	for _, e := range r.Participants {
		if BudgetOf(e.Turns).IsUnlimited() {
			return true
		}
	}
	return false
}

// Scheduler builds a scheduler in the roster's order with every
// participant added.
func (r *Roster) Scheduler(opts ...Option) *Scheduler {
	var s *Scheduler
	if r.Order == OrderPriority {
		s = NewPriority(opts...)
	} else {
		s = New(opts...)
	}

	for _, e := range r.Participants {
		s.AddPrioritized(e.Name, e.Turns, e.Priority)
	}
	return s
}
