package broker

import "fmt"

// State represents a request lifecycle state.
type State int

const (
	Idle State = iota
	Starting
	Listening
	Resolved
	Cancelled
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Starting:
		return "starting"
	case Listening:
		return "listening"
	case Resolved:
		return "resolved"
	case Cancelled:
		return "cancelled"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// transitions defines valid request state transitions.
var transitions = map[State][]State{
	Idle:      {Starting},
	Starting:  {Listening, Resolved, Cancelled},
	Listening: {Listening, Resolved, Cancelled},
	Resolved:  {},
	Cancelled: {},
}

// CanTransition checks if a transition from one state to another is valid.
func CanTransition(from, to State) bool {
	for _, candidate := range transitions[from] {
		if candidate == to {
			return true
		}
	}
	return false
}

// IsTerminal checks if a state has no outgoing transitions.
func (s State) IsTerminal() bool {
	next, ok := transitions[s]
	return ok && len(next) == 0
}

func transition(request *Request, to State) error {
	if !CanTransition(request.State, to) {
		return fmt.Errorf("invalid transition from %s to %s", request.State, to)
	}
	request.State = to
	return nil
}
