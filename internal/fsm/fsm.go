// Package fsm models the conversation session lifecycle as a pure transition
// function.
package fsm

import "fmt"

type State string

type Event string

const (
	StateIdle       State = "idle"
	StateActive     State = "active"
	StateTerminated State = "terminated"
)

const (
	EventCommand Event = "command"
	EventExit    Event = "exit"
)

// Transition applies one lifecycle event. Idle becomes Active on the first
// dispatched command; only the exit intent moves Active to Terminated.
func Transition(current State, event Event) (State, error) {
	switch current {
	case StateIdle:
		switch event {
		case EventCommand:
			return StateActive, nil
		default:
			return current, invalidTransition(current, event)
		}
	case StateActive:
		switch event {
		case EventCommand:
			return StateActive, nil
		case EventExit:
			return StateTerminated, nil
		default:
			return current, invalidTransition(current, event)
		}
	case StateTerminated:
		return current, invalidTransition(current, event)
	default:
		return current, fmt.Errorf("unknown state %q", current)
	}
}

func invalidTransition(state State, event Event) error {
	return fmt.Errorf("invalid transition: %s --(%s)--> ?", state, event)
}
