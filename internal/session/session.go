// Package session holds per-run conversation state: lifecycle phase, command
// counters, feature flags, and the bounded conversation history.
package session

import (
	"sync"
	"time"

	"github.com/tkessler/parley/internal/fsm"
)

// Flags records which optional collaborators are wired for this run.
type Flags struct {
	AIEnabled     bool
	SpeechEnabled bool
}

// Snapshot is a point-in-time read of session statistics.
type Snapshot struct {
	Phase      fsm.State
	StartedAt  time.Time
	Uptime     time.Duration
	Commands   int
	HistoryLen int
	Flags      Flags
}

// State is the process-wide session record. All access is serialized through
// an internal mutex so the IPC status server can read statistics while the
// dispatcher owns the turn.
type State struct {
	mu      sync.Mutex
	phase   fsm.State
	started time.Time
	now     func() time.Time

	commands int
	history  *History
	flags    Flags
	greeted  bool
}

// New constructs session state with the given history capacity and flags.
func New(historyCap int, flags Flags) *State {
	return NewAt(historyCap, flags, time.Now)
}

// NewAt injects a clock for tests.
func NewAt(historyCap int, flags Flags, now func() time.Time) *State {
	return &State{
		phase:   fsm.StateIdle,
		started: now(),
		now:     now,
		history: NewHistory(historyCap),
		flags:   flags,
	}
}

// RecordCommand counts one dispatched command and advances Idle to Active on
// the first one.
func (s *State) RecordCommand() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.commands++
	if next, err := fsm.Transition(s.phase, fsm.EventCommand); err == nil {
		s.phase = next
	}
}

// RecordExchange appends one AI-routed exchange to the history window.
func (s *State) RecordExchange(user, assistant string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history.Append(Turn{User: user, Assistant: assistant, At: s.now()})
}

// RecentTurns returns up to n most recent exchanges.
func (s *State) RecentTurns(n int) []Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.Last(n)
}

// Terminate moves the session to its final state via the exit event.
func (s *State) Terminate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if next, err := fsm.Transition(s.phase, fsm.EventExit); err == nil {
		s.phase = next
	}
}

// Phase returns the current lifecycle state.
func (s *State) Phase() fsm.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// FirstGreeting reports true exactly once, for the onboarding sentence.
func (s *State) FirstGreeting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.greeted {
		return false
	}
	s.greeted = true
	return true
}

// Stats produces a consistent statistics snapshot.
func (s *State) Stats() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Phase:      s.phase,
		StartedAt:  s.started,
		Uptime:     s.now().Sub(s.started),
		Commands:   s.commands,
		HistoryLen: s.history.Len(),
		Flags:      s.flags,
	}
}
