package session

import (
	"github.com/sandeepkv93/focusd/internal/model"
)

type EventKind string

const (
	EventStarted       EventKind = "started"
	EventEncouragement EventKind = "encouragement"
	EventCompleted     EventKind = "completed"
	EventMilestone     EventKind = "milestone"
	EventDeferredMove  EventKind = "deferred_move"
	EventModeSwitched  EventKind = "mode_switched"
)

// Event is emitted by machine operations and consumed by the update loop.
// The machine holds no callbacks: presentation, persistence and timer
// scheduling all happen in the caller.
type Event struct {
	Kind              EventKind
	Mode              model.Mode
	Next              model.Mode
	CompletedSessions int
	Generation        uint64
}

// Machine is the countdown state machine. It is single-writer and
// clock-free: the caller feeds it one Tick per second while running.
//
// Every user-initiated transition bumps a generation counter. Deferred
// work (the post-completion mode switch, the milestone notice) carries the
// generation it was created under and is dropped when it no longer
// matches, so a manual switch or reset during the delay wins.
type Machine struct {
	modes             model.ModeTable
	mode              model.Mode
	timeLeft          int
	running           bool
	completedSessions int
	totalBreaks       int
	generation        uint64
}

func NewMachine(modes model.ModeTable) *Machine {
	return &Machine{
		modes:    modes,
		mode:     model.ModeWork,
		timeLeft: modes.DurationSec(model.ModeWork),
	}
}

// RestoreMachine rebuilds a paused machine from persisted state. The
// remaining time is clamped into [0, duration] and unknown modes fall
// back to work.
func RestoreMachine(modes model.ModeTable, mode model.Mode, timeLeft, completedSessions, totalBreaks int) *Machine {
	if !mode.IsValid() {
		mode = model.ModeWork
	}
	if completedSessions < 0 {
		completedSessions = 0
	}
	if totalBreaks < 0 {
		totalBreaks = 0
	}
	dur := modes.DurationSec(mode)
	if timeLeft < 0 {
		timeLeft = 0
	}
	if timeLeft > dur {
		timeLeft = dur
	}
	return &Machine{
		modes:             modes,
		mode:              mode,
		timeLeft:          timeLeft,
		completedSessions: completedSessions,
		totalBreaks:       totalBreaks,
	}
}

func (m *Machine) Mode() model.Mode       { return m.mode }
func (m *Machine) TimeLeft() int          { return m.timeLeft }
func (m *Machine) Running() bool          { return m.running }
func (m *Machine) CompletedSessions() int { return m.completedSessions }
func (m *Machine) TotalBreaks() int       { return m.totalBreaks }
func (m *Machine) Generation() uint64     { return m.generation }
func (m *Machine) DurationSec() int       { return m.modes.DurationSec(m.mode) }
func (m *Machine) Modes() model.ModeTable { return m.modes }

// SwitchMode changes the current mode and restores the full duration.
// Mode changes are rejected outright while a session is running.
func (m *Machine) SwitchMode(mode model.Mode) []Event {
	if m.running || !mode.IsValid() {
		return nil
	}
	m.mode = mode
	m.timeLeft = m.modes.DurationSec(mode)
	m.generation++
	return []Event{{Kind: EventModeSwitched, Mode: mode}}
}

// Start begins consuming ticks. Starting an already-running machine is a
// no-op; starting at zero restores the full duration first.
func (m *Machine) Start() []Event {
	if m.running {
		return nil
	}
	if m.timeLeft <= 0 {
		m.timeLeft = m.modes.DurationSec(m.mode)
	}
	m.running = true
	m.generation++
	return []Event{{Kind: EventStarted, Mode: m.mode}}
}

// Pause stops tick consumption. Idempotent.
func (m *Machine) Pause() {
	m.running = false
}

// Reset pauses and restores the full duration of the current mode.
func (m *Machine) Reset() {
	m.running = false
	m.timeLeft = m.modes.DurationSec(m.mode)
	m.generation++
}

// ResetCompletedSessions zeroes the per-set session counter. Called when
// the current set is archived; the cumulative break counter is untouched.
func (m *Machine) ResetCompletedSessions() {
	m.completedSessions = 0
}

// Tick advances the countdown by one second. Ticks while paused are
// ignored. Reaching zero completes the session.
func (m *Machine) Tick() []Event {
	if !m.running || m.timeLeft <= 0 {
		return nil
	}
	m.timeLeft--

	var events []Event
	if m.mode == model.ModeWork && m.timeLeft == m.modes.DurationSec(model.ModeWork)/2 && m.timeLeft > 0 {
		events = append(events, Event{Kind: EventEncouragement, Mode: m.mode})
	}
	if m.timeLeft == 0 {
		events = append(events, m.complete()...)
	}
	return events
}

// complete stops the countdown, updates counters and emits the deferred
// mode move. The move is not applied here: the caller schedules it after
// a short delay and applies it via ApplyDeferredMove, so presentation
// effects get a beat between completion and the next mode.
func (m *Machine) complete() []Event {
	m.running = false

	var next model.Mode
	events := make([]Event, 0, 3)
	if m.mode == model.ModeWork {
		m.completedSessions++
		events = append(events, Event{
			Kind:              EventCompleted,
			Mode:              m.mode,
			CompletedSessions: m.completedSessions,
		})
		if m.completedSessions%4 == 0 {
			next = model.ModeLongBreak
			events = append(events, Event{
				Kind:              EventMilestone,
				CompletedSessions: m.completedSessions,
				Generation:        m.generation,
			})
		} else {
			next = model.ModeShortBreak
		}
	} else {
		m.totalBreaks++
		next = model.ModeWork
		events = append(events, Event{
			Kind:              EventCompleted,
			Mode:              m.mode,
			CompletedSessions: m.completedSessions,
		})
	}

	events = append(events, Event{Kind: EventDeferredMove, Next: next, Generation: m.generation})
	return events
}

// ApplyDeferredMove performs a scheduled post-completion mode switch. The
// move is dropped when the machine has been touched since it was created
// (stale generation) or a session is already running again.
func (m *Machine) ApplyDeferredMove(next model.Mode, generation uint64) ([]Event, bool) {
	if m.running || generation != m.generation || !next.IsValid() {
		return nil, false
	}
	m.mode = next
	m.timeLeft = m.modes.DurationSec(next)
	return []Event{{Kind: EventModeSwitched, Mode: next}}, true
}
