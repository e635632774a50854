package update

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/focusd/internal/achievements"
	"github.com/sandeepkv93/focusd/internal/model"
	"github.com/sandeepkv93/focusd/internal/scheduler"
	"github.com/sandeepkv93/focusd/internal/session"
)

const (
	modeSwitchTimerID = "mode-switch"
	milestoneTimerID  = "milestone"

	modeSwitchDelay = 1 * time.Second
	milestoneDelay  = 2 * time.Second
)

func (m Model) handleTimerKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case " ":
		if m.Machine.Running() {
			m.Machine.Pause()
			m.Status = StatusBar{Text: "timer paused"}
			m.saveState()
			return m, nil
		}
		m.cancelDeferredTimers()
		events := m.Machine.Start()
		m.processSessionEvents(events)
		m.saveState()
		return m, tickCmd()
	case "r":
		m.cancelDeferredTimers()
		m.Machine.Reset()
		m.Status = StatusBar{Text: "timer reset"}
		m.saveState()
		return m, nil
	case "w":
		return m.switchMode(model.ModeWork), nil
	case "s":
		return m.switchMode(model.ModeShortBreak), nil
	case "l":
		return m.switchMode(model.ModeLongBreak), nil
	}
	return m, nil
}

func (m Model) switchMode(mode model.Mode) Model {
	if m.Machine.Running() {
		m.Status = StatusBar{Text: "pause the timer before switching modes"}
		return m
	}
	m.cancelDeferredTimers()
	events := m.Machine.SwitchMode(mode)
	m.processSessionEvents(events)
	m.saveState()
	return m
}

func (m Model) onTick() (Model, tea.Cmd) {
	if !m.Machine.Running() {
		return m, nil
	}
	events := m.Machine.Tick()
	m.processSessionEvents(events)
	if m.Machine.Running() {
		return m, tickCmd()
	}
	// Completion already persisted through processSessionEvents.
	return m, nil
}

// processSessionEvents translates machine events into presentation and
// scheduling side effects. The machine itself stays pure.
func (m *Model) processSessionEvents(events []session.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case session.EventStarted:
			kind := "start_work"
			if ev.Mode.IsBreak() {
				kind = "start_break"
			}
			m.characterSay(kind)
			m.Status = StatusBar{Text: fmt.Sprintf("%s session started", ev.Mode)}
		case session.EventEncouragement:
			m.notify("Focus", m.characterSay("encouragement"), "info")
		case session.EventCompleted:
			m.onSessionCompleted(ev)
		case session.EventMilestone:
			m.scheduleTimer(scheduler.TimerEvent{
				ID:         milestoneTimerID,
				Kind:       scheduler.KindMilestone,
				Generation: ev.Generation,
				TriggerAt:  m.now().Add(milestoneDelay),
			})
		case session.EventDeferredMove:
			m.scheduleTimer(scheduler.TimerEvent{
				ID:         modeSwitchTimerID,
				Kind:       scheduler.KindModeSwitch,
				Payload:    string(ev.Next),
				Generation: ev.Generation,
				TriggerAt:  m.now().Add(modeSwitchDelay),
			})
		case session.EventModeSwitched:
			m.Status = StatusBar{Text: fmt.Sprintf("mode: %s", ev.Mode)}
		}
	}
}

func (m *Model) onSessionCompleted(ev session.Event) {
	m.Status = StatusBar{Text: m.Modes.Label(ev.Mode)}
	kind := "work_complete"
	if ev.Mode.IsBreak() {
		kind = "break_complete"
	}
	m.notify("Session", m.characterSay(kind), "info")
	m.evaluateAchievements(ev.Mode)
	m.saveState()
}

// evaluateAchievements runs the rule table after a completion. All newly
// unlocked achievements are recorded, but only the first surfaces as a
// character message; the rest show up in the achievements panel.
func (m *Model) evaluateAchievements(justCompleted model.Mode) {
	state := achievements.EvalState{
		CompletedSessions: m.Machine.CompletedSessions(),
		TotalBreaks:       m.Machine.TotalBreaks(),
		JustCompleted:     justCompleted,
		Tasks:             m.Tasks.Tasks(),
		History:           m.History.Sets(),
		Now:               m.now(),
	}
	newly := achievements.Evaluate(m.Unlocks, state, m.now())
	if len(newly) == 0 {
		return
	}
	first := newly[0]
	m.CharacterLine = fmt.Sprintf("Achievement unlocked: %s %s", first.Icon, first.Name)
	m.notify("Achievement", fmt.Sprintf("%s %s: %s", first.Icon, first.Name, first.Description), "info")
}

func (m *Model) onTimerDue(ev scheduler.TimerEvent) {
	switch ev.Kind {
	case scheduler.KindModeSwitch:
		events, ok := m.Machine.ApplyDeferredMove(model.Mode(ev.Payload), ev.Generation)
		if !ok {
			return
		}
		m.processSessionEvents(events)
		m.saveState()
	case scheduler.KindMilestone:
		if ev.Generation != m.Machine.Generation() {
			return
		}
		m.notify("Milestone", m.characterSay("milestone"), "info")
	}
}

func (m *Model) scheduleTimer(ev scheduler.TimerEvent) {
	if m.Timers == nil {
		return
	}
	if err := m.Timers.Schedule(ev); err != nil {
		m.LastError = err
	}
}

// cancelDeferredTimers drops any pending post-completion callbacks. The
// generation guard in the machine already makes stale events harmless;
// canceling just keeps them from firing at all.
func (m *Model) cancelDeferredTimers() {
	if m.Timers == nil {
		return
	}
	m.Timers.Cancel(modeSwitchTimerID)
	m.Timers.Cancel(milestoneTimerID)
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg { return TickMsg{} })
}

func waitForTimerCmd(ch <-chan scheduler.TimerEvent) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return TimerDueMsg{Event: ev}
	}
}
