package update

import (
	"context"
	"errors"
	"fmt"

	"github.com/sandeepkv93/focusd/internal/achievements"
	"github.com/sandeepkv93/focusd/internal/model"
	"github.com/sandeepkv93/focusd/internal/session"
	"github.com/sandeepkv93/focusd/internal/storage"
)

// snapshot captures all durable state for write-through persistence.
func (m Model) snapshot() storage.Snapshot {
	unlocks := make([]storage.AchievementState, 0, len(m.Unlocks))
	for _, a := range m.Unlocks {
		unlocks = append(unlocks, storage.AchievementState{
			ID:           a.ID,
			Unlocked:     a.Unlocked,
			UnlockedDate: a.UnlockedAt,
		})
	}
	return storage.Snapshot{
		CurrentMode:       m.Machine.Mode(),
		TimeLeft:          m.Machine.TimeLeft(),
		CompletedSessions: m.Machine.CompletedSessions(),
		TotalBreaks:       m.Machine.TotalBreaks(),
		Tasks:             m.Tasks.Snapshot(),
		History:           append([]model.PomodoroSet(nil), m.History.Sets()...),
		Achievements:      unlocks,
		IsDark:            m.IsDark,
	}
}

// applySnapshot replaces all state from a decoded snapshot in one step.
// Used at startup and by the import flow; callers validate first so the
// replacement is all-or-nothing.
func (m *Model) applySnapshot(snap storage.Snapshot) {
	m.Machine = session.RestoreMachine(m.Modes, snap.CurrentMode, snap.TimeLeft, snap.CompletedSessions, snap.TotalBreaks)
	m.Tasks = model.RestoreTaskList(snap.Tasks)
	m.History = model.RestoreHistory(snap.History)
	records := make([]achievements.UnlockRecord, 0, len(snap.Achievements))
	for _, a := range snap.Achievements {
		records = append(records, achievements.UnlockRecord{
			ID:         a.ID,
			Unlocked:   a.Unlocked,
			UnlockedAt: a.UnlockedDate,
		})
	}
	m.Unlocks = achievements.Reconcile(records)
	m.IsDark = snap.IsDark
	m.TaskCursor = 0
	m.HistoryCursor = 0
}

// loadState pulls the persisted snapshot on startup. A malformed blob
// degrades to defaults with a visible status instead of failing to start.
func (m *Model) loadState() {
	snap, found, err := m.store.Load(context.Background())
	if err != nil {
		if errors.Is(err, storage.ErrFormat) {
			m.Status = StatusBar{Text: "saved data was unreadable, starting fresh", IsError: true}
			return
		}
		m.Status = StatusBar{Text: fmt.Sprintf("load state failed: %v", err), IsError: true}
		return
	}
	if !found {
		return
	}
	m.applySnapshot(snap)
}

// saveState writes the snapshot through after a state-changing operation.
// Failures surface on the status bar and never interrupt the timer.
func (m *Model) saveState() {
	if err := m.store.Save(context.Background(), m.snapshot()); err != nil {
		m.Status = StatusBar{Text: fmt.Sprintf("save state failed: %v", err), IsError: true}
		m.LastError = err
	}
}
