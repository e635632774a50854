package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleHistoryKey(msg tea.KeyMsg) Model {
	if m.SetInputOpen {
		switch msg.String() {
		case "esc":
			m.SetInputOpen = false
			m.setNameInput.Blur()
			m.setNameInput.SetValue("")
			return m
		case "enter":
			m.archiveCurrentSet(m.setNameInput.Value())
			m.SetInputOpen = false
			m.setNameInput.Blur()
			m.setNameInput.SetValue("")
			return m
		}
		var cmd tea.Cmd
		m.setNameInput, cmd = m.setNameInput.Update(msg)
		_ = cmd
		return m
	}

	switch msg.String() {
	case "n":
		m.beginArchive()
	case "up", "k":
		if m.HistoryCursor > 0 {
			m.HistoryCursor--
		}
	case "down", "j":
		if m.HistoryCursor < m.History.Len()-1 {
			m.HistoryCursor++
		}
	case "x":
		m.deleteHistoryAtCursor()
	}
	return m
}

// beginArchive opens the set-name prompt, unless the current set has no
// progress at all, in which case archiving is skipped with just a status
// acknowledgment.
func (m *Model) beginArchive() {
	if m.Machine.Running() {
		m.Status = StatusBar{Text: "pause the timer before starting a new set"}
		return
	}
	if m.Machine.CompletedSessions() == 0 && m.Tasks.Len() == 0 {
		m.Status = StatusBar{Text: "nothing to archive yet, this set is still fresh"}
		return
	}
	m.SetInputOpen = true
	m.setNameInput.Focus()
	m.Status = StatusBar{Text: "name this set (empty for default)"}
}

// archiveCurrentSet freezes the current progress into history, then
// resets the set counter and clears the active task list. This is the
// only operation that moves work from current to archived.
func (m *Model) archiveCurrentSet(name string) {
	set := m.History.Archive(name, m.now(), m.Machine.CompletedSessions(), m.Tasks.Snapshot())
	m.Machine.ResetCompletedSessions()
	m.Tasks.Clear()
	m.TaskCursor = 0
	m.HistoryCursor = 0
	m.Status = StatusBar{Text: fmt.Sprintf("archived %q with %d sessions", set.Name, set.CompletedSessions)}
	m.saveState()
}

func (m *Model) deleteHistoryAtCursor() {
	sets := m.History.Sets()
	if m.HistoryCursor < 0 || m.HistoryCursor >= len(sets) {
		return
	}
	if m.History.Delete(sets[m.HistoryCursor].ID) {
		if m.HistoryCursor >= m.History.Len() && m.HistoryCursor > 0 {
			m.HistoryCursor--
		}
		m.Status = StatusBar{Text: "history entry deleted"}
		m.saveState()
	}
}
