package update

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleTasksKey(msg tea.KeyMsg) Model {
	if m.TaskInputOpen {
		switch msg.String() {
		case "esc":
			m.TaskInputOpen = false
			m.taskInput.Blur()
			m.taskInput.SetValue("")
			return m
		case "enter":
			m.addTask(m.taskInput.Value())
			m.taskInput.SetValue("")
			return m
		}
		var cmd tea.Cmd
		m.taskInput, cmd = m.taskInput.Update(msg)
		_ = cmd
		return m
	}

	switch msg.String() {
	case "a":
		m.TaskInputOpen = true
		m.taskInput.Focus()
		m.Status = StatusBar{Text: "adding task"}
	case "up", "k":
		if m.TaskCursor > 0 {
			m.TaskCursor--
		}
	case "down", "j":
		if m.TaskCursor < m.Tasks.Len()-1 {
			m.TaskCursor++
		}
	case "enter", " ":
		m.toggleTaskAtCursor()
	case "d":
		m.deleteTaskAtCursor()
	}
	return m
}

// addTask ignores blank text without an error, matching the silent no-op
// contract of the task list.
func (m *Model) addTask(text string) {
	task, ok := m.Tasks.Add(text)
	if !ok {
		return
	}
	m.Status = StatusBar{Text: "task added: " + task.Text}
	m.saveState()
}

func (m *Model) toggleTaskAtCursor() {
	tasks := m.Tasks.Tasks()
	if m.TaskCursor < 0 || m.TaskCursor >= len(tasks) {
		return
	}
	completed, ok := m.Tasks.Toggle(tasks[m.TaskCursor].ID)
	if !ok {
		return
	}
	if completed {
		m.notify("Task", m.characterSay("task_complete"), "info")
		m.Status = StatusBar{Text: "task completed"}
	} else {
		m.Status = StatusBar{Text: "task reopened"}
	}
	m.saveState()
}

func (m *Model) deleteTaskAtCursor() {
	tasks := m.Tasks.Tasks()
	if m.TaskCursor < 0 || m.TaskCursor >= len(tasks) {
		return
	}
	if m.Tasks.Delete(tasks[m.TaskCursor].ID) {
		if m.TaskCursor >= m.Tasks.Len() && m.TaskCursor > 0 {
			m.TaskCursor--
		}
		m.Status = StatusBar{Text: "task deleted"}
		m.saveState()
	}
}
