package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/focusd/internal/achievements"
	"github.com/sandeepkv93/focusd/internal/views"
)

func (m Model) Init() tea.Cmd {
	if m.Timers != nil {
		return waitForTimerCmd(m.Timers.C())
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		keyStr := typed.String()

		if m.Import.Stage != ImportStageNone {
			if keyStr == "ctrl+c" {
				m.Quitting = true
				return m, tea.Quit
			}
			return m.handleImportKey(typed), nil
		}

		capturing := (m.ActivePanel == PanelTasks && m.TaskInputOpen) ||
			(m.ActivePanel == PanelHistory && m.SetInputOpen)
		if capturing && keyStr != "ctrl+c" {
			switch m.ActivePanel {
			case PanelTasks:
				return m.handleTasksKey(typed), nil
			case PanelHistory:
				return m.handleHistoryKey(typed), nil
			}
		}

		switch keyStr {
		case m.Keys.NextPanel:
			m.ActivePanel = nextPanel(m.ActivePanel)
			return m, nil
		case m.Keys.Theme:
			m.IsDark = !m.IsDark
			m.Status = StatusBar{Text: "theme: " + themeName(m.IsDark)}
			m.saveState()
			return m, nil
		case m.Keys.Export:
			m.exportState()
			return m, nil
		case m.Keys.Import:
			m.beginImport()
			return m, nil
		case m.Keys.Help:
			m.HelpVisible = !m.HelpVisible
			return m, nil
		case "ctrl+c", m.Keys.Quit:
			m.Quitting = true
			return m, tea.Quit
		}

		switch m.ActivePanel {
		case PanelTimer:
			return m.handleTimerKey(typed)
		case PanelTasks:
			return m.handleTasksKey(typed), nil
		case PanelHistory:
			return m.handleHistoryKey(typed), nil
		case PanelAchievements:
			return m.handleAchievementsKey(typed), nil
		}
	case TickMsg:
		return m.onTick()
	case TimerDueMsg:
		m.onTimerDue(typed.Event)
		if m.Timers != nil {
			return m, waitForTimerCmd(m.Timers.C())
		}
		return m, nil
	case SwitchPanelMsg:
		if isKnownPanel(typed.Panel) {
			m.ActivePanel = typed.Panel
		}
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		m.notify("Status", typed.Text, levelFromError(typed.IsError))
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
			m.notify("Error", typed.Err.Error(), "error")
		}
		return m, nil
	}

	return m, nil
}

func (m Model) View() string {
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	leftPane := m.renderTimerPanel()
	rightPane := ""
	switch m.ActivePanel {
	case PanelTimer, PanelTasks:
		rightPane = m.renderTasksPanel()
	case PanelHistory:
		rightPane = m.renderHistoryPanel()
	case PanelAchievements:
		rightPane = m.renderAchievementsPanel()
	}
	rightPane += m.renderHelpIfVisible()

	notification := ""
	if m.CharacterLine != "" {
		notification = "🍅 " + m.CharacterLine
	}
	if m.Import.Stage != ImportStageNone {
		prompt := views.RenderImportPrompt(views.ImportPromptData{
			Stage:     string(m.Import.Stage),
			InputView: m.importInput.View(),
			Path:      m.Import.Path,
		})
		notification = strings.TrimSpace(strings.Join([]string{notification, prompt}, "\n"))
	}

	return views.RenderApp(views.AppData{
		Header:       fmt.Sprintf("focusd | panel: %s | mode: %s", m.ActivePanel, m.Machine.Mode()),
		LeftPane:     leftPane,
		RightPane:    rightPane,
		StatusLine:   status,
		Notification: notification,
		Footer: fmt.Sprintf("keys: %s panel | %s theme | %s export | %s import | %s help | %s quit",
			m.Keys.NextPanel, m.Keys.Theme, m.Keys.Export, m.Keys.Import, m.Keys.Help, m.Keys.Quit),
		Dark: m.IsDark,
	})
}

func (m Model) renderTimerPanel() string {
	total := m.Machine.DurationSec()
	progress := 0.0
	if total > 0 {
		progress = float64(total-m.Machine.TimeLeft()) / float64(total)
	}
	return views.RenderTimerPanel(views.TimerPanelData{
		Mode:              string(m.Machine.Mode()),
		Timer:             formatDuration(m.Machine.TimeLeft()),
		Running:           m.Machine.Running(),
		ProgressView:      m.timerProgress.ViewAs(progress),
		ProgressPct:       int(progress * 100),
		CompletedSessions: m.Machine.CompletedSessions(),
		TotalBreaks:       m.Machine.TotalBreaks(),
		ShowEndPrompt:     m.Machine.TimeLeft() == 0 && !m.Machine.Running(),
	})
}

func (m Model) renderTasksPanel() string {
	items := make([]views.TaskItemData, 0, m.Tasks.Len())
	for _, t := range m.Tasks.Tasks() {
		items = append(items, views.TaskItemData{ID: t.ID, Text: t.Text, Completed: t.Completed})
	}
	return views.RenderTasksPanel(views.TasksPanelData{
		Items:     items,
		Cursor:    m.TaskCursor,
		InputView: m.taskInput.View(),
		InputOpen: m.TaskInputOpen,
	})
}

func (m Model) renderHistoryPanel() string {
	items := make([]views.HistoryItemData, 0, m.History.Len())
	for _, s := range m.History.Sets() {
		items = append(items, views.HistoryItemData{
			ID:                s.ID,
			Name:              s.Name,
			Date:              s.Date.Format("2006-01-02"),
			CompletedSessions: s.CompletedSessions,
			TaskCount:         len(s.Tasks),
		})
	}
	return views.RenderHistoryPanel(views.HistoryPanelData{
		Items:     items,
		Cursor:    m.HistoryCursor,
		InputView: m.setNameInput.View(),
		InputOpen: m.SetInputOpen,
	})
}

func (m Model) renderAchievementsPanel() string {
	items := make([]views.AchievementItemData, 0, len(m.Unlocks))
	for _, a := range m.Unlocks {
		item := views.AchievementItemData{
			Icon:        a.Icon,
			Name:        a.Name,
			Description: a.Description,
			Unlocked:    a.Unlocked,
		}
		if a.UnlockedAt != nil {
			item.UnlockedAt = a.UnlockedAt.Format("2006-01-02")
		}
		items = append(items, item)
	}
	detail := ""
	if m.AchievementCursor >= 0 && m.AchievementCursor < len(m.Unlocks) {
		sel := m.Unlocks[m.AchievementCursor]
		detail = "\n" + views.RenderMarkdown(fmt.Sprintf("**%s %s**\n\n%s", sel.Icon, sel.Name, sel.Description))
	}
	unlocked := achievements.UnlockedCount(m.Unlocks)
	return views.RenderAchievementsPanel(views.AchievementsPanelData{
		Items:        items,
		Cursor:       m.AchievementCursor,
		DetailView:   detail,
		UnlockedText: fmt.Sprintf("%d/%d unlocked", unlocked, len(m.Unlocks)),
	})
}

func themeName(dark bool) string {
	if dark {
		return "dark"
	}
	return "light"
}
