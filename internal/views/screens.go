package views

import (
	"fmt"
	"strings"
)

type TimerPanelData struct {
	Mode              string
	Timer             string
	Running           bool
	ProgressView      string
	ProgressPct       int
	CompletedSessions int
	TotalBreaks       int
	ShowEndPrompt     bool
}

type TaskItemData struct {
	ID        int64
	Text      string
	Completed bool
}

type TasksPanelData struct {
	Items     []TaskItemData
	Cursor    int
	InputView string
	InputOpen bool
}

type HistoryItemData struct {
	ID                int64
	Name              string
	Date              string
	CompletedSessions int
	TaskCount         int
}

type HistoryPanelData struct {
	Items     []HistoryItemData
	Cursor    int
	InputView string
	InputOpen bool
}

type AchievementItemData struct {
	Icon        string
	Name        string
	Description string
	Unlocked    bool
	UnlockedAt  string
}

type AchievementsPanelData struct {
	Items        []AchievementItemData
	Cursor       int
	DetailView   string
	UnlockedText string
}

type HelpPanelData struct {
	Bindings []string
	HelpView string
}

type ImportPromptData struct {
	Stage     string
	InputView string
	Path      string
}

func RenderTimerPanel(data TimerPanelData) string {
	var b strings.Builder
	b.WriteString("timer:\n")
	b.WriteString(fmt.Sprintf("mode: %s\n", strings.ToUpper(data.Mode)))
	state := "paused"
	if data.Running {
		state = "running"
	}
	b.WriteString(fmt.Sprintf("time: %s (%s)\n", data.Timer, state))
	b.WriteString(fmt.Sprintf("progress: %s %d%%\n", data.ProgressView, data.ProgressPct))
	b.WriteString(fmt.Sprintf("sessions this set: %d | breaks taken: %d\n", data.CompletedSessions, data.TotalBreaks))
	b.WriteString("actions: [space]start/pause [r]reset [w]work [s]short [l]long\n")
	if data.ShowEndPrompt {
		b.WriteString("prompt: session complete, next mode starts in a moment")
	}
	return strings.TrimSpace(b.String())
}

func RenderTasksPanel(data TasksPanelData) string {
	var b strings.Builder
	b.WriteString("tasks:\n")
	if data.InputOpen {
		b.WriteString(data.InputView + "\n")
	}
	b.WriteString("actions: [a]add [enter]toggle [d]delete [j/k]move\n")
	if len(data.Items) == 0 {
		b.WriteString("(no tasks yet)")
		return strings.TrimSpace(b.String())
	}
	for i, item := range data.Items {
		marker := " "
		if i == data.Cursor {
			marker = ">"
		}
		box := "[ ]"
		if item.Completed {
			box = "[x]"
		}
		b.WriteString(fmt.Sprintf("%s %s %s\n", marker, box, item.Text))
	}
	return strings.TrimSpace(b.String())
}

func RenderHistoryPanel(data HistoryPanelData) string {
	var b strings.Builder
	b.WriteString("history:\n")
	if data.InputOpen {
		b.WriteString("new set name> " + data.InputView + "\n")
	}
	b.WriteString("actions: [n]archive-set [x]delete [j/k]move\n")
	if len(data.Items) == 0 {
		b.WriteString("(no archived sets)")
		return strings.TrimSpace(b.String())
	}
	for i, item := range data.Items {
		marker := " "
		if i == data.Cursor {
			marker = ">"
		}
		b.WriteString(fmt.Sprintf("%s %s | %s | %d sessions | %d tasks\n",
			marker, item.Name, item.Date, item.CompletedSessions, item.TaskCount))
	}
	return strings.TrimSpace(b.String())
}

func RenderAchievementsPanel(data AchievementsPanelData) string {
	var b strings.Builder
	b.WriteString("achievements: " + data.UnlockedText + "\n")
	for i, item := range data.Items {
		marker := " "
		if i == data.Cursor {
			marker = ">"
		}
		state := "locked"
		if item.Unlocked {
			state = "unlocked " + item.UnlockedAt
		}
		b.WriteString(fmt.Sprintf("%s %s %s (%s)\n", marker, item.Icon, item.Name, strings.TrimSpace(state)))
	}
	if data.DetailView != "" {
		b.WriteString(data.DetailView)
	}
	return strings.TrimSpace(b.String())
}

func RenderImportPrompt(data ImportPromptData) string {
	switch data.Stage {
	case "path":
		return "import file> " + data.InputView
	case "confirm":
		return fmt.Sprintf("import %q replaces ALL current data. continue? [y/n]", data.Path)
	default:
		return ""
	}
}

func RenderHelpPanel(data HelpPanelData) string {
	var b strings.Builder
	b.WriteString("help:\n")
	if data.HelpView != "" {
		b.WriteString(data.HelpView + "\n")
	}
	for _, binding := range data.Bindings {
		b.WriteString(" " + binding + "\n")
	}
	return strings.TrimSpace(b.String())
}
