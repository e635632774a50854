package update

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleAchievementsKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "up", "k":
		if m.AchievementCursor > 0 {
			m.AchievementCursor--
		}
	case "down", "j":
		if m.AchievementCursor < len(m.Unlocks)-1 {
			m.AchievementCursor++
		}
	}
	return m
}
