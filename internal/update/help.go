package update

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/sandeepkv93/focusd/internal/views"
)

type KeyBinding struct {
	Keys        string
	Description string
}

func (m Model) globalBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: m.Keys.NextPanel, Description: "next panel"},
		{Keys: m.Keys.Theme, Description: "toggle theme"},
		{Keys: m.Keys.Export, Description: "export data"},
		{Keys: m.Keys.Import, Description: "import data"},
		{Keys: m.Keys.Help, Description: "toggle help"},
		{Keys: m.Keys.Quit, Description: "quit"},
	}
}

func (m Model) panelBindings() []KeyBinding {
	switch m.ActivePanel {
	case PanelTimer:
		return []KeyBinding{
			{Keys: "space", Description: "start/pause"},
			{Keys: "r", Description: "reset"},
			{Keys: "w/s/l", Description: "work/short/long mode"},
		}
	case PanelTasks:
		return []KeyBinding{
			{Keys: "a", Description: "add task"},
			{Keys: "enter", Description: "toggle done"},
			{Keys: "d", Description: "delete"},
			{Keys: "j/k", Description: "move"},
		}
	case PanelHistory:
		return []KeyBinding{
			{Keys: "n", Description: "archive set"},
			{Keys: "x", Description: "delete entry"},
			{Keys: "j/k", Description: "move"},
		}
	case PanelAchievements:
		return []KeyBinding{
			{Keys: "j/k", Description: "move"},
		}
	}
	return nil
}

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	bindings := make([]string, 0)
	for _, b := range append(m.panelBindings(), m.globalBindings()...) {
		bindings = append(bindings, b.Keys+" : "+b.Description)
	}
	return "\n" + views.RenderHelpPanel(views.HelpPanelData{
		Bindings: bindings,
		HelpView: m.helpModel.ShortHelpView(m.helpKeyBindings()),
	})
}

func (m Model) helpKeyBindings() []key.Binding {
	out := make([]key.Binding, 0)
	for _, b := range m.globalBindings() {
		out = append(out, key.NewBinding(key.WithKeys(b.Keys), key.WithHelp(b.Keys, b.Description)))
	}
	return out
}
