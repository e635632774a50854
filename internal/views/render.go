package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

type AppData struct {
	Header       string
	LeftPane     string
	RightPane    string
	StatusLine   string
	Footer       string
	Notification string
	Dark         bool
}

type palette struct {
	headerStyle lipgloss.Style
	statusStyle lipgloss.Style
	errorStyle  lipgloss.Style
	panelStyle  lipgloss.Style
	footerStyle lipgloss.Style
}

var darkPalette = palette{
	headerStyle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
	statusStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	errorStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	panelStyle:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	footerStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
}

var lightPalette = palette{
	headerStyle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4")),
	statusStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	errorStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	panelStyle:  lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1),
	footerStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
}

func RenderApp(data AppData) string {
	p := darkPalette
	if !data.Dark {
		p = lightPalette
	}

	left := p.panelStyle.Width(58).Render(data.LeftPane)
	right := p.panelStyle.Width(58).Render(data.RightPane)
	row := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	status := p.statusStyle.Render(data.StatusLine)
	if strings.Contains(strings.ToLower(data.StatusLine), "error") {
		status = p.errorStyle.Render(data.StatusLine)
	}

	lines := []string{
		p.headerStyle.Render(data.Header),
		row,
		status,
	}
	if data.Notification != "" {
		lines = append(lines, p.panelStyle.Render(data.Notification))
	}
	if data.Footer != "" {
		lines = append(lines, p.footerStyle.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

func RenderMarkdown(md string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	out, err := glamour.Render(md, "dark")
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
