package tui

import "github.com/charmbracelet/lipgloss"

// styles contains the pre-configured lipgloss styles for the app.
type appStyles struct {
	Title    lipgloss.Style
	Label    lipgloss.Style
	Muted    lipgloss.Style
	Selected lipgloss.Style
	Warning  lipgloss.Style
	Status   lipgloss.Style
}

func defaultStyles() *appStyles {
	return &appStyles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#06B6D4")).
			Padding(0, 1),
		Label: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#CDD6F4")),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C7086")),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#A6E3A1")),
		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F9E2AF")),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C7086")).
			Padding(0, 1),
	}
}
