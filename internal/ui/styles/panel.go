package styles

import "github.com/charmbracelet/lipgloss"

// PanelStyle returns the rounded border used around the viewport,
// highlighted while active.
func PanelStyle(active bool) lipgloss.Style {
	color := T().Border
	if active {
		color = T().BorderFocus
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(color)
}
