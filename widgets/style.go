package widgets

import "github.com/charmbracelet/lipgloss"

var (
	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext  lipgloss.Color = "#bac2de"
	colorBorder   lipgloss.Color = "#6c7086"
	colorRule     lipgloss.Color = "#585b70"
	colorButtonFg lipgloss.Color = "#f5c2e7"
)

var (
	buttonStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Foreground(colorButtonFg).
			Padding(0, 1)
	valueStyle = lipgloss.NewStyle().Foreground(colorSubtext).Bold(true)
	ruleStyle  = lipgloss.NewStyle().Foreground(colorRule)
)
