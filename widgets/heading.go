package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Heading prints Text in the foreground Color.
type Heading struct {
	Text  string
	Color string
}

// Style is the lipgloss style the heading renders with. An empty Color
// leaves the terminal foreground untouched.
func (h Heading) Style() lipgloss.Style {
	s := lipgloss.NewStyle().Bold(true)
	if c := strings.TrimSpace(h.Color); c != "" {
		s = s.Foreground(lipgloss.Color(c))
	}
	return s
}

func (h Heading) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	return padRight(h.Style().Render(h.Text), width)
}
