package widgets

import "github.com/charmbracelet/lipgloss"

// Button is the chrome around a trigger control.
type Button struct {
	Label string
}

func (b Button) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	return ClipHeight(buttonStyle.Render(b.Label), height)
}

// Size is the rendered width and height of the button.
func (b Button) Size() (int, int) {
	out := buttonStyle.Render(b.Label)
	return lipgloss.Width(out), lipgloss.Height(out)
}
