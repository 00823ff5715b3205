package core

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func (m Model) View() string {
	if m.quitting {
		return "Goodbye\n"
	}
	header := renderHeader(m)
	status := RenderStatusBar(m)
	footer := RenderFooter(m)
	_, bodyWidth, bodyHeight := m.bodyBox()

	parts := []string{header, status}
	if bodyHeight > 0 {
		body := m.stack(m.Tree()).Render(bodyWidth, bodyHeight)
		parts = append(parts, fitHeight(body, bodyHeight))
	}
	parts = append(parts, footer)
	view := fitHeight(strings.Join(parts, "\n"), max(1, m.height))
	return appStyle.Width(max(1, m.width)).MaxWidth(max(1, m.width)).Render(view)
}

func renderHeader(m Model) string {
	s := m.cells.state
	left := headerAppStyle.Background(colorMantle).Render("colorletter")
	swatch := headerBarStyle.Render(" ")
	if c := strings.TrimSpace(s.Color); c != "" {
		swatch = lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Background(colorMantle).Render("■")
	}
	right := swatch + headerBarStyle.Render(" "+s.Color+" ")
	right = ansi.Truncate(right, max(1, m.width), "")
	leftW := ansi.StringWidth(left)
	rightW := ansi.StringWidth(right)
	gap := 1
	if leftW+rightW+1 < m.width {
		gap = m.width - leftW - rightW
	}
	return renderHeaderBar(headerBarStyle, max(1, m.width), left+strings.Repeat(" ", gap)+right)
}

func fitHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func renderHeaderBar(style lipgloss.Style, width int, line string) string {
	line = ansi.Truncate(strings.ReplaceAll(line, "\n", " "), width, "")
	lineW := ansi.StringWidth(line)
	if lineW < width {
		line += strings.Repeat(" ", width-lineW)
	}
	return style.Width(width).MaxWidth(width).Render(line)
}
