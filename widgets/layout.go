package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// VStack stacks widgets top to bottom at their natural height, with Spacing
// blank rows between them.
type VStack struct {
	Widgets []Widget
	Spacing int
}

// Placement is the row span a stacked widget occupies.
type Placement struct {
	Row    int
	Height int
}

// Layout renders every widget that fits in the box and returns the blocks
// with their placements. Widgets that start below the box are dropped.
func (v VStack) Layout(width, height int) ([]string, []Placement) {
	if len(v.Widgets) == 0 || width <= 0 || height <= 0 {
		return nil, nil
	}
	blocks := make([]string, 0, len(v.Widgets))
	places := make([]Placement, 0, len(v.Widgets))
	row := 0
	for i, w := range v.Widgets {
		if i > 0 {
			row += v.Spacing
		}
		remaining := height - row
		if remaining <= 0 {
			break
		}
		block := w.Render(width, remaining)
		h := min(lipgloss.Height(block), remaining)
		blocks = append(blocks, ClipHeight(block, h))
		places = append(places, Placement{Row: row, Height: h})
		row += h
	}
	return blocks, places
}

func (v VStack) Render(width, height int) string {
	blocks, places := v.Layout(width, height)
	if len(blocks) == 0 {
		return ""
	}
	lines := make([]string, 0, height)
	for i, block := range blocks {
		for len(lines) < places[i].Row {
			lines = append(lines, "")
		}
		lines = append(lines, strings.Split(block, "\n")...)
	}
	return strings.Join(lines, "\n")
}

// ClipHeight drops lines past height.
func ClipHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

func padRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
