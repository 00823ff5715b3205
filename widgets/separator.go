package widgets

import "strings"

var _ Widget = Separator{}

// Separator renders a horizontal rule.
type Separator struct{}

func (Separator) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	return ruleStyle.Render(strings.Repeat("─", width))
}
