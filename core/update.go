package core

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/colorletter/widgets"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case StatusMsg:
		if msg.IsErr {
			m.SetError(errors.New(msg.Text))
		} else {
			m.SetStatus(msg.Text)
		}
		return m, nil
	case tea.KeyMsg:
		b := m.keys.Lookup(msg.String(), ScopeApp)
		if b == nil {
			return m, nil
		}
		switch b.Action {
		case ActionQuit:
			m.quitting = true
			return m, tea.Quit
		case ActionColor:
			return m.fire(ActionColor, m.colorTrigger)
		case ActionLetter:
			return m.fire(ActionLetter, m.letterTrigger)
		}
		return m, nil
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if action, w := m.hitControl(msg.X, msg.Y); w != nil {
			return m.fire(action, w.Trigger())
		}
		return m, nil
	}
	return m, nil
}

// fire runs t and reports the new value of the cell it writes through the
// status bar. A control without a handler reports an error instead.
func (m Model) fire(action Action, t *widgets.Trigger) (tea.Model, tea.Cmd) {
	if !t.Fire() {
		m.log.Warn("trigger has no handler", "action", action)
		return m, ErrorCmd(fmt.Errorf("%s: %w", action, widgets.ErrMissingHandler))
	}
	value := m.cells.state.Color
	if action == ActionLetter {
		value = m.cells.state.Letter
	}
	m.log.Debug("state updated", "trigger", t.Name(), "value", value)
	return m, StatusCmd(string(action) + " " + value)
}

// hitControl maps a screen cell to the display whose control is drawn there.
func (m Model) hitControl(x, y int) (Action, widgets.Triggerable) {
	top, width, height := m.bodyBox()
	if height <= 0 || y < top || x < 0 {
		return "", nil
	}
	t := m.Tree()
	_, places := m.stack(t).Layout(width, height)
	controls := []struct {
		action Action
		widget widgets.Triggerable
	}{
		{ActionColor, t.Color},
		{ActionLetter, t.Letter},
	}
	for i, c := range controls {
		if i >= len(places) {
			break
		}
		cw, ch := c.widget.ControlSize()
		row := y - top - places[i].Row
		if row >= 0 && row < min(ch, places[i].Height) && x < min(cw, width) {
			return c.action, c.widget
		}
	}
	return "", nil
}
