package core

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/colorletter/internal/logging"
	"github.com/jask/colorletter/widgets"
)

// Rows taken by the header, status bar and footer around the body.
const (
	headerRows  = 1
	statusRows  = 1
	footerRows  = 1
	bodySpacing = 1
)

// Tree is what the model renders: both displays with their triggers, a
// separator, and a heading showing the letter in the current color.
type Tree struct {
	Color     widgets.ColorDisplay
	Letter    widgets.LetterDisplay
	Separator widgets.Separator
	Heading   widgets.Heading
}

// Options configures NewModel. Zero values fall back to defaults.
type Options struct {
	Initial State
	Keys    *KeyRegistry
	Logger  *slog.Logger
}

// cells is shared by every copy of a Model so that triggers built once in
// NewModel always write to the live state.
type cells struct {
	state State
}

type Model struct {
	cells         *cells
	colorTrigger  *widgets.Trigger
	letterTrigger *widgets.Trigger
	colorMemo     *widgets.Memo[widgets.ColorDisplay]
	letterMemo    *widgets.Memo[widgets.LetterDisplay]
	keys          *KeyRegistry
	log           *slog.Logger
	width         int
	height        int
	status        string
	statusErr     bool
	quitting      bool
}

// NewModel builds the app around the two providers. A nil provider leaves
// its display without a handler; activating that control does nothing.
func NewModel(colors ColorProvider, letters LetterProvider, opts Options) Model {
	initial := NewState()
	if opts.Initial.Color != "" {
		initial.Color = opts.Initial.Color
	}
	if opts.Initial.Letter != "" {
		initial.Letter = opts.Initial.Letter
	}
	keys := opts.Keys
	if keys == nil {
		keys = NewKeyRegistry()
	}
	log := opts.Logger
	if log == nil {
		log = logging.NewNop()
	}

	c := &cells{state: initial}
	m := Model{
		cells:  c,
		keys:   keys,
		log:    log,
		status: "Ready",
		width:  80,
		height: 24,
	}
	if colors != nil {
		m.colorTrigger = widgets.NewTrigger(string(ActionColor), func() {
			c.state = WithColor(c.state, colors())
		})
	}
	if letters != nil {
		m.letterTrigger = widgets.NewTrigger(string(ActionLetter), func() {
			c.state = WithLetter(c.state, letters())
		})
	}
	m.colorMemo = widgets.NewMemo(func(d widgets.ColorDisplay, width, height int) string {
		if err := d.Validate(); err != nil {
			log.Warn("color display props invalid", "error", err)
		}
		log.Debug("color display rendered", "color", d.Color)
		return d.Render(width, height)
	})
	m.letterMemo = widgets.NewMemo(func(d widgets.LetterDisplay, width, height int) string {
		if err := d.Validate(); err != nil {
			log.Warn("letter display props invalid", "error", err)
		}
		log.Debug("letter display rendered", "letter", d.Letter)
		return d.Render(width, height)
	})
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

// State returns the current cells.
func (m Model) State() State {
	return m.cells.state
}

// OnColorTrigger replaces the color with the provider's next value and
// reports whether a provider ran. Provider panics are not recovered.
func (m Model) OnColorTrigger() bool {
	return m.colorTrigger.Fire()
}

// OnLetterTrigger replaces the letter with the provider's next value and
// reports whether a provider ran. Provider panics are not recovered.
func (m Model) OnLetterTrigger() bool {
	return m.letterTrigger.Fire()
}

func (m Model) ColorTrigger() *widgets.Trigger {
	return m.colorTrigger
}

func (m Model) LetterTrigger() *widgets.Trigger {
	return m.letterTrigger
}

func (m Model) Tree() Tree {
	s := m.cells.state
	return Tree{
		Color:   widgets.ColorDisplay{Color: s.Color, HandleChange: m.colorTrigger},
		Letter:  widgets.LetterDisplay{Letter: s.Letter, HandleChange: m.letterTrigger},
		Heading: widgets.Heading{Text: s.Letter, Color: s.Color},
	}
}

// RenderCounts reports how many times each display actually rendered.
func (m Model) RenderCounts() (color, letter int) {
	return m.colorMemo.Renders(), m.letterMemo.Renders()
}

func (m *Model) SetStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) SetError(err error) {
	if err == nil {
		m.status = ""
		m.statusErr = false
		return
	}
	m.status = err.Error()
	m.statusErr = true
}

func (m Model) stack(t Tree) widgets.VStack {
	return widgets.VStack{
		Widgets: []widgets.Widget{
			m.colorMemo.Bind(t.Color),
			m.letterMemo.Bind(t.Letter),
			t.Separator,
			t.Heading,
		},
		Spacing: bodySpacing,
	}
}

// bodyBox is the body's first screen row and size.
func (m Model) bodyBox() (top, width, height int) {
	top = headerRows + statusRows
	return top, max(1, m.width), max(0, m.height-top-footerRows)
}
