package widgets

import (
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestColorDisplayRendersValueUnderButton(t *testing.T) {
	d := ColorDisplay{Color: "#ff0000", HandleChange: NewTrigger("color", func() {})}
	lines := strings.Split(ansi.Strip(d.Render(30, 10)), "\n")
	if len(lines) != 4 {
		t.Fatalf("line count = %d, want 4: %q", len(lines), lines)
	}
	if !strings.Contains(lines[1], "color") {
		t.Fatalf("expected button label on the middle button row, got %q", lines[1])
	}
	if strings.TrimSpace(lines[3]) != "#ff0000" {
		t.Fatalf("value row = %q, want #ff0000", lines[3])
	}
}

func TestLetterDisplayRendersValue(t *testing.T) {
	d := LetterDisplay{Letter: "Q", HandleChange: NewTrigger("letter", func() {})}
	out := ansi.Strip(d.Render(30, 10))
	if !strings.Contains(out, "letter") {
		t.Fatalf("expected letter label in %q", out)
	}
	lines := strings.Split(out, "\n")
	if strings.TrimSpace(lines[len(lines)-1]) != "Q" {
		t.Fatalf("value row = %q, want Q", lines[len(lines)-1])
	}
}

func TestDisplayLinesArePaddedToWidth(t *testing.T) {
	d := LetterDisplay{Letter: "x", HandleChange: NewTrigger("letter", func() {})}
	for i, line := range strings.Split(d.Render(24, 10), "\n") {
		if w := ansi.StringWidth(line); w != 24 {
			t.Fatalf("line %d width = %d, want 24", i, w)
		}
	}
}

func TestControlSizeMatchesButton(t *testing.T) {
	w, h := ColorDisplay{}.ControlSize()
	if h != 3 {
		t.Fatalf("control height = %d, want 3", h)
	}
	if want := len("color") + 4; w != want {
		t.Fatalf("control width = %d, want %d", w, want)
	}
}

func TestValidateReportsMissingProps(t *testing.T) {
	err := ColorDisplay{}.Validate()
	if !errors.Is(err, ErrMissingValue) || !errors.Is(err, ErrMissingHandler) {
		t.Fatalf("expected both missing-prop errors, got %v", err)
	}
	err = LetterDisplay{Letter: "a"}.Validate()
	if errors.Is(err, ErrMissingValue) || !errors.Is(err, ErrMissingHandler) {
		t.Fatalf("expected only missing handler, got %v", err)
	}
	ok := LetterDisplay{Letter: "a", HandleChange: NewTrigger("letter", nil)}
	if err := ok.Validate(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestMissingHandlerRendersAndNoops(t *testing.T) {
	d := ColorDisplay{}
	out := ansi.Strip(d.Render(20, 10))
	if !strings.Contains(out, "color") {
		t.Fatalf("expected button to render without props, got %q", out)
	}
	if d.Trigger().Fire() {
		t.Fatalf("nil trigger must not report a fire")
	}
}

func TestTriggerFire(t *testing.T) {
	calls := 0
	tr := NewTrigger("color", func() { calls++ })
	if !tr.Fire() || !tr.Fire() {
		t.Fatalf("expected trigger to fire")
	}
	if calls != 2 {
		t.Fatalf("calls = %d, want 2", calls)
	}
	if tr.Name() != "color" {
		t.Fatalf("name = %q", tr.Name())
	}
	if NewTrigger("empty", nil).Fire() {
		t.Fatalf("trigger without handler must not fire")
	}
	var nilTrigger *Trigger
	if nilTrigger.Fire() || nilTrigger.Name() != "" {
		t.Fatalf("nil trigger must be inert")
	}
}

func TestHeadingUsesColorAsForeground(t *testing.T) {
	h := Heading{Text: "start", Color: "#ff0000"}
	if got := h.Style().GetForeground(); got != lipgloss.Color("#ff0000") {
		t.Fatalf("foreground = %v, want #ff0000", got)
	}
	if !h.Style().GetBold() {
		t.Fatalf("heading should be bold")
	}
	if out := ansi.Strip(h.Render(10, 1)); strings.TrimSpace(out) != "start" {
		t.Fatalf("heading text = %q", out)
	}
	if _, ok := (Heading{Text: "x"}).Style().GetForeground().(lipgloss.NoColor); !ok {
		t.Fatalf("empty color should leave foreground unset")
	}
}

func TestSeparatorSpansWidth(t *testing.T) {
	out := ansi.Strip(Separator{}.Render(12, 1))
	if out != strings.Repeat("─", 12) {
		t.Fatalf("separator = %q", out)
	}
}
