package widgets

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingValue   = errors.New("missing value")
	ErrMissingHandler = errors.New("missing handleChange")
)

// renderDisplay draws the trigger button with the current value beneath it.
func renderDisplay(label, value string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := strings.Split(buttonStyle.Render(label), "\n")
	lines = append(lines, valueStyle.Render(value))
	for i := range lines {
		lines[i] = padRight(lines[i], width)
	}
	return ClipHeight(strings.Join(lines, "\n"), height)
}

func validateProps(unit, field, value string, handler *Trigger) error {
	var errs []error
	if value == "" {
		errs = append(errs, fmt.Errorf("%s: %s: %w", unit, field, ErrMissingValue))
	}
	if handler == nil {
		errs = append(errs, fmt.Errorf("%s: %w", unit, ErrMissingHandler))
	}
	return errors.Join(errs...)
}
