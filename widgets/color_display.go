package widgets

const colorLabel = "color"

var _ Triggerable = ColorDisplay{}

// ColorDisplay shows the current color under the control that replaces it.
type ColorDisplay struct {
	Color        string
	HandleChange *Trigger
}

func (d ColorDisplay) Render(width, height int) string {
	return renderDisplay(colorLabel, d.Color, width, height)
}

func (d ColorDisplay) Trigger() *Trigger {
	return d.HandleChange
}

func (d ColorDisplay) ControlSize() (int, int) {
	return Button{Label: colorLabel}.Size()
}

// Validate reports missing props. Rendering does not depend on it.
func (d ColorDisplay) Validate() error {
	return validateProps("color display", "color", d.Color, d.HandleChange)
}
