package widgets

const letterLabel = "letter"

var _ Triggerable = LetterDisplay{}

// LetterDisplay shows the current letter under the control that replaces it.
type LetterDisplay struct {
	Letter       string
	HandleChange *Trigger
}

func (d LetterDisplay) Render(width, height int) string {
	return renderDisplay(letterLabel, d.Letter, width, height)
}

func (d LetterDisplay) Trigger() *Trigger {
	return d.HandleChange
}

func (d LetterDisplay) ControlSize() (int, int) {
	return Button{Label: letterLabel}.Size()
}

func (d LetterDisplay) Validate() error {
	return validateProps("letter display", "letter", d.Letter, d.HandleChange)
}
