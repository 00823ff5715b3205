package widgets

// Widget renders itself into the given cell box.
type Widget interface {
	Render(width, height int) string
}

// Triggerable is a widget carrying a trigger control anchored at its
// top-left corner.
type Triggerable interface {
	Widget
	Trigger() *Trigger
	ControlSize() (width, height int)
}
