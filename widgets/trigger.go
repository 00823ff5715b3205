package widgets

// Trigger is a zero-argument handler bound to a trigger control.
// Displays compare triggers by pointer, so one Trigger should live as long
// as the handler it wraps.
type Trigger struct {
	name string
	fire func()
}

func NewTrigger(name string, fire func()) *Trigger {
	return &Trigger{name: name, fire: fire}
}

func (t *Trigger) Name() string {
	if t == nil {
		return ""
	}
	return t.name
}

// Fire runs the handler and reports whether one ran. Nil triggers and
// triggers without a handler are no-ops.
func (t *Trigger) Fire() bool {
	if t == nil || t.fire == nil {
		return false
	}
	t.fire()
	return true
}
