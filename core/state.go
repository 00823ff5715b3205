package core

const (
	InitialColor  = "#fff"
	InitialLetter = "start"
)

// State is the pair of cells the app owns. The two fields never depend on
// each other.
type State struct {
	Color  string
	Letter string
}

func NewState() State {
	return State{Color: InitialColor, Letter: InitialLetter}
}

// WithColor returns s with Color replaced.
func WithColor(s State, color string) State {
	s.Color = color
	return s
}

// WithLetter returns s with Letter replaced.
func WithLetter(s State, letter string) State {
	s.Letter = letter
	return s
}
