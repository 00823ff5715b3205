package core

// ColorProvider returns a fresh color value on each call.
type ColorProvider func() string

// LetterProvider returns a fresh letter value on each call.
type LetterProvider func() string
