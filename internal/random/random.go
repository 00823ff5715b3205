// Package random provides the color and letter providers and their seeds.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette names the region of color space colors are drawn from.
type Palette string

const (
	PaletteHappy Palette = "happy"
	PaletteWarm  Palette = "warm"
	PaletteAny   Palette = "any"
)

// DefaultAlphabet is the set of letters drawn from when none is configured.
const DefaultAlphabet = "abcdefghijklmnopqrstuvwxyz"

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// NewSource returns a PCG generator for seed. Generators are not safe for
// concurrent use; providers built on one must stay on a single goroutine.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func ParsePalette(s string) (Palette, error) {
	switch p := Palette(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return PaletteHappy, nil
	case PaletteHappy, PaletteWarm, PaletteAny:
		return p, nil
	default:
		return "", fmt.Errorf("unknown palette %q (want happy, warm or any)", s)
	}
}

// Colors returns a provider of "#rrggbb" colors from the palette.
func Colors(rng *rand.Rand, p Palette) func() string {
	switch p {
	case PaletteWarm:
		return func() string { return validHcl(rng, 0.1, 0.2).Hex() }
	case PaletteAny:
		return func() string {
			return colorful.Color{R: rng.Float64(), G: rng.Float64(), B: rng.Float64()}.Hex()
		}
	default:
		return func() string { return validHcl(rng, 0.5, 0.5).Hex() }
	}
}

// validHcl samples HCL with chroma in [c, c+0.3) and luminance in [l, l+0.3)
// until the color lands inside the RGB gamut.
func validHcl(rng *rand.Rand, c, l float64) colorful.Color {
	for {
		col := colorful.Hcl(rng.Float64()*360.0, c+rng.Float64()*0.3, l+rng.Float64()*0.3)
		if col.IsValid() {
			return col
		}
	}
}

// Letters returns a provider of single letters drawn uniformly from the
// runes of alphabet. Repeated runes weigh the draw.
func Letters(rng *rand.Rand, alphabet string) (func() string, error) {
	runes := []rune(strings.TrimSpace(alphabet))
	if len(runes) == 0 {
		return nil, fmt.Errorf("letter alphabet is empty")
	}
	return func() string {
		return string(runes[rng.IntN(len(runes))])
	}, nil
}
