package layout

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Palette is the fill cycle in registry order
var Palette = []colorful.Color{
	mustHex("#3369e8"), // Blue
	mustHex("#d50f25"), // Red
	mustHex("#eeb211"), // Yellow
	mustHex("#009925"), // Green
}

// mustHex parses a "#rrggbb" literal, panicking on malformed input
func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ColorIndex returns the palette slot for segment i of n
// When n%len(Palette) == 1 the last segment shifts by one so it does not match the first across the seam
func ColorIndex(i, n int) int {
	idx := i
	if n%len(Palette) == 1 && i+1 == n {
		idx++
	}
	return idx % len(Palette)
}
