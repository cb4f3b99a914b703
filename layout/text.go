package layout

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/spin-wheel/constants"
)

// TextMeasurer returns the bounding box of text rendered at a font size
type TextMeasurer interface {
	Measure(text string, size int) (width, height float64)
}

// ProportionalMeasurer sizes text from its display cell count
// Wide runes (CJK, emoji) count as two cells
type ProportionalMeasurer struct {
	Advance float64
	Line    float64
}

// DefaultMeasurer uses the GlyphAdvance and LineHeight constants
var DefaultMeasurer = ProportionalMeasurer{
	Advance: constants.GlyphAdvance,
	Line:    constants.LineHeight,
}

func (m ProportionalMeasurer) Measure(text string, size int) (float64, float64) {
	cells := runewidth.StringWidth(text)
	return float64(cells) * float64(size) * m.Advance, float64(size) * m.Line
}

// TruncateLabel cuts labels longer than LabelTruncateLength runes and appends the ellipsis
func TruncateLabel(label string) string {
	if utf8.RuneCountInString(label) <= constants.LabelTruncateLength {
		return label
	}
	runes := []rune(label)
	return string(runes[:constants.LabelTruncateLength]) + constants.LabelEllipsis
}

// FitFontSize shrinks from MaxFontSize until the text fits the wedge, floored at MinFontSize
// Width must fit TextRadiusFactor*radius, height must fit ChordFitFactor*chord
// A chord under one unit (single full-circle wedge) is replaced by the radius
func FitFontSize(text string, radius, chord float64, m TextMeasurer) int {
	if m == nil {
		m = DefaultMeasurer
	}
	maxWidth := radius * constants.TextRadiusFactor
	fitChord := chord
	if fitChord < 1 {
		fitChord = radius
	}
	maxHeight := fitChord * constants.ChordFitFactor

	size := constants.MaxFontSize
	for {
		w, h := m.Measure(text, size)
		if (w <= maxWidth && h <= maxHeight) || size <= constants.MinFontSize {
			return size
		}
		size--
	}
}
