package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbPanelText  = tcell.NewRGBColor(200, 200, 200) // Light gray
	RgbPanelTitle = tcell.NewRGBColor(255, 255, 255) // White
	RgbSelectedBg = tcell.NewRGBColor(50, 50, 70)    // Dim slate for the panel cursor
	RgbWeight     = tcell.NewRGBColor(140, 140, 140) // Gray weight column
	RgbHint       = tcell.NewRGBColor(110, 110, 120) // Placeholder text
	RgbInputText  = tcell.NewRGBColor(255, 255, 255) // White
	RgbCursor     = tcell.NewRGBColor(255, 165, 0)   // Orange input cursor
	RgbPointer    = tcell.NewRGBColor(255, 255, 255) // White pointer
	RgbEmptyText  = tcell.NewRGBColor(180, 180, 180) // Placeholder on empty wheel
	RgbStatusBar  = tcell.NewRGBColor(255, 255, 255) // White
	RgbStatusText = tcell.NewRGBColor(0, 0, 0)       // Dark text for mode indicator
	RgbDialogBg   = tcell.NewRGBColor(40, 42, 54)    // Dialog body
	RgbDialogEdge = tcell.NewRGBColor(255, 215, 0)   // Gold border
	RgbWinnerText = tcell.NewRGBColor(255, 255, 255) // White

	// Status bar backgrounds
	RgbModeNormalBg = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbModeInsertBg = tcell.NewRGBColor(144, 238, 144) // Light grass green
	RgbModeRenameBg = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbModeWinnerBg = tcell.NewRGBColor(255, 215, 0)   // Gold
	RgbModeSpinBg   = tcell.NewRGBColor(255, 192, 203) // Pink
)

// colorfulBackground is RgbBackground for blending
var colorfulBackground = colorful.Color{R: 26.0 / 255, G: 27.0 / 255, B: 38.0 / 255}

// colorfulWhite is the highlight blend target
var colorfulWhite = colorful.Color{R: 1, G: 1, B: 1}

const (
	// dimFactor pulls non-winning wedges toward the background
	dimFactor = 0.65

	// highlightFactor lifts the winning wedge toward white
	highlightFactor = 0.15

	// lightThreshold is the Lab lightness above which text turns dark
	lightThreshold = 0.6
)

// ToTcell converts a colorful color to a tcell true color
func ToTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Dim blends c toward the background
func Dim(c colorful.Color) colorful.Color {
	return c.BlendLab(colorfulBackground, dimFactor).Clamped()
}

// Highlight blends c toward white
func Highlight(c colorful.Color) colorful.Color {
	return c.BlendLab(colorfulWhite, highlightFactor).Clamped()
}

// TextOn returns a readable foreground for background c
func TextOn(c colorful.Color) tcell.Color {
	l, _, _ := c.Lab()
	if l > lightThreshold {
		return tcell.NewRGBColor(0, 0, 0)
	}
	return tcell.NewRGBColor(255, 255, 255)
}
