package engine

import (
	"math"

	"github.com/lixenwraith/spin-wheel/constants"
	"github.com/lixenwraith/spin-wheel/layout"
	"github.com/lixenwraith/spin-wheel/vmath"
)

// Rect is a cell-aligned screen region
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether cell (x, y) lies inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// bottomRows is the input line plus the status bar
const bottomRows = 2

// contentHeight is the height above the input line
func (ctx *GameContext) contentHeight() int {
	return max(0, ctx.Height-bottomRows)
}

// panelWidth is zero when the terminal is too narrow to fit both wheel and panel
func (ctx *GameContext) panelWidth() int {
	if ctx.Width < constants.PanelMinWidth*2 {
		return 0
	}
	return constants.PanelMinWidth
}

// WheelArea is the region the wheel is centered in
func (ctx *GameContext) WheelArea() Rect {
	return Rect{X: 0, Y: 0, Width: max(0, ctx.Width-ctx.panelWidth()), Height: ctx.contentHeight()}
}

// PanelArea is the choice list column, zero width when hidden
func (ctx *GameContext) PanelArea() Rect {
	pw := ctx.panelWidth()
	return Rect{X: ctx.Width - pw, Y: 0, Width: pw, Height: ctx.contentHeight()}
}

// InputRow is the row of the edit line
func (ctx *GameContext) InputRow() int {
	return ctx.Height - 2
}

// StatusRow is the bottom row
func (ctx *GameContext) StatusRow() int {
	return ctx.Height - 1
}

// Geometry fits the largest circle into the wheel area in virtual pixels
// One column right of the circle is kept free for the pointer, and the center is
// snapped to the middle of a row so the pointer row lines up with it
func (ctx *GameContext) Geometry() layout.Geometry {
	area := ctx.WheelArea()
	usableW := max(1, area.Width-2*constants.WheelMargin-1)
	usableH := max(1, area.Height-2)

	wPx := float64(usableW) * constants.CellWidthPx
	hPx := float64(usableH) * constants.CellHeightPx

	cy := float64(area.Y+1)*constants.CellHeightPx + hPx/2
	cy = (math.Floor(cy/constants.CellHeightPx) + 0.5) * constants.CellHeightPx

	return layout.Geometry{
		Center: vmath.Vec2{
			X: float64(area.X+constants.WheelMargin)*constants.CellWidthPx + wPx/2,
			Y: cy,
		},
		Radius: math.Min(wPx, hPx) / 2,
	}
}

// CellCenter maps a cell to the virtual pixel at its center
func CellCenter(x, y int) vmath.Vec2 {
	return vmath.Vec2{
		X: (float64(x) + 0.5) * constants.CellWidthPx,
		Y: (float64(y) + 0.5) * constants.CellHeightPx,
	}
}

// PixelToCell maps a virtual pixel to the cell containing it
func PixelToCell(p vmath.Vec2) (int, int) {
	return int(math.Floor(p.X / constants.CellWidthPx)), int(math.Floor(p.Y / constants.CellHeightPx))
}

// PointerCell is the first cell east of the rim on the center row
func PointerCell(g layout.Geometry) (int, int) {
	edge := g.Center.X + g.Radius
	x := int(math.Floor(edge/constants.CellWidthPx-0.5)) + 1
	_, y := PixelToCell(g.Center)
	return x, y
}
