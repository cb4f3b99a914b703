package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/spin-wheel/constants"
	"github.com/lixenwraith/spin-wheel/engine"
	"github.com/lixenwraith/spin-wheel/layout"
	"github.com/lixenwraith/spin-wheel/session"
	"github.com/lixenwraith/spin-wheel/vmath"
)

// TerminalRenderer handles all terminal rendering
type TerminalRenderer struct {
	screen tcell.Screen
	width  int
	height int
}

// NewTerminalRenderer creates a new terminal renderer
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{screen: screen}
}

// RenderFrame draws ctx.LastFrame and the surrounding UI
func (r *TerminalRenderer) RenderFrame(ctx *engine.GameContext) {
	r.width, r.height = ctx.Width, ctx.Height
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)

	r.screen.Clear()
	r.fill(defaultStyle)

	frame := ctx.LastFrame
	if frame.Empty() {
		r.drawEmptyWheel(ctx, defaultStyle)
	} else {
		r.drawWheel(ctx, frame, defaultStyle)
		r.drawLabels(frame)
		r.drawPointer(frame, defaultStyle)
	}

	r.drawPanel(ctx, frame, defaultStyle)
	r.drawInputLine(ctx, frame, defaultStyle)
	r.drawStatusBar(ctx, frame, defaultStyle)

	if ctx.GetMode() == engine.ModeWinner && frame.HasWinner {
		r.drawWinnerDialog(ctx, frame)
	}
	if ctx.Overlay {
		r.drawHelp(ctx)
	}

	r.screen.Show()
}

func (r *TerminalRenderer) fill(style tcell.Style) {
	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// drawText writes s from (x, y), clipped at maxX, and returns the next free column
// Wide runes take two cells
func (r *TerminalRenderer) drawText(x, y, maxX int, s string, style tcell.Style) int {
	if y < 0 || y >= r.height {
		return x
	}
	for _, ch := range s {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if x+w > maxX || x+w > r.width {
			break
		}
		if x >= 0 {
			r.screen.SetContent(x, y, ch, nil, style)
		}
		x += w
	}
	return x
}

// drawCentered writes s centered in [x0, x0+width)
func (r *TerminalRenderer) drawCentered(x0, width, y int, s string, style tcell.Style) {
	s = runewidth.Truncate(s, width, "")
	x := x0 + (width-runewidth.StringWidth(s))/2
	r.drawText(x, y, x0+width, s, style)
}

// ===== Wheel =====

func (r *TerminalRenderer) drawEmptyWheel(ctx *engine.GameContext, defaultStyle tcell.Style) {
	area := ctx.WheelArea()
	if area.Height <= 0 {
		return
	}
	style := defaultStyle.Foreground(RgbEmptyText).Italic(true)
	r.drawCentered(area.X, area.Width, area.Y+area.Height/2, constants.EmptyWheelText, style)
}

// wedgeStyle is the fill of segment i, dimmed for losers while a winner is shown
func wedgeStyle(frame session.Frame, seg layout.Segment, defaultStyle tcell.Style) tcell.Style {
	c := seg.Color
	if frame.HasWinner {
		if seg.ID == frame.Winner.ID {
			c = Highlight(c)
		} else {
			c = Dim(c)
		}
	}
	return defaultStyle.Background(ToTcell(c)).Foreground(TextOn(c))
}

// drawWheel fills every cell whose center lies on the disc with its wedge color
func (r *TerminalRenderer) drawWheel(ctx *engine.GameContext, frame session.Frame, defaultStyle tcell.Style) {
	w := frame.Layout
	geom := w.Geometry
	area := ctx.WheelArea()

	styles := make([]tcell.Style, len(w.Segments))
	for i, seg := range w.Segments {
		styles[i] = wedgeStyle(frame, seg, defaultStyle)
	}

	for y := area.Y; y < area.Y+area.Height; y++ {
		for x := area.X; x < area.X+area.Width; x++ {
			p := engine.CellCenter(x, y)
			if !geom.Contains(p) {
				continue
			}
			idx := w.SegmentAt(vmath.Angle(vmath.V2Sub(p, geom.Center)))
			if idx < 0 {
				continue
			}
			r.screen.SetContent(x, y, constants.WheelChar, nil, styles[idx])
		}
	}
}

// labelCells is how many columns a label may use on the wheel
func labelCells(geom layout.Geometry) int {
	return int(geom.Radius * constants.TextRadiusFactor / constants.CellWidthPx)
}

// drawLabels writes wedge labels centered on their anchors
// Labels that would overlap an earlier one are skipped
func (r *TerminalRenderer) drawLabels(frame session.Frame) {
	w := frame.Layout
	geom := w.Geometry
	maxCells := labelCells(geom)
	if maxCells <= 0 {
		return
	}

	taken := make(map[[2]int]bool)
	for _, seg := range w.Segments {
		text := runewidth.Truncate(seg.DisplayLabel, maxCells, "")
		width := runewidth.StringWidth(text)
		if width == 0 {
			continue
		}
		ax, ay := engine.PixelToCell(seg.LabelAnchor)
		x0 := ax - width/2

		if !r.labelFits(geom, taken, x0, ay, width) {
			continue
		}
		for x := x0 - 1; x <= x0+width; x++ {
			taken[[2]int{x, ay}] = true
		}

		style := wedgeStyle(frame, seg, tcell.StyleDefault)
		if seg.FontSize > (constants.MaxFontSize+constants.MinFontSize)/2 {
			style = style.Bold(true)
		}
		r.drawText(x0, ay, x0+width, text, style)
	}
}

// labelFits checks that every cell of the label is free and on the disc
func (r *TerminalRenderer) labelFits(geom layout.Geometry, taken map[[2]int]bool, x0, y, width int) bool {
	for x := x0; x < x0+width; x++ {
		if taken[[2]int{x, y}] || !geom.Contains(engine.CellCenter(x, y)) {
			return false
		}
	}
	return true
}

func (r *TerminalRenderer) drawPointer(frame session.Frame, defaultStyle tcell.Style) {
	x, y := engine.PointerCell(frame.Layout.Geometry)
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return
	}
	style := defaultStyle.Foreground(RgbPointer).Bold(true)
	if frame.PointerIndex >= 0 {
		style = style.Foreground(ToTcell(frame.Layout.Segments[frame.PointerIndex].Color))
	}
	r.screen.SetContent(x, y, constants.PointerChar, nil, style)
}

// ===== Panel =====

// drawPanel lists the choices with their color, label and weight
func (r *TerminalRenderer) drawPanel(ctx *engine.GameContext, frame session.Frame, defaultStyle tcell.Style) {
	area := ctx.PanelArea()
	if area.Width == 0 || area.Height == 0 {
		return
	}
	right := area.X + area.Width

	title := fmt.Sprintf(" Choices %d/%d ", ctx.Session.Len(), constants.MaxChoices)
	r.drawText(area.X+1, area.Y, right, title, defaultStyle.Foreground(RgbPanelTitle).Bold(true))

	segs := frame.Segments()
	rows := area.Height - 1
	if rows <= 0 {
		return
	}

	// Scroll so the selection stays visible
	first := 0
	if ctx.Selected >= rows {
		first = ctx.Selected - rows + 1
	}

	for i, c := range ctx.Session.Choices() {
		if i < first {
			continue
		}
		y := area.Y + 1 + i - first
		if y >= area.Y+area.Height {
			break
		}

		rowStyle := defaultStyle.Foreground(RgbPanelText)
		if i == ctx.Selected {
			rowStyle = rowStyle.Background(RgbSelectedBg)
			for x := area.X; x < right; x++ {
				r.screen.SetContent(x, y, ' ', nil, rowStyle)
			}
			r.screen.SetContent(area.X, y, '>', nil, rowStyle.Foreground(RgbCursor))
		}

		if i < len(segs) {
			r.screen.SetContent(area.X+1, y, '█', nil, rowStyle.Foreground(ToTcell(segs[i].Color)))
		}

		weight := fmt.Sprintf("x%d", c.Weight)
		labelMax := area.Width - 4 - len(weight)
		label := runewidth.Truncate(c.Label, labelMax, constants.LabelEllipsis)
		labelStyle := rowStyle
		if frame.HasWinner && frame.Winner.ID == c.ID {
			labelStyle = labelStyle.Foreground(RgbDialogEdge).Bold(true)
		}
		r.drawText(area.X+3, y, right, label, labelStyle)
		r.drawText(right-len(weight)-1, y, right, weight, rowStyle.Foreground(RgbWeight))
	}
}

// ===== Input & Status =====

func (r *TerminalRenderer) drawInputLine(ctx *engine.GameContext, frame session.Frame, defaultStyle tcell.Style) {
	y := ctx.InputRow()
	if y < 0 {
		return
	}

	mode := ctx.GetMode()
	x := r.drawText(0, y, r.width, "> ", defaultStyle.Foreground(RgbHint))

	if mode == engine.ModeInsert || mode == engine.ModeRename {
		text := string(ctx.InputText)
		// Keep the tail visible when the buffer is wider than the line
		if avail := r.width - x - 1; runewidth.StringWidth(text) > avail && avail > 0 {
			text = runewidth.TruncateLeft(text, runewidth.StringWidth(text)-avail, "")
		}
		x = r.drawText(x, y, r.width, text, defaultStyle.Foreground(RgbInputText))
		if x < r.width {
			r.screen.SetContent(x, y, ' ', nil, defaultStyle.Background(RgbCursor))
		}
		return
	}

	hint := constants.AddHintText
	if frame.Full {
		hint = fmt.Sprintf(constants.FullHintText, constants.MaxChoices)
	}
	r.drawText(x, y, r.width, hint, defaultStyle.Foreground(RgbHint).Italic(true))
}

// drawStatusBar draws the mode indicator, status message and sound state
func (r *TerminalRenderer) drawStatusBar(ctx *engine.GameContext, frame session.Frame, defaultStyle tcell.Style) {
	y := ctx.StatusRow()
	if y < 0 {
		return
	}

	mode := ctx.GetMode()
	modeText := mode.Indicator()
	var modeBg tcell.Color
	switch {
	case frame.Spinning:
		modeText = constants.ModeTextSpin
		modeBg = RgbModeSpinBg
	case mode == engine.ModeInsert:
		modeBg = RgbModeInsertBg
	case mode == engine.ModeRename:
		modeBg = RgbModeRenameBg
	case mode == engine.ModeWinner:
		modeBg = RgbModeWinnerBg
	default:
		modeBg = RgbModeNormalBg
	}
	x := r.drawText(0, y, r.width, modeText, defaultStyle.Foreground(RgbStatusText).Background(modeBg))

	sound := " sound off "
	if ctx.SoundEnabled.Load() {
		sound = " sound on "
	}
	right := r.width - runewidth.StringWidth(sound)

	if msg := ctx.StatusMessage(); msg != "" {
		r.drawText(x+1, y, right, msg, defaultStyle.Foreground(RgbStatusBar))
	}
	if right > x {
		r.drawText(right, y, r.width, sound, defaultStyle.Foreground(RgbHint))
	}
}

// ===== Overlays =====

// box draws a bordered rectangle filled with style
func (r *TerminalRenderer) box(x0, y0, w, h int, border, body tcell.Style) {
	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			ch := ' '
			st := body
			switch {
			case y == y0 && x == x0:
				ch, st = '┌', border
			case y == y0 && x == x0+w-1:
				ch, st = '┐', border
			case y == y0+h-1 && x == x0:
				ch, st = '└', border
			case y == y0+h-1 && x == x0+w-1:
				ch, st = '┘', border
			case y == y0 || y == y0+h-1:
				ch, st = '─', border
			case x == x0 || x == x0+w-1:
				ch, st = '│', border
			}
			if x >= 0 && x < r.width && y >= 0 && y < r.height {
				r.screen.SetContent(x, y, ch, nil, st)
			}
		}
	}
}

const (
	winnerTitle = "We have a winner!"
	winnerHint  = "[Enter] close  [d] remove"
)

// drawWinnerDialog shows the resolved choice centered over the wheel
func (r *TerminalRenderer) drawWinnerDialog(ctx *engine.GameContext, frame session.Frame) {
	area := ctx.WheelArea()
	w := min(area.Width, max(runewidth.StringWidth(winnerHint), runewidth.StringWidth(winnerTitle))+6)
	h := 7
	if w < 4 || area.Height < h {
		return
	}
	x0 := area.X + (area.Width-w)/2
	y0 := area.Y + (area.Height-h)/2

	body := tcell.StyleDefault.Background(RgbDialogBg).Foreground(RgbPanelText)
	r.box(x0, y0, w, h, body.Foreground(RgbDialogEdge), body)

	inner := w - 2
	r.drawCentered(x0+1, inner, y0+1, winnerTitle, body.Foreground(RgbDialogEdge).Bold(true))

	label := runewidth.Truncate(frame.Winner.Label, inner-2, constants.LabelEllipsis)
	winStyle := body.Foreground(RgbWinnerText).Bold(true)
	for _, seg := range frame.Segments() {
		if seg.ID == frame.Winner.ID {
			winStyle = body.Foreground(ToTcell(Highlight(seg.Color))).Bold(true)
			break
		}
	}
	r.drawCentered(x0+1, inner, y0+3, label, winStyle)
	r.drawCentered(x0+1, inner, y0+5, winnerHint, body.Foreground(RgbHint))
}

var helpLines = []string{
	"j/k      select",
	"a        add choices",
	"r        rename",
	"+/-      weight",
	"x        remove",
	"space    spin",
	"C        clear wheel",
	"Ctrl+S   sound",
	"q        quit",
}

// drawHelp lists the key bindings over the wheel
func (r *TerminalRenderer) drawHelp(ctx *engine.GameContext) {
	area := ctx.WheelArea()
	w := 0
	for _, l := range helpLines {
		w = max(w, runewidth.StringWidth(l))
	}
	w += 4
	h := len(helpLines) + 2
	if area.Width < w || area.Height < h {
		return
	}
	x0 := area.X + (area.Width-w)/2
	y0 := area.Y + (area.Height-h)/2

	body := tcell.StyleDefault.Background(RgbDialogBg).Foreground(RgbPanelText)
	r.box(x0, y0, w, h, body.Foreground(RgbPanelTitle), body)
	for i, l := range helpLines {
		r.drawText(x0+2, y0+1+i, x0+w-1, l, body)
	}
}
