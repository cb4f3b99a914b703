package modes

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/spin-wheel/constants"
	"github.com/lixenwraith/spin-wheel/engine"
)

// InputHandler processes user input events
type InputHandler struct {
	ctx *engine.GameContext
}

// NewInputHandler creates a new input handler
func NewInputHandler(ctx *engine.GameContext) *InputHandler {
	return &InputHandler{ctx: ctx}
}

// HandleEvent processes a tcell event and returns false if the program should exit
func (h *InputHandler) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKeyEvent(ev)
	case *tcell.EventResize:
		h.ctx.HandleResize()
		return true
	}
	return true
}

// handleKeyEvent processes keyboard events
func (h *InputHandler) handleKeyEvent(ev *tcell.EventKey) bool {
	// Handle exit keys
	if ev.Key() == tcell.KeyCtrlQ || ev.Key() == tcell.KeyCtrlC {
		return false
	}

	// Sound toggle works in every mode
	if ev.Key() == tcell.KeyCtrlS {
		if h.ctx.ToggleSound() {
			h.ctx.SetStatusMessage("sound on")
		} else {
			h.ctx.SetStatusMessage("sound off")
		}
		return true
	}

	switch h.ctx.GetMode() {
	case engine.ModeInsert:
		return h.handleInsertMode(ev)
	case engine.ModeRename:
		return h.handleRenameMode(ev)
	case engine.ModeWinner:
		return h.handleWinnerMode(ev)
	default:
		return h.handleNormalMode(ev)
	}
}

// handleNormalMode handles list navigation and wheel commands
func (h *InputHandler) handleNormalMode(ev *tcell.EventKey) bool {
	ctx := h.ctx
	sess := ctx.Session

	switch ev.Key() {
	case tcell.KeyUp:
		ctx.MoveSelection(-1)
		return true
	case tcell.KeyDown:
		ctx.MoveSelection(1)
		return true
	case tcell.KeyEnter:
		sess.StartSpin()
		return true
	case tcell.KeyEscape:
		ctx.Overlay = false
		return true
	case tcell.KeyDelete:
		h.removeSelected()
		return true
	case tcell.KeyRune:
	default:
		return true
	}

	switch ev.Rune() {
	case 'q':
		return false
	case 'j':
		ctx.MoveSelection(1)
	case 'k':
		ctx.MoveSelection(-1)
	case 'g':
		ctx.Selected = 0
	case 'G':
		ctx.SelectLast()
	case 'a', 'i', 'o':
		if sess.IsFull() {
			ctx.SetStatusMessage(fmt.Sprintf(constants.FullHintText, constants.MaxChoices))
			return true
		}
		ctx.InputText = ctx.InputText[:0]
		ctx.SetMode(engine.ModeInsert)
	case 'r':
		c, ok := ctx.SelectedChoice()
		if !ok {
			return true
		}
		ctx.RenameID = c.ID
		ctx.InputText = append(ctx.InputText[:0], []rune(c.Label)...)
		ctx.SetMode(engine.ModeRename)
	case 'x', 'd':
		h.removeSelected()
	case '+', '=':
		if c, ok := ctx.SelectedChoice(); ok {
			sess.IncrementWeight(c.ID)
		}
	case '-':
		if c, ok := ctx.SelectedChoice(); ok {
			sess.DecrementWeight(c.ID)
		}
	case ' ':
		sess.StartSpin()
	case 'C':
		sess.ClearAll()
	case '?':
		ctx.Overlay = !ctx.Overlay
	}
	return true
}

func (h *InputHandler) removeSelected() {
	if c, ok := h.ctx.SelectedChoice(); ok {
		h.ctx.Session.RemoveChoice(c.ID)
		h.ctx.MoveSelection(0)
	}
}

// handleInsertMode edits the new choice buffer, Enter adds and stays in insert
func (h *InputHandler) handleInsertMode(ev *tcell.EventKey) bool {
	ctx := h.ctx

	switch ev.Key() {
	case tcell.KeyEscape:
		ctx.InputText = ctx.InputText[:0]
		ctx.SetMode(engine.ModeNormal)
	case tcell.KeyEnter:
		if _, err := ctx.Session.AddChoice(string(ctx.InputText)); err == nil {
			ctx.InputText = ctx.InputText[:0]
			ctx.SelectLast()
			if ctx.Session.IsFull() {
				ctx.SetMode(engine.ModeNormal)
			}
		}
	default:
		editBuffer(ctx, ev)
	}
	return true
}

// handleRenameMode edits the selected choice's label
func (h *InputHandler) handleRenameMode(ev *tcell.EventKey) bool {
	ctx := h.ctx

	switch ev.Key() {
	case tcell.KeyEscape:
		ctx.InputText = ctx.InputText[:0]
		ctx.SetMode(engine.ModeNormal)
	case tcell.KeyEnter:
		if ctx.Session.RenameChoice(ctx.RenameID, string(ctx.InputText)) {
			ctx.InputText = ctx.InputText[:0]
			ctx.SetMode(engine.ModeNormal)
		} else if _, ok := ctx.Session.Choice(ctx.RenameID); !ok {
			// Choice vanished, nothing left to rename
			ctx.InputText = ctx.InputText[:0]
			ctx.SetMode(engine.ModeNormal)
		}
	default:
		editBuffer(ctx, ev)
	}
	return true
}

// handleWinnerMode handles the result dialog
func (h *InputHandler) handleWinnerMode(ev *tcell.EventKey) bool {
	ctx := h.ctx

	switch ev.Key() {
	case tcell.KeyEnter, tcell.KeyEscape:
		ctx.Session.AcknowledgeWinner()
		ctx.SetMode(engine.ModeNormal)
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			ctx.Session.AcknowledgeWinner()
			ctx.SetMode(engine.ModeNormal)
		case 'd', 'x':
			ctx.Session.RemoveWinner()
			ctx.MoveSelection(0)
			ctx.SetMode(engine.ModeNormal)
		}
	}
	return true
}

// editBuffer applies a line-editing key to ctx.InputText
func editBuffer(ctx *engine.GameContext, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if n := len(ctx.InputText); n > 0 {
			ctx.InputText = ctx.InputText[:n-1]
		}
	case tcell.KeyCtrlU:
		ctx.InputText = ctx.InputText[:0]
	case tcell.KeyRune:
		if len(ctx.InputText) < constants.MaxLabelLength {
			ctx.InputText = append(ctx.InputText, ev.Rune())
		}
	}
}
