package engine

import (
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/spin-wheel/choice"
	"github.com/lixenwraith/spin-wheel/constants"
	"github.com/lixenwraith/spin-wheel/session"
)

// SoundPlayer is the subset of audio.SoundManager the context drives
type SoundPlayer interface {
	PlayTick()
	PlayWinner()
	PlayError()
	PlayWhoosh()
}

// GameContext holds the session and all presentation state
type GameContext struct {
	// ===== Immutable After Init =====

	Screen  tcell.Screen
	Session *session.Session
	Logger  *slog.Logger

	// ===== Atomic =====

	SoundEnabled atomic.Bool
	mode         atomic.Int32

	// ===== Main-Loop Exclusive =====

	Width, Height int

	// Sound is nil when audio could not be initialized
	Sound SoundPlayer

	// InputText is the edit buffer of Insert and Rename modes
	InputText []rune

	// RenameID is the choice being renamed in ModeRename
	RenameID choice.ID

	// Selected is the highlighted panel row, clamped to the choice count
	Selected int

	// LastFrame is the most recent session snapshot handed to the renderer
	LastFrame session.Frame

	// Overlay shows the key help over the wheel
	Overlay bool

	statusMessage string
	statusTime    time.Time
	now           func() time.Time
}

// NewGameContext creates a context bound to screen and sess, and subscribes to session events
func NewGameContext(screen tcell.Screen, sess *session.Session, logger *slog.Logger) *GameContext {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	ctx := &GameContext{
		Screen:  screen,
		Session: sess,
		Logger:  logger,
		now:     time.Now,
	}
	if screen != nil {
		ctx.Width, ctx.Height = screen.Size()
	}
	ctx.SetMode(ModeNormal)
	ctx.SoundEnabled.Store(true)
	sess.SetEventHandler(ctx.handleSessionEvent)
	return ctx
}

// ===== Mode =====

// GetMode returns the current input mode
func (ctx *GameContext) GetMode() GameMode {
	return GameMode(ctx.mode.Load())
}

// SetMode switches the input mode
func (ctx *GameContext) SetMode(m GameMode) {
	ctx.mode.Store(int32(m))
}

// ===== Status =====

// SetStatusMessage shows msg in the status bar for StatusMessageTimeout
func (ctx *GameContext) SetStatusMessage(msg string) {
	ctx.statusMessage = msg
	ctx.statusTime = ctx.now()
}

// StatusMessage returns the current message, empty once expired
func (ctx *GameContext) StatusMessage() string {
	if ctx.statusMessage == "" {
		return ""
	}
	if ctx.now().Sub(ctx.statusTime) >= constants.StatusMessageTimeout {
		ctx.statusMessage = ""
	}
	return ctx.statusMessage
}

// StatusRemaining returns how long the current message stays on screen
// Used to arm a one-shot redraw at expiry
func (ctx *GameContext) StatusRemaining() (time.Duration, bool) {
	if ctx.StatusMessage() == "" {
		return 0, false
	}
	return constants.StatusMessageTimeout - ctx.now().Sub(ctx.statusTime), true
}

// NeedsFrame reports whether a frame tick must redraw: pending input or a moving wheel
// Status expiry is not polled here, see StatusRemaining
func (ctx *GameContext) NeedsFrame(dirty bool) bool {
	return dirty || ctx.Session.IsSpinning()
}

// ===== Sound =====

// ToggleSound flips sound effects on or off and returns the new state
func (ctx *GameContext) ToggleSound() bool {
	enabled := !ctx.SoundEnabled.Load()
	ctx.SoundEnabled.Store(enabled)
	return enabled
}

func (ctx *GameContext) sound() SoundPlayer {
	if ctx.Sound == nil || !ctx.SoundEnabled.Load() {
		return nil
	}
	return ctx.Sound
}

// ===== Selection =====

// SelectedChoice returns the choice under the panel cursor
func (ctx *GameContext) SelectedChoice() (choice.Choice, bool) {
	choices := ctx.Session.Choices()
	ctx.clampSelection(len(choices))
	if len(choices) == 0 {
		return choice.Choice{}, false
	}
	return choices[ctx.Selected], true
}

// MoveSelection moves the panel cursor by delta, clamped to the list
func (ctx *GameContext) MoveSelection(delta int) {
	ctx.Selected += delta
	ctx.clampSelection(ctx.Session.Len())
}

// SelectLast moves the panel cursor to the newest choice
func (ctx *GameContext) SelectLast() {
	ctx.Selected = ctx.Session.Len() - 1
	ctx.clampSelection(ctx.Session.Len())
}

func (ctx *GameContext) clampSelection(n int) {
	if ctx.Selected >= n {
		ctx.Selected = n - 1
	}
	if ctx.Selected < 0 {
		ctx.Selected = 0
	}
}

// ===== Frame =====

// HandleResize refreshes the terminal dimensions
func (ctx *GameContext) HandleResize() {
	if ctx.Screen != nil {
		ctx.Width, ctx.Height = ctx.Screen.Size()
	}
}

// Update runs one frame: a spin tick, then a fresh layout for the current screen
// Returns true while the wheel needs more frames
func (ctx *GameContext) Update() bool {
	more := ctx.Session.Tick()
	ctx.LastFrame = ctx.Session.Frame(ctx.Geometry())
	ctx.clampSelection(ctx.Session.Len())
	if ctx.GetMode() == ModeWinner && !ctx.LastFrame.HasWinner {
		ctx.SetMode(ModeNormal)
	}
	return more
}

// ===== Events =====

func (ctx *GameContext) handleSessionEvent(ev session.Event) {
	sp := ctx.sound()
	switch ev.Type {
	case session.EventSegmentCrossed:
		if sp != nil {
			sp.PlayTick()
		}
	case session.EventResolved:
		ctx.SetMode(ModeWinner)
		ctx.InputText = ctx.InputText[:0]
		if sp != nil {
			sp.PlayWinner()
		}
	case session.EventRejected:
		ctx.SetStatusMessage(ev.Err.Error())
		if sp != nil {
			sp.PlayError()
		}
	case session.EventCleared:
		ctx.Selected = 0
		if sp != nil {
			sp.PlayWhoosh()
		}
	case session.EventSpinStarted:
		ctx.Logger.Debug("frame loop spinning")
	}
}
