// Package session owns the choice registry and the spin engine and exposes
// the commands and per-frame output used by the presentation layer
package session

import (
	"errors"
	"log/slog"
	"math/rand/v2"

	"github.com/lixenwraith/spin-wheel/choice"
	"github.com/lixenwraith/spin-wheel/layout"
	"github.com/lixenwraith/spin-wheel/vmath"
	"github.com/lixenwraith/spin-wheel/wheel"
)

var (
	// ErrSpinning rejects registry mutations while the wheel turns
	ErrSpinning = errors.New("wheel is spinning")

	// ErrEmptyLabel rejects choices whose cleaned label is empty
	ErrEmptyLabel = errors.New("empty label")
)

// Options configures a Session, zero value is usable
type Options struct {
	Rand     *rand.Rand
	Logger   *slog.Logger
	Measurer layout.TextMeasurer
	OnEvent  func(Event)
}

// Session is the single owner of all wheel state
// Every method runs on the frame goroutine, between ticks
type Session struct {
	registry *choice.Registry
	engine   *wheel.Engine
	measurer layout.TextMeasurer
	logger   *slog.Logger
	onEvent  func(Event)

	geometry     layout.Geometry
	last         *layout.Wheel
	lastRevision uint64
	lastPointer  choice.ID
}

// New creates an empty session with an idle engine
func New(opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	measurer := opts.Measurer
	if measurer == nil {
		measurer = layout.DefaultMeasurer
	}

	engine := wheel.NewEngine(opts.Rand)
	s := &Session{
		registry: choice.NewRegistry(engine),
		engine:   engine,
		measurer: measurer,
		logger:   logger,
		onEvent:  opts.OnEvent,
		geometry: defaultGeometry,
	}
	return s
}

// SetEventHandler replaces the event callback, nil disables events
func (s *Session) SetEventHandler(fn func(Event)) {
	s.onEvent = fn
}

// ===== COMMANDS =====

// AddChoice cleans text and appends it as a new choice with weight 1
func (s *Session) AddChoice(text string) (choice.ID, error) {
	if s.engine.IsSpinning() {
		s.reject("add", ErrSpinning)
		return 0, ErrSpinning
	}
	label := choice.CleanInput(text)
	if label == "" {
		s.reject("add", ErrEmptyLabel)
		return 0, ErrEmptyLabel
	}
	id, err := s.registry.Add(label)
	if err != nil {
		s.reject("add", err)
		return 0, err
	}
	s.logger.Debug("choice added", "id", id, "label", label, "count", s.registry.Len())
	return id, nil
}

// RemoveChoice deletes a choice, clearing the winner if it was the one removed
func (s *Session) RemoveChoice(id choice.ID) bool {
	if s.engine.IsSpinning() {
		s.reject("remove", ErrSpinning)
		return false
	}
	if !s.registry.Remove(id) {
		return false
	}
	s.engine.ForgetWinner(id)
	s.logger.Debug("choice removed", "id", id, "count", s.registry.Len())
	return true
}

// RenameChoice replaces the label, an empty cleaned label is rejected
func (s *Session) RenameChoice(id choice.ID, text string) bool {
	if s.engine.IsSpinning() {
		s.reject("rename", ErrSpinning)
		return false
	}
	label := choice.CleanInput(text)
	if label == "" {
		s.reject("rename", ErrEmptyLabel)
		return false
	}
	if !s.registry.Rename(id, label) {
		return false
	}
	s.logger.Debug("choice renamed", "id", id, "label", label)
	return true
}

// IncrementWeight raises the weight by one, no-op at MaxWeight
func (s *Session) IncrementWeight(id choice.ID) bool {
	return s.changeWeight(id, 1)
}

// DecrementWeight lowers the weight by one, no-op at 1
func (s *Session) DecrementWeight(id choice.ID) bool {
	return s.changeWeight(id, -1)
}

func (s *Session) changeWeight(id choice.ID, delta int) bool {
	if s.engine.IsSpinning() {
		s.reject("weight", ErrSpinning)
		return false
	}
	w, changed := s.registry.SetWeight(id, delta)
	if changed {
		s.logger.Debug("weight changed", "id", id, "weight", w)
	}
	return changed
}

// StartSpin launches the wheel, no-op when empty, spinning or showing a winner
func (s *Session) StartSpin() bool {
	if !s.engine.StartSpin(s.registry.Len()) {
		s.logger.Debug("spin rejected", "state", s.engine.State().String(), "count", s.registry.Len())
		return false
	}
	s.lastPointer = 0
	s.logger.Debug("spin started", "velocity", s.engine.Velocity(), "rotation", s.engine.Rotation())
	s.emit(Event{Type: EventSpinStarted})
	return true
}

// AcknowledgeWinner closes the result
func (s *Session) AcknowledgeWinner() bool {
	return s.engine.Acknowledge()
}

// RemoveWinner closes the result and deletes the winning choice
func (s *Session) RemoveWinner() bool {
	id, ok := s.engine.RemoveWinner(s.registry)
	if ok {
		s.logger.Debug("winner removed", "id", id, "count", s.registry.Len())
	}
	return ok
}

// ClearAll empties the registry and fully resets the engine
// Also aborts a running spin, reserved for the explicit clear action
func (s *Session) ClearAll() {
	s.registry.Reset()
	s.engine.Clear()
	s.last = nil
	s.lastPointer = 0
	s.logger.Debug("wheel cleared")
	s.emit(Event{Type: EventCleared})
}

// Tick advances the spin by one frame, returns true while more ticks are needed
func (s *Session) Tick() bool {
	if !s.engine.IsSpinning() {
		return false
	}
	more := s.engine.Tick(s)
	if more {
		return true
	}

	if id, ok := s.engine.Winner(); ok {
		c, _ := s.registry.Get(id)
		s.logger.Info("winner resolved", "id", id, "label", c.Label, "rotation", s.engine.Rotation())
		s.emit(Event{Type: EventResolved, Choice: c})
	} else {
		s.logger.Debug("spin stopped without winner")
	}
	return false
}

// LastLayout implements wheel.LayoutSource
// The previous frame's layout is used as is unless the registry changed since
func (s *Session) LastLayout() *layout.Wheel {
	if s.last == nil || s.lastRevision != s.registry.Revision() {
		s.computeLayout()
	}
	return s.last
}

// ===== QUERIES =====

func (s *Session) Choices() []choice.Choice { return s.registry.Choices() }
func (s *Session) Len() int                 { return s.registry.Len() }
func (s *Session) IsFull() bool             { return s.registry.IsFull() }
func (s *Session) IsEmpty() bool            { return s.registry.IsEmpty() }
func (s *Session) IsSpinning() bool         { return s.engine.IsSpinning() }
func (s *Session) State() wheel.State       { return s.engine.State() }
func (s *Session) Rotation() float64        { return s.engine.Rotation() }
func (s *Session) Velocity() float64        { return s.engine.Velocity() }

// Choice returns the choice with id
func (s *Session) Choice(id choice.ID) (choice.Choice, bool) {
	return s.registry.Get(id)
}

// Winner returns the resolved choice while a result is shown
func (s *Session) Winner() (choice.Choice, bool) {
	id, ok := s.engine.Winner()
	if !ok {
		return choice.Choice{}, false
	}
	return s.registry.Get(id)
}

// ===== INTERNAL =====

func (s *Session) computeLayout() {
	s.last = layout.Compute(s.registry.Choices(), s.engine.Rotation(), s.geometry, s.measurer)
	s.lastRevision = s.registry.Revision()
}

func (s *Session) reject(op string, err error) {
	s.logger.Debug("command rejected", "op", op, "reason", err.Error())
	s.emit(Event{Type: EventRejected, Err: err})
}

func (s *Session) emit(ev Event) {
	if s.onEvent != nil {
		s.onEvent(ev)
	}
}

// pointerChoice returns the id of the wedge under the pointer angle, 0 when empty
func pointerChoice(w *layout.Wheel) choice.ID {
	idx := wheel.PointerSegment(w)
	if idx < 0 {
		return 0
	}
	return w.Segments[idx].ID
}

// defaultGeometry is used until the first frame supplies one
var defaultGeometry = layout.Geometry{Center: vmath.Vec2{}, Radius: 1}
