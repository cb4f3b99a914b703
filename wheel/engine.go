// Package wheel implements the spin state machine: launch, per-tick decay and winner resolution
package wheel

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/spin-wheel/choice"
	"github.com/lixenwraith/spin-wheel/constants"
	"github.com/lixenwraith/spin-wheel/layout"
)

// State of the spin engine
type State int

const (
	StateIdle State = iota
	StateSpinning
	StateResolved
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSpinning:
		return "spinning"
	case StateResolved:
		return "resolved"
	default:
		return "unknown"
	}
}

// LayoutSource supplies the most recent layout pass used for winner resolution
type LayoutSource interface {
	LastLayout() *layout.Wheel
}

// Remover deletes a choice by id
type Remover interface {
	Remove(id choice.ID) bool
}

// Engine holds rotation, velocity and the resolved winner
// Illegal transitions are no-ops, nothing here returns an error
type Engine struct {
	state    State
	rotation float64
	velocity float64
	winner   choice.ID
	rng      *rand.Rand
}

// NewEngine creates an idle engine, nil rng seeds from the clock
func NewEngine(rng *rand.Rand) *Engine {
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1|1))
	}
	return &Engine{rng: rng}
}

// StartSpin launches with a velocity drawn uniformly from [SpinVelocityMin, SpinVelocityMax)
// Rejected unless idle with at least one choice
func (e *Engine) StartSpin(count int) bool {
	if !e.canStart(count) {
		return false
	}
	v := constants.SpinVelocityMin + e.rng.Float64()*(constants.SpinVelocityMax-constants.SpinVelocityMin)
	return e.StartSpinAt(count, v)
}

// StartSpinAt launches with an explicit velocity, same acceptance rules as StartSpin
func (e *Engine) StartSpinAt(count int, velocity float64) bool {
	if !e.canStart(count) {
		return false
	}
	e.velocity = velocity
	e.state = StateSpinning
	return true
}

func (e *Engine) canStart(count int) bool {
	return e.state == StateIdle && count > 0
}

// Tick advances one frame: rotation by velocity, then velocity by Damping
// Both are applied together so no caller observes one without the other
// Once |velocity| drops under MinSpeed the engine stops and resolves against src
// Returns true while another tick is required
func (e *Engine) Tick(src LayoutSource) bool {
	if e.state != StateSpinning {
		return false
	}

	e.rotation += e.velocity
	e.velocity *= constants.Damping

	if math.Abs(e.velocity) >= constants.MinSpeed {
		return true
	}

	e.velocity = 0
	e.state = StateIdle

	var last *layout.Wheel
	if src != nil {
		last = src.LastLayout()
	}
	if id, ok := SelectWinner(last); ok {
		e.winner = id
		e.state = StateResolved
	}
	return false
}

// Acknowledge closes the result, Resolved -> Idle
func (e *Engine) Acknowledge() bool {
	if e.state != StateResolved {
		return false
	}
	e.winner = 0
	e.state = StateIdle
	return true
}

// RemoveWinner deletes the winning choice through r, then clears the winner
// The state is Idle before removal so the cascading rotation reset applies
func (e *Engine) RemoveWinner(r Remover) (choice.ID, bool) {
	if e.state != StateResolved {
		return 0, false
	}
	id := e.winner
	e.state = StateIdle
	if r != nil {
		r.Remove(id)
	}
	e.winner = 0
	return id, true
}

// ForgetWinner clears the result if id is the current winner
func (e *Engine) ForgetWinner(id choice.ID) bool {
	if e.state != StateResolved || e.winner != id {
		return false
	}
	e.winner = 0
	e.state = StateIdle
	return true
}

// ResetRotation sets rotation to π/count so the first wedge is not flush with the pointer
// Ignored while spinning, count 0 yields +Inf which an empty layout never reads
func (e *Engine) ResetRotation(count int) {
	if e.state == StateSpinning {
		return
	}
	e.rotation = math.Pi / float64(count)
}

// CompositionChanged implements choice.Listener
func (e *Engine) CompositionChanged(count int) {
	e.ResetRotation(count)
}

// Clear forces Idle and zeroes rotation and velocity
func (e *Engine) Clear() {
	e.state = StateIdle
	e.rotation = 0
	e.velocity = 0
	e.winner = 0
}

func (e *Engine) State() State      { return e.state }
func (e *Engine) IsSpinning() bool  { return e.state == StateSpinning }
func (e *Engine) Rotation() float64 { return e.rotation }
func (e *Engine) Velocity() float64 { return e.velocity }

// Winner returns the resolved choice id, ok only in StateResolved
func (e *Engine) Winner() (choice.ID, bool) {
	if e.state != StateResolved {
		return 0, false
	}
	return e.winner, true
}
