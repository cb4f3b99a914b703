package session

import "github.com/lixenwraith/spin-wheel/choice"

// EventType identifies a session notification
type EventType int

const (
	EventSpinStarted EventType = iota
	EventSegmentCrossed
	EventResolved
	EventRejected
	EventCleared
)

// Event is delivered synchronously to Options.OnEvent
type Event struct {
	Type EventType

	// Choice is the winner for EventResolved, the wedge now under the pointer for EventSegmentCrossed
	Choice choice.Choice

	// Err is the rejection reason for EventRejected
	Err error
}
