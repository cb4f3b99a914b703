package session

import (
	"github.com/lixenwraith/spin-wheel/choice"
	"github.com/lixenwraith/spin-wheel/layout"
	"github.com/lixenwraith/spin-wheel/wheel"
)

// Frame is the per-frame snapshot read by the renderer
type Frame struct {
	Layout   *layout.Wheel
	State    wheel.State
	Spinning bool
	Full     bool

	// Winner is valid when HasWinner is set
	Winner    choice.Choice
	HasWinner bool

	// PointerIndex is the segment index under the pointer angle, -1 when empty
	PointerIndex int
}

// Segments returns the ordered wedges of this frame
func (f Frame) Segments() []layout.Segment {
	if f.Layout == nil {
		return nil
	}
	return f.Layout.Segments
}

// Empty reports whether there is nothing to draw
func (f Frame) Empty() bool {
	return f.Layout.Empty()
}

// Frame recomputes the layout for geom at the current rotation and returns the snapshot
// The layout is kept as the source for winner resolution on the next stop
func (s *Session) Frame(geom layout.Geometry) Frame {
	s.geometry = geom
	s.computeLayout()

	f := Frame{
		Layout:       s.last,
		State:        s.engine.State(),
		Spinning:     s.engine.IsSpinning(),
		Full:         s.registry.IsFull(),
		PointerIndex: wheel.PointerSegment(s.last),
	}
	f.Winner, f.HasWinner = s.Winner()

	if f.Spinning {
		if id := pointerChoice(s.last); id != s.lastPointer {
			if s.lastPointer != 0 {
				c, _ := s.registry.Get(id)
				s.emit(Event{Type: EventSegmentCrossed, Choice: c})
			}
			s.lastPointer = id
		}
	}
	return f
}
