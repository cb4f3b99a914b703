package wheel

import (
	"github.com/lixenwraith/spin-wheel/choice"
	"github.com/lixenwraith/spin-wheel/layout"
	"github.com/lixenwraith/spin-wheel/vmath"
)

// SelectWinner picks the segment whose centroid is nearest the pointer
// Ties go to the first segment in registry order
// Centroid proximity approximates angular containment and can disagree with it
// for few, very unevenly weighted wedges, see PointerSegment
func SelectWinner(w *layout.Wheel) (choice.ID, bool) {
	if w.Empty() {
		return 0, false
	}
	pointer := w.Geometry.Pointer()

	best := -1
	bestDist := 0.0
	for i, s := range w.Segments {
		d := vmath.Distance(s.Centroid, pointer)
		if best < 0 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	return w.Segments[best].ID, true
}

// PointerSegment returns the index of the wedge whose span contains the pointer angle
// Used for the crossing tick while spinning, not for resolution
func PointerSegment(w *layout.Wheel) int {
	return w.SegmentAt(0)
}
