package wheel

import (
	"math"
	"testing"

	"github.com/lixenwraith/spin-wheel/choice"
	"github.com/lixenwraith/spin-wheel/layout"
)

func TestSelectWinnerEmpty(t *testing.T) {
	if _, ok := SelectWinner(nil); ok {
		t.Error("winner for nil layout")
	}
	if _, ok := SelectWinner(layout.Compute(nil, 0, testGeom, nil)); ok {
		t.Error("winner for empty layout")
	}
}

func TestSelectWinnerNearestCentroid(t *testing.T) {
	// Four equal wedges starting at -π/4: wedge 0 is centered on the pointer
	w := layout.Compute(testChoices(1, 1, 1, 1), -math.Pi/4, testGeom, nil)
	id, ok := SelectWinner(w)
	if !ok || id != 1 {
		t.Errorf("winner = %d, want 1", id)
	}

	// Rotate a quarter turn: wedge 3 now faces the pointer
	w = layout.Compute(testChoices(1, 1, 1, 1), -math.Pi/4+math.Pi/2, testGeom, nil)
	if id, _ := SelectWinner(w); id != 4 {
		t.Errorf("winner after quarter turn = %d, want 4", id)
	}
}

func TestSelectWinnerTieGoesFirst(t *testing.T) {
	// Two halves split at the pointer, centroids mirrored across the pointer axis
	w := layout.Compute(testChoices(1, 1), 0, testGeom, nil)
	w.Segments[1].Centroid.Y = 2*testGeom.Center.Y - w.Segments[0].Centroid.Y
	w.Segments[1].Centroid.X = w.Segments[0].Centroid.X
	if id, _ := SelectWinner(w); id != 1 {
		t.Errorf("tie winner = %d, want first segment", id)
	}
}

func TestSelectWinnerDeterministic(t *testing.T) {
	choices := testChoices(2, 1, 3, 1)
	a := layout.Compute(choices, 4.2, testGeom, nil)

	// Same rotation reached after whole turns of spin history
	b := layout.Compute(choices, 4.2+6*math.Pi, testGeom, nil)

	idA, _ := SelectWinner(a)
	idB, _ := SelectWinner(b)
	idA2, _ := SelectWinner(layout.Compute(choices, 4.2, testGeom, nil))
	if idA != idA2 {
		t.Errorf("same inputs gave %d and %d", idA, idA2)
	}
	if idA != idB {
		t.Errorf("rotation modulo 2π changed winner: %d vs %d", idA, idB)
	}
}

func TestSelectWinnerCentroidApproximation(t *testing.T) {
	// The heavy wedge covers 10/11 of the circle and ends just past the pointer
	// Its fan centroid sits near the center, so the light wedge after it wins
	// even though the pointer angle lies inside the heavy one
	choices := []choice.Choice{
		{ID: 1, Label: "heavy", Weight: 10},
		{ID: 2, Label: "light", Weight: 1},
	}
	unit := 2 * math.Pi / 11
	delta := unit * 0.05
	w := layout.Compute(choices, unit+delta, testGeom, nil)

	angleWinner := w.Segments[PointerSegment(w)].ID
	if angleWinner != 1 {
		t.Fatalf("setup: pointer angle in segment %d, want 1", angleWinner)
	}
	if centroidWinner, _ := SelectWinner(w); centroidWinner != 2 {
		t.Errorf("centroid winner = %d, want 2", centroidWinner)
	}
}

func TestPointerSegment(t *testing.T) {
	w := layout.Compute(testChoices(1, 1, 2), 0.1, testGeom, nil)
	// Pointer angle 0 is 0.1 before rotation start, inside the last wedge
	if got := PointerSegment(w); got != 2 {
		t.Errorf("PointerSegment = %d, want 2", got)
	}
}
