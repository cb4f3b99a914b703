package session

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/lixenwraith/spin-wheel/choice"
	"github.com/lixenwraith/spin-wheel/constants"
	"github.com/lixenwraith/spin-wheel/layout"
	"github.com/lixenwraith/spin-wheel/vmath"
	"github.com/lixenwraith/spin-wheel/wheel"
)

var testGeom = layout.Geometry{Center: vmath.Vec2{X: 160, Y: 160}, Radius: 120}

func newTestSession(events *[]Event) *Session {
	opts := Options{Rand: rand.New(rand.NewPCG(7, 11))}
	if events != nil {
		opts.OnEvent = func(ev Event) { *events = append(*events, ev) }
	}
	return New(opts)
}

func mustAdd(t *testing.T, s *Session, labels ...string) []choice.ID {
	t.Helper()
	ids := make([]choice.ID, 0, len(labels))
	for _, l := range labels {
		id, err := s.AddChoice(l)
		if err != nil {
			t.Fatalf("AddChoice(%q) error = %v", l, err)
		}
		ids = append(ids, id)
	}
	return ids
}

// spinToEnd ticks and renders one frame per tick until the engine stops
// Returns the rotation of the frame rendered before the final tick
func spinToEnd(t *testing.T, s *Session) float64 {
	t.Helper()
	var prevRotation float64
	for i := 0; ; i++ {
		if i > 100000 {
			t.Fatal("spin never stopped")
		}
		prevRotation = s.Rotation()
		s.Frame(testGeom)
		if !s.Tick() {
			return prevRotation
		}
	}
}

func TestAddResetsRotation(t *testing.T) {
	s := newTestSession(nil)
	for n := 1; n <= 5; n++ {
		mustAdd(t, s, "c")
		if math.Abs(s.Rotation()-math.Pi/float64(n)) > 1e-12 {
			t.Errorf("after %d adds rotation = %v, want π/%d", n, s.Rotation(), n)
		}
	}
}

func TestRemoveResetsRotation(t *testing.T) {
	s := newTestSession(nil)
	ids := mustAdd(t, s, "a", "b", "c")
	s.RemoveChoice(ids[1])
	if math.Abs(s.Rotation()-math.Pi/2) > 1e-12 {
		t.Errorf("rotation = %v, want π/2", s.Rotation())
	}
}

func TestRemoveLastChoiceDoesNotCrash(t *testing.T) {
	s := newTestSession(nil)
	ids := mustAdd(t, s, "only")
	s.RemoveChoice(ids[0])

	f := s.Frame(testGeom)
	if !f.Empty() {
		t.Error("frame should be empty")
	}
	if f.PointerIndex != -1 {
		t.Errorf("PointerIndex = %d, want -1", f.PointerIndex)
	}
	if s.StartSpin() {
		t.Error("spin started on empty wheel")
	}

	// Next add restores a finite rotation
	mustAdd(t, s, "again")
	if math.Abs(s.Rotation()-math.Pi) > 1e-12 {
		t.Errorf("rotation = %v, want π", s.Rotation())
	}
}

func TestAddWhenFull(t *testing.T) {
	var events []Event
	s := newTestSession(&events)
	for i := 0; i < constants.MaxChoices; i++ {
		mustAdd(t, s, "c")
	}
	_, err := s.AddChoice("X")
	if !errors.Is(err, choice.ErrFull) {
		t.Errorf("error = %v, want ErrFull", err)
	}
	if s.Len() != constants.MaxChoices {
		t.Errorf("Len() = %d, want %d", s.Len(), constants.MaxChoices)
	}
	if len(events) == 0 || events[len(events)-1].Type != EventRejected {
		t.Error("expected rejection event")
	}
}

func TestAddEmptyLabelRejected(t *testing.T) {
	s := newTestSession(nil)
	if _, err := s.AddChoice("  \n "); !errors.Is(err, ErrEmptyLabel) {
		t.Errorf("error = %v, want ErrEmptyLabel", err)
	}
	if !s.IsEmpty() {
		t.Error("empty label was added")
	}
}

func TestAddCleansLabel(t *testing.T) {
	s := newTestSession(nil)
	ids := mustAdd(t, s, "  two\nlines ")
	c, _ := s.Choice(ids[0])
	if c.Label != "two lines" {
		t.Errorf("label = %q, want %q", c.Label, "two lines")
	}
}

func TestIncrementAtMaxIsNoop(t *testing.T) {
	s := newTestSession(nil)
	ids := mustAdd(t, s, "w")
	for i := 0; i < constants.MaxWeight+5; i++ {
		s.IncrementWeight(ids[0])
	}
	c, _ := s.Choice(ids[0])
	if c.Weight != constants.MaxWeight {
		t.Fatalf("weight = %d, want %d", c.Weight, constants.MaxWeight)
	}
	if s.IncrementWeight(ids[0]) {
		t.Error("IncrementWeight at max reported change")
	}
	c, _ = s.Choice(ids[0])
	if c.Weight != constants.MaxWeight {
		t.Errorf("weight = %d after extra increment", c.Weight)
	}

	for i := 0; i < constants.MaxWeight+5; i++ {
		s.DecrementWeight(ids[0])
	}
	c, _ = s.Choice(ids[0])
	if c.Weight != 1 {
		t.Errorf("weight = %d, want floor 1", c.Weight)
	}
}

func TestWeightChangeKeepsRotation(t *testing.T) {
	s := newTestSession(nil)
	ids := mustAdd(t, s, "a", "b")
	rot := s.Rotation()
	s.IncrementWeight(ids[0])
	if s.Rotation() != rot {
		t.Error("weight change reset rotation")
	}
}

func TestMutationsRejectedWhileSpinning(t *testing.T) {
	var events []Event
	s := newTestSession(&events)
	ids := mustAdd(t, s, "a", "b")
	if !s.StartSpin() {
		t.Fatal("StartSpin rejected")
	}
	s.Frame(testGeom)
	s.Tick()

	before := s.Choices()
	rot := s.Rotation()

	if _, err := s.AddChoice("c"); !errors.Is(err, ErrSpinning) {
		t.Errorf("AddChoice error = %v, want ErrSpinning", err)
	}
	if s.RemoveChoice(ids[0]) {
		t.Error("RemoveChoice accepted while spinning")
	}
	if s.RenameChoice(ids[0], "z") {
		t.Error("RenameChoice accepted while spinning")
	}
	if s.IncrementWeight(ids[0]) || s.DecrementWeight(ids[0]) {
		t.Error("weight change accepted while spinning")
	}
	if s.StartSpin() {
		t.Error("StartSpin accepted while spinning")
	}

	after := s.Choices()
	if len(after) != len(before) || after[0] != before[0] || after[1] != before[1] {
		t.Errorf("choices changed: %+v -> %+v", before, after)
	}
	if s.Rotation() != rot {
		t.Error("rotation changed by rejected commands")
	}

	rejected := 0
	for _, ev := range events {
		if ev.Type == EventRejected {
			rejected++
		}
	}
	if rejected < 4 {
		t.Errorf("rejection events = %d, want at least 4", rejected)
	}
}

func TestStartSpinNoopWhenEmpty(t *testing.T) {
	s := newTestSession(nil)
	rot := s.Rotation()
	if s.StartSpin() {
		t.Error("StartSpin accepted on empty wheel")
	}
	if s.IsSpinning() || s.Rotation() != rot || s.Velocity() != 0 {
		t.Error("state changed by rejected StartSpin")
	}
}

func TestSpinResolvesAgainstLastFrame(t *testing.T) {
	var events []Event
	s := newTestSession(&events)
	mustAdd(t, s, "A", "B", "C", "D", "E")
	s.IncrementWeight(3)

	if !s.StartSpin() {
		t.Fatal("StartSpin rejected")
	}
	prevRotation := spinToEnd(t, s)

	if s.State() != wheel.StateResolved {
		t.Fatalf("state = %v, want resolved", s.State())
	}
	winner, ok := s.Winner()
	if !ok {
		t.Fatal("no winner")
	}

	want, _ := wheel.SelectWinner(layout.Compute(s.Choices(), prevRotation, testGeom, nil))
	if winner.ID != want {
		t.Errorf("winner = %d, want %d from last rendered frame", winner.ID, want)
	}

	last := events[len(events)-1]
	if last.Type != EventResolved || last.Choice.ID != winner.ID {
		t.Errorf("last event = %+v, want resolution of %d", last, winner.ID)
	}

	f := s.Frame(testGeom)
	if !f.HasWinner || f.Winner.ID != winner.ID || f.Spinning {
		t.Errorf("frame = %+v", f)
	}
}

func TestSpinEmitsCrossings(t *testing.T) {
	var events []Event
	s := newTestSession(&events)
	mustAdd(t, s, "A", "B", "C", "D")
	s.StartSpin()
	spinToEnd(t, s)

	crossed := 0
	for _, ev := range events {
		if ev.Type == EventSegmentCrossed {
			crossed++
		}
	}
	// Launch velocity turns the wheel several times past four wedges
	if crossed < 4 {
		t.Errorf("crossings = %d, want at least 4", crossed)
	}
}

func TestWinnerWithoutFrameUsesCurrentLayout(t *testing.T) {
	s := newTestSession(nil)
	mustAdd(t, s, "A", "B", "C")
	s.StartSpin()
	for s.Tick() {
	}
	if _, ok := s.Winner(); !ok {
		t.Error("no winner when no frame was ever rendered")
	}
}

func TestAcknowledgeWinner(t *testing.T) {
	s := newTestSession(nil)
	mustAdd(t, s, "A", "B")
	s.StartSpin()
	spinToEnd(t, s)

	if s.StartSpin() {
		t.Error("StartSpin accepted before acknowledging winner")
	}
	if !s.AcknowledgeWinner() {
		t.Fatal("AcknowledgeWinner rejected")
	}
	if _, ok := s.Winner(); ok {
		t.Error("winner still set")
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, acknowledge must not remove", s.Len())
	}
	if !s.StartSpin() {
		t.Error("StartSpin rejected after acknowledge")
	}
}

func TestRemoveWinner(t *testing.T) {
	s := newTestSession(nil)
	mustAdd(t, s, "A", "B", "C")
	s.StartSpin()
	spinToEnd(t, s)
	winner, _ := s.Winner()

	if !s.RemoveWinner() {
		t.Fatal("RemoveWinner rejected")
	}
	if _, ok := s.Choice(winner.ID); ok {
		t.Error("winner still in registry")
	}
	if s.State() != wheel.StateIdle {
		t.Errorf("state = %v, want idle", s.State())
	}
	if math.Abs(s.Rotation()-math.Pi/2) > 1e-12 {
		t.Errorf("rotation = %v, want π/2", s.Rotation())
	}
	if s.RemoveWinner() {
		t.Error("second RemoveWinner accepted")
	}
}

func TestRemovingWinnerChoiceClearsWinner(t *testing.T) {
	s := newTestSession(nil)
	mustAdd(t, s, "A", "B", "C")
	s.StartSpin()
	spinToEnd(t, s)
	winner, _ := s.Winner()

	if !s.RemoveChoice(winner.ID) {
		t.Fatal("RemoveChoice rejected")
	}
	if _, ok := s.Winner(); ok {
		t.Error("winner survived removal of its choice")
	}
}

func TestClearAll(t *testing.T) {
	var events []Event
	s := newTestSession(&events)
	mustAdd(t, s, "A", "B")
	s.StartSpin()
	s.Tick()

	s.ClearAll()
	if !s.IsEmpty() || s.IsSpinning() || s.Rotation() != 0 || s.Velocity() != 0 {
		t.Errorf("after ClearAll: len %d spinning %v rotation %v", s.Len(), s.IsSpinning(), s.Rotation())
	}
	if events[len(events)-1].Type != EventCleared {
		t.Error("expected cleared event")
	}

	// Ids keep increasing after a clear
	ids := mustAdd(t, s, "C")
	if ids[0] <= 2 {
		t.Errorf("id %d reused after clear", ids[0])
	}
}

func TestRenameChoice(t *testing.T) {
	s := newTestSession(nil)
	ids := mustAdd(t, s, "old")
	if s.RenameChoice(ids[0], " \n") {
		t.Error("empty rename accepted")
	}
	if !s.RenameChoice(ids[0], "new") {
		t.Fatal("rename rejected")
	}
	c, _ := s.Choice(ids[0])
	if c.Label != "new" {
		t.Errorf("label = %q", c.Label)
	}
	if s.RenameChoice(999, "ghost") {
		t.Error("rename of unknown id accepted")
	}
}

func TestFrameSnapshot(t *testing.T) {
	s := newTestSession(nil)
	mustAdd(t, s, "A", "B", "C")
	s.IncrementWeight(3)

	f := s.Frame(testGeom)
	segs := f.Segments()
	if len(segs) != 3 {
		t.Fatalf("segments = %d, want 3", len(segs))
	}
	wantSpans := []float64{math.Pi / 2, math.Pi / 2, math.Pi}
	for i, seg := range segs {
		if math.Abs(seg.Span-wantSpans[i]) > 1e-12 {
			t.Errorf("segment %d span = %v, want %v", i, seg.Span, wantSpans[i])
		}
	}
	if math.Abs(segs[0].Start-math.Pi/3) > 1e-12 {
		t.Errorf("first segment start = %v, want π/3", segs[0].Start)
	}
	if f.Spinning || f.HasWinner || f.Full {
		t.Errorf("unexpected flags: %+v", f)
	}
	if f.PointerIndex < 0 {
		t.Error("PointerIndex not set")
	}
}
