// Package layout computes wedge spans, fan centroids, label sizes and colors
// for an ordered choice list at a given rotation
package layout

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/spin-wheel/choice"
	"github.com/lixenwraith/spin-wheel/constants"
	"github.com/lixenwraith/spin-wheel/vmath"
)

// Geometry places the wheel in screen space
type Geometry struct {
	Center vmath.Vec2
	Radius float64
}

// Pointer is the fixed marker due east of the center, independent of rotation
func (g Geometry) Pointer() vmath.Vec2 {
	return vmath.Vec2{X: g.Center.X + g.Radius, Y: g.Center.Y}
}

// Segment is the computed wedge of one choice
type Segment struct {
	ID     choice.ID
	Label  string
	Weight int

	// Start is the absolute start angle, Span the angular width (radians)
	Start float64
	Span  float64

	// Centroid is the mean of the fan points, center included
	Centroid vmath.Vec2

	// Chord is the straight distance between the wedge's two arc ends
	Chord float64

	ColorIndex int
	Color      colorful.Color

	// DisplayLabel is the truncated label that FontSize was fitted for
	DisplayLabel string
	FontSize     int

	// LabelAnchor is the label center on the wedge bisector at TextRadiusFactor
	LabelAnchor vmath.Vec2
	MidAngle    float64
}

// Wheel is one layout pass
type Wheel struct {
	Geometry    Geometry
	Rotation    float64
	TotalWeight int
	Segments    []Segment
}

// Empty reports whether there is nothing to draw
func (w *Wheel) Empty() bool {
	return w == nil || len(w.Segments) == 0
}

// Compute lays out choices contiguously from rotation in registry order
// Weights must be >= 1, the registry enforces this and no zero check is done here
func Compute(choices []choice.Choice, rotation float64, geom Geometry, m TextMeasurer) *Wheel {
	w := &Wheel{
		Geometry: geom,
		Rotation: rotation,
	}
	if len(choices) == 0 {
		return w
	}

	for _, c := range choices {
		w.TotalWeight += c.Weight
	}

	angleStep := vmath.TwoPi / float64(w.TotalWeight)
	w.Segments = make([]Segment, len(choices))
	last := rotation

	for i, c := range choices {
		span := angleStep * float64(c.Weight)
		start := last
		last = start + span

		fan := FanPoints(geom, start, span, ArcSteps(c.Weight, w.TotalWeight))
		arcFirst, arcLast := fan[1], fan[len(fan)-1]

		chord := vmath.Distance(arcFirst, arcLast)
		display := TruncateLabel(c.Label)
		mid := start + span/2
		colorIdx := ColorIndex(i, len(choices))

		w.Segments[i] = Segment{
			ID:           c.ID,
			Label:        c.Label,
			Weight:       c.Weight,
			Start:        start,
			Span:         span,
			Centroid:     vmath.Mean(fan),
			Chord:        chord,
			ColorIndex:   colorIdx,
			Color:        Palette[colorIdx],
			DisplayLabel: display,
			FontSize:     FitFontSize(display, geom.Radius, chord, m),
			LabelAnchor:  vmath.Polar(geom.Center, geom.Radius*constants.TextRadiusFactor, mid),
			MidAngle:     mid,
		}
	}
	return w
}

// ArcSteps is the number of arc intervals for a wedge, at least 1
// Integer division first, so large total weights round down to the floor
func ArcSteps(weight, totalWeight int) int {
	steps := (constants.ArcStepBudget / totalWeight) * weight
	if steps < 1 {
		return 1
	}
	return steps
}

// FanPoints returns the center followed by steps+1 points along the arc
func FanPoints(geom Geometry, start, span float64, steps int) []vmath.Vec2 {
	points := make([]vmath.Vec2, 0, steps+2)
	points = append(points, geom.Center)
	for j := 0; j <= steps; j++ {
		t := float64(j) / float64(steps)
		points = append(points, vmath.Polar(geom.Center, geom.Radius, start+t*span))
	}
	return points
}

// SegmentAt returns the index of the wedge containing angle, -1 when empty
func (w *Wheel) SegmentAt(angle float64) int {
	if w.Empty() {
		return -1
	}
	rel := vmath.NormalizeAngle(angle - w.Rotation)
	acc := 0.0
	for i, s := range w.Segments {
		acc += s.Span
		if rel < acc {
			return i
		}
	}
	// Rounding at the seam
	return len(w.Segments) - 1
}

// SpanSum returns the sum of all spans, 2π for non-empty wheels
func (w *Wheel) SpanSum() float64 {
	if w == nil {
		return 0
	}
	sum := 0.0
	for _, s := range w.Segments {
		sum += s.Span
	}
	return sum
}

// Contains reports whether p lies inside the wheel disc
func (g Geometry) Contains(p vmath.Vec2) bool {
	return vmath.Distance(p, g.Center) <= g.Radius
}
