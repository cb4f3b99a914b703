package vmath

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec2
		want float64
	}{
		{"same point", Vec2{1, 1}, Vec2{1, 1}, 0},
		{"3-4-5", Vec2{0, 0}, Vec2{3, 4}, 5},
		{"negative", Vec2{-1, -1}, Vec2{2, 3}, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Distance(tt.a, tt.b); math.Abs(got-tt.want) > eps {
				t.Errorf("Distance() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPolar(t *testing.T) {
	c := Vec2{10, 20}
	p := Polar(c, 5, 0)
	if math.Abs(p.X-15) > eps || math.Abs(p.Y-20) > eps {
		t.Errorf("Polar(0) = %+v, want {15 20}", p)
	}
	p = Polar(c, 5, math.Pi/2)
	if math.Abs(p.X-10) > eps || math.Abs(p.Y-25) > eps {
		t.Errorf("Polar(π/2) = %+v, want {10 25}", p)
	}
}

func TestV2AddScale(t *testing.T) {
	a, b := Vec2{1, -2}, Vec2{3, 5}
	if got := V2Add(a, b); got != (Vec2{4, 3}) {
		t.Errorf("V2Add = %+v, want {4 3}", got)
	}
	if got := V2Scale(b, -2); got != (Vec2{-6, -10}) {
		t.Errorf("V2Scale = %+v, want {-6 -10}", got)
	}
}

func TestMean(t *testing.T) {
	if got := Mean(nil); got != (Vec2{}) {
		t.Errorf("Mean(nil) = %+v, want zero", got)
	}
	got := Mean([]Vec2{{0, 0}, {2, 0}, {2, 2}, {0, 2}})
	if math.Abs(got.X-1) > eps || math.Abs(got.Y-1) > eps {
		t.Errorf("Mean(square) = %+v, want {1 1}", got)
	}
}

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{TwoPi, 0},
		{-math.Pi / 2, 3 * math.Pi / 2},
		{5 * math.Pi, math.Pi},
		{math.Inf(1), 0},
		{math.NaN(), 0},
	}
	for _, tt := range tests {
		got := NormalizeAngle(tt.in)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("NormalizeAngle(%v) = %v, want %v", tt.in, got, tt.want)
		}
		if got < 0 || got >= TwoPi {
			t.Errorf("NormalizeAngle(%v) = %v out of [0, 2π)", tt.in, got)
		}
	}
}

func TestAngle(t *testing.T) {
	if got := Angle(Vec2{0, 1}); math.Abs(got-math.Pi/2) > eps {
		t.Errorf("Angle(down) = %v, want π/2", got)
	}
	if got := Angle(Vec2{0, -1}); math.Abs(got-3*math.Pi/2) > eps {
		t.Errorf("Angle(up) = %v, want 3π/2", got)
	}
}
