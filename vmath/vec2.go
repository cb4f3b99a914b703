package vmath

import (
	"math"
)

// TwoPi is one full rotation in radians
const TwoPi = 2 * math.Pi

// Vec2 is a float64 2D point or vector in wheel space
// Y grows downward, angles grow clockwise on screen
type Vec2 struct {
	X, Y float64
}

func V2Add(a, b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

func V2Sub(a, b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

func V2Scale(v Vec2, s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func V2MagSq(v Vec2) float64 {
	return v.X*v.X + v.Y*v.Y
}

func V2Mag(v Vec2) float64 {
	return math.Sqrt(V2MagSq(v))
}

// Distance returns Euclidean distance between two points
func Distance(a, b Vec2) float64 {
	return V2Mag(V2Sub(a, b))
}

// Polar returns the point at radius r and angle (radians) around center
func Polar(center Vec2, r, angle float64) Vec2 {
	return V2Add(center, V2Scale(Vec2{math.Cos(angle), math.Sin(angle)}, r))
}

// Mean returns the arithmetic mean of points, zero vector for empty input
func Mean(points []Vec2) Vec2 {
	if len(points) == 0 {
		return Vec2{}
	}
	var sum Vec2
	for _, p := range points {
		sum = V2Add(sum, p)
	}
	return V2Scale(sum, 1/float64(len(points)))
}

// NormalizeAngle maps an angle into [0, 2π)
// Non-finite input returns 0
func NormalizeAngle(a float64) float64 {
	if math.IsNaN(a) || math.IsInf(a, 0) {
		return 0
	}
	a = math.Mod(a, TwoPi)
	if a < 0 {
		a += TwoPi
	}
	// Mod of tiny negatives can round up to exactly 2π
	if a >= TwoPi {
		a = 0
	}
	return a
}

// Angle returns the direction of v in radians, in [0, 2π)
func Angle(v Vec2) float64 {
	return NormalizeAngle(math.Atan2(v.Y, v.X))
}
