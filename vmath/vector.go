package vmath

import (
	"math"

	"github.com/golang/geo/r2"
)

// Vec returns a world-space point
func Vec(x, y float64) r2.Point {
	return r2.Point{X: x, Y: y}
}

// Distance returns Euclidean distance between two points
func Distance(a, b r2.Point) float64 {
	return b.Sub(a).Norm()
}

// DirectionAngle returns the angle in radians of the vector from -> to
// Four-quadrant, range (-π, π]
func DirectionAngle(from, to r2.Point) float64 {
	return math.Atan2(to.Y-from.Y, to.X-from.X)
}

// Decompose splits a magnitude along angle into x/y components
func Decompose(magnitude, angle float64) r2.Point {
	return r2.Point{X: magnitude * math.Cos(angle), Y: magnitude * math.Sin(angle)}
}

// Speed returns the magnitude of a velocity vector
func Speed(v r2.Point) float64 {
	return v.Norm()
}
