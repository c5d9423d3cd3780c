package vmath

import "fmt"

// GravitationalForce returns Newtonian force magnitude g*ma*mb/d²
// Zero distance is a caller bug and panics
func GravitationalForce(g, massA, massB, distance float64) float64 {
	if distance == 0 {
		panic(fmt.Sprintf("vmath: gravitational force at zero distance (g=%v ma=%v mb=%v)", g, massA, massB))
	}
	return g * massA * massB / (distance * distance)
}

// Acceleration returns the acceleration magnitude a body feels toward a source of sourceMass
// Equivalent to GravitationalForce(g, m, sourceMass, d) / m for any m, without the round trip
func Acceleration(g, sourceMass, distance float64) float64 {
	if distance == 0 {
		panic(fmt.Sprintf("vmath: acceleration at zero distance (g=%v m=%v)", g, sourceMass))
	}
	return g * sourceMass / (distance * distance)
}
