package core

import "github.com/golang/geo/r2"

// Planet is the single static gravity source
// Value type: copies cannot alter the simulation's planet
type Planet struct {
	Position r2.Point
	Mass     float64
	Radius   float64
}

// NewPlanet creates the gravity source at (x, y)
func NewPlanet(x, y, mass, radius float64) Planet {
	return Planet{
		Position: r2.Point{X: x, Y: y},
		Mass:     mass,
		Radius:   radius,
	}
}
