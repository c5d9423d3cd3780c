package core

import (
	"github.com/golang/geo/r2"
	uuid "github.com/satori/go.uuid"
)

// Projectile is a launched body affected by the planet's gravity
// Position and Velocity are world units and world units per tick
// Only physics.Step writes Position/Velocity; Mass never changes after creation
type Projectile struct {
	ID       uuid.UUID
	Position r2.Point
	Velocity r2.Point
	Mass     float64
}

// NewProjectile creates a projectile with a fresh random id
func NewProjectile(x, y, velX, velY, mass float64) *Projectile {
	return &Projectile{
		ID:       uuid.NewV4(),
		Position: r2.Point{X: x, Y: y},
		Velocity: r2.Point{X: velX, Y: velY},
		Mass:     mass,
	}
}

// Speed returns velocity magnitude in units per tick
func (p *Projectile) Speed() float64 {
	return p.Velocity.Norm()
}

// State returns a detached copy for consumers outside the tick
func (p *Projectile) State() ProjectileState {
	return ProjectileState{
		ID:       p.ID,
		Position: p.Position,
		Velocity: p.Velocity,
	}
}

// ProjectileState is the read-only view handed to renderers
type ProjectileState struct {
	ID       uuid.UUID
	Position r2.Point
	Velocity r2.Point
}
