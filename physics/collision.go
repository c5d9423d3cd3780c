package physics

import (
	"github.com/lixenwraith/gravity-slingshot/core"
	"github.com/lixenwraith/gravity-slingshot/parameter"
	"github.com/lixenwraith/gravity-slingshot/vmath"
)

// Outcome is the lifecycle state of a projectile after a check
type Outcome uint8

const (
	// OutcomeActive keeps the projectile in the active set
	OutcomeActive Outcome = iota
	// OutcomeCollision removes a projectile that reached the planet surface
	OutcomeCollision
	// OutcomeOffBounds removes a projectile that left the playfield
	OutcomeOffBounds
)

func (o Outcome) String() string {
	switch o {
	case OutcomeActive:
		return "active"
	case OutcomeCollision:
		return "collision"
	case OutcomeOffBounds:
		return "off-bounds"
	default:
		return "unknown"
	}
}

// Removed reports whether the outcome is terminal
func (o Outcome) Removed() bool {
	return o != OutcomeActive
}

// Bounds is the playfield rectangle [0,Width] x [0,Height], edges inclusive
type Bounds struct {
	Width, Height float64
}

// Contains reports whether a point lies on or inside the playfield
func (b Bounds) Contains(x, y float64) bool {
	return x >= 0 && x <= b.Width && y >= 0 && y <= b.Height
}

// Collided reports whether p is on or inside the planet surface
// A point-sized planet still collides at degenerate distance, matching the guard in Gravity
func Collided(p *core.Projectile, planet core.Planet) bool {
	d := vmath.Distance(p.Position, planet.Position)
	return d <= planet.Radius || d <= parameter.DegenerateDistance
}

// Removal evaluates both exit conditions against the current position
// Collision takes precedence so a projectile satisfying both is reported once
func Removal(p *core.Projectile, planet core.Planet, bounds Bounds) Outcome {
	if Collided(p, planet) {
		return OutcomeCollision
	}
	if !bounds.Contains(p.Position.X, p.Position.Y) {
		return OutcomeOffBounds
	}
	return OutcomeActive
}
