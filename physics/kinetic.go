package physics

import (
	"github.com/golang/geo/r2"

	"github.com/lixenwraith/gravity-slingshot/core"
	"github.com/lixenwraith/gravity-slingshot/parameter"
	"github.com/lixenwraith/gravity-slingshot/vmath"
)

// Gravity returns the acceleration vector p feels toward the planet this tick
// ok is false when p sits on the planet (inside the surface or at degenerate distance); no force is computed then
func Gravity(p *core.Projectile, planet core.Planet, g float64) (acc r2.Point, ok bool) {
	d := vmath.Distance(p.Position, planet.Position)
	if d <= planet.Radius || d <= parameter.DegenerateDistance {
		return r2.Point{}, false
	}

	a := vmath.Acceleration(g, planet.Mass, d)
	angle := vmath.DirectionAngle(p.Position, planet.Position)
	return vmath.Decompose(a, angle), true
}

// Integrate performs semi-implicit Euler with dt folded into units: v = v + a; p = p + v
func Integrate(p *core.Projectile, acc r2.Point) {
	p.Velocity = p.Velocity.Add(acc)
	p.Position = p.Position.Add(p.Velocity)
}

// Step advances p by one tick under the planet's gravity and returns its post-move outcome
// A projectile already on the planet is reported as a collision without moving; after the
// first tick every removal is caught post-move, so this pre-move case only arises for a
// projectile spawned overlapping the planet
func Step(p *core.Projectile, planet core.Planet, g float64, bounds Bounds) Outcome {
	acc, ok := Gravity(p, planet, g)
	if !ok {
		return OutcomeCollision
	}
	Integrate(p, acc)
	return Removal(p, planet, bounds)
}
