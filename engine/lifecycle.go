package engine

import (
	"github.com/golang/geo/r2"

	"github.com/lixenwraith/gravity-slingshot/core"
	"github.com/lixenwraith/gravity-slingshot/physics"
)

// Removal records a projectile leaving the active set
type Removal struct {
	Projectile core.ProjectileState
	Outcome    physics.Outcome
}

// Spawn creates a projectile at launch moving along the drag vector
// velocity = (release - launch) / velocityScale; positions outside the playfield are allowed
func Spawn(launch, release r2.Point, velocityScale, mass float64) *core.Projectile {
	vel := release.Sub(launch).Mul(1 / velocityScale)
	return core.NewProjectile(launch.X, launch.Y, vel.X, vel.Y, mass)
}

// Partition splits active into survivors and removals using the current positions
// Two-phase: outcomes are computed for every index before either slice is built
// Survivors keep their relative order; the input slice is not modified
func Partition(active []*core.Projectile, planet core.Planet, bounds physics.Bounds) ([]*core.Projectile, []Removal) {
	outcomes := make([]physics.Outcome, len(active))
	for i, p := range active {
		outcomes[i] = physics.Removal(p, planet, bounds)
	}
	return split(active, outcomes)
}

// split materializes survivors and removals from per-index outcomes
func split(active []*core.Projectile, outcomes []physics.Outcome) ([]*core.Projectile, []Removal) {
	removedCount := 0
	for _, o := range outcomes {
		if o.Removed() {
			removedCount++
		}
	}

	survivors := make([]*core.Projectile, 0, len(active)-removedCount)
	var removed []Removal
	if removedCount > 0 {
		removed = make([]Removal, 0, removedCount)
	}
	for i, p := range active {
		if outcomes[i].Removed() {
			removed = append(removed, Removal{Projectile: p.State(), Outcome: outcomes[i]})
			continue
		}
		survivors = append(survivors, p)
	}
	return survivors, removed
}

// Cull returns the projectiles that are neither off the playfield nor on the planet
// Idempotent: culling an already culled set returns the same set
func Cull(active []*core.Projectile, planet core.Planet, bounds physics.Bounds) []*core.Projectile {
	survivors, _ := Partition(active, planet, bounds)
	return survivors
}
