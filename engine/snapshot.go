package engine

import (
	"github.com/lixenwraith/gravity-slingshot/core"
	"github.com/lixenwraith/gravity-slingshot/input"
	"github.com/lixenwraith/gravity-slingshot/physics"
)

// Snapshot is the per-tick state handed to presentation
// It holds copies only; mutating it never affects the simulation
type Snapshot struct {
	Tick   uint64
	Planet core.Planet
	Bounds physics.Bounds

	// Projectiles in active-set order
	Projectiles []core.ProjectileState

	// Aim is the pending launch line, valid when Aiming
	Aim    input.Segment
	Aiming bool

	// Removed lists projectiles culled during this tick
	Removed []Removal

	Stats Stats
}

// Collisions returns the number of removals this tick caused by the planet
func (s Snapshot) Collisions() int {
	n := 0
	for _, r := range s.Removed {
		if r.Outcome == physics.OutcomeCollision {
			n++
		}
	}
	return n
}

// Escapes returns the number of removals this tick caused by leaving the playfield
func (s Snapshot) Escapes() int {
	n := 0
	for _, r := range s.Removed {
		if r.Outcome == physics.OutcomeOffBounds {
			n++
		}
	}
	return n
}
