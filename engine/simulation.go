package engine

import (
	"log"

	"github.com/golang/geo/r2"

	"github.com/lixenwraith/gravity-slingshot/core"
	"github.com/lixenwraith/gravity-slingshot/event"
	"github.com/lixenwraith/gravity-slingshot/input"
	"github.com/lixenwraith/gravity-slingshot/physics"
)

// Stats accumulates lifecycle counters over the simulation's lifetime
type Stats struct {
	Launched uint64
	Collided uint64
	Escaped  uint64
}

// Simulation owns the planet and the active projectile set
// Not safe for concurrent use: Tick is the sole writer and runs on the game loop goroutine
type Simulation struct {
	cfg        Config
	planet     core.Planet
	bounds     physics.Bounds
	translator *input.Translator

	active []*core.Projectile
	tick   uint64
	stats  Stats
}

// NewSimulation validates cfg and places the planet at the playfield centre
func NewSimulation(cfg Config) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	center := cfg.PlanetCenter()
	s := &Simulation{
		cfg:    cfg,
		planet: core.NewPlanet(center.X, center.Y, cfg.PlanetMass, cfg.PlanetRadius),
		bounds: cfg.Bounds(),
	}
	s.translator = input.NewTranslator(s.spawn)
	return s, nil
}

func (s *Simulation) spawn(launch, release r2.Point) *core.Projectile {
	return Spawn(launch, release, s.cfg.VelocityScale, s.cfg.ProjectileMass)
}

// Tick runs one fixed step: apply input, move every projectile, cull, report
// Events are applied in order before any projectile moves, so a projectile launched this tick also moves this tick
func (s *Simulation) Tick(events []event.PointerEvent) Snapshot {
	s.tick++

	for _, ev := range events {
		if p, ok := s.translator.Handle(ev); ok {
			s.Insert(p)
		}
	}

	// The outcome of each step decides removal; no second check after the move
	outcomes := make([]physics.Outcome, len(s.active))
	for i, p := range s.active {
		outcomes[i] = physics.Step(p, s.planet, s.cfg.G, s.bounds)
	}

	var removed []Removal
	s.active, removed = split(s.active, outcomes)
	for _, r := range removed {
		switch r.Outcome {
		case physics.OutcomeCollision:
			s.stats.Collided++
		case physics.OutcomeOffBounds:
			s.stats.Escaped++
		}
		log.Printf("tick %d: projectile %s removed (%s) at (%.1f, %.1f)",
			s.tick, r.Projectile.ID, r.Outcome, r.Projectile.Position.X, r.Projectile.Position.Y)
	}

	snap := s.Snapshot()
	snap.Removed = removed
	return snap
}

// Insert adds a projectile to the active set
// Projectiles already present are ignored
func (s *Simulation) Insert(p *core.Projectile) {
	for _, existing := range s.active {
		if existing == p || existing.ID == p.ID {
			return
		}
	}
	s.active = append(s.active, p)
	s.stats.Launched++
	log.Printf("tick %d: projectile %s launched at (%.1f, %.1f) vel (%.3f, %.3f)",
		s.tick, p.ID, p.Position.X, p.Position.Y, p.Velocity.X, p.Velocity.Y)
}

// Snapshot copies the current state for rendering
// Removed is only populated on the snapshot returned by Tick
func (s *Simulation) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:        s.tick,
		Planet:      s.planet,
		Bounds:      s.bounds,
		Projectiles: make([]core.ProjectileState, len(s.active)),
		Stats:       s.stats,
	}
	for i, p := range s.active {
		snap.Projectiles[i] = p.State()
	}
	if seg, ok := s.translator.AimLine(); ok {
		snap.Aim = seg
		snap.Aiming = true
	}
	return snap
}

// Planet returns the gravity source
func (s *Simulation) Planet() core.Planet {
	return s.planet
}

// ActiveCount returns the number of projectiles in flight
func (s *Simulation) ActiveCount() int {
	return len(s.active)
}

// Config returns the constants the simulation was built with
func (s *Simulation) Config() Config {
	return s.cfg
}
