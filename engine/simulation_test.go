package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/gravity-slingshot/core"
	"github.com/lixenwraith/gravity-slingshot/event"
	"github.com/lixenwraith/gravity-slingshot/physics"
)

func newTestSimulation(t *testing.T) *Simulation {
	t.Helper()
	sim, err := NewSimulation(DefaultConfig())
	require.NoError(t, err)
	return sim
}

func TestNewSimulation_PlanetAtCentre(t *testing.T) {
	sim := newTestSimulation(t)
	pl := sim.Planet()

	assert.Equal(t, 400.0, pl.Position.X)
	assert.Equal(t, 300.0, pl.Position.Y)
	assert.Equal(t, 100.0, pl.Mass)
	assert.Equal(t, 50.0, pl.Radius)
	assert.Equal(t, 0, sim.ActiveCount())
}

func TestNewSimulation_RejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.VelocityScale = 0
	_, err := NewSimulation(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "velocity scale")

	cfg = DefaultConfig()
	cfg.TickRate = 0
	_, err = NewSimulation(cfg)
	assert.Error(t, err)
}

func TestSimulation_StraightDrop(t *testing.T) {
	sim := newTestSimulation(t)
	sim.Insert(core.NewProjectile(400, 100, 0, 0, 10))

	prevY := 100.0
	for i := 0; i < 1000; i++ {
		snap := sim.Tick(nil)
		if len(snap.Removed) > 0 {
			require.Len(t, snap.Removed, 1)
			assert.Equal(t, physics.OutcomeCollision, snap.Removed[0].Outcome)
			assert.Empty(t, snap.Projectiles)
			assert.Equal(t, uint64(1), snap.Stats.Collided)
			assert.Equal(t, uint64(0), snap.Stats.Escaped)
			return
		}
		require.Len(t, snap.Projectiles, 1)
		y := snap.Projectiles[0].Position.Y
		assert.Greater(t, y, prevY, "tick %d", snap.Tick)
		prevY = y
	}
	t.Fatal("projectile never collided")
}

func TestSimulation_EscapeGesture(t *testing.T) {
	sim := newTestSimulation(t)

	snap := sim.Tick([]event.PointerEvent{
		event.Down(400, 100),
		event.Move(1200, 100),
		event.Up(2900, 100),
	})
	require.Len(t, snap.Projectiles, 1)
	assert.InDelta(t, 50, snap.Projectiles[0].Velocity.X, 0.01)
	assert.Equal(t, uint64(1), snap.Stats.Launched)

	for i := 0; i < 100; i++ {
		snap = sim.Tick(nil)
		if len(snap.Removed) > 0 {
			break
		}
	}
	require.Len(t, snap.Removed, 1)
	assert.Equal(t, physics.OutcomeOffBounds, snap.Removed[0].Outcome)
	assert.Greater(t, snap.Removed[0].Projectile.Position.X, 800.0)
	assert.Equal(t, uint64(1), snap.Stats.Escaped)
	assert.Equal(t, uint64(0), snap.Stats.Collided)
}

func TestSimulation_OrphanRelease(t *testing.T) {
	sim := newTestSimulation(t)

	var snap Snapshot
	assert.NotPanics(t, func() {
		snap = sim.Tick([]event.PointerEvent{event.Up(200, 200)})
	})
	assert.Empty(t, snap.Projectiles)
	assert.Empty(t, snap.Removed)
	assert.Equal(t, uint64(0), snap.Stats.Launched)
}

func TestSimulation_AimLineAcrossTicks(t *testing.T) {
	sim := newTestSimulation(t)

	snap := sim.Tick([]event.PointerEvent{event.Down(100, 100)})
	require.True(t, snap.Aiming)
	assert.Empty(t, snap.Projectiles)

	snap = sim.Tick([]event.PointerEvent{event.Move(160, 130)})
	require.True(t, snap.Aiming)
	assert.Equal(t, 100.0, snap.Aim.Start.X)
	assert.Equal(t, 160.0, snap.Aim.End.X)

	snap = sim.Tick([]event.PointerEvent{event.Up(160, 130)})
	assert.False(t, snap.Aiming)
	assert.Len(t, snap.Projectiles, 1)
}

func TestSimulation_RemovedExactlyOnce(t *testing.T) {
	sim := newTestSimulation(t)

	// A spread of launches covering collisions, escapes and long-lived arcs
	launches := [][4]float64{
		{400, 100, 400, 100},
		{50, 50, 300, 50},
		{750, 550, 700, 560},
		{100, 300, 100, 150},
		{400, 580, 650, 580},
		{20, 20, -500, 20},
		{420, 300, 420, 300},
	}

	removedAt := map[string]uint64{}
	for _, l := range launches {
		snap := sim.Tick([]event.PointerEvent{event.Down(l[0], l[1]), event.Up(l[2], l[3])})
		checkRemovals(t, snap, removedAt)
	}
	for i := 0; i < 3000; i++ {
		checkRemovals(t, sim.Tick(nil), removedAt)
	}

	assert.Equal(t, uint64(len(launches)), sim.Snapshot().Stats.Launched)
	st := sim.Snapshot().Stats
	assert.Equal(t, st.Launched, st.Collided+st.Escaped+uint64(sim.ActiveCount()))
}

func checkRemovals(t *testing.T, snap Snapshot, removedAt map[string]uint64) {
	t.Helper()
	for _, r := range snap.Removed {
		id := r.Projectile.ID.String()
		_, dup := removedAt[id]
		assert.False(t, dup, "projectile %s removed twice", id)
		removedAt[id] = snap.Tick
	}
	for _, p := range snap.Projectiles {
		_, gone := removedAt[p.ID.String()]
		assert.False(t, gone, "removed projectile %s still active at tick %d", p.ID, snap.Tick)
	}
}

func TestSimulation_SnapshotIsDetached(t *testing.T) {
	sim := newTestSimulation(t)
	sim.Insert(core.NewProjectile(100, 100, 1, 0, 10))

	snap := sim.Tick(nil)
	require.Len(t, snap.Projectiles, 1)
	snap.Projectiles[0].Position.X = -1000

	next := sim.Tick(nil)
	require.Len(t, next.Projectiles, 1, "mutating a snapshot must not cull the live projectile")
	assert.Greater(t, next.Projectiles[0].Position.X, 100.0)
}

func TestSimulation_InsertIgnoresDuplicates(t *testing.T) {
	sim := newTestSimulation(t)
	p := core.NewProjectile(100, 100, 0, 0, 10)

	sim.Insert(p)
	sim.Insert(p)
	assert.Equal(t, 1, sim.ActiveCount())
	assert.Equal(t, uint64(1), sim.Snapshot().Stats.Launched)
}

func TestSimulation_SpawnInsidePlanetCollidesWithoutPanic(t *testing.T) {
	sim := newTestSimulation(t)

	var snap Snapshot
	assert.NotPanics(t, func() {
		snap = sim.Tick([]event.PointerEvent{event.Down(400, 300), event.Up(400, 300)})
	})
	require.Len(t, snap.Removed, 1)
	assert.Equal(t, physics.OutcomeCollision, snap.Removed[0].Outcome)
	assert.Equal(t, 1, snap.Collisions())
	assert.Equal(t, 0, snap.Escapes())
}

func TestSimulation_PointPlanetStillRemoves(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PlanetRadius = 1e-12
	sim, err := NewSimulation(cfg)
	require.NoError(t, err)

	sim.Insert(core.NewProjectile(400+1e-10, 300, 0, 0, cfg.ProjectileMass))
	snap := sim.Tick(nil)

	require.Len(t, snap.Removed, 1)
	assert.Equal(t, physics.OutcomeCollision, snap.Removed[0].Outcome)
	assert.Equal(t, 0, sim.ActiveCount())
	assert.Equal(t, uint64(1), snap.Stats.Collided)
}

func TestConfig_Derived(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, physics.Bounds{Width: 800, Height: 600}, cfg.Bounds())
	assert.Equal(t, 60, cfg.TickRate)
	assert.Equal(t, int64(16666666), cfg.TickInterval().Nanoseconds())
}
